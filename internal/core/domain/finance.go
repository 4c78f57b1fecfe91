package domain

import "time"

// Receivable status values.
const (
	ReceivableOutstanding = "belum_lunas"
	ReceivablePaid        = "lunas"
)

// Project status values.
const (
	ProjectPlanned   = "perencanaan"
	ProjectRunning   = "berjalan"
	ProjectDone      = "selesai"
	ProjectCancelled = "dibatalkan"
)

// PiutangPelanggan is an amount a customer owes.
type PiutangPelanggan struct {
	ID                string     `json:"id_piutang_pelanggan" bson:"_id" gorm:"column:id_piutang_pelanggan;primaryKey;size:36"`
	NamaPelanggan     string     `json:"nama_pelanggan" bson:"nama_pelanggan" gorm:"column:nama_pelanggan;size:191;not null" validate:"required"`
	NomorFaktur       string     `json:"nomor_faktur" bson:"nomor_faktur" gorm:"column:nomor_faktur;size:64"`
	JumlahPiutang     float64    `json:"jumlah_piutang" bson:"jumlah_piutang" gorm:"column:jumlah_piutang;not null" validate:"required,gt=0"`
	TanggalPiutang    *time.Time `json:"tanggal_piutang,omitempty" bson:"tanggal_piutang" gorm:"column:tanggal_piutang"`
	TanggalJatuhTempo time.Time  `json:"tanggal_jatuh_tempo" bson:"tanggal_jatuh_tempo" gorm:"column:tanggal_jatuh_tempo;not null" validate:"required"`
	StatusPiutang     string     `json:"status_piutang" bson:"status_piutang" gorm:"column:status_piutang;size:32" validate:"omitempty,oneof=belum_lunas lunas"`
	Keterangan        string     `json:"keterangan" bson:"keterangan" gorm:"column:keterangan;type:text"`
	Timestamps `bson:",inline"`
}

func (*PiutangPelanggan) EntityName() string { return "PiutangPelanggan" }
func (*PiutangPelanggan) TableName() string  { return "piutang_pelanggan" }
func (p *PiutangPelanggan) RecordID() string { return p.ID }
func (p *PiutangPelanggan) SetRecordID(id string) { p.ID = id }

func (p *PiutangPelanggan) ApplyDefaults() {
	if p.StatusPiutang == "" {
		p.StatusPiutang = ReceivableOutstanding
	}
}

// PembayaranPiutang is a payment made against a receivable.
type PembayaranPiutang struct {
	ID                 string    `json:"id_pembayaran_piutang" bson:"_id" gorm:"column:id_pembayaran_piutang;primaryKey;size:36"`
	IDPiutangPelanggan string    `json:"id_piutang_pelanggan" bson:"id_piutang_pelanggan" gorm:"column:id_piutang_pelanggan;size:36;index;not null" validate:"required"`
	JumlahPembayaran   float64   `json:"jumlah_pembayaran" bson:"jumlah_pembayaran" gorm:"column:jumlah_pembayaran;not null" validate:"required,gt=0"`
	TanggalPembayaran  time.Time `json:"tanggal_pembayaran" bson:"tanggal_pembayaran" gorm:"column:tanggal_pembayaran;not null" validate:"required"`
	MetodePembayaran   string    `json:"metode_pembayaran" bson:"metode_pembayaran" gorm:"column:metode_pembayaran;size:64"`
	Keterangan         string    `json:"keterangan" bson:"keterangan" gorm:"column:keterangan;type:text"`
	Timestamps `bson:",inline"`
}

func (*PembayaranPiutang) EntityName() string      { return "PembayaranPiutang" }
func (*PembayaranPiutang) TableName() string       { return "pembayaran_piutang" }
func (p *PembayaranPiutang) RecordID() string      { return p.ID }
func (p *PembayaranPiutang) SetRecordID(id string) { p.ID = id }

// Proyek is a project whose costs are tracked.
type Proyek struct {
	ID             string     `json:"id_proyek" bson:"_id" gorm:"column:id_proyek;primaryKey;size:36"`
	NamaProyek     string     `json:"nama_proyek" bson:"nama_proyek" gorm:"column:nama_proyek;size:191;not null" validate:"required"`
	NamaKlien      string     `json:"nama_klien" bson:"nama_klien" gorm:"column:nama_klien;size:191"`
	NilaiKontrak   float64    `json:"nilai_kontrak" bson:"nilai_kontrak" gorm:"column:nilai_kontrak" validate:"gte=0"`
	TanggalMulai   *time.Time `json:"tanggal_mulai,omitempty" bson:"tanggal_mulai" gorm:"column:tanggal_mulai"`
	TanggalSelesai *time.Time `json:"tanggal_selesai,omitempty" bson:"tanggal_selesai" gorm:"column:tanggal_selesai"`
	StatusProyek   string     `json:"status_proyek" bson:"status_proyek" gorm:"column:status_proyek;size:32" validate:"omitempty,oneof=perencanaan berjalan selesai dibatalkan"`
	Timestamps `bson:",inline"`
}

func (*Proyek) EntityName() string { return "Proyek" }
func (*Proyek) TableName() string  { return "proyek" }
func (p *Proyek) RecordID() string { return p.ID }
func (p *Proyek) SetRecordID(id string) { p.ID = id }

func (p *Proyek) ApplyDefaults() {
	if p.StatusProyek == "" {
		p.StatusProyek = ProjectPlanned
	}
}

// BiayaProyek is a single cost booked against a project.
type BiayaProyek struct {
	ID            string    `json:"id_biaya_proyek" bson:"_id" gorm:"column:id_biaya_proyek;primaryKey;size:36"`
	IDProyek      string    `json:"id_proyek" bson:"id_proyek" gorm:"column:id_proyek;size:36;index;not null" validate:"required"`
	KategoriBiaya string    `json:"kategori_biaya" bson:"kategori_biaya" gorm:"column:kategori_biaya;size:64"`
	Deskripsi     string    `json:"deskripsi" bson:"deskripsi" gorm:"column:deskripsi;type:text"`
	JumlahBiaya   float64   `json:"jumlah_biaya" bson:"jumlah_biaya" gorm:"column:jumlah_biaya;not null" validate:"required,gt=0"`
	TanggalBiaya  time.Time `json:"tanggal_biaya" bson:"tanggal_biaya" gorm:"column:tanggal_biaya;not null" validate:"required"`
	Timestamps `bson:",inline"`
}

func (*BiayaProyek) EntityName() string      { return "BiayaProyek" }
func (*BiayaProyek) TableName() string       { return "biaya_proyek" }
func (b *BiayaProyek) RecordID() string      { return b.ID }
func (b *BiayaProyek) SetRecordID(id string) { b.ID = id }
