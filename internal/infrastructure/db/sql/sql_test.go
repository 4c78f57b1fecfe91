package sql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/sikeu/finance-api/internal/core/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(context.Background(), Config{
		Driver:      DriverSQLite,
		DSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	created, err := repo.Create(ctx, &domain.User{
		ID:           "u-1",
		Username:     "alice",
		PasswordHash: "hash",
		Role:         domain.RoleFinanceOfficer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "u-1" || created.Username != "alice" {
		t.Fatalf("unexpected created user: %+v", created)
	}

	found, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if found.PasswordHash != "hash" || found.Role != domain.RoleFinanceOfficer {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByUsername(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{ID: "u-1", Username: "bob", PasswordHash: "h", Role: domain.RoleFinanceOfficer}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, &domain.User{ID: "u-2", Username: "bob", PasswordHash: "h2", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRecordRepository_CRUD(t *testing.T) {
	repo := NewRecordRepository[domain.Proyek](openTestDB(t))
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	rec := &domain.Proyek{
		ID:           "p-1",
		NamaProyek:   "Gedung A",
		NilaiKontrak: 1500000,
		TanggalMulai: &start,
		StatusProyek: domain.ProjectRunning,
	}
	rec.Stamp(now, true)
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "p-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NamaProyek != "Gedung A" || got.TanggalMulai == nil || !got.TanggalMulai.Equal(start) {
		t.Fatalf("unexpected record: %+v", got)
	}

	update := &domain.Proyek{ID: "p-1", NamaProyek: "Gedung B", StatusProyek: domain.ProjectDone}
	update.Stamp(now.Add(time.Minute), false)
	updated, err := repo.Update(ctx, update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NamaProyek != "Gedung B" || updated.StatusProyek != domain.ProjectDone {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if updated.TanggalMulai != nil {
		t.Fatalf("update should replace optional fields, got %v", updated.TanggalMulai)
	}
	if updated.NilaiKontrak != 0 {
		t.Fatalf("update should replace every field, got nilai_kontrak %v", updated.NilaiKontrak)
	}
	if updated.CreatedAt.IsZero() {
		t.Fatalf("created_at must survive an update")
	}

	items, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].ID != "p-1" {
		t.Fatalf("unexpected list: %+v", items)
	}

	if err := repo.Delete(ctx, "p-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "p-1"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestRecordRepository_MissingRecord(t *testing.T) {
	repo := NewRecordRepository[domain.PiutangPelanggan](openTestDB(t))
	ctx := context.Background()

	rec := &domain.PiutangPelanggan{ID: "999", NamaPelanggan: "PT X", JumlahPiutang: 10}
	if _, err := repo.Update(ctx, rec); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("Update: expected ErrRecordNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "999"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("Delete: expected ErrRecordNotFound, got %v", err)
	}
}

func TestAuditRepository_Insert(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)

	err := repo.Insert(context.Background(), &domain.AuditEvent{
		ID:         "a-1",
		Entity:     "Proyek",
		RecordID:   "p-1",
		Action:     domain.AuditCreated,
		ActorID:    "u-1",
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var count int64
	if err := db.Model(&domain.AuditEvent{}).Where("record_id = ?", "p-1").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 audit row, got %d", count)
	}
}
