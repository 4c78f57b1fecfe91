package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// memRecordRepo is an in-memory RecordRepository keyed by record id.
type memRecordRepo[T any, P domain.RecordPtr[T]] struct {
	items     map[string]T
	createErr error
}

func newMemRecordRepo[T any, P domain.RecordPtr[T]]() *memRecordRepo[T, P] {
	return &memRecordRepo[T, P]{items: make(map[string]T)}
}

func (r *memRecordRepo[T, P]) List(_ context.Context) ([]T, error) {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []T
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memRecordRepo[T, P]) Get(_ context.Context, id string) (*T, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *memRecordRepo[T, P]) Create(_ context.Context, record *T) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items[P(record).RecordID()] = *record
	return nil
}

func (r *memRecordRepo[T, P]) Update(_ context.Context, record *T) (*T, error) {
	id := P(record).RecordID()
	if _, ok := r.items[id]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	r.items[id] = *record
	stored := r.items[id]
	return &stored, nil
}

func (r *memRecordRepo[T, P]) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type recordingPublisher struct {
	events []domain.AuditEvent
}

func (p *recordingPublisher) Publish(e domain.AuditEvent) {
	p.events = append(p.events, e)
}

func TestRecordService_ListEmptyIsNonNil(t *testing.T) {
	svc := NewRecordService[domain.Proyek](newMemRecordRepo[domain.Proyek](), nil)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestRecordService_CreateAssignsIDAndAudits(t *testing.T) {
	repo := newMemRecordRepo[domain.Proyek]()
	pub := &recordingPublisher{}
	svc := NewRecordService[domain.Proyek](repo, pub)

	created, err := svc.Create(context.Background(), "user-1", &domain.Proyek{ID: "client-chosen", NamaProyek: "Gedung A"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" || created.ID == "client-chosen" {
		t.Fatalf("expected server generated id, got %q", created.ID)
	}
	if created.StatusProyek != domain.ProjectPlanned {
		t.Fatalf("expected default status %q, got %q", domain.ProjectPlanned, created.StatusProyek)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if _, ok := repo.items[created.ID]; !ok {
		t.Fatalf("record not persisted")
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Entity != "Proyek" || ev.RecordID != created.ID || ev.Action != domain.AuditCreated || ev.ActorID != "user-1" {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestRecordService_CreateFailureDoesNotAudit(t *testing.T) {
	repo := newMemRecordRepo[domain.BiayaProyek]()
	repo.createErr = errors.New("db down")
	pub := &recordingPublisher{}
	svc := NewRecordService[domain.BiayaProyek](repo, pub)

	if _, err := svc.Create(context.Background(), "user-1", &domain.BiayaProyek{IDProyek: "p1", JumlahBiaya: 10}); err == nil {
		t.Fatalf("expected error")
	}
	if len(pub.events) != 0 {
		t.Fatalf("expected no audit events, got %d", len(pub.events))
	}
}

func TestRecordService_UpdateNotFound(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewRecordService[domain.PiutangPelanggan](newMemRecordRepo[domain.PiutangPelanggan](), pub)

	_, err := svc.Update(context.Background(), "user-1", "999", &domain.PiutangPelanggan{NamaPelanggan: "PT X"})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err.Error() != "PiutangPelanggan not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if len(pub.events) != 0 {
		t.Fatalf("expected no audit events")
	}
}

func TestRecordService_UpdateReplacesFields(t *testing.T) {
	repo := newMemRecordRepo[domain.PiutangPelanggan]()
	pub := &recordingPublisher{}
	svc := NewRecordService[domain.PiutangPelanggan](repo, pub)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", &domain.PiutangPelanggan{NamaPelanggan: "PT X", JumlahPiutang: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, "user-2", created.ID, &domain.PiutangPelanggan{
		ID:            "ignored",
		NamaPelanggan: "PT Y",
		JumlahPiutang: 250,
		StatusPiutang: domain.ReceivablePaid,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must come from the path, got %q", updated.ID)
	}
	if updated.NamaPelanggan != "PT Y" || updated.JumlahPiutang != 250 || updated.StatusPiutang != domain.ReceivablePaid {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if len(pub.events) != 2 || pub.events[1].Action != domain.AuditUpdated || pub.events[1].ActorID != "user-2" {
		t.Fatalf("unexpected audit events: %+v", pub.events)
	}
}

func TestRecordService_Delete(t *testing.T) {
	repo := newMemRecordRepo[domain.PembayaranPiutang]()
	pub := &recordingPublisher{}
	svc := NewRecordService[domain.PembayaranPiutang](repo, pub)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", &domain.PembayaranPiutang{IDPiutangPelanggan: "r1", JumlahPembayaran: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("record should be gone")
	}

	err = svc.Delete(ctx, "user-1", created.ID)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "PembayaranPiutang" {
		t.Fatalf("expected NotFoundError for PembayaranPiutang, got %v", err)
	}
	if len(pub.events) != 2 || pub.events[1].Action != domain.AuditDeleted {
		t.Fatalf("unexpected audit events: %+v", pub.events)
	}
}
