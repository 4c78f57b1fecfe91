package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

// RecordService implements the CRUD use cases for one finance entity and
// publishes an audit event after every successful mutation.
type RecordService[T any, P domain.RecordPtr[T]] struct {
	repo   ports.RecordRepository[T]
	audit  ports.AuditPublisher
	entity string
	now    func() time.Time
}

// NewRecordService wires a service for T. audit may be nil.
func NewRecordService[T any, P domain.RecordPtr[T]](repo ports.RecordRepository[T], audit ports.AuditPublisher) *RecordService[T, P] {
	return &RecordService[T, P]{
		repo:   repo,
		audit:  audit,
		entity: P(new(T)).EntityName(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *RecordService[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *RecordService[T, P]) Create(ctx context.Context, actorID string, record *T) (*T, error) {
	p := P(record)
	p.SetRecordID(uuid.NewString())
	p.Stamp(s.now(), true)
	applyDefaults(p)

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.publish(domain.AuditCreated, p.RecordID(), actorID)
	return record, nil
}

func (s *RecordService[T, P]) Update(ctx context.Context, actorID, id string, record *T) (*T, error) {
	p := P(record)
	p.SetRecordID(id)
	p.Stamp(s.now(), false)
	applyDefaults(p)

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.publish(domain.AuditUpdated, id, actorID)
	return updated, nil
}

func (s *RecordService[T, P]) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapErr(err)
	}

	s.publish(domain.AuditDeleted, id, actorID)
	return nil
}

func (s *RecordService[T, P]) mapErr(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NewNotFoundError(s.entity)
	}
	return err
}

func (s *RecordService[T, P]) publish(action domain.AuditAction, recordID, actorID string) {
	if s.audit == nil {
		return
	}
	s.audit.Publish(domain.AuditEvent{
		ID:         uuid.NewString(),
		Entity:     s.entity,
		RecordID:   recordID,
		Action:     action,
		ActorID:    actorID,
		OccurredAt: s.now(),
	})
}

func applyDefaults(record domain.Record) {
	if d, ok := record.(domain.Defaulter); ok {
		d.ApplyDefaults()
	}
}
