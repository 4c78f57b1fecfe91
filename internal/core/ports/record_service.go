package ports

import "context"

// RecordService exposes the CRUD use cases for one finance entity.
// actorID identifies the authenticated caller for the audit trail.
type RecordService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, actorID string, record *T) (*T, error)
	Update(ctx context.Context, actorID, id string, record *T) (*T, error)
	Delete(ctx context.Context, actorID, id string) error
}
