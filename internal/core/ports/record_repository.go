package ports

import "context"

// RecordRepository is the storage contract shared by all finance entities.
// Get, Update and Delete report domain.ErrRecordNotFound for unknown ids.
type RecordRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) error
	// Update replaces every mutable field of the record identified by its id
	// and returns the stored result.
	Update(ctx context.Context, record *T) (*T, error)
	Delete(ctx context.Context, id string) error
}
