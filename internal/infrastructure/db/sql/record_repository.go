package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// RecordRepository stores one finance entity per table using the record's
// primary key for every lookup.
type RecordRepository[T any, P domain.RecordPtr[T]] struct {
	db    *gorm.DB
	table string
}

func NewRecordRepository[T any, P domain.RecordPtr[T]](db *gorm.DB) *RecordRepository[T, P] {
	return &RecordRepository[T, P]{db: db, table: P(new(T)).TableName()}
}

func (r *RecordRepository[T, P]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := []T{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return items, nil
}

func (r *RecordRepository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := new(T)
	P(rec).SetRecordID(id)
	if err := r.db.WithContext(ctx).Take(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.table, err)
	}
	return rec, nil
}

func (r *RecordRepository[T, P]) Create(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// Update writes every column except created_at, then re-reads the row.
// RowsAffected is not used: mysql reports zero for rows whose values did not
// change.
func (r *RecordRepository[T, P]) Update(ctx context.Context, record *T) (*T, error) {
	updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(updateCtx).Model(record).Select("*").Omit("created_at").Updates(record)
	if res.Error != nil {
		return nil, fmt.Errorf("update %s: %w", r.table, res.Error)
	}
	return r.Get(ctx, P(record).RecordID())
}

func (r *RecordRepository[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := new(T)
	P(rec).SetRecordID(id)
	res := r.db.WithContext(ctx).Delete(rec)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
