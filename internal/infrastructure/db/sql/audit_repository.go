package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sikeu/finance-api/internal/core/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
