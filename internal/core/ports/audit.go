package ports

import (
	"context"

	"github.com/sikeu/finance-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditPublisher hands audit events to the asynchronous writer.
type AuditPublisher interface {
	Publish(event domain.AuditEvent)
}
