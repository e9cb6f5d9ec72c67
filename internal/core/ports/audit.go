package ports

import (
	"context"

	"github.com/personal/inventory-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Record(ctx context.Context, event *domain.AuthEvent) error
}

// AuditSink accepts audit events for asynchronous persistence. Enqueue must
// not block the authentication path.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
