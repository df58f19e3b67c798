package ports

import (
	"context"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type AuditRepo interface {
	Create(ctx context.Context, e *domain.AuditEntry) error
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
