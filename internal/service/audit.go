package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// recordAudit writes an audit entry for a staff mutation. A failed write
// is logged and never fails the mutation itself.
func recordAudit(
	ctx context.Context,
	repo ports.AuditRepo,
	log logger.Logger,
	action domain.AuditAction,
	resourceID string,
	details any,
	opErr error,
) {
	if repo == nil {
		return
	}

	entry := &domain.AuditEntry{
		ID:         uuid.New().String(),
		Action:     action,
		ResourceID: resourceID,
		Actor:      ActorFrom(ctx),
		Outcome:    domain.AuditOutcomeOK,
		CreatedAt:  time.Now().UTC(),
	}
	if opErr != nil {
		entry.Outcome = domain.AuditOutcomeFailed
	}
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = b
		}
	}

	if err := repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		log.Error("failed to write audit entry",
			logger.String("action", string(action)),
			logger.String("resource_id", resourceID),
			logger.String("error", err.Error()),
		)
	}
}
