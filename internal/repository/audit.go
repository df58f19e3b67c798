package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const maxAuditPage = 500

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Create(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_log (id, action, resource_id, actor, details, outcome, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var details any
	if len(e.Details) > 0 {
		details = []byte(e.Details)
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Action, e.ResourceID, e.Actor,
		details, e.Outcome, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry %s: %w", e.ID, err)
	}

	return nil
}

// List returns the newest entries first.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 || limit > maxAuditPage {
		limit = maxAuditPage
	}

	query := `SELECT id, action, resource_id, actor, details, outcome, created_at
              FROM audit_log
              ORDER BY created_at DESC
              LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()

	var res []*domain.AuditEntry
	for rows.Next() {
		var (
			e       domain.AuditEntry
			details []byte
		)
		if err = rows.Scan(&e.ID, &e.Action, &e.ResourceID, &e.Actor, &details, &e.Outcome, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Details = details
		res = append(res, &e)
	}

	return res, rows.Err()
}
