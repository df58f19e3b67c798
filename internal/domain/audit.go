package domain

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditDelete  AuditAction = "delete"
	AuditRefund  AuditAction = "refund"
	AuditBlock   AuditAction = "block"
	AuditUnblock AuditAction = "unblock"
)

const (
	AuditOutcomeOK     = "ok"
	AuditOutcomeFailed = "failed"
)

// AuditEntry records one staff mutation proxied to the backend.
type AuditEntry struct {
	ID         string          `json:"id"`
	Action     AuditAction     `json:"action"`
	ResourceID string          `json:"resource_id"`
	Actor      string          `json:"actor"`
	Details    json.RawMessage `json:"details,omitempty"`
	Outcome    string          `json:"outcome"`
	CreatedAt  time.Time       `json:"created_at"`
}
