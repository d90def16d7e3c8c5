package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is an immutable snapshot of a component or mapping change. Rows are
// append-only: nothing in this codebase updates or deletes them, and a failed
// audit write never rolls back the operation that triggered it.
type AuditLog struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityType string          `json:"entity_type" gorm:"not null;size:60;index"`
	EntityID   string          `json:"entity_id" gorm:"size:100;index"`
	ActionType ActionType      `json:"action_type" gorm:"type:varchar(20);not null"`
	OldValues  json.RawMessage `json:"old_values,omitempty" gorm:"type:jsonb"`
	NewValues  json.RawMessage `json:"new_values,omitempty" gorm:"type:jsonb"`
	Reason     string          `json:"reason" gorm:"size:500"`
	Actor      string          `json:"actor" gorm:"size:100"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
