package service

import (
	"encoding/json"

	"sustainability-portal-backend/internal/database/models"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/metrics"
	"sustainability-portal-backend/internal/repository"
)

// Entity type labels used in the audit log
const (
	EntityComponent  = "component_details"
	EntityMapping    = "sku_component_mapping"
	EntitySku        = "sku"
	EntityContractor = "contractor"
	EntityAgreement  = "signoff_agreement"
	EntityEvidence   = "evidence_file"
)

// AuditItem is one entity in a bulk audit call
type AuditItem struct {
	EntityID string
	Before   interface{}
	After    interface{}
}

// AuditRecorder appends immutable before/after snapshots for every mutating
// operation. It is fire-and-forget: serialization or write failures are logged
// and swallowed, and callers never see them. Snapshots are opaque; the recorder
// never interprets their contents.
type AuditRecorder struct {
	repo    repository.AuditLogRepositoryInterface
	metrics *metrics.Registry
	log     *logger.Logger
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(repo repository.AuditLogRepositoryInterface, reg *metrics.Registry) *AuditRecorder {
	return &AuditRecorder{
		repo:    repo,
		metrics: reg,
		log:     logger.New(),
	}
}

// Record appends a single audit entry. Never returns an error.
func (a *AuditRecorder) Record(entityType, entityID string, before, after interface{}, action models.ActionType, reason, actor string) {
	entry := &models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		ActionType: action,
		Reason:     reason,
		Actor:      actor,
	}

	if before != nil {
		data, err := json.Marshal(before)
		if err != nil {
			a.fail(entityType, entityID, err)
			return
		}
		entry.OldValues = data
	}
	if after != nil {
		data, err := json.Marshal(after)
		if err != nil {
			a.fail(entityType, entityID, err)
			return
		}
		entry.NewValues = data
	}

	if err := a.repo.Create(entry); err != nil {
		a.fail(entityType, entityID, err)
	}
}

// RecordAll appends one entry per item. A failure on one item does not stop
// processing of the rest.
func (a *AuditRecorder) RecordAll(entityType string, items []AuditItem, action models.ActionType, reason, actor string) {
	for _, item := range items {
		a.Record(entityType, item.EntityID, item.Before, item.After, action, reason, actor)
	}
}

func (a *AuditRecorder) fail(entityType, entityID string, err error) {
	a.log.WithFields(map[string]interface{}{
		"entity_type": entityType,
		"entity_id":   entityID,
	}).WithError(err).Warn("audit write failed; continuing without audit entry")
	if a.metrics != nil {
		a.metrics.AuditWriteFailures.Inc()
	}
}
