package service

import (
	"errors"
	"fmt"
	"time"

	"sustainability-portal-backend/internal/database/models"
	"sustainability-portal-backend/internal/metrics"
	"sustainability-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// ComponentEntry is one requested component association for a SKU
type ComponentEntry struct {
	ComponentCode            string     `json:"component_code" validate:"required"`
	Version                  int        `json:"version" validate:"min=0"`
	ComponentPackagingTypeID string     `json:"component_packaging_type_id"`
	ValidFrom                *time.Time `json:"valid_from"`
	ValidTo                  *time.Time `json:"valid_to"`
}

// DeleteResult reports a delete-all pass over a SKU's mapping set
type DeleteResult struct {
	DeletedCount   int64                        `json:"deleted_count"`
	DeletedRecords []models.SkuComponentMapping `json:"deleted_records,omitempty"`
}

// InsertDetail reports the outcome for one component entry in a bulk insert
type InsertDetail struct {
	ComponentCode string `json:"component_code"`
	Version       int    `json:"version"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}

// InsertResult reports a bulk insert pass; a failed entry never aborts its siblings
type InsertResult struct {
	InsertedCount int            `json:"inserted_count"`
	FailedCount   int            `json:"failed_count"`
	Details       []InsertDetail `json:"details"`
}

// ReplaceResult combines the two halves of a wholesale replacement
type ReplaceResult struct {
	Deleted  *DeleteResult `json:"deleted"`
	Inserted *InsertResult `json:"inserted"`
}

// MappingSynchronizer maintains the many-to-many association between SKUs and
// components. The only supported update strategy for a SKU's mapping set is
// delete-all-then-insert: the set is treated as a replaceable value, not a
// mutable collection.
//
// Multi-step operations are not wrapped in a transaction; each statement is
// atomic on its own and partial outcomes are surfaced through per-item results.
type MappingSynchronizer struct {
	mappingRepo repository.MappingRepositoryInterface
	audit       *AuditRecorder
	metrics     *metrics.Registry
}

// NewMappingSynchronizer creates a new mapping synchronizer
func NewMappingSynchronizer(mappingRepo repository.MappingRepositoryInterface, audit *AuditRecorder, reg *metrics.Registry) *MappingSynchronizer {
	return &MappingSynchronizer{
		mappingRepo: mappingRepo,
		audit:       audit,
		metrics:     reg,
	}
}

// InsertMapping inserts one mapping row, idempotent over
// (cm_code, sku_code, component_code, version, period_id): when the tuple
// already exists the existing row is returned and created is false.
func (s *MappingSynchronizer) InsertMapping(mapping *models.SkuComponentMapping) (*models.SkuComponentMapping, bool, error) {
	existing, err := s.mappingRepo.FindByTuple(
		mapping.CMCode, mapping.SkuCode, mapping.ComponentCode, mapping.Version, mapping.PeriodID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up mapping tuple: %w", err)
	}

	if mapping.Version < 1 {
		mapping.Version = 1
	}
	mapping.IsActive = true
	if err := s.mappingRepo.Create(mapping); err != nil {
		return nil, false, fmt.Errorf("failed to insert mapping: %w", err)
	}
	return mapping, true, nil
}

// NextVersionFor computes the version an update operation should write next
// for a component code. The update flow versions through mapping rows without
// mutating component_details, so the component row alone understates the
// counter once an update has happened; the high-water mark is the greater of
// the component's current version and the highest mapped version.
func (s *MappingSynchronizer) NextVersionFor(componentCode string, currentVersion int) (int, error) {
	maxMapped, err := s.mappingRepo.GetMaxVersionByComponent(componentCode)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve highest mapped version: %w", err)
	}
	if maxMapped > currentVersion {
		currentVersion = maxMapped
	}
	return currentVersion + 1, nil
}

// DeleteAllFor selects all mapping rows for (cm_code, sku_code) first for audit
// capture, deletes them, and returns what was deleted. One DELETE audit entry
// is emitted per removed record.
func (s *MappingSynchronizer) DeleteAllFor(cmCode, skuCode, reason, actor string) (*DeleteResult, error) {
	records, err := s.mappingRepo.GetByCMAndSku(cmCode, skuCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings for deletion: %w", err)
	}
	if len(records) == 0 {
		return &DeleteResult{DeletedCount: 0}, nil
	}

	count, err := s.mappingRepo.DeleteByCMAndSku(cmCode, skuCode)
	if err != nil {
		return nil, fmt.Errorf("failed to delete mappings: %w", err)
	}

	items := make([]AuditItem, len(records))
	for i, rec := range records {
		items[i] = AuditItem{EntityID: rec.ID.String(), Before: rec}
	}
	s.audit.RecordAll(EntityMapping, items, models.ActionDelete, reason, actor)

	return &DeleteResult{DeletedCount: count, DeletedRecords: records}, nil
}

// InsertAllFor inserts one mapping per component entry under the given period.
// A failure on one entry is recorded in the result details and processing
// continues for the rest. One INSERT audit entry is emitted per created row.
func (s *MappingSynchronizer) InsertAllFor(cmCode, skuCode, periodID string, components []ComponentEntry, reason, actor string) (*InsertResult, error) {
	result := &InsertResult{Details: make([]InsertDetail, 0, len(components))}

	for _, entry := range components {
		mapping := &models.SkuComponentMapping{
			CMCode:                   cmCode,
			SkuCode:                  skuCode,
			ComponentCode:            entry.ComponentCode,
			Version:                  entry.Version,
			ComponentPackagingTypeID: entry.ComponentPackagingTypeID,
			PeriodID:                 periodID,
			ValidFrom:                entry.ValidFrom,
			ValidTo:                  entry.ValidTo,
		}
		mapping.CreatedBy = actor

		inserted, created, err := s.InsertMapping(mapping)
		detail := InsertDetail{ComponentCode: entry.ComponentCode, Version: mapping.Version}
		if err != nil {
			detail.Success = false
			detail.Error = err.Error()
			result.FailedCount++
			result.Details = append(result.Details, detail)
			continue
		}

		detail.Success = true
		detail.Version = inserted.Version
		result.InsertedCount++
		result.Details = append(result.Details, detail)

		if created {
			s.audit.Record(EntityMapping, inserted.ID.String(), nil, inserted, models.ActionInsert, reason, actor)
		}
	}

	return result, nil
}

// ReplaceAll replaces a SKU's mapping set wholesale: delete-all then insert-new.
// After it completes, the mapping set for (cm_code, sku_code) equals exactly
// the requested components, regardless of overlap with the previous set.
func (s *MappingSynchronizer) ReplaceAll(cmCode, skuCode, periodID string, components []ComponentEntry, reason, actor string) (*ReplaceResult, error) {
	deleted, err := s.DeleteAllFor(cmCode, skuCode, reason, actor)
	if err != nil {
		return nil, err
	}

	inserted, err := s.InsertAllFor(cmCode, skuCode, periodID, components, reason, actor)
	if err != nil {
		return &ReplaceResult{Deleted: deleted}, err
	}

	if s.metrics != nil {
		s.metrics.MappingsReplacedTotal.Inc()
	}
	return &ReplaceResult{Deleted: deleted, Inserted: inserted}, nil
}

// SyncForSkuType drives a SKU's component-association lifecycle.
//
//	internal                      -> zero mappings (delete-all)
//	external, non-empty list      -> mappings equal exactly the list (replace-all)
//	external, empty list          -> zero mappings (delete-all)
//	no type change, list provided -> replace-all (mapping-only update)
//	no list provided              -> no mapping transition at all
//
// components == nil means "no list provided"; an empty non-nil slice means
// "explicitly empty list".
func (s *MappingSynchronizer) SyncForSkuType(skuType models.SkuType, cmCode, skuCode, periodID string, components []ComponentEntry, reason, actor string) (*ReplaceResult, error) {
	if skuType == models.SkuTypeInternal {
		deleted, err := s.DeleteAllFor(cmCode, skuCode, reason, actor)
		if err != nil {
			return nil, err
		}
		return &ReplaceResult{Deleted: deleted}, nil
	}

	if components == nil {
		return nil, nil
	}
	if len(components) == 0 {
		deleted, err := s.DeleteAllFor(cmCode, skuCode, reason, actor)
		if err != nil {
			return nil, err
		}
		return &ReplaceResult{Deleted: deleted}, nil
	}

	return s.ReplaceAll(cmCode, skuCode, periodID, components, reason, actor)
}
