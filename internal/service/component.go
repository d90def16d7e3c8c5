package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ComponentService handles business logic for component lifecycle changes.
// It composes the identity resolver (create vs. version increment), the
// validity validator (gate before any write), the mapping synchronizer (the
// relational writes) and the audit recorder (best-effort, after every write).
type ComponentService struct {
	componentRepo repository.ComponentRepositoryInterface
	evidenceRepo  repository.EvidenceRepositoryInterface
	auditRepo     repository.AuditLogRepositoryInterface
	periodRepo    repository.PeriodRepositoryInterface
	resolver      *IdentityResolver
	validity      *ValidityValidator
	sync          *MappingSynchronizer
	audit         *AuditRecorder
	blobs         BlobStore
	validator     *validator.Validate
	log           *logger.Logger
}

// NewComponentService creates a new component service
func NewComponentService(
	componentRepo repository.ComponentRepositoryInterface,
	evidenceRepo repository.EvidenceRepositoryInterface,
	auditRepo repository.AuditLogRepositoryInterface,
	periodRepo repository.PeriodRepositoryInterface,
	resolver *IdentityResolver,
	validity *ValidityValidator,
	sync *MappingSynchronizer,
	audit *AuditRecorder,
	blobs BlobStore,
	validate *validator.Validate,
) *ComponentService {
	return &ComponentService{
		componentRepo: componentRepo,
		evidenceRepo:  evidenceRepo,
		auditRepo:     auditRepo,
		periodRepo:    periodRepo,
		resolver:      resolver,
		validity:      validity,
		sync:          sync,
		audit:         audit,
		blobs:         blobs,
		validator:     validate,
		log:           logger.New(),
	}
}

// ComponentCreateRequest is the typed decode of an inbound add-component call
type ComponentCreateRequest struct {
	ComponentCode     string     `json:"component_code" validate:"required,min=1,max=100"`
	Description       string     `json:"description" validate:"required,min=1,max=250"`
	CMCode            string     `json:"cm_code" validate:"required"`
	SkuCode           string     `json:"sku_code" validate:"required"`
	ValidityFrom      *time.Time `json:"validity_from"`
	ValidityTo        *time.Time `json:"validity_to"`
	MaterialType      string     `json:"material_type"`
	PackagingTypeID   string     `json:"packaging_type_id"`
	PackagingLevel    string     `json:"packaging_level"`
	ComponentQuantity float64    `json:"component_quantity"`
	ComponentUOM      string     `json:"component_uom"`
	BaseWeight        float64    `json:"base_weight"`
	WeightUOM         string     `json:"weight_uom"`
	PostConsumerPct   float64    `json:"post_consumer_pct"`
	PostIndustrialPct float64    `json:"post_industrial_pct"`
	CreatedBy         string     `json:"created_by" validate:"required"`
}

// ComponentUpdateRequest drives the operation-based update flow
type ComponentUpdateRequest struct {
	ComponentCode     string                 `json:"component_code" validate:"required"`
	Operation         models.ChangeOperation `json:"operation" validate:"required"`
	CMCode            string                 `json:"cm_code" validate:"required"`
	SkuCode           string                 `json:"sku_code" validate:"required"`
	Description       *string                `json:"description"`
	ValidityFrom      *time.Time             `json:"validity_from"`
	ValidityTo        *time.Time             `json:"validity_to"`
	MaterialType      *string                `json:"material_type"`
	PackagingTypeID   *string                `json:"packaging_type_id"`
	ComponentQuantity *float64               `json:"component_quantity"`
	BaseWeight        *float64               `json:"base_weight"`
	PostConsumerPct   *float64               `json:"post_consumer_pct"`
	PostIndustrialPct *float64               `json:"post_industrial_pct"`
	Reason            string                 `json:"reason"`
	Actor             string                 `json:"actor" validate:"required"`
}

// EvidenceUpload is one file attached to a component-details change
type EvidenceUpload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Category    string `json:"category"`
	Data        []byte `json:"-"`
}

// ComponentDetailsChangeRequest drives the action-based replace-details flow
type ComponentDetailsChangeRequest struct {
	ComponentCode     string              `json:"component_code" validate:"required"`
	Action            models.ChangeAction `json:"action" validate:"required"`
	CMCode            string              `json:"cm_code" validate:"required"`
	SkuCode           string              `json:"sku_code" validate:"required"`
	Description       *string             `json:"description"`
	ValidityFrom      *time.Time          `json:"validity_from"`
	ValidityTo        *time.Time          `json:"validity_to"`
	MaterialType      *string             `json:"material_type"`
	PackagingTypeID   *string             `json:"packaging_type_id"`
	ComponentQuantity *float64            `json:"component_quantity"`
	BaseWeight        *float64            `json:"base_weight"`
	PostConsumerPct   *float64            `json:"post_consumer_pct"`
	PostIndustrialPct *float64            `json:"post_industrial_pct"`
	Files             []EvidenceUpload    `json:"-"`
	Reason            string              `json:"reason"`
	Actor             string              `json:"actor" validate:"required"`
}

// ComponentChangeResponse reports the outcome of a component change
type ComponentChangeResponse struct {
	Component  *models.ComponentDetail     `json:"component,omitempty"`
	Mapping    *models.SkuComponentMapping `json:"mapping,omitempty"`
	OldVersion int                         `json:"old_version"`
	NewVersion int                         `json:"new_version"`
	Created    bool                        `json:"created"`
}

// ComponentVersionsResponse is a component's current row plus its full version history
type ComponentVersionsResponse struct {
	Current  *models.ComponentDetail  `json:"current"`
	Versions []models.ComponentDetail `json:"versions"`
}

// ComponentListResponse is a paginated component listing
type ComponentListResponse struct {
	Components []models.ComponentDetail `json:"components"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
}

type versionChange struct {
	OldVersion int                    `json:"old_version"`
	NewVersion int                    `json:"new_version"`
	Changes    map[string]interface{} `json:"changes,omitempty"`
}

// AddComponent creates a component (first version) or reuses the existing
// identity when the code is already known, then associates it with the SKU.
func (s *ComponentService) AddComponent(req *ComponentCreateRequest) (*ComponentChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	period, err := s.activePeriod()
	if err != nil {
		return nil, err
	}
	result, err := s.validity.ValidateWindow(req.ValidityFrom, req.ValidityTo, period)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, &WindowValidationError{Result: result}
	}

	identity, err := s.resolver.Resolve(req.ComponentCode)
	if err != nil {
		return nil, err
	}

	var component *models.ComponentDetail
	version := identity.CurrentVersion
	created := false

	if !identity.Exists {
		if err := s.validity.CheckDuplicateDescription(req.Description, req.ComponentCode); err != nil {
			return nil, err
		}
		component = &models.ComponentDetail{
			ComponentCode:     req.ComponentCode,
			Version:           1,
			Description:       req.Description,
			ValidityFrom:      req.ValidityFrom,
			ValidityTo:        req.ValidityTo,
			MaterialType:      req.MaterialType,
			PackagingTypeID:   req.PackagingTypeID,
			PackagingLevel:    req.PackagingLevel,
			ComponentQuantity: req.ComponentQuantity,
			ComponentUOM:      req.ComponentUOM,
			BaseWeight:        req.BaseWeight,
			WeightUOM:         req.WeightUOM,
			PostConsumerPct:   req.PostConsumerPct,
			PostIndustrialPct: req.PostIndustrialPct,
			IsActive:          true,
		}
		component.CreatedBy = req.CreatedBy
		if err := s.componentRepo.Create(component); err != nil {
			return nil, fmt.Errorf("failed to create component: %w", err)
		}
		version = 1
		created = true
		s.audit.Record(EntityComponent, req.ComponentCode, nil, component, models.ActionInsert, "component created", req.CreatedBy)
	} else {
		component, err = s.componentRepo.GetLatestActiveByCode(req.ComponentCode)
		if err != nil {
			return nil, fmt.Errorf("failed to load component %s: %w", req.ComponentCode, err)
		}
	}

	mapping := &models.SkuComponentMapping{
		CMCode:                   req.CMCode,
		SkuCode:                  req.SkuCode,
		ComponentCode:            req.ComponentCode,
		Version:                  version,
		ComponentPackagingTypeID: req.PackagingTypeID,
		PeriodID:                 period.Period,
		ValidFrom:                req.ValidityFrom,
		ValidTo:                  req.ValidityTo,
	}
	mapping.CreatedBy = req.CreatedBy
	mapping, mappingCreated, err := s.sync.InsertMapping(mapping)
	if err != nil {
		return nil, err
	}
	if mappingCreated {
		s.audit.Record(EntityMapping, mapping.ID.String(), nil, mapping, models.ActionInsert, "component associated with sku", req.CreatedBy)
	}

	return &ComponentChangeResponse{
		Component:  component,
		Mapping:    mapping,
		OldVersion: identity.CurrentVersion,
		NewVersion: version,
		Created:    created,
	}, nil
}

// UpdateComponent applies the operation-driven change flow:
//
//	update  -> a new mapping row at version+1; the component row is not mutated
//	replace -> the existing component row is amended in place; version unchanged
func (s *ComponentService) UpdateComponent(req *ComponentUpdateRequest) (*ComponentChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Operation != models.OperationUpdate && req.Operation != models.OperationReplace {
		return nil, apperrors.ErrInvalidOperation
	}

	identity, err := s.resolver.Resolve(req.ComponentCode)
	if err != nil {
		return nil, err
	}
	if !identity.Exists {
		return nil, apperrors.ErrComponentNotFound
	}

	period, err := s.activePeriod()
	if err != nil {
		return nil, err
	}
	if req.ValidityFrom != nil || req.ValidityTo != nil {
		result, err := s.validity.ValidateWindow(req.ValidityFrom, req.ValidityTo, period)
		if err != nil {
			return nil, err
		}
		if !result.IsValid {
			return nil, &WindowValidationError{Result: result}
		}
	}

	if req.Operation == models.OperationUpdate {
		// The component row only records the version it was created at; earlier
		// updates advanced the counter through mapping rows, so the increment
		// base comes from the synchronizer.
		newVersion, err := s.sync.NextVersionFor(req.ComponentCode, identity.CurrentVersion)
		if err != nil {
			return nil, err
		}
		oldVersion := newVersion - 1
		mapping := &models.SkuComponentMapping{
			CMCode:        req.CMCode,
			SkuCode:       req.SkuCode,
			ComponentCode: req.ComponentCode,
			Version:       newVersion,
			PeriodID:      period.Period,
			ValidFrom:     req.ValidityFrom,
			ValidTo:       req.ValidityTo,
		}
		if req.PackagingTypeID != nil {
			mapping.ComponentPackagingTypeID = *req.PackagingTypeID
		}
		mapping.CreatedBy = req.Actor

		mapping, _, err = s.sync.InsertMapping(mapping)
		if err != nil {
			return nil, err
		}

		change := versionChange{OldVersion: oldVersion, NewVersion: newVersion, Changes: detailChanges(req)}
		s.audit.Record(EntityComponent, req.ComponentCode,
			versionChange{OldVersion: oldVersion, NewVersion: oldVersion},
			change, models.ActionUpdate, req.Reason, req.Actor)

		return &ComponentChangeResponse{
			Mapping:    mapping,
			OldVersion: oldVersion,
			NewVersion: newVersion,
		}, nil
	}

	// replace: amend the current version in place
	component, err := s.componentRepo.GetLatestActiveByCode(req.ComponentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load component %s: %w", req.ComponentCode, err)
	}
	before := *component

	if req.Description != nil {
		if err := s.validity.CheckDuplicateDescription(*req.Description, req.ComponentCode); err != nil {
			return nil, err
		}
		component.Description = *req.Description
	}
	applyDetailPointers(component, req.ValidityFrom, req.ValidityTo, req.MaterialType, req.PackagingTypeID,
		req.ComponentQuantity, req.BaseWeight, req.PostConsumerPct, req.PostIndustrialPct)
	component.UpdatedBy = req.Actor

	if err := s.componentRepo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to replace component fields: %w", err)
	}
	s.audit.Record(EntityComponent, req.ComponentCode, before, component, models.ActionReplace, req.Reason, req.Actor)

	return &ComponentChangeResponse{
		Component:  component,
		OldVersion: identity.CurrentVersion,
		NewVersion: identity.CurrentVersion,
	}, nil
}

// ReplaceComponentDetails applies the action-driven details flow:
//
//	update  -> mutate the existing component_details row, swap its evidence files
//	replace -> insert a new component_details row at version+1 carrying forward
//	           unspecified fields, and a brand-new mapping at the new version;
//	           the old mapping keeps pointing at the old snapshot
func (s *ComponentService) ReplaceComponentDetails(ctx context.Context, req *ComponentDetailsChangeRequest) (*ComponentChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Action != models.ActionDetailUpdate && req.Action != models.ActionDetailReplace {
		return nil, apperrors.ErrInvalidAction
	}

	identity, err := s.resolver.Resolve(req.ComponentCode)
	if err != nil {
		return nil, err
	}
	if !identity.Exists {
		return nil, apperrors.ErrComponentNotFound
	}

	component, err := s.componentRepo.GetLatestActiveByCode(req.ComponentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load component %s: %w", req.ComponentCode, err)
	}

	if req.Action == models.ActionDetailUpdate {
		before := *component
		if req.Description != nil {
			if err := s.validity.CheckDuplicateDescription(*req.Description, req.ComponentCode); err != nil {
				return nil, err
			}
			component.Description = *req.Description
		}
		applyDetailPointers(component, req.ValidityFrom, req.ValidityTo, req.MaterialType, req.PackagingTypeID,
			req.ComponentQuantity, req.BaseWeight, req.PostConsumerPct, req.PostIndustrialPct)
		component.UpdatedBy = req.Actor

		if err := s.componentRepo.Update(component); err != nil {
			return nil, fmt.Errorf("failed to update component details: %w", err)
		}

		s.replaceEvidence(ctx, component, req.Files, req.Actor)
		s.audit.Record(EntityMapping, req.ComponentCode, &before, component, models.ActionUpdate, req.Reason, req.Actor)

		return &ComponentChangeResponse{
			Component:  component,
			OldVersion: component.Version,
			NewVersion: component.Version,
		}, nil
	}

	// replace: new component_details row at version+1, old rows left untouched
	newVersion := identity.CurrentVersion + 1
	next := *component
	next.BaseModel = models.BaseModel{CreatedBy: req.Actor}
	next.Version = newVersion
	if req.Description != nil {
		next.Description = *req.Description
	}
	applyDetailPointers(&next, req.ValidityFrom, req.ValidityTo, req.MaterialType, req.PackagingTypeID,
		req.ComponentQuantity, req.BaseWeight, req.PostConsumerPct, req.PostIndustrialPct)

	if err := s.componentRepo.Create(&next); err != nil {
		return nil, fmt.Errorf("failed to create component version %d: %w", newVersion, err)
	}
	s.uploadEvidence(ctx, &next, req.Files, req.Actor)

	period, err := s.activePeriod()
	if err != nil {
		return nil, err
	}
	mapping := &models.SkuComponentMapping{
		CMCode:        req.CMCode,
		SkuCode:       req.SkuCode,
		ComponentCode: req.ComponentCode,
		Version:       newVersion,
		PeriodID:      period.Period,
		ValidFrom:     next.ValidityFrom,
		ValidTo:       next.ValidityTo,
	}
	mapping.CreatedBy = req.Actor
	mapping, mappingCreated, err := s.sync.InsertMapping(mapping)
	if err != nil {
		return nil, err
	}
	if mappingCreated {
		s.audit.Record(EntityMapping, mapping.ID.String(), nil, mapping, models.ActionInsert, req.Reason, req.Actor)
	}

	s.audit.Record(EntityComponent, req.ComponentCode,
		versionChange{OldVersion: identity.CurrentVersion, NewVersion: identity.CurrentVersion},
		versionChange{OldVersion: identity.CurrentVersion, NewVersion: newVersion},
		models.ActionReplace, req.Reason, req.Actor)

	return &ComponentChangeResponse{
		Component:  &next,
		Mapping:    mapping,
		OldVersion: identity.CurrentVersion,
		NewVersion: newVersion,
	}, nil
}

// GetComponent returns a component's current row plus its full version history
func (s *ComponentService) GetComponent(code string) (*ComponentVersionsResponse, error) {
	current, err := s.componentRepo.GetLatestActiveByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	versions, err := s.componentRepo.GetVersionsByCode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to get component versions: %w", err)
	}
	return &ComponentVersionsResponse{Current: current, Versions: versions}, nil
}

// ListComponents returns a paginated listing of component detail rows
func (s *ComponentService) ListComponents(page, pageSize int) (*ComponentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	components, total, err := s.componentRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	return &ComponentListResponse{Components: components, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetAuditTrail returns the audit entries recorded for one component code
func (s *ComponentService) GetAuditTrail(code string, page, pageSize int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	return s.auditRepo.GetByEntity(EntityComponent, code, pageSize, (page-1)*pageSize)
}

func (s *ComponentService) activePeriod() (*models.ReportingPeriod, error) {
	period, err := s.periodRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActivePeriod
		}
		return nil, fmt.Errorf("failed to resolve active period: %w", err)
	}
	return period, nil
}

// replaceEvidence swaps a component version's evidence set: old blobs removed
// best-effort, new files uploaded and registered. Blob failures are logged and
// never abort the details change.
func (s *ComponentService) replaceEvidence(ctx context.Context, component *models.ComponentDetail, files []EvidenceUpload, actor string) {
	deleted, err := s.evidenceRepo.DeleteByComponent(component.ComponentCode, component.Version)
	if err != nil {
		s.log.WithField("component_code", component.ComponentCode).WithError(err).Warn("failed to delete old evidence rows")
	}
	for _, old := range deleted {
		if s.blobs == nil {
			s.log.WithField("blob_url", old.BlobURL).Warn("blob storage not configured, old evidence blob left behind")
			continue
		}
		if err := s.blobs.Delete(ctx, old.BlobURL); err != nil {
			s.log.WithField("blob_url", old.BlobURL).WithError(err).Warn("failed to delete old evidence blob")
		}
	}
	s.uploadEvidence(ctx, component, files, actor)
}

func (s *ComponentService) uploadEvidence(ctx context.Context, component *models.ComponentDetail, files []EvidenceUpload, actor string) {
	if len(files) > 0 && s.blobs == nil {
		s.log.WithField("component_code", component.ComponentCode).
			Warnf("blob storage not configured, skipping %d evidence uploads", len(files))
		return
	}
	for _, f := range files {
		url, err := s.blobs.Upload(ctx, f.FileName, f.ContentType, f.Data,
			"components", component.ComponentCode, "v"+strconv.Itoa(component.Version))
		if err != nil {
			s.log.WithField("file_name", f.FileName).WithError(err).Warn("failed to upload evidence blob")
			continue
		}
		row := &models.EvidenceFile{
			ComponentDetailID: component.ID,
			ComponentCode:     component.ComponentCode,
			Version:           component.Version,
			FileName:          f.FileName,
			ContentType:       f.ContentType,
			Category:          f.Category,
			BlobURL:           url,
			UploadedBy:        actor,
		}
		row.CreatedBy = actor
		if err := s.evidenceRepo.Create(row); err != nil {
			s.log.WithField("file_name", f.FileName).WithError(err).Warn("failed to register evidence file")
		}
	}
}

func detailChanges(req *ComponentUpdateRequest) map[string]interface{} {
	changes := map[string]interface{}{}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.ValidityFrom != nil {
		changes["validity_from"] = *req.ValidityFrom
	}
	if req.ValidityTo != nil {
		changes["validity_to"] = *req.ValidityTo
	}
	if req.MaterialType != nil {
		changes["material_type"] = *req.MaterialType
	}
	if req.PackagingTypeID != nil {
		changes["packaging_type_id"] = *req.PackagingTypeID
	}
	if req.ComponentQuantity != nil {
		changes["component_quantity"] = *req.ComponentQuantity
	}
	if req.BaseWeight != nil {
		changes["base_weight"] = *req.BaseWeight
	}
	if req.PostConsumerPct != nil {
		changes["post_consumer_pct"] = *req.PostConsumerPct
	}
	if req.PostIndustrialPct != nil {
		changes["post_industrial_pct"] = *req.PostIndustrialPct
	}
	return changes
}

func applyDetailPointers(component *models.ComponentDetail, validFrom, validTo *time.Time,
	materialType, packagingTypeID *string, quantity, baseWeight, postConsumer, postIndustrial *float64) {
	if validFrom != nil {
		component.ValidityFrom = validFrom
	}
	if validTo != nil {
		component.ValidityTo = validTo
	}
	if materialType != nil {
		component.MaterialType = *materialType
	}
	if packagingTypeID != nil {
		component.PackagingTypeID = *packagingTypeID
	}
	if quantity != nil {
		component.ComponentQuantity = *quantity
	}
	if baseWeight != nil {
		component.BaseWeight = *baseWeight
	}
	if postConsumer != nil {
		component.PostConsumerPct = *postConsumer
	}
	if postIndustrial != nil {
		component.PostIndustrialPct = *postIndustrial
	}
}
