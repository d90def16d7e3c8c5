package service

import (
	"errors"
	"fmt"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/metrics"
	"sustainability-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkuService handles business logic for SKUs, including the copy-to-period
// workflow. Batch copies are processed per SKU; one SKU's failure is captured
// in the response errors list and does not stop the rest of the batch.
type SkuService struct {
	skuRepo     repository.SkuRepositoryInterface
	mappingRepo repository.MappingRepositoryInterface
	periodRepo  repository.PeriodRepositoryInterface
	sync        *MappingSynchronizer
	audit       *AuditRecorder
	metrics     *metrics.Registry
	validator   *validator.Validate
	log         *logger.Logger
}

// NewSkuService creates a new sku service
func NewSkuService(
	skuRepo repository.SkuRepositoryInterface,
	mappingRepo repository.MappingRepositoryInterface,
	periodRepo repository.PeriodRepositoryInterface,
	sync *MappingSynchronizer,
	audit *AuditRecorder,
	reg *metrics.Registry,
	validate *validator.Validate,
) *SkuService {
	return &SkuService{
		skuRepo:     skuRepo,
		mappingRepo: mappingRepo,
		periodRepo:  periodRepo,
		sync:        sync,
		audit:       audit,
		metrics:     reg,
		validator:   validate,
		log:         logger.New(),
	}
}

// SkuCreateRequest is the typed decode of an inbound create-sku call
type SkuCreateRequest struct {
	SkuCode           string           `json:"sku_code" validate:"required,min=1,max=100"`
	SkuDescription    string           `json:"sku_description" validate:"required,min=1,max=250"`
	CMCode            string           `json:"cm_code" validate:"required"`
	Period            string           `json:"period"`
	SkuType           models.SkuType   `json:"skutype"`
	Site              string           `json:"site"`
	PurchasedQuantity float64          `json:"purchased_quantity"`
	DualSourceSku     string           `json:"dual_source_sku"`
	Components        []ComponentEntry `json:"components"`
	CreatedBy         string           `json:"created_by" validate:"required"`
}

// SkuUpdateRequest drives SKU attribute updates and the mapping state machine.
// Components == nil means "no mapping transition"; an empty non-nil slice means
// "explicitly empty component list".
type SkuUpdateRequest struct {
	SkuCode           string           `json:"sku_code" validate:"required"`
	CMCode            string           `json:"cm_code" validate:"required"`
	Period            string           `json:"period"`
	SkuDescription    *string          `json:"sku_description"`
	SkuType           *models.SkuType  `json:"skutype"`
	Site              *string          `json:"site"`
	PurchasedQuantity *float64         `json:"purchased_quantity"`
	DualSourceSku     *string          `json:"dual_source_sku"`
	IsApproved        *bool            `json:"is_approved"`
	IsSendForApproval *bool            `json:"is_sendforapproval"`
	IsCMApproved      *bool            `json:"is_cmapproved"`
	Components        []ComponentEntry `json:"components"`
	Reason            string           `json:"reason"`
	Actor             string           `json:"actor" validate:"required"`
}

// SkuUpdateResponse reports the updated SKU and any mapping transition applied
type SkuUpdateResponse struct {
	Sku      *models.Sku    `json:"sku"`
	Mappings *ReplaceResult `json:"mappings,omitempty"`
}

// SkuListResponse is a paginated SKU listing for one contract manufacturer
type SkuListResponse struct {
	Skus     []models.Sku `json:"skus"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// CopyToPeriodRequest is a batch copy of SKUs into a target reporting period
type CopyToPeriodRequest struct {
	CMCode       string   `json:"cm_code" validate:"required"`
	TargetPeriod string   `json:"target_period" validate:"required"`
	SkuCodes     []string `json:"sku_codes" validate:"required,min=1"`
	Actor        string   `json:"actor" validate:"required"`
}

// Copy actions reported per SKU in a batch copy
const (
	CopyActionSkipped = "skipped"
	CopyActionCopied  = "copied"
	CopyActionCreated = "created"
)

// CopySkuResult reports the outcome for one SKU in a batch copy
type CopySkuResult struct {
	SkuCode        string    `json:"sku_code"`
	Action         string    `json:"action"`
	SkuID          uuid.UUID `json:"sku_id"`
	MappingsCloned int       `json:"mappings_cloned"`
}

// CopySkuError reports one failed SKU in a batch copy
type CopySkuError struct {
	SkuCode string `json:"sku_code"`
	Error   string `json:"error"`
}

// CopyToPeriodResponse reports a whole batch copy
type CopyToPeriodResponse struct {
	TargetPeriod string          `json:"target_period"`
	Results      []CopySkuResult `json:"results"`
	Errors       []CopySkuError  `json:"errors,omitempty"`
}

// CreateSku creates a SKU under the given (or active) period and optionally
// associates its initial component list.
func (s *SkuService) CreateSku(req *SkuCreateRequest) (*models.Sku, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	period := req.Period
	if period == "" {
		active, err := s.activePeriod()
		if err != nil {
			return nil, err
		}
		period = active.Period
	}

	if _, err := s.skuRepo.GetByCodeAndPeriod(req.SkuCode, period); err == nil {
		return nil, apperrors.ErrSkuExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check sku existence: %w", err)
	}
	if err := s.checkDuplicateDescription(req.SkuDescription, req.SkuCode); err != nil {
		return nil, err
	}

	skuType := req.SkuType
	if skuType == "" {
		skuType = models.SkuTypeExternal
	}
	sku := &models.Sku{
		SkuCode:           req.SkuCode,
		SkuDescription:    req.SkuDescription,
		CMCode:            req.CMCode,
		Period:            period,
		SkuType:           skuType,
		Site:              req.Site,
		PurchasedQuantity: req.PurchasedQuantity,
		DualSourceSku:     req.DualSourceSku,
		IsActive:          true,
	}
	sku.CreatedBy = req.CreatedBy
	if err := s.skuRepo.Create(sku); err != nil {
		return nil, fmt.Errorf("failed to create sku: %w", err)
	}
	s.audit.Record(EntitySku, sku.SkuCode, nil, sku, models.ActionInsert, "sku created", req.CreatedBy)

	if skuType == models.SkuTypeExternal && len(req.Components) > 0 {
		if _, err := s.sync.InsertAllFor(req.CMCode, req.SkuCode, period, req.Components, "initial component list", req.CreatedBy); err != nil {
			return nil, err
		}
	}
	return sku, nil
}

// UpdateSku updates a SKU's attribute fields and drives the mapping state
// machine from the effective skutype and the provided component list.
func (s *SkuService) UpdateSku(req *SkuUpdateRequest) (*SkuUpdateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	period := req.Period
	if period == "" {
		active, err := s.activePeriod()
		if err != nil {
			return nil, err
		}
		period = active.Period
	}

	sku, err := s.skuRepo.GetByCodeAndPeriod(req.SkuCode, period)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSkuNotFound
		}
		return nil, fmt.Errorf("failed to load sku: %w", err)
	}
	before := *sku

	if req.SkuDescription != nil {
		if err := s.checkDuplicateDescription(*req.SkuDescription, sku.SkuCode); err != nil {
			return nil, err
		}
		sku.SkuDescription = *req.SkuDescription
	}
	if req.SkuType != nil {
		if *req.SkuType != models.SkuTypeInternal && *req.SkuType != models.SkuTypeExternal {
			return nil, apperrors.ErrInvalidSkuType
		}
		sku.SkuType = *req.SkuType
	}
	if req.Site != nil {
		sku.Site = *req.Site
	}
	if req.PurchasedQuantity != nil {
		sku.PurchasedQuantity = *req.PurchasedQuantity
	}
	if req.DualSourceSku != nil {
		sku.DualSourceSku = *req.DualSourceSku
	}
	if req.IsApproved != nil {
		sku.IsApproved = *req.IsApproved
	}
	if req.IsSendForApproval != nil {
		sku.IsSendForApproval = *req.IsSendForApproval
	}
	if req.IsCMApproved != nil {
		sku.IsCMApproved = *req.IsCMApproved
	}
	sku.UpdatedBy = req.Actor

	if err := s.skuRepo.Update(sku); err != nil {
		return nil, fmt.Errorf("failed to update sku: %w", err)
	}
	s.audit.Record(EntitySku, sku.SkuCode, before, sku, models.ActionUpdate, req.Reason, req.Actor)

	mappings, err := s.sync.SyncForSkuType(sku.SkuType, req.CMCode, req.SkuCode, period, req.Components, req.Reason, req.Actor)
	if err != nil {
		return nil, err
	}
	return &SkuUpdateResponse{Sku: sku, Mappings: mappings}, nil
}

// GetSku returns one SKU; an empty period selects the most recent row for the code
func (s *SkuService) GetSku(skuCode, period string) (*models.Sku, error) {
	var sku *models.Sku
	var err error
	if period == "" {
		sku, err = s.skuRepo.GetLatestByCode(skuCode)
	} else {
		sku, err = s.skuRepo.GetByCodeAndPeriod(skuCode, period)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSkuNotFound
		}
		return nil, fmt.Errorf("failed to get sku: %w", err)
	}
	return sku, nil
}

// ListByCM returns a paginated SKU listing for one contract manufacturer
func (s *SkuService) ListByCM(cmCode string, page, pageSize int) (*SkuListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	skus, total, err := s.skuRepo.GetByCM(cmCode, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list skus: %w", err)
	}
	return &SkuListResponse{Skus: skus, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetMappings returns a SKU's active component mappings
func (s *SkuService) GetMappings(cmCode, skuCode string) ([]models.SkuComponentMapping, error) {
	mappings, err := s.mappingRepo.GetActiveByCMAndSku(cmCode, skuCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get mappings: %w", err)
	}
	return mappings, nil
}

// CopySkusToPeriod copies a batch of SKUs into the target reporting period.
// Per SKU: an existing (sku_code, target period) row is skipped with zero
// writes; otherwise the latest row for the code is cloned with approval flags
// reset and is_copied set; a code unknown to the system gets a minimal fresh
// row. Mappings are cloned additively into the target period alongside any
// copied or created SKU.
func (s *SkuService) CopySkusToPeriod(req *CopyToPeriodRequest) (*CopyToPeriodResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if _, err := s.periodRepo.GetByPeriod(req.TargetPeriod); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to resolve target period: %w", err)
	}

	resp := &CopyToPeriodResponse{TargetPeriod: req.TargetPeriod}
	for _, code := range req.SkuCodes {
		result, err := s.copyOne(code, req.TargetPeriod, req.CMCode, req.Actor)
		if err != nil {
			s.log.WithFields(map[string]interface{}{
				"sku_code":      code,
				"target_period": req.TargetPeriod,
			}).WithError(err).Error("sku copy failed")
			resp.Errors = append(resp.Errors, CopySkuError{SkuCode: code, Error: err.Error()})
			continue
		}
		resp.Results = append(resp.Results, *result)
	}
	return resp, nil
}

func (s *SkuService) copyOne(skuCode, targetPeriod, cmCode, actor string) (*CopySkuResult, error) {
	existing, err := s.skuRepo.GetByCodeAndPeriod(skuCode, targetPeriod)
	if err == nil {
		if s.metrics != nil {
			s.metrics.SkusCopiedTotal.WithLabelValues(CopyActionSkipped).Inc()
		}
		return &CopySkuResult{SkuCode: skuCode, Action: CopyActionSkipped, SkuID: existing.ID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check target period: %w", err)
	}

	var sku *models.Sku
	action := CopyActionCreated

	source, err := s.skuRepo.GetLatestByCode(skuCode)
	switch {
	case err == nil:
		sku = &models.Sku{
			SkuCode:           skuCode,
			SkuDescription:    source.SkuDescription,
			CMCode:            cmCode,
			Period:            targetPeriod,
			SkuType:           source.SkuType,
			Site:              source.Site,
			PurchasedQuantity: source.PurchasedQuantity,
			DualSourceSku:     source.DualSourceSku,
			IsCopied:          true,
			IsActive:          true,
		}
		action = CopyActionCopied
	case errors.Is(err, gorm.ErrRecordNotFound):
		sku = &models.Sku{
			SkuCode:        skuCode,
			SkuDescription: skuCode,
			CMCode:         cmCode,
			Period:         targetPeriod,
			SkuType:        models.SkuTypeExternal,
			IsActive:       true,
		}
	default:
		return nil, fmt.Errorf("failed to load source sku: %w", err)
	}

	sku.CreatedBy = actor
	if err := s.skuRepo.Create(sku); err != nil {
		return nil, fmt.Errorf("failed to create sku for period %s: %w", targetPeriod, err)
	}
	s.audit.Record(EntitySku, sku.SkuCode, nil, sku, models.ActionInsert, "sku copied to period "+targetPeriod, actor)

	cloned, err := s.cloneMappings(cmCode, skuCode, targetPeriod, actor)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SkusCopiedTotal.WithLabelValues(action).Inc()
	}
	return &CopySkuResult{SkuCode: skuCode, Action: action, SkuID: sku.ID, MappingsCloned: cloned}, nil
}

// cloneMappings clones each active mapping for (cm_code, sku_code) into the
// target period, preserving component_code, version and packaging fields. The
// clone is additive; the source rows are left untouched.
func (s *SkuService) cloneMappings(cmCode, skuCode, targetPeriod, actor string) (int, error) {
	sources, err := s.mappingRepo.GetActiveByCMAndSku(cmCode, skuCode)
	if err != nil {
		return 0, fmt.Errorf("failed to load mappings for clone: %w", err)
	}

	cloned := 0
	for _, src := range sources {
		clone := &models.SkuComponentMapping{
			CMCode:                   src.CMCode,
			SkuCode:                  src.SkuCode,
			ComponentCode:            src.ComponentCode,
			Version:                  src.Version,
			ComponentPackagingTypeID: src.ComponentPackagingTypeID,
			PeriodID:                 targetPeriod,
			ValidFrom:                src.ValidFrom,
			ValidTo:                  src.ValidTo,
		}
		clone.CreatedBy = actor

		inserted, created, err := s.sync.InsertMapping(clone)
		if err != nil {
			s.log.WithFields(map[string]interface{}{
				"component_code": src.ComponentCode,
				"target_period":  targetPeriod,
			}).WithError(err).Warn("mapping clone failed; continuing")
			continue
		}
		if created {
			cloned++
			s.audit.Record(EntityMapping, inserted.ID.String(), nil, inserted, models.ActionInsert, "mapping cloned to period "+targetPeriod, actor)
		}
	}
	return cloned, nil
}

func (s *SkuService) activePeriod() (*models.ReportingPeriod, error) {
	period, err := s.periodRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActivePeriod
		}
		return nil, fmt.Errorf("failed to resolve active period: %w", err)
	}
	return period, nil
}

// checkDuplicateDescription enforces system-wide uniqueness of sku_description
// among active SKUs, compared case/whitespace-normalized.
func (s *SkuService) checkDuplicateDescription(description, skuCode string) error {
	existing, err := s.skuRepo.FindActiveByDescription(description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check sku description: %w", err)
	}
	if existing.SkuCode != skuCode {
		return apperrors.ErrSkuDescriptionTaken
	}
	return nil
}
