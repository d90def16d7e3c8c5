package service

import (
	"errors"
	"fmt"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ContractorService handles business logic for contract manufacturers and
// their workflow contacts. Contractor creation is the one workflow wrapped in
// a database transaction: a contractor row without its contacts is useless to
// the sign-off flow.
type ContractorService struct {
	contractorRepo repository.ContractorRepositoryInterface
	audit          *AuditRecorder
	validator      *validator.Validate
}

// NewContractorService creates a new contractor service
func NewContractorService(contractorRepo repository.ContractorRepositoryInterface, audit *AuditRecorder, validate *validator.Validate) *ContractorService {
	return &ContractorService{
		contractorRepo: contractorRepo,
		audit:          audit,
		validator:      validate,
	}
}

// ContactInput is one contact in a create-contractor call
type ContactInput struct {
	Name  string             `json:"name" validate:"required,max=150"`
	Email string             `json:"email" validate:"required,email"`
	Role  models.ContactRole `json:"role" validate:"required,oneof=SPOC SRM"`
}

// ContractorCreateRequest is the typed decode of an inbound create-contractor call
type ContractorCreateRequest struct {
	CMCode        string         `json:"cm_code" validate:"required,min=1,max=60"`
	CMDescription string         `json:"cm_description" validate:"required,max=250"`
	Region        string         `json:"region"`
	Contacts      []ContactInput `json:"contacts" validate:"required,min=1,dive"`
	CreatedBy     string         `json:"created_by" validate:"required"`
}

// ContractorListResponse is a paginated contractor listing
type ContractorListResponse struct {
	Contractors []models.Contractor `json:"contractors"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// CreateContractor creates a contractor together with its contacts in one
// transaction; any failure rolls the whole creation back.
func (s *ContractorService) CreateContractor(req *ContractorCreateRequest) (*models.Contractor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.contractorRepo.GetByCMCode(req.CMCode); err == nil {
		return nil, apperrors.ErrContractorExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check contractor existence: %w", err)
	}

	contractor := &models.Contractor{
		CMCode:        req.CMCode,
		CMDescription: req.CMDescription,
		Region:        req.Region,
		IsActive:      true,
	}
	contractor.CreatedBy = req.CreatedBy

	contacts := make([]models.ContractorContact, len(req.Contacts))
	for i, c := range req.Contacts {
		contacts[i] = models.ContractorContact{
			CMCode:   req.CMCode,
			Name:     c.Name,
			Email:    c.Email,
			Role:     c.Role,
			IsActive: true,
		}
		contacts[i].CreatedBy = req.CreatedBy
	}

	if err := s.contractorRepo.CreateWithContacts(contractor, contacts); err != nil {
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}
	s.audit.Record(EntityContractor, contractor.CMCode, nil, contractor, models.ActionInsert, "contractor created", req.CreatedBy)

	return contractor, nil
}

// GetContractor returns one contractor with its contacts preloaded
func (s *ContractorService) GetContractor(cmCode string) (*models.Contractor, error) {
	contractor, err := s.contractorRepo.GetWithContacts(cmCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}
	return contractor, nil
}

// ListContractors returns a paginated contractor listing
func (s *ContractorService) ListContractors(page, pageSize int) (*ContractorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	contractors, total, err := s.contractorRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	return &ContractorListResponse{Contractors: contractors, Total: total, Page: page, PageSize: pageSize}, nil
}
