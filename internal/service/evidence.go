package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvidenceService handles standalone evidence file uploads and deletions.
// Binaries live in blob storage; the database only carries the URL.
type EvidenceService struct {
	evidenceRepo  repository.EvidenceRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
	blobs         BlobStore
	audit         *AuditRecorder
	validator     *validator.Validate
	log           *logger.Logger
}

// NewEvidenceService creates a new evidence service
func NewEvidenceService(
	evidenceRepo repository.EvidenceRepositoryInterface,
	componentRepo repository.ComponentRepositoryInterface,
	blobs BlobStore,
	audit *AuditRecorder,
	validate *validator.Validate,
) *EvidenceService {
	return &EvidenceService{
		evidenceRepo:  evidenceRepo,
		componentRepo: componentRepo,
		blobs:         blobs,
		audit:         audit,
		validator:     validate,
		log:           logger.New(),
	}
}

// EvidenceUploadRequest attaches one file to a component version. Version 0
// targets the component's current version.
type EvidenceUploadRequest struct {
	ComponentCode string `json:"component_code" validate:"required"`
	Version       int    `json:"version" validate:"min=0"`
	FileName      string `json:"file_name" validate:"required"`
	ContentType   string `json:"content_type"`
	Category      string `json:"category"`
	Data          []byte `json:"-" validate:"required"`
	Actor         string `json:"actor" validate:"required"`
}

// Upload stores the file in blob storage and registers it against the
// addressed component version.
func (s *EvidenceService) Upload(ctx context.Context, req *EvidenceUploadRequest) (*models.EvidenceFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if s.blobs == nil {
		return nil, apperrors.ErrBlobStoreUnavailable
	}

	var component *models.ComponentDetail
	var err error
	if req.Version > 0 {
		component, err = s.componentRepo.GetByCodeAndVersion(req.ComponentCode, req.Version)
	} else {
		component, err = s.componentRepo.GetLatestActiveByCode(req.ComponentCode)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to resolve component: %w", err)
	}

	url, err := s.blobs.Upload(ctx, req.FileName, req.ContentType, req.Data,
		"components", component.ComponentCode, "v"+strconv.Itoa(component.Version))
	if err != nil {
		return nil, fmt.Errorf("failed to upload evidence blob: %w", err)
	}

	file := &models.EvidenceFile{
		ComponentDetailID: component.ID,
		ComponentCode:     component.ComponentCode,
		Version:           component.Version,
		FileName:          req.FileName,
		ContentType:       req.ContentType,
		Category:          req.Category,
		BlobURL:           url,
		UploadedBy:        req.Actor,
	}
	file.CreatedBy = req.Actor
	if err := s.evidenceRepo.Create(file); err != nil {
		return nil, fmt.Errorf("failed to register evidence file: %w", err)
	}
	s.audit.Record(EntityEvidence, file.ID.String(), nil, file, models.ActionInsert, "evidence uploaded", req.Actor)

	return file, nil
}

// Delete removes an evidence file. The blob delete is best-effort; a storage
// failure does not keep the database row alive.
func (s *EvidenceService) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	file, err := s.evidenceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEvidenceNotFound
		}
		return fmt.Errorf("failed to load evidence file: %w", err)
	}

	if s.blobs == nil {
		s.log.WithField("blob_url", file.BlobURL).Warn("blob storage not configured, removing database row only")
	} else if err := s.blobs.Delete(ctx, file.BlobURL); err != nil {
		s.log.WithField("blob_url", file.BlobURL).WithError(err).Warn("failed to delete evidence blob")
	}
	if err := s.evidenceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete evidence file: %w", err)
	}
	s.audit.Record(EntityEvidence, id.String(), file, nil, models.ActionDelete, "evidence deleted", actor)

	return nil
}
