package service

import (
	"context"

	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ComponentServiceInterface defines the interface for component business logic
type ComponentServiceInterface interface {
	AddComponent(req *ComponentCreateRequest) (*ComponentChangeResponse, error)
	UpdateComponent(req *ComponentUpdateRequest) (*ComponentChangeResponse, error)
	ReplaceComponentDetails(ctx context.Context, req *ComponentDetailsChangeRequest) (*ComponentChangeResponse, error)
	GetComponent(code string) (*ComponentVersionsResponse, error)
	ListComponents(page, pageSize int) (*ComponentListResponse, error)
	GetAuditTrail(code string, page, pageSize int) ([]models.AuditLog, int64, error)
}

// SkuServiceInterface defines the interface for sku business logic
type SkuServiceInterface interface {
	CreateSku(req *SkuCreateRequest) (*models.Sku, error)
	UpdateSku(req *SkuUpdateRequest) (*SkuUpdateResponse, error)
	GetSku(skuCode, period string) (*models.Sku, error)
	ListByCM(cmCode string, page, pageSize int) (*SkuListResponse, error)
	GetMappings(cmCode, skuCode string) ([]models.SkuComponentMapping, error)
	CopySkusToPeriod(req *CopyToPeriodRequest) (*CopyToPeriodResponse, error)
}

// ContractorServiceInterface defines the interface for contractor business logic
type ContractorServiceInterface interface {
	CreateContractor(req *ContractorCreateRequest) (*models.Contractor, error)
	GetContractor(cmCode string) (*models.Contractor, error)
	ListContractors(page, pageSize int) (*ContractorListResponse, error)
}

// AgreementServiceInterface defines the interface for sign-off agreement business logic
type AgreementServiceInterface interface {
	CreateAgreement(req *AgreementCreateRequest) (*models.SignoffAgreement, error)
	SendForSignature(ctx context.Context, id uuid.UUID) (*models.SignoffAgreement, error)
	UpdateStatus(req *AgreementStatusRequest) (*models.SignoffAgreement, error)
	ListAgreements(page, pageSize int) (*AgreementListResponse, error)
}

// EvidenceServiceInterface defines the interface for evidence file business logic
type EvidenceServiceInterface interface {
	Upload(ctx context.Context, req *EvidenceUploadRequest) (*models.EvidenceFile, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

// PeriodServiceInterface defines the interface for reporting period lookups
type PeriodServiceInterface interface {
	ActivePeriod() (*models.ReportingPeriod, error)
	ListPeriods() ([]models.ReportingPeriod, error)
}

// BlobStore is the narrow interface to evidence blob storage. The core only
// stores and forwards the returned URL.
type BlobStore interface {
	Upload(ctx context.Context, name, contentType string, data []byte, pathSegments ...string) (string, error)
	Delete(ctx context.Context, url string) error
}

// SigningClient is the narrow interface to the external e-signature provider
type SigningClient interface {
	CreateEnvelope(ctx context.Context, req *EnvelopeRequest) (string, error)
	GetEnvelopeStatus(ctx context.Context, envelopeID string) (string, error)
}

// Notifier delivers email notifications. Calls are fire-and-forget: a delivery
// failure never blocks the triggering status change.
type Notifier interface {
	Notify(to []string, subject, body string) error
}
