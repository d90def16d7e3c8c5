package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ComponentRepositoryInterface defines the interface for component detail repository operations
type ComponentRepositoryInterface interface {
	Create(component *models.ComponentDetail) error
	GetByID(id uuid.UUID) (*models.ComponentDetail, error)
	GetByCodeAndVersion(code string, version int) (*models.ComponentDetail, error)
	GetLatestActiveByCode(code string) (*models.ComponentDetail, error)
	GetVersionsByCode(code string) ([]models.ComponentDetail, error)
	FindActiveByDescription(description string) (*models.ComponentDetail, error)
	GetAll(limit, offset int) ([]models.ComponentDetail, int64, error)
	Update(component *models.ComponentDetail) error
	Deactivate(code string, updatedBy string) error
}

// MappingRepositoryInterface defines the interface for sku-component mapping repository operations
type MappingRepositoryInterface interface {
	Create(mapping *models.SkuComponentMapping) error
	FindByTuple(cmCode, skuCode, componentCode string, version int, periodID string) (*models.SkuComponentMapping, error)
	GetByCMAndSku(cmCode, skuCode string) ([]models.SkuComponentMapping, error)
	GetActiveByCMAndSku(cmCode, skuCode string) ([]models.SkuComponentMapping, error)
	GetMaxVersionByComponent(componentCode string) (int, error)
	DeleteByCMAndSku(cmCode, skuCode string) (int64, error)
}

// SkuRepositoryInterface defines the interface for sku repository operations
type SkuRepositoryInterface interface {
	Create(sku *models.Sku) error
	GetByID(id uuid.UUID) (*models.Sku, error)
	GetByCodeAndPeriod(skuCode, period string) (*models.Sku, error)
	GetLatestByCode(skuCode string) (*models.Sku, error)
	FindActiveByDescription(description string) (*models.Sku, error)
	GetByCM(cmCode string, limit, offset int) ([]models.Sku, int64, error)
	Update(sku *models.Sku) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	GetByEntity(entityType, entityID string, limit, offset int) ([]models.AuditLog, int64, error)
	CountByEntity(entityType, entityID string) (int64, error)
}

// PeriodRepositoryInterface defines the interface for reporting period repository operations
type PeriodRepositoryInterface interface {
	Create(period *models.ReportingPeriod) error
	GetActive() (*models.ReportingPeriod, error)
	GetByPeriod(period string) (*models.ReportingPeriod, error)
	GetAll() ([]models.ReportingPeriod, error)
}

// ContractorRepositoryInterface defines the interface for contractor repository operations
type ContractorRepositoryInterface interface {
	CreateWithContacts(contractor *models.Contractor, contacts []models.ContractorContact) error
	GetByCMCode(cmCode string) (*models.Contractor, error)
	GetWithContacts(cmCode string) (*models.Contractor, error)
	GetAll(limit, offset int) ([]models.Contractor, int64, error)
	Update(contractor *models.Contractor) error
}

// AgreementRepositoryInterface defines the interface for sign-off agreement repository operations
type AgreementRepositoryInterface interface {
	Create(agreement *models.SignoffAgreement) error
	GetByID(id uuid.UUID) (*models.SignoffAgreement, error)
	GetByEnvelopeID(envelopeID string) (*models.SignoffAgreement, error)
	GetByCMAndPeriod(cmCode, period string) (*models.SignoffAgreement, error)
	GetAll(limit, offset int) ([]models.SignoffAgreement, int64, error)
	Update(agreement *models.SignoffAgreement) error
}

// EvidenceRepositoryInterface defines the interface for evidence file repository operations
type EvidenceRepositoryInterface interface {
	Create(file *models.EvidenceFile) error
	GetByID(id uuid.UUID) (*models.EvidenceFile, error)
	GetByComponent(componentCode string, version int) ([]models.EvidenceFile, error)
	Delete(id uuid.UUID) error
	DeleteByComponent(componentCode string, version int) ([]models.EvidenceFile, error)
}
