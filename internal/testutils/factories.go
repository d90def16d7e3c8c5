package testutils

import (
	"time"

	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// PeriodFactory provides methods to create test ReportingPeriod data
type PeriodFactory struct{}

// NewPeriodFactory creates a new PeriodFactory
func NewPeriodFactory() *PeriodFactory {
	return &PeriodFactory{}
}

// Create creates an active test ReportingPeriod with default values
func (f *PeriodFactory) Create() *models.ReportingPeriod {
	return &models.ReportingPeriod{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Period:    "2025",
		SortOrder: 1,
		IsActive:  true,
	}
}

// WithPeriod sets a custom period value
func (f *PeriodFactory) WithPeriod(period string) *models.ReportingPeriod {
	p := f.Create()
	p.Period = period
	return p
}

// Inactive creates an inactive period
func (f *PeriodFactory) Inactive(period string) *models.ReportingPeriod {
	p := f.Create()
	p.Period = period
	p.IsActive = false
	return p
}

// ContractorFactory provides methods to create test Contractor data
type ContractorFactory struct{}

// NewContractorFactory creates a new ContractorFactory
func NewContractorFactory() *ContractorFactory {
	return &ContractorFactory{}
}

// Create creates a test Contractor with default values
func (f *ContractorFactory) Create() *models.Contractor {
	return &models.Contractor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CMCode:        "CM01",
		CMDescription: "Test Contract Manufacturer",
		Region:        "EMEA",
		IsActive:      true,
	}
}

// WithCMCode sets a custom CM code
func (f *ContractorFactory) WithCMCode(cmCode string) *models.Contractor {
	c := f.Create()
	c.CMCode = cmCode
	return c
}

// Contacts builds a SPOC and an SRM contact for a contractor
func (f *ContractorFactory) Contacts(cmCode string) []models.ContractorContact {
	return []models.ContractorContact{
		{CMCode: cmCode, Name: "Test SPOC", Email: "spoc@test.com", Role: models.ContactRoleSPOC, IsActive: true},
		{CMCode: cmCode, Name: "Test SRM", Email: "srm@test.com", Role: models.ContactRoleSRM, IsActive: true},
	}
}

// SkuFactory provides methods to create test Sku data
type SkuFactory struct{}

// NewSkuFactory creates a new SkuFactory
func NewSkuFactory() *SkuFactory {
	return &SkuFactory{}
}

// Create creates a test Sku with default values
func (f *SkuFactory) Create() *models.Sku {
	id := uuid.New()
	return &models.Sku{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SkuCode:           "SKU-" + id.String()[:8],
		SkuDescription:    "Test SKU " + id.String()[:8],
		CMCode:            "CM01",
		Period:            "2025",
		SkuType:           models.SkuTypeExternal,
		Site:              "Plant A",
		PurchasedQuantity: 1000,
		IsActive:          true,
	}
}

// WithCode sets a custom SKU code
func (f *SkuFactory) WithCode(code string) *models.Sku {
	s := f.Create()
	s.SkuCode = code
	s.SkuDescription = "Test SKU " + code
	return s
}

// WithPeriod sets a custom reporting period
func (f *SkuFactory) WithPeriod(code, period string) *models.Sku {
	s := f.WithCode(code)
	s.Period = period
	return s
}

// Internal creates an internally-manufactured SKU
func (f *SkuFactory) Internal(code string) *models.Sku {
	s := f.WithCode(code)
	s.SkuType = models.SkuTypeInternal
	return s
}

// ComponentFactory provides methods to create test ComponentDetail data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test ComponentDetail with default values
func (f *ComponentFactory) Create() *models.ComponentDetail {
	id := uuid.New()
	return &models.ComponentDetail{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ComponentCode:     "C-" + id.String()[:8],
		Version:           1,
		Description:       "Test component " + id.String()[:8],
		MaterialType:      "PET",
		PackagingTypeID:   "bottle",
		PackagingLevel:    "primary",
		ComponentQuantity: 1,
		ComponentUOM:      "piece",
		BaseWeight:        12.5,
		WeightUOM:         "g",
		PostConsumerPct:   25,
		IsActive:          true,
	}
}

// WithCode sets a custom component code
func (f *ComponentFactory) WithCode(code string) *models.ComponentDetail {
	c := f.Create()
	c.ComponentCode = code
	c.Description = "Test component " + code
	return c
}

// WithVersion sets a custom code and version
func (f *ComponentFactory) WithVersion(code string, version int) *models.ComponentDetail {
	c := f.WithCode(code)
	c.Version = version
	return c
}

// MappingFactory provides methods to create test SkuComponentMapping data
type MappingFactory struct{}

// NewMappingFactory creates a new MappingFactory
func NewMappingFactory() *MappingFactory {
	return &MappingFactory{}
}

// Create creates a test SkuComponentMapping with default values
func (f *MappingFactory) Create() *models.SkuComponentMapping {
	return &models.SkuComponentMapping{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CMCode:        "CM01",
		SkuCode:       "SKU-100",
		ComponentCode: "C1",
		Version:       1,
		PeriodID:      "2025",
		IsActive:      true,
	}
}

// ForTuple sets the full identity tuple of the mapping
func (f *MappingFactory) ForTuple(cmCode, skuCode, componentCode string, version int, periodID string) *models.SkuComponentMapping {
	m := f.Create()
	m.CMCode = cmCode
	m.SkuCode = skuCode
	m.ComponentCode = componentCode
	m.Version = version
	m.PeriodID = periodID
	return m
}

// AgreementFactory provides methods to create test SignoffAgreement data
type AgreementFactory struct{}

// NewAgreementFactory creates a new AgreementFactory
func NewAgreementFactory() *AgreementFactory {
	return &AgreementFactory{}
}

// Create creates a draft test SignoffAgreement with default values
func (f *AgreementFactory) Create() *models.SignoffAgreement {
	return &models.SignoffAgreement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CMCode:      "CM01",
		Period:      "2025",
		Status:      models.AgreementStatusDraft,
		DocumentURL: "https://docs.test.com/agreement.pdf",
	}
}

// Sent creates an agreement already sent for signature
func (f *AgreementFactory) Sent(envelopeID string) *models.SignoffAgreement {
	a := f.Create()
	a.Status = models.AgreementStatusSent
	a.EnvelopeID = envelopeID
	return a
}

// EvidenceFactory provides methods to create test EvidenceFile data
type EvidenceFactory struct{}

// NewEvidenceFactory creates a new EvidenceFactory
func NewEvidenceFactory() *EvidenceFactory {
	return &EvidenceFactory{}
}

// Create creates a test EvidenceFile attached to the given component
func (f *EvidenceFactory) Create(component *models.ComponentDetail) *models.EvidenceFile {
	return &models.EvidenceFile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ComponentDetailID: component.ID,
		ComponentCode:     component.ComponentCode,
		Version:           component.Version,
		FileName:          "evidence.pdf",
		ContentType:       "application/pdf",
		Category:          "recyclability",
		BlobURL:           "gs://test-evidence/components/" + component.ComponentCode + "/evidence.pdf",
		UploadedBy:        "tester",
	}
}
