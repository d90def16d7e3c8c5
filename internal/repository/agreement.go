package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgreementRepository handles database operations for sign-off agreements
type AgreementRepository struct {
	db *gorm.DB
}

// NewAgreementRepository creates a new agreement repository
func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

// Create creates a new sign-off agreement
func (r *AgreementRepository) Create(agreement *models.SignoffAgreement) error {
	return r.db.Create(agreement).Error
}

// GetByID retrieves an agreement by ID
func (r *AgreementRepository) GetByID(id uuid.UUID) (*models.SignoffAgreement, error) {
	var agreement models.SignoffAgreement
	err := r.db.First(&agreement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

// GetByEnvelopeID retrieves an agreement by the signing provider's envelope ID
func (r *AgreementRepository) GetByEnvelopeID(envelopeID string) (*models.SignoffAgreement, error) {
	var agreement models.SignoffAgreement
	err := r.db.First(&agreement, "envelope_id = ?", envelopeID).Error
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

// GetByCMAndPeriod retrieves the agreement for one CM in one period
func (r *AgreementRepository) GetByCMAndPeriod(cmCode, period string) (*models.SignoffAgreement, error) {
	var agreement models.SignoffAgreement
	err := r.db.First(&agreement, "cm_code = ? AND period = ?", cmCode, period).Error
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

// GetAll retrieves agreements with pagination
func (r *AgreementRepository) GetAll(limit, offset int) ([]models.SignoffAgreement, int64, error) {
	var agreements []models.SignoffAgreement
	var total int64

	if err := r.db.Model(&models.SignoffAgreement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&agreements).Error; err != nil {
		return nil, 0, err
	}

	return agreements, total, nil
}

// Update updates an agreement
func (r *AgreementRepository) Update(agreement *models.SignoffAgreement) error {
	return r.db.Save(agreement).Error
}
