package repository

import (
	"strings"

	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkuRepository handles database operations for skus
type SkuRepository struct {
	db *gorm.DB
}

// NewSkuRepository creates a new sku repository
func NewSkuRepository(db *gorm.DB) *SkuRepository {
	return &SkuRepository{db: db}
}

// Create creates a new sku
func (r *SkuRepository) Create(sku *models.Sku) error {
	return r.db.Create(sku).Error
}

// GetByID retrieves a sku by ID
func (r *SkuRepository) GetByID(id uuid.UUID) (*models.Sku, error) {
	var sku models.Sku
	err := r.db.First(&sku, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// GetByCodeAndPeriod retrieves a sku by its code within one reporting period
func (r *SkuRepository) GetByCodeAndPeriod(skuCode, period string) (*models.Sku, error) {
	var sku models.Sku
	err := r.db.First(&sku, "sku_code = ? AND period = ?", skuCode, period).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// GetLatestByCode retrieves the most recent row for a sku code across periods
func (r *SkuRepository) GetLatestByCode(skuCode string) (*models.Sku, error) {
	var sku models.Sku
	err := r.db.
		Where("sku_code = ?", skuCode).
		Order("period DESC").
		First(&sku).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// FindActiveByDescription retrieves the active sku using the given description.
// The comparison is case- and whitespace-insensitive.
func (r *SkuRepository) FindActiveByDescription(description string) (*models.Sku, error) {
	var sku models.Sku
	normalized := strings.ToLower(strings.TrimSpace(description))
	err := r.db.
		Where("LOWER(TRIM(sku_description)) = ? AND is_active = ?", normalized, true).
		First(&sku).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// GetByCM retrieves all skus for a contract manufacturer with pagination
func (r *SkuRepository) GetByCM(cmCode string, limit, offset int) ([]models.Sku, int64, error) {
	var skus []models.Sku
	var total int64

	query := r.db.Model(&models.Sku{}).Where("cm_code = ?", cmCode)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("sku_code").Limit(limit).Offset(offset).Find(&skus).Error; err != nil {
		return nil, 0, err
	}

	return skus, total, nil
}

// Update updates a sku
func (r *SkuRepository) Update(sku *models.Sku) error {
	return r.db.Save(sku).Error
}
