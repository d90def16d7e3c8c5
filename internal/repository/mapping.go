package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// MappingRepository handles database operations for sku-component mappings
type MappingRepository struct {
	db *gorm.DB
}

// NewMappingRepository creates a new mapping repository
func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{db: db}
}

// Create creates a new mapping row
func (r *MappingRepository) Create(mapping *models.SkuComponentMapping) error {
	return r.db.Create(mapping).Error
}

// FindByTuple retrieves the mapping matching the full identity tuple, if any
func (r *MappingRepository) FindByTuple(cmCode, skuCode, componentCode string, version int, periodID string) (*models.SkuComponentMapping, error) {
	var mapping models.SkuComponentMapping
	err := r.db.First(&mapping,
		"cm_code = ? AND sku_code = ? AND component_code = ? AND version = ? AND period_id = ?",
		cmCode, skuCode, componentCode, version, periodID).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetByCMAndSku retrieves all mapping rows for a (cm_code, sku_code) pair
func (r *MappingRepository) GetByCMAndSku(cmCode, skuCode string) ([]models.SkuComponentMapping, error) {
	var mappings []models.SkuComponentMapping
	err := r.db.
		Where("cm_code = ? AND sku_code = ?", cmCode, skuCode).
		Order("component_code, version").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// GetActiveByCMAndSku retrieves only the active mapping rows for a (cm_code, sku_code) pair
func (r *MappingRepository) GetActiveByCMAndSku(cmCode, skuCode string) ([]models.SkuComponentMapping, error) {
	var mappings []models.SkuComponentMapping
	err := r.db.
		Where("cm_code = ? AND sku_code = ? AND is_active = ?", cmCode, skuCode, true).
		Order("component_code, version").
		Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// GetMaxVersionByComponent returns the highest version present in any mapping
// row for a component code, or 0 when the code is not mapped anywhere. The
// update operation versions through mappings without touching component rows,
// so the mapping table is the authoritative high-water mark.
func (r *MappingRepository) GetMaxVersionByComponent(componentCode string) (int, error) {
	var max int
	err := r.db.Model(&models.SkuComponentMapping{}).
		Where("component_code = ?", componentCode).
		Select("COALESCE(MAX(version), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// DeleteByCMAndSku permanently deletes all mapping rows for a (cm_code, sku_code) pair
// and returns the number of rows removed. Callers select the rows first when they
// need the deleted records for audit capture.
func (r *MappingRepository) DeleteByCMAndSku(cmCode, skuCode string) (int64, error) {
	result := r.db.Delete(&models.SkuComponentMapping{}, "cm_code = ? AND sku_code = ?", cmCode, skuCode)
	return result.RowsAffected, result.Error
}
