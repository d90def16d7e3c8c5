package repository

import (
	"strings"

	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for component detail versions
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component detail version row
func (r *ComponentRepository) Create(component *models.ComponentDetail) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component detail by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.ComponentDetail, error) {
	var component models.ComponentDetail
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByCodeAndVersion retrieves one specific version row of a component
func (r *ComponentRepository) GetByCodeAndVersion(code string, version int) (*models.ComponentDetail, error) {
	var component models.ComponentDetail
	err := r.db.First(&component, "component_code = ? AND version = ?", code, version).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetLatestActiveByCode retrieves the highest-versioned active row for a component code
func (r *ComponentRepository) GetLatestActiveByCode(code string) (*models.ComponentDetail, error) {
	var component models.ComponentDetail
	err := r.db.
		Where("component_code = ? AND is_active = ?", code, true).
		Order("version DESC").
		First(&component).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetVersionsByCode retrieves all version rows for a component code, newest first
func (r *ComponentRepository) GetVersionsByCode(code string) ([]models.ComponentDetail, error) {
	var components []models.ComponentDetail
	err := r.db.
		Where("component_code = ?", code).
		Order("version DESC").
		Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// FindActiveByDescription retrieves the active component using the given description.
// The comparison is case- and whitespace-insensitive.
func (r *ComponentRepository) FindActiveByDescription(description string) (*models.ComponentDetail, error) {
	var component models.ComponentDetail
	normalized := strings.ToLower(strings.TrimSpace(description))
	err := r.db.
		Where("LOWER(TRIM(description)) = ? AND is_active = ?", normalized, true).
		Order("version DESC").
		First(&component).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetAll retrieves component details with pagination
func (r *ComponentRepository) GetAll(limit, offset int) ([]models.ComponentDetail, int64, error) {
	var components []models.ComponentDetail
	var total int64

	if err := r.db.Model(&models.ComponentDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("component_code, version DESC").Limit(limit).Offset(offset).Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// Update updates a component detail row
func (r *ComponentRepository) Update(component *models.ComponentDetail) error {
	return r.db.Save(component).Error
}

// Deactivate marks every version row of a component code inactive.
// Component rows are never physically deleted.
func (r *ComponentRepository) Deactivate(code string, updatedBy string) error {
	return r.db.Model(&models.ComponentDetail{}).
		Where("component_code = ?", code).
		Updates(map[string]interface{}{"is_active": false, "updated_by": updatedBy}).Error
}
