package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvidenceRepository handles database operations for evidence files
type EvidenceRepository struct {
	db *gorm.DB
}

// NewEvidenceRepository creates a new evidence repository
func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{db: db}
}

// Create creates a new evidence file row
func (r *EvidenceRepository) Create(file *models.EvidenceFile) error {
	return r.db.Create(file).Error
}

// GetByID retrieves an evidence file by ID
func (r *EvidenceRepository) GetByID(id uuid.UUID) (*models.EvidenceFile, error) {
	var file models.EvidenceFile
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByComponent retrieves all evidence files for one component version
func (r *EvidenceRepository) GetByComponent(componentCode string, version int) ([]models.EvidenceFile, error) {
	var files []models.EvidenceFile
	err := r.db.
		Where("component_code = ? AND version = ?", componentCode, version).
		Order("created_at").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Delete deletes an evidence file row
func (r *EvidenceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EvidenceFile{}, "id = ?", id).Error
}

// DeleteByComponent deletes all evidence rows for one component version and
// returns what was deleted so the caller can clean up blob storage.
func (r *EvidenceRepository) DeleteByComponent(componentCode string, version int) ([]models.EvidenceFile, error) {
	files, err := r.GetByComponent(componentCode, version)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return files, nil
	}
	err = r.db.Delete(&models.EvidenceFile{}, "component_code = ? AND version = ?", componentCode, version).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
