package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for the append-only audit log
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit log entry. There is deliberately no Update or Delete here.
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByEntity retrieves audit entries for one entity, newest first, with pagination
func (r *AuditLogRepository) GetByEntity(entityType, entityID string, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// CountByEntity returns the number of audit entries recorded for one entity
func (r *AuditLogRepository) CountByEntity(entityType, entityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AuditLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}
