package repository

import (
	"sustainability-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// PeriodRepository handles database operations for reporting periods
type PeriodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// Create creates a new reporting period
func (r *PeriodRepository) Create(period *models.ReportingPeriod) error {
	return r.db.Create(period).Error
}

// GetActive retrieves the current reporting period: the active row with the
// highest sort order.
func (r *PeriodRepository) GetActive() (*models.ReportingPeriod, error) {
	var period models.ReportingPeriod
	err := r.db.
		Where("is_active = ?", true).
		Order("sort_order DESC").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByPeriod retrieves a reporting period by its period value
func (r *PeriodRepository) GetByPeriod(period string) (*models.ReportingPeriod, error) {
	var row models.ReportingPeriod
	err := r.db.First(&row, "period = ?", period).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetAll retrieves all reporting periods ordered by sort order
func (r *PeriodRepository) GetAll() ([]models.ReportingPeriod, error) {
	var periods []models.ReportingPeriod
	err := r.db.Order("sort_order DESC").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}
