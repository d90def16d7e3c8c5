package service

import (
	"errors"
	"fmt"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// PeriodService exposes reporting period lookups. The active period is the
// active row with the highest sort order.
type PeriodService struct {
	periodRepo repository.PeriodRepositoryInterface
}

// NewPeriodService creates a new period service
func NewPeriodService(periodRepo repository.PeriodRepositoryInterface) *PeriodService {
	return &PeriodService{periodRepo: periodRepo}
}

// ActivePeriod returns the current reporting period
func (s *PeriodService) ActivePeriod() (*models.ReportingPeriod, error) {
	period, err := s.periodRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActivePeriod
		}
		return nil, fmt.Errorf("failed to resolve active period: %w", err)
	}
	return period, nil
}

// ListPeriods returns all reporting periods ordered by sort order
func (s *PeriodService) ListPeriods() ([]models.ReportingPeriod, error) {
	periods, err := s.periodRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}
