package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sustainability-portal-backend/internal/database/models"
	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// ValidationResult collects every rule violation found for a validity window.
// Rules are evaluated independently; a request with three problems reports all
// three, keyed by the offending field.
type ValidationResult struct {
	IsValid     bool              `json:"is_valid"`
	Errors      []string          `json:"errors,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// WindowValidationError wraps an invalid ValidationResult so callers can map it
// to a field-level 400 response.
type WindowValidationError struct {
	Result *ValidationResult
}

func (e *WindowValidationError) Error() string {
	return fmt.Sprintf("validity window rejected: %s", strings.Join(e.Result.Errors, "; "))
}

// ValidityValidator checks proposed validity date ranges against the currently
// active reporting period and against each other, and detects duplicate
// component descriptions. It performs reads only.
type ValidityValidator struct {
	componentRepo repository.ComponentRepositoryInterface
}

// NewValidityValidator creates a new validity validator
func NewValidityValidator(componentRepo repository.ComponentRepositoryInterface) *ValidityValidator {
	return &ValidityValidator{componentRepo: componentRepo}
}

// ValidateWindow validates a validity window against the given reporting period.
// A nil period fails immediately: no write may proceed without an active period.
func (v *ValidityValidator) ValidateWindow(validFrom, validTo *time.Time, period *models.ReportingPeriod) (*ValidationResult, error) {
	if period == nil {
		return nil, apperrors.ErrNoActivePeriod
	}
	periodYear, err := periodYear(period.Period)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{IsValid: true, FieldErrors: map[string]string{}}

	if validFrom != nil && validFrom.Year() < periodYear {
		msg := fmt.Sprintf("valid-from year %d is earlier than the current reporting period %d; use %d or later",
			validFrom.Year(), periodYear, periodYear)
		result.FieldErrors["component_valid_from"] = msg
		result.Errors = append(result.Errors, msg)
	}

	if validTo != nil && validTo.Year() <= periodYear {
		msg := fmt.Sprintf("valid-to year %d must be after the current reporting period %d; use %d or later",
			validTo.Year(), periodYear, periodYear+1)
		result.FieldErrors["component_valid_to"] = msg
		result.Errors = append(result.Errors, msg)
	}

	if validFrom != nil && validTo != nil && !validFrom.Before(*validTo) {
		msg := "valid-from date must be earlier than valid-to date"
		result.FieldErrors["dateRange"] = msg
		result.Errors = append(result.Errors, msg)
	}

	result.IsValid = len(result.Errors) == 0
	return result, nil
}

// CheckDuplicateDescription fails when the description is already used by a
// different active component code. The returned error carries the conflicting
// component's identity.
func (v *ValidityValidator) CheckDuplicateDescription(description, componentCode string) error {
	existing, err := v.componentRepo.FindActiveByDescription(description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check description uniqueness: %w", err)
	}
	if existing.ComponentCode != componentCode {
		return apperrors.NewDuplicateDescriptionError(existing.ComponentCode, existing.Description)
	}
	return nil
}

// periodYear extracts the year from a period value like "2025" or "2025-01-01".
func periodYear(period string) (int, error) {
	trimmed := strings.TrimSpace(period)
	if len(trimmed) < 4 {
		return 0, apperrors.ErrInvalidPeriodFormat
	}
	year, err := strconv.Atoi(trimmed[:4])
	if err != nil || year < 1900 {
		return 0, apperrors.ErrInvalidPeriodFormat
	}
	return year, nil
}
