package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps domain errors onto HTTP status codes: validation failures
// are 400 with field errors, conflicts are 409 with the conflicting identity,
// missing entities are 404, anything unclassified is a generic 500.
func respondError(c *gin.Context, err error) {
	var windowErr *service.WindowValidationError
	if errors.As(err, &windowErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "validation failed",
			"details":     windowErr.Result.Errors,
			"fieldErrors": windowErr.Result.FieldErrors,
		})
		return
	}

	var dupErr *apperrors.DuplicateDescriptionError
	if errors.As(err, &dupErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":          dupErr.Error(),
			"component_code": dupErr.ComponentCode,
			"description":    dupErr.Description,
		})
		return
	}

	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidOperation),
		errors.Is(err, apperrors.ErrInvalidAction),
		errors.Is(err, apperrors.ErrInvalidSkuType),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidPeriodFormat),
		errors.Is(err, apperrors.ErrNoActivePeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrAgreementNotDraft):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSONString decodes a JSON document carried inside a multipart form field
func bindJSONString(payload string, out interface{}) error {
	return json.Unmarshal([]byte(payload), out)
}
