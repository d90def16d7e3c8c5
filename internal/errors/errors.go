package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this period"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DuplicateDescriptionError reports a component description already used by a
// different component code, carrying the conflicting record's identity so the
// caller can present a precise message.
type DuplicateDescriptionError struct {
	ComponentCode string
	Description   string
}

func (e *DuplicateDescriptionError) Error() string {
	return fmt.Sprintf("description %q is already used by component %s", e.Description, e.ComponentCode)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrComponentNotFound  = &NotFoundError{Entity: "component"}
	ErrMappingNotFound    = &NotFoundError{Entity: "sku-component mapping"}
	ErrSkuNotFound        = &NotFoundError{Entity: "sku"}
	ErrContractorNotFound = &NotFoundError{Entity: "contractor"}
	ErrAgreementNotFound  = &NotFoundError{Entity: "sign-off agreement"}
	ErrEvidenceNotFound   = &NotFoundError{Entity: "evidence file"}
	ErrPeriodNotFound     = &NotFoundError{Entity: "reporting period"}
)

// Already Exists Errors
var (
	ErrSkuExists           = &AlreadyExistsError{Entity: "sku", Context: "for this period"}
	ErrContractorExists    = &AlreadyExistsError{Entity: "contractor", Context: "with this CM code"}
	ErrSkuDescriptionTaken = &AlreadyExistsError{Entity: "sku description", Context: "on another active sku"}
	ErrAgreementExists     = &AlreadyExistsError{Entity: "sign-off agreement", Context: "for this CM and period"}
)

// Business Logic Errors
var (
	ErrNoActivePeriod      = errors.New("no active reporting period configured")
	ErrInvalidOperation    = errors.New("operation must be 'update' or 'replace'")
	ErrInvalidAction       = errors.New("action must be 'update' or 'replace'")
	ErrInvalidSkuType      = errors.New("skutype must be 'internal' or 'external'")
	ErrInvalidDateRange    = errors.New("valid-from date must be before valid-to date")
	ErrInvalidStatus       = errors.New("invalid agreement status")
	ErrAgreementNotDraft   = errors.New("agreement has already been sent for signature")
	ErrInvalidPeriodFormat = errors.New("invalid period format")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is missing"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
)

// Configuration Errors
var (
	ErrBlobStoreUnavailable = &ConfigurationError{Message: "evidence blob storage is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDuplicateDescription checks if an error is a DuplicateDescriptionError
func IsDuplicateDescription(err error) bool {
	var dupErr *DuplicateDescriptionError
	return errors.As(err, &dupErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDuplicateDescriptionError creates a DuplicateDescriptionError for a conflicting component
func NewDuplicateDescriptionError(componentCode, description string) error {
	return &DuplicateDescriptionError{ComponentCode: componentCode, Description: description}
}
