package service

import (
	"errors"
	"fmt"

	apperrors "sustainability-portal-backend/internal/errors"
	"sustainability-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentIdentity is the resolver's answer for one component code: whether
// any active version row exists, and if so which one is current.
type ComponentIdentity struct {
	Exists         bool
	CurrentVersion int
	ComponentID    uuid.UUID
}

// IdentityResolver decides whether an inbound component change is a create or
// a version increment. Pure read; absence of a component is not an error.
type IdentityResolver struct {
	componentRepo repository.ComponentRepositoryInterface
}

// NewIdentityResolver creates a new identity resolver
func NewIdentityResolver(componentRepo repository.ComponentRepositoryInterface) *IdentityResolver {
	return &IdentityResolver{componentRepo: componentRepo}
}

// Resolve looks up the most recent active version row for a component code.
func (r *IdentityResolver) Resolve(componentCode string) (*ComponentIdentity, error) {
	if componentCode == "" {
		return nil, apperrors.NewValidationError("component_code", "component code is required")
	}

	current, err := r.componentRepo.GetLatestActiveByCode(componentCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ComponentIdentity{Exists: false, CurrentVersion: 0}, nil
		}
		return nil, fmt.Errorf("failed to resolve component %s: %w", componentCode, err)
	}

	return &ComponentIdentity{
		Exists:         true,
		CurrentVersion: current.Version,
		ComponentID:    current.ID,
	}, nil
}
