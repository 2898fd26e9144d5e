package repository

import (
	"context"

	"lprtrack/internal/domain"
)

// ProfileRepository defines the persistence operations for LPR profiles.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by ID.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)

	// Update updates an existing profile.
	Update(ctx context.Context, profile *domain.Profile) error

	// Delete removes a profile and its recorded trips.
	Delete(ctx context.Context, id string) error
}
