package repository

import (
	"context"

	"lprtrack/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetByProfileID retrieves every trip recorded for a profile,
	// ordered by departure date.
	GetByProfileID(ctx context.Context, profileID string) ([]*domain.Trip, error)

	// Delete removes a trip.
	Delete(ctx context.Context, id string) error
}
