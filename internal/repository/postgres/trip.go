package postgres

import (
	"context"
	"database/sql"
	"errors"

	"lprtrack/internal/domain"
	"lprtrack/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, profile_id, departure_date, return_date, location, is_simulated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.ProfileID,
		trip.DepartureDate,
		trip.ReturnDate,
		trip.Location,
		trip.IsSimulated,
		trip.CreatedAt,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, profile_id, departure_date, return_date, location, is_simulated, created_at
		FROM trips WHERE id = $1
	`

	var trip domain.Trip
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.ProfileID,
		&trip.DepartureDate,
		&trip.ReturnDate,
		&trip.Location,
		&trip.IsSimulated,
		&trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// GetByProfileID retrieves every trip recorded for a profile, ordered by
// departure date.
func (r *TripRepository) GetByProfileID(ctx context.Context, profileID string) ([]*domain.Trip, error) {
	query := `
		SELECT id, profile_id, departure_date, return_date, location, is_simulated, created_at
		FROM trips
		WHERE profile_id = $1
		ORDER BY departure_date ASC
	`

	rows, err := r.q.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		var trip domain.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.ProfileID,
			&trip.DepartureDate,
			&trip.ReturnDate,
			&trip.Location,
			&trip.IsSimulated,
			&trip.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}

// Delete removes a trip.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
