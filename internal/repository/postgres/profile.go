package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"lprtrack/internal/domain"
	"lprtrack/internal/repository"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint.
const uniqueViolation = "23505"

// ProfileRepository is a PostgreSQL implementation of repository.ProfileRepository.
type ProfileRepository struct {
	q Querier
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{q: db}
}

// NewProfileRepositoryWithTx creates a profile repository using a transaction.
func NewProfileRepositoryWithTx(tx *sql.Tx) *ProfileRepository {
	return &ProfileRepository{q: tx}
}

// Create persists a new profile.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, name, email, green_card_date, green_card_expiration_date,
			is_conditional_resident, birth_date, gender,
			selective_service_registered, tax_reminder_dismissed,
			eligibility_category, has_reentry_permit, reentry_permit_expires,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.q.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.Email,
		profile.GreenCardDate,
		nullTime(profile.GreenCardExpirationDate),
		profile.IsConditionalResident,
		nullTime(profile.BirthDate),
		profile.Gender,
		profile.SelectiveServiceRegistered,
		profile.TaxReminderDismissed,
		profile.EligibilityCategory,
		profile.ReentryPermit.HasPermit,
		nullTime(profile.ReentryPermit.ExpirationDate),
		profile.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}

	return nil
}

// GetByID retrieves a profile by ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, name, email, green_card_date, green_card_expiration_date,
			is_conditional_resident, birth_date, gender,
			selective_service_registered, tax_reminder_dismissed,
			eligibility_category, has_reentry_permit, reentry_permit_expires,
			created_at
		FROM profiles WHERE id = $1
	`

	var profile domain.Profile
	var expiration, birthDate, permitExpires sql.NullTime

	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.GreenCardDate,
		&expiration,
		&profile.IsConditionalResident,
		&birthDate,
		&profile.Gender,
		&profile.SelectiveServiceRegistered,
		&profile.TaxReminderDismissed,
		&profile.EligibilityCategory,
		&profile.ReentryPermit.HasPermit,
		&permitExpires,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if expiration.Valid {
		profile.GreenCardExpirationDate = expiration.Time
	}
	if birthDate.Valid {
		profile.BirthDate = birthDate.Time
	}
	if permitExpires.Valid {
		profile.ReentryPermit.ExpirationDate = permitExpires.Time
	}

	return &profile, nil
}

// Update updates an existing profile.
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, email = $2, green_card_date = $3,
			green_card_expiration_date = $4, is_conditional_resident = $5,
			birth_date = $6, gender = $7, selective_service_registered = $8,
			tax_reminder_dismissed = $9, eligibility_category = $10,
			has_reentry_permit = $11, reentry_permit_expires = $12
		WHERE id = $13
	`

	result, err := r.q.ExecContext(ctx, query,
		profile.Name,
		profile.Email,
		profile.GreenCardDate,
		nullTime(profile.GreenCardExpirationDate),
		profile.IsConditionalResident,
		nullTime(profile.BirthDate),
		profile.Gender,
		profile.SelectiveServiceRegistered,
		profile.TaxReminderDismissed,
		profile.EligibilityCategory,
		profile.ReentryPermit.HasPermit,
		nullTime(profile.ReentryPermit.ExpirationDate),
		profile.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
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

// Delete removes a profile. Trips reference profiles with ON DELETE
// CASCADE, so the travel history goes with it.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
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

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// Ensure ProfileRepository implements repository.ProfileRepository.
var _ repository.ProfileRepository = (*ProfileRepository)(nil)
