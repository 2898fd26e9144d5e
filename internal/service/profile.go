package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"lprtrack/internal/domain"
	"lprtrack/internal/redis"
	"lprtrack/internal/repository"
)

// ProfileService handles LPR profile operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	reportCache redis.ReportCacheInterface
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, reportCache redis.ReportCacheInterface) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		reportCache: reportCache,
	}
}

// CreateProfileRequest contains the parameters for registering a profile.
// Dates arrive as YYYY-MM-DD strings and are validated here.
type CreateProfileRequest struct {
	Name                       string
	Email                      string
	GreenCardDate              string
	GreenCardExpirationDate    string
	IsConditionalResident      bool
	BirthDate                  string
	Gender                     string
	SelectiveServiceRegistered bool
	EligibilityCategory        string
	HasReentryPermit           bool
	ReentryPermitExpiration    string
}

// Create registers a new profile.
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*domain.Profile, error) {
	fields, err := validateProfileFields(req)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:                         uuid.New().String(),
		Name:                       req.Name,
		Email:                      req.Email,
		GreenCardDate:              fields.greenCardDate,
		GreenCardExpirationDate:    fields.expirationDate,
		IsConditionalResident:      req.IsConditionalResident,
		BirthDate:                  fields.birthDate,
		Gender:                     domain.Gender(req.Gender),
		SelectiveServiceRegistered: req.SelectiveServiceRegistered,
		EligibilityCategory:        domain.EligibilityCategory(req.EligibilityCategory),
		ReentryPermit: domain.ReentryPermit{
			HasPermit:      req.HasReentryPermit,
			ExpirationDate: fields.permitExpiration,
		},
		CreatedAt: time.Now(),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, ErrInvalidProfileID
	}
	return s.profileRepo.GetByID(ctx, id)
}

// UpdateProfileRequest contains the parameters for updating a profile.
type UpdateProfileRequest struct {
	ID                         string
	Name                       string
	Email                      string
	GreenCardDate              string
	GreenCardExpirationDate    string
	IsConditionalResident      bool
	BirthDate                  string
	Gender                     string
	SelectiveServiceRegistered bool
	TaxReminderDismissed       bool
	EligibilityCategory        string
	HasReentryPermit           bool
	ReentryPermitExpiration    string
}

// Update replaces a profile's fields and invalidates its cached reports.
func (s *ProfileService) Update(ctx context.Context, req UpdateProfileRequest) (*domain.Profile, error) {
	if req.ID == "" {
		return nil, ErrInvalidProfileID
	}

	fields, err := validateProfileFields(CreateProfileRequest{
		Name:                    req.Name,
		Email:                   req.Email,
		GreenCardDate:           req.GreenCardDate,
		GreenCardExpirationDate: req.GreenCardExpirationDate,
		BirthDate:               req.BirthDate,
		Gender:                  req.Gender,
		EligibilityCategory:     req.EligibilityCategory,
		HasReentryPermit:        req.HasReentryPermit,
		ReentryPermitExpiration: req.ReentryPermitExpiration,
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Email = req.Email
	profile.GreenCardDate = fields.greenCardDate
	profile.GreenCardExpirationDate = fields.expirationDate
	profile.IsConditionalResident = req.IsConditionalResident
	profile.BirthDate = fields.birthDate
	profile.Gender = domain.Gender(req.Gender)
	profile.SelectiveServiceRegistered = req.SelectiveServiceRegistered
	profile.TaxReminderDismissed = req.TaxReminderDismissed
	profile.EligibilityCategory = domain.EligibilityCategory(req.EligibilityCategory)
	profile.ReentryPermit = domain.ReentryPermit{
		HasPermit:      req.HasReentryPermit,
		ExpirationDate: fields.permitExpiration,
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	s.invalidateReports(ctx, profile.ID)

	return profile, nil
}

// Delete removes a profile, its trips, and its cached reports.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidProfileID
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx, id)

	return nil
}

// invalidateReports drops cached reports. Cache failures are logged and
// swallowed: the TTL bounds staleness and the mutation already landed.
func (s *ProfileService) invalidateReports(ctx context.Context, profileID string) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.InvalidateProfile(ctx, profileID); err != nil {
		log.Printf("failed to invalidate cached reports for profile %s: %v", profileID, err)
	}
}
