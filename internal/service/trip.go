package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/redis"
	"lprtrack/internal/repository"
)

// TripService handles travel history operations.
type TripService struct {
	tripRepo    repository.TripRepository
	profileRepo repository.ProfileRepository
	reportCache redis.ReportCacheInterface
}

// NewTripService creates a new TripService.
func NewTripService(
	tripRepo repository.TripRepository,
	profileRepo repository.ProfileRepository,
	reportCache redis.ReportCacheInterface,
) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		profileRepo: profileRepo,
		reportCache: reportCache,
	}
}

// CreateTripRequest contains the parameters for recording a trip.
type CreateTripRequest struct {
	ProfileID     string
	DepartureDate string
	ReturnDate    string
	Location      string
	IsSimulated   bool
}

// Create records a trip abroad for a profile.
func (s *TripService) Create(ctx context.Context, req CreateTripRequest) (*domain.Trip, error) {
	if req.ProfileID == "" {
		return nil, ErrInvalidProfileID
	}

	departure, err := dates.Parse(req.DepartureDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	ret, err := dates.Parse(req.ReturnDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if ret.Before(departure) {
		return nil, ErrInvalidDateRange
	}

	// Verify the profile exists; a trip never outlives its profile.
	if _, err := s.profileRepo.GetByID(ctx, req.ProfileID); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:            uuid.New().String(),
		ProfileID:     req.ProfileID,
		DepartureDate: departure,
		ReturnDate:    ret,
		Location:      req.Location,
		IsSimulated:   req.IsSimulated,
		CreatedAt:     time.Now(),
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, req.ProfileID)

	return trip, nil
}

// List retrieves a profile's travel history ordered by departure date.
func (s *TripService) List(ctx context.Context, profileID string) ([]*domain.Trip, error) {
	if profileID == "" {
		return nil, ErrInvalidProfileID
	}

	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	return s.tripRepo.GetByProfileID(ctx, profileID)
}

// Get retrieves one trip, verifying it belongs to the profile.
func (s *TripService) Get(ctx context.Context, profileID, tripID string) (*domain.Trip, error) {
	if profileID == "" {
		return nil, ErrInvalidProfileID
	}
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.ProfileID != profileID {
		return nil, ErrTripProfileMismatch
	}

	return trip, nil
}

// Delete removes a trip from a profile's travel history.
func (s *TripService) Delete(ctx context.Context, profileID, tripID string) error {
	trip, err := s.Get(ctx, profileID, tripID)
	if err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, trip.ID); err != nil {
		return err
	}

	s.invalidateReports(ctx, profileID)

	return nil
}

func (s *TripService) invalidateReports(ctx context.Context, profileID string) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.InvalidateProfile(ctx, profileID); err != nil {
		log.Printf("failed to invalidate cached reports for profile %s: %v", profileID, err)
	}
}
