package service

import (
	"context"
	"log"
	"time"

	"lprtrack/internal/compliance"
	"lprtrack/internal/deadline"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
	"lprtrack/internal/redis"
	"lprtrack/internal/repository"
	"lprtrack/internal/risk"
)

// ComplianceService computes compliance reports, risk assessments, and
// presence figures for a profile. The engine packages are pure; this
// layer loads the profile and travel history, applies the as-of date,
// and caches the composite report.
type ComplianceService struct {
	profileRepo repository.ProfileRepository
	tripRepo    repository.TripRepository
	reportCache redis.ReportCacheInterface
}

// NewComplianceService creates a new ComplianceService.
func NewComplianceService(
	profileRepo repository.ProfileRepository,
	tripRepo repository.TripRepository,
	reportCache redis.ReportCacheInterface,
) *ComplianceService {
	return &ComplianceService{
		profileRepo: profileRepo,
		tripRepo:    tripRepo,
		reportCache: reportCache,
	}
}

// GetReport returns the full compliance report for a profile as of a
// date. removalStatus optionally overrides the I-751 state with "filed"
// or "approved". Reports without an override are served from cache when
// possible.
func (s *ComplianceService) GetReport(ctx context.Context, profileID string, removalStatus string, asOf time.Time) (*compliance.Report, error) {
	override, err := parseRemovalStatus(removalStatus)
	if err != nil {
		return nil, err
	}

	cacheable := override == "" && s.reportCache != nil
	if cacheable {
		cached, err := s.reportCache.Get(ctx, profileID, asOf)
		if err != nil {
			log.Printf("report cache read failed for profile %s: %v", profileID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	profile, trips, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	report := compliance.BuildReport(*profile, trips, override, asOf)

	if cacheable {
		if err := s.reportCache.Set(ctx, profileID, &report); err != nil {
			log.Printf("report cache write failed for profile %s: %v", profileID, err)
		}
	}

	return &report, nil
}

// AssessRisk returns the abandonment risk assessment for a profile.
// Simulated trips are included only when requested, which is how what-if
// trips are evaluated.
func (s *ComplianceService) AssessRisk(ctx context.Context, profileID string, includeSimulated bool, asOf time.Time) (*risk.Assessment, error) {
	profile, trips, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !includeSimulated {
		trips = presence.RealTrips(trips)
	}

	assessment := risk.AssessHistory(trips, profile.ReentryPermit, asOf)
	return &assessment, nil
}

// PresenceSummary pairs the physical-presence track with the statutory
// eligibility dates it runs toward.
type PresenceSummary struct {
	Presence           presence.PhysicalPresence
	EligibilityDate    time.Time
	EarliestFilingDate time.Time
}

// GetPresence returns the physical-presence status for a profile.
func (s *ComplianceService) GetPresence(ctx context.Context, profileID string, asOf time.Time) (*PresenceSummary, error) {
	profile, trips, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	eligibility, earliestFiling := presence.EligibilityDates(profile.GreenCardDate, profile.EligibilityCategory)

	return &PresenceSummary{
		Presence:           presence.Track(presence.RealTrips(trips), profile.EligibilityCategory, profile.GreenCardDate, asOf),
		EligibilityDate:    eligibility,
		EarliestFilingDate: earliestFiling,
	}, nil
}

// GetTravelBudget returns the longest trip the profile could still take
// without crossing a risk or presence threshold.
func (s *ComplianceService) GetTravelBudget(ctx context.Context, profileID string, asOf time.Time) (*risk.TravelBudget, error) {
	profile, trips, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	budget := risk.MaxSafeTripDays(
		presence.RealTrips(trips),
		profile.EligibilityCategory,
		profile.GreenCardDate,
		profile.ReentryPermit,
		asOf,
	)
	return &budget, nil
}

func (s *ComplianceService) load(ctx context.Context, profileID string) (*domain.Profile, []domain.Trip, error) {
	if profileID == "" {
		return nil, nil, ErrInvalidProfileID
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.tripRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}

	trips := make([]domain.Trip, 0, len(stored))
	for _, trip := range stored {
		trips = append(trips, *trip)
	}

	return profile, trips, nil
}

func parseRemovalStatus(value string) (deadline.RemovalStatus, error) {
	switch deadline.RemovalStatus(value) {
	case "", deadline.RemovalFiled, deadline.RemovalApproved:
		return deadline.RemovalStatus(value), nil
	default:
		return "", ErrInvalidRemovalStatus
	}
}
