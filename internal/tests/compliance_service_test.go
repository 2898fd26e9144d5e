package tests

import (
	"context"
	"errors"
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/risk"
	"lprtrack/internal/service"
)

func seedLPR(profileRepo *MockProfileRepository) *domain.Profile {
	profile := &domain.Profile{
		ID:                  "profile-1",
		Name:                "Ana Morales",
		Email:               "ana@example.com",
		GreenCardDate:       dates.MustParse("2021-01-01"),
		BirthDate:           dates.MustParse("1990-06-15"),
		Gender:              domain.GenderFemale,
		EligibilityCategory: domain.EligibilityFiveYear,
	}
	profileRepo.AddProfile(profile)
	return profile
}

func TestComplianceService_GetReportCaching(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	tripRepo := NewMockTripRepository()
	cache := NewMockReportCache()
	seedLPR(profileRepo)

	svc := service.NewComplianceService(profileRepo, tripRepo, cache)
	asOf := dates.MustParse("2024-01-01")

	first, err := svc.GetReport(context.Background(), "profile-1", "", asOf)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if cache.SetCallCount != 1 {
		t.Errorf("SetCallCount = %d, want 1 after a miss", cache.SetCallCount)
	}

	second, err := svc.GetReport(context.Background(), "profile-1", "", asOf)
	if err != nil {
		t.Fatalf("second GetReport returned error: %v", err)
	}
	if cache.SetCallCount != 1 {
		t.Errorf("SetCallCount = %d, want 1: second read should hit the cache", cache.SetCallCount)
	}
	if first.PhysicalPresence != second.PhysicalPresence {
		t.Errorf("cached report diverged: %+v vs %+v", first.PhysicalPresence, second.PhysicalPresence)
	}
}

func TestComplianceService_GetReportOverrideBypassesCache(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	cache := NewMockReportCache()
	seedLPR(profileRepo)

	svc := service.NewComplianceService(profileRepo, NewMockTripRepository(), cache)
	asOf := dates.MustParse("2024-01-01")

	if _, err := svc.GetReport(context.Background(), "profile-1", "filed", asOf); err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if cache.GetCallCount != 0 || cache.SetCallCount != 0 {
		t.Errorf("cache touched (get=%d set=%d) for an override request", cache.GetCallCount, cache.SetCallCount)
	}

	_, err := svc.GetReport(context.Background(), "profile-1", "bogus", asOf)
	if !errors.Is(err, service.ErrInvalidRemovalStatus) {
		t.Errorf("GetReport error = %v, want %v", err, service.ErrInvalidRemovalStatus)
	}
}

func TestComplianceService_ReportWithEmptyTravelHistory(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	seedLPR(profileRepo)

	svc := service.NewComplianceService(profileRepo, NewMockTripRepository(), NewMockReportCache())

	report, err := svc.GetReport(context.Background(), "profile-1", "", dates.MustParse("2024-01-01"))
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}

	// Presence credit comes from the recorded travel log; with no log
	// there is nothing to credit.
	if report.PhysicalPresence.DaysPresent != 0 {
		t.Errorf("DaysPresent = %d, want 0", report.PhysicalPresence.DaysPresent)
	}
	if report.PhysicalPresence.DaysRemaining != 913 {
		t.Errorf("DaysRemaining = %d, want 913", report.PhysicalPresence.DaysRemaining)
	}
	if report.Risk.OverallRisk != risk.StatusNone {
		t.Errorf("OverallRisk = %s, want %s", report.Risk.OverallRisk, risk.StatusNone)
	}
	if dates.Format(report.EligibilityDate) != "2026-01-01" {
		t.Errorf("EligibilityDate = %s, want 2026-01-01", dates.Format(report.EligibilityDate))
	}
}

func TestComplianceService_AssessRiskSimulatedTrips(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	tripRepo := NewMockTripRepository()
	seedLPR(profileRepo)

	// A hypothetical 181-day absence, over the presumption threshold.
	tripRepo.AddTrip(&domain.Trip{
		ID:            "trip-1",
		ProfileID:     "profile-1",
		DepartureDate: dates.MustParse("2024-01-01"),
		ReturnDate:    dates.MustParse("2024-06-30"),
		IsSimulated:   true,
	})

	svc := service.NewComplianceService(profileRepo, tripRepo, NewMockReportCache())
	asOf := dates.MustParse("2025-01-01")

	excluded, err := svc.AssessRisk(context.Background(), "profile-1", false, asOf)
	if err != nil {
		t.Fatalf("AssessRisk returned error: %v", err)
	}
	if excluded.OverallRisk != risk.StatusNone {
		t.Errorf("OverallRisk = %s, want %s with simulated trips excluded", excluded.OverallRisk, risk.StatusNone)
	}

	included, err := svc.AssessRisk(context.Background(), "profile-1", true, asOf)
	if err != nil {
		t.Fatalf("AssessRisk returned error: %v", err)
	}
	if included.OverallRisk != risk.StatusPresumption {
		t.Errorf("OverallRisk = %s, want %s with simulated trips included", included.OverallRisk, risk.StatusPresumption)
	}
	if included.LongestTrip == nil || included.LongestTrip.DaysAbroad != 181 {
		t.Errorf("LongestTrip = %+v, want 181 days abroad", included.LongestTrip)
	}
}

func TestComplianceService_GetPresenceAndBudget(t *testing.T) {
	t.Parallel()

	profileRepo := NewMockProfileRepository()
	tripRepo := NewMockTripRepository()
	seedLPR(profileRepo)

	tripRepo.AddTrip(&domain.Trip{
		ID:            "trip-1",
		ProfileID:     "profile-1",
		DepartureDate: dates.MustParse("2023-03-01"),
		ReturnDate:    dates.MustParse("2023-03-10"),
	})

	svc := service.NewComplianceService(profileRepo, tripRepo, NewMockReportCache())
	asOf := dates.MustParse("2024-01-01")

	summary, err := svc.GetPresence(context.Background(), "profile-1", asOf)
	if err != nil {
		t.Fatalf("GetPresence returned error: %v", err)
	}
	if summary.Presence.DaysPresent == 0 {
		t.Error("DaysPresent = 0, want presence credit from the recorded history")
	}
	if dates.Format(summary.EarliestFilingDate) != "2025-10-03" {
		t.Errorf("EarliestFilingDate = %s, want 2025-10-03", dates.Format(summary.EarliestFilingDate))
	}

	budget, err := svc.GetTravelBudget(context.Background(), "profile-1", asOf)
	if err != nil {
		t.Fatalf("GetTravelBudget returned error: %v", err)
	}
	if budget.AlreadyAtRisk {
		t.Error("AlreadyAtRisk = true for a 10-day trip history")
	}
	if budget.SafeDays <= 0 {
		t.Errorf("SafeDays = %d, want a positive budget", budget.SafeDays)
	}
}

func TestComplianceService_UnknownProfile(t *testing.T) {
	t.Parallel()

	svc := service.NewComplianceService(NewMockProfileRepository(), NewMockTripRepository(), NewMockReportCache())

	_, err := svc.GetReport(context.Background(), "missing", "", dates.MustParse("2024-01-01"))
	if err == nil {
		t.Fatal("GetReport succeeded for an unknown profile")
	}
}
