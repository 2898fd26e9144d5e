package risk

import (
	"testing"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

func tripDays(departure string, days int) domain.Trip {
	dep := dates.MustParse(departure)
	return domain.Trip{
		DepartureDate: dep,
		ReturnDate:    dates.AddDays(dep, days),
	}
}

func TestAbsenceDays(t *testing.T) {
	t.Parallel()

	same := tripDays("2024-03-01", 0)
	if got := AbsenceDays(same); got != 0 {
		t.Errorf("same-day trip = %d days, want 0", got)
	}

	reversed := domain.Trip{
		DepartureDate: dates.MustParse("2024-03-10"),
		ReturnDate:    dates.MustParse("2024-03-01"),
	}
	if got := AbsenceDays(reversed); got != 0 {
		t.Errorf("reversed trip = %d days, want 0", got)
	}

	if got := AbsenceDays(tripDays("2024-01-01", 365)); got != 365 {
		t.Errorf("year-long trip = %d days, want 365", got)
	}
}

func TestContinuousResidenceRisk_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		days int
		want ResidenceRisk
	}{
		{0, ResidenceNone},
		{149, ResidenceNone},
		{150, ResidenceApproaching},
		{179, ResidenceApproaching},
		{180, ResidenceAtRisk},
		{329, ResidenceAtRisk},
		{330, ResidenceAtRisk},
		{364, ResidenceAtRisk},
		{365, ResidenceBroken},
		{1000, ResidenceBroken},
	}

	for _, tc := range cases {
		if got := ContinuousResidenceRisk(tc.days); got != tc.want {
			t.Errorf("ContinuousResidenceRisk(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestLPRStatusRisk_Boundaries(t *testing.T) {
	t.Parallel()

	var noPermit domain.ReentryPermit
	asOf := dates.MustParse("2024-06-01")

	cases := []struct {
		days int
		want StatusRisk
	}{
		{0, StatusNone},
		{149, StatusNone},
		{150, StatusWarning},
		{179, StatusWarning},
		{180, StatusPresumption},
		{329, StatusPresumption},
		{330, StatusHighRisk},
		{364, StatusHighRisk},
		{365, StatusAutomaticLoss},
	}

	for _, tc := range cases {
		if got := LPRStatusRisk(tc.days, noPermit, asOf); got != tc.want {
			t.Errorf("LPRStatusRisk(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestLPRStatusRisk_ReentryPermit(t *testing.T) {
	t.Parallel()

	asOf := dates.MustParse("2024-06-01")
	permit := domain.ReentryPermit{HasPermit: true, ExpirationDate: dates.MustParse("2025-01-01")}

	if got := LPRStatusRisk(365, permit, asOf); got != StatusProtectedByPermit {
		t.Errorf("365 days with permit = %s, want %s", got, StatusProtectedByPermit)
	}
	if got := LPRStatusRisk(730, permit, asOf); got != StatusProtectedByPermit {
		t.Errorf("730 days with permit = %s, want %s", got, StatusProtectedByPermit)
	}
	if got := LPRStatusRisk(731, permit, asOf); got != StatusAutomaticLoss {
		t.Errorf("731 days with permit = %s, want %s", got, StatusAutomaticLoss)
	}

	expired := domain.ReentryPermit{HasPermit: true, ExpirationDate: dates.MustParse("2024-01-01")}
	if got := LPRStatusRisk(365, expired, asOf); got != StatusAutomaticLoss {
		t.Errorf("expired permit must not protect, got %s", got)
	}
}

func TestAssessTrip_PermitNeverProtectsResidence(t *testing.T) {
	t.Parallel()

	asOf := dates.MustParse("2024-12-01")
	permit := domain.ReentryPermit{HasPermit: true, ExpirationDate: dates.MustParse("2026-01-01")}

	tr := AssessTrip(tripDays("2024-01-01", 200), permit, asOf)
	if tr.LPRStatus != StatusProtectedByPermit {
		t.Errorf("LPRStatus = %s, want %s", tr.LPRStatus, StatusProtectedByPermit)
	}
	if tr.ContinuousResidence != ResidenceAtRisk {
		t.Errorf("ContinuousResidence = %s, want %s: a permit never protects continuous residence", tr.ContinuousResidence, ResidenceAtRisk)
	}
}

func TestAssessHistory_LongestTripDrivesOverall(t *testing.T) {
	t.Parallel()

	asOf := dates.MustParse("2025-06-01")
	trips := []domain.Trip{
		tripDays("2024-01-01", 30),
		tripDays("2024-03-01", 200),
		tripDays("2024-11-01", 10),
	}

	got := AssessHistory(trips, domain.ReentryPermit{}, asOf)
	if got.OverallRisk != StatusPresumption {
		t.Errorf("OverallRisk = %s, want %s", got.OverallRisk, StatusPresumption)
	}
	if got.LongestTrip == nil || got.LongestTrip.DaysAbroad != 200 {
		t.Errorf("LongestTrip = %+v, want the 200-day trip", got.LongestTrip)
	}
	if !got.RequiresReentryPermit {
		t.Error("RequiresReentryPermit should be true at presumption_of_abandonment")
	}
	if len(got.Recommendations) == 0 {
		t.Error("expected recommendations for presumption_of_abandonment")
	}
}

func TestAssessHistory_CurrentYearCumulativeWarning(t *testing.T) {
	t.Parallel()

	// Three trips of ~70 abroad days each within 2024: no trip crosses a
	// single-trip threshold but the year's cumulative figure does.
	asOf := dates.MustParse("2024-12-01")
	trips := []domain.Trip{
		tripDays("2024-01-10", 71),
		tripDays("2024-04-10", 71),
		tripDays("2024-07-10", 71),
	}

	got := AssessHistory(trips, domain.ReentryPermit{}, asOf)
	if got.CurrentYearDaysAbroad != 210 {
		t.Errorf("CurrentYearDaysAbroad = %d, want 210", got.CurrentYearDaysAbroad)
	}
	if got.OverallRisk != StatusWarning {
		t.Errorf("OverallRisk = %s, want %s from cumulative days", got.OverallRisk, StatusWarning)
	}
}

func TestAssessHistory_PermitApproachingLimit(t *testing.T) {
	t.Parallel()

	asOf := dates.MustParse("2025-12-01")
	permit := domain.ReentryPermit{HasPermit: true, ExpirationDate: dates.MustParse("2026-06-01")}

	got := AssessHistory([]domain.Trip{tripDays("2024-01-01", 700)}, permit, asOf)
	if got.OverallRisk != StatusProtectedByPermit {
		t.Errorf("OverallRisk = %s, want %s", got.OverallRisk, StatusProtectedByPermit)
	}
	if !got.PermitApproachingLimit {
		t.Error("PermitApproachingLimit should fire inside the final 60 days of the 730-day cover")
	}

	early := AssessHistory([]domain.Trip{tripDays("2024-01-01", 600)}, permit, asOf)
	if early.PermitApproachingLimit {
		t.Error("PermitApproachingLimit must not fire at 600 days")
	}
}

func TestAssessHistory_Empty(t *testing.T) {
	t.Parallel()

	got := AssessHistory(nil, domain.ReentryPermit{}, dates.MustParse("2024-06-01"))
	if got.OverallRisk != StatusNone {
		t.Errorf("OverallRisk = %s, want %s", got.OverallRisk, StatusNone)
	}
	if got.LongestTrip != nil {
		t.Errorf("LongestTrip = %+v, want nil", got.LongestTrip)
	}
	if got.RequiresReentryPermit {
		t.Error("an empty history never requires a permit")
	}
}

func TestMaxSafeTripDays_ShortCircuitsWhenAlreadyAtRisk(t *testing.T) {
	t.Parallel()

	got := MaxSafeTripDays(
		[]domain.Trip{tripDays("2024-01-01", 150)},
		domain.EligibilityFiveYear,
		dates.MustParse("2023-01-01"),
		domain.ReentryPermit{},
		dates.MustParse("2024-08-01"),
	)

	if !got.AlreadyAtRisk || got.SafeDays != 0 {
		t.Errorf("150-day existing trip should short-circuit to zero safe days, got %+v", got)
	}
}

func TestMaxSafeTripDays_ContinuousResidenceLimits(t *testing.T) {
	t.Parallel()

	// A fresh five-year LPR with no travel: the presence allowance is
	// large, so the 180-day presumption threshold is the binding one.
	got := MaxSafeTripDays(nil, domain.EligibilityFiveYear,
		dates.MustParse("2024-01-01"), domain.ReentryPermit{}, dates.MustParse("2024-02-01"))

	if got.LimitingFactor != FactorContinuousResidence {
		t.Errorf("LimitingFactor = %s, want %s", got.LimitingFactor, FactorContinuousResidence)
	}
	if got.SafeDays != PresumptionDays-1 {
		t.Errorf("SafeDays = %d, want %d", got.SafeDays, PresumptionDays-1)
	}
	if got.AlreadyAtRisk {
		t.Error("fresh history must not be at risk")
	}
}

func TestMaxSafeTripDays_PresenceBecomesLimiting(t *testing.T) {
	t.Parallel()

	// Heavy (but individually sub-threshold) travel burns the presence
	// allowance down below the 179-day residence cap.
	var trips []domain.Trip
	dep := dates.MustParse("2021-02-01")
	for i := 0; i < 6; i++ {
		trips = append(trips, domain.Trip{
			DepartureDate: dep,
			ReturnDate:    dates.AddDays(dep, 140),
		})
		dep = dates.AddDays(dep, 170)
	}

	got := MaxSafeTripDays(trips, domain.EligibilityThreeYear,
		dates.MustParse("2021-01-01"), domain.ReentryPermit{}, dates.MustParse("2023-12-01"))

	if got.LimitingFactor != FactorPhysicalPresence {
		t.Errorf("LimitingFactor = %s, want %s", got.LimitingFactor, FactorPhysicalPresence)
	}
	if got.SafeDays >= PresumptionDays-1 {
		t.Errorf("SafeDays = %d, should be below the residence cap", got.SafeDays)
	}
	if len(got.Warnings) == 0 {
		t.Error("expected a warning once the presence margin is thin")
	}
}

func TestRecommendationsFor_KnownLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []StatusRisk{StatusNone, StatusWarning, StatusPresumption, StatusHighRisk, StatusAutomaticLoss, StatusProtectedByPermit} {
		if recs := RecommendationsFor(level, false); len(recs) == 0 {
			t.Errorf("no recommendations for %s", level)
		}
	}

	withLimit := RecommendationsFor(StatusProtectedByPermit, true)
	without := RecommendationsFor(StatusProtectedByPermit, false)
	if len(withLimit) != len(without)+1 {
		t.Errorf("approaching-limit warning should append one recommendation: %d vs %d", len(withLimit), len(without))
	}
}
