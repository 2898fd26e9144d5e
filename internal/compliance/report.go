package compliance

import (
	"time"

	"lprtrack/internal/deadline"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
	"lprtrack/internal/risk"
)

// Report is the composite compliance picture for one profile at one
// moment. It is assembled whole: every area is computed from the same
// asOf date, and the engine never returns a partially filled report.
type Report struct {
	AsOf                time.Time
	RemovalOfConditions *deadline.RemovalOfConditions
	GreenCardRenewal    *deadline.GreenCardRenewal
	SelectiveService    deadline.SelectiveService
	TaxReminder         deadline.TaxReminder
	PhysicalPresence    presence.PhysicalPresence
	EligibilityDate     time.Time
	EarliestFilingDate  time.Time
	Risk                risk.Assessment
	ActiveItems         []Item
	PriorityItems       []Item
	UpcomingDeadlines   []Deadline
}

// BuildReport invokes the four deadline calculators and the risk
// assessor with a shared asOf date and derives the active, priority, and
// upcoming views. Simulated trips are filtered out before any real
// aggregation.
func BuildReport(profile domain.Profile, trips []domain.Trip, removalOverride deadline.RemovalStatus, asOf time.Time) Report {
	real := presence.RealTrips(trips)

	eligibility, earliestFiling := presence.EligibilityDates(profile.GreenCardDate, profile.EligibilityCategory)

	r := Report{
		AsOf:                asOf,
		RemovalOfConditions: deadline.RemovalOfConditionsFor(profile, removalOverride, asOf),
		GreenCardRenewal:    deadline.GreenCardRenewalFor(profile, asOf),
		SelectiveService:    deadline.SelectiveServiceFor(profile, asOf),
		TaxReminder:         deadline.TaxReminderFor(profile, real, asOf),
		PhysicalPresence:    presence.Track(real, profile.EligibilityCategory, profile.GreenCardDate, asOf),
		EligibilityDate:     eligibility,
		EarliestFilingDate:  earliestFiling,
		Risk:                risk.AssessHistory(real, profile.ReentryPermit, asOf),
	}

	r.ActiveItems = activeItems(r)
	r.PriorityItems = priorityItems(r.ActiveItems)
	r.UpcomingDeadlines = upcomingDeadlines(r)

	return r
}
