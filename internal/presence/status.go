package presence

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// Statutory physical-presence requirements, in days.
const (
	RequiredDaysThreeYear = 548
	RequiredDaysFiveYear  = 913
)

// Status describes progress against the physical-presence requirement.
type Status string

const (
	StatusOnTrack   Status = "on_track"
	StatusCompleted Status = "completed"
)

// PhysicalPresence is the presence requirement expressed as progress.
type PhysicalPresence struct {
	RequiredDays       int
	DaysPresent        int
	PercentageComplete float64
	DaysRemaining      int
	Status             Status
}

// RequiredDays returns the statutory presence requirement for a path.
func RequiredDays(category domain.EligibilityCategory) int {
	if category == domain.EligibilityThreeYear {
		return RequiredDaysThreeYear
	}
	return RequiredDaysFiveYear
}

// StatusFor converts accumulated days of presence into progress against
// the statutory requirement. Percentage is clamped to 100 and remaining
// days never go negative.
func StatusFor(daysPresent int, category domain.EligibilityCategory) PhysicalPresence {
	required := RequiredDays(category)

	pct := float64(daysPresent) * 100 / float64(required)
	if pct > 100 {
		pct = 100
	}

	remaining := required - daysPresent
	if remaining < 0 {
		remaining = 0
	}

	status := StatusOnTrack
	if daysPresent >= required {
		status = StatusCompleted
	}

	return PhysicalPresence{
		RequiredDays:       required,
		DaysPresent:        daysPresent,
		PercentageComplete: pct,
		DaysRemaining:      remaining,
		Status:             status,
	}
}

// Track computes presence credit from the recorded travel history since
// the green-card date. Presence is only credited from a travel log: a
// history with no real trips yields zero days present.
func Track(trips []domain.Trip, category domain.EligibilityCategory, greenCardDate, currentDate time.Time) PhysicalPresence {
	real := RealTrips(trips)
	if len(real) == 0 {
		return StatusFor(0, category)
	}
	res := Calculate(real, greenCardDate, currentDate)
	return StatusFor(res.TotalDaysInUSA, category)
}

// EligibilityDates returns the statutory anniversary of the green-card
// date and the earliest filing date, 90 days before it. The anniversary
// is leap-day adjusted.
func EligibilityDates(greenCardDate time.Time, category domain.EligibilityCategory) (anniversary, earliestFiling time.Time) {
	anniversary = dates.AddYears(greenCardDate, category.Years())
	earliestFiling = dates.AddDays(anniversary, -90)
	return anniversary, earliestFiling
}
