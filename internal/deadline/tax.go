package deadline

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
)

// TaxStatus is the state of the filing reminder.
type TaxStatus string

const (
	TaxUpcoming  TaxStatus = "upcoming"
	TaxDueSoon   TaxStatus = "due_soon"
	TaxDismissed TaxStatus = "dismissed"
)

// TaxDueSoonDays is the near-term threshold at which the reminder turns
// actionable.
const TaxDueSoonDays = 30

// The tax-season window: a real trip overlapping it triggers the
// automatic abroad extension to June 15.
var (
	taxSeasonStartMonth = time.January
	taxSeasonStartDay   = 23
)

// TaxReminder describes the next filing deadline.
type TaxReminder struct {
	CurrentStatus TaxStatus
	TaxYear       int // the year being filed for
	// Deadline is the effective filing deadline, weekend/holiday
	// adjusted and extended to June 15 when the abroad extension
	// applies.
	Deadline               time.Time
	AbroadExtensionApplies bool
	DaysUntilDeadline      int
}

// FilingDeadline returns the adjusted April 15 deadline for a filing
// year.
func FilingDeadline(year int) time.Time {
	return dates.ShiftPastWeekendAndHoliday(dates.New(year, time.April, 15))
}

// AbroadExtensionDeadline returns the adjusted June 15 deadline granted
// automatically to taxpayers abroad during the filing season.
func AbroadExtensionDeadline(year int) time.Time {
	return dates.ShiftPastWeekendAndHoliday(dates.New(year, time.June, 15))
}

// Form4868Deadline returns the adjusted October 15 deadline for filers
// of a Form 4868 extension request.
func Form4868Deadline(year int) time.Time {
	return dates.ShiftPastWeekendAndHoliday(dates.New(year, time.October, 15))
}

// abroadDuringTaxSeason reports whether any real trip overlaps the
// [Jan 23, Apr 15] season window of the filing year.
func abroadDuringTaxSeason(trips []domain.Trip, filingYear int) bool {
	seasonStart := dates.New(filingYear, taxSeasonStartMonth, taxSeasonStartDay)
	seasonEnd := dates.New(filingYear, time.April, 15)
	for _, trip := range presence.RealTrips(trips) {
		if !trip.ReturnDate.Before(seasonStart) && !trip.DepartureDate.After(seasonEnd) {
			return true
		}
	}
	return false
}

// TaxReminderFor computes the next effective filing deadline. The
// deadline rolls to the next filing year once the current year's
// effective deadline (including any abroad extension) has passed.
func TaxReminderFor(profile domain.Profile, trips []domain.Trip, asOf time.Time) TaxReminder {
	filingYear := asOf.Year()
	deadline, abroad := effectiveDeadline(trips, filingYear)
	if asOf.After(deadline) {
		filingYear++
		deadline, abroad = effectiveDeadline(trips, filingYear)
	}

	reminder := TaxReminder{
		TaxYear:                filingYear - 1,
		Deadline:               deadline,
		AbroadExtensionApplies: abroad,
		DaysUntilDeadline:      dates.DaysBetween(asOf, deadline),
	}

	switch {
	case profile.TaxReminderDismissed:
		reminder.CurrentStatus = TaxDismissed
	case reminder.DaysUntilDeadline <= TaxDueSoonDays:
		reminder.CurrentStatus = TaxDueSoon
	default:
		reminder.CurrentStatus = TaxUpcoming
	}

	return reminder
}

func effectiveDeadline(trips []domain.Trip, filingYear int) (time.Time, bool) {
	if abroadDuringTaxSeason(trips, filingYear) {
		return AbroadExtensionDeadline(filingYear), true
	}
	return FilingDeadline(filingYear), false
}
