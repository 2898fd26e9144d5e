package deadline

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// RenewalStatus is the state of the 10-year green-card renewal.
type RenewalStatus string

const (
	RenewalValid       RenewalStatus = "valid"
	RenewalRecommended RenewalStatus = "renewal_recommended"
	RenewalUrgent      RenewalStatus = "renewal_urgent"
	RenewalExpired     RenewalStatus = "expired"
)

// Renewal window and urgency boundaries, in months before expiration.
const (
	RenewalWindowMonths = 6
	RenewalUrgentMonths = 2
)

// GreenCardRenewal describes the renewal state of a 10-year card.
type GreenCardRenewal struct {
	CurrentStatus         RenewalStatus
	ExpirationDate        time.Time
	WindowStart           time.Time
	MonthsUntilExpiration int
	DaysUntilExpiration   int
}

// GreenCardRenewalFor computes the renewal state. Conditional 2-year
// cards are not renewed (their holders file I-751 instead), so this
// returns nil for them, and for profiles with no recorded expiration
// date. The window opens six months before expiration, leap-day
// adjusted.
func GreenCardRenewalFor(profile domain.Profile, asOf time.Time) *GreenCardRenewal {
	if profile.IsConditionalResident || profile.GreenCardExpirationDate.IsZero() {
		return nil
	}

	expiration := profile.GreenCardExpirationDate
	windowStart := dates.AddMonths(expiration, -RenewalWindowMonths)

	r := &GreenCardRenewal{
		ExpirationDate: expiration,
		WindowStart:    windowStart,
	}

	switch {
	case asOf.After(expiration):
		r.CurrentStatus = RenewalExpired
	case asOf.Before(windowStart):
		r.CurrentStatus = RenewalValid
	default:
		r.CurrentStatus = RenewalRecommended
		if wholeMonthsUntil(asOf, expiration) < RenewalUrgentMonths {
			r.CurrentStatus = RenewalUrgent
		}
	}

	if !asOf.After(expiration) {
		r.MonthsUntilExpiration = wholeMonthsUntil(asOf, expiration)
		r.DaysUntilExpiration = dates.DaysBetween(asOf, expiration)
	}

	return r
}

// wholeMonthsUntil counts complete calendar months from a to b.
func wholeMonthsUntil(a, b time.Time) int {
	months := 0
	for !dates.AddMonths(a, months+1).After(b) {
		months++
	}
	return months
}
