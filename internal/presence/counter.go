package presence

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// DayRule controls whether the departure and return days of a trip count
// as days present in the United States rather than days abroad.
type DayRule struct {
	IncludeDepartureDay bool
	IncludeReturnDay    bool
}

// DefaultDayRule is the convention used for physical presence and
// continuous residence: both travel days count as days in the country.
var DefaultDayRule = DayRule{IncludeDepartureDay: true, IncludeReturnDay: true}

// FullSpanRule counts the entire inclusive span as days abroad, the
// raw-duration variant used when travel days are not credited.
var FullSpanRule = DayRule{}

// CountDaysAbroad returns the number of days a single trip spends abroad
// under the given day rule. Same-day trips are zero, and the result never
// goes negative even for inconsistent inputs.
func CountDaysAbroad(trip domain.Trip, rule DayRule) int {
	if !trip.ReturnDate.After(trip.DepartureDate) {
		return 0
	}
	days := dates.DaysBetween(trip.DepartureDate, trip.ReturnDate) + 1
	if rule.IncludeDepartureDay {
		days--
	}
	if rule.IncludeReturnDay {
		days--
	}
	if days < 0 {
		days = 0
	}
	return days
}

// CountDaysAbroadInWindow clips the trip to [start, end] before applying
// the day rule. Trips that do not intersect the window count zero.
func CountDaysAbroadInWindow(trip domain.Trip, start, end time.Time, rule DayRule) int {
	if end.Before(start) {
		return 0
	}
	if trip.ReturnDate.Before(start) || trip.DepartureDate.After(end) {
		return 0
	}
	clipped := trip
	if clipped.DepartureDate.Before(start) {
		clipped.DepartureDate = start
	}
	if clipped.ReturnDate.After(end) {
		clipped.ReturnDate = end
	}
	return CountDaysAbroad(clipped, rule)
}
