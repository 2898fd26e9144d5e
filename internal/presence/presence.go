package presence

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// Result is the aggregate presence picture over a fixed interval.
// TotalDaysInUSA + TotalDaysAbroad always equals TotalDays.
type Result struct {
	TotalDays       int
	TotalDaysInUSA  int
	TotalDaysAbroad int
}

// Calculate merges a travel history into days-in-USA vs days-abroad over
// [start, end]. Overlapping trips never double-count a day: each abroad
// day is recorded once in a set keyed by its ISO date. An inverted
// interval yields the zero result; guarding against that is the caller's
// job.
func Calculate(trips []domain.Trip, start, end time.Time) Result {
	if start.After(end) {
		return Result{}
	}

	totalDays := dates.DaysBetween(start, end) + 1
	abroad := make(map[string]struct{})

	for _, trip := range trips {
		if trip.ReturnDate.Before(start) || trip.DepartureDate.After(end) {
			continue
		}

		anchor := trip.DepartureDate
		if anchor.Before(start) {
			// The traveler already held status abroad on the window's
			// first day, so that day itself counts as abroad.
			abroad[dates.Format(start)] = struct{}{}
			anchor = start
		}

		// Days strictly between departure and return are abroad; the
		// travel days themselves are credited as present.
		for d := dates.AddDays(anchor, 1); d.Before(trip.ReturnDate) && !d.After(end); d = dates.AddDays(d, 1) {
			abroad[dates.Format(d)] = struct{}{}
		}
	}

	daysAbroad := len(abroad)
	daysInUSA := totalDays - daysAbroad
	if daysInUSA < 0 {
		daysInUSA = 0
	}

	return Result{
		TotalDays:       totalDays,
		TotalDaysInUSA:  daysInUSA,
		TotalDaysAbroad: daysAbroad,
	}
}

// RealTrips filters out simulated trips so what-if entries never leak
// into a real aggregation.
func RealTrips(trips []domain.Trip) []domain.Trip {
	real := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if !t.IsSimulated {
			real = append(real, t)
		}
	}
	return real
}
