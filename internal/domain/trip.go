package domain

import "time"

// Trip represents one absence from the United States: the traveler departs
// on DepartureDate and reenters on ReturnDate. Dates are calendar dates
// anchored to UTC midnight; ReturnDate is never before DepartureDate.
type Trip struct {
	ID            string
	ProfileID     string
	DepartureDate time.Time
	ReturnDate    time.Time
	Location      string
	// IsSimulated marks a hypothetical trip used for what-if risk queries.
	// Simulated trips are excluded from real aggregations unless the
	// caller asks for them explicitly.
	IsSimulated bool
	CreatedAt   time.Time
}
