package risk

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
)

// CurrentYearWarningDays is the cumulative days-abroad figure within the
// current calendar year that raises the overall risk to a warning even
// when no single trip crosses a threshold.
const CurrentYearWarningDays = 180

// TripRisk is the risk contribution of a single trip.
type TripRisk struct {
	Trip                domain.Trip
	DaysAbroad          int
	ContinuousResidence ResidenceRisk
	LPRStatus           StatusRisk
}

// Assessment is the aggregate risk picture for a travel history.
type Assessment struct {
	OverallRisk           StatusRisk
	LongestTrip           *TripRisk
	CurrentYearDaysAbroad int
	// PermitApproachingLimit is set when a permit-protected absence is
	// inside the final 60 days of the 730-day cover.
	PermitApproachingLimit bool
	RequiresReentryPermit  bool
	Recommendations        []string
}

// AssessTrip classifies one trip on both risk tracks.
func AssessTrip(trip domain.Trip, permit domain.ReentryPermit, asOf time.Time) TripRisk {
	days := AbsenceDays(trip)
	return TripRisk{
		Trip:                trip,
		DaysAbroad:          days,
		ContinuousResidence: ContinuousResidenceRisk(days),
		LPRStatus:           LPRStatusRisk(days, permit, asOf),
	}
}

// AssessHistory aggregates a travel history into an overall risk level.
// The overall level is the status risk of the longest single absence,
// raised to a warning when the current calendar year already holds more
// than 180 cumulative days abroad.
func AssessHistory(trips []domain.Trip, permit domain.ReentryPermit, asOf time.Time) Assessment {
	var longest *TripRisk
	for _, trip := range trips {
		tr := AssessTrip(trip, permit, asOf)
		if longest == nil || tr.DaysAbroad > longest.DaysAbroad {
			copied := tr
			longest = &copied
		}
	}

	overall := StatusNone
	approachingPermitLimit := false
	if longest != nil {
		overall = longest.LPRStatus
		if permit.ValidOn(asOf) &&
			longest.DaysAbroad > PermitProtectedDays-PermitWarningWindow &&
			longest.DaysAbroad <= PermitProtectedDays {
			approachingPermitLimit = true
		}
	}

	yearStart := dates.New(asOf.Year(), time.January, 1)
	yearDays := presence.Calculate(trips, yearStart, asOf).TotalDaysAbroad
	if yearDays > CurrentYearWarningDays && !MoreSevere(overall, StatusWarning) {
		overall = StatusWarning
	}

	return Assessment{
		OverallRisk:            overall,
		LongestTrip:            longest,
		CurrentYearDaysAbroad:  yearDays,
		PermitApproachingLimit: approachingPermitLimit,
		RequiresReentryPermit:  statusRank[overall] >= statusRank[StatusPresumption],
		Recommendations:        RecommendationsFor(overall, approachingPermitLimit),
	}
}
