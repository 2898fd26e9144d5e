package risk

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
)

// LimitingFactor names the constraint that caps the next trip.
type LimitingFactor string

const (
	FactorPhysicalPresence    LimitingFactor = "physical_presence"
	FactorContinuousResidence LimitingFactor = "continuous_residence"
	FactorLPRStatus           LimitingFactor = "lpr_status"
)

// Warning buffers: physical presence warns inside a 30-day margin, the
// threshold-based factors warn at 90, 60, and 30 days.
const (
	presenceWarningBuffer = 30
	warningBufferWide     = 90
	warningBufferMid      = 60
	warningBufferNarrow   = 30
)

// TravelBudget is the answer to "how long can my next trip be".
type TravelBudget struct {
	SafeDays       int
	LimitingFactor LimitingFactor
	AlreadyAtRisk  bool
	Warnings       []string
}

// MaxSafeTripDays inverts the risk thresholds: given the existing travel
// history it returns how many additional days can still be spent abroad
// before crossing whichever of the physical-presence requirement, the
// continuous-residence threshold, or the LPR-status threshold is
// closest. A traveler who already has a trip of 150 days or more is
// already at risk and gets zero safe days.
func MaxSafeTripDays(trips []domain.Trip, category domain.EligibilityCategory, greenCardDate time.Time, permit domain.ReentryPermit, asOf time.Time) TravelBudget {
	for _, trip := range trips {
		if AbsenceDays(trip) >= ApproachingDays {
			return TravelBudget{
				SafeDays:       0,
				LimitingFactor: FactorContinuousResidence,
				AlreadyAtRisk:  true,
				Warnings:       []string{"An existing trip already crosses the 150-day warning threshold; travel plans should wait until the risk is resolved."},
			}
		}
	}

	// Physical presence: days abroad still affordable inside the
	// statutory window while leaving the required days present.
	anniversary := dates.AddYears(greenCardDate, category.Years())
	windowDays := dates.DaysBetween(greenCardDate, anniversary)
	abroadSoFar := presence.Calculate(trips, greenCardDate, asOf).TotalDaysAbroad
	presenceSafe := windowDays - presence.RequiredDays(category) - abroadSoFar
	if presenceSafe < 0 {
		presenceSafe = 0
	}

	// A single new trip must stay below the presumption threshold.
	residenceSafe := PresumptionDays - 1

	statusSafe := BrokenDays - 1
	if permit.ValidOn(asOf) {
		statusSafe = PermitProtectedDays
	}

	budget := TravelBudget{SafeDays: presenceSafe, LimitingFactor: FactorPhysicalPresence}
	if residenceSafe < budget.SafeDays {
		budget = TravelBudget{SafeDays: residenceSafe, LimitingFactor: FactorContinuousResidence}
	}
	if statusSafe < budget.SafeDays {
		budget = TravelBudget{SafeDays: statusSafe, LimitingFactor: FactorLPRStatus}
	}

	budget.Warnings = budgetWarnings(budget)
	return budget
}

func budgetWarnings(b TravelBudget) []string {
	var warnings []string
	switch b.LimitingFactor {
	case FactorPhysicalPresence:
		if b.SafeDays < presenceWarningBuffer {
			warnings = append(warnings, "Fewer than 30 affordable days abroad remain before the physical-presence requirement is out of reach.")
		}
	default:
		switch {
		case b.SafeDays <= warningBufferNarrow:
			warnings = append(warnings, "Under 30 safe days remain; any extended trip risks crossing a statutory threshold.")
		case b.SafeDays <= warningBufferMid:
			warnings = append(warnings, "Under 60 safe days remain; plan the return leg before departing.")
		case b.SafeDays <= warningBufferWide:
			warnings = append(warnings, "Under 90 safe days remain before the nearest statutory threshold.")
		}
	}
	return warnings
}
