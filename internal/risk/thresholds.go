package risk

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// ResidenceRisk classifies an absence against the continuous-residence
// thresholds that govern naturalization eligibility.
type ResidenceRisk string

const (
	ResidenceNone        ResidenceRisk = "none"
	ResidenceApproaching ResidenceRisk = "approaching"
	ResidenceAtRisk      ResidenceRisk = "at_risk"
	ResidenceBroken      ResidenceRisk = "broken"
)

// StatusRisk classifies an absence against the LPR-status abandonment
// thresholds. This is a separate track from continuous residence: a
// reentry permit protects status but never residence.
type StatusRisk string

const (
	StatusNone              StatusRisk = "none"
	StatusWarning           StatusRisk = "warning"
	StatusPresumption       StatusRisk = "presumption_of_abandonment"
	StatusHighRisk          StatusRisk = "high_risk"
	StatusAutomaticLoss     StatusRisk = "automatic_loss"
	StatusProtectedByPermit StatusRisk = "protected_by_permit"
)

// Day-count boundaries for the two risk tracks.
const (
	ApproachingDays = 150 // warnings begin
	PresumptionDays = 180 // rebuttable presumption of abandonment
	HighRiskDays    = 330
	BrokenDays      = 365 // automatic-loss / residence-broken boundary

	// PermitProtectedDays is the longest absence a valid reentry permit
	// covers. The last PermitWarningWindow days of that span raise an
	// approaching-limit warning.
	PermitProtectedDays = 730
	PermitWarningWindow = 60
)

// The threshold tables are ordered by descending minimum so a single
// scan finds the classification.
var residenceTable = []struct {
	MinDays int
	Risk    ResidenceRisk
}{
	{BrokenDays, ResidenceBroken},
	{PresumptionDays, ResidenceAtRisk},
	{ApproachingDays, ResidenceApproaching},
	{0, ResidenceNone},
}

var statusTable = []struct {
	MinDays int
	Risk    StatusRisk
}{
	{BrokenDays, StatusAutomaticLoss},
	{HighRiskDays, StatusHighRisk},
	{PresumptionDays, StatusPresumption},
	{ApproachingDays, StatusWarning},
	{0, StatusNone},
}

// statusRank orders StatusRisk by severity for aggregation and the
// permit-requirement check.
var statusRank = map[StatusRisk]int{
	StatusNone:              0,
	StatusProtectedByPermit: 1,
	StatusWarning:           2,
	StatusPresumption:       3,
	StatusHighRisk:          4,
	StatusAutomaticLoss:     5,
}

// AbsenceDays counts the days a trip spends abroad for risk
// classification: the inclusive span minus one, crediting only the
// departure day as present. This intentionally differs by one day from
// the physical-presence counter; see DESIGN.md.
func AbsenceDays(trip domain.Trip) int {
	days := dates.DaysBetween(trip.DepartureDate, trip.ReturnDate)
	if days < 0 {
		return 0
	}
	return days
}

// ContinuousResidenceRisk classifies a single absence length. A reentry
// permit never relaxes these thresholds.
func ContinuousResidenceRisk(daysAbroad int) ResidenceRisk {
	for _, row := range residenceTable {
		if daysAbroad >= row.MinDays {
			return row.Risk
		}
	}
	return ResidenceNone
}

// LPRStatusRisk classifies a single absence length against the
// abandonment thresholds, honoring a reentry permit valid on asOf.
// Within the permit's 730-day cover the status is protected; beyond it
// the absence is treated as automatic loss.
func LPRStatusRisk(daysAbroad int, permit domain.ReentryPermit, asOf time.Time) StatusRisk {
	if permit.ValidOn(asOf) {
		if daysAbroad <= PermitProtectedDays {
			return StatusProtectedByPermit
		}
		return StatusAutomaticLoss
	}
	for _, row := range statusTable {
		if daysAbroad >= row.MinDays {
			return row.Risk
		}
	}
	return StatusNone
}

// MoreSevere reports whether a is a more severe status risk than b.
func MoreSevere(a, b StatusRisk) bool {
	return statusRank[a] > statusRank[b]
}
