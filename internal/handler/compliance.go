package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lprtrack/internal/compliance"
	"lprtrack/internal/dates"
	"lprtrack/internal/risk"
	"lprtrack/internal/service"
)

// ComplianceHandler handles HTTP requests for compliance calculations.
type ComplianceHandler struct {
	complianceService *service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// RemovalOfConditionsResponse describes the Form I-751 obligation.
type RemovalOfConditionsResponse struct {
	Status            string `json:"status"`
	WindowStart       string `json:"window_start"`
	WindowEnd         string `json:"window_end"`
	DaysUntilWindow   int    `json:"days_until_window"`
	DaysUntilDeadline int    `json:"days_until_deadline"`
}

// GreenCardRenewalResponse describes the ten-year card renewal.
type GreenCardRenewalResponse struct {
	Status                string `json:"status"`
	ExpirationDate        string `json:"expiration_date"`
	WindowStart           string `json:"window_start"`
	MonthsUntilExpiration int    `json:"months_until_expiration"`
	DaysUntilExpiration   int    `json:"days_until_expiration"`
}

// SelectiveServiceResponse describes the registration obligation.
type SelectiveServiceResponse struct {
	Status               string `json:"status"`
	RegistrationDeadline string `json:"registration_deadline,omitempty"`
	Age                  int    `json:"age"`
}

// TaxReminderResponse describes the next filing deadline.
type TaxReminderResponse struct {
	Status                 string `json:"status"`
	TaxYear                int    `json:"tax_year"`
	Deadline               string `json:"deadline"`
	AbroadExtensionApplies bool   `json:"abroad_extension_applies"`
	DaysUntilDeadline      int    `json:"days_until_deadline"`
}

// PhysicalPresenceResponse describes progress against the presence
// requirement.
type PhysicalPresenceResponse struct {
	RequiredDays       int     `json:"required_days"`
	DaysPresent        int     `json:"days_present"`
	PercentageComplete float64 `json:"percentage_complete"`
	DaysRemaining      int     `json:"days_remaining"`
	Status             string  `json:"status"`
}

// TripRiskResponse is one trip's contribution to the risk picture.
type TripRiskResponse struct {
	TripID                  string `json:"trip_id,omitempty"`
	DepartureDate           string `json:"departure_date"`
	ReturnDate              string `json:"return_date"`
	DaysAbroad              int    `json:"days_abroad"`
	ContinuousResidenceRisk string `json:"continuous_residence_risk"`
	LPRStatusRisk           string `json:"lpr_status_risk"`
}

// RiskResponse is the aggregate abandonment-risk assessment.
type RiskResponse struct {
	OverallRisk            string            `json:"overall_risk"`
	LongestTrip            *TripRiskResponse `json:"longest_trip,omitempty"`
	CurrentYearDaysAbroad  int               `json:"current_year_days_abroad"`
	PermitApproachingLimit bool              `json:"permit_approaching_limit"`
	RequiresReentryPermit  bool              `json:"requires_reentry_permit"`
	Recommendations        []string          `json:"recommendations"`
}

// ComplianceItemResponse is one area currently requiring action.
type ComplianceItemResponse struct {
	Area        string `json:"area"`
	Urgency     string `json:"urgency"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// UpcomingDeadlineResponse is one dated entry in the deadline list.
type UpcomingDeadlineResponse struct {
	Area  string `json:"area"`
	Label string `json:"label"`
	Date  string `json:"date"`
}

// ComplianceReportResponse is the full compliance report.
type ComplianceReportResponse struct {
	AsOf                string                       `json:"as_of"`
	RemovalOfConditions *RemovalOfConditionsResponse `json:"removal_of_conditions,omitempty"`
	GreenCardRenewal    *GreenCardRenewalResponse    `json:"green_card_renewal,omitempty"`
	SelectiveService    SelectiveServiceResponse     `json:"selective_service"`
	TaxReminder         TaxReminderResponse          `json:"tax_reminder"`
	PhysicalPresence    PhysicalPresenceResponse     `json:"physical_presence"`
	EligibilityDate     string                       `json:"eligibility_date"`
	EarliestFilingDate  string                       `json:"earliest_filing_date"`
	Risk                RiskResponse                 `json:"risk"`
	ActiveItems         []ComplianceItemResponse     `json:"active_items"`
	PriorityItems       []ComplianceItemResponse     `json:"priority_items"`
	UpcomingDeadlines   []UpcomingDeadlineResponse   `json:"upcoming_deadlines"`
}

// GetReport handles GET /v1/profiles/:id/compliance
func (h *ComplianceHandler) GetReport(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	report, err := h.complianceService.GetReport(c.Request.Context(), c.Param("id"), c.Query("removal_status"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toReportResponse(report))
}

// AssessRisk handles GET /v1/profiles/:id/risk
func (h *ComplianceHandler) AssessRisk(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	includeSimulated := c.Query("include_simulated") == "true"

	assessment, err := h.complianceService.AssessRisk(c.Request.Context(), c.Param("id"), includeSimulated, asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRiskResponse(*assessment))
}

// PresenceResponse is the presence track plus the dates it runs toward.
type PresenceResponse struct {
	PhysicalPresenceResponse
	EligibilityDate    string `json:"eligibility_date"`
	EarliestFilingDate string `json:"earliest_filing_date"`
}

// GetPresence handles GET /v1/profiles/:id/presence
func (h *ComplianceHandler) GetPresence(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	summary, err := h.complianceService.GetPresence(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PresenceResponse{
		PhysicalPresenceResponse: PhysicalPresenceResponse{
			RequiredDays:       summary.Presence.RequiredDays,
			DaysPresent:        summary.Presence.DaysPresent,
			PercentageComplete: summary.Presence.PercentageComplete,
			DaysRemaining:      summary.Presence.DaysRemaining,
			Status:             string(summary.Presence.Status),
		},
		EligibilityDate:    dates.Format(summary.EligibilityDate),
		EarliestFilingDate: dates.Format(summary.EarliestFilingDate),
	})
}

// TravelBudgetResponse is the maximum safe trip duration.
type TravelBudgetResponse struct {
	SafeDays       int      `json:"safe_days"`
	LimitingFactor string   `json:"limiting_factor"`
	AlreadyAtRisk  bool     `json:"already_at_risk"`
	Warnings       []string `json:"warnings"`
}

// GetTravelBudget handles GET /v1/profiles/:id/travel-budget
func (h *ComplianceHandler) GetTravelBudget(c *gin.Context) {
	asOf, ok := asOfDate(c)
	if !ok {
		return
	}

	budget, err := h.complianceService.GetTravelBudget(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, TravelBudgetResponse{
		SafeDays:       budget.SafeDays,
		LimitingFactor: string(budget.LimitingFactor),
		AlreadyAtRisk:  budget.AlreadyAtRisk,
		Warnings:       budget.Warnings,
	})
}

// asOfDate resolves the optional as_of query parameter. The wall clock
// enters the system only here; everything below takes an explicit date.
func asOfDate(c *gin.Context) (time.Time, bool) {
	value := c.Query("as_of")
	if value == "" {
		return dates.Midnight(time.Now().UTC()), true
	}

	asOf, err := dates.Parse(value)
	if err != nil {
		respondError(c, service.ErrInvalidDateFormat)
		return time.Time{}, false
	}
	return asOf, true
}

func toReportResponse(report *compliance.Report) ComplianceReportResponse {
	resp := ComplianceReportResponse{
		AsOf: dates.Format(report.AsOf),
		SelectiveService: SelectiveServiceResponse{
			Status:               string(report.SelectiveService.CurrentStatus),
			RegistrationDeadline: formatOptional(report.SelectiveService.RegistrationDeadline),
			Age:                  report.SelectiveService.Age,
		},
		TaxReminder: TaxReminderResponse{
			Status:                 string(report.TaxReminder.CurrentStatus),
			TaxYear:                report.TaxReminder.TaxYear,
			Deadline:               dates.Format(report.TaxReminder.Deadline),
			AbroadExtensionApplies: report.TaxReminder.AbroadExtensionApplies,
			DaysUntilDeadline:      report.TaxReminder.DaysUntilDeadline,
		},
		PhysicalPresence: PhysicalPresenceResponse{
			RequiredDays:       report.PhysicalPresence.RequiredDays,
			DaysPresent:        report.PhysicalPresence.DaysPresent,
			PercentageComplete: report.PhysicalPresence.PercentageComplete,
			DaysRemaining:      report.PhysicalPresence.DaysRemaining,
			Status:             string(report.PhysicalPresence.Status),
		},
		EligibilityDate:    dates.Format(report.EligibilityDate),
		EarliestFilingDate: dates.Format(report.EarliestFilingDate),
		Risk:               toRiskResponse(report.Risk),
		ActiveItems:        toItemResponses(report.ActiveItems),
		PriorityItems:      toItemResponses(report.PriorityItems),
	}

	if roc := report.RemovalOfConditions; roc != nil {
		resp.RemovalOfConditions = &RemovalOfConditionsResponse{
			Status:            string(roc.CurrentStatus),
			WindowStart:       dates.Format(roc.WindowStart),
			WindowEnd:         dates.Format(roc.WindowEnd),
			DaysUntilWindow:   roc.DaysUntilWindow,
			DaysUntilDeadline: roc.DaysUntilDeadline,
		}
	}

	if renewal := report.GreenCardRenewal; renewal != nil {
		resp.GreenCardRenewal = &GreenCardRenewalResponse{
			Status:                string(renewal.CurrentStatus),
			ExpirationDate:        dates.Format(renewal.ExpirationDate),
			WindowStart:           dates.Format(renewal.WindowStart),
			MonthsUntilExpiration: renewal.MonthsUntilExpiration,
			DaysUntilExpiration:   renewal.DaysUntilExpiration,
		}
	}

	resp.UpcomingDeadlines = make([]UpcomingDeadlineResponse, 0, len(report.UpcomingDeadlines))
	for _, d := range report.UpcomingDeadlines {
		resp.UpcomingDeadlines = append(resp.UpcomingDeadlines, UpcomingDeadlineResponse{
			Area:  string(d.Area),
			Label: d.Label,
			Date:  dates.Format(d.Date),
		})
	}

	return resp
}

func toRiskResponse(assessment risk.Assessment) RiskResponse {
	resp := RiskResponse{
		OverallRisk:            string(assessment.OverallRisk),
		CurrentYearDaysAbroad:  assessment.CurrentYearDaysAbroad,
		PermitApproachingLimit: assessment.PermitApproachingLimit,
		RequiresReentryPermit:  assessment.RequiresReentryPermit,
		Recommendations:        assessment.Recommendations,
	}

	if longest := assessment.LongestTrip; longest != nil {
		resp.LongestTrip = &TripRiskResponse{
			TripID:                  longest.Trip.ID,
			DepartureDate:           dates.Format(longest.Trip.DepartureDate),
			ReturnDate:              dates.Format(longest.Trip.ReturnDate),
			DaysAbroad:              longest.DaysAbroad,
			ContinuousResidenceRisk: string(longest.ContinuousResidence),
			LPRStatusRisk:           string(longest.LPRStatus),
		}
	}

	return resp
}

func toItemResponses(items []compliance.Item) []ComplianceItemResponse {
	resp := make([]ComplianceItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ComplianceItemResponse{
			Area:        string(item.Area),
			Urgency:     string(item.Urgency),
			Description: item.Description,
			Deadline:    formatOptional(item.Deadline),
		})
	}
	return resp
}
