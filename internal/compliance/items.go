package compliance

import (
	"sort"
	"time"

	"lprtrack/internal/deadline"
)

// Area names a statutory compliance area.
type Area string

const (
	AreaRemovalOfConditions Area = "removal_of_conditions"
	AreaGreenCardRenewal    Area = "green_card_renewal"
	AreaSelectiveService    Area = "selective_service"
	AreaTaxFiling           Area = "tax_filing"
)

// Urgency ranks how time-critical an item is.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

var urgencyRank = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

// areaRank is the fixed tiebreak order when urgency and deadline match.
var areaRank = map[Area]int{
	AreaRemovalOfConditions: 0,
	AreaGreenCardRenewal:    1,
	AreaSelectiveService:    2,
	AreaTaxFiling:           3,
}

// Item is one compliance area currently requiring action.
type Item struct {
	Area        Area
	Urgency     Urgency
	Description string
	Deadline    time.Time // zero when the deadline has already passed
}

// Deadline is a dated entry in the upcoming-deadline list.
type Deadline struct {
	Area  Area
	Label string
	Date  time.Time
}

// activeItems derives one entry per area currently requiring action.
func activeItems(r Report) []Item {
	var items []Item

	if roc := r.RemovalOfConditions; roc != nil {
		switch roc.CurrentStatus {
		case deadline.RemovalInWindow:
			items = append(items, Item{
				Area:        AreaRemovalOfConditions,
				Urgency:     UrgencyHigh,
				Description: "Form I-751 filing window is open",
				Deadline:    roc.WindowEnd,
			})
		case deadline.RemovalOverdue:
			items = append(items, Item{
				Area:        AreaRemovalOfConditions,
				Urgency:     UrgencyCritical,
				Description: "Form I-751 filing window has closed; file immediately with an explanation",
			})
		}
	}

	if renewal := r.GreenCardRenewal; renewal != nil {
		switch renewal.CurrentStatus {
		case deadline.RenewalRecommended:
			items = append(items, Item{
				Area:        AreaGreenCardRenewal,
				Urgency:     UrgencyMedium,
				Description: "Green-card renewal window is open",
				Deadline:    renewal.ExpirationDate,
			})
		case deadline.RenewalUrgent:
			items = append(items, Item{
				Area:        AreaGreenCardRenewal,
				Urgency:     UrgencyHigh,
				Description: "Green card expires in under two months",
				Deadline:    renewal.ExpirationDate,
			})
		case deadline.RenewalExpired:
			items = append(items, Item{
				Area:        AreaGreenCardRenewal,
				Urgency:     UrgencyCritical,
				Description: "Green card has expired; file Form I-90 now",
			})
		}
	}

	if r.SelectiveService.CurrentStatus == deadline.SelectiveMustRegister {
		items = append(items, Item{
			Area:        AreaSelectiveService,
			Urgency:     UrgencyHigh,
			Description: "Selective Service registration is required",
			Deadline:    r.SelectiveService.RegistrationDeadline,
		})
	}

	if r.TaxReminder.CurrentStatus == deadline.TaxDueSoon {
		urgency := UrgencyMedium
		if r.TaxReminder.AbroadExtensionApplies {
			urgency = UrgencyHigh
		}
		items = append(items, Item{
			Area:        AreaTaxFiling,
			Urgency:     urgency,
			Description: "Federal tax filing deadline is near",
			Deadline:    r.TaxReminder.Deadline,
		})
	}

	sortItems(items)
	return items
}

// priorityItems keeps only the time-critical subset: an overdue I-751,
// an urgent or expired renewal, a required Selective Service
// registration, or a tax deadline while abroad.
func priorityItems(active []Item) []Item {
	var priority []Item
	for _, item := range active {
		timeCritical := item.Urgency == UrgencyCritical ||
			item.Area == AreaSelectiveService ||
			(item.Area == AreaGreenCardRenewal && item.Urgency == UrgencyHigh) ||
			(item.Area == AreaTaxFiling && item.Urgency == UrgencyHigh)
		if timeCritical {
			priority = append(priority, item)
		}
	}
	sortItems(priority)
	return priority
}

// sortItems orders by urgency rank, then deadline ascending with
// zero (already-passed) deadlines last, then the fixed area order.
func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if urgencyRank[a.Urgency] != urgencyRank[b.Urgency] {
			return urgencyRank[a.Urgency] < urgencyRank[b.Urgency]
		}
		if !a.Deadline.Equal(b.Deadline) {
			if a.Deadline.IsZero() {
				return false
			}
			if b.Deadline.IsZero() {
				return true
			}
			return a.Deadline.Before(b.Deadline)
		}
		return areaRank[a.Area] < areaRank[b.Area]
	})
}

// upcomingDeadlines lists every future-dated deadline across the four
// areas, sorted purely by date.
func upcomingDeadlines(r Report) []Deadline {
	var all []Deadline

	add := func(area Area, label string, date time.Time) {
		if date.After(r.AsOf) {
			all = append(all, Deadline{Area: area, Label: label, Date: date})
		}
	}

	if roc := r.RemovalOfConditions; roc != nil {
		switch roc.CurrentStatus {
		case deadline.RemovalNotYet:
			add(AreaRemovalOfConditions, "Form I-751 window opens", roc.WindowStart)
			add(AreaRemovalOfConditions, "Form I-751 filing deadline", roc.WindowEnd)
		case deadline.RemovalInWindow:
			add(AreaRemovalOfConditions, "Form I-751 filing deadline", roc.WindowEnd)
		}
	}

	if renewal := r.GreenCardRenewal; renewal != nil && renewal.CurrentStatus != deadline.RenewalExpired {
		add(AreaGreenCardRenewal, "Green-card renewal window opens", renewal.WindowStart)
		add(AreaGreenCardRenewal, "Green card expires", renewal.ExpirationDate)
	}

	if r.SelectiveService.CurrentStatus == deadline.SelectiveNotApplicable ||
		r.SelectiveService.CurrentStatus == deadline.SelectiveMustRegister {
		add(AreaSelectiveService, "Selective Service registration deadline", r.SelectiveService.RegistrationDeadline)
	}

	add(AreaTaxFiling, "Federal tax filing deadline", r.TaxReminder.Deadline)

	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all
}
