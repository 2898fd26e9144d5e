package deadline

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// RemovalStatus is the state of the Form I-751 filing obligation.
type RemovalStatus string

const (
	RemovalNotYet   RemovalStatus = "not_yet"
	RemovalInWindow RemovalStatus = "in_window"
	RemovalOverdue  RemovalStatus = "overdue"
	RemovalFiled    RemovalStatus = "filed"
	RemovalApproved RemovalStatus = "approved"
)

// RemovalWindowDays is how far before the second anniversary the I-751
// filing window opens.
const RemovalWindowDays = 90

// RemovalOfConditions describes the I-751 obligation for a conditional
// resident.
type RemovalOfConditions struct {
	CurrentStatus     RemovalStatus
	WindowStart       time.Time
	WindowEnd         time.Time
	DaysUntilWindow   int // days until window opens; 0 once open
	DaysUntilDeadline int // days until window closes; 0 once past
}

// RemovalOfConditionsFor computes the I-751 filing state. It returns nil
// for non-conditional residents, for whom the form does not exist. The
// override carries a caller-recorded filed or approved state, which is
// terminal regardless of the window.
func RemovalOfConditionsFor(profile domain.Profile, override RemovalStatus, asOf time.Time) *RemovalOfConditions {
	if !profile.IsConditionalResident {
		return nil
	}

	windowEnd := dates.AddYears(profile.GreenCardDate, 2)
	windowStart := dates.AddDays(windowEnd, -RemovalWindowDays)

	roc := &RemovalOfConditions{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}

	switch override {
	case RemovalFiled, RemovalApproved:
		roc.CurrentStatus = override
		return roc
	}

	switch {
	case asOf.Before(windowStart):
		roc.CurrentStatus = RemovalNotYet
		roc.DaysUntilWindow = dates.DaysBetween(asOf, windowStart)
		roc.DaysUntilDeadline = dates.DaysBetween(asOf, windowEnd)
	case !asOf.After(windowEnd):
		roc.CurrentStatus = RemovalInWindow
		roc.DaysUntilDeadline = dates.DaysBetween(asOf, windowEnd)
	default:
		roc.CurrentStatus = RemovalOverdue
	}

	return roc
}
