package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for every calendar date in the system.
const Layout = "2006-01-02"

// ErrInvalidDate is returned when a string is not a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// The one fixed holiday the deadline calculators care about: April 16
// (Emancipation Day), which shifts the federal tax filing deadline.
const (
	holidayMonth = time.April
	holidayDay   = 16
)

// New returns the UTC-midnight instant for a calendar date.
func New(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Parse converts a strict YYYY-MM-DD string into a UTC-midnight instant.
// Strings that do not match the pattern, or that name a day the month
// does not have in that year, are rejected.
func Parse(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// time.Parse is lenient about digit widths; round-tripping catches
	// anything that slipped through.
	if t.Format(Layout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MustParse is Parse for hard-coded dates; it panics on bad input.
func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Format renders a date back to YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Midnight truncates an instant to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays moves a date forward (or back) by whole calendar days. Dates
// are UTC-anchored, so there is no daylight-saving drift.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaysBetween returns the number of whole days from a to b. Negative if
// b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// IsLeapYear reports whether the year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of a month in a given year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths shifts a date by whole months, clamping the day-of-month to
// the target month's length instead of rolling over. Aug 29 minus six
// months lands on Feb 29 in a leap year and Feb 28 otherwise.
func AddMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	remainder := total % 12
	if remainder < 0 {
		remainder += 12
		year--
	}
	month := time.Month(remainder + 1)

	day := t.Day()
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return New(year, month, day)
}

// AddYears returns the Nth anniversary of a date. A Feb 29 anniversary
// falls on Feb 28 in non-leap target years, never March 1.
func AddYears(t time.Time, years int) time.Time {
	return AddMonths(t, years*12)
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func skipWeekend(t time.Time) time.Time {
	for IsWeekend(t) {
		t = AddDays(t, 1)
	}
	return t
}

// ShiftPastWeekendAndHoliday moves a deadline forward off Saturday,
// Sunday, and the observed April 16 holiday. When the holiday falls
// inside the weekend being skipped, or on the Saturday right after a
// Friday deadline, its observed day is consumed as well, so the shift
// can run as far as the following Tuesday.
func ShiftPastWeekendAndHoliday(d time.Time) time.Time {
	holiday := New(d.Year(), holidayMonth, holidayDay)
	moved := skipWeekend(d)
	switch {
	case moved.Equal(holiday):
		moved = skipWeekend(AddDays(moved, 1))
	case IsWeekend(holiday) && !holiday.Before(d) && holiday.Before(moved):
		// The holiday was swallowed by the skipped weekend.
		moved = skipWeekend(AddDays(moved, 1))
	case IsWeekend(holiday) && holiday.Equal(AddDays(d, 1)):
		// Friday deadline with the holiday on the following Saturday:
		// the whole weekend plus the observed day is lost.
		moved = AddDays(skipWeekend(AddDays(holiday, 1)), 1)
	}
	return moved
}
