package deadline

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// SelectiveServiceStatus is the state of the registration obligation.
type SelectiveServiceStatus string

const (
	SelectiveNotApplicable SelectiveServiceStatus = "not_applicable"
	SelectiveMustRegister  SelectiveServiceStatus = "must_register"
	SelectiveRegistered    SelectiveServiceStatus = "registered"
	SelectiveAgedOut       SelectiveServiceStatus = "aged_out"
)

// Registration applies to males aged 18 through 25; at 26 the obligation
// lapses.
const (
	selectiveServiceMinAge = 18
	selectiveServiceMaxAge = 26
)

// SelectiveService describes the registration obligation.
type SelectiveService struct {
	CurrentStatus        SelectiveServiceStatus
	RegistrationDeadline time.Time // the 18th birthday
	Age                  int
}

// SelectiveServiceFor computes the registration state as of a date.
func SelectiveServiceFor(profile domain.Profile, asOf time.Time) SelectiveService {
	age := ageOn(profile.BirthDate, asOf)
	ss := SelectiveService{Age: age}
	if profile.Gender == domain.GenderMale {
		ss.RegistrationDeadline = dates.AddYears(profile.BirthDate, selectiveServiceMinAge)
	}

	switch {
	case profile.Gender != domain.GenderMale || age < selectiveServiceMinAge:
		ss.CurrentStatus = SelectiveNotApplicable
	case profile.SelectiveServiceRegistered:
		ss.CurrentStatus = SelectiveRegistered
	case age >= selectiveServiceMaxAge:
		ss.CurrentStatus = SelectiveAgedOut
	default:
		ss.CurrentStatus = SelectiveMustRegister
	}

	return ss
}

// ageOn returns full calendar years lived as of a date, leap-day
// birthdays anniversarying on Feb 28 in non-leap years.
func ageOn(birthDate, asOf time.Time) int {
	years := asOf.Year() - birthDate.Year()
	if years < 0 {
		return 0
	}
	if dates.AddYears(birthDate, years).After(asOf) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
