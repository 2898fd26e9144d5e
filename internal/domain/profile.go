package domain

import "time"

// Gender is the gender recorded on the immigration profile. Selective
// Service registration applies to males only.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// EligibilityCategory selects the naturalization path, which fixes the
// continuous-residence period and the physical-presence requirement.
type EligibilityCategory string

const (
	// EligibilityThreeYear is the spouse-of-citizen path: 3 years of
	// continuous residence, 548 days of physical presence.
	EligibilityThreeYear EligibilityCategory = "three_year"

	// EligibilityFiveYear is the standard path: 5 years of continuous
	// residence, 913 days of physical presence.
	EligibilityFiveYear EligibilityCategory = "five_year"
)

// Valid reports whether the category is one of the known paths.
func (c EligibilityCategory) Valid() bool {
	return c == EligibilityThreeYear || c == EligibilityFiveYear
}

// Years returns the length of the statutory residence period.
func (c EligibilityCategory) Years() int {
	if c == EligibilityThreeYear {
		return 3
	}
	return 5
}

// ReentryPermit protects LPR status (not continuous residence) for
// absences up to 730 days.
type ReentryPermit struct {
	HasPermit      bool
	ExpirationDate time.Time
}

// ValidOn reports whether the permit exists and has not expired.
func (p ReentryPermit) ValidOn(date time.Time) bool {
	return p.HasPermit && !date.After(p.ExpirationDate)
}

// Profile represents a Lawful Permanent Resident tracked by the system.
type Profile struct {
	ID                         string
	Name                       string
	Email                      string
	GreenCardDate              time.Time // date permanent residence was granted
	GreenCardExpirationDate    time.Time
	IsConditionalResident      bool // 2-year conditional card (CR category)
	BirthDate                  time.Time
	Gender                     Gender
	SelectiveServiceRegistered bool
	TaxReminderDismissed       bool
	EligibilityCategory        EligibilityCategory
	ReentryPermit              ReentryPermit
	CreatedAt                  time.Time
}
