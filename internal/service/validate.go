package service

import (
	"time"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
)

// profileFields holds the parsed date fields of a profile request.
type profileFields struct {
	greenCardDate    time.Time
	expirationDate   time.Time
	birthDate        time.Time
	permitExpiration time.Time
}

func validateProfileFields(req CreateProfileRequest) (profileFields, error) {
	var fields profileFields

	if req.Name == "" {
		return fields, ErrInvalidName
	}
	if req.Email == "" {
		return fields, ErrInvalidEmail
	}

	gender := domain.Gender(req.Gender)
	if gender != domain.GenderMale && gender != domain.GenderFemale && gender != domain.GenderOther {
		return fields, ErrInvalidGender
	}

	if !domain.EligibilityCategory(req.EligibilityCategory).Valid() {
		return fields, ErrInvalidEligibilityCategory
	}

	var err error
	if fields.greenCardDate, err = dates.Parse(req.GreenCardDate); err != nil {
		return fields, ErrInvalidDateFormat
	}
	if fields.expirationDate, err = parseOptionalDate(req.GreenCardExpirationDate); err != nil {
		return fields, ErrInvalidDateFormat
	}
	if fields.birthDate, err = parseOptionalDate(req.BirthDate); err != nil {
		return fields, ErrInvalidDateFormat
	}

	if req.HasReentryPermit {
		if req.ReentryPermitExpiration == "" {
			return fields, ErrPermitExpirationRequired
		}
		if fields.permitExpiration, err = dates.Parse(req.ReentryPermitExpiration); err != nil {
			return fields, ErrInvalidDateFormat
		}
	}

	return fields, nil
}

func parseOptionalDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return dates.Parse(value)
}
