package service

import "errors"

var (
	// ErrInvalidProfileID is returned when profile ID is empty.
	ErrInvalidProfileID = errors.New("invalid profile id")

	// ErrInvalidTripID is returned when trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidName is returned when a profile name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidEmail is returned when a profile email is empty.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidDateFormat is returned when a date is not a valid
	// YYYY-MM-DD calendar date.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when a trip's return date precedes
	// its departure date.
	ErrInvalidDateRange = errors.New("return date precedes departure date")

	// ErrInvalidEligibilityCategory is returned when the eligibility
	// category is neither three_year nor five_year.
	ErrInvalidEligibilityCategory = errors.New("invalid eligibility category")

	// ErrInvalidGender is returned when the gender value is unknown.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrPermitExpirationRequired is returned when a reentry permit is
	// declared without an expiration date.
	ErrPermitExpirationRequired = errors.New("reentry permit requires an expiration date")

	// ErrInvalidRemovalStatus is returned when a removal-of-conditions
	// override is neither filed nor approved.
	ErrInvalidRemovalStatus = errors.New("invalid removal of conditions status")

	// ErrTripProfileMismatch is returned when a trip does not belong to
	// the profile in the request.
	ErrTripProfileMismatch = errors.New("trip does not belong to profile")

	// ErrEmailInUse is returned when registering or updating a profile
	// with an email already taken.
	ErrEmailInUse = errors.New("email already in use")
)
