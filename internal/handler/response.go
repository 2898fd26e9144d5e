package handler

import (
	"errors"
	"net/http"

	"time"

	"github.com/gin-gonic/gin"

	"lprtrack/internal/dates"
	"lprtrack/internal/repository"
	"lprtrack/internal/service"
)

// formatOptional renders a date as YYYY-MM-DD, or empty for the zero
// value so omitempty drops it.
func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return dates.Format(t)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors. A trip under someone else's profile reads as
	// not found rather than leaking its existence.
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrTripProfileMismatch):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidProfileID),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidDateFormat),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidEligibilityCategory),
		errors.Is(err, service.ErrInvalidGender),
		errors.Is(err, service.ErrPermitExpirationRequired),
		errors.Is(err, service.ErrInvalidRemovalStatus):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
