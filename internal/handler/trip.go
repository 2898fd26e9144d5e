package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/presence"
	"lprtrack/internal/service"
)

// TripHandler handles HTTP requests for a profile's travel history.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest is the HTTP request body for recording a trip.
type CreateTripRequest struct {
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Location      string `json:"location"`
	IsSimulated   bool   `json:"is_simulated"`
}

// TripResponse is the HTTP response for trip data.
type TripResponse struct {
	ID            string `json:"id"`
	ProfileID     string `json:"profile_id"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Location      string `json:"location,omitempty"`
	IsSimulated   bool   `json:"is_simulated"`
	DaysAbroad    int    `json:"days_abroad"`
}

// Create handles POST /v1/profiles/:id/trips
func (h *TripHandler) Create(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), service.CreateTripRequest{
		ProfileID:     c.Param("id"),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Location:      req.Location,
		IsSimulated:   req.IsSimulated,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// List handles GET /v1/profiles/:id/trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.tripService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/profiles/:id/trips/:trip_id
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.tripService.Get(c.Request.Context(), c.Param("id"), c.Param("trip_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// Delete handles DELETE /v1/profiles/:id/trips/:trip_id
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.tripService.Delete(c.Request.Context(), c.Param("id"), c.Param("trip_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:            trip.ID,
		ProfileID:     trip.ProfileID,
		DepartureDate: dates.Format(trip.DepartureDate),
		ReturnDate:    dates.Format(trip.ReturnDate),
		Location:      trip.Location,
		IsSimulated:   trip.IsSimulated,
		DaysAbroad:    presence.CountDaysAbroad(*trip, presence.DefaultDayRule),
	}
}
