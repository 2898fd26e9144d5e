package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lprtrack/internal/dates"
	"lprtrack/internal/domain"
	"lprtrack/internal/service"
)

// ProfileHandler handles HTTP requests for LPR profiles.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest is the HTTP request body for profile registration.
type CreateProfileRequest struct {
	Name                       string `json:"name"`
	Email                      string `json:"email"`
	GreenCardDate              string `json:"green_card_date"`
	GreenCardExpirationDate    string `json:"green_card_expiration_date"`
	IsConditionalResident      bool   `json:"is_conditional_resident"`
	BirthDate                  string `json:"birth_date"`
	Gender                     string `json:"gender"`
	SelectiveServiceRegistered bool   `json:"selective_service_registered"`
	EligibilityCategory        string `json:"eligibility_category"`
	HasReentryPermit           bool   `json:"has_reentry_permit"`
	ReentryPermitExpiration    string `json:"reentry_permit_expiration"`
}

// UpdateProfileRequest is the HTTP request body for profile updates.
type UpdateProfileRequest struct {
	CreateProfileRequest
	TaxReminderDismissed bool `json:"tax_reminder_dismissed"`
}

// ProfileResponse is the HTTP response for profile data.
type ProfileResponse struct {
	ID                         string `json:"id"`
	Name                       string `json:"name"`
	Email                      string `json:"email"`
	GreenCardDate              string `json:"green_card_date"`
	GreenCardExpirationDate    string `json:"green_card_expiration_date,omitempty"`
	IsConditionalResident      bool   `json:"is_conditional_resident"`
	BirthDate                  string `json:"birth_date,omitempty"`
	Gender                     string `json:"gender"`
	SelectiveServiceRegistered bool   `json:"selective_service_registered"`
	TaxReminderDismissed       bool   `json:"tax_reminder_dismissed"`
	EligibilityCategory        string `json:"eligibility_category"`
	HasReentryPermit           bool   `json:"has_reentry_permit"`
	ReentryPermitExpiration    string `json:"reentry_permit_expiration,omitempty"`
}

// Create handles POST /v1/profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), service.CreateProfileRequest{
		Name:                       req.Name,
		Email:                      req.Email,
		GreenCardDate:              req.GreenCardDate,
		GreenCardExpirationDate:    req.GreenCardExpirationDate,
		IsConditionalResident:      req.IsConditionalResident,
		BirthDate:                  req.BirthDate,
		Gender:                     req.Gender,
		SelectiveServiceRegistered: req.SelectiveServiceRegistered,
		EligibilityCategory:        req.EligibilityCategory,
		HasReentryPermit:           req.HasReentryPermit,
		ReentryPermitExpiration:    req.ReentryPermitExpiration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toProfileResponse(profile))
}

// Get handles GET /v1/profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toProfileResponse(profile))
}

// Update handles PUT /v1/profiles/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), service.UpdateProfileRequest{
		ID:                         c.Param("id"),
		Name:                       req.Name,
		Email:                      req.Email,
		GreenCardDate:              req.GreenCardDate,
		GreenCardExpirationDate:    req.GreenCardExpirationDate,
		IsConditionalResident:      req.IsConditionalResident,
		BirthDate:                  req.BirthDate,
		Gender:                     req.Gender,
		SelectiveServiceRegistered: req.SelectiveServiceRegistered,
		TaxReminderDismissed:       req.TaxReminderDismissed,
		EligibilityCategory:        req.EligibilityCategory,
		HasReentryPermit:           req.HasReentryPermit,
		ReentryPermitExpiration:    req.ReentryPermitExpiration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /v1/profiles/:id
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                         profile.ID,
		Name:                       profile.Name,
		Email:                      profile.Email,
		GreenCardDate:              dates.Format(profile.GreenCardDate),
		GreenCardExpirationDate:    formatOptional(profile.GreenCardExpirationDate),
		IsConditionalResident:      profile.IsConditionalResident,
		BirthDate:                  formatOptional(profile.BirthDate),
		Gender:                     string(profile.Gender),
		SelectiveServiceRegistered: profile.SelectiveServiceRegistered,
		TaxReminderDismissed:       profile.TaxReminderDismissed,
		EligibilityCategory:        string(profile.EligibilityCategory),
		HasReentryPermit:           profile.ReentryPermit.HasPermit,
		ReentryPermitExpiration:    formatOptional(profile.ReentryPermit.ExpirationDate),
	}
}
