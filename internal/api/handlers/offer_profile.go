package handlers

import (
	"net/http"

	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OfferProfileHandler handles the offer profile nested under a lab
type OfferProfileHandler struct {
	profileService service.OfferProfileServiceInterface
}

// NewOfferProfileHandler creates a new offer profile handler
func NewOfferProfileHandler(profileService service.OfferProfileServiceInterface) *OfferProfileHandler {
	return &OfferProfileHandler{
		profileService: profileService,
	}
}

// GetOfferProfile handles GET /labs/:id/offer-profile
// @Summary Get the offer profile of a lab
// @Tags offer-profiles
// @Produce json
// @Param id path int true "Lab ID"
// @Success 200 {object} schema.LabOfferProfile "Successfully retrieved offer profile"
// @Failure 400 {object} ErrorResponse "Invalid lab ID"
// @Failure 404 {object} ErrorResponse "Lab or offer profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /labs/{id}/offer-profile [get]
func (h *OfferProfileHandler) GetOfferProfile(c *gin.Context) {
	labID, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	profile, err := h.profileService.Get(principal(c), labID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// PutOfferProfile handles PUT /labs/:id/offer-profile
// @Summary Create or replace the offer profile of a lab
// @Description Amounts may be sent as numbers or numeric strings; blank strings clear them.
// @Tags offer-profiles
// @Accept json
// @Produce json
// @Param id path int true "Lab ID"
// @Param profile body schema.LabOfferProfileInput true "Offer profile"
// @Success 200 {object} schema.LabOfferProfile "Successfully saved offer profile"
// @Failure 400 {object} ValidationErrorResponse "Invalid offer profile"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Lab not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs/{id}/offer-profile [put]
func (h *OfferProfileHandler) PutOfferProfile(c *gin.Context) {
	labID, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	var in schema.LabOfferProfileInput
	if !bindJSON(c, &in) {
		return
	}

	profile, err := h.profileService.Upsert(principal(c), labID, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// PatchOfferProfile handles PATCH /labs/:id/offer-profile
// @Summary Update the offer profile of a lab
// @Description The payload is merged into the stored profile and the result is validated as a whole.
// @Tags offer-profiles
// @Accept json
// @Produce json
// @Param id path int true "Lab ID"
// @Param profile body schema.LabOfferProfileUpdate true "Fields to change"
// @Success 200 {object} schema.LabOfferProfile "Successfully updated offer profile"
// @Failure 400 {object} ValidationErrorResponse "Invalid update"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Lab or offer profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs/{id}/offer-profile [patch]
func (h *OfferProfileHandler) PatchOfferProfile(c *gin.Context) {
	labID, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	var update schema.LabOfferProfileUpdate
	if !bindJSON(c, &update) {
		return
	}

	profile, err := h.profileService.Patch(principal(c), labID, &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteOfferProfile handles DELETE /labs/:id/offer-profile
// @Summary Delete the offer profile of a lab
// @Tags offer-profiles
// @Param id path int true "Lab ID"
// @Success 204 "Offer profile deleted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Lab or offer profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs/{id}/offer-profile [delete]
func (h *OfferProfileHandler) DeleteOfferProfile(c *gin.Context) {
	labID, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	if err := h.profileService.Delete(principal(c), labID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
