package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LabHandler handles HTTP requests for lab operations
type LabHandler struct {
	labService service.LabServiceInterface
}

// NewLabHandler creates a new lab handler
func NewLabHandler(labService service.LabServiceInterface) *LabHandler {
	return &LabHandler{
		labService: labService,
	}
}

// ListLabs handles GET /labs
// @Summary List labs
// @Description List visible labs with optional name search and filters. mine=true lists the caller's own labs, hidden ones included.
// @Tags labs
// @Produce json
// @Param q query string false "Case-insensitive name search"
// @Param status query string false "Lab status" Enums(listed, confirmed, verified_passive, verified_active, premier)
// @Param erc query string false "ERC discipline code, e.g. LS1"
// @Param mine query bool false "Only the caller's labs"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LabListResponse "Successfully retrieved labs"
// @Failure 400 {object} ValidationErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "mine=true without a token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /labs [get]
func (h *LabHandler) ListLabs(c *gin.Context) {
	page, pageSize := parsePagination(c)
	params := service.LabListParams{
		Query:    strings.TrimSpace(c.Query("q")),
		Status:   c.Query("status"),
		ErcCode:  strings.ToUpper(strings.TrimSpace(c.Query("erc"))),
		Page:     page,
		PageSize: pageSize,
	}
	if params.Status != "" && !schema.LabStatus(params.Status).IsValid() {
		respondError(c, apperrors.NewValidationError("status", "unknown lab status"))
		return
	}
	if params.ErcCode != "" && !schema.IsErcCode(params.ErcCode) {
		respondError(c, apperrors.NewValidationError("erc", "invalid ERC discipline code"))
		return
	}
	params.Mine, _ = strconv.ParseBool(c.DefaultQuery("mine", "false"))

	resp, err := h.labService.List(principal(c), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateLab handles POST /labs
// @Summary Create a lab
// @Description Create a lab owned by the caller. Verification fields can only be set by administrators.
// @Tags labs
// @Accept json
// @Produce json
// @Param lab body schema.LabInput true "Lab data"
// @Success 201 {object} schema.Lab "Successfully created lab"
// @Failure 400 {object} ValidationErrorResponse "Invalid lab"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Restricted field"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs [post]
func (h *LabHandler) CreateLab(c *gin.Context) {
	var in schema.LabInput
	if !bindJSON(c, &in) {
		return
	}

	lab, err := h.labService.Create(principal(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lab)
}

// GetLab handles GET /labs/:id
// @Summary Get lab by ID
// @Tags labs
// @Produce json
// @Param id path int true "Lab ID"
// @Success 200 {object} schema.Lab "Successfully retrieved lab"
// @Failure 400 {object} ErrorResponse "Invalid lab ID"
// @Failure 404 {object} ErrorResponse "Lab not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /labs/{id} [get]
func (h *LabHandler) GetLab(c *gin.Context) {
	id, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	lab, err := h.labService.GetByID(principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lab)
}

// UpdateLab handles PATCH /labs/:id
// @Summary Update a lab
// @Description Apply a partial update. The merged lab is validated as a whole; explicit null clears a field.
// @Tags labs
// @Accept json
// @Produce json
// @Param id path int true "Lab ID"
// @Param lab body schema.LabUpdate true "Fields to change"
// @Success 200 {object} schema.Lab "Successfully updated lab"
// @Failure 400 {object} ValidationErrorResponse "Invalid update"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Lab not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs/{id} [patch]
func (h *LabHandler) UpdateLab(c *gin.Context) {
	id, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	var update schema.LabUpdate
	if !bindJSON(c, &update) {
		return
	}

	lab, err := h.labService.Update(principal(c), id, &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lab)
}

// DeleteLab handles DELETE /labs/:id
// @Summary Delete a lab
// @Tags labs
// @Param id path int true "Lab ID"
// @Success 204 "Lab deleted"
// @Failure 400 {object} ErrorResponse "Invalid lab ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Lab not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /labs/{id} [delete]
func (h *LabHandler) DeleteLab(c *gin.Context) {
	id, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	if err := h.labService.Delete(principal(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
