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

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List visible teams, optionally only those attached to one lab
// @Tags teams
// @Produce json
// @Param q query string false "Case-insensitive name search"
// @Param lab_id query int false "Lab ID"
// @Param mine query bool false "Only the caller's teams"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ValidationErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, pageSize := parsePagination(c)
	params := service.TeamListParams{
		Query:    strings.TrimSpace(c.Query("q")),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("lab_id"); raw != "" {
		labID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || labID <= 0 {
			respondError(c, apperrors.NewValidationError("lab_id", "must be a positive integer"))
			return
		}
		params.LabID = labID
	}
	params.Mine, _ = strconv.ParseBool(c.DefaultQuery("mine", "false"))

	resp, err := h.teamService.List(principal(c), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body schema.TeamInput true "Team data"
// @Success 201 {object} schema.Team "Successfully created team"
// @Failure 400 {object} ValidationErrorResponse "Invalid team or unknown lab"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var in schema.TeamInput
	if !bindJSON(c, &in) {
		return
	}

	team, err := h.teamService.Create(principal(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} schema.Team "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body schema.TeamUpdate true "Fields to change"
// @Success 200 {object} schema.Team "Successfully updated team"
// @Failure 400 {object} ValidationErrorResponse "Invalid update"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	var update schema.TeamUpdate
	if !bindJSON(c, &update) {
		return
	}

	team, err := h.teamService.Update(principal(c), id, &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Param id path int true "Team ID"
// @Success 204 "Team deleted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(principal(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
