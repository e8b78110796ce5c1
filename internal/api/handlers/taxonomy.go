package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves the reference vocabularies
type TaxonomyHandler struct {
	taxonomyService service.TaxonomyServiceInterface
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(taxonomyService service.TaxonomyServiceInterface) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyService: taxonomyService,
	}
}

// ListOfferOptions handles GET /taxonomy/lab-offer
// @Summary List lab offer taxonomy options
// @Description Active options ordered by group, sort order and code. Administrators may pass include_inactive=true.
// @Tags taxonomy
// @Produce json
// @Param group query string false "Option group" Enums(rentable_lab_level, offer_format, application_mode, pricing_model, technical_service, general_service)
// @Param include_inactive query bool false "Include inactive options (administrators only)"
// @Success 200 {array} schema.LabOfferTaxonomyOption "Successfully retrieved options"
// @Failure 400 {object} ValidationErrorResponse "Unknown group"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /taxonomy/lab-offer [get]
func (h *TaxonomyHandler) ListOfferOptions(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))
	if !principal(c).IsAdmin() {
		includeInactive = false
	}

	options, err := h.taxonomyService.ListOfferOptions(strings.TrimSpace(c.Query("group")), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// GetOfferOption handles GET /taxonomy/lab-offer/:group/:code
// @Summary Get one lab offer taxonomy option
// @Tags taxonomy
// @Produce json
// @Param group path string true "Option group"
// @Param code path string true "Option code"
// @Success 200 {object} schema.LabOfferTaxonomyOption "Successfully retrieved option"
// @Failure 404 {object} ErrorResponse "Option not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /taxonomy/lab-offer/{group}/{code} [get]
func (h *TaxonomyHandler) GetOfferOption(c *gin.Context) {
	option, err := h.taxonomyService.GetOfferOption(c.Param("group"), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, option)
}

// ListErcDisciplines handles GET /taxonomy/erc-disciplines
// @Summary List ERC disciplines
// @Tags taxonomy
// @Produce json
// @Param domain query string false "ERC domain" Enums(PE, LS, SH)
// @Success 200 {array} schema.ErcDisciplineOption "Successfully retrieved disciplines"
// @Failure 400 {object} ValidationErrorResponse "Unknown domain"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /taxonomy/erc-disciplines [get]
func (h *TaxonomyHandler) ListErcDisciplines(c *gin.Context) {
	disciplines, err := h.taxonomyService.ListErcDisciplines(strings.ToUpper(strings.TrimSpace(c.Query("domain"))))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, disciplines)
}

// GetErcDiscipline handles GET /taxonomy/erc-disciplines/:code
// @Summary Get one ERC discipline
// @Tags taxonomy
// @Produce json
// @Param code path string true "ERC discipline code, e.g. LS1"
// @Success 200 {object} schema.ErcDisciplineOption "Successfully retrieved discipline"
// @Failure 404 {object} ErrorResponse "Discipline not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /taxonomy/erc-disciplines/{code} [get]
func (h *TaxonomyHandler) GetErcDiscipline(c *gin.Context) {
	discipline, err := h.taxonomyService.GetErcDiscipline(strings.ToUpper(c.Param("code")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, discipline)
}
