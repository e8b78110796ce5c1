package handlers

import (
	"net/http"
	"strconv"

	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PatentHandler proxies the patent search gateway
type PatentHandler struct {
	service service.PatentServiceInterface
}

// NewPatentHandler creates a new patent handler
func NewPatentHandler(s service.PatentServiceInterface) *PatentHandler {
	return &PatentHandler{service: s}
}

// Search handles GET /patents/search
// @Summary Search patents
// @Description Queries the patent gateway. Results are cached briefly and requests are rate limited.
// @Tags patents
// @Produce json
// @Param q query string true "Search terms"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} patents.SearchResult
// @Failure 400 {object} ValidationErrorResponse "Missing query"
// @Failure 502 {object} ErrorResponse "Patent gateway request failed"
// @Failure 503 {object} ErrorResponse "Patent gateway not configured"
// @Router /patents/search [get]
func (h *PatentHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
