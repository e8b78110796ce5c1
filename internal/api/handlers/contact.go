package handlers

import (
	"net/http"

	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler relays messages to labs
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactLab handles POST /labs/:id/contact
// @Summary Contact a lab
// @Description Sends a collaboration, donation or investment request to the lab contact address.
// @Tags labs
// @Accept json
// @Produce json
// @Param id path int true "Lab ID"
// @Param request body service.ContactRequest true "Contact request"
// @Success 202 {object} map[string]string "Request sent"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lab or contact email not found"
// @Failure 502 {object} ErrorResponse "Mail provider failed"
// @Failure 503 {object} ErrorResponse "Mail provider not configured"
// @Router /labs/{id}/contact [post]
func (h *ContactHandler) ContactLab(c *gin.Context) {
	labID, ok := parseID(c, "id", "lab")
	if !ok {
		return
	}

	var req service.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.contactService.Send(c, principal(c), labID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
