package handlers

import (
	"io"
	"net/http"
	"strconv"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

const maxValidateBody = 1 << 20

// ValidateHandler checks payloads without storing them
type ValidateHandler struct{}

// NewValidateHandler creates a new validate handler
func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

// ValidateResponse is the outcome of a dry-run validation
type ValidateResponse struct {
	Kind   schema.Kind            `json:"kind" example:"lab-offer-profile"`
	Valid  bool                   `json:"valid"`
	Issues []apperrors.FieldIssue `json:"issues"`
}

// Validate handles POST /validate/:kind
// @Summary Validate a payload
// @Description Runs the same normalization and rules as the write endpoints and returns every issue. partial=true checks the update shape.
// @Tags validate
// @Accept json
// @Produce json
// @Param kind path string true "Payload kind" Enums(lab, team, lab-offer-profile, lab-offer-taxonomy-option, erc-discipline)
// @Param partial query bool false "Check the partial update shape"
// @Param payload body object true "Payload to check"
// @Success 200 {object} ValidateResponse "Validation outcome"
// @Failure 400 {object} ErrorResponse "Malformed JSON, bad partial flag or no partial shape for kind"
// @Failure 404 {object} ErrorResponse "Unknown kind"
// @Router /validate/{kind} [post]
func (h *ValidateHandler) Validate(c *gin.Context) {
	kind := schema.Kind(c.Param("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperrors.ErrUnknownValidationKind.Error() + ": " + string(kind)})
		return
	}
	partial, err := strconv.ParseBool(c.DefaultQuery("partial", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "partial must be true or false"})
		return
	}
	if partial && !kind.SupportsPartial() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "kind " + string(kind) + " has no partial shape"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxValidateBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	issues, err := schema.CheckJSON(kind, partial, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if issues == nil {
		issues = schema.Issues{}
	}

	c.JSON(http.StatusOK, ValidateResponse{Kind: kind, Valid: len(issues) == 0, Issues: issues})
}
