package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ValidationErrorResponse lists every schema violation of a request
type ValidationErrorResponse struct {
	Error  string                 `json:"error" example:"validation failed"`
	Issues []apperrors.FieldIssue `json:"issues"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Issues: issuesOf(err)})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	case apperrors.IsUpstream(err):
		logger.WithContext(c).WithError(err).Warn("Upstream request failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// issuesOf always returns at least one issue for a validation error
func issuesOf(err error) []apperrors.FieldIssue {
	if issues := apperrors.IssuesOf(err); len(issues) > 0 {
		return issues
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return []apperrors.FieldIssue{{Path: validationErr.Field, Message: validationErr.Message}}
	}
	return []apperrors.FieldIssue{{Message: err.Error()}}
}

// bindJSON decodes the request body into dst. Members that cannot be
// coerced are reported as validation issues.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if issues, ok := schema.DecodeIssues(err); ok {
			respondError(c, issues.Err())
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}

// parsePagination reads page and page_size. Out of range values are
// clamped by the services.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}

// principal returns the authenticated caller, or nil for anonymous requests
func principal(c *gin.Context) *auth.Principal {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		return nil
	}
	return p
}
