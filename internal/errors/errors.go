package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this lab"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldIssue is a single schema violation, addressed by a dotted JSON path
// such as "photos[0].url". An empty path refers to the payload as a whole.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Issues  []FieldIssue
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	if len(e.Issues) > 0 {
		parts := make([]string, 0, len(e.Issues))
		for _, issue := range e.Issues {
			if issue.Path == "" {
				parts = append(parts, issue.Message)
				continue
			}
			parts = append(parts, issue.Path+": "+issue.Message)
		}
		return fmt.Sprintf("validation error: %s (%s)", e.Message, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a failed call to an external provider
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

// Entity Not Found Errors
var (
	ErrLabNotFound               = &NotFoundError{Entity: "lab"}
	ErrTeamNotFound              = &NotFoundError{Entity: "team"}
	ErrOfferProfileNotFound      = &NotFoundError{Entity: "lab offer profile"}
	ErrTaxonomyOptionNotFound    = &NotFoundError{Entity: "taxonomy option"}
	ErrErcDisciplineNotFound     = &NotFoundError{Entity: "ERC discipline"}
	ErrLabContactEmailNotDefined = &NotFoundError{Entity: "lab contact email"}
)

// Business Logic Errors
var (
	ErrEmptyUpdate           = &ValidationError{Message: "at least one field must be provided"}
	ErrUnknownValidationKind = errors.New("unknown validation kind")
)

// Authentication and Authorization Errors
var (
	ErrMissingCredentials   = &AuthenticationError{Message: "authentication required"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid or expired token"}
	ErrNotOwner             = &AuthorizationError{Message: "only the owner can modify this record"}
	ErrRestrictedFieldWrite = &AuthorizationError{Message: "only administrators can change verification fields"}
)

// Configuration Errors
var (
	ErrAuthNotConfigured          = &ConfigurationError{Message: "AUTH_JWT_SECRET is not set"}
	ErrPatentGatewayNotConfigured = &ConfigurationError{Message: "patent gateway is not configured"}
	ErrMailerNotConfigured        = &ConfigurationError{Message: "mail provider is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IssuesOf returns the structured issues carried by a ValidationError, if any.
func IssuesOf(err error) []FieldIssue {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Issues
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIssuesError creates a ValidationError carrying structured issues
func NewIssuesError(message string, issues []FieldIssue) error {
	return &ValidationError{Message: message, Issues: issues}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(provider string, statusCode int, message string) error {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Message: message}
}
