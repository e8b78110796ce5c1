package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-secret"
	testJWTIssuer = "glass-test"
	testEmail     = "pi@lab.example"
)

// HTTPTestSuite serves the handlers under test. Routes registered on API
// resolve the caller from a bearer token the way /api/v1 does.
type HTTPTestSuite struct {
	Router *gin.Engine
	API    *gin.RouterGroup
	Auth   *auth.AuthService
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest(t *testing.T) *HTTPTestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: testJWTSecret, Issuer: testJWTIssuer})
	require.NoError(t, err)

	router := gin.New()
	return &HTTPTestSuite{
		Router: router,
		API:    router.Group("", auth.NewAuthMiddleware(authService).OptionalAuth()),
		Auth:   authService,
	}
}

// Token signs an access token for userID. admin grants the administrator
// role carried in app_metadata.
func (s *HTTPTestSuite) Token(t *testing.T, userID uuid.UUID, admin bool) string {
	t.Helper()
	token, err := s.Auth.GenerateJWT(userID, testEmail, admin, time.Hour)
	require.NoError(t, err)
	return token
}

// RequestOption adjusts a request before it is served
type RequestOption func(*http.Request)

// WithToken sends token as the bearer credential
func WithToken(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// MakeRequest serves a request and records the response. body is encoded
// as JSON unless it is a json.RawMessage, which is sent as is.
func (s *HTTPTestSuite) MakeRequest(method, target string, body interface{}, opts ...RequestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, encodeBody(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

func encodeBody(body interface{}) io.Reader {
	switch v := body.(type) {
	case nil:
		return nil
	case json.RawMessage:
		return bytes.NewReader(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("testutils: cannot encode request body: %v", err))
		}
		return bytes.NewReader(data)
	}
}

// ErrorBody is the envelope of every error response. Issues is only set
// for validation failures.
type ErrorBody struct {
	Error  string                 `json:"error"`
	Issues []apperrors.FieldIssue `json:"issues"`
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts the status and that the error message
// contains expectedMessage.
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) ErrorBody {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
	return body
}

// AssertValidationIssues asserts a 400 validation failure reporting exactly
// paths, in order.
func AssertValidationIssues(t *testing.T, recorder *httptest.ResponseRecorder, paths ...string) []apperrors.FieldIssue {
	t.Helper()
	body := AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	assert.Equal(t, "validation failed", body.Error)

	got := make([]string, len(body.Issues))
	for i, issue := range body.Issues {
		got[i] = issue.Path
	}
	assert.Equal(t, paths, got)
	return body.Issues
}

// NewTestContext returns a gin context for a request to target, for
// handler helpers that run outside a router. body follows MakeRequest.
func NewTestContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, target, encodeBody(body))
	if body != nil {
		ctx.Request.Header.Set("Content-Type", "application/json")
	}
	return ctx, recorder
}

// SetParam adds a route parameter such as the :id of /labs/:id
func SetParam(ctx *gin.Context, key, value string) {
	ctx.Params = append(ctx.Params, gin.Param{Key: key, Value: value})
}
