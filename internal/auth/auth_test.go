package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "https://auth.glass-connect.example/auth/v1",
		Audience:  "authenticated",
	})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret"}
		assert.NoError(t, config.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{Issuer: "issuer"}
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")

		_, err = NewAuthService(config)
		assert.Error(t, err)
	})
}

func TestValidateJWT(t *testing.T) {
	service := newTestService(t)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(userID, "pi@lab.example", false, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, "pi@lab.example", claims.Email)

		principal, err := service.Principal(claims)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.False(t, principal.IsAdmin())
	})

	t.Run("admin role", func(t *testing.T) {
		token, err := service.GenerateJWT(userID, "ops@glass.example", true, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		principal, err := service.Principal(claims)
		require.NoError(t, err)
		assert.True(t, principal.IsAdmin())
	})

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateJWT(userID, "pi@lab.example", false, -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other"})
		require.NoError(t, err)
		token, err := other.GenerateJWT(userID, "pi@lab.example", false, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{
			JWTSecret: "test-signing-key",
			Issuer:    "https://auth.glass-connect.example/auth/v1",
			Audience:  "service",
		})
		require.NoError(t, err)
		token, err := other.GenerateJWT(userID, "pi@lab.example", false, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		_, err := service.Principal(&AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "12345"}})
		assert.Error(t, err)
	})
}

func TestPrincipal(t *testing.T) {
	owner := uuid.New()
	p := &Principal{UserID: owner}

	assert.True(t, p.Owns(&owner))
	other := uuid.New()
	assert.False(t, p.Owns(&other))
	assert.False(t, p.Owns(nil))

	var anonymous *Principal
	assert.False(t, anonymous.Owns(&owner))
	assert.False(t, anonymous.IsAdmin())
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)
	userID := uuid.New()
	token, err := service.GenerateJWT(userID, "pi@lab.example", false, time.Hour)
	require.NoError(t, err)

	router := gin.New()
	whoami := func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": p.UserID.String(), "email": p.Email})
	}
	router.GET("/required", middleware.RequireAuth(), whoami)
	router.GET("/optional", middleware.OptionalAuth(), whoami)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		user   string
	}{
		{name: "required with token", path: "/required", header: "Bearer " + token, status: http.StatusOK, user: userID.String()},
		{name: "required without header", path: "/required", status: http.StatusUnauthorized},
		{name: "required with bad format", path: "/required", header: token, status: http.StatusUnauthorized},
		{name: "required with bad token", path: "/required", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "optional anonymous", path: "/optional", status: http.StatusOK, user: ""},
		{name: "optional bad token", path: "/optional", header: "Bearer nope", status: http.StatusOK, user: ""},
		{name: "optional with token", path: "/optional", header: "Bearer " + token, status: http.StatusOK, user: userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.user, body["user"])
		})
	}
}
