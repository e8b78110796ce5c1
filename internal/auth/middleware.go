package auth

import (
	"net/http"
	"strings"

	"glass-connect-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth_principal"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := m.authenticate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// No auth header, continue without setting user context
			c.Next()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		principal, err := m.authenticate(tokenString)
		if err != nil {
			// Invalid token, continue as an anonymous caller
			c.Next()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(tokenString string) (*Principal, error) {
	claims, err := m.service.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}
	return m.service.Principal(claims)
}

func setPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
	c.Set(logger.UserIDKey, p.UserID.String())
	c.Set(logger.EmailKey, p.Email)
}

// GetPrincipal is a helper function to extract the caller from context
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}

	principal, ok := value.(*Principal)
	return principal, ok
}
