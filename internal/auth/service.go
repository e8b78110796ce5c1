package auth

import (
	"fmt"
	"time"

	apperrors "glass-connect-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AppMetadata is the provider-managed part of the token, not editable by users
type AppMetadata struct {
	Role     string `json:"role,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// AuthClaims represents the claims of an auth provider access token
type AuthClaims struct {
	Email                string      `json:"email" example:"pi@lab.example"`
	Role                 string      `json:"role" example:"authenticated"`
	AppMetadata          AppMetadata `json:"app_metadata"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID uuid.UUID
	Email  string
	Admin  bool
}

// IsAdmin reports whether the principal may bypass ownership checks. A nil
// principal is never an administrator.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Admin
}

// Owns reports whether the principal is the given owner
func (p *Principal) Owns(owner *uuid.UUID) bool {
	return p != nil && owner != nil && *owner == p.UserID
}

// AuthService verifies access tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT signs an access token for the given user. The auth provider
// issues tokens in production; this is used by local tooling and tests.
func (s *AuthService) GenerateJWT(userID uuid.UUID, email string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}
	if s.config.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.config.Audience}
	}
	if admin {
		claims.AppMetadata.Role = AdminRole
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	if s.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.config.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Principal converts verified claims into the request principal
func (s *AuthService) Principal(claims *AuthClaims) (*Principal, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user id: %w", err)
	}
	return &Principal{
		UserID: userID,
		Email:  claims.Email,
		Admin:  claims.AppMetadata.Role == AdminRole,
	}, nil
}
