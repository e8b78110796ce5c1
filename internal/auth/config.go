package auth

import (
	"fmt"
)

// AdminRole is the app_metadata role that grants administrative writes.
const AdminRole = "admin"

// AuthConfig holds the settings used to verify access tokens issued by the
// auth provider
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string `yaml:"issuer" json:"issuer"`
	Audience  string `yaml:"audience" json:"audience"`
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}
