package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "development defaults",
			config: Config{Environment: "development", JWTSecret: defaultJWTSecret, DatabaseName: "glass_connect"},
		},
		{
			name:    "production needs a secret",
			config:  Config{Environment: "production", JWTSecret: defaultJWTSecret, DatabaseName: "glass_connect"},
			wantErr: "AUTH_JWT_SECRET",
		},
		{
			name:    "database name required",
			config:  Config{Environment: "development"},
			wantErr: "database name is required",
		},
		{
			name:    "patent gateway needs token url",
			config:  Config{DatabaseName: "glass_connect", PatentsBaseURL: "https://patents.example"},
			wantErr: "PATENTS_TOKEN_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBuildDatabaseURL(t *testing.T) {
	c := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "glass",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/glass?sslmode=disable", buildDatabaseURL(c))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_NAME", "from_env")
	t.Setenv("PORT", "9000")
	t.Setenv("MAIL_API_URL", "https://mail.example")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Contains(t, cfg.DatabaseURL, "/from_env?")
	assert.True(t, cfg.MailEnabled())
	assert.False(t, cfg.PatentsEnabled())
}
