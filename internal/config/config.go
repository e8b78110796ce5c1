package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL            string        `mapstructure:"DATABASE_URL"`
	DatabaseHost           string        `mapstructure:"DB_HOST"`
	DatabasePort           string        `mapstructure:"DB_PORT"`
	DatabaseUser           string        `mapstructure:"DB_USER"`
	DatabasePassword       string        `mapstructure:"DB_PASSWORD"`
	DatabaseName           string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode        string        `mapstructure:"DB_SSL_MODE"`
	DatabaseConnectTimeout time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`

	// Auth provider token verification
	JWTSecret   string `mapstructure:"AUTH_JWT_SECRET"`
	JWTIssuer   string `mapstructure:"AUTH_JWT_ISSUER"`
	JWTAudience string `mapstructure:"AUTH_JWT_AUDIENCE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Patent gateway configuration
	PatentsBaseURL      string  `mapstructure:"PATENTS_BASE_URL"`
	PatentsTokenURL     string  `mapstructure:"PATENTS_TOKEN_URL"`
	PatentsClientID     string  `mapstructure:"PATENTS_CLIENT_ID"`
	PatentsClientSecret string  `mapstructure:"PATENTS_CLIENT_SECRET"`
	PatentsRatePerSec   float64 `mapstructure:"PATENTS_RATE_PER_SEC"`
	PatentsCacheSize    int     `mapstructure:"PATENTS_CACHE_SIZE"`

	// Email provider configuration
	MailAPIURL string `mapstructure:"MAIL_API_URL"`
	MailAPIKey string `mapstructure:"MAIL_API_KEY"`
	MailFrom   string `mapstructure:"MAIL_FROM"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "glass_connect")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "30s")

	// Auth defaults
	viper.SetDefault("AUTH_JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("AUTH_JWT_ISSUER", "")
	viper.SetDefault("AUTH_JWT_AUDIENCE", "authenticated")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Patent gateway defaults; an empty base URL disables the search proxy
	viper.SetDefault("PATENTS_BASE_URL", "")
	viper.SetDefault("PATENTS_TOKEN_URL", "")
	viper.SetDefault("PATENTS_CLIENT_ID", "")
	viper.SetDefault("PATENTS_CLIENT_SECRET", "")
	viper.SetDefault("PATENTS_RATE_PER_SEC", 2.0)
	viper.SetDefault("PATENTS_CACHE_SIZE", 256)

	// Email defaults; an empty API URL disables contact requests
	viper.SetDefault("MAIL_API_URL", "")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "no-reply@glass-connect.example")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("AUTH_JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.PatentsBaseURL != "" && config.PatentsTokenURL == "" {
		return fmt.Errorf("PATENTS_TOKEN_URL is required when PATENTS_BASE_URL is set")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PatentsEnabled reports whether the patent search proxy is configured
func (c *Config) PatentsEnabled() bool {
	return c.PatentsBaseURL != ""
}

// MailEnabled reports whether contact requests can be delivered
func (c *Config) MailEnabled() bool {
	return c.MailAPIURL != ""
}
