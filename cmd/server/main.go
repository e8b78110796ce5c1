package main

import (
	"log"

	"glass-connect-backend/internal/api/routes"
	"glass-connect-backend/internal/config"
	"glass-connect-backend/internal/database"
	"glass-connect-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "glass-connect-backend/docs" // This is needed for swag
)

//	@title			Glass Connect Backend API
//	@version		1.0
//	@description	Backend API of the glass connect lab marketplace: lab listings, teams, lab offer profiles, reference vocabularies and dry-run validation.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@glass-connect.example

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.

func main() {
	// Load environment variables from .env file in development
	envErr := godotenv.Load()

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, nil)
	appLogger := logger.New()
	if envErr != nil {
		appLogger.Info("No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		ConnectTimeout: cfg.DatabaseConnectTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	appLogger.WithField("port", port).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		appLogger.WithError(err).Fatal("Failed to start server")
	}
}
