package routes

import (
	"net/http"

	"glass-connect-backend/internal/api/handlers"
	"glass-connect-backend/internal/api/middleware"
	"glass-connect-backend/internal/auth"
	"glass-connect-backend/internal/config"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/notify"
	"glass-connect-backend/internal/patents"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "dev"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	log := logger.New()

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := schema.NewValidator()

	// Initialize repositories
	labRepo := repository.NewLabRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	profileRepo := repository.NewOfferProfileRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)

	// Optional outbound integrations
	var mailer service.Mailer
	if cfg.MailEnabled() {
		httpMailer, err := notify.NewHTTPMailer(cfg)
		if err != nil {
			log.WithError(err).Warn("Mail provider disabled")
		} else {
			mailer = httpMailer
		}
	}

	var searcher service.PatentSearcher
	if cfg.PatentsEnabled() {
		client, err := patents.NewClient(cfg.PatentsBaseURL,
			patents.WithRateLimit(cfg.PatentsRatePerSec),
			patents.WithCacheSize(cfg.PatentsCacheSize),
			patents.WithClientCredentials(cfg.PatentsClientID, cfg.PatentsClientSecret, cfg.PatentsTokenURL),
		)
		if err != nil {
			log.WithError(err).Warn("Patent gateway disabled")
		} else {
			searcher = client
		}
	}

	// Initialize services
	labService := service.NewLabService(labRepo)
	teamService := service.NewTeamService(teamRepo, labRepo)
	profileService := service.NewOfferProfileService(profileRepo, labRepo)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo)
	contactService := service.NewContactService(labRepo, mailer, validator)
	patentService := service.NewPatentService(searcher)

	// Initialize auth. Without a secret every caller is anonymous and writes
	// are rejected by the services.
	authMiddleware := newAuthMiddleware(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	labHandler := handlers.NewLabHandler(labService)
	teamHandler := handlers.NewTeamHandler(teamService)
	profileHandler := handlers.NewOfferProfileHandler(profileService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	validateHandler := handlers.NewValidateHandler()
	contactHandler := handlers.NewContactHandler(contactService)
	patentHandler := handlers.NewPatentHandler(patentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes. Reads are public; writes resolve the caller from the
	// bearer token.
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.OptionalAuth())
	}

	{
		// Lab routes
		labs := v1.Group("/labs")
		{
			labs.GET("", labHandler.ListLabs)
			labs.POST("", labHandler.CreateLab)
			labs.GET("/:id", labHandler.GetLab)
			labs.PATCH("/:id", labHandler.UpdateLab)
			labs.DELETE("/:id", labHandler.DeleteLab)
			labs.GET("/:id/offer-profile", profileHandler.GetOfferProfile)
			labs.PUT("/:id/offer-profile", profileHandler.PutOfferProfile)
			labs.PATCH("/:id/offer-profile", profileHandler.PatchOfferProfile)
			labs.DELETE("/:id/offer-profile", profileHandler.DeleteOfferProfile)
			labs.POST("/:id/contact", contactHandler.ContactLab)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams) // Optional lab_id parameter
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Reference vocabularies
		taxonomy := v1.Group("/taxonomy")
		{
			taxonomy.GET("/lab-offer", taxonomyHandler.ListOfferOptions)
			taxonomy.GET("/lab-offer/:group/:code", taxonomyHandler.GetOfferOption)
			taxonomy.GET("/erc-disciplines", taxonomyHandler.ListErcDisciplines)
			taxonomy.GET("/erc-disciplines/:code", taxonomyHandler.GetErcDiscipline)
		}

		// Dry-run validation of client documents
		v1.POST("/validate/:kind", validateHandler.Validate)

		// Patent gateway proxy
		v1.GET("/patents/search", patentHandler.Search)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router
}

func newAuthMiddleware(cfg *config.Config) *auth.AuthMiddleware {
	log := logger.New()
	if cfg.JWTSecret == "" {
		log.WithError(apperrors.ErrAuthNotConfigured).Warn("Serving anonymous requests only")
		return nil
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to initialize auth service")
		return nil
	}
	return auth.NewAuthMiddleware(authService)
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
