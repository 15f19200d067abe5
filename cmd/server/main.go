package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/graphico/brief-api/internal/config"
	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/database"
	"github.com/graphico/brief-api/internal/handlers"
	"github.com/graphico/brief-api/internal/middleware"
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/services"
	"github.com/graphico/brief-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize logger
	var logger *zap.Logger
	var err error
	if cfg.GinMode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the key-value store database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie session middleware. The cookie only carries the user's
	// email and a wizard id.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // sessions persist until explicit logout
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize services
	kvStore := storage.NewStore(database.GetDB(), logger)
	catalog := models.NewCatalog()
	generator := services.NewBriefGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	evaluator := services.NewEvaluator(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)

	authService := services.NewAuthService(kvStore, logger)
	challengeService := services.NewChallengeService(generator, catalog, kvStore, logger)
	projectService := services.NewProjectService(kvStore, evaluator, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	wizardHandler := handlers.NewWizardHandler(challengeService, authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	assetHandler := handlers.NewAssetHandler(challengeService, projectService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Graphico Brief API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Catalog (public)
		api.GET("/catalog", catalogHandler.GetCatalog)

		// Wizard routes (public; only accepting a brief requires a login)
		wizard := api.Group("/wizard")
		{
			wizard.GET("", wizardHandler.GetState)
			wizard.POST("/category", wizardHandler.SelectCategory)
			wizard.POST("/generate", wizardHandler.Generate)
			wizard.POST("/remix/image", wizardHandler.AttachRemixImage)
			wizard.DELETE("/remix/image", wizardHandler.DetachRemixImage)
			wizard.POST("/remix/start", wizardHandler.StartRemix)
			wizard.POST("/regenerate", wizardHandler.Regenerate)
			wizard.POST("/reset", wizardHandler.Reset)
			wizard.POST("/accept", middleware.RequireAuth(), wizardHandler.Accept)
			wizard.GET("/asset/download", assetHandler.DownloadWizardAsset)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/submit", projectHandler.SubmitProject)
			projects.GET("/:id/asset/download", assetHandler.DownloadProjectAsset)
		}
	}

	// Start server
	logger.Info("Server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
