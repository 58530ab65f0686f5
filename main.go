package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/accuransi/website-api/src/config"
	"github.com/accuransi/website-api/src/database"
	"github.com/accuransi/website-api/src/handlers"
	"github.com/accuransi/website-api/src/logging"
	"github.com/accuransi/website-api/src/middleware"
	"github.com/accuransi/website-api/src/repositories/postgres"
	"github.com/accuransi/website-api/src/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()

	// Load configuration; an absent or short JWT secret is fatal here, long
	// before any request is served.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	dbCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := database.New(dbCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize repositories
	pool := db.Pool()
	partnerRepo := postgres.NewPartnerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	testimonialRepo := postgres.NewTestimonialRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)

	// Auto-seed admin user on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		created, err := userService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to create initial admin user")
		} else if created {
			log.Info().Str("username", cfg.AdminUsername).Msg("initial admin user created")
		}
	}

	// Apply optional content seed to empty tables
	if cfg.SeedFile != "" {
		seedService := services.NewSeedService(partnerRepo, productRepo, testimonialRepo)
		if err := seedService.Apply(ctx, cfg.SeedFile); err != nil {
			log.Error().Err(err).Str("file", cfg.SeedFile).Msg("failed to apply content seed")
		}
	}

	// Create Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, db, cfg, tokenService, authService, userService,
		partnerRepo, productRepo, testimonialRepo)

	// HTTP server with timeouts to protect against slow clients
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	cfg *config.Config,
	tokenService *services.TokenService,
	authService *services.AuthService,
	userService *services.UserService,
	partnerRepo *postgres.PartnerRepository,
	productRepo *postgres.ProductRepository,
	testimonialRepo *postgres.TestimonialRepository,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	partnerHandler := handlers.NewPartnerHandler(partnerRepo)
	productHandler := handlers.NewProductHandler(productRepo)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo)
	userHandler := handlers.NewUserHandler(userService)

	requireAuth := middleware.RequireAuth(tokenService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	// Authentication
	router.POST("/login", authHandler.HandleLogin)

	api := router.Group("/api")
	{
		api.GET("/verify-token", requireAuth, authHandler.HandleVerifyToken)

		// Public reads, authenticated mutations
		api.GET("/partners", partnerHandler.HandleList)
		api.POST("/partners", requireAuth, partnerHandler.HandleCreate)
		api.PUT("/partners/:id", requireAuth, partnerHandler.HandleUpdate)
		api.DELETE("/partners/:id", requireAuth, partnerHandler.HandleDelete)

		api.GET("/products", productHandler.HandleList)
		api.POST("/products", requireAuth, productHandler.HandleCreate)
		api.PUT("/products/:id", requireAuth, productHandler.HandleUpdate)
		api.DELETE("/products/:id", requireAuth, productHandler.HandleDelete)

		api.GET("/testimonials", testimonialHandler.HandleList)
		api.POST("/testimonials", requireAuth, testimonialHandler.HandleCreate)
		api.PUT("/testimonials/:id", requireAuth, testimonialHandler.HandleUpdate)
		api.DELETE("/testimonials/:id", requireAuth, testimonialHandler.HandleDelete)

		// User management is admin-only end to end
		api.GET("/users", requireAuth, userHandler.HandleList)
		api.POST("/users", requireAuth, userHandler.HandleCreate)
		api.PUT("/users/:id", requireAuth, userHandler.HandleUpdate)
		api.DELETE("/users/:id", requireAuth, userHandler.HandleDelete)
	}

	// Static frontends: public site at /, admin panel at /admin
	if cfg.PublicDir != "" {
		router.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))
		router.Static("/static", cfg.PublicDir)
	}
	if cfg.AdminDir != "" {
		router.StaticFile("/admin", filepath.Join(cfg.AdminDir, "admin.html"))
		router.Static("/admin-static", cfg.AdminDir)
	}
}
