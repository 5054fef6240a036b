package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	contributionapp "github.com/ppkgen/backend/internal/application/contribution"
	employerapp "github.com/ppkgen/backend/internal/application/employer"
	filingapp "github.com/ppkgen/backend/internal/application/filing"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/infrastructure/config"
	"github.com/ppkgen/backend/internal/infrastructure/logger"
	"github.com/ppkgen/backend/internal/infrastructure/persistence"
	"github.com/ppkgen/backend/internal/interfaces/http/handler"
	"github.com/ppkgen/backend/internal/interfaces/http/middleware"
	"github.com/ppkgen/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PPK filing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Initialize repositories
	organizationRepo := persistence.NewGormOrganizationRepository(db.DB)
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	contributionRepo := persistence.NewGormContributionRepository(db.DB)
	generationRepo := persistence.NewGormGenerationRepository(db.DB)

	// Initialize domain services
	reconciler := contribution.NewReconciler(memberRepo, contributionRepo)

	// Initialize application services
	organizationService := employerapp.NewOrganizationService(organizationRepo)
	memberService := employerapp.NewMemberService(memberRepo, organizationRepo)
	contributionService := contributionapp.NewContributionService(contributionRepo, reconciler)
	filingService := filingapp.NewFilingService(organizationRepo, contributionRepo, generationRepo)

	// Initialize handlers
	organizationHandler := handler.NewOrganizationHandler(organizationService)
	memberHandler := handler.NewMemberHandler(memberService)
	contributionHandler := handler.NewContributionHandler(contributionService)
	filingHandler := handler.NewFilingHandler(filingService)
	systemHandler := handler.NewSystemHandler()

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	employerRoutes := router.NewDomainGroup("employers", "/employers")
	employerRoutes.POST("", organizationHandler.Create)
	employerRoutes.GET("", organizationHandler.List)
	employerRoutes.GET("/:id", organizationHandler.Get)
	employerRoutes.PUT("/:id", organizationHandler.Update)
	employerRoutes.DELETE("/:id", organizationHandler.Delete)

	// Member enrollment
	employerRoutes.POST("/:id/members", memberHandler.Create)
	employerRoutes.GET("/:id/members", memberHandler.List)

	// Per-period contribution grid
	employerRoutes.GET("/:id/contributions", contributionHandler.List)
	employerRoutes.PUT("/:id/contributions", contributionHandler.Upsert)
	employerRoutes.POST("/:id/contributions/prefill", contributionHandler.Prefill)
	employerRoutes.GET("/:id/contributions/periods", contributionHandler.Periods)

	// Filing generation and history
	employerRoutes.POST("/:id/filings", filingHandler.Generate)
	employerRoutes.GET("/:id/filings", filingHandler.List)

	memberRoutes := router.NewDomainGroup("members", "/members")
	memberRoutes.GET("/:id", memberHandler.Get)
	memberRoutes.PUT("/:id", memberHandler.Update)
	memberRoutes.DELETE("/:id", memberHandler.Delete)

	identifierRoutes := router.NewDomainGroup("identifiers", "/identifiers")
	identifierRoutes.POST("/pesel/validate", memberHandler.ValidatePESEL)

	filingRoutes := router.NewDomainGroup("filings", "/filings")
	filingRoutes.GET("/:id", filingHandler.Get)
	filingRoutes.GET("/:id/archive", filingHandler.Export)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(employerRoutes).
		Register(memberRoutes).
		Register(identifierRoutes).
		Register(filingRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
