// Package router wires repositories, services and handlers into the gin engine.
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/helloworld/api-backend/docs"
	"github.com/helloworld/api-backend/internal/config"
	"github.com/helloworld/api-backend/internal/handlers"
	"github.com/helloworld/api-backend/internal/middleware"
	"github.com/helloworld/api-backend/internal/repositories"
	"github.com/helloworld/api-backend/internal/services"
	"github.com/helloworld/api-backend/internal/validators"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup builds the HTTP engine with every route registered
func Setup(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validators.RegisterBindingValidations(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.New(corsConfig(cfg.CORS)))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(logger))

	// Repositories
	greetingRepo := repositories.NewGreetingRepository(db)
	errorRepo := repositories.NewErrorRepository(db)
	healthRepo := repositories.NewHealthStatusRepository(db)
	docRepo := repositories.NewDocumentationRepository(db)

	// Services
	greetingSvc := services.NewGreetingService(greetingRepo)
	errorSvc := services.NewErrorService(errorRepo)
	healthSvc := services.NewHealthStatusService(healthRepo, errorRepo, logger)
	docSvc := services.NewDocumentationService(docRepo)

	// Handlers
	pingHandler := handlers.NewPingHandler(db)
	greetingHandler := handlers.NewGreetingHandler(greetingSvc)
	errorHandler := handlers.NewErrorLogHandler(errorSvc)
	healthHandler := handlers.NewHealthStatusHandler(healthSvc)
	docHandler := handlers.NewDocumentationHandler(docSvc)

	admin := middleware.AdminAuth(cfg.Admin.JWTSecret, cfg.Admin.Email)
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET is not set, administrative routes are unprotected")
	}

	r.GET("/ping", pingHandler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	hello := r.Group("/helloworld")
	{
		hello.GET("", greetingHandler.GetGreeting)
		hello.GET("/json", greetingHandler.GetGreetingJSON)
		hello.POST("", admin, greetingHandler.CreateGreeting)
		hello.PUT("", admin, greetingHandler.UpdateGreeting)
		hello.DELETE("", admin, greetingHandler.DeleteGreeting)
	}

	health := r.Group("/health")
	{
		health.GET("", healthHandler.GetHealthStatus)
		health.POST("", admin, healthHandler.CreateHealthStatus)
		health.PUT("", admin, healthHandler.UpdateHealthStatus)
		health.DELETE("", admin, healthHandler.DeleteHealthStatus)
	}

	api := r.Group("/api")
	{
		api.GET("/hello", greetingHandler.GetGreetingJSON)
		api.GET("/docs", docHandler.GetDocumentation)

		errs := api.Group("/errors")
		errs.POST("", errorHandler.CreateError)
		errs.GET("", errorHandler.ListErrors)
		errs.GET("/:id", errorHandler.GetError)
		errs.PUT("/:id", errorHandler.UpdateError)
		errs.DELETE("/:id", admin, errorHandler.DeleteError)
	}

	return r, nil
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}
