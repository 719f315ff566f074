package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pennywise-app/pennywise_backend/cmd/docs"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tokens middleware.TokenChecker,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Report artifacts are public once generated; links travel in notifications.
	r.Static("/storage", cfg.StorageDir)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, tokens)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tokens middleware.TokenChecker,
) {
	apiLimiter := middleware.RateLimitByUser(middleware.NewRateLimiter(cfg.APIRateLimit))

	// Apply auth, per-user throttling and audit logging to the entire v1 group
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, tokens),
		apiLimiter,
		middleware.ActivityLogger(services.Activity),
	)

	registerLogoutRoute(v1, services.Auth)
	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, cfg, services.Transaction, services.Report)
	registerCategoryRoutes(v1, services.Category)
	registerDashboardRoutes(v1, services.Dashboard)
	registerReportRoutes(v1, services.Report)
	registerExchangeRateRoutes(v1, services.ExchangeRate, cfg.BaseCurrency)
	registerNotificationRoutes(v1, services.Notification)
	registerActivityLogRoutes(v1, services.Activity)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
