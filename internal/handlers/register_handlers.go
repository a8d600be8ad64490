package handlers

import (
	"github.com/SscSPs/connec_payment_sync/cmd/docs"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/middleware"
	"github.com/SscSPs/connec_payment_sync/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	webhookLimiter *limiter.Limiter,
) {
	r.Use(corsMiddleware(cfg))

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, webhookLimiter)

	setupSwaggerRoutes(r, cfg)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigin) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigin
	}
	corsCfg.AddAllowHeaders("Authorization", "x-api-key")
	corsCfg.AddExposeHeaders("X-Request-ID")
	return cors.New(corsCfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	webhookLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	// The webhook key only opens the webhook routes. It is tried first; AuthMiddleware
	// skips JWT validation when it succeeded.
	webhookMW := []gin.HandlerFunc{
		middleware.APIKeyAuth(cfg.WebhookAPIKeyHash),
		middleware.AuthMiddleware(cfg.JWTSecret),
	}
	if webhookLimiter != nil {
		webhookMW = append(webhookMW, middleware.RateLimit(webhookLimiter))
	}
	registerWebhookRoutes(v1, services.Sync, webhookMW...)

	driver := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerPaymentRoutes(driver, services.Sync)
	registerIDMapRoutes(driver, services.Sync)
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
