package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/visa_portal_backend/cmd/docs"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/SscSPs/visa_portal_backend/internal/platform/config"
	"github.com/SscSPs/visa_portal_backend/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultConvertRateLimit = "120-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Currency lookups back the public site as well as the portal
	public := r.Group("/api/v1")
	throttle := convertThrottle(cfg)
	registerCurrencyRoutes(public, services.Currency, throttle)
	registerExchangeRateRoutes(public, services.ExchangeRate, throttle)

	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 groups: /portal for
// the signed-in client and /admin for staff holding cfg.AdminRole.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(posthogClient),
	)
	portal := v1.Group("/portal")
	admin := v1.Group("/admin", middleware.RequireRole(cfg.AdminRole))

	registerProfileRoutes(portal, admin, service.Profile)
	registerPaymentRoutes(portal, admin, service.Payment)
	registerPaymentPlanRoutes(portal, admin, service.PaymentPlan)
	registerSummaryRoutes(portal, admin, service.Summary)
	registerClientRecordRoutes(portal, admin, service.Document, service.LoginHistory)
}

// corsConfig allows the configured portal origins. With none configured any
// origin may call, without credentials.
func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cc.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	}
	return cc
}

// convertThrottle builds the limiter guarding endpoints that may reach the
// rate provider. A malformed CONVERT_RATE_LIMIT falls back to the default.
func convertThrottle(cfg *config.Config) gin.HandlerFunc {
	lim, err := middleware.NewMemoryLimiter(cfg.ConvertRateLimit)
	if err != nil {
		slog.Warn("Invalid CONVERT_RATE_LIMIT, using default",
			slog.String("value", cfg.ConvertRateLimit),
			slog.String("default", defaultConvertRateLimit),
			slog.String("error", err.Error()))
		lim, _ = middleware.NewMemoryLimiter(defaultConvertRateLimit)
	}
	return middleware.RateLimit(lim)
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
