package handlers

import (
	"github.com/dika1005/rodstore-backend/cmd/docs"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")

	// Public surface: credentials, OAuth, the gateway webhook and catalog reads.
	registerAuthRoutes(api, cfg, services)
	registerGoogleOAuthRoutes(api, cfg, services)
	registerWebhookRoutes(api, services.Order)

	authed := r.Group("/api", middleware.Authenticated(cfg.JWTSecret))
	admin := r.Group("/api", middleware.Authenticated(cfg.JWTSecret), middleware.AdminOnly())

	registerUserRoutes(authed, services.User)
	registerOrderRoutes(authed, admin, services.Order)
	registerProductRoutes(api, admin, services.Product)
	registerCategoryRoutes(api, admin, services.Category)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
