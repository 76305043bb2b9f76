package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vidtube/vidtube_backend/cmd/docs"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	requireAuth := middleware.AuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.AccessTokenSecret, cfg.AccessTokenCookieName)

	registerUserRoutes(v1, cfg, services, requireAuth)
	registerSubscriptionRoutes(v1, services, requireAuth)
	registerChannelRoutes(v1, services, optionalAuth)

	setupSwaggerRoutes(r, cfg)
}

// registerUserRoutes wires registration, the credential lifecycle, and the
// current user's history.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, requireAuth gin.HandlerFunc) {
	authHandler := NewAuthHandler(services.Auth, cfg)
	userHandler := newUserHandler(services.User, services.Profile)

	// Brute-force throttle on the credential endpoints: 5 requests per minute per IP.
	limitMiddleware := middleware.NewRateLimiter("5-M")

	users := rg.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", limitMiddleware, authHandler.Login)
		users.POST("/refresh-token", limitMiddleware, authHandler.Refresh)

		users.POST("/logout", requireAuth, authHandler.Logout)
		users.POST("/change-password", requireAuth, authHandler.ChangePassword)
		users.GET("/me", requireAuth, userHandler.getMe)
		users.GET("/history", requireAuth, userHandler.getWatchHistory)
		users.POST("/history/:videoId", requireAuth, userHandler.recordWatch)
	}
}

// registerSubscriptionRoutes wires the edge toggle and the two public listings.
func registerSubscriptionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, requireAuth gin.HandlerFunc) {
	h := newSubscriptionHandler(services.Subscription)

	subscriptions := rg.Group("/subscriptions")
	{
		// Gin requires one wildcard name per position: on the channels
		// listing the :channelId param carries the subscriber's user ID.
		subscriptions.POST("/:channelId", requireAuth, h.toggle)
		subscriptions.GET("/:channelId/subscribers", h.listSubscribers)
		subscriptions.GET("/:channelId/channels", h.listSubscribedChannels)
	}
}

// registerChannelRoutes wires the viewer-relative channel profile.
func registerChannelRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, optionalAuth gin.HandlerFunc) {
	h := newChannelHandler(services.Profile)

	channels := rg.Group("/channels")
	{
		channels.GET("/:username", optionalAuth, h.getChannelProfile)
	}
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
