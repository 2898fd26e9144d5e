package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"lprtrack/internal/handler"
	"lprtrack/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ProfileHandler    *handler.ProfileHandler
	TripHandler       *handler.TripHandler
	ComplianceHandler *handler.ComplianceHandler
	RedisClient       *redis.Client
	NewRelicApp       *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", deps.ProfileHandler.Create)
			profiles.GET("/:id", deps.ProfileHandler.Get)
			profiles.PUT("/:id", deps.ProfileHandler.Update)
			profiles.DELETE("/:id", deps.ProfileHandler.Delete)

			// Travel history.
			profiles.POST("/:id/trips", deps.TripHandler.Create)
			profiles.GET("/:id/trips", deps.TripHandler.List)
			profiles.GET("/:id/trips/:trip_id", deps.TripHandler.Get)
			profiles.DELETE("/:id/trips/:trip_id", deps.TripHandler.Delete)

			// Compliance calculations. All accept an optional
			// as_of=YYYY-MM-DD query parameter.
			profiles.GET("/:id/compliance", deps.ComplianceHandler.GetReport)
			profiles.GET("/:id/risk", deps.ComplianceHandler.AssessRisk)
			profiles.GET("/:id/presence", deps.ComplianceHandler.GetPresence)
			profiles.GET("/:id/travel-budget", deps.ComplianceHandler.GetTravelBudget)
		}
	}

	return router
}
