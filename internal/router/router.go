package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutridiary/backend/internal/api"
	"github.com/nutridiary/backend/internal/middleware"
)

// Handlers collects the API handlers wired into the router.
type Handlers struct {
	Log     *api.LogHandler
	Catalog *api.CatalogHandler
	Weight  *api.WeightHandler
	Auth    *api.AuthHandler
	Image   *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS(corsOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	h.Catalog.RegisterRoutes(v1)
	h.Log.RegisterRoutes(v1)
	h.Weight.RegisterRoutes(v1)
	h.Auth.RegisterRoutes(v1)
	h.Image.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Auth.RegisterProtectedRoutes(protected)
	}

	return router
}
