package router

import (
	"github.com/gin-gonic/gin"

	"basesync/internal/handler"
	"basesync/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	searchH *handler.SearchHandler,
	syncH *handler.SyncHandler,
	clientH *handler.ClientHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Search routes
	search := v1.Group("/search")
	search.GET("/groups", searchH.Groups)
	search.GET("/clients", searchH.Clients)
	search.GET("/:domain/groups", searchH.DomainGroups)

	// Sync routes
	v1.POST("/sync/:domain", syncH.Run)

	// Client registry routes
	clients := v1.Group("/clients")
	clients.GET("", clientH.List)
	clients.GET("/:code", clientH.Get)

	return r
}
