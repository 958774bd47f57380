// Package routes defines the HTTP routes for the document database gateway.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docdb-gateway/internal/api/handlers"
	"github.com/unifiedui/docdb-gateway/internal/api/middleware"
)

// BasePath is the prefix of every API route.
const BasePath = "/api/v1/docdb"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler      *handlers.HealthHandler
	DocumentsHandler   *handlers.DocumentsHandler
	CollectionsHandler *handlers.CollectionsHandler
	CORS               middleware.CORSConfig
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		// All document operations take their payload in the body, so they are POSTs.
		documents := v1.Group("/documents")
		{
			documents.POST("/insert-one", cfg.DocumentsHandler.InsertOne)
			documents.POST("/insert-many", cfg.DocumentsHandler.InsertMany)
			documents.POST("/find-one", cfg.DocumentsHandler.FindOne)
			documents.POST("/find-many", cfg.DocumentsHandler.FindMany)
			documents.POST("/update-one", cfg.DocumentsHandler.UpdateOne)
			documents.POST("/update-many", cfg.DocumentsHandler.UpdateMany)
			documents.POST("/replace-one", cfg.DocumentsHandler.ReplaceOne)
			documents.POST("/delete-one", cfg.DocumentsHandler.DeleteOne)
			documents.POST("/delete-many", cfg.DocumentsHandler.DeleteMany)
		}

		v1.GET("/collections", cfg.CollectionsHandler.ListCollections)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	r.Use(loggingMw.RequestID())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	// Preflight requests match no route; the CORS middleware still runs on the
	// NoRoute/NoMethod chain and answers them.
	r.Use(middleware.NewCORSMiddleware(cfg.CORS))

	Setup(r, cfg)
}
