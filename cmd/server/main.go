// Package main is the entry point for the Document Database Gateway.
// @title Document Database Gateway API
// @version 1.0
// @description HTTP facade over a MongoDB-compatible document database
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/unifiedui/docdb-gateway

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/docdb-gateway/docs"
	"github.com/unifiedui/docdb-gateway/internal/api/handlers"
	"github.com/unifiedui/docdb-gateway/internal/api/middleware"
	"github.com/unifiedui/docdb-gateway/internal/api/routes"
	"github.com/unifiedui/docdb-gateway/internal/config"
	"github.com/unifiedui/docdb-gateway/internal/core/cache"
	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
	"github.com/unifiedui/docdb-gateway/internal/core/vault"
	rediscache "github.com/unifiedui/docdb-gateway/internal/infrastructure/cache/redis"
	"github.com/unifiedui/docdb-gateway/internal/infrastructure/docdb/mongodb"
	dotenvvault "github.com/unifiedui/docdb-gateway/internal/infrastructure/vault/dotenv"
	"github.com/unifiedui/docdb-gateway/internal/pkg/logging"
	"github.com/unifiedui/docdb-gateway/internal/services/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	ctx := context.Background()

	vaultClient, err := createVault(cfg.Vault)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize vault")
	}
	defer vaultClient.Close()

	if err := resolveSecrets(ctx, cfg, vaultClient); err != nil {
		log.Fatal().Err(err).Msg("failed to resolve secrets")
	}

	cacheClient, err := createCache(ctx, cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	docDBClient, err := createDocDBClient(ctx, cfg.DocDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document db client")
	}
	defer docDBClient.Close(ctx)

	catalogService, err := catalog.NewService(&catalog.Config{
		DocDBClient: docDBClient,
		Cache:       cacheClient,
		TTL:         cfg.Cache.TTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog service")
	}

	gin.SetMode(cfg.Server.GinMode)
	router := setupRouter(cfg, logger, cacheClient, docDBClient, catalogService)

	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// createVault creates a vault based on the configuration.
func createVault(cfg config.VaultConfig) (vault.Vault, error) {
	switch vault.Type(cfg.Type) {
	case vault.TypeDotEnv:
		return dotenvvault.NewVault(cfg.SecretsFile)
	default:
		return nil, fmt.Errorf("unsupported vault type: %s", cfg.Type)
	}
}

// resolveSecrets replaces vault references in the configuration with their values.
func resolveSecrets(ctx context.Context, cfg *config.Config, v vault.Vault) error {
	uri, err := vault.Resolve(ctx, v, cfg.DocDB.URI)
	if err != nil {
		return err
	}
	cfg.DocDB.URI = uri

	password, err := vault.Resolve(ctx, v, cfg.Cache.Password)
	if err != nil {
		return err
	}
	cfg.Cache.Password = password
	return nil
}

// createCache creates a cache based on the configuration. It returns a nil
// cache when caching is disabled.
func createCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cache.Type(cfg.Type) {
	case cache.TypeNone, "":
		return nil, nil
	case cache.TypeRedis:
		return rediscache.NewCache(ctx, rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// createDocDBClient creates a document database client based on the configuration.
func createDocDBClient(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	switch docdb.Type(cfg.Type) {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
		// Cosmos DB is reached through its MongoDB API.
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:            cfg.URI,
			ConnectTimeout: cfg.ConnectTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", cfg.Type)
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, logger zerolog.Logger, cacheClient cache.Cache, docDBClient docdb.Client, catalogService catalog.Service) *gin.Engine {
	router := gin.New()

	routesCfg := &routes.Config{
		HealthHandler:      handlers.NewHealthHandler(cacheClient, docDBClient),
		DocumentsHandler:   handlers.NewDocumentsHandler(docDBClient, catalogService),
		CollectionsHandler: handlers.NewCollectionsHandler(catalogService),
		CORS:               middleware.DefaultCORSConfig(cfg.Server.CORSAllowedOrigins),
	}

	routes.SetupWithMiddleware(router, routesCfg, middleware.NewLoggingMiddleware(logger), middleware.NewErrorMiddleware())

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
