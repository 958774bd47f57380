// Package catalog lists the collections of a database, optionally backed by a cache.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unifiedui/docdb-gateway/internal/core/cache"
	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

const (
	// DefaultTTL is used when no TTL is configured.
	DefaultTTL = 30 * time.Second

	keyPrefix = "docdb:collections:"
)

// Service provides collection listings.
//
// Cached listings are cache-aside and may be stale for up to the TTL: a
// listing read before a concurrent Invalidate can be written back after it,
// and collections created outside the gateway are never invalidated. Keep
// the TTL short where that matters.
type Service interface {
	// ListCollections returns the sorted collection names of a database.
	ListCollections(ctx context.Context, database string) ([]string, error)

	// Invalidate drops the cached listing for a database.
	Invalidate(ctx context.Context, database string) error

	// BuildCacheKey generates the cache key for a database listing.
	BuildCacheKey(database string) string
}

// Config holds the configuration for the catalog service.
// A nil Cache disables caching.
type Config struct {
	DocDBClient docdb.Client
	Cache       cache.Cache
	TTL         time.Duration
}

type service struct {
	docDBClient docdb.Client
	cache       cache.Cache
	ttl         time.Duration
}

// NewService creates a new catalog service.
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.DocDBClient == nil {
		return nil, fmt.Errorf("docdb client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &service{
		docDBClient: cfg.DocDBClient,
		cache:       cfg.Cache,
		ttl:         ttl,
	}, nil
}

// ListCollections serves from the cache when possible. Cache failures are
// logged and the database is queried directly.
func (s *service) ListCollections(ctx context.Context, database string) ([]string, error) {
	key := s.BuildCacheKey(database)

	if s.cache != nil {
		if names, ok := s.fromCache(ctx, key); ok {
			return names, nil
		}
	}

	names, err := s.docDBClient.Database(database).ListCollectionNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections of %s: %w", database, err)
	}
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)

	if s.cache != nil {
		data, err := json.Marshal(names)
		if err == nil {
			err = s.cache.Set(ctx, key, data, s.ttl)
		}
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("database", database).Msg("failed to cache collection names")
		}
	}

	return names, nil
}

func (s *service) fromCache(ctx context.Context, key string) ([]string, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("collection cache unavailable")
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		_, _ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return names, true
}

// Invalidate drops the cached listing for a database.
func (s *service) Invalidate(ctx context.Context, database string) error {
	if s.cache == nil {
		return nil
	}
	if _, err := s.cache.Delete(ctx, s.BuildCacheKey(database)); err != nil {
		return fmt.Errorf("failed to invalidate collections of %s: %w", database, err)
	}
	return nil
}

// BuildCacheKey generates the cache key for a database listing.
func (s *service) BuildCacheKey(database string) string {
	return keyPrefix + database
}
