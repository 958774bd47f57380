package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of catalog.Service.
type MockCatalogService struct {
	mock.Mock
}

// ListCollections lists collection names.
func (m *MockCatalogService) ListCollections(ctx context.Context, database string) ([]string, error) {
	args := m.Called(ctx, database)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Invalidate drops a cached listing.
func (m *MockCatalogService) Invalidate(ctx context.Context, database string) error {
	args := m.Called(ctx, database)
	return args.Error(0)
}

// BuildCacheKey generates the cache key.
func (m *MockCatalogService) BuildCacheKey(database string) string {
	args := m.Called(database)
	return args.String(0)
}
