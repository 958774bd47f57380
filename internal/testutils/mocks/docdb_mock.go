// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

// MockCollection is a mock implementation of docdb.Collection.
type MockCollection struct {
	mock.Mock
}

// InsertOne inserts a single document.
func (m *MockCollection) InsertOne(ctx context.Context, document bson.D, opts *options.InsertOneOptions) (interface{}, error) {
	args := m.Called(ctx, document, opts)
	return args.Get(0), args.Error(1)
}

// InsertMany inserts multiple documents.
func (m *MockCollection) InsertMany(ctx context.Context, documents []bson.D, opts *options.InsertManyOptions) (*docdb.InsertManyResult, error) {
	args := m.Called(ctx, documents, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.InsertManyResult), args.Error(1)
}

// FindOne finds a single document.
func (m *MockCollection) FindOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (bson.D, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.D), args.Error(1)
}

// Find finds multiple documents.
func (m *MockCollection) Find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]bson.D, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.D), args.Error(1)
}

// UpdateOne updates a single document.
func (m *MockCollection) UpdateOne(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, update, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// UpdateMany updates multiple documents.
func (m *MockCollection) UpdateMany(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, update, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// ReplaceOne replaces a single document.
func (m *MockCollection) ReplaceOne(ctx context.Context, filter, replacement bson.D, opts *options.ReplaceOptions) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, replacement, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// DeleteOne deletes a single document.
func (m *MockCollection) DeleteOne(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// DeleteMany deletes multiple documents.
func (m *MockCollection) DeleteMany(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// MockDatabase is a mock implementation of docdb.Database.
type MockDatabase struct {
	mock.Mock
}

// Name returns the database name.
func (m *MockDatabase) Name() string {
	args := m.Called()
	return args.String(0)
}

// Collection returns a collection.
func (m *MockDatabase) Collection(name string, opts *options.CollectionOptions) docdb.Collection {
	args := m.Called(name, opts)
	return args.Get(0).(docdb.Collection)
}

// ListCollectionNames lists collection names.
func (m *MockDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
}

// Database returns a database handle.
func (m *MockDocDBClient) Database(name string) docdb.Database {
	args := m.Called(name)
	return args.Get(0).(docdb.Database)
}

// Ping checks the connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
