// Package docdb defines the document database interface.
package docdb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// InsertManyResult represents the result of an InsertMany operation.
// InsertedIDs is keyed by the index of the document in the submitted batch.
// Indexes of documents the server rejected are absent.
type InsertManyResult struct {
	InsertedIDs map[int]interface{}
}

// UpdateResult represents the result of an update or replace operation.
// Unacknowledged writes (w:0) carry zero counts and no upserted id.
type UpdateResult struct {
	MatchedCount   int64
	ModifiedCount  int64
	UpsertedCount  int64
	UpsertedID     interface{}
	Unacknowledged bool
}

// DeleteResult represents the result of a delete operation.
type DeleteResult struct {
	DeletedCount int64
}

// Collection defines the interface for document collection operations.
// Options are the driver's own option types and are passed through untouched.
type Collection interface {
	// InsertOne inserts a single document and returns its identifier.
	InsertOne(ctx context.Context, document bson.D, opts *options.InsertOneOptions) (interface{}, error)

	// InsertMany inserts multiple documents.
	InsertMany(ctx context.Context, documents []bson.D, opts *options.InsertManyOptions) (*InsertManyResult, error)

	// FindOne finds a single document. Returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (bson.D, error)

	// Find finds all documents matching the filter.
	Find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]bson.D, error)

	// UpdateOne updates a single document.
	UpdateOne(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*UpdateResult, error)

	// UpdateMany updates all matching documents.
	UpdateMany(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*UpdateResult, error)

	// ReplaceOne replaces a single document.
	ReplaceOne(ctx context.Context, filter, replacement bson.D, opts *options.ReplaceOptions) (*UpdateResult, error)

	// DeleteOne deletes a single document.
	DeleteOne(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*DeleteResult, error)

	// DeleteMany deletes all matching documents.
	DeleteMany(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*DeleteResult, error)
}

// Database defines the interface for database operations.
type Database interface {
	// Name returns the database name.
	Name() string

	// Collection returns a collection by name. Collection-scoped settings
	// such as write concern are taken from opts when non-nil.
	Collection(name string, opts *options.CollectionOptions) Collection

	// ListCollectionNames lists all collection names.
	ListCollectionNames(ctx context.Context) ([]string, error)
}
