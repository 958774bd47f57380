// Package mongodb provides MongoDB database implementation.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

// Collection implements the docdb.Collection interface for MongoDB.
type Collection struct {
	collection *mongo.Collection
}

// NewCollection creates a new MongoDB collection wrapper.
func NewCollection(collection *mongo.Collection) *Collection {
	return &Collection{
		collection: collection,
	}
}

// InsertOne inserts a single document.
func (c *Collection) InsertOne(ctx context.Context, document bson.D, opts *options.InsertOneOptions) (interface{}, error) {
	result, err := c.collection.InsertOne(ctx, document, opts)
	if err = acknowledged(err); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return result.InsertedID, nil
}

// InsertMany inserts multiple documents. On a bulk write error the result
// still carries the identifiers of the documents that were written.
func (c *Collection) InsertMany(ctx context.Context, documents []bson.D, opts *options.InsertManyOptions) (*docdb.InsertManyResult, error) {
	if len(documents) == 0 {
		return &docdb.InsertManyResult{InsertedIDs: map[int]interface{}{}}, nil
	}

	docs := make([]interface{}, len(documents))
	for i, doc := range documents {
		docs[i] = doc
	}

	result, err := c.collection.InsertMany(ctx, docs, opts)
	if result == nil {
		return nil, fmt.Errorf("failed to insert documents: %w", err)
	}

	ids := make(map[int]interface{}, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id
	}

	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		// Ordered inserts stop at the first failure.
		ordered := opts == nil || opts.Ordered == nil || *opts.Ordered
		for _, we := range bulkErr.WriteErrors {
			last := we.Index
			if ordered {
				last = len(documents) - 1
			}
			for i := we.Index; i <= last; i++ {
				delete(ids, i)
			}
		}
	}

	imResult := &docdb.InsertManyResult{InsertedIDs: ids}
	if err = acknowledged(err); err != nil {
		return imResult, fmt.Errorf("failed to insert documents: %w", err)
	}
	return imResult, nil
}

// FindOne finds a single document matching the filter.
func (c *Collection) FindOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (bson.D, error) {
	var doc bson.D
	if err := c.collection.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, docdb.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return doc, nil
}

// Find finds all documents matching the filter and drains the cursor.
func (c *Collection) Find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]bson.D, error) {
	cursor, err := c.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []bson.D{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read cursor: %w", err)
	}
	return docs, nil
}

// UpdateOne updates a single document matching the filter.
func (c *Collection) UpdateOne(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*docdb.UpdateResult, error) {
	result, err := c.collection.UpdateOne(ctx, filter, update, opts)
	if unacknowledged(err) {
		return &docdb.UpdateResult{Unacknowledged: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return toUpdateResult(result), nil
}

// UpdateMany updates all documents matching the filter.
func (c *Collection) UpdateMany(ctx context.Context, filter, update bson.D, opts *options.UpdateOptions) (*docdb.UpdateResult, error) {
	result, err := c.collection.UpdateMany(ctx, filter, update, opts)
	if unacknowledged(err) {
		return &docdb.UpdateResult{Unacknowledged: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update documents: %w", err)
	}
	return toUpdateResult(result), nil
}

// ReplaceOne replaces a single document matching the filter.
func (c *Collection) ReplaceOne(ctx context.Context, filter, replacement bson.D, opts *options.ReplaceOptions) (*docdb.UpdateResult, error) {
	result, err := c.collection.ReplaceOne(ctx, filter, replacement, opts)
	if unacknowledged(err) {
		return &docdb.UpdateResult{Unacknowledged: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace document: %w", err)
	}
	return toUpdateResult(result), nil
}

// DeleteOne deletes a single document matching the filter.
func (c *Collection) DeleteOne(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*docdb.DeleteResult, error) {
	result, err := c.collection.DeleteOne(ctx, filter, opts)
	if err = acknowledged(err); err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return &docdb.DeleteResult{
		DeletedCount: result.DeletedCount,
	}, nil
}

// DeleteMany deletes all documents matching the filter.
func (c *Collection) DeleteMany(ctx context.Context, filter bson.D, opts *options.DeleteOptions) (*docdb.DeleteResult, error) {
	result, err := c.collection.DeleteMany(ctx, filter, opts)
	if err = acknowledged(err); err != nil {
		return nil, fmt.Errorf("failed to delete documents: %w", err)
	}

	return &docdb.DeleteResult{
		DeletedCount: result.DeletedCount,
	}, nil
}

// unacknowledged reports whether err only signals that a w:0 write was sent
// without waiting for the server.
func unacknowledged(err error) bool {
	return errors.Is(err, mongo.ErrUnacknowledgedWrite)
}

// acknowledged drops the unacknowledged-write marker so a w:0 write that was
// sent is reported as a success.
func acknowledged(err error) error {
	if unacknowledged(err) {
		return nil
	}
	return err
}

func toUpdateResult(result *mongo.UpdateResult) *docdb.UpdateResult {
	return &docdb.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedID:    result.UpsertedID,
	}
}

// Database implements the docdb.Database interface for MongoDB.
type Database struct {
	database *mongo.Database
}

// NewDatabase creates a new MongoDB database wrapper.
func NewDatabase(database *mongo.Database) *Database {
	return &Database{
		database: database,
	}
}

// Name returns the database name.
func (d *Database) Name() string {
	return d.database.Name()
}

// Collection returns a collection from the database.
func (d *Database) Collection(name string, opts *options.CollectionOptions) docdb.Collection {
	if opts == nil {
		return NewCollection(d.database.Collection(name))
	}
	return NewCollection(d.database.Collection(name, opts))
}

// ListCollectionNames lists all collection names in the database.
func (d *Database) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
