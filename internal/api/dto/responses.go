package dto

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// InsertOneResponse represents the response for inserting one document.
type InsertOneResponse struct {
	InsertedID Value `json:"inserted_id" swaggertype:"object"`
}

// InsertManyResponse represents the response for inserting documents.
// InsertedIDs[i] is the identifier of the i-th submitted document.
type InsertManyResponse struct {
	InsertedIDs []Value `json:"inserted_ids" swaggertype:"array,object"`
}

// NewInsertManyResponse orders the driver's index-keyed identifiers by
// ascending submission index.
func NewInsertManyResponse(result *docdb.InsertManyResult) *InsertManyResponse {
	if result == nil {
		return &InsertManyResponse{InsertedIDs: []Value{}}
	}

	indexes := make([]int, 0, len(result.InsertedIDs))
	for index := range result.InsertedIDs {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	ids := make([]Value, len(indexes))
	for i, index := range indexes {
		ids[i] = NewValue(result.InsertedIDs[index])
	}
	return &InsertManyResponse{InsertedIDs: ids}
}

// FindOneResponse represents the response for finding one document.
type FindOneResponse struct {
	Document Document `json:"document" swaggertype:"object"`
}

// FindManyResponse represents the response for finding documents.
type FindManyResponse struct {
	Documents []Document `json:"documents" swaggertype:"array,object"`
}

// NewFindManyResponse wraps driver documents; an empty result encodes as [].
func NewFindManyResponse(docs []bson.D) *FindManyResponse {
	out := make([]Document, len(docs))
	for i, doc := range docs {
		out[i] = Document(doc)
	}
	return &FindManyResponse{Documents: out}
}

// UpdateResponse represents the response for update and replace operations.
// UpsertedID is omitted from the payload unless an upsert took place.
type UpdateResponse struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedID    *Value `json:"upserted_id,omitempty" swaggertype:"object"`
}

// NewUpdateResponse copies the driver's update result.
func NewUpdateResponse(result *docdb.UpdateResult) *UpdateResponse {
	resp := &UpdateResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if result.UpsertedID != nil {
		id := NewValue(result.UpsertedID)
		resp.UpsertedID = &id
	}
	return resp
}

// DeleteResponse represents the response for delete operations.
type DeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// CollectionsResponse represents the response for listing collections.
type CollectionsResponse struct {
	Collections []string `json:"collections"`
}
