// Package dto provides Data Transfer Objects for API requests and responses.
//
// Documents and driver values cross the HTTP boundary as MongoDB relaxed
// Extended JSON, so {"$oid": "..."} and {"$date": "..."} round-trip into
// their driver types and document key order is preserved.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

var nullLiteral = []byte("null")

// Document is an ordered BSON document carried as Extended JSON.
// A nil Document means the field was absent from the payload.
//
// Relaxed output writes int32 and int64 alike as plain numbers, and plain
// numbers decode to the smallest fitting type, so an int64 that fits in 32
// bits comes back as int32. Clients that need the exact type send canonical
// {"$numberLong": "..."} values.
type Document bson.D

// D returns the document as a driver bson.D.
func (d Document) D() bson.D {
	return bson.D(d)
}

// MarshalJSON encodes the document as relaxed Extended JSON.
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	data, err := bson.MarshalExtJSON(bson.D(d), false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes a JSON object (canonical or relaxed Extended JSON).
// An empty object yields a non-nil empty Document; null leaves it nil.
func (d *Document) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*d = nil
		return nil
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	if doc == nil {
		doc = bson.D{}
	}
	*d = Document(doc)
	return nil
}

// Documents converts a slice of Document to driver documents.
func Documents(docs []Document) []bson.D {
	out := make([]bson.D, len(docs))
	for i, doc := range docs {
		out[i] = doc.D()
	}
	return out
}

// Value is a single driver value such as a generated identifier or an
// index hint. It encodes as the relaxed Extended JSON of that value.
type Value struct {
	value interface{}
}

// NewValue wraps a driver value.
func NewValue(v interface{}) Value {
	return Value{value: v}
}

// Interface returns the wrapped driver value.
func (v Value) Interface() interface{} {
	return v.value
}

// MarshalJSON encodes the value as relaxed Extended JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	// Extended JSON marshals documents only, so the value is wrapped in one.
	data, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v.value}}, false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}

	var wrapper struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return wrapper.V, nil
}

// UnmarshalJSON decodes any Extended JSON value. Objects decode to bson.D.
func (v *Value) UnmarshalJSON(data []byte) error {
	wrapped := make([]byte, 0, len(data)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, '}')

	var doc bson.D
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	if len(doc) != 1 {
		return fmt.Errorf("invalid value: %s", data)
	}
	v.value = doc[0].Value
	return nil
}
