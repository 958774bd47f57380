package testutils

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test constants
const (
	TestDatabase   = "shop"
	TestCollection = "orders"
)

// TestObjectID is a fixed identifier for assertions on encoded output.
var TestObjectID = mustObjectID("64b7f0c2a1e4b5d6c7f80912")

// NewTestOrder creates an order document with default values.
func NewTestOrder(sku string, qty int32) bson.D {
	return bson.D{
		{Key: "sku", Value: sku},
		{Key: "qty", Value: qty},
	}
}

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}
