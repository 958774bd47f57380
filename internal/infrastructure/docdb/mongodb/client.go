// Package mongodb provides MongoDB client implementation.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
)

// Client implements the docdb.Client interface for MongoDB.
type Client struct {
	client *mongo.Client
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	URI            string
	ConnectTimeout time.Duration
}

// NewClient creates a new MongoDB client and verifies the connection.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}

	clientOpts := options.Client().ApplyURI(config.URI)
	if config.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(config.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(config.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewClientFromMongo(client), nil
}

// NewClientFromMongo wraps an already connected driver client.
func NewClientFromMongo(client *mongo.Client) *Client {
	return &Client{client: client}
}

// Database returns a handle to the named database.
func (c *Client) Database(name string) docdb.Database {
	return NewDatabase(c.client.Database(name))
}

// Ping verifies the connection to MongoDB.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
