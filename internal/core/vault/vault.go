// Package vault defines the secret lookup port used while loading configuration.
package vault

import (
	"context"
	"fmt"
	"strings"
)

// Type represents the type of vault.
type Type string

const (
	// TypeDotEnv reads secrets from the process environment and .env files.
	TypeDotEnv Type = "dotenv"
)

// Vault defines the interface for secret lookups.
type Vault interface {
	// Scheme returns the URI scheme handled by this vault, e.g. "dotenv".
	Scheme() string

	// GetSecret retrieves a secret by URI.
	GetSecret(ctx context.Context, uri string) (string, error)

	Ping(ctx context.Context) error
	Close() error
}

// Resolve returns value unchanged unless it is a reference of the form
// "<scheme>://KEY" for the given vault, in which case the secret is fetched.
func Resolve(ctx context.Context, v Vault, value string) (string, error) {
	if v == nil || !strings.HasPrefix(value, v.Scheme()+"://") {
		return value, nil
	}

	secret, err := v.GetSecret(ctx, value)
	if err != nil {
		return "", fmt.Errorf("failed to resolve secret %s: %w", value, err)
	}
	return secret, nil
}
