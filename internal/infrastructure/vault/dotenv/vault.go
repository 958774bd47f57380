// Package dotenv provides a dotenv-based vault implementation for development.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/unifiedui/docdb-gateway/internal/core/vault"
)

// Vault implements vault.Vault using environment variables, optionally
// seeded from dotenv files that do not override the live environment.
type Vault struct {
	secrets map[string]string
}

// NewVault creates a vault backed by the environment and the given files.
// Missing files are ignored.
func NewVault(files ...string) (*Vault, error) {
	secrets := make(map[string]string)
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		for key, value := range values {
			if _, ok := secrets[key]; !ok {
				secrets[key] = value
			}
		}
	}

	return &Vault{secrets: secrets}, nil
}

// Scheme returns "dotenv".
func (v *Vault) Scheme() string {
	return string(vault.TypeDotEnv)
}

// GetSecret looks up "dotenv://KEY", preferring the process environment.
func (v *Vault) GetSecret(ctx context.Context, uri string) (string, error) {
	key := strings.TrimPrefix(uri, v.Scheme()+"://")
	if key == "" {
		return "", fmt.Errorf("empty secret key in %q", uri)
	}

	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	if value, ok := v.secrets[key]; ok {
		return value, nil
	}

	return "", fmt.Errorf("secret not found: %s", key)
}

// Ping always succeeds.
func (v *Vault) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (v *Vault) Close() error {
	return nil
}
