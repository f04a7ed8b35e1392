// Package config also provides authentication configuration for the HTTP API.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the settings for issuing and validating bearer tokens.
// The API key is stored only as a bcrypt hash; the plaintext key is compared
// once per token exchange.
type AuthConfig struct {
	JWTSecret       string
	ExpirationHours int
	apiKeyHash      []byte
}

// NewAuthConfig builds auth configuration from environment variables:
// JWT_SECRET and API_KEY are required, JWT_EXPIRATION_HOURS defaults to 24.
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("API_KEY is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}
	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", expirationHours)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash API key: %w", err)
	}

	return &AuthConfig{
		JWTSecret:       secret,
		ExpirationHours: expirationHours,
		apiKeyHash:      hash,
	}, nil
}

// VerifyAPIKey reports whether the presented key matches the configured one.
func (c *AuthConfig) VerifyAPIKey(key string) bool {
	return bcrypt.CompareHashAndPassword(c.apiKeyHash, []byte(key)) == nil
}
