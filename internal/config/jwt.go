// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTIssuer is the issuer claim stamped on every session token.
const DefaultJWTIssuer = "travel-planner"

// JWTConfig holds settings for issuing and validating API session tokens.
type JWTConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_ISSUER (default: travel-planner) and
// JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = DefaultJWTIssuer
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}

	config := &JWTConfig{
		Secret:   secret,
		Issuer:   issuer,
		TokenTTL: time.Duration(expirationHours) * time.Hour,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.Issuer == "" {
		return fmt.Errorf("JWT_ISSUER cannot be empty")
	}
	if c.TokenTTL < time.Hour {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %s", c.TokenTTL)
	}
	return nil
}
