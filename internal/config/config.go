// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvDevelopment enables verbose error responses.
	EnvDevelopment = "development"
	// EnvProduction hides internal error details from clients.
	EnvProduction = "production"
)

// Config holds runtime configuration for the API server.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	JWTSecret   string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", EnvDevelopment),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	if err := validateJWTSecret(cfg.JWTSecret); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateJWTSecret enforces minimum security requirements on the signing secret.
func validateJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	// Minimum 32 characters (256 bits) for HS256
	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters (256 bits)")
	}

	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if strings.Contains(strings.ToLower(secret), weak) {
			return fmt.Errorf("JWT_SECRET must not contain common weak value %q", weak)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
