package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// ReadTimeout and WriteTimeout bound a single request
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AllowOrigins is the CORS origin list, comma separated
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		AllowOrigins: "*",
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return fmt.Errorf("negative timeout: %w", errors.ErrInvalidConfig)
	}
	return nil
}
