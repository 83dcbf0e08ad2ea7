package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StorageConfig holds settings for game persistence.
type StorageConfig struct {
	// Dir is the badger data directory. Empty disables persistence
	// unless InMemory is set.
	Dir string

	// InMemory keeps the store in memory only, for tests and demos
	InMemory bool
}

// NewStorageConfig creates a StorageConfig with default values.
// Persistence is disabled by default.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether games should be persisted.
func (s *StorageConfig) Enabled() bool {
	return s.InMemory || s.Dir != ""
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s.InMemory && s.Dir != "" {
		return fmt.Errorf("data directory %q given for in-memory store: %w", s.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
