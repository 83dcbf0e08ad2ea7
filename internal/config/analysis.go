package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// AnalysisConfig holds settings for checkmate and stalemate detection.
type AnalysisConfig struct {
	// Workers is the number of goroutines probing pieces in parallel.
	// 0 or 1 runs the search on the calling goroutine.
	Workers int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{Workers: 1}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", a.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
