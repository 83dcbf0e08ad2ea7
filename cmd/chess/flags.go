// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start position in FEN (default: initial position)")

	// Analysis
	workers = flag.Int("workers", 1, "Goroutines used for checkmate and stalemate detection")

	// Board display
	unicode  = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	noShade  = flag.Bool("noshade", false, "Don't mark empty dark squares with '#'")
	noCoords = flag.Bool("nocoords", false, "Don't print file letters and rank digits")

	// Diagnostics
	verbosity   = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	logFile     = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	profileMode = flag.String("profile", "", "Write a cpu or mem profile to the current directory")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Analysis.Workers = *workers
	applyDisplayFlags(cfg)
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.Unicode = *unicode
	cfg.Output.Shading = !*noShade
	cfg.Output.Coordinates = !*noCoords
}
