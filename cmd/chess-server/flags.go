// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// HTTP
	addr    = flag.String("addr", ":8080", "Listen address")
	origins = flag.String("origins", "*", "Allowed CORS origins, comma separated")

	// Persistence
	dataDir  = flag.String("data", "", "Persist games in this directory (default: not persisted)")
	inMemory = flag.Bool("inmemory", false, "Use an in-memory game store")

	// Analysis
	workers = flag.Int("workers", 1, "Goroutines used for checkmate and stalemate detection")

	// Diagnostics
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 requests and game events, 2 every move")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Analysis.Workers = *workers
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Storage.Dir = *dataDir
	cfg.Storage.InMemory = *inMemory
}
