// chess-server serves chess games over an HTTP JSON API.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/server"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var games *session.Manager
	if store != nil {
		defer store.Close()
		games = session.NewManager(cfg, store)
	} else {
		games = session.NewManager(cfg, nil)
	}
	srv := server.New(cfg, games)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		cfg.Logf(1, "shutting down")
		srv.Shutdown() //nolint:errcheck // exiting anyway
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// setupLogFile redirects diagnostics to the -log file.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// openStore opens the game store, or returns nil when persistence is off.
func openStore(cfg *config.Config) (*storage.Store, error) {
	if !cfg.Storage.Enabled() {
		return nil, nil
	}
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, errors.Wrap(err, "opening game store")
	}
	if cfg.Storage.InMemory {
		cfg.Logf(1, "games kept in memory")
	} else {
		cfg.Logf(1, "games stored in %s", cfg.Storage.Dir)
	}
	return store, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-server - chess games over HTTP

Usage: chess-server [options]

Routes:
  POST   /api/games                  start a game, optional {"fen": "..."}
  GET    /api/games                  list games
  GET    /api/games/:id              game snapshot
  DELETE /api/games/:id              delete a game
  POST   /api/games/:id/moves        play {"move": "E2E4"}
  GET    /api/games/:id/moves/:sq    legal destinations from a square
  GET    /api/games/:id/board        text board (?unicode=true)

Options:
`)
	flag.PrintDefaults()
}
