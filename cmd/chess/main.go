// chess plays a game of chess on the terminal: it prints the board, reads
// moves such as "E2E4" from standard input and announces checkmate or
// stalemate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run())
}

// run is main without os.Exit, so deferred profile writes happen.
func run() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := setupLogFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	prof, err := startProfile(*profileMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if prof != nil {
		defer prof.Stop()
	}

	game, err := session.NewGame("", *startFEN, engine.Analyzer{Workers: cfg.Analysis.Workers})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	NewConsole(cfg, game, os.Stderr).Run(os.Stdin)
	return 0
}

// setupLogFile redirects diagnostics to the -log file.
func setupLogFile(cfg *config.Config) error {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return errors.Wrapf(err, "creating log file %s", *logFile)
	}
	cfg.LogFile = file
	return nil
}

// startProfile starts the profiler selected by -profile, if any.
func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem): %w", mode, errors.ErrInvalidConfig)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess - play chess on the terminal

Usage: chess [options]

Enter moves as two squares, e.g. E2E4. Castle by moving the king two
squares (E1G1). Other commands: moves, fen, quit.

Options:
`)
	flag.PrintDefaults()
}
