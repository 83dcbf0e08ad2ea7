package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const prompt = "enter move: "

// Console plays a single game read line by line from a stream.
type Console struct {
	cfg      *config.Config
	analyzer engine.Analyzer
	game     *session.Game
	out      io.Writer
	errOut   io.Writer
}

// NewConsole creates a console for game. Boards and prompts go to
// cfg.OutputFile, rejected input to errOut.
func NewConsole(cfg *config.Config, game *session.Game, errOut io.Writer) *Console {
	return &Console{
		cfg:      cfg,
		analyzer: engine.Analyzer{Workers: cfg.Analysis.Workers},
		game:     game,
		out:      cfg.OutputFile,
		errOut:   errOut,
	}
}

// Run reads four-character moves until the game ends or input runs out.
// Besides moves it understands "moves" (list the moves played), "fen" and
// "quit". It returns the state the game was left in.
func (c *Console) Run(in io.Reader) chess.State {
	if c.reportEnd() {
		return c.game.State
	}
	c.showBoard()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			fmt.Fprint(c.out, prompt)
			continue
		case "quit":
			return c.game.State
		case "moves":
			output.WriteMoves(c.out, c.game.Moves, c.firstMover(), 80)
			fmt.Fprint(c.out, prompt)
			continue
		case "fen":
			fmt.Fprintln(c.out, c.game.FEN())
			fmt.Fprint(c.out, prompt)
			continue
		}

		if _, err := c.game.Play(c.analyzer, input); err != nil {
			fmt.Fprintf(c.errOut, "ERR: %v\n", err)
			c.showBoard()
			continue
		}
		c.cfg.Logf(2, "ply %d: %s", c.game.Ply(), c.game.Moves[c.game.Ply()-1])

		if c.reportEnd() {
			return c.game.State
		}
		c.showBoard()
	}
	return c.game.State
}

// reportEnd announces a decided game and reports whether it is over.
func (c *Console) reportEnd() bool {
	switch c.game.State {
	case chess.Checkmate:
		fmt.Fprintln(c.out, "CHECKMATE!")
	case chess.Stalemate:
		fmt.Fprintln(c.out, "STALEMATE!")
	default:
		return false
	}
	c.cfg.Logf(1, "%s after %d plies", c.game.State, c.game.Ply())
	return true
}

func (c *Console) showBoard() {
	output.WriteBoard(c.out, c.game.Board, c.cfg.Output) //nolint:errcheck // terminal output
	fmt.Fprintf(c.out, "\n%s", prompt)
}

// firstMover is the side that made the first move of the game.
func (c *Console) firstMover() chess.Colour {
	if c.game.Ply()%2 == 0 {
		return c.game.ToMove
	}
	return c.game.ToMove.Opposite()
}
