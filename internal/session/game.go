// Package session tracks games in progress: the board, whose turn it is,
// the moves played so far and whether the game has ended.
//
// The rules engine itself has no notion of turns; a Game adds turn order
// on top of engine.ApplyMove and refuses moves once the game is decided.
package session

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// Game is a single game session.
type Game struct {
	ID       string
	Board    *chess.Board
	ToMove   chess.Colour
	State    chess.State
	Moves    []chess.Move
	StartFEN string
	Created  time.Time
	Updated  time.Time
}

// NewGame starts a game from a FEN position, or from the initial position
// when fen is empty. A position that is already decided starts in its
// terminal state.
func NewGame(id, fen string, analyzer engine.Analyzer) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Game{
		ID:       id,
		Board:    board,
		ToMove:   toMove,
		State:    analyzer.Classify(board, toMove),
		StartFEN: fen,
		Created:  now,
		Updated:  now,
	}, nil
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.Moves)
}

// Play parses a four-character move and plays it for the side to move.
// Errors carry the game id, ply and move text; the underlying sentinel is
// one of ErrGameOver, ErrInvalidNotation, ErrWrongTurn, ErrEmptySquare or
// ErrIllegalMove. A rejected move changes nothing.
func (g *Game) Play(analyzer engine.Analyzer, notation string) (chess.State, error) {
	fail := func(err error) error {
		return &errors.MoveError{Err: err, GameID: g.ID, Ply: g.Ply() + 1, Move: notation}
	}

	if g.State.Terminal() {
		return g.State, fail(fmt.Errorf("%s: %w", g.State, errors.ErrGameOver))
	}

	move, err := chess.ParseMove(notation)
	if err != nil {
		return g.State, fail(err)
	}

	if piece := g.Board.At(move.From); !piece.IsEmpty() && piece.Colour != g.ToMove {
		return g.State, fail(fmt.Errorf("%s to move: %w", g.ToMove, errors.ErrWrongTurn))
	}

	state, err := engine.ApplyMoveWith(analyzer, g.Board, move)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			err = moveErr.Err
		}
		return g.State, fail(err)
	}

	g.Moves = append(g.Moves, move)
	g.ToMove = g.ToMove.Opposite()
	g.State = state
	g.Updated = time.Now()
	return state, nil
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(g.Board, g.ToMove)
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.Board, g.ToMove)
}

// Hash fingerprints the current position including the side to move.
func (g *Game) Hash() uint64 {
	return hashing.PositionHash(g.Board, g.ToMove)
}

// Clone returns a deep copy safe to read while the original keeps playing.
func (g *Game) Clone() *Game {
	c := *g
	c.Board = g.Board.Copy()
	c.Moves = append([]chess.Move(nil), g.Moves...)
	return &c
}

// Record converts the game to its persisted form.
func (g *Game) Record() storage.Record {
	moves := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		moves[i] = m.String()
	}
	return storage.Record{
		ID:           g.ID,
		StartFEN:     g.StartFEN,
		Moves:        moves,
		MovesHash:    hashing.HashMoves(g.Moves),
		PositionHash: g.Hash(),
		Created:      g.Created,
		Updated:      g.Updated,
	}
}

// Restore rebuilds a game by replaying a record from its starting position.
// A record that does not replay, or replays to a different position than
// the one recorded, yields ErrCorruptRecord.
func Restore(rec storage.Record, analyzer engine.Analyzer) (*Game, error) {
	g, err := NewGame(rec.ID, rec.StartFEN, analyzer)
	if err != nil {
		return nil, fmt.Errorf("game %s: start position: %v: %w", rec.ID, err, errors.ErrCorruptRecord)
	}

	for _, m := range rec.Moves {
		if _, err := g.Play(analyzer, m); err != nil {
			return nil, fmt.Errorf("replay: %v: %w", err, errors.ErrCorruptRecord)
		}
	}

	if hashing.HashMoves(g.Moves) != rec.MovesHash {
		return nil, fmt.Errorf("game %s: move list hash mismatch: %w", rec.ID, errors.ErrCorruptRecord)
	}
	if g.Hash() != rec.PositionHash {
		return nil, fmt.Errorf("game %s: position hash mismatch: %w", rec.ID, errors.ErrCorruptRecord)
	}

	g.Created = rec.Created
	g.Updated = rec.Updated
	return g, nil
}
