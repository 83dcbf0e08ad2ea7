package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Pieces maps squares in algebraic notation ("E1") to the piece placed there.
type Pieces map[string]chess.Piece

// MustPosition parses a square and calls t.Fatal if it is malformed.
func MustPosition(t testing.TB, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("MustPosition(%q): %v", s, err)
	}
	return p
}

// MustMove parses a four-character move and calls t.Fatal if it is malformed.
func MustMove(t testing.TB, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("MustMove(%q): %v", s, err)
	}
	return m
}

// MustBoard builds an otherwise empty board holding the given pieces.
// Pieces are unmoved unless their Moved field is set.
func MustBoard(t testing.TB, pieces Pieces) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for square, piece := range pieces {
		Place(t, board, square, piece)
	}
	return board
}

// Place puts a piece on a square of an existing board.
func Place(t testing.TB, board *chess.Board, square string, piece chess.Piece) {
	t.Helper()
	board.Set(MustPosition(t, square), piece)
}

// Moved returns a copy of the piece with its moved flag set.
func Moved(p chess.Piece) chess.Piece {
	p.Moved = true
	return p
}

// Squares parses a list of squares, preserving order.
func Squares(t testing.TB, squares ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, 0, len(squares))
	for _, s := range squares {
		out = append(out, MustPosition(t, s))
	}
	return out
}
