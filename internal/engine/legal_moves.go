package engine

import (
	"iter"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LegalMoves yields every validated move for the piece on from, probing
// destinations in row-major order (rank 0 to 7, file 0 to 7). Destinations
// are validated lazily as the sequence is consumed; the board is never
// modified. An empty square yields nothing.
func LegalMoves(board *chess.Board, from chess.Position) iter.Seq[chess.Outcome] {
	return func(yield func(chess.Outcome) bool) {
		if !board.Occupied(from) {
			return
		}
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				to := chess.Position{Rank: rank, File: file}
				outcome := Validate(board, chess.NewMove(from, to))
				if !outcome.Valid() {
					continue
				}
				if !yield(outcome) {
					return
				}
			}
		}
	}
}

// Destinations collects the destination squares of the legal moves from a square.
func Destinations(board *chess.Board, from chess.Position) []chess.Position {
	var targets []chess.Position
	for outcome := range LegalMoves(board, from) {
		targets = append(targets, outcome.Move.To)
	}
	return targets
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.PiecesOf(colour) {
		if hasLegalMovesForPiece(board, from) {
			return true
		}
	}
	return false
}

// hasLegalMovesForPiece stops at the first legal move from the square.
func hasLegalMovesForPiece(board *chess.Board, from chess.Position) bool {
	for range LegalMoves(board, from) {
		return true
	}
	return false
}

// escapesCheck plays an outcome on a copy of the board and reports whether
// colour is out of check afterwards.
func escapesCheck(board *chess.Board, outcome chess.Outcome, colour chess.Colour) bool {
	testBoard := board.Copy()
	for _, step := range outcome.Relocations() {
		testBoard.Relocate(step)
	}
	return !InCheck(testBoard, colour)
}

// hasEscapeForPiece reports whether any legal move from the square gets
// colour out of check.
func hasEscapeForPiece(board *chess.Board, from chess.Position, colour chess.Colour) bool {
	for outcome := range LegalMoves(board, from) {
		if escapesCheck(board, outcome, colour) {
			return true
		}
	}
	return false
}
