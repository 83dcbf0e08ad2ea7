package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove validates the move and, if it is legal, executes it on the board.
// It returns the state of the game for the opponent of the side that moved.
// A rejected move leaves the board untouched.
func ApplyMove(board *chess.Board, move chess.Move) (chess.State, error) {
	return ApplyMoveWith(Analyzer{}, board, move)
}

// ApplyMoveWith is ApplyMove using the given analyzer for terminal-state detection.
func ApplyMoveWith(analyzer Analyzer, board *chess.Board, move chess.Move) (chess.State, error) {
	piece := board.At(move.From)
	if piece.IsEmpty() {
		return chess.Ongoing, &errors.MoveError{Err: errors.ErrEmptySquare, Move: move.String()}
	}

	outcome := Validate(board, move)
	if !outcome.Valid() {
		return chess.Ongoing, &errors.MoveError{Err: errors.ErrIllegalMove, Move: move.String()}
	}

	execute(board, outcome)
	return analyzer.Classify(board, piece.Colour.Opposite()), nil
}

// execute performs the relocations of a validated outcome, promotes the piece
// on the destination if its rule says so, and records the move as given.
func execute(board *chess.Board, outcome chess.Outcome) {
	for _, step := range outcome.Relocations() {
		board.Relocate(step)
	}

	to := outcome.Move.To
	if arrived := board.At(to); !arrived.IsEmpty() {
		if kind, ok := arrived.Kind.Promotion(arrived.Colour, to); ok {
			arrived.Kind = kind
			board.Set(to, arrived)
		}
	}

	board.SetLastMove(outcome.Move)
}
