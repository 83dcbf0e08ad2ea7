package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Validate decides whether the piece on move.From may make the move.
// On top of the piece's own geometry it enforces that a move goes somewhere,
// never captures a piece of its own colour and never leaves the mover's
// essential pieces attacked. The returned outcome carries the relocations
// that realize the move.
func Validate(board *chess.Board, move chess.Move) chess.Outcome {
	if move.IsNull() || !move.From.Valid() || !move.To.Valid() {
		return chess.InvalidOutcome(move)
	}

	piece := board.At(move.From)
	if piece.IsEmpty() {
		return chess.InvalidOutcome(move)
	}
	if target := board.At(move.To); !target.IsEmpty() && target.Colour == piece.Colour {
		return chess.InvalidOutcome(move)
	}

	outcome := pieceGeometry(board, move, piece)
	if !outcome.Valid() {
		return outcome
	}

	if exposesEssential(board, outcome, piece.Colour) {
		return chess.InvalidOutcome(move)
	}
	return outcome
}

// IsValidMove reports whether Validate accepts the move.
func IsValidMove(board *chess.Board, move chess.Move) bool {
	return Validate(board, move).Valid()
}

// exposesEssential plays the relocations on a copy of the board and reports
// whether colour is in check after any relocation that moves one of its
// essential pieces, or after the last relocation.
func exposesEssential(board *chess.Board, outcome chess.Outcome, colour chess.Colour) bool {
	testBoard := board.Copy()
	steps := outcome.Relocations()

	for i, step := range steps {
		mover := testBoard.At(step.From)
		testBoard.Relocate(step)

		last := i == len(steps)-1
		movesEssential := mover.Essential() && mover.Colour == colour
		if (last || movesEssential) && InCheck(testBoard, colour) {
			return true
		}
	}
	return false
}

// attacks reports whether the piece on from could capture on to by its raw
// geometry. Self-check is deliberately not considered.
func attacks(board *chess.Board, from, to chess.Position) bool {
	if from == to {
		return false
	}
	attacker := board.At(from)
	if attacker.IsEmpty() {
		return false
	}
	if target := board.At(to); !target.IsEmpty() && target.Colour == attacker.Colour {
		return false
	}
	return pieceGeometry(board, chess.NewMove(from, to), attacker).Valid()
}
