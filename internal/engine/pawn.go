package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnGeometry handles pushes, captures and en passant.
func pawnGeometry(board *chess.Board, move chess.Move, piece chess.Piece) chess.Outcome {
	from, to := move.From, move.To
	step := chess.PawnDirection(piece.Colour)
	dRank, dFile := deltas(move)

	// Double push from an unmoved pawn through an empty square.
	if dFile == 0 && dRank == 2*step && !piece.Moved {
		middle := from.Offset(step, 0)
		return outcomeOf(move, !board.Occupied(middle) && !board.Occupied(to))
	}

	// Single push onto an empty square.
	if dFile == 0 && dRank == step {
		return outcomeOf(move, !board.Occupied(to))
	}

	if abs(dFile) == 1 && dRank == step {
		if board.Occupied(to) {
			return chess.SimpleOutcome(move)
		}
		if captured, ok := enPassantVictim(board, move, piece.Colour); ok {
			return chess.CompositeOutcome(move,
				chess.NewMove(captured, to),
				chess.NewMove(from, to),
			)
		}
	}

	return chess.InvalidOutcome(move)
}

// enPassantVictim returns the square of the enemy pawn that can be taken en
// passant by this diagonal move. The last move must have been that pawn's
// two-square advance, landing beside the capturing pawn on the file it moves to.
func enPassantVictim(board *chess.Board, move chess.Move, colour chess.Colour) (chess.Position, bool) {
	last, ok := board.LastMove()
	if !ok {
		return chess.Position{}, false
	}

	victim := board.At(last.To)
	if victim.Kind != chess.Pawn || victim.Colour == colour {
		return chess.Position{}, false
	}
	if last.From.File != last.To.File || abs(last.From.Rank-last.To.Rank) != 2 {
		return chess.Position{}, false
	}
	if move.From.Rank != last.To.Rank || move.To.File != last.To.File {
		return chess.Position{}, false
	}
	return last.To, true
}
