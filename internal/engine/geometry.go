// Package engine provides chess move validation, check detection and
// board manipulation on top of the chess value types.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// geometryFunc decides whether a piece may make a move by its own movement
// rules alone. Null moves, same-colour captures and self-check are handled by
// Validate, not here.
type geometryFunc func(board *chess.Board, move chess.Move, piece chess.Piece) chess.Outcome

// geometry is the per-kind rule table.
var geometry [chess.NumKinds]geometryFunc

func init() {
	geometry = [chess.NumKinds]geometryFunc{
		chess.Pawn:   pawnGeometry,
		chess.Knight: knightGeometry,
		chess.Bishop: bishopGeometry,
		chess.Rook:   rookGeometry,
		chess.Queen:  queenGeometry,
		chess.King:   kingGeometry,
	}
}

// pieceGeometry dispatches to the rule for the piece's kind.
func pieceGeometry(board *chess.Board, move chess.Move, piece chess.Piece) chess.Outcome {
	if piece.Kind <= chess.None || piece.Kind >= chess.NumKinds {
		return chess.InvalidOutcome(move)
	}
	return geometry[piece.Kind](board, move, piece)
}

// outcomeOf converts a plain yes/no rule into an outcome.
func outcomeOf(move chess.Move, ok bool) chess.Outcome {
	if ok {
		return chess.SimpleOutcome(move)
	}
	return chess.InvalidOutcome(move)
}

func rookGeometry(board *chess.Board, move chess.Move, _ chess.Piece) chess.Outcome {
	return outcomeOf(move, rookReaches(board, move))
}

func bishopGeometry(board *chess.Board, move chess.Move, _ chess.Piece) chess.Outcome {
	return outcomeOf(move, bishopReaches(board, move))
}

func queenGeometry(board *chess.Board, move chess.Move, _ chess.Piece) chess.Outcome {
	return outcomeOf(move, rookReaches(board, move) || bishopReaches(board, move))
}

func knightGeometry(_ *chess.Board, move chess.Move, _ chess.Piece) chess.Outcome {
	dRank, dFile := deltas(move)
	dRank, dFile = abs(dRank), abs(dFile)
	return outcomeOf(move, dRank < 3 && dFile < 3 && dRank+dFile == 3)
}

// rookReaches reports a pure rank or file move with nothing in between.
func rookReaches(board *chess.Board, move chess.Move) bool {
	dRank, dFile := deltas(move)
	if (dRank == 0) == (dFile == 0) {
		return false
	}
	return isStraightClear(board, move.From, move.To)
}

// bishopReaches reports a pure diagonal move with nothing in between.
func bishopReaches(board *chess.Board, move chess.Move) bool {
	dRank, dFile := deltas(move)
	if dRank == 0 || abs(dRank) != abs(dFile) {
		return false
	}
	return isDiagonalClear(board, move.From, move.To)
}
