package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isDiagonalClear checks if every square strictly between from and to on a
// diagonal is empty. The caller guarantees |dRank| == |dFile|.
func isDiagonalClear(board *chess.Board, from, to chess.Position) bool {
	return isLineClear(board, from, to)
}

// isStraightClear checks if every square strictly between from and to on a
// rank or file is empty. The caller guarantees one delta is zero.
func isStraightClear(board *chess.Board, from, to chess.Position) bool {
	return isLineClear(board, from, to)
}

// isLineClear walks from one square towards the other, one step at a time,
// and stops on the square before the destination.
func isLineClear(board *chess.Board, from, to chess.Position) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	pos := from.Offset(rankDir, fileDir)
	for pos != to {
		if !pos.Valid() || board.Occupied(pos) {
			return false
		}
		pos = pos.Offset(rankDir, fileDir)
	}
	return true
}

// deltas returns the rank and file distance of a move.
func deltas(move chess.Move) (dRank, dFile int) {
	return move.To.Rank - move.From.Rank, move.To.File - move.From.File
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
