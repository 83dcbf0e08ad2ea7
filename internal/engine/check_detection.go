package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if any essential piece of the given colour is attacked.
// A colour with no essential piece on the board is never in check.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	essentials := board.EssentialsOf(colour)
	if len(essentials) == 0 {
		return false
	}

	attackers := board.PiecesOf(colour.Opposite())
	for _, target := range essentials {
		for _, from := range attackers {
			if attacks(board, from, target) {
				return true
			}
		}
	}
	return false
}
