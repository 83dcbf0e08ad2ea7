package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// IsCheckmate returns true if colour is in check and no legal move of any of
// its pieces gets it out.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return Analyzer{}.IsCheckmate(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return Analyzer{}.IsStalemate(board, colour)
}

// Classify returns the state of the game from colour's point of view.
func Classify(board *chess.Board, colour chess.Colour) chess.State {
	return Analyzer{}.Classify(board, colour)
}

// Analyzer runs the terminal-state searches. With Workers greater than one
// each origin square is probed on its own goroutine; results are OR-ed, so
// the answer does not depend on the worker count.
type Analyzer struct {
	Workers int
}

// IsCheckmate returns true if colour is checkmated.
func (a Analyzer) IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !InCheck(board, colour) {
		return false
	}
	return !a.anyPiece(board, colour, func(b *chess.Board, from chess.Position) bool {
		return hasEscapeForPiece(b, from, colour)
	})
}

// IsStalemate returns true if colour is stalemated.
func (a Analyzer) IsStalemate(board *chess.Board, colour chess.Colour) bool {
	if InCheck(board, colour) {
		return false
	}
	return !a.anyPiece(board, colour, hasLegalMovesForPiece)
}

// Classify checks for checkmate first, then stalemate.
func (a Analyzer) Classify(board *chess.Board, colour chess.Colour) chess.State {
	switch {
	case a.IsCheckmate(board, colour):
		return chess.Checkmate
	case a.IsStalemate(board, colour):
		return chess.Stalemate
	default:
		return chess.Ongoing
	}
}

// anyPiece reports whether probe holds for at least one of colour's pieces.
func (a Analyzer) anyPiece(board *chess.Board, colour chess.Colour, probe func(*chess.Board, chess.Position) bool) bool {
	origins := board.PiecesOf(colour)

	if a.Workers <= 1 || len(origins) < 2 {
		for _, from := range origins {
			if probe(board, from) {
				return true
			}
		}
		return false
	}

	items := make([]worker.WorkItem, len(origins))
	for i, from := range origins {
		items[i] = worker.WorkItem{Board: board, From: from, Colour: colour, Index: i}
	}

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			From:  item.From,
			Found: probe(item.Board, item.From),
		}
	}, worker.WithWorkers(a.Workers), worker.WithBufferSize(len(items)))

	return pool.AnyFound(items)
}
