// Package output renders boards and game sessions as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// WriteBoard draws the board as a text grid, rank 8 at the top. Pieces are
// shown by letter (uppercase White) or, with cfg.Unicode, by chess symbol.
// With cfg.Shading, empty dark squares show '#'.
func WriteBoard(w io.Writer, board *chess.Board, cfg *config.OutputConfig) error {
	var sb strings.Builder

	if cfg.Coordinates {
		writeFiles(&sb)
		writeRule(&sb)
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		label := chess.BoardSize - rank
		if cfg.Coordinates {
			fmt.Fprintf(&sb, " %d |", label)
		}
		for file := 0; file < chess.BoardSize; file++ {
			p := chess.Position{Rank: rank, File: file}
			sb.WriteByte(' ')
			sb.WriteRune(squareRune(board.At(p), p, cfg))
			sb.WriteByte(' ')
		}
		if cfg.Coordinates {
			fmt.Fprintf(&sb, "| %d", label)
		}
		sb.WriteByte('\n')
	}
	if cfg.Coordinates {
		writeRule(&sb)
		writeFiles(&sb)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// BoardString is WriteBoard into a string.
func BoardString(board *chess.Board, cfg *config.OutputConfig) string {
	var sb strings.Builder
	WriteBoard(&sb, board, cfg) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}

func squareRune(piece chess.Piece, p chess.Position, cfg *config.OutputConfig) rune {
	switch {
	case !piece.IsEmpty() && cfg.Unicode:
		return piece.Symbol()
	case !piece.IsEmpty():
		return rune(piece.Glyph())
	case cfg.Shading && !p.IsLight():
		return '#'
	default:
		return ' '
	}
}

func writeFiles(sb *strings.Builder) {
	sb.WriteString("   |")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(sb, " %c ", 'a'+file)
	}
	sb.WriteString("|\n")
}

func writeRule(sb *strings.Builder) {
	sb.WriteString(" --+")
	sb.WriteString(strings.Repeat("---", chess.BoardSize))
	sb.WriteString("+--\n")
}
