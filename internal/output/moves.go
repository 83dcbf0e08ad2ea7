package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveWriter writes space separated tokens with line length control.
type MoveWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewMoveWriter creates a new move writer.
func NewMoveWriter(w io.Writer, maxLineLength int) *MoveWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &MoveWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *MoveWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *MoveWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoves writes a numbered move list ("1. E2E4 E7E5 2. G1F3") wrapped
// at maxLineLength. first is the side that made the first move; a list
// starting with Black opens with "1...".
func WriteMoves(w io.Writer, moves []chess.Move, first chess.Colour, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	ow := NewMoveWriter(w, maxLineLength)

	number := 1
	white := first == chess.White
	if !white {
		ow.Write("1...")
	}
	for _, m := range moves {
		if white {
			ow.Write(fmt.Sprintf("%d.", number))
		}
		ow.Write(m.String())
		if !white {
			number++
		}
		white = !white
	}
	ow.NewLine()
}
