package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a source-destination square pair.
type Move struct {
	From Position
	To   Position
}

// NewMove creates a move between two squares.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// ParseMove parses four-character coordinate notation such as "E2E4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    s,
			Expected: "four characters",
			Got:      fmt.Sprintf("%d", len(s)),
		}
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", errors.ErrInvalidNotation, err)
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", errors.ErrInvalidNotation, err)
	}
	return Move{From: from, To: to}, nil
}

// MustParseMove is like ParseMove but panics on malformed input.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsNull returns true if the move does not change squares.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// String returns the move as "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// OutcomeKind classifies a validation result.
type OutcomeKind int

const (
	Invalid OutcomeKind = iota
	Simple
	Composite
)

// MaxRelocations bounds the length of a composite relocation sequence.
const MaxRelocations = 5

// Outcome is the result of validating a move. A Simple outcome's only
// relocation is the move itself; a Composite outcome carries the ordered
// relocations that realize it (castling, en passant).
type Outcome struct {
	Kind  OutcomeKind
	Move  Move
	Steps []Move
}

// InvalidOutcome rejects a move.
func InvalidOutcome(move Move) Outcome {
	return Outcome{Kind: Invalid, Move: move}
}

// SimpleOutcome accepts a move that relocates only the moving piece.
func SimpleOutcome(move Move) Outcome {
	return Outcome{Kind: Simple, Move: move}
}

// CompositeOutcome accepts a move realized by the given relocations, applied in order.
// An empty or over-long sequence is invalid.
func CompositeOutcome(move Move, steps ...Move) Outcome {
	if len(steps) == 0 || len(steps) > MaxRelocations {
		return InvalidOutcome(move)
	}
	return Outcome{Kind: Composite, Move: move, Steps: append([]Move(nil), steps...)}
}

// Valid returns true unless the outcome rejects the move.
func (o Outcome) Valid() bool {
	return o.Kind != Invalid
}

// Relocations returns the atomic relocations to apply, in order.
// Invalid outcomes have none.
func (o Outcome) Relocations() []Move {
	switch o.Kind {
	case Simple:
		return []Move{o.Move}
	case Composite:
		return o.Steps
	default:
		return nil
	}
}
