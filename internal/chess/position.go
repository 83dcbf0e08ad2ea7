package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board coordinate. Rank 0 is Black's home rank ("8") and
// file 0 is the 'A' file.
type Position struct {
	Rank int
	File int
}

// NewPosition creates a position from indices, failing if either is off the board.
func NewPosition(rank, file int) (Position, error) {
	p := Position{Rank: rank, File: file}
	if !p.Valid() {
		return Position{}, fmt.Errorf("rank %d, file %d: %w", rank, file, errors.ErrInvalidPosition)
	}
	return p, nil
}

// ParsePosition converts algebraic notation ("A1".."H8", case-insensitive file) to a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    s,
			Expected: "two characters",
		}
	}

	var file int
	switch c := s[0]; {
	case c >= 'A' && c <= 'H':
		file = int(c - 'A')
	case c >= 'a' && c <= 'h':
		file = int(c - 'a')
	default:
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    s,
			Column:   1,
			Expected: "file A-H",
			Got:      fmt.Sprintf("%q", c),
		}
	}

	c := s[1]
	if c < '1' || c > '8' {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", c),
		}
	}

	return Position{Rank: int('8' - c), File: file}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// Intended for fixed coordinates in tables and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid returns true if both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// String returns the algebraic notation, e.g. "E4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{byte('A' + p.File), byte('8' - p.Rank)})
}

// Compare orders positions rank-major: -1 if p sorts before q, +1 if after, 0 if equal.
func (p Position) Compare(q Position) int {
	switch {
	case p.Rank < q.Rank:
		return -1
	case p.Rank > q.Rank:
		return 1
	case p.File < q.File:
		return -1
	case p.File > q.File:
		return 1
	}
	return 0
}

// Offset returns the position shifted by the given rank and file deltas.
// The result may be off the board.
func (p Position) Offset(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// IsLight returns true if the square is a light square (A8 and H1 are light).
func (p Position) IsLight() bool {
	return (p.Rank+p.File)%2 == 0
}

// AllPositions returns every square in row-major order: rank 0 to 7, file 0 to 7.
func AllPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			positions = append(positions, Position{Rank: rank, File: file})
		}
	}
	return positions
}
