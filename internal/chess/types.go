// Package chess provides core chess types: colours, pieces, board coordinates,
// moves, validation outcomes and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the rank step a pawn of this colour moves by:
// -1 for White (towards rank 0), +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Kind represents a chess piece type. The zero value None marks an empty square.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// kindInfo holds the attributes shared by every piece of a kind.
type kindInfo struct {
	name      string
	letter    byte
	symbols   [2]rune // indexed by Colour
	essential bool
	promotion func(Colour, Position) (Kind, bool)
}

var kindTable = [NumKinds]kindInfo{
	None:   {name: "None", letter: ' ', symbols: [2]rune{' ', ' '}},
	Pawn:   {name: "Pawn", letter: 'P', symbols: [2]rune{'♟', '♙'}, promotion: pawnPromotion},
	Knight: {name: "Knight", letter: 'N', symbols: [2]rune{'♞', '♘'}},
	Bishop: {name: "Bishop", letter: 'B', symbols: [2]rune{'♝', '♗'}},
	Rook:   {name: "Rook", letter: 'R', symbols: [2]rune{'♜', '♖'}},
	Queen:  {name: "Queen", letter: 'Q', symbols: [2]rune{'♛', '♕'}},
	King:   {name: "King", letter: 'K', symbols: [2]rune{'♚', '♔'}, essential: true},
}

// pawnPromotion turns a pawn reaching the far rank for its colour into a queen.
func pawnPromotion(colour Colour, pos Position) (Kind, bool) {
	if pos.Rank != PromotionRank(colour) {
		return None, false
	}
	return Queen, true
}

// PromotionRank returns the rank on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

func (k Kind) valid() bool {
	return k > None && k < NumKinds
}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= None && k < NumKinds {
		return kindTable[k].name
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k >= None && k < NumKinds {
		return kindTable[k].letter
	}
	return '?'
}

// Essential reports whether losing a piece of this kind loses the game.
func (k Kind) Essential() bool {
	return k.valid() && kindTable[k].essential
}

// Promotion returns the kind a piece of this kind turns into on arriving at pos,
// or false if the kind does not promote there.
func (k Kind) Promotion(colour Colour, pos Position) (Kind, bool) {
	if !k.valid() || kindTable[k].promotion == nil {
		return None, false
	}
	return kindTable[k].promotion(colour, pos)
}

// KindFromLetter converts a piece letter (either case) to its kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return None
	}
}

// Piece is a piece standing on the board. Kind and Colour identify the variant;
// Moved is the only per-instance state.
type Piece struct {
	Kind   Kind
	Colour Colour
	Moved  bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty returns true if p is the zero piece (no piece).
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Essential reports whether p is a king.
func (p Piece) Essential() bool {
	return p.Kind.Essential()
}

// Glyph returns the display letter: uppercase for White, lowercase for Black.
func (p Piece) Glyph() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Symbol returns the Unicode chess symbol for p.
func (p Piece) Symbol() rune {
	if !p.Kind.valid() {
		return ' '
	}
	return kindTable[p.Kind].symbols[p.Colour]
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// State is the game state after a move.
type State int

const (
	Ongoing State = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// BoardSize is the number of ranks and files.
const BoardSize = 8
