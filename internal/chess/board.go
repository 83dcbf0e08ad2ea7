package chess

// Board is an 8x8 grid of squares plus the most recently executed move.
// It is a plain value: copying a Board copies every square.
type Board struct {
	// squares[rank][file]; the zero Piece marks an empty square.
	squares [BoardSize][BoardSize]Piece

	// The last move executed through the validated path, used for en passant.
	lastMove    Move
	hasLastMove bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = B(backRank[file])
		b.squares[1][file] = B(Pawn)
		b.squares[6][file] = W(Pawn)
		b.squares[7][file] = W(backRank[file])
	}
}

// At returns the piece on the given square, or the empty Piece.
// Off-board positions read as empty.
func (b *Board) At(p Position) Piece {
	if !p.Valid() {
		return Piece{}
	}
	return b.squares[p.Rank][p.File]
}

// Occupied returns true if a piece stands on the square.
func (b *Board) Occupied(p Position) bool {
	return !b.At(p).IsEmpty()
}

// Set places a piece on the square, replacing whatever was there.
func (b *Board) Set(p Position, piece Piece) {
	if p.Valid() {
		b.squares[p.Rank][p.File] = piece
	}
}

// Clear empties the square.
func (b *Board) Clear(p Position) {
	b.Set(p, Piece{})
}

// Relocate moves the piece on m.From to m.To, marking it as moved and
// capturing anything on m.To. A zero-length relocation changes nothing.
func (b *Board) Relocate(m Move) {
	if m.IsNull() || !m.From.Valid() || !m.To.Valid() {
		return
	}
	piece := b.squares[m.From.Rank][m.From.File]
	piece.Moved = true
	b.squares[m.To.Rank][m.To.File] = piece
	b.squares[m.From.Rank][m.From.File] = Piece{}
}

// LastMove returns the last executed move, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.hasLastMove
}

// SetLastMove records m as the last executed move.
func (b *Board) SetLastMove(m Move) {
	b.lastMove = m
	b.hasLastMove = true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns the positions, in row-major order, of pieces matching the predicate.
func (b *Board) Find(match func(Piece) bool) []Position {
	var found []Position
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			piece := b.squares[rank][file]
			if !piece.IsEmpty() && match(piece) {
				found = append(found, Position{Rank: rank, File: file})
			}
		}
	}
	return found
}

// PiecesOf returns the positions of every piece of the given colour.
func (b *Board) PiecesOf(colour Colour) []Position {
	return b.Find(func(p Piece) bool { return p.Colour == colour })
}

// EssentialsOf returns the positions of the given colour's essential pieces.
func (b *Board) EssentialsOf(colour Colour) []Position {
	return b.Find(func(p Piece) bool { return p.Colour == colour && p.Essential() })
}
