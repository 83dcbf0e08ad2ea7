// Package hashing fingerprints board positions and move sequences.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// squareBytes is one byte per square.
const squareBytes = chess.BoardSize * chess.BoardSize

// PositionHash fingerprints everything the rules look at: every square with
// its moved flag, the side to move and the last move. Two boards with equal
// hashes accept the same moves.
func PositionHash(board *chess.Board, toMove chess.Colour) uint64 {
	var buf [squareBytes + 1 + 5]byte
	encodeSquares(buf[:squareBytes], board)

	buf[squareBytes] = byte(toMove)
	if last, ok := board.LastMove(); ok {
		buf[squareBytes+1] = 1
		buf[squareBytes+2] = byte(last.From.Rank)
		buf[squareBytes+3] = byte(last.From.File)
		buf[squareBytes+4] = byte(last.To.Rank)
		buf[squareBytes+5] = byte(last.To.File)
	}
	return xxhash.Sum64(buf[:])
}

// HashMoves fingerprints a move sequence.
func HashMoves(moves []chess.Move) uint64 {
	d := xxhash.New()
	for _, m := range moves {
		d.Write([]byte{
			byte(m.From.Rank), byte(m.From.File),
			byte(m.To.Rank), byte(m.To.File),
		})
	}
	return d.Sum64()
}

// encodeSquares packs kind, colour and moved flag of every square.
func encodeSquares(dst []byte, board *chess.Board) {
	for i, p := range chess.AllPositions() {
		piece := board.At(p)
		b := byte(piece.Kind) | byte(piece.Colour)<<3
		if piece.Moved {
			b |= 1 << 4
		}
		dst[i] = b
	}
}
