package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castle describes one castling option: fixed squares per colour and side.
type castle struct {
	king    chess.Position   // king's home square
	target  chess.Position   // king's destination
	transit chess.Position   // square the king crosses
	rook    chess.Position   // rook's home square
	rookTo  chess.Position   // rook's destination
	between []chess.Position // squares that must be empty
}

// castles holds the kingside and queenside options for each colour.
var castles = map[chess.Colour][2]castle{
	chess.White: {
		newCastle("E1", "G1", "F1", "H1", "F1", "F1", "G1"),
		newCastle("E1", "C1", "D1", "A1", "D1", "D1", "C1", "B1"),
	},
	chess.Black: {
		newCastle("E8", "G8", "F8", "H8", "F8", "F8", "G8"),
		newCastle("E8", "C8", "D8", "A8", "D8", "D8", "C8", "B8"),
	},
}

func newCastle(king, target, transit, rook, rookTo string, between ...string) castle {
	c := castle{
		king:    chess.MustParsePosition(king),
		target:  chess.MustParsePosition(target),
		transit: chess.MustParsePosition(transit),
		rook:    chess.MustParsePosition(rook),
		rookTo:  chess.MustParsePosition(rookTo),
	}
	for _, sq := range between {
		c.between = append(c.between, chess.MustParsePosition(sq))
	}
	return c
}

// kingGeometry allows a single step in any direction, or castling.
func kingGeometry(board *chess.Board, move chess.Move, piece chess.Piece) chess.Outcome {
	if !piece.Moved && !board.Occupied(move.To) {
		for _, c := range castles[piece.Colour] {
			if move.From != c.king || move.To != c.target {
				continue
			}
			return castleOutcome(board, move, piece.Colour, c)
		}
	}

	dRank, dFile := deltas(move)
	dRank, dFile = abs(dRank), abs(dFile)
	return outcomeOf(move, dRank < 2 && dFile < 2 && dRank+dFile <= 2)
}

// castleOutcome checks the rook and the path and returns the relocations.
// The first relocation is a zero-length probe on the king's square so the
// self-check guard rejects castling out of check; the king then crosses the
// transit square before the rook moves.
func castleOutcome(board *chess.Board, move chess.Move, colour chess.Colour, c castle) chess.Outcome {
	rook := board.At(c.rook)
	if rook.Kind != chess.Rook || rook.Colour != colour || rook.Moved {
		return chess.InvalidOutcome(move)
	}
	for _, sq := range c.between {
		if board.Occupied(sq) {
			return chess.InvalidOutcome(move)
		}
	}
	return chess.CompositeOutcome(move,
		chess.NewMove(c.king, c.king),
		chess.NewMove(c.king, c.transit),
		chess.NewMove(c.transit, c.target),
		chess.NewMove(c.rook, c.rookTo),
	)
}
