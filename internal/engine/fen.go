package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingLetters maps FEN castling letters to the castle they allow.
var castlingLetters = map[rune]struct {
	colour chess.Colour
	side   int // index into castles
}{
	'K': {chess.White, 0},
	'Q': {chess.White, 1},
	'k': {chess.Black, 0},
	'q': {chess.Black, 1},
}

// NewBoardFromFEN creates a board from a FEN string and returns it together
// with the side to move. Only the placement field is required. The castling
// and en passant fields are translated into moved flags and a last move so
// that the rules see the same rights; the clocks are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}
	if err := parseEnPassant(board, parts, toMove); err != nil {
		return nil, chess.White, err
	}
	markAdvancedPawns(board)

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is row 0 of the board.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.None || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Position{Rank: rank, File: file}, chess.NewPiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights marks every king and rook as moved unless the castling
// field keeps a right that needs it unmoved. A missing field keeps all rights
// the placement allows.
func parseCastlingRights(board *chess.Board, parts []string) error {
	field := "KQkq"
	if len(parts) >= 3 {
		field = parts[2]
	}

	keep := make(map[chess.Position]bool)
	if field != "-" {
		for _, c := range field {
			right, ok := castlingLetters[c]
			if !ok {
				return fmt.Errorf("invalid castling letter: %c: %w", c, errors.ErrInvalidFEN)
			}
			c := castles[right.colour][right.side]
			if board.At(c.king) != chess.NewPiece(right.colour, chess.King) ||
				board.At(c.rook) != chess.NewPiece(right.colour, chess.Rook) {
				continue
			}
			keep[c.king] = true
			keep[c.rook] = true
		}
	}

	for _, pos := range board.Find(func(p chess.Piece) bool { return p.Kind == chess.King || p.Kind == chess.Rook }) {
		if keep[pos] {
			continue
		}
		piece := board.At(pos)
		piece.Moved = true
		board.Set(pos, piece)
	}
	return nil
}

// parseEnPassant turns the en passant target square into the two-square push
// that created it, recorded as the board's last move.
func parseEnPassant(board *chess.Board, parts []string, toMove chess.Colour) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, err := chess.ParsePosition(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %w: %w", errors.ErrInvalidFEN, err)
	}

	pusher := toMove.Opposite()
	step := chess.PawnDirection(pusher)
	origin := target.Offset(-step, 0)
	landing := target.Offset(step, 0)

	if pawn := board.At(landing); pawn.Kind != chess.Pawn || pawn.Colour != pusher || board.Occupied(target) {
		return fmt.Errorf("no pawn passed %s: %w", strings.ToLower(target.String()), errors.ErrInvalidFEN)
	}

	pawn := board.At(landing)
	pawn.Moved = true
	board.Set(landing, pawn)
	board.SetLastMove(chess.NewMove(origin, landing))
	return nil
}

// markAdvancedPawns marks pawns away from their starting rank as moved, so
// they lose the double push.
func markAdvancedPawns(board *chess.Board) {
	for _, pos := range board.Find(func(p chess.Piece) bool { return p.Kind == chess.Pawn }) {
		pawn := board.At(pos)
		if pos.Rank != pawnHomeRank(pawn.Colour) {
			pawn.Moved = true
			board.Set(pos, pawn)
		}
	}
}

// pawnHomeRank is the row a colour's pawns start on.
func pawnHomeRank(colour chess.Colour) int {
	return chess.PromotionRank(colour.Opposite()) - chess.PawnDirection(colour.Opposite())
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from unmoved kings and rooks on their home squares and the en passant
// square from the last move.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Position{Rank: rank, File: file})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Glyph())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, letter := range "KQkq" {
		right := castlingLetters[letter]
		c := castles[right.colour][right.side]
		king, rook := board.At(c.king), board.At(c.rook)
		if king == chess.NewPiece(right.colour, chess.King) && rook == chess.NewPiece(right.colour, chess.Rook) {
			sb.WriteRune(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square skipped by the last move if it was a
// two-square pawn push.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	last, ok := board.LastMove()
	pawn := board.At(last.To)
	if !ok || pawn.Kind != chess.Pawn || last.From.File != last.To.File || abs(last.From.Rank-last.To.Rank) != 2 {
		sb.WriteByte('-')
		return
	}
	skipped := chess.Position{Rank: (last.From.Rank + last.To.Rank) / 2, File: last.To.File}
	sb.WriteString(strings.ToLower(skipped.String()))
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
