package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestApplyMove_Simple(t *testing.T) {
	board := NewInitialBoard()

	state, err := ApplyMove(board, testutil.MustMove(t, "E2E4"))
	if err != nil {
		t.Fatalf("ApplyMove(E2E4) failed: %v", err)
	}
	if state != chess.Ongoing {
		t.Errorf("ApplyMove(E2E4) = %v, want %v", state, chess.Ongoing)
	}

	testutil.AssertEqual(t, board.At(testutil.MustPosition(t, "E2")), chess.Piece{})
	testutil.AssertEqual(t, board.At(testutil.MustPosition(t, "E4")), testutil.Moved(chess.W(chess.Pawn)))

	last, ok := board.LastMove()
	testutil.AssertTrue(t, ok, "last move recorded")
	testutil.AssertEqual(t, last, testutil.MustMove(t, "E2E4"))
}

func TestApplyMove_Capture(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{
		"E1": chess.W(chess.King),
		"D4": chess.W(chess.Rook),
		"D7": chess.B(chess.Knight),
		"E8": chess.B(chess.King),
	})

	if _, err := ApplyMove(board, testutil.MustMove(t, "D4D7")); err != nil {
		t.Fatalf("ApplyMove(D4D7) failed: %v", err)
	}
	testutil.AssertEqual(t, board.At(testutil.MustPosition(t, "D7")), testutil.Moved(chess.W(chess.Rook)))
	testutil.AssertEqual(t, len(board.PiecesOf(chess.Black)), 1)
}

func TestApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		wantErr error
	}{
		{"empty square", "E4E5", chesserrors.ErrEmptySquare},
		{"illegal geometry", "E2E5", chesserrors.ErrIllegalMove},
		{"own piece on target", "A1A2", chesserrors.ErrIllegalMove},
		{"knight blocked by own pawn", "G1E2", chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			_, err := ApplyMove(board, testutil.MustMove(t, tt.move))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyMove(%s) error = %v, want %v", tt.move, err, tt.wantErr)
			}

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("ApplyMove(%s) error is %T, want *MoveError", tt.move, err)
			}
			testutil.AssertEqual(t, moveErr.Move, tt.move)
		})
	}
}

func TestApplyMove_RejectionLeavesBoardUnchanged(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{
		"E1": chess.W(chess.King),
		"E2": chess.W(chess.Bishop),
		"H1": chess.W(chess.Rook),
		"E8": chess.B(chess.Rook),
		"C7": chess.B(chess.Pawn),
	})
	if _, err := ApplyMove(board, testutil.MustMove(t, "C7C5")); err != nil {
		t.Fatalf("ApplyMove(C7C5) failed: %v", err)
	}
	before := board.Copy()

	for _, m := range []string{"E2D3", "E1C1", "A1A2", "H1H1", "C5C3", "E1E3"} {
		if _, err := ApplyMove(board, testutil.MustMove(t, m)); err == nil {
			t.Errorf("ApplyMove(%s) succeeded, want error", m)
		}
		testutil.AssertBoardEqual(t, board, before, "after rejected %s", m)
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name  string
		move  string
		king  string
		rook  string
		empty []string
	}{
		{"white kingside", "E1G1", "G1", "F1", []string{"E1", "H1"}},
		{"white queenside", "E1C1", "C1", "D1", []string{"E1", "A1", "B1"}},
		{"black kingside", "E8G8", "G8", "F8", []string{"E8", "H8"}},
		{"black queenside", "E8C8", "C8", "D8", []string{"E8", "A8", "B8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			if err != nil {
				t.Fatalf("NewBoardFromFEN() failed: %v", err)
			}
			move := testutil.MustMove(t, tt.move)
			colour := board.At(move.From).Colour

			if _, err := ApplyMove(board, move); err != nil {
				t.Fatalf("ApplyMove(%s) failed: %v", tt.move, err)
			}

			testutil.AssertEqual(t, board.At(testutil.MustPosition(t, tt.king)), testutil.Moved(chess.NewPiece(colour, chess.King)))
			testutil.AssertEqual(t, board.At(testutil.MustPosition(t, tt.rook)), testutil.Moved(chess.NewPiece(colour, chess.Rook)))
			for _, sq := range tt.empty {
				testutil.AssertFalse(t, board.Occupied(testutil.MustPosition(t, sq)), "%s should be empty", sq)
			}

			last, _ := board.LastMove()
			testutil.AssertEqual(t, last, move, "last move is the king's move as given")
		})
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{
		"B5": testutil.Moved(chess.W(chess.Pawn)),
		"C7": chess.B(chess.Pawn),
	})
	for _, m := range []string{"C7C5", "B5C6"} {
		if _, err := ApplyMove(board, testutil.MustMove(t, m)); err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", m, err)
		}
	}

	testutil.AssertFalse(t, board.Occupied(testutil.MustPosition(t, "B5")), "B5 empty")
	testutil.AssertFalse(t, board.Occupied(testutil.MustPosition(t, "C5")), "captured pawn removed")
	testutil.AssertEqual(t, board.At(testutil.MustPosition(t, "C6")), testutil.Moved(chess.W(chess.Pawn)))
	testutil.AssertEqual(t, len(board.PiecesOf(chess.Black)), 0)
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name   string
		pieces testutil.Pieces
		move   string
		square string
		want   chess.Piece
	}{
		{
			name: "white push",
			pieces: testutil.Pieces{
				"B7": testutil.Moved(chess.W(chess.Pawn)),
				"A1": chess.W(chess.King),
				"H1": chess.B(chess.King),
			},
			move:   "B7B8",
			square: "B8",
			want:   testutil.Moved(chess.W(chess.Queen)),
		},
		{
			name: "white capture",
			pieces: testutil.Pieces{
				"B7": testutil.Moved(chess.W(chess.Pawn)),
				"C8": chess.B(chess.Rook),
				"A1": chess.W(chess.King),
				"H1": chess.B(chess.King),
			},
			move:   "B7C8",
			square: "C8",
			want:   testutil.Moved(chess.W(chess.Queen)),
		},
		{
			name: "black push",
			pieces: testutil.Pieces{
				"G2": testutil.Moved(chess.B(chess.Pawn)),
				"A8": chess.W(chess.King),
				"H8": chess.B(chess.King),
			},
			move:   "G2G1",
			square: "G1",
			want:   testutil.Moved(chess.B(chess.Queen)),
		},
		{
			name: "no promotion short of the last rank",
			pieces: testutil.Pieces{
				"B6": testutil.Moved(chess.W(chess.Pawn)),
				"A1": chess.W(chess.King),
				"H1": chess.B(chess.King),
			},
			move:   "B6B7",
			square: "B7",
			want:   testutil.Moved(chess.W(chess.Pawn)),
		},
		{
			name: "rook on the last rank stays a rook",
			pieces: testutil.Pieces{
				"B7": chess.W(chess.Rook),
				"A1": chess.W(chess.King),
				"H1": chess.B(chess.King),
			},
			move:   "B7B8",
			square: "B8",
			want:   testutil.Moved(chess.W(chess.Rook)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.pieces)
			if _, err := ApplyMove(board, testutil.MustMove(t, tt.move)); err != nil {
				t.Fatalf("ApplyMove(%s) failed: %v", tt.move, err)
			}
			testutil.AssertEqual(t, board.At(testutil.MustPosition(t, tt.square)), tt.want)
		})
	}
}

func TestApplyMove_Checkmate(t *testing.T) {
	pieces := testutil.Pieces{
		"G1": testutil.Moved(chess.W(chess.King)),
		"A1": testutil.Moved(chess.W(chess.Rook)),
		"H8": testutil.Moved(chess.B(chess.King)),
		"G7": chess.B(chess.Pawn),
		"H7": chess.B(chess.Pawn),
	}

	t.Run("back rank mate", func(t *testing.T) {
		board := testutil.MustBoard(t, pieces)
		state, err := ApplyMove(board, testutil.MustMove(t, "A1A8"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, state, chess.Checkmate)
	})

	t.Run("escape square available", func(t *testing.T) {
		board := testutil.MustBoard(t, pieces)
		board.Clear(testutil.MustPosition(t, "G7"))
		state, err := ApplyMove(board, testutil.MustMove(t, "A1A8"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, state, chess.Ongoing)
	})

	t.Run("parallel analyzer agrees", func(t *testing.T) {
		board := testutil.MustBoard(t, pieces)
		state, err := ApplyMoveWith(Analyzer{Workers: 4}, board, testutil.MustMove(t, "A1A8"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, state, chess.Checkmate)
	})
}

func TestApplyMove_Stalemate(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{
		"E1": testutil.Moved(chess.W(chess.King)),
		"C1": chess.W(chess.Queen),
		"A8": testutil.Moved(chess.B(chess.King)),
	})

	state, err := ApplyMove(board, testutil.MustMove(t, "C1C7"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state, chess.Stalemate)
}
