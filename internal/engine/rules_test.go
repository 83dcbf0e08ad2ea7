package engine

import (
	"slices"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// destinationNames returns the sorted destination squares of the piece on from.
func destinationNames(t *testing.T, board *chess.Board, from string) []string {
	t.Helper()
	var names []string
	for _, p := range Destinations(board, testutil.MustPosition(t, from)) {
		names = append(names, p.String())
	}
	slices.Sort(names)
	return names
}

func sorted(squares ...string) []string {
	out := slices.Clone(squares)
	slices.Sort(out)
	return out
}

// step is one modification to the board followed by the expected destinations.
type step struct {
	name  string
	place testutil.Pieces
	want  []string
}

func runSteps(t *testing.T, board *chess.Board, from string, steps []step) {
	t.Helper()
	for _, s := range steps {
		for square, piece := range s.place {
			testutil.Place(t, board, square, piece)
		}
		got := destinationNames(t, board, from)
		testutil.AssertEqual(t, got, sorted(s.want...), "%s: destinations from %s", s.name, from)
	}
}

func TestBishopGeometry(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{"C3": chess.W(chess.Bishop)})
	runSteps(t, board, "C3", []step{
		{
			name: "open board",
			want: []string{"A1", "B2", "D4", "E5", "F6", "G7", "H8", "A5", "B4", "D2", "E1"},
		},
		{
			name:  "enemy on E5 blocks F6 G7 H8",
			place: testutil.Pieces{"E5": chess.B(chess.Pawn)},
			want:  []string{"A1", "B2", "D4", "E5", "A5", "B4", "D2", "E1"},
		},
		{
			name:  "own piece on B4 blocks B4 A5",
			place: testutil.Pieces{"B4": chess.W(chess.Pawn)},
			want:  []string{"A1", "B2", "D4", "E5", "D2", "E1"},
		},
	})
}

func TestRookGeometry(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{"D4": chess.W(chess.Rook)})
	runSteps(t, board, "D4", []step{
		{
			name: "open board",
			want: []string{"C4", "B4", "A4", "E4", "F4", "G4", "H4", "D5", "D6", "D7", "D8", "D3", "D2", "D1"},
		},
		{
			name:  "enemy on E4",
			place: testutil.Pieces{"E4": chess.B(chess.Pawn)},
			want:  []string{"C4", "B4", "A4", "E4", "D5", "D6", "D7", "D8", "D3", "D2", "D1"},
		},
		{
			name:  "own piece on C4",
			place: testutil.Pieces{"C4": chess.W(chess.Pawn)},
			want:  []string{"E4", "D5", "D6", "D7", "D8", "D3", "D2", "D1"},
		},
	})
}

func TestQueenGeometry(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{
		"A1": chess.W(chess.Queen),
		"A3": chess.W(chess.Pawn),
		"C1": chess.B(chess.Knight),
		"C3": chess.B(chess.Pawn),
	})
	got := destinationNames(t, board, "A1")
	testutil.AssertEqual(t, got, sorted("A2", "B1", "C1", "B2", "C3"))
}

func TestKnightGeometry(t *testing.T) {
	all := []string{"E6", "F5", "F3", "E2", "C2", "B3", "B5", "C6"}
	board := testutil.MustBoard(t, testutil.Pieces{"D4": chess.W(chess.Knight)})
	runSteps(t, board, "D4", []step{
		{name: "open board", want: all},
		{
			name:  "jumps over enemy pieces",
			place: testutil.Pieces{"C4": chess.B(chess.Pawn), "C5": chess.B(chess.Pawn), "D5": chess.B(chess.Pawn)},
			want:  all,
		},
		{
			name:  "jumps over own pieces",
			place: testutil.Pieces{"E4": chess.W(chess.Pawn), "E3": chess.W(chess.Pawn), "D3": chess.W(chess.Pawn)},
			want:  all,
		},
		{
			name:  "captures on E6",
			place: testutil.Pieces{"E6": chess.B(chess.Pawn)},
			want:  all,
		},
		{
			name:  "own piece on F5",
			place: testutil.Pieces{"F5": chess.W(chess.Pawn)},
			want:  []string{"E6", "F3", "E2", "C2", "B3", "B5", "C6"},
		},
	})
}

func TestPawnGeometry(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{"D2": chess.W(chess.Pawn)})
	runSteps(t, board, "D2", []step{
		{name: "unmoved pawn", want: []string{"D3", "D4"}},
		{
			name:  "moved pawn has no double push",
			place: testutil.Pieces{"D2": testutil.Moved(chess.W(chess.Pawn))},
			want:  []string{"D3"},
		},
		{
			name:  "captures enemy pieces",
			place: testutil.Pieces{"E3": chess.B(chess.Pawn), "C3": chess.B(chess.Pawn)},
			want:  []string{"C3", "D3", "E3"},
		},
		{
			name:  "does not capture own piece",
			place: testutil.Pieces{"E3": chess.W(chess.Pawn)},
			want:  []string{"C3", "D3"},
		},
	})
}

func TestPawnGeometry_Blocked(t *testing.T) {
	tests := []struct {
		name   string
		pieces testutil.Pieces
		from   string
		want   []string
	}{
		{
			name:   "blocked in front",
			pieces: testutil.Pieces{"E2": chess.W(chess.Pawn), "E3": chess.B(chess.Knight)},
			from:   "E2",
			want:   nil,
		},
		{
			name:   "double push blocked on landing square",
			pieces: testutil.Pieces{"E2": chess.W(chess.Pawn), "E4": chess.B(chess.Knight)},
			from:   "E2",
			want:   []string{"E3"},
		},
		{
			name:   "black pawn moves down the board",
			pieces: testutil.Pieces{"C7": chess.B(chess.Pawn), "D6": chess.W(chess.Rook)},
			from:   "C7",
			want:   []string{"C5", "C6", "D6"},
		},
		{
			name:   "no backward move",
			pieces: testutil.Pieces{"C4": testutil.Moved(chess.W(chess.Pawn)), "B3": chess.B(chess.Pawn)},
			from:   "C4",
			want:   []string{"C5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.pieces)
			got := destinationNames(t, board, tt.from)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestKingGeometry(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{"D4": chess.W(chess.King)})
	runSteps(t, board, "D4", []step{
		{name: "open board", want: []string{"D5", "E5", "E4", "E3", "D3", "C3", "C4", "C5"}},
		{
			name:  "rook on E6 covers the E file",
			place: testutil.Pieces{"E6": chess.B(chess.Rook)},
			want:  []string{"D5", "D3", "C3", "C4", "C5"},
		},
		{
			name:  "knight on B2 covers C4 and D3",
			place: testutil.Pieces{"B2": chess.B(chess.Knight)},
			want:  []string{"D5", "C3", "C5"},
		},
	})
}

func TestKindDispatch(t *testing.T) {
	board := chess.NewBoard()
	from := testutil.MustPosition(t, "D4")
	board.Set(from, chess.Piece{Kind: chess.NumKinds, Colour: chess.White})

	outcome := Validate(board, testutil.MustMove(t, "D4D5"))
	testutil.AssertFalse(t, outcome.Valid(), "unknown kind has no geometry")
}

func TestIsLineClear(t *testing.T) {
	board := testutil.MustBoard(t, testutil.Pieces{"D4": chess.W(chess.Pawn)})

	tests := []struct {
		from, to string
		want     bool
	}{
		{"A1", "H8", false},
		{"A1", "C3", true},
		{"D1", "D8", false},
		{"D1", "D3", true},
		{"A4", "C4", true},
		{"A4", "H4", false},
		{"B1", "C3", false}, // not on a line
	}

	for _, tt := range tests {
		from := testutil.MustPosition(t, tt.from)
		to := testutil.MustPosition(t, tt.to)
		if got := isLineClear(board, from, to); got != tt.want {
			t.Errorf("isLineClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {5, 5}, {-5, 5}, {-1, 1}}
	for _, tt := range tests {
		if got := abs(tt.in); got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {7, 1}, {-3, -1}}
	for _, tt := range tests {
		if got := sign(tt.in); got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
