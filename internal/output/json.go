package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// Snapshot is the JSON view of a game session.
type Snapshot struct {
	ID       string   `json:"id"`
	FEN      string   `json:"fen"`
	ToMove   string   `json:"toMove"` // "white" or "black"
	State    string   `json:"state"`
	InCheck  bool     `json:"inCheck"`
	LastMove string   `json:"lastMove,omitempty"`
	Board    []string `json:"board"` // rank 8 first, '.' for empty squares
	Hash     string   `json:"hash"`
	Moves    []string `json:"moves"`
}

// Summary is the short JSON view used in game listings.
type Summary struct {
	ID     string `json:"id"`
	ToMove string `json:"toMove"`
	State  string `json:"state"`
	Ply    int    `json:"ply"`
}

// SnapshotFor converts a game to its JSON view.
func SnapshotFor(g *session.Game) *Snapshot {
	snap := &Snapshot{
		ID:      g.ID,
		FEN:     g.FEN(),
		ToMove:  colourName(g.ToMove),
		State:   g.State.String(),
		InCheck: g.InCheck(),
		Board:   boardRows(g.Board),
		Hash:    fmt.Sprintf("%016x", g.Hash()),
		Moves:   make([]string, 0, len(g.Moves)),
	}
	for _, m := range g.Moves {
		snap.Moves = append(snap.Moves, m.String())
	}
	if last, ok := g.Board.LastMove(); ok {
		snap.LastMove = last.String()
	}
	return snap
}

// SummaryFor converts a game to its listing entry.
func SummaryFor(g *session.Game) Summary {
	return Summary{
		ID:     g.ID,
		ToMove: colourName(g.ToMove),
		State:  g.State.String(),
		Ply:    g.Ply(),
	}
}

// WriteSnapshot writes the JSON view of a game, indented.
func WriteSnapshot(w io.Writer, g *session.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SnapshotFor(g))
}

// boardRows renders each rank as eight glyphs.
func boardRows(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for rank := range rows {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Position{Rank: rank, File: file})
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.Glyph())
			}
		}
		rows[rank] = sb.String()
	}
	return rows
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
