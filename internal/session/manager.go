package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// Store persists game records. *storage.Store implements it.
type Store interface {
	Save(rec storage.Record) error
	Load(id string) (storage.Record, error)
	List() ([]string, error)
	Delete(id string) error
}

// Manager owns all live games. It is safe for concurrent use; callers
// receive copies of games, never the live ones.
type Manager struct {
	cfg      *config.Config
	analyzer engine.Analyzer
	store    Store // nil disables persistence

	mu    sync.RWMutex
	games map[string]*Game
}

// NewManager creates a manager. store may be nil.
func NewManager(cfg *config.Config, store Store) *Manager {
	return &Manager{
		cfg:      cfg,
		analyzer: engine.Analyzer{Workers: cfg.Analysis.Workers},
		store:    store,
		games:    make(map[string]*Game),
	}
}

// Create starts a new game from fen, or from the initial position when fen
// is empty.
func (m *Manager) Create(fen string) (*Game, error) {
	g, err := NewGame(uuid.New().String(), fen, m.analyzer)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.save(g); err != nil {
		return nil, err
	}
	m.games[g.ID] = g
	m.cfg.Logf(1, "game %s created (%s)", g.ID, g.State)
	return g.Clone(), nil
}

// Get returns a copy of a game.
func (m *Manager) Get(id string) (*Game, error) {
	g, err := m.game(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return g.Clone(), nil
}

// Play plays a move in a game and returns a copy of the game afterwards.
func (m *Manager) Play(id, notation string) (*Game, error) {
	g, err := m.game(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.games[id] != g {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	state, err := g.Play(m.analyzer, notation)
	if err != nil {
		m.cfg.Logf(2, "%v", err)
		return nil, err
	}
	m.cfg.Logf(2, "game %s: ply %d %s", id, g.Ply(), g.Moves[g.Ply()-1])
	if state.Terminal() {
		m.cfg.Logf(1, "game %s: %s after %d plies", id, state, g.Ply())
	}

	if err := m.save(g); err != nil {
		return nil, err
	}
	return g.Clone(), nil
}

// LegalMoves returns the destinations the piece on square may move to,
// in row-major order. Pieces of the side not on move, and every piece in a
// decided game, have none.
func (m *Manager) LegalMoves(id, square string) ([]chess.Position, error) {
	from, err := chess.ParsePosition(square)
	if err != nil {
		return nil, err
	}
	g, err := m.game(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	piece := g.Board.At(from)
	if g.State.Terminal() || piece.IsEmpty() || piece.Colour != g.ToMove {
		return []chess.Position{}, nil
	}
	targets := engine.Destinations(g.Board, from)
	if targets == nil {
		targets = []chess.Position{}
	}
	return targets, nil
}

// List returns the ids of all games, live or stored, in sorted order.
func (m *Manager) List() ([]string, error) {
	m.mu.RLock()
	seen := make(map[string]bool, len(m.games))
	for id := range m.games {
		seen[id] = true
	}
	m.mu.RUnlock()

	if m.store != nil {
		stored, err := m.store.List()
		if err != nil {
			return nil, errors.Wrap(err, "list stored games")
		}
		for _, id := range stored {
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a game from memory and from the store.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, live := m.games[id]
	delete(m.games, id)

	if m.store != nil {
		err := m.store.Delete(id)
		if err != nil && !(live && errors.Is(err, errors.ErrGameNotFound)) {
			return err
		}
	} else if !live {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}

	m.cfg.Logf(1, "game %s deleted", id)
	return nil
}

// game returns the live game with the given id, restoring it from the store
// on first access.
func (m *Manager) game(id string) (*Game, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return g, nil
	}
	if m.store == nil {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.games[id]; ok {
		return g, nil
	}
	rec, err := m.store.Load(id)
	if err != nil {
		return nil, err
	}
	g, err = Restore(rec, m.analyzer)
	if err != nil {
		m.cfg.Logf(1, "game %s: %v", id, err)
		return nil, err
	}
	// id may alias a caller's reused buffer.
	m.games[strings.Clone(id)] = g
	m.cfg.Logf(2, "game %s restored at ply %d", id, g.Ply())
	return g, nil
}

// save persists a game. The caller holds the write lock.
func (m *Manager) save(g *Game) error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(g.Record()); err != nil {
		return errors.Wrapf(err, "save game %s", g.ID)
	}
	return nil
}
