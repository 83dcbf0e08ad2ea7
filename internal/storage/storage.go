// Package storage persists game sessions in BadgerDB.
//
// A game is stored as its starting position plus the moves played, so a
// record can always be replayed through the rules engine. Records are JSON
// encoded under the key "game:<id>".
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const keyPrefix = "game:"

// Record is the persisted form of a game session.
type Record struct {
	ID       string   `json:"id"`
	StartFEN string   `json:"start_fen"`
	Moves    []string `json:"moves"`

	// Fingerprints of the move list and of the position it leads to,
	// checked when the record is replayed.
	MovesHash    uint64 `json:"moves_hash"`
	PositionHash uint64 `json:"position_hash"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Store wraps BadgerDB for game persistence.
type Store struct {
	db *badger.DB
}

// Open opens the store described by cfg.
func Open(cfg *config.StorageConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("no data directory and not in memory: %w", errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open game store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// Save writes a record, replacing any previous record with the same id.
func (s *Store) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.ID), data)
	})
}

// Load reads the record of a game.
func (s *Store) Load(id string) (Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &rec); err != nil {
				return fmt.Errorf("%s: %v: %w", id, err, errors.ErrCorruptRecord)
			}
			return nil
		})
	})
	if err != nil {
		return Record{}, err
	}

	if rec.ID != id {
		return Record{}, fmt.Errorf("%s: record holds game %q: %w", id, rec.ID, errors.ErrCorruptRecord)
	}
	return rec, nil
}

// List returns the ids of all stored games in key order.
func (s *Store) List() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			ids = append(ids, string(k[len(keyPrefix):]))
		}
		return nil
	})

	return ids, err
}

// Delete removes the record of a game.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
}
