// Package store persists game records in BadgerDB so a restarted server can
// rebuild its live games by replaying the recorded moves.
package store

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

const gameKeyPrefix = "game:"

var ErrNotFound = errors.New("game record not found")

// GameRecord is the persisted form of one game: its identity and the
// coordinate moves applied so far, in order.
type GameRecord struct {
	ID        string    `json:"id"`
	Moves     []string  `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store wraps a BadgerDB handle.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open store at %s", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory backs the store with memory only. Used by tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// SaveGame writes the record, replacing any previous version.
func (s *Store) SaveGame(rec GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "marshal game %s", rec.ID)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

func (s *Store) LoadGame(id string) (GameRecord, error) {
	var rec GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return GameRecord{}, ErrNotFound
	}
	if err != nil {
		return GameRecord{}, errors.Wrapf(err, "load game %s", id)
	}
	return rec, nil
}

// ListGames returns every stored record, in key order.
func (s *Store) ListGames() ([]GameRecord, error) {
	var recs []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return recs, nil
}

// DeleteGame removes a record; deleting an absent record is not an error.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}
