// Package history persists the interactive input history of varcalc in a
// local database.
package history

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"varcalc.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[history] ")

var initDB = map[string]func(*bolt.Tx) error{}

// ErrNoMatchingEntry is returned by queries that complete with no result.
var ErrNoMatchingEntry = errors.New("no matching history entry")

// Entry is an entry in the input history.
type Entry struct {
	Text string
	Seq  int
}

// Store is the interface of the persistent input history.
type Store interface {
	NextSeq() (int, error)
	Add(text string) (int, error)
	Entry(seq int) (string, error)
	EntriesWithSeq(from, upto int) ([]Entry, error)
	Next(from int, prefix string) (Entry, error)
	Prev(upto int, prefix string) (Entry, error)
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the store.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
