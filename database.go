package main

import (
	"context"
	"database/sql"
	"sync"

	"github.com/ip812/portfolio/database"
	"github.com/ip812/portfolio/status"
)

// DBWrapper hands out the contact database once it is reachable. The
// server starts before the connection is up, so callers must handle
// status.ErrDatabaseNotReady.
type DBWrapper interface {
	DB() (*sql.DB, error)
	Close() error
}

type SwappableDB struct {
	mu sync.RWMutex
	db *sql.DB
}

func NewSwappableDB() *SwappableDB {
	return &SwappableDB{}
}

// Swap installs db once migrations have run against it.
func (s *SwappableDB) Swap(db *sql.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
}

func (s *SwappableDB) DB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, status.ErrDatabaseNotReady
	}
	return s.db, nil
}

// Close closes the installed connection pool, if any. Later DB calls
// report status.ErrDatabaseNotReady.
func (s *SwappableDB) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// inTx runs fn inside a serializable transaction. fn's error rolls it
// back and is returned unchanged.
func inTx(ctx context.Context, db *sql.DB, fn func(q *database.Queries) error) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(database.New(tx)); err != nil {
		return err
	}
	return tx.Commit()
}
