package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	mu   sync.Mutex
	pool *sql.DB
	path string
}

func Open(path string) (*DB, error) {
	pool, err := open(path)
	if err != nil {
		return nil, err
	}
	return &DB{pool: pool, path: path}, nil
}

func open(path string) (*sql.DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return pool, nil
}

func (d *DB) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pool == nil {
		return nil
	}
	err := d.pool.Close()
	d.pool = nil
	return err
}

func (d *DB) Path() string { return d.path }

// conn returns the current pool. Reset swaps it out, so callers must not hold
// the returned handle across operations.
func (d *DB) conn() *sql.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pool
}

func (d *DB) Checkpoint() error {
	_, err := d.conn().Exec(`PRAGMA wal_checkpoint(FULL);`)
	return err
}
