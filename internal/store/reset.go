package store

import (
	"context"
	"fmt"
	"os"
)

// Reset wipes everything: closes the pool, deletes the database file (plus WAL
// sidecars) and the given cache directory, then reopens with a fresh schema and
// the recruitment seed. The dashboard's "cache reset" button lands here.
func (d *DB) Reset(ctx context.Context, cacheDir string) error {
	d.mu.Lock()
	if d.pool != nil {
		_ = d.pool.Close()
		d.pool = nil
	}

	for _, p := range []string{d.path, d.path + "-wal", d.path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			d.mu.Unlock()
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}

	if cacheDir != "" {
		if err := os.RemoveAll(cacheDir); err != nil {
			d.mu.Unlock()
			return fmt.Errorf("remove cache dir: %w", err)
		}
	}

	pool, err := open(d.path)
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("reopen after reset: %w", err)
	}
	d.pool = pool
	d.mu.Unlock()

	if err := d.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate after reset: %w", err)
	}
	return d.SeedRecruitments(ctx)
}
