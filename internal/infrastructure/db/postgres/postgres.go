// Package postgres implements the store adapters over PostgreSQL using the
// pgx driver through database/sql. All row-to-entity mapping and
// constraint-violation detection is centralized here; services only ever see
// domain entities and domain sentinel errors.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a database
// connection.
type Config struct {
	// URL is the PostgreSQL DSN (pgx format).
	URL     string
	Timeout time.Duration
}

// Connect opens a connection pool, verifies connectivity with a ping, and
// returns the handle. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}
