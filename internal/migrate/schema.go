// Package migrate bootstraps the database schema.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	// registers the "postgres" driver
	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS buildings (
		id BIGSERIAL PRIMARY KEY,
		building_code TEXT NOT NULL DEFAULT '',
		building_name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS compliments (
		id TEXT PRIMARY KEY,
		building_code TEXT NOT NULL,
		building_name TEXT NOT NULL,
		text TEXT NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS compliments_created_at_idx ON compliments (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS compliments_building_code_idx ON compliments (building_code)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		text TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Open opens a database/sql handle on the lib/pq driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate: open: %w", err)
	}
	db.SetMaxOpenConns(2)
	return db, nil
}

// EnsureSchema creates the tables and indexes the service needs. Every
// statement is idempotent so it runs on each start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, s := range statements {
		log.Debug().Int("idx", i).Msg("schema_exec")
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: statement %d: %w", i, err)
		}
	}
	log.Debug().Msg("schema_done")
	return nil
}

// Run opens dsn, ensures the schema and closes the handle.
func Run(ctx context.Context, dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("migrate: ping: %w", err)
	}
	return EnsureSchema(ctx, db)
}
