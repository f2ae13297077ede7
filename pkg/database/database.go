package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens the Postgres connection pool and ensures the schema exists.
func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return db, nil
}

func createTables(db *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			parent_id TEXT NOT NULL DEFAULT '0',
			local_path TEXT NOT NULL DEFAULT '',
			position BIGSERIAL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_parent_id ON files (parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_files_user_id ON files (user_id)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Probe wraps a pool with the liveness check the status endpoint uses.
type Probe struct {
	db *sqlx.DB
}

func NewProbe(db *sqlx.DB) *Probe {
	return &Probe{db: db}
}

func (p *Probe) IsAlive(ctx context.Context) bool {
	return p.db.PingContext(ctx) == nil
}
