package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate bootstraps the schema. The tables are additive-only, so plain
// CREATE IF NOT EXISTS is enough; there is no versioned migration history.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	stmts := []string{
		`create table if not exists users (
			id uuid primary key,
			clerk_id text not null unique,
			email text not null default '',
			first_name text not null default '',
			last_name text not null default '',
			profile_image text not null default '',
			points integer not null default 0,
			created_at timestamptz not null default now()
		)`,
		`create table if not exists hint_cache (
			question_hash text not null,
			engine text not null,
			model text not null,
			step integer not null,
			hint text not null,
			created_at timestamptz not null default now(),
			primary key (question_hash, engine, model, step)
		)`,
		`create table if not exists concept_cache (
			question_hash text not null,
			engine text not null,
			model text not null,
			map_json jsonb not null,
			created_at timestamptz not null default now(),
			primary key (question_hash, engine, model)
		)`,
		`create index if not exists idx_users_points on users (points desc)`,
	}

	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
