package store

import (
	"context"
	"database/sql"
	"time"
)

type HintCacheRepo struct{ DB *sql.DB }

func NewHintCacheRepo(db *sql.DB) *HintCacheRepo { return &HintCacheRepo{DB: db} }

// Find returns the cached hint text for (questionHash, engine, model, step).
// If maxAge > 0 and the row is older, ErrNotFound is returned so the caller
// asks the model again.
func (r *HintCacheRepo) Find(ctx context.Context, questionHash, engine, model string, step int, maxAge time.Duration) (string, error) {
	const q = `select hint, created_at
	           from hint_cache
	           where question_hash=$1 and engine=$2 and model=$3 and step=$4`
	var (
		hint string
		ts   time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, questionHash, engine, model, step).Scan(&hint, &ts); err != nil {
		return "", err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return "", sql.ErrNoRows
	}
	return hint, nil
}

// Upsert stores/refreshes the hint for one step.
// PK: (question_hash, engine, model, step).
func (r *HintCacheRepo) Upsert(ctx context.Context, questionHash, engine, model string, step int, hint string) error {
	const q = `
insert into hint_cache(question_hash, engine, model, step, hint)
values ($1,$2,$3,$4,$5)
on conflict (question_hash, engine, model, step)
do update set hint=excluded.hint, created_at=now()`
	_, err := r.DB.ExecContext(ctx, q, questionHash, engine, model, step, hint)
	return err
}
