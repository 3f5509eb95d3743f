package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"edunex/internal/tutor"
)

type ConceptCacheRepo struct{ DB *sql.DB }

func NewConceptCacheRepo(db *sql.DB) *ConceptCacheRepo { return &ConceptCacheRepo{DB: db} }

// Find returns the cached concept map for (questionHash, engine, model),
// honoring maxAge the same way the hint cache does. A row whose JSON no
// longer parses counts as absent.
func (r *ConceptCacheRepo) Find(ctx context.Context, questionHash, engine, model string, maxAge time.Duration) (tutor.ConceptMap, error) {
	const q = `select map_json, created_at
	           from concept_cache
	           where question_hash=$1 and engine=$2 and model=$3`
	var (
		js []byte
		ts time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, questionHash, engine, model).Scan(&js, &ts); err != nil {
		return tutor.ConceptMap{}, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return tutor.ConceptMap{}, sql.ErrNoRows
	}
	var cm tutor.ConceptMap
	if err := json.Unmarshal(js, &cm); err != nil {
		return tutor.ConceptMap{}, sql.ErrNoRows
	}
	return cm, nil
}

func (r *ConceptCacheRepo) Upsert(ctx context.Context, questionHash, engine, model string, cm tutor.ConceptMap) error {
	js, _ := json.Marshal(cm)
	const q = `
insert into concept_cache(question_hash, engine, model, map_json)
values ($1,$2,$3,$4)
on conflict (question_hash, engine, model)
do update set map_json=excluded.map_json, created_at=now()`
	_, err := r.DB.ExecContext(ctx, q, questionHash, engine, model, js)
	return err
}

// PurgeOlderThan drops stale cache rows from both caches so the tables don't
// grow without bound.
func (r *ConceptCacheRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	var total int64
	for _, q := range []string{
		`delete from concept_cache where created_at < $1`,
		`delete from hint_cache where created_at < $1`,
	} {
		res, err := r.DB.ExecContext(ctx, q, cutoff)
		if err != nil {
			return total, err
		}
		aff, _ := res.RowsAffected()
		total += aff
	}
	return total, nil
}
