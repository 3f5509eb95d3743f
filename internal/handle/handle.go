package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"edunex/internal/ai"
	"edunex/internal/store"
	"edunex/internal/tutor"
)

type UserStore interface {
	FindOrCreate(ctx context.Context, clerkID, email, firstName, lastName, profileImage string) (store.User, error)
	GetByClerkID(ctx context.Context, clerkID string) (store.User, error)
	AddPoints(ctx context.Context, clerkID string, delta int) (store.User, error)
	Leaderboard(ctx context.Context, limit int) ([]store.User, error)
	All(ctx context.Context) ([]store.User, error)
}

type HintCache interface {
	Find(ctx context.Context, questionHash, engine, model string, step int, maxAge time.Duration) (string, error)
	Upsert(ctx context.Context, questionHash, engine, model string, step int, hint string) error
}

type ConceptCache interface {
	Find(ctx context.Context, questionHash, engine, model string, maxAge time.Duration) (tutor.ConceptMap, error)
	Upsert(ctx context.Context, questionHash, engine, model string, cm tutor.ConceptMap) error
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handle carries everything the routes need. Hints/Concepts caches are
// optional; nil just means every request goes to the model.
type Handle struct {
	Engines  *ai.Engines
	Users    UserStore
	Hints    HintCache
	Concepts ConceptCache
	DB       Pinger
	CacheTTL time.Duration
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
