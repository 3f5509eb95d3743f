package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"edunex/internal/ai"
	"edunex/internal/ai/gemini"
	"edunex/internal/ai/openai"
	"edunex/internal/config"
	"edunex/internal/handle"
	"edunex/internal/store"
)

func main() {
	cfg := config.Load()

	// --- Postgres ---
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		if err := store.Migrate(ctx, db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		log.Printf("db connected: %s", safeDSNSummary(cfg.DatabaseURL))
	}

	conceptCache := store.NewConceptCacheRepo(db)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if n, err := conceptCache.PurgeOlderThan(ctx, 30*24*time.Hour); err != nil {
			log.Printf("cache purge: %v", err)
		} else if n > 0 {
			log.Printf("cache purge: dropped %d stale rows", n)
		}
		cancel()
	}

	// --- Engines ---
	engines := &ai.Engines{
		Default:   cfg.DefaultEngine,
		Gemini:    gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiAPIURL),
		GeminiSDK: gemini.NewSDK(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI:    openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}

	h := &handle.Handle{
		Engines:  engines,
		Users:    store.NewUserRepo(db),
		Hints:    store.NewHintCacheRepo(db),
		Concepts: conceptCache,
		DB:       db,
		CacheTTL: cfg.CacheTTL,
	}

	addr := ":" + cfg.Port
	log.Printf("edunex api listening on %s (default engine %s)", addr, cfg.DefaultEngine)
	log.Fatal(http.ListenAndServe(addr, handle.NewRouter(h, cfg.CORSOrigin)))
}

func safeDSNSummary(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "dsn: parse error"
	}
	return u.User.Username() + "@" + u.Host + u.Path
}
