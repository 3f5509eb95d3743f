package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port       string
	CORSOrigin string

	DatabaseURL string

	DefaultEngine string

	GeminiAPIKey string
	GeminiModel  string
	GeminiAPIURL string
	OpenAIAPIKey string
	OpenAIModel  string

	CacheTTL time.Duration
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "24h"))
	if err != nil {
		log.Fatalf("bad CACHE_TTL: %v", err)
	}

	return &Config{
		Port:       getEnv("PORT", "5000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),

		DatabaseURL: resolveDSN(),

		DefaultEngine: getEnv("AI_ENGINE", "gemini"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiAPIURL: getEnv("GEMINI_API_URL", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		CacheTTL: ttl,
	}
}

// resolveDSN prefers DATABASE_URL, otherwise builds a DSN from the
// POSTGRES_* / PG* env vars (single-container default).
func resolveDSN() string {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	user := getEnv("POSTGRES_USER", "edunex")
	pass := os.Getenv("POSTGRES_PASSWORD")
	host := getEnv("PGHOST", "db")
	port := getEnv("PGPORT", "5432")
	db := getEnv("POSTGRES_DB", "edunex")

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
