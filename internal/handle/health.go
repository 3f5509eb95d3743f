package handle

import (
	"context"
	"net/http"
	"time"
)

var endpointList = []string{
	"POST /api/users",
	"GET /api/users/{clerkId}",
	"POST /api/users/{clerkId}/points",
	"GET /api/leaderboard",
	"POST /api/ask (2 hints then full answer)",
	"POST /api/extract-concepts (concept map)",
	"POST /api/verify-answer",
	"POST /api/analyze-topics",
	"POST /api/analyze-focus",
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	database := "disconnected"
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err == nil {
			database = "connected"
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"database":  database,
		"endpoints": endpointList,
	})
}

// TestCompletion pokes the default engine with a fixed probe prompt so a
// deploy can be smoke-tested without the frontend.
func (h *Handle) TestCompletion(w http.ResponseWriter, r *http.Request) {
	engine, err := h.Engines.GetEngine("")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	out, err := engine.Complete(r.Context(), "Say 'Hello from Gemini!'")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "response": out})
}
