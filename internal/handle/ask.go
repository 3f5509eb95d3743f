package handle

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"edunex/internal/tutor"
	"edunex/internal/util"
)

type askRequest struct {
	Engine   string `json:"engine"`
	Question string `json:"question"`
	HintStep int    `json:"hintStep"`
}

type askResponse struct {
	Hint         string `json:"hint"`
	NextHintStep int    `json:"nextHintStep"`
	IsComplete   bool   `json:"isComplete"`
}

// Ask runs the three-stage hint flow. The server keeps no conversation
// state: the caller resends the accumulated hintStep and each call stands
// alone.
func (h *Handle) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad json: " + err.Error(), "hint": nil})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "question is required", "hint": nil})
		return
	}
	step := req.HintStep
	if step < 0 {
		step = 0
	}

	engine, err := h.Engines.GetEngine(req.Engine)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error(), "hint": nil})
		return
	}

	qh := util.SHA256Hex(req.Question)
	if h.Hints != nil {
		if hint, err := h.Hints.Find(r.Context(), qh, engine.Name(), engine.GetModel(), step, h.CacheTTL); err == nil {
			writeJSON(w, http.StatusOK, askResponse{Hint: hint, NextHintStep: step + 1, IsComplete: step >= 2})
			return
		}
	}

	text, err := engine.Complete(r.Context(), tutor.BuildHintPrompt(req.Question, step))
	if err != nil {
		log.Printf("ask: %s: %v", engine.Name(), err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"hint":         "Failed to fetch hint, please try again.",
			"nextHintStep": step,
		})
		return
	}

	hint := strings.TrimSpace(text)
	if hint == "" {
		hint = "No hint available."
	} else if h.Hints != nil {
		if err := h.Hints.Upsert(r.Context(), qh, engine.Name(), engine.GetModel(), step, hint); err != nil {
			log.Printf("ask: hint cache upsert: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, askResponse{Hint: hint, NextHintStep: step + 1, IsComplete: step >= 2})
}
