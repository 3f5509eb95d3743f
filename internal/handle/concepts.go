package handle

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"edunex/internal/tutor"
	"edunex/internal/util"
)

type conceptsRequest struct {
	Engine   string `json:"engine"`
	Question string `json:"question"`
}

// ExtractConcepts builds a concept map for the question. Structural results
// degrade gracefully: unusable model output is a 200 with an empty map, only
// an upstream failure is a 500 (still with the empty map, so the client
// always gets the full shape).
func (h *Handle) ExtractConcepts(w http.ResponseWriter, r *http.Request) {
	var req conceptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "bad json: " + err.Error(), "concepts": []any{}, "relations": []any{},
		})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Question is required", "concepts": []any{}, "relations": []any{},
		})
		return
	}

	engine, err := h.Engines.GetEngine(req.Engine)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	qh := util.SHA256Hex(req.Question)
	if h.Concepts != nil {
		if cm, err := h.Concepts.Find(r.Context(), qh, engine.Name(), engine.GetModel(), h.CacheTTL); err == nil {
			writeJSON(w, http.StatusOK, cm)
			return
		}
	}

	text, err := engine.Complete(r.Context(), tutor.BuildConceptPrompt(req.Question))
	if err != nil {
		log.Printf("extract-concepts: %s: %v", engine.Name(), err)
		writeJSON(w, http.StatusInternalServerError, tutor.EmptyConceptMap())
		return
	}

	cm, err := tutor.InterpretConceptMap(text)
	if err != nil {
		log.Printf("extract-concepts: %v", err)
		writeJSON(w, http.StatusOK, cm)
		return
	}

	if h.Concepts != nil && len(cm.Concepts) > 0 {
		if err := h.Concepts.Upsert(r.Context(), qh, engine.Name(), engine.GetModel(), cm); err != nil {
			log.Printf("extract-concepts: cache upsert: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, cm)
}
