package handle

import (
	"encoding/json"
	"log"
	"net/http"

	"edunex/internal/tutor"
)

type topicsRequest struct {
	Engine    string                `json:"engine"`
	Questions []tutor.TopicQuestion `json:"questions"`
}

// AnalyzeTopics groups the submitted questions by topic. An empty input
// short-circuits before any prompt is built or any engine is called.
func (h *Handle) AnalyzeTopics(w http.ResponseWriter, r *http.Request) {
	var req topicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad json: " + err.Error(), "topics": []any{}})
		return
	}
	if len(req.Questions) == 0 {
		writeJSON(w, http.StatusOK, tutor.EmptyTopicReport())
		return
	}

	engine, err := h.Engines.GetEngine(req.Engine)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	text, err := engine.Complete(r.Context(), tutor.BuildTopicPrompt(req.Questions))
	if err != nil {
		log.Printf("analyze-topics: %s: %v", engine.Name(), err)
		writeJSON(w, http.StatusInternalServerError, tutor.EmptyTopicReport())
		return
	}

	report, err := tutor.InterpretTopics(text)
	if err != nil {
		log.Printf("analyze-topics: %v", err)
	}
	writeJSON(w, http.StatusOK, report)
}
