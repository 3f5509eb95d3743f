package handle

import (
	"encoding/json"
	"log"
	"net/http"

	"edunex/internal/tutor"
)

type focusRequest struct {
	Engine      string                    `json:"engine"`
	SessionData *tutor.FocusSession       `json:"sessionData"`
	History     []tutor.FocusHistoryEntry `json:"history"`
}

type focusResponse struct {
	Success bool `json:"success"`
	tutor.FocusReport
	RawScore int `json:"rawScore"`
}

// AnalyzeFocus computes the session score locally, then asks the model for
// qualitative commentary grounded in that number. The local score is merged
// back in as rawScore; the model's echo never overrides it.
func (h *Handle) AnalyzeFocus(w http.ResponseWriter, r *http.Request) {
	var req focusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "bad json: " + err.Error()})
		return
	}
	if req.SessionData == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Session data required"})
		return
	}

	score := tutor.FocusScore(*req.SessionData)

	engine, err := h.Engines.GetEngine(req.Engine)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		return
	}

	text, err := engine.Complete(r.Context(), tutor.BuildFocusPrompt(*req.SessionData, score, req.History))
	if err != nil {
		log.Printf("analyze-focus: %s: %v", engine.Name(), err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	report, err := tutor.InterpretFocus(text, score)
	if err != nil {
		log.Printf("analyze-focus: %v", err)
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "score": score})
		return
	}

	writeJSON(w, http.StatusOK, focusResponse{Success: true, FocusReport: report, RawScore: score})
}
