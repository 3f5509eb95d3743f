package handle

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"edunex/internal/tutor"
)

type verifyRequest struct {
	Engine   string `json:"engine"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// VerifyAnswer scores a peer answer against the rubric. Unlike the list
// endpoints, a yes/no verification can't silently default, so every failure
// here is a loud 500 carrying the rejected-but-fully-typed shape.
func (h *Handle) VerifyAnswer(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, tutor.FallbackVerification("bad json: "+err.Error()))
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		v := tutor.FallbackVerification("Question and answer are required.")
		v.Issues = []string{"Missing question or answer"}
		v.Suggestions = []string{"Please provide both question and answer"}
		writeJSON(w, http.StatusBadRequest, v)
		return
	}

	engine, err := h.Engines.GetEngine(req.Engine)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	text, err := engine.Complete(r.Context(), tutor.BuildVerificationPrompt(req.Question, req.Answer))
	if err != nil {
		log.Printf("verify-answer: %s: %v", engine.Name(), err)
		writeJSON(w, http.StatusInternalServerError, tutor.FallbackVerification("Error during verification."))
		return
	}
	if strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusInternalServerError, tutor.FallbackVerification("No response from AI."))
		return
	}

	v, err := tutor.InterpretVerification(text)
	switch {
	case errors.Is(err, tutor.ErrNoPayload):
		writeJSON(w, http.StatusInternalServerError, tutor.FallbackVerification("Invalid response format."))
	case err != nil:
		log.Printf("verify-answer: %v", err)
		writeJSON(w, http.StatusInternalServerError, tutor.FallbackVerification("Could not parse response."))
	default:
		writeJSON(w, http.StatusOK, v)
	}
}
