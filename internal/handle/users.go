package handle

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"edunex/internal/store"
)

type createUserRequest struct {
	ClerkID      string `json:"clerkId"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
}

// CreateUser is find-or-create keyed on the identity provider's id; calling
// it again for a known user returns the stored record unchanged.
func (h *Handle) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad json: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.ClerkID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "clerkId is required"})
		return
	}

	user, err := h.Users.FindOrCreate(r.Context(), req.ClerkID, req.Email, req.FirstName, req.LastName, req.ProfileImage)
	if err != nil {
		log.Printf("users: find-or-create: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handle) GetUser(w http.ResponseWriter, r *http.Request) {
	clerkID := mux.Vars(r)["clerkId"]

	user, err := h.Users.GetByClerkID(r.Context(), clerkID)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("users: get %s: %v", clerkID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type addPointsRequest struct {
	Points int `json:"points"`
}

func (h *Handle) AddPoints(w http.ResponseWriter, r *http.Request) {
	clerkID := mux.Vars(r)["clerkId"]

	var req addPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad json: " + err.Error()})
		return
	}

	user, err := h.Users.AddPoints(r.Context(), clerkID, req.Points)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "User not found"})
		return
	}
	if err != nil {
		log.Printf("users: add points %s: %v", clerkID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handle) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.Leaderboard(r.Context(), 50)
	if err != nil {
		log.Printf("leaderboard: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handle) DebugUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Debug error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalUsers": len(users),
		"users":      users,
	})
}
