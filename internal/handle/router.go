package handle

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires every endpoint and wraps the router with CORS for the SPA
// origin.
func NewRouter(h *Handle, corsOrigin string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Health).Methods("GET")
	r.HandleFunc("/test", h.TestCompletion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/ask", h.Ask).Methods("POST")
	api.HandleFunc("/extract-concepts", h.ExtractConcepts).Methods("POST")
	api.HandleFunc("/verify-answer", h.VerifyAnswer).Methods("POST")
	api.HandleFunc("/analyze-topics", h.AnalyzeTopics).Methods("POST")
	api.HandleFunc("/analyze-focus", h.AnalyzeFocus).Methods("POST")

	api.HandleFunc("/users", h.CreateUser).Methods("POST")
	api.HandleFunc("/users/{clerkId}", h.GetUser).Methods("GET")
	api.HandleFunc("/users/{clerkId}/points", h.AddPoints).Methods("POST")
	api.HandleFunc("/leaderboard", h.Leaderboard).Methods("GET")
	api.HandleFunc("/debug/users", h.DebugUsers).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
