package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"moodquote/internal/contact"
	applog "moodquote/internal/log"
	"moodquote/internal/quote"
)

const sessionLastMoodKey = "mood:last"

var (
	catalog        = quote.Default()
	sessionManager *scs.SessionManager
	recorder       contact.Recorder = contact.LogRecorder{}
)

// Configure installs the shared dependencies used by the HTTP handlers.
// Nil arguments restore the defaults: the compiled-in catalog, no session
// tracking, and log-only contact recording.
func Configure(c *quote.Catalog, sm *scs.SessionManager, rec contact.Recorder) {
	if c == nil {
		c = quote.Default()
	}
	if rec == nil {
		rec = contact.LogRecorder{}
	}
	catalog = c
	sessionManager = sm
	recorder = rec
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "path", r.URL.Path, "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// APINotFound answers unmatched /api/ paths with a JSON 404.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "unknown api route", "method", r.Method, "path", r.URL.Path)
	writeError(w, r, http.StatusNotFound, "not found")
}
