package handlers

import (
	"errors"
	"net/http"

	applog "moodquote/internal/log"
	"moodquote/internal/quote"
)

type quoteResponse struct {
	Quote string `json:"quote"`
}

type moodResponse struct {
	Mood string `json:"mood"`
}

// Quote serves GET /api/quote/{mood} with one random quote for the mood.
func Quote(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("mood")
	applog.Debug(r.Context(), "quote requested", "mood", raw)

	text, err := catalog.Lookup(raw)
	if errors.Is(err, quote.ErrNotFound) {
		applog.Debug(r.Context(), "mood not found", "mood", raw)
		writeError(w, r, http.StatusNotFound, "mood not found")
		return
	}
	if err != nil {
		applog.Error(r.Context(), "quote lookup failed", "mood", raw, "error", err)
		writeError(w, r, http.StatusInternalServerError, "unable to load quote")
		return
	}

	if sessionManager != nil {
		mood, _ := quote.ParseMood(raw)
		sessionManager.Put(r.Context(), sessionLastMoodKey, mood.String())
	}

	writeJSON(w, r, http.StatusOK, quoteResponse{Quote: text})
}

// LastMood serves GET /api/mood with the last mood this visitor resolved.
func LastMood(w http.ResponseWriter, r *http.Request) {
	mood := ""
	if sessionManager != nil {
		mood = sessionManager.GetString(r.Context(), sessionLastMoodKey)
	}
	writeJSON(w, r, http.StatusOK, moodResponse{Mood: mood})
}
