package handlers

import (
	"net/http"
	"time"

	applog "moodquote/internal/log"
)

type healthResponse struct {
	Status string    `json:"status"`
	Moods  int       `json:"moods"`
	Time   time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status: "ok",
		Moods:  len(catalog.Moods()),
		Time:   time.Now().UTC(),
	})
}
