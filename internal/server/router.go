package server

import (
	"context"
	"net/http"

	"moodquote/internal/handlers"
	applog "moodquote/internal/log"
)

func newRouter(assetRoot string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("GET /healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("GET /api/quote/{mood}", handlers.Quote)
	applog.Debug(context.Background(), "route registered", "path", "/api/quote/{mood}")
	mux.HandleFunc("GET /api/mood", handlers.LastMood)
	applog.Debug(context.Background(), "route registered", "path", "/api/mood")
	mux.HandleFunc("POST /api/contact", handlers.Contact)
	applog.Debug(context.Background(), "route registered", "path", "/api/contact")
	mux.HandleFunc("/api/", handlers.APINotFound)
	mux.Handle("/", handlers.Assets(assetRoot))
	applog.Debug(context.Background(), "route registered", "path", "/", "static", true, "root", assetRoot)
	return mux
}
