package rest

import "net/http"

// NewRouter mounts every REST endpoint on a ServeMux. Middleware is
// applied by the caller around the returned mux.
func NewRouter(auth *AuthHandler, entries *EntriesHandler, report *ReportHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", auth.Login)

	mux.HandleFunc("POST /api/entries", entries.Submit)
	mux.HandleFunc("GET /api/entries", entries.List)

	mux.HandleFunc("GET /api/report", report.Get)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	return mux
}
