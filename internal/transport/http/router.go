// Package http wires the lead API, the question catalog and the admin
// lead feed into a single JSON-over-HTTP surface.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"security-funnel-service/internal/app"
)

// Container holds the dependencies of the router.
type Container struct {
	Leads    *app.LeadService
	Feed     *app.LeadFeed
	Catalogs CatalogProvider
	Admin    CredentialCheck
	CORS     CORSConfig
	Log      *zap.Logger
}

// NewRouter builds the API router. Admin endpoints (listing, moderation,
// the live feed) sit behind the pluggable credential check; everything
// else is public.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	leadHandler := NewLeadHandler(c.Leads, c.Log)
	catalogHandler := NewCatalogHandler(c.Catalogs, c.Log)
	feedHandler := NewFeedHandler(c.Feed, c.Log)

	r.Use(corsMiddleware(c.CORS))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public funnel endpoints
	api.HandleFunc("/questions", catalogHandler.Questions).Methods("GET", "OPTIONS")
	api.HandleFunc("/leads", leadHandler.Create).Methods("POST", "OPTIONS")

	// Admin endpoints
	api.Handle("/leads", adminAuth(c.Admin, http.HandlerFunc(leadHandler.List))).Methods("GET", "OPTIONS")
	api.Handle("/leads/{id}", adminAuth(c.Admin, http.HandlerFunc(leadHandler.UpdateProcessed))).Methods("PATCH", "OPTIONS")
	api.Handle("/leads/{id}", adminAuth(c.Admin, http.HandlerFunc(leadHandler.Delete))).Methods("DELETE", "OPTIONS")

	r.Handle("/ws/leads", adminAuth(c.Admin, http.HandlerFunc(feedHandler.ServeFeed))).Methods("GET")

	return r
}
