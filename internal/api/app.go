package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/jlundholm/activity-finder/internal/config"
	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/jlundholm/activity-finder/internal/stats"
)

type FinderApp struct {
	log       *log.Logger
	db        database.ActivityFinderRepository
	mux       *http.Server
	stats     stats.StatsProvider
	accessKey []byte
	idKey     []byte
}

func NewFinderApp(mux *http.ServeMux, logger *log.Logger, db database.ActivityFinderRepository, st stats.StatsProvider, cfg *config.Config) *FinderApp {
	s := &FinderApp{
		log:       logger,
		db:        db,
		stats:     st,
		accessKey: cfg.AccessTokenKey,
		idKey:     cfg.IdTokenKey,
	}

	mux.HandleFunc("GET /accounts", s.getAccounts)
	mux.HandleFunc("GET /accounts/{id}", s.getAccount)
	mux.HandleFunc("POST /accounts", s.createAccount)
	mux.HandleFunc("POST /tokens", s.createToken)
	mux.HandleFunc("GET /activities", s.getActivities)
	mux.HandleFunc("GET /activities/{id}", s.getActivity)
	mux.HandleFunc("POST /activities", s.createActivity)
	mux.HandleFunc("PUT /activities/{id}", s.updateActivity)
	mux.HandleFunc("DELETE /activities/{id}", s.deleteActivity)
	mux.HandleFunc("GET /healthz", s.healthCheck)

	var h http.Handler = mux
	h = s.bearerIdentity(h)
	h = s.requestLogger(h)

	// Credentials travel in the Authorization header, never cookies, so a
	// fully open CORS policy is acceptable here.
	h = handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", "Authorization"}),
		handlers.ExposedHeaders([]string{"Location"}),
	)(h)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *FinderApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *FinderApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *FinderApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

func (s *FinderApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Printf("health check: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
