// Package server exposes the LifeOS store and its derived views over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/at-ishikawa/lifeos/internal/snapshot"
	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/studyplan"
	"github.com/at-ishikawa/lifeos/internal/validation"
)

const maxBodyBytes = 1 << 20

// Server is the LifeOS HTTP API server.
type Server struct {
	store          *store.Store
	validator      *validation.Validator
	snapshots      snapshot.Repository
	gatherer       prometheus.Gatherer
	loc            *time.Location
	now            func() time.Time
	newID          func() string
	allowedOrigins map[string]bool
}

// Option configures a Server.
type Option func(*Server)

// WithSnapshots enables POST /api/snapshots.
func WithSnapshots(repo snapshot.Repository) Option {
	return func(s *Server) { s.snapshots = repo }
}

// WithMetrics enables GET /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithLocation sets the time zone "today" is taken in.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithIDs replaces the uuid generator used for new entities.
func WithIDs(newID func() string) Option {
	return func(s *Server) { s.newID = newID }
}

func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		for _, o := range origins {
			s.allowedOrigins[o] = true
		}
	}
}

// New creates a new Server around st.
func New(st *store.Store, v *validation.Validator, opts ...Option) *Server {
	s := &Server{
		store:          st,
		validator:      v,
		loc:            time.Local,
		now:            time.Now,
		newID:          uuid.NewString,
		allowedOrigins: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/actions", s.handleAction)

		s.mountForms(r)
		r.Put("/exam", s.handleSetExam)
		r.Post("/habits/{id}/toggle", s.handleToggleHabit)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/habits/overview", s.handleHabitOverview)
		r.Get("/tasks/buckets", s.handleTaskBuckets)
		r.Get("/tasks/upcoming", s.handleUpcomingTasks)
		r.Get("/finance/summary", s.handleFinanceSummary)
		r.Get("/finance/categories", s.handleFinanceCategories)
		r.Get("/fitness/summary", s.handleFitnessSummary)
		r.Get("/study/progress", s.handleStudyProgress)
		r.Get("/study/today", s.handleStudyToday)
		r.Get("/study/exam", s.handleExam)
		r.Get("/books/counts", s.handleBookCounts)
		r.Get("/books", s.handleBooks)
		r.Get("/quotes", s.handleQuotes)

		r.Route("/study-plan", func(r chi.Router) {
			r.Get("/", s.handleStudyPlan)
			r.Post("/", s.handlePlaceEntry)
			r.Put("/{id}", s.handleMoveEntry)
			r.Delete("/{id}", s.handleRemoveEntry)
		})

		if s.snapshots != nil {
			r.Post("/snapshots", s.handleSaveSnapshot)
		}
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State())
}

func (s *Server) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	takenAt := s.now()
	if err := s.snapshots.Save(r.Context(), s.store.State(), takenAt); err != nil {
		slog.Error("failed to save snapshot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save snapshot", nil)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]time.Time{"takenAt": takenAt})
}

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

type errorBody struct {
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Details []string `json:"details,omitempty"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string, details []string) {
	writeJSON(w, status, map[string]errorBody{
		"error": {Message: msg, Type: errorType(status), Details: details},
	})
}

func errorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "invalid"
	case http.StatusServiceUnavailable:
		return "unavailable"
	}
	return "internal"
}

// writeStoreError maps store and study plan errors to status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusUnprocessableEntity, "validation failed", validationErr.Messages)
	case errors.Is(err, store.ErrMalformedAction), errors.Is(err, store.ErrUnknownAction):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, studyplan.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, store.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, store.ErrInvalidReference), errors.Is(err, studyplan.ErrInvalidDay):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		slog.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if s.allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
