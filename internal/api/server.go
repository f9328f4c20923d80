// Package api serves pathviz over HTTP.
//
// The API has one stateless endpoint that answers a single query for a matrix
// posted in the request, and a set of session endpoints that keep a model,
// its layout and the latest result between requests:
//
//	GET    /healthz
//	POST   /api/v1/path
//	POST   /api/v1/sessions
//	GET    /api/v1/sessions/{id}
//	DELETE /api/v1/sessions/{id}
//	PUT    /api/v1/sessions/{id}/matrix
//	PUT    /api/v1/sessions/{id}/canvas
//	POST   /api/v1/sessions/{id}/query
//	GET    /api/v1/sessions/{id}/render?format=svg
//
// Failures are returned as {"code": ..., "error": ...}. Validation codes map
// to 400, SESSION_NOT_FOUND to 404 and everything else to 500.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pathviz/pkg/pipeline"
	"github.com/matzehuels/pathviz/pkg/session"
)

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 1 << 20

	// shutdownTimeout is how long in-flight requests get after the context
	// passed to ListenAndServe is cancelled.
	shutdownTimeout = 10 * time.Second
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	runner *pipeline.Runner
	store  session.Store
	logger *log.Logger
	width  float64
	height float64
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for handler errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithCanvas sets the canvas used for sessions created without one.
func WithCanvas(width, height float64) Option {
	return func(s *Server) {
		s.width = width
		s.height = height
	}
}

// New creates a server. A nil store keeps sessions in memory.
func New(runner *pipeline.Runner, store session.Store, opts ...Option) *Server {
	if store == nil {
		store = session.NewMemoryStore(session.DefaultTTL)
	}
	s := &Server{
		runner: runner,
		store:  store,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		width:  session.DefaultWidth,
		height: session.DefaultHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/path", s.handlePath)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Put("/matrix", s.handleLoadMatrix)
				r.Put("/canvas", s.handleResize)
				r.Post("/query", s.handleQuery)
				r.Get("/render", s.handleRender)
			})
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	janitor := time.NewTicker(time.Minute)
	defer janitor.Stop()

	for {
		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-janitor.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}
