// Package server exposes the correction pipeline over HTTP as a small JSON
// API. When a personal dictionary is configured, suggestions whose flagged
// span is a known word are filtered out of responses.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Qeenon/nlprule"
	"github.com/Qeenon/nlprule/internal/customdict"
)

// Server handles suggestion and correction requests against one loaded
// rule set.
type Server struct {
	router chi.Router
	rules  *nlprule.Rules
	dict   *customdict.Dict
	log    *slog.Logger

	addr            string
	shutdownTimeout time.Duration
}

// New builds a Server. dict may be nil; then no filtering happens.
func New(addr string, rules *nlprule.Rules, dict *customdict.Dict, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		rules:           rules,
		dict:            dict,
		log:             log,
		addr:            addr,
		shutdownTimeout: 5 * time.Second,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", s.handleHealth)
	r.Post("/v1/suggest", s.handleSuggest)
	r.Post("/v1/correct", s.handleCorrect)
	r.Route("/v1/dict", func(r chi.Router) {
		r.Get("/", s.handleDictList)
		r.Put("/{word}", s.handleDictAdd)
		r.Delete("/{word}", s.handleDictRemove)
	})

	s.router = r
}

// Start runs the server until ctx is canceled, then shuts it down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": nlprule.Version})
}
