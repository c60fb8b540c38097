// internal/httpserver/server.go
//
// HTTP server wiring for the feedback comparator.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access log).
//   - Public endpoints: "/", "/health".
//   - Comparison endpoints: POST /compare, POST /compare/batch.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled for a single origin.
//   - Word length and glyphs come from config; handlers never read the
//     environment themselves.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/feedback/internal/config"
	"github.com/robalobadob/wordle/apps/feedback/internal/feedback"
	"github.com/robalobadob/wordle/apps/feedback/internal/render"
)

// Server bundles the router, comparator and settings.
type Server struct {
	r   *chi.Mux
	cmp *feedback.Comparator
	cfg config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config) (*Server, error) {
	cmp, err := feedback.New(cfg.WordLength)
	if err != nil {
		return nil, err
	}
	cfg.Glyphs = cfg.Glyphs.WithDefaults()
	s := &Server{r: chi.NewRouter(), cmp: cmp, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                         // one log line per request
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.HandlerTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(corsFor(cfg.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":    "wordle-feedback",
			"wordLength": s.cmp.WordLength(),
			"endpoints":  []string{"/health", "POST /compare", "POST /compare/batch"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/compare", func(r chi.Router) {
		r.With(chimw.RequestSize(s.compareLimit())).Post("/", s.handleCompare)
		r.With(chimw.RequestSize(s.batchLimit())).Post("/batch", s.handleBatch)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found", Detail: r.URL.Path})
	})

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes a structured line per request once the handler returns.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Str("reqId", chimw.GetReqID(r.Context())).
				Msg("http")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------- helpers -----------------------------------

// errorRes is the body of every non-2xx response.
type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Index  *int   `json:"index,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// resultFor shapes one comparison for the wire.
func (s *Server) resultFor(guess feedback.Word, fb feedback.Feedback) compareRes {
	return compareRes{
		Guess:    guess.String(),
		Feedback: render.Letters(fb),
		Marks:    render.Marks(fb),
		Glyphs:   s.cfg.Glyphs.Render(fb),
		Solved:   fb.Solved(),
	}
}
