// internal/httpserver/server.go
//
// HTTP server wiring for the words game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Round endpoints: mounted under /round (see routes_round.go).
//   - Countdown hook: TickAll drops rounds whose token has expired and
//     advances every remaining round by one second.
//
// Notes:
//   - Each browser owns one independent round, identified by a signed round
//     token carried in a cookie or an Authorization bearer header.
//   - Round state lives in the in-memory store only.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/store"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Pick         game.PickFunc
	Checker      game.SpellChecker
	Secret       string        // HMAC key for round tokens
	ClientOrigin string        // allowed CORS origin
	Production   bool          // secure cookies
	RoundTTL     time.Duration // token lifetime; 0 means roundTokenTTL
}

// Server bundles router, round store and game collaborators.
type Server struct {
	r       *chi.Mux
	store   store.Store
	pick    game.PickFunc
	checker game.SpellChecker
	tokens  *tokenSigner
	origin  string
	secure  bool
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	origin := opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	ttl := opts.RoundTTL
	if ttl <= 0 {
		ttl = roundTokenTTL
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   opts.Store,
		pick:    opts.Pick,
		checker: opts.Checker,
		tokens:  newTokenSigner(opts.Secret, ttl),
		origin:  origin,
		secure:  opts.Production,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"words-go","endpoints":["/health","POST /round/new","GET /round","POST /round/submit","POST /round/restart","POST /round/active"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "rounds": s.store.Len()})
	})

	s.mountRound()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// TickAll drops rounds whose token has expired, then advances the countdown
// of every active round by one second, restarting rounds whose time ran out.
func (s *Server) TickAll(ctx context.Context) {
	if n := s.store.Prune(ctx, time.Now()); n > 0 {
		log.Debug().Int("rounds", n).Msg("expired rounds dropped")
	}
	s.store.UpdateAll(ctx, func(r game.Round) game.Round {
		next, expired := r.Tick(s.pick)
		if expired {
			log.Debug().Str("round", r.ID).Int("score", r.Score).Str("root", next.RootWord).Msg("round expired")
		}
		return next
	})
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
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

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
