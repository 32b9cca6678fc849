// internal/httpserver/server.go
//
// Read-only leaderboard API over the scorecard store (`wordplay serve`).
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health".
//   - GET /games: playable game names.
//   - GET /scores/{game}?num=N: top N scorecards, ranked like `wordplay score`.
//
// Notes:
//   - CORS allows a single origin from CLIENT_ORIGIN (default *); there are no
//     credentials, so a wildcard is safe.
//   - Nothing here writes to the store.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

// DefaultTop is used when ?num is absent.
const DefaultTop = 5

// MaxTop caps ?num.
const MaxTop = 100

// Server bundles the router and the scorecard store it reads from.
type Server struct {
	r     *chi.Mux
	store scorecard.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st scorecard.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordplay","endpoints":["/health","/games","/scores/{game}?num=N"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/games", s.handleGames)
	s.r.Get("/scores/{game}", s.handleScores)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

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

func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

type scoresRes struct {
	Game   game.Type             `json:"game"`
	Scores []scorecard.Scorecard `json:"scores"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string][]game.Type{"games": game.Types})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	t, err := game.ParseType(chi.URLParam(r, "game"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_game")
		return
	}
	n := DefaultTop
	if v := r.URL.Query().Get("num"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_num")
			return
		}
	}
	if n > MaxTop {
		n = MaxTop
	}

	top, err := scorecard.TopN(r.Context(), s.store, t, n)
	if err != nil {
		log.Error().Err(err).Str("game", string(t)).Msg("load scorecards")
		writeError(w, http.StatusInternalServerError, "store_unavailable")
		return
	}
	_ = json.NewEncoder(w).Encode(scoresRes{Game: t, Scores: top})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
