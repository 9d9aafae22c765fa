// internal/httpserver/routes_round.go
//
// HTTP routes for a single-player round.
//   - POST /round/new     → start a round, issue a round token (cookie + body)
//   - GET  /round         → current round view
//   - POST /round/submit  → submit a word; 422 with the rejection on refusal
//   - POST /round/restart → pick a new root word and reset the round
//   - POST /round/active  → foreground/background notification (pauses the timer)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/store"
)

// mountRound registers all /round routes.
func (s *Server) mountRound() {
	s.r.Route("/round", func(r chi.Router) {
		r.Post("/new", s.handleNewRound)
		r.Group(func(r chi.Router) {
			r.Use(s.requireRound)
			r.Get("/", s.handleGetRound)
			r.Post("/submit", s.handleSubmit)
			r.Post("/restart", s.handleRestart)
			r.Post("/active", s.handleActive)
		})
	})
}

// usedWordRes is one entry of the used words list with its letter count.
type usedWordRes struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// roundRes is the client view of a round.
type roundRes struct {
	RootWord         string        `json:"rootWord"`
	UsedWords        []usedWordRes `json:"usedWords"`
	Score            int           `json:"score"`
	RemainingSeconds int           `json:"remainingSeconds"`
	Active           bool          `json:"active"`
	Accepted         string        `json:"accepted,omitempty"` // set when a submission was accepted
	Token            string        `json:"token,omitempty"`    // set by /round/new
}

// rejectionRes is returned with 422 when a word is refused.
type rejectionRes struct {
	Error   game.RejectionKind `json:"error"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
}

func newRoundRes(rd game.Round) roundRes {
	used := make([]usedWordRes, 0, len(rd.UsedWords))
	for _, w := range rd.UsedWords {
		used = append(used, usedWordRes{Word: w, Length: utf8.RuneCountInString(w)})
	}
	return roundRes{
		RootWord:         rd.RootWord,
		UsedWords:        used,
		Score:            rd.Score,
		RemainingSeconds: rd.RemainingSeconds,
		Active:           rd.Active,
	}
}

// handleNewRound creates a round and replaces any round the client held.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	if old, err := s.roundFromRequest(r); err == nil {
		_ = s.store.Delete(r.Context(), old)
	}

	rd := game.NewRound(s.pick)
	tok, exp, err := s.tokens.sign(rd.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	// The round is unreachable once its token expires.
	if err := s.store.Save(r.Context(), rd, exp); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)
	log.Info().Str("round", rd.ID).Str("root", rd.RootWord).Msg("round started")

	res := newRoundRes(rd)
	res.Token = tok
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	rd, err := s.store.Get(r.Context(), roundIDFrom(r.Context()))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRoundRes(rd))
}

// submitReq is the payload for POST /round/submit.
type submitReq struct {
	Word string `json:"word"`
}

// handleSubmit validates a word against the round and applies it on success.
// Blank words are ignored and answered with the unchanged round.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var accepted string
	rd, err := s.store.Update(r.Context(), roundIDFrom(r.Context()), func(cur game.Round) (game.Round, error) {
		next, word, err := cur.Submit(req.Word, s.checker)
		accepted = word
		return next, err
	})

	var rej *game.Rejection
	if errors.As(err, &rej) {
		log.Debug().Str("round", rd.ID).Str("kind", string(rej.Kind)).Msg("word rejected")
		writeJSON(w, http.StatusUnprocessableEntity, rejectionRes{Error: rej.Kind, Title: rej.Title, Message: rej.Message})
		return
	}
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	res := newRoundRes(rd)
	res.Accepted = accepted
	writeJSON(w, http.StatusOK, res)
}

// handleRestart is the "change word" action.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	rd, err := s.store.Update(r.Context(), roundIDFrom(r.Context()), func(cur game.Round) (game.Round, error) {
		return cur.Restart(s.pick), nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRoundRes(rd))
}

// activeReq is the payload for POST /round/active.
type activeReq struct {
	Active *bool `json:"active"`
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	var req activeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	rd, err := s.store.Update(r.Context(), roundIDFrom(r.Context()), func(cur game.Round) (game.Round, error) {
		return cur.SetActive(*req.Active), nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRoundRes(rd))
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	log.Error().Err(err).Msg("round store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
