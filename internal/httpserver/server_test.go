package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/store"
	"github.com/robalobadob/wordsgame/internal/words"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Options{
		Store:   store.NewMemoryStore(),
		Pick:    func() string { return "silkworm" },
		Checker: words.NewDictionary(game.Language, []string{"silk", "worm", "milk", "dog"}),
		Secret:  "test-secret",
	})
}

func do(t *testing.T, s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func startRound(t *testing.T, s *Server) string {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/round/new", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[roundRes](t, rec)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "silkworm", res.RootWord)
	assert.Equal(t, game.RoundSeconds, res.RemainingSeconds)
	assert.NotEmpty(t, rec.Result().Cookies())
	return res.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestRoundRequiresToken(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, "/round", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, "/round", "garbage", "").Code)

	other := newTokenSigner("other-secret", roundTokenTTL)
	tok, _, err := other.sign("some-round")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, "/round", tok, "").Code)
}

func TestUnknownRound(t *testing.T) {
	s := newTestServer(t)
	tok, _, err := s.tokens.sign("missing")
	require.NoError(t, err)
	rec := do(t, s, http.MethodGet, "/round", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitFlow(t *testing.T) {
	s := newTestServer(t)
	tok := startRound(t, s)

	rec := do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"  Worm "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[roundRes](t, rec)
	assert.Equal(t, "worm", res.Accepted)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, []usedWordRes{{Word: "worm", Length: 4}}, res.UsedWords)

	rec = do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"worm"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rej := decode[rejectionRes](t, rec)
	assert.Equal(t, game.AlreadyUsed, rej.Error)
	assert.Equal(t, "Word used already", rej.Title)

	rec = do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"dog"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, game.NotPossibleFromRoot, decode[rejectionRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"slow"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, game.NotARealWord, decode[rejectionRes](t, rec).Error)

	rec = do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"   "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[roundRes](t, rec)
	assert.Empty(t, res.Accepted)
	assert.Equal(t, 1, res.Score)

	rec = do(t, s, http.MethodPost, "/round/submit", tok, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/round", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[roundRes](t, rec).Score)
}

func TestRestartAndActive(t *testing.T) {
	s := newTestServer(t)
	tok := startRound(t, s)

	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"silk"}`).Code)

	rec := do(t, s, http.MethodPost, "/round/restart", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[roundRes](t, rec)
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.UsedWords)

	rec = do(t, s, http.MethodPost, "/round/active", tok, `{"active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[roundRes](t, rec).Active)

	s.TickAll(context.Background())
	rec = do(t, s, http.MethodGet, "/round", tok, "")
	assert.Equal(t, game.RoundSeconds, decode[roundRes](t, rec).RemainingSeconds)

	rec = do(t, s, http.MethodPost, "/round/active", tok, `{"active":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	s.TickAll(context.Background())
	rec = do(t, s, http.MethodGet, "/round", tok, "")
	assert.Equal(t, game.RoundSeconds-1, decode[roundRes](t, rec).RemainingSeconds)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/round/active", tok, `{}`).Code)
}

func TestTickAllExpiresRound(t *testing.T) {
	s := newTestServer(t)
	tok := startRound(t, s)
	require.Equal(t, http.StatusOK, do(t, s, http.MethodPost, "/round/submit", tok, `{"word":"milk"}`).Code)

	for i := 0; i < game.RoundSeconds; i++ {
		s.TickAll(context.Background())
	}
	res := decode[roundRes](t, do(t, s, http.MethodGet, "/round", tok, ""))
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.UsedWords)
	assert.Equal(t, game.RoundSeconds, res.RemainingSeconds)
}

func TestNewRoundReplacesPrevious(t *testing.T) {
	s := newTestServer(t)
	first := startRound(t, s)
	assert.Equal(t, 1, s.store.Len())

	rec := do(t, s, http.MethodPost, "/round/new", first, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.store.Len())
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/round", first, "").Code)
}

func TestTickAllDropsExpiredRounds(t *testing.T) {
	s := New(Options{
		Store:    store.NewMemoryStore(),
		Pick:     func() string { return "silkworm" },
		Checker:  words.NewDictionary(game.Language, []string{"worm"}),
		Secret:   "test-secret",
		RoundTTL: time.Millisecond,
	})
	var last string
	for i := 0; i < 500; i++ {
		rec := do(t, s, http.MethodPost, "/round/new", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		last = decode[roundRes](t, rec).Token
	}
	assert.Equal(t, 500, s.store.Len())

	time.Sleep(1100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		s.TickAll(context.Background())
	}
	assert.Equal(t, 0, s.store.Len())
	assert.Contains(t, do(t, s, http.MethodGet, "/health", "", "").Body.String(), `"rounds":0`)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, "/round", last, "").Code)
}

func TestTickAllKeepsLiveRounds(t *testing.T) {
	s := newTestServer(t)
	tok := startRound(t, s)
	for i := 0; i < 3; i++ {
		s.TickAll(context.Background())
	}
	assert.Equal(t, 1, s.store.Len())
	res := decode[roundRes](t, do(t, s, http.MethodGet, "/round", tok, ""))
	assert.Equal(t, game.RoundSeconds-3, res.RemainingSeconds)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodOptions, "/round/submit", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
