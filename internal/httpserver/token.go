package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	roundCookieName = "words_round"
	roundTokenTTL   = 24 * time.Hour
)

var errNoRound = errors.New("no round token")

// tokenSigner issues and verifies HS256 tokens carrying a round ID.
type tokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func newTokenSigner(secret string, ttl time.Duration) *tokenSigner {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	return &tokenSigner{secret: []byte(secret), ttl: ttl}
}

// sign creates a token for roundID and returns it with its expiry.
func (t *tokenSigner) sign(roundID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rid": roundID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse verifies tokenStr and returns the round ID it carries.
func (t *tokenSigner) parse(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid round token")
	}
	id, _ := claims["rid"].(string)
	if id == "" {
		return "", errors.New("invalid round token")
	}
	return id, nil
}

// bearerOrCookie extracts a round token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(roundCookieName); err == nil {
		return c.Value
	}
	return ""
}

// setRoundCookie writes the round token cookie.
func (s *Server) setRoundCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     roundCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// ctxRoundKey is the context key type for the round ID.
type ctxRoundKey struct{}

// roundIDFrom returns the round ID placed by requireRound.
func roundIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRoundKey{}).(string)
	return id
}

// requireRound enforces a valid round token and injects the round ID into
// the request context.
func (s *Server) requireRound(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.roundFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "no_round")
			return
		}
		ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) roundFromRequest(r *http.Request) (string, error) {
	tok := bearerOrCookie(r)
	if tok == "" {
		return "", errNoRound
	}
	return s.tokens.parse(tok)
}
