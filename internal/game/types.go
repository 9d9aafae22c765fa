// internal/game/types.go
//
// Core type definitions for the words game.
// Defines:
//   - Round: the explicit state of one round (root word, used words, score, timer).
//   - PickFunc: supplies a fresh root word on start/restart.
//   - SpellChecker: the external dictionary oracle.

package game

const (
	// RoundSeconds is the countdown length of every round.
	RoundSeconds = 60

	// FallbackRootWord is used when the root word list is empty.
	FallbackRootWord = "silkworm"

	// Language is the single spell-check locale.
	Language = "en"
)

// Round holds the state of a single round.
// Values are treated as immutable; reducers in round.go return a new Round.
type Round struct {
	ID               string   // Unique round identifier (uuid).
	RootWord         string   // Word whose letters submissions must draw from.
	UsedWords        []string // Accepted words, most recent first.
	Score            int      // Number of accepted words.
	RemainingSeconds int      // Countdown, 0..RoundSeconds.
	Active           bool     // False while the client is in the background.
}

// PickFunc returns a root word for a new round.
type PickFunc func() string

// SpellChecker reports whether word contains a misspelled span
// for the given language code.
type SpellChecker interface {
	Misspelled(word, language string) bool
}
