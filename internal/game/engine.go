// internal/game/engine.go
//
// Word validation for the words game.
// Responsibilities:
//   - Normalize raw submissions (case fold + trim).
//   - Check originality, letter availability and dictionary membership.
//   - Compose the three checks in a fixed order; the first failure wins.
//
// All functions here are pure: the dictionary is injected as a SpellChecker.
package game

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases s and trims surrounding whitespace and newlines.
func Normalize(s string) string {
	// cases.Caser keeps state; one per call.
	return strings.TrimSpace(cases.Lower(language.English).String(s))
}

// IsOriginal reports whether word has not been used yet.
func IsOriginal(word string, used []string) bool {
	return !lo.Contains(used, word)
}

// IsPossible reports whether word can be spelled from the letters of root.
// Every letter of word consumes one occurrence from a pool built from root,
// so repeated letters need repeated occurrences.
func IsPossible(word, root string) bool {
	pool := []rune(strings.ToLower(root))
	for _, letter := range word {
		i := slices.Index(pool, letter)
		if i < 0 {
			return false
		}
		pool = slices.Delete(pool, i, i+1)
	}
	return true
}

// IsReal reports whether checker finds no misspelling in word.
// A nil checker recognizes nothing.
func IsReal(word string, checker SpellChecker) bool {
	if checker == nil {
		return false
	}
	return !checker.Misspelled(word, Language)
}

// Validate runs the originality, possibility and dictionary checks in that
// order and returns a *Rejection for the first one that fails.
// word must already be normalized.
func Validate(word, root string, used []string, checker SpellChecker) error {
	if !IsOriginal(word, used) {
		return rejectUsed()
	}
	if !IsPossible(word, root) {
		return rejectNotPossible(root)
	}
	if !IsReal(word, checker) {
		return rejectNotReal()
	}
	return nil
}
