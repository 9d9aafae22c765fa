package game

import "github.com/google/uuid"

// NewRound starts a round with a fresh root word and a full countdown.
func NewRound(pick PickFunc) Round {
	return Round{
		ID:               uuid.NewString(),
		RootWord:         pickRoot(pick),
		UsedWords:        []string{},
		RemainingSeconds: RoundSeconds,
		Active:           true,
	}
}

// Restart re-picks the root word and resets used words, score and timer.
// ID and Active are kept.
func (r Round) Restart(pick PickFunc) Round {
	r.RootWord = pickRoot(pick)
	r.UsedWords = []string{}
	r.Score = 0
	r.RemainingSeconds = RoundSeconds
	return r
}

// Submit validates raw and, when accepted, returns the round with the word
// prepended and the score incremented, plus the normalized word.
//
// Input that is empty after trimming is ignored: the round comes back
// unchanged with an empty word and a nil error.
// A refused word yields the unchanged round and a *Rejection.
func (r Round) Submit(raw string, checker SpellChecker) (Round, string, error) {
	word := Normalize(raw)
	if word == "" {
		return r, "", nil
	}
	if err := Validate(word, r.RootWord, r.UsedWords, checker); err != nil {
		return r, "", err
	}

	used := make([]string, 0, len(r.UsedWords)+1)
	used = append(used, word)
	used = append(used, r.UsedWords...)
	r.UsedWords = used
	r.Score++
	return r, word, nil
}

// Tick advances the countdown by one second while the round is active.
// When the countdown reaches zero the round restarts and expired is true.
func (r Round) Tick(pick PickFunc) (next Round, expired bool) {
	if !r.Active {
		return r, false
	}
	if r.RemainingSeconds > 0 {
		r.RemainingSeconds--
	}
	if r.RemainingSeconds == 0 {
		return r.Restart(pick), true
	}
	return r, false
}

// SetActive records a foreground (true) or background (false) transition.
func (r Round) SetActive(active bool) Round {
	r.Active = active
	return r
}

func pickRoot(pick PickFunc) string {
	if pick == nil {
		return FallbackRootWord
	}
	if w := pick(); w != "" {
		return w
	}
	return FallbackRootWord
}
