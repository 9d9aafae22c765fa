package game

import (
	"errors"
	"fmt"
)

// RejectionKind identifies why a submission was refused.
type RejectionKind string

const (
	AlreadyUsed         RejectionKind = "already_used"
	NotPossibleFromRoot RejectionKind = "not_possible"
	NotARealWord        RejectionKind = "not_real"
)

// Sentinel errors, matched with errors.Is against a *Rejection.
var (
	ErrAlreadyUsed = errors.New("word already used")
	ErrNotPossible = errors.New("word not possible from root")
	ErrNotReal     = errors.New("word not recognized")
)

// Rejection is a user-facing, non-fatal refusal of a submission.
type Rejection struct {
	Kind    RejectionKind
	Title   string
	Message string
	err     error
}

func (r *Rejection) Error() string { return r.Title + ": " + r.Message }

func (r *Rejection) Unwrap() error { return r.err }

func rejectUsed() *Rejection {
	return &Rejection{
		Kind:    AlreadyUsed,
		Title:   "Word used already",
		Message: "Be more original",
		err:     ErrAlreadyUsed,
	}
}

func rejectNotPossible(root string) *Rejection {
	return &Rejection{
		Kind:    NotPossibleFromRoot,
		Title:   "Word not possible",
		Message: fmt.Sprintf("You can't spell that word from '%s'", root),
		err:     ErrNotPossible,
	}
}

func rejectNotReal() *Rejection {
	return &Rejection{
		Kind:    NotARealWord,
		Title:   "Word not recognized",
		Message: "You can't just make them up",
		err:     ErrNotReal,
	}
}
