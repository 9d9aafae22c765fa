// Package terminal is the single-screen terminal front-end of the game.
//
// A Controller owns one round and is driven by three kinds of events:
// input lines, countdown ticks and lifecycle commands. Callers must deliver
// events from a single goroutine.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordsgame/internal/game"
)

// Commands understood besides plain word submissions.
const (
	cmdNew    = ":new"
	cmdPause  = ":pause"
	cmdResume = ":resume"
	cmdQuit   = ":quit"
	cmdHelp   = ":help"
)

// Controller holds the round state for the terminal client.
type Controller struct {
	round   game.Round
	pick    game.PickFunc
	checker game.SpellChecker
	out     io.Writer
}

// NewController starts a round and writes output to out.
func NewController(pick game.PickFunc, checker game.SpellChecker, out io.Writer) *Controller {
	return &Controller{
		round:   game.NewRound(pick),
		pick:    pick,
		checker: checker,
		out:     out,
	}
}

// Round returns the current round.
func (c *Controller) Round() game.Round { return c.round }

// Prompt renders the status line shown before the input cursor.
func (c *Controller) Prompt() string {
	state := ""
	if !c.round.Active {
		state = " (paused)"
	}
	return fmt.Sprintf("\033[1m%s\033[0m  timer:%2d  words:%d%s> ",
		c.round.RootWord, c.round.RemainingSeconds, c.round.Score, state)
}

// HandleLine processes one input line and reports whether the user quit.
func (c *Controller) HandleLine(line string) (quit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case cmdQuit:
		return true
	case cmdHelp:
		c.println("Type words made from the letters of the root word.")
		c.println("Commands: :new (change word), :pause, :resume, :quit")
		return false
	case cmdNew:
		c.round = c.round.Restart(c.pick)
		c.printf("New word: %s\n", c.round.RootWord)
		return false
	case cmdPause:
		c.SetActive(false)
		return false
	case cmdResume:
		c.SetActive(true)
		return false
	}

	next, word, err := c.round.Submit(line, c.checker)
	var rej *game.Rejection
	if errors.As(err, &rej) {
		c.printf("%s: %s\n", rej.Title, rej.Message)
		return false
	}
	c.round = next
	if word != "" {
		c.printUsed()
	}
	return false
}

// HandleTick advances the countdown and reports whether the round restarted.
func (c *Controller) HandleTick() (expired bool) {
	prev := c.round
	c.round, expired = c.round.Tick(c.pick)
	if expired {
		c.printf("Time's up! %d words from %s. New word: %s\n", prev.Score, prev.RootWord, c.round.RootWord)
	}
	return expired
}

// SetActive records a foreground/background transition.
func (c *Controller) SetActive(active bool) {
	c.round = c.round.SetActive(active)
}

func (c *Controller) printUsed() {
	for _, w := range c.round.UsedWords {
		c.printf("  (%d) %s\n", len([]rune(w)), w)
	}
}

func (c *Controller) println(s string) { _, _ = io.WriteString(c.out, s+"\n") }

func (c *Controller) printf(format string, args ...any) { _, _ = fmt.Fprintf(c.out, format, args...) }
