// Command play runs the words game in the terminal.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/app"
	"github.com/robalobadob/wordsgame/internal/config"
	"github.com/robalobadob/wordsgame/internal/countdown"
	"github.com/robalobadob/wordsgame/internal/terminal"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:              "> ",
		EOFPrompt:           "exit",
		InterruptPrompt:     "^C",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("readline")
	}
	defer l.Close()

	ctl := terminal.NewController(deps.Pick, deps.Checker, l.Stdout())
	ctl.HandleLine(":help")
	l.SetPrompt(ctl.Prompt())

	lines := readLines(l)
	ticks := countdown.Channel(ctx, cfg.Game.TickInterval)

	// All round events are handled on this goroutine.
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			ctl.HandleTick()
		case line, ok := <-lines:
			if !ok || ctl.HandleLine(line) {
				return
			}
		}
		l.SetPrompt(ctl.Prompt())
		l.Refresh()
	}
}

// readLines feeds input lines into a channel that closes on EOF or an
// interrupt at an empty prompt.
func readLines(l *readline.Instance) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for {
			line, err := l.Readline()
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return
				}
				continue
			} else if err == io.EOF {
				return
			} else if err != nil {
				log.Error().Err(err).Msg("readline")
				return
			}
			out <- line
		}
	}()
	return out
}
