// Package app wires the word source and the dictionary from configuration.
// Both front-ends (HTTP server and terminal) start through Bootstrap.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/config"
	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/lexicon"
	"github.com/robalobadob/wordsgame/internal/words"
)

// Deps are the collaborators a round needs.
type Deps struct {
	Source  *words.Source
	Checker game.SpellChecker
}

// Pick returns a fresh root word.
func (d *Deps) Pick() string { return d.Source.Pick() }

// Bootstrap loads the root word list and the dictionary.
// With a lexicon DSN the dictionary is seeded into SQLite and read back
// into memory, so word checks never touch the database.
// Any error here is a startup fault; callers are expected to exit.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Deps, error) {
	roots, err := words.LoadStartWords(cfg.Words.StartFile)
	if err != nil {
		return nil, fmt.Errorf("load root words: %w", err)
	}
	log.Info().Int("words", len(roots)).Msg("root words loaded")

	dictWords, err := words.LoadDictionaryWords(cfg.Words.DictionaryFile)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	deps := &Deps{Source: words.NewSource(roots)}

	if cfg.Words.LexiconDSN == "" {
		deps.Checker = words.NewDictionary(game.Language, dictWords)
		log.Info().Int("words", len(dictWords)).Msg("in-memory dictionary ready")
		return deps, nil
	}

	lex, err := lexicon.Open(cfg.Words.LexiconDSN)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer lex.Close()

	source := cfg.Words.DictionaryFile
	if source == "" {
		source = "embedded"
	}
	if err := lex.Seed(ctx, game.Language, source, dictWords); err != nil {
		return nil, fmt.Errorf("seed lexicon: %w", err)
	}
	dict, err := lex.Dictionary(ctx, game.Language)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	deps.Checker = dict
	log.Info().Str("dsn", cfg.Words.LexiconDSN).Int("words", dict.Len()).Msg("sqlite lexicon loaded")
	return deps, nil
}
