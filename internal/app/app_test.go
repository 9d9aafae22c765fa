package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsgame/internal/config"
	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/lexicon"
	"github.com/robalobadob/wordsgame/internal/words"
)

func TestBootstrapInMemory(t *testing.T) {
	cfg := &config.Config{}
	deps, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)

	assert.IsType(t, &words.Dictionary{}, deps.Checker)
	assert.NotEmpty(t, deps.Pick())
	assert.True(t, game.IsReal("worm", deps.Checker))
}

func TestBootstrapLexicon(t *testing.T) {
	cfg := &config.Config{}
	cfg.Words.LexiconDSN = filepath.Join(t.TempDir(), "lexicon.db")

	deps, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)

	// Word checks are served from memory; the database is closed by now.
	assert.IsType(t, &words.Dictionary{}, deps.Checker)
	assert.True(t, game.IsReal("worm", deps.Checker))
	assert.False(t, game.IsReal("wlkm", deps.Checker))
}

func TestBootstrapLexiconKeepsImportedWords(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "lexicon.db")

	lex, err := lexicon.Open(dsn)
	require.NoError(t, err)
	_, err = lex.Import(ctx, game.Language, "extra", []string{"silkworms", "wormsilk"})
	require.NoError(t, err)
	require.NoError(t, lex.Close())

	cfg := &config.Config{}
	cfg.Words.LexiconDSN = dsn
	deps, err := Bootstrap(ctx, cfg)
	require.NoError(t, err)

	// An already populated lexicon is not reseeded, so only its words count.
	assert.True(t, game.IsReal("wormsilk", deps.Checker))
	assert.False(t, game.IsReal("worm", deps.Checker))
}

func TestBootstrapMissingStartFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Words.StartFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err := Bootstrap(context.Background(), cfg)
	assert.Error(t, err)
}
