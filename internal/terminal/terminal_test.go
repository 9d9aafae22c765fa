package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordsgame/internal/game"
	"github.com/robalobadob/wordsgame/internal/words"
)

func newTestController(out *bytes.Buffer) *Controller {
	dict := words.NewDictionary(game.Language, []string{"silk", "worm", "word", "cab"})
	roots := []string{"silkworm", "keyboard"}
	i := 0
	pick := func() string {
		w := roots[i%len(roots)]
		i++
		return w
	}
	return NewController(pick, dict, out)
}

func TestSubmitAndReject(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(&out)
	assert.Contains(t, c.Prompt(), "silkworm")

	assert.False(t, c.HandleLine("worm"))
	assert.Equal(t, 1, c.Round().Score)
	assert.Contains(t, out.String(), "(4) worm")

	out.Reset()
	c.HandleLine("WORM")
	assert.Contains(t, out.String(), "Word used already")
	assert.Equal(t, 1, c.Round().Score)

	out.Reset()
	c.HandleLine("cab")
	assert.Contains(t, out.String(), "Word not possible")

	out.Reset()
	c.HandleLine("milk")
	assert.Contains(t, out.String(), "Word not recognized")

	c.HandleLine("   ")
	assert.Equal(t, 1, c.Round().Score)
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(&out)

	c.HandleLine("worm")
	c.HandleLine(":new")
	assert.Equal(t, "keyboard", c.Round().RootWord)
	assert.Equal(t, 0, c.Round().Score)

	c.HandleLine(":pause")
	assert.Contains(t, c.Prompt(), "paused")
	assert.False(t, c.HandleTick())
	assert.Equal(t, game.RoundSeconds, c.Round().RemainingSeconds)

	c.HandleLine(":resume")
	c.HandleTick()
	assert.Equal(t, game.RoundSeconds-1, c.Round().RemainingSeconds)

	assert.True(t, c.HandleLine(":quit"))
}

func TestTickExpiry(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(&out)
	c.HandleLine("silk")

	expired := false
	for i := 0; i < game.RoundSeconds && !expired; i++ {
		expired = c.HandleTick()
	}
	assert.True(t, expired)
	assert.Equal(t, "keyboard", c.Round().RootWord)
	assert.Empty(t, c.Round().UsedWords)
	assert.Contains(t, out.String(), "Time's up! 1 words from silkworm")
}
