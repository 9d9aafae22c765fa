// internal/words/words.go
//
// Root word list management for the words game.
//
// Responsibilities:
//   - Load the newline-separated root word list from a file or the embedded default.
//   - Pick a root word uniformly at random, falling back to a fixed literal.
//
// Environment (read by internal/config):
//   WORDS_START_FILE=/path/to/start.txt
//
// Constraints:
//   • Lines are trimmed and lowercased; blank lines and "#" comments are skipped.
//   • Duplicate lines are collapsed so every word has the same chance.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordsgame/assets"
	"github.com/robalobadob/wordsgame/internal/game"
)

// ErrEmptyList is returned when a word list has no usable entries.
var ErrEmptyList = errors.New("words: list is empty")

// Parse reads one word per line from r.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(out), nil
}

// ReadFile loads a word list from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// LoadStartWords loads root words from path, or from the embedded list
// when path is empty. An empty result is an error.
func LoadStartWords(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = ReadFile(path)
	} else {
		list, err = assets.StartList()
	}
	if err != nil {
		return nil, err
	}
	list = lo.Uniq(list)
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// PickRootWord returns a uniformly random element of list using intn,
// which must return a value in [0, n). An empty list yields
// game.FallbackRootWord.
func PickRootWord(list []string, intn func(n int) int) string {
	if len(list) == 0 {
		return game.FallbackRootWord
	}
	return list[intn(len(list))]
}

// CryptoIntn returns a crypto-random int in [0, n).
func CryptoIntn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Source picks root words from a loaded list.
type Source struct {
	list []string
	intn func(int) int
}

// NewSource returns a Source over list using crypto randomness.
func NewSource(list []string) *Source {
	return &Source{list: list, intn: CryptoIntn}
}

// Pick returns a random root word. It satisfies game.PickFunc.
func (s *Source) Pick() string {
	return PickRootWord(s.list, s.intn)
}

// Len reports how many root words are loaded.
func (s *Source) Len() int { return len(s.list) }
