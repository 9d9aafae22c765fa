package words

import (
	"strings"
	"unicode"

	"github.com/robalobadob/wordsgame/assets"
)

// Dictionary is an in-memory spell checker for a single language.
type Dictionary struct {
	language string
	known    map[string]struct{}
}

// NewDictionary builds a Dictionary for language from list.
func NewDictionary(language string, list []string) *Dictionary {
	known := make(map[string]struct{}, len(list))
	for _, w := range list {
		known[strings.ToLower(w)] = struct{}{}
	}
	return &Dictionary{language: language, known: known}
}

// LoadDictionary reads the word list at path, or the embedded English list
// when path is empty.
func LoadDictionary(language, path string) (*Dictionary, error) {
	list, err := LoadDictionaryWords(path)
	if err != nil {
		return nil, err
	}
	return NewDictionary(language, list), nil
}

// LoadDictionaryWords returns the raw dictionary word list from path or the
// embedded default.
func LoadDictionaryWords(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = ReadFile(path)
	} else {
		list, err = assets.DictionaryList()
	}
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// Misspelled reports whether any letter run in word is unknown.
// Text in a language other than the dictionary's is never recognized.
func (d *Dictionary) Misspelled(word, language string) bool {
	if language != d.language {
		return true
	}
	for _, tok := range Tokens(word) {
		if _, ok := d.known[tok]; !ok {
			return true
		}
	}
	return false
}

// Len reports the number of known words.
func (d *Dictionary) Len() int { return len(d.known) }

// Tokens splits s into lowercase runs of letters and apostrophes.
func Tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
