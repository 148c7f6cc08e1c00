// Package wordsource loads word corpora and generates typing phrases.
package wordsource

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

// Boundary separates words in a phrase. The space key decodes to it.
const Boundary = '•'

// ErrCorpusLoad wraps every failure to load a word corpus.
var ErrCorpusLoad = errors.New("failed to load word corpus")

//go:embed corpora/english.toml
var englishCorpus []byte

// Corpus is a named word list with its language flags.
type Corpus struct {
	Name               string   `toml:"name"`
	OrderedByFrequency bool     `toml:"ordered_by_frequency"`
	NoLazyMode         bool     `toml:"no_lazy_mode"`
	Words              []string `toml:"words"`
}

// Default returns the embedded English corpus.
func Default() (Corpus, error) {
	return ParseTOML(englishCorpus)
}

// Load reads a corpus document. Files ending in .toml are decoded as a
// corpus document; anything else is read as one word per line.
func Load(path string) (Corpus, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseLines(name, data)
}

// ParseTOML decodes a TOML corpus document.
func ParseTOML(data []byte) (Corpus, error) {
	var c Corpus
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
		return Corpus{}, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
	}
	return c.clean()
}

// ParseLines reads one word per line.
func ParseLines(name string, data []byte) (Corpus, error) {
	c := Corpus{Name: name}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		c.Words = append(c.Words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Corpus{}, fmt.Errorf("%w: %w", ErrCorpusLoad, err)
	}
	return c.clean()
}

// clean trims and composes every word so a single keystroke can match
// each letter, then drops unusable words.
func (c Corpus) clean() (Corpus, error) {
	words := make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		w = norm.NFC.String(strings.TrimSpace(w))
		if !usableWord(w) {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return Corpus{}, fmt.Errorf("%w: corpus %q has no usable words", ErrCorpusLoad, c.Name)
	}
	c.Words = words
	return c, nil
}

// usableWord rejects empty words and words that would split or end a
// phrase early.
func usableWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r == Boundary || unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
