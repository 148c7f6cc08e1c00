package wordsource

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/verte-zerg/typefast/internal/settings"
)

// Options tunes capitalization and punctuation when they are enabled.
type Options struct {
	CapsRate  float64
	PunctRate float64
	PunctSet  []rune
}

// DefaultOptions mirrors the defaults of the config file.
func DefaultOptions() Options {
	return Options{CapsRate: 0.5, PunctRate: 0.5, PunctSet: []rune(".,!?;:")}
}

// Source generates random phrases from a loaded corpus.
type Source struct {
	corpus Corpus
	opts   Options
	rnd    *rand.Rand
}

// New returns a Source seeded with the current time.
func New(corpus Corpus, opts Options) *Source {
	return NewWithRand(corpus, opts, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Source drawing from rnd.
func NewWithRand(corpus Corpus, opts Options, rnd *rand.Rand) *Source {
	return &Source{corpus: corpus, opts: opts, rnd: rnd}
}

// Corpus returns the loaded corpus.
func (s *Source) Corpus() Corpus {
	return s.corpus
}

// Generate draws cfg.WordCount words uniformly with replacement and joins
// them with Boundary. The phrase never ends with Boundary.
func (s *Source) Generate(cfg *settings.Settings) []rune {
	words := s.corpus.Words
	if len(words) == 0 || cfg.WordCount <= 0 {
		return nil
	}
	phrase := make([]rune, 0, cfg.WordCount*6)
	for i := 0; i < cfg.WordCount; i++ {
		idx := s.rnd.Intn(len(words))
		if idx < 0 || idx >= len(words) {
			continue
		}
		word := []rune(words[idx])
		if cfg.Capitalization {
			word = applyCaps(s.rnd, word, s.opts.CapsRate)
		}
		if cfg.Punctuation {
			word = applyPunct(s.rnd, word, s.opts.PunctRate, s.opts.PunctSet)
		}
		phrase = append(phrase, word...)
		if i < cfg.WordCount-1 {
			phrase = append(phrase, Boundary)
		}
	}
	for len(phrase) > 0 && phrase[len(phrase)-1] == Boundary {
		phrase = phrase[:len(phrase)-1]
	}
	return phrase
}

func applyCaps(rnd *rand.Rand, word []rune, rate float64) []rune {
	if rate <= 0 || len(word) == 0 || rnd.Float64() > rate {
		return word
	}
	out := append([]rune(nil), word...)
	out[0] = unicode.ToUpper(out[0])
	return out
}

func applyPunct(rnd *rand.Rand, word []rune, rate float64, set []rune) []rune {
	if rate <= 0 || len(set) == 0 || rnd.Float64() > rate {
		return word
	}
	out := append([]rune(nil), word...)
	return append(out, set[rnd.Intn(len(set))])
}
