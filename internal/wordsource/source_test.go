package wordsource

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/verte-zerg/typefast/internal/settings"
)

func newTestSource(words []string, seed int64) *Source {
	return NewWithRand(Corpus{Name: "test", Words: words}, DefaultOptions(), rand.New(rand.NewSource(seed)))
}

func countBoundaries(phrase []rune) int {
	n := 0
	for _, r := range phrase {
		if r == Boundary {
			n++
		}
	}
	return n
}

func TestGenerateBoundaries(t *testing.T) {
	src := newTestSource([]string{"a", "bb", "ccc", "dddd"}, 1)
	for seed := int64(0); seed < 50; seed++ {
		src.rnd = rand.New(rand.NewSource(seed))
		for _, n := range []int{1, 2, 10, 25} {
			cfg := settings.Settings{WordCount: n}
			phrase := src.Generate(&cfg)
			if len(phrase) == 0 {
				t.Fatalf("expected non-empty phrase for %d words", n)
			}
			if phrase[len(phrase)-1] == Boundary || phrase[0] == Boundary {
				t.Fatalf("phrase must not start or end with boundary: %q", string(phrase))
			}
			if got := countBoundaries(phrase); got != n-1 {
				t.Fatalf("expected %d boundaries, got %d in %q", n-1, got, string(phrase))
			}
		}
	}
}

func TestGenerateUsesCorpusWords(t *testing.T) {
	words := []string{"red", "green", "blue"}
	src := newTestSource(words, 7)
	cfg := settings.Settings{WordCount: 30}
	phrase := string(src.Generate(&cfg))
	for _, w := range strings.Split(phrase, string(Boundary)) {
		found := false
		for _, candidate := range words {
			if w == candidate {
				found = true
			}
		}
		if !found {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestGenerateCapsAndPunct(t *testing.T) {
	src := newTestSource([]string{"word"}, 3)
	src.opts = Options{CapsRate: 1, PunctRate: 1, PunctSet: []rune("!")}
	cfg := settings.Settings{WordCount: 3, Capitalization: true, Punctuation: true}
	got := string(src.Generate(&cfg))
	want := "Word!•Word!•Word!"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if src.corpus.Words[0] != "word" {
		t.Fatalf("corpus must not be mutated, got %q", src.corpus.Words[0])
	}
}

func TestGenerateTogglesOff(t *testing.T) {
	src := newTestSource([]string{"word"}, 3)
	src.opts = Options{CapsRate: 1, PunctRate: 1, PunctSet: []rune("!")}
	cfg := settings.Settings{WordCount: 2}
	phrase := src.Generate(&cfg)
	for _, r := range phrase {
		if unicode.IsUpper(r) || r == '!' {
			t.Fatalf("expected plain phrase, got %q", string(phrase))
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	src := newTestSource(nil, 1)
	cfg := settings.Settings{WordCount: 5}
	if phrase := src.Generate(&cfg); len(phrase) != 0 {
		t.Fatalf("expected empty phrase, got %q", string(phrase))
	}
	src = newTestSource([]string{"a"}, 1)
	cfg.WordCount = 0
	if phrase := src.Generate(&cfg); len(phrase) != 0 {
		t.Fatalf("expected empty phrase for zero words, got %q", string(phrase))
	}
}
