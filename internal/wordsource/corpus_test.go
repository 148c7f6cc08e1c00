package wordsource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCorpus(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default corpus: %v", err)
	}
	if c.Name != "english" {
		t.Fatalf("expected english corpus, got %q", c.Name)
	}
	if !c.OrderedByFrequency {
		t.Fatalf("expected ordered_by_frequency flag")
	}
	if len(c.Words) < 100 {
		t.Fatalf("expected a sizeable corpus, got %d words", len(c.Words))
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.toml")
	doc := `name = "tiny"
no_lazy_mode = true
words = ["alpha", " beta ", "", "two words", "gam•ma", "delta"]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}
	if c.Name != "tiny" || !c.NoLazyMode || c.OrderedByFrequency {
		t.Fatalf("unexpected corpus header: %+v", c)
	}
	want := []string{"alpha", "beta", "delta"}
	if len(c.Words) != len(want) {
		t.Fatalf("expected %v, got %v", want, c.Words)
	}
	for i := range want {
		if c.Words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, c.Words)
		}
	}
}

func TestLoadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(path, []byte("one\n\n two\nthree\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load word list: %v", err)
	}
	if c.Name != "en" || len(c.Words) != 3 || c.Words[1] != "two" {
		t.Fatalf("unexpected corpus: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("words = [\"unterminated"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n \n"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	for _, path := range []string{filepath.Join(dir, "missing.toml"), bad, empty} {
		if _, err := Load(path); !errors.Is(err, ErrCorpusLoad) {
			t.Fatalf("%s: expected ErrCorpusLoad, got %v", filepath.Base(path), err)
		}
	}
}

func TestUsableWord(t *testing.T) {
	if !usableWord("hello") || !usableWord("naïve") {
		t.Fatalf("expected plain words to be usable")
	}
	for _, word := range []string{"", "a b", "tab\tbed", "x•y"} {
		if usableWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestParseLinesComposesWords(t *testing.T) {
	c, err := ParseLines("fr", []byte("cafe\u0301\n"))
	if err != nil {
		t.Fatalf("parse lines: %v", err)
	}
	if got := []rune(c.Words[0]); len(got) != 4 || got[3] != 'é' {
		t.Fatalf("expected composed word, got %q", c.Words[0])
	}
}
