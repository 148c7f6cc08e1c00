package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typefast/internal/typing"
)

func plainRunes(s string) []styledRune {
	var out []styledRune
	for _, r := range s {
		out = append(out, styledRune{s: string(r), width: 1, isBoundary: r == '•'})
	}
	return out
}

func TestWrapBreaksAfterBoundary(t *testing.T) {
	got := wrapStyledRunes(plainRunes("one•two•three"), 8)
	want := "one•two•\nthree"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapHardBreaksLongWord(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh"), 3)
	want := "abc\ndef\ngh"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapKeepsEveryRune(t *testing.T) {
	in := "lorem•ipsum•dolor•sit•amet"
	for width := 1; width <= len([]rune(in))+1; width++ {
		got := strings.ReplaceAll(wrapStyledRunes(plainRunes(in), width), "\n", "")
		if got != in {
			t.Fatalf("width %d: lost runes: %q", width, got)
		}
		for _, line := range strings.Split(wrapStyledRunes(plainRunes(in), width), "\n") {
			if n := len([]rune(line)); n > width {
				t.Fatalf("width %d: line %q too long", width, line)
			}
		}
	}
}

func TestWrapDisabled(t *testing.T) {
	if got := wrapStyledRunes(plainRunes("a•b"), 0); got != "a•b" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}

func TestBuildStyledRunes(t *testing.T) {
	text := []typing.Segment{
		{Value: 'a', Tone: typing.Positive},
		{Value: 'b', Tone: typing.Negative, Active: true},
		{Value: '•', Tone: typing.Neutral},
	}
	runes := buildStyledRunes(text)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined incorrect style for active rune")
	}
	if runes[2].s != pendingStyle.Render("•") || !runes[2].isBoundary {
		t.Fatalf("expected pending boundary rune")
	}
}
