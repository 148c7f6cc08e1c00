package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typefast/internal/typing"
	"github.com/verte-zerg/typefast/internal/wordsource"
)

type styledRune struct {
	s          string
	width      int
	isBoundary bool
}

func styleFor(seg typing.Segment) lipgloss.Style {
	var style lipgloss.Style
	switch seg.Tone {
	case typing.Positive:
		style = correctStyle
	case typing.Negative:
		style = incorrectStyle
	case typing.Neutral:
		style = pendingStyle
	default:
		style = pendingStyle
	}
	if seg.Active {
		style = style.Underline(true)
	}
	return style
}

func buildStyledRunes(text []typing.Segment) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, seg := range text {
		out = append(out, styledRune{
			s:          styleFor(seg).Render(string(seg.Value)),
			width:      runewidth.RuneWidth(seg.Value),
			isBoundary: seg.Value == wordsource.Boundary,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines after the last boundary that fits in width,
// keeping the boundary at the end of the line so every rune stays visible.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	start, lineWidth, lastBreak := 0, 0, -1
	for i := 0; i < len(runes); {
		if lineWidth+runes[i].width > width && i > start {
			end := i
			if lastBreak >= start {
				end = lastBreak + 1
			}
			lines = append(lines, renderStyledRunes(runes[start:end]))
			start = end
			lineWidth = widthOf(runes[start:i])
			lastBreak = -1
			continue
		}
		lineWidth += runes[i].width
		if runes[i].isBoundary {
			lastBreak = i
		}
		i++
	}
	lines = append(lines, renderStyledRunes(runes[start:]))
	return strings.Join(lines, "\n")
}

func widthOf(runes []styledRune) int {
	total := 0
	for _, item := range runes {
		total += item.width
	}
	return total
}
