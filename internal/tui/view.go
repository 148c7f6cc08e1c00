package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typefast/internal/selection"
	"github.com/verte-zerg/typefast/internal/settings"
	"github.com/verte-zerg/typefast/internal/stats"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).MarginBottom(1)
	optionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).MarginTop(1)
	modalStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 4)
)

const title = "Type Fast!"

func (m *Model) renderMenu() string {
	parts := []string{titleStyle.Render(title), renderList(m.ctrl.Menu())}
	if notice := m.ctrl.Notice(); notice != "" {
		parts = append(parts, noticeStyle.Render(notice))
	}
	parts = append(parts, footerStyle.Render(renderSettings(m.ctrl.Settings())))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderTyping() string {
	e := m.ctrl.Engine()
	if e == nil {
		return ""
	}
	runes := buildStyledRunes(e.Text())
	width := m.contentWidth()
	content := wrapStyledRunes(runes, width)
	if width > 0 {
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	if m.ctrl.Settings().Zen {
		return content
	}
	footer := m.renderFooter(e.Progress(), e.Elapsed())
	return lipgloss.JoinVertical(lipgloss.Center, content, "", footer)
}

func (m *Model) renderPause() string {
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Paused"),
		renderList(m.ctrl.Pause()),
	))
}

func (m *Model) renderFooter(progress float64, elapsed time.Duration) string {
	segments := []string{
		fmt.Sprintf("Progress %d%%", int(progress*100)),
		fmt.Sprintf("Time %.1fs", elapsed.Seconds()),
	}
	if prev, ok := m.ctrl.PreviousStats(); ok {
		segments = append(segments, renderStats(prev))
	}
	history := m.ctrl.History()
	if len(history) > 1 {
		sum := stats.Summarize(history)
		trend := stats.Sparkline(stats.MovingAverage(stats.WPMSeries(history), 3))
		segments = append(segments, fmt.Sprintf("Session %d · avg %.1f WPM · best %.1f [%s]", sum.Attempts, sum.AvgWPM, sum.BestWPM, trend))
	}
	lines := []string{
		strings.Join(segments, "  "),
		renderSettings(m.ctrl.Settings()),
	}
	return footerStyle.Render(strings.Join(lines, "\n"))
}

func renderStats(s stats.Stats) string {
	return fmt.Sprintf("WPM: %.2f  Accuracy: %.2f  AWPM: %.2f", s.WPM, s.Accuracy, s.AWPM)
}

func renderSettings(s settings.Settings) string {
	return fmt.Sprintf("words %d · caps %s · punct %s · zen %s", s.WordCount, onOff(s.Capitalization), onOff(s.Punctuation), onOff(s.Zen))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func renderList(v selection.View) string {
	lines := make([]string, len(v.Labels))
	for i, label := range v.Labels {
		if v.HasSelected && i == v.Highlighted {
			lines[i] = activeStyle.Render("> " + label)
			continue
		}
		lines[i] = optionStyle.Render("  " + label)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(1, int(float64(m.width)*0.70))
}

func (m *Model) layout(body string) string {
	if m.width == 0 || m.height == 0 {
		return body
	}
	if m.ctrl.Settings().Zen || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	helpView := m.help.View(m.keys.forPage(m.ctrl.Page()))
	bodyHeight := m.height - lipgloss.Height(helpView)
	main := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return main + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, helpView)
}
