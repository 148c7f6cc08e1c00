package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefast/internal/app"
	"github.com/verte-zerg/typefast/internal/wordsource"
)

type keyMap struct {
	Quit       key.Binding
	Escape     key.Binding
	Restart    key.Binding
	Skip       key.Binding
	WordCount  key.Binding
	Caps       key.Binding
	Punct      key.Binding
	Zen        key.Binding
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	Deselect   key.Binding
	Select     key.Binding
	typingMode bool
}

var defaultKeyMap = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Restart:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "restart")),
	Skip:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "skip")),
	WordCount: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "words")),
	Caps:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "caps")),
	Punct:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "punct")),
	Zen:       key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "zen")),
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	First:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
	Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
	Deselect:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "clear")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
}

// *keyMap implements help.KeyMap
var _ help.KeyMap = (*keyMap)(nil)

func (km keyMap) ShortHelp() []key.Binding {
	if km.typingMode {
		return []key.Binding{km.Escape, km.Restart, km.Skip, km.WordCount, km.Caps, km.Punct, km.Zen}
	}
	return []key.Binding{km.Up, km.Down, km.Select, km.Escape, km.WordCount, km.Caps, km.Punct, km.Zen}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.First, km.Last, km.Deselect, km.Select},
		{km.Escape, km.Restart, km.Skip},
		{km.WordCount, km.Caps, km.Punct, km.Zen},
	}
}

// forPage returns a copy of the key map whose short help fits page.
func (km keyMap) forPage(page app.Page) keyMap {
	km.typingMode = page == app.PageTyping
	return km
}

// decode maps a key press to a controller command for page. Plain runes
// are text while typing and navigation elsewhere.
func (km keyMap) decode(msg tea.KeyMsg, page app.Page) app.Command {
	switch {
	case key.Matches(msg, km.Escape):
		return app.Do(app.CmdEscape)
	case key.Matches(msg, km.WordCount):
		return app.Do(app.CmdCycleWordCount)
	case key.Matches(msg, km.Caps):
		return app.Do(app.CmdToggleCaps)
	case key.Matches(msg, km.Punct):
		return app.Do(app.CmdTogglePunct)
	case key.Matches(msg, km.Zen):
		return app.Do(app.CmdToggleZen)
	}
	if page == app.PageTyping {
		return km.decodeTyping(msg)
	}
	switch {
	case key.Matches(msg, km.Up):
		return app.Do(app.CmdUp)
	case key.Matches(msg, km.Down):
		return app.Do(app.CmdDown)
	case key.Matches(msg, km.First):
		return app.Do(app.CmdFirst)
	case key.Matches(msg, km.Last):
		return app.Do(app.CmdLast)
	case key.Matches(msg, km.Deselect):
		return app.Do(app.CmdDeselect)
	case key.Matches(msg, km.Select):
		return app.Do(app.CmdSelect)
	}
	return app.Do(app.CmdNone)
}

func (km keyMap) decodeTyping(msg tea.KeyMsg) app.Command {
	switch {
	case key.Matches(msg, km.Restart):
		return app.Do(app.CmdRestart)
	case key.Matches(msg, km.Skip):
		return app.Do(app.CmdSkip)
	}
	switch msg.Type {
	case tea.KeySpace:
		return app.Key(wordsource.Boundary)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return app.Do(app.CmdNone)
		}
		r := msg.Runes[0]
		if r == ' ' {
			return app.Key(wordsource.Boundary)
		}
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return app.Key(r)
		}
	}
	return app.Do(app.CmdNone)
}
