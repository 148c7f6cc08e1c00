// Package app sequences the menu, typing and pause pages.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/typefast/internal/logging"
	"github.com/verte-zerg/typefast/internal/selection"
	"github.com/verte-zerg/typefast/internal/settings"
	"github.com/verte-zerg/typefast/internal/stats"
	"github.com/verte-zerg/typefast/internal/typing"
	"github.com/verte-zerg/typefast/internal/wordsource"
)

// ErrInvalidTransition is returned by Dispatch for a command the current
// page does not handle. Callers may ignore it.
var ErrInvalidTransition = errors.New("command not valid on current page")

// SourceLoader loads the word source once, at construction.
type SourceLoader func() (*wordsource.Source, error)

// Controller owns the settings, the selection lists and the active typing
// engine, and applies one command at a time. It is not safe for
// concurrent use; the caller serializes Dispatch calls.
type Controller struct {
	page    Page
	running bool

	settings settings.Settings
	menu     *selection.List[MenuOption]
	pause    *selection.List[PauseOption]

	source  *wordsource.Source
	loadErr error
	notice  string

	engine      *typing.Engine
	previous    stats.Stats
	hasPrevious bool
	history     []stats.Stats

	now func() time.Time
}

// New builds a controller on the menu page. A loader failure is kept and
// reported whenever typing is requested.
func New(cfg settings.Settings, load SourceLoader) *Controller {
	if cfg.WordCount <= 0 {
		cfg.WordCount = settings.DefaultWordCount
	}
	c := &Controller{
		page:     PageMenu,
		running:  true,
		settings: cfg,
		menu:     selection.New(MenuType, MenuQuit),
		pause:    selection.New(PauseResume, PauseQuit),
		now:      time.Now,
	}
	src, err := load()
	switch {
	case err != nil:
		c.loadErr = err
		logging.Errorf("corpus unavailable: %v", err)
	case src == nil:
		c.loadErr = fmt.Errorf("%w: no word source", wordsource.ErrCorpusLoad)
	default:
		c.source = src
	}
	return c
}

// Start enters the first page. With skipMenu the menu is bypassed when
// the corpus is available.
func (c *Controller) Start(skipMenu bool) {
	if skipMenu {
		c.setupTyping()
	}
}

// Dispatch applies cmd to the current page.
func (c *Controller) Dispatch(cmd Command) error {
	if !c.running {
		return ErrInvalidTransition
	}
	if cmd.Kind == CmdTick || cmd.Kind == CmdNone {
		return nil
	}
	var handled bool
	switch c.page {
	case PageMenu:
		handled = c.handleMenu(cmd)
	case PageTyping:
		handled = c.handleTyping(cmd)
	case PagePause:
		handled = c.handlePause(cmd)
	}
	if !handled {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, cmd.Kind, c.page)
	}
	return nil
}

func (c *Controller) handleMenu(cmd Command) bool {
	if c.handleSettings(cmd) || navigate(c.menu, cmd.Kind) {
		return true
	}
	switch cmd.Kind {
	case CmdEscape:
		c.quit()
	case CmdSelect:
		opt, ok := c.menu.SelectedOption()
		if !ok {
			return false
		}
		switch opt {
		case MenuType:
			c.setupTyping()
		case MenuQuit:
			c.quit()
		}
	default:
		return false
	}
	return true
}

func (c *Controller) handleTyping(cmd Command) bool {
	if c.handleSettings(cmd) {
		return true
	}
	switch cmd.Kind {
	case CmdRune:
		c.input(cmd.Rune)
	case CmdEscape:
		c.pause.SelectFirst()
		c.setPage(PagePause)
	case CmdRestart:
		c.engine.Reset()
	case CmdSkip:
		c.newPrompt()
	default:
		return false
	}
	return true
}

func (c *Controller) handlePause(cmd Command) bool {
	if navigate(c.pause, cmd.Kind) {
		return true
	}
	switch cmd.Kind {
	case CmdEscape:
		c.setPage(PageTyping)
	case CmdSelect:
		opt, ok := c.pause.SelectedOption()
		if !ok {
			return false
		}
		switch opt {
		case PauseResume:
			c.setPage(PageTyping)
		case PauseQuit:
			c.engine = nil
			c.menu.SelectFirst()
			c.setPage(PageMenu)
		}
	default:
		return false
	}
	return true
}

func (c *Controller) handleSettings(cmd Command) bool {
	switch cmd.Kind {
	case CmdCycleWordCount:
		c.settings.NextWordCount()
	case CmdToggleCaps:
		c.settings.ToggleCapitalization()
	case CmdTogglePunct:
		c.settings.TogglePunctuation()
	case CmdToggleZen:
		c.settings.ToggleZen()
	default:
		return false
	}
	logging.Debugf("settings changed by %s: %+v", cmd.Kind, c.settings)
	return true
}

func navigate[T fmt.Stringer](list *selection.List[T], kind CommandKind) bool {
	switch kind {
	case CmdUp:
		list.SelectPrevious()
	case CmdDown:
		list.SelectNext()
	case CmdFirst:
		list.SelectFirst()
	case CmdLast:
		list.SelectLast()
	case CmdDeselect:
		list.SelectNone()
	default:
		return false
	}
	return true
}

func (c *Controller) input(r rune) {
	done, err := c.engine.Input(r)
	if err != nil {
		logging.Warnf("dropped keystroke %q: %v", r, err)
		return
	}
	c.engine.ConstructText()
	if !done {
		return
	}
	c.previous = c.engine.Statistics()
	c.hasPrevious = true
	c.history = append(c.history, c.previous)
	logging.Infof("attempt complete: %.2f wpm, %.2f%% accuracy, %.2f awpm", c.previous.WPM, c.previous.Accuracy, c.previous.AWPM)
	c.newPrompt()
}

// setupTyping enters typing with a fresh phrase, or stays on the menu
// with a notice when the corpus could not be loaded.
func (c *Controller) setupTyping() {
	if c.source == nil {
		c.notice = fmt.Sprintf("cannot start typing: %v", c.loadErr)
		c.setPage(PageMenu)
		return
	}
	c.notice = ""
	c.newPrompt()
	c.setPage(PageTyping)
}

func (c *Controller) newPrompt() {
	phrase := c.source.Generate(&c.settings)
	c.engine = typing.NewWithClock(phrase, &c.settings, c.now)
	logging.Debugf("new phrase of %d runes (%d words)", len(phrase), c.settings.WordCount)
}

func (c *Controller) setPage(p Page) {
	if c.page != p {
		logging.Debugf("page %s -> %s", c.page, p)
	}
	c.page = p
}

func (c *Controller) quit() {
	logging.Debugf("quit requested from %s", c.page)
	c.running = false
}

// Page returns the current page.
func (c *Controller) Page() Page { return c.page }

// Running reports whether the program should keep running.
func (c *Controller) Running() bool { return c.running }

// Settings returns a copy of the session settings.
func (c *Controller) Settings() settings.Settings { return c.settings }

// Menu returns the main menu projection.
func (c *Controller) Menu() selection.View { return c.menu.View() }

// Pause returns the pause overlay projection.
func (c *Controller) Pause() selection.View { return c.pause.View() }

// Engine returns the active engine, or nil outside typing and pause.
func (c *Controller) Engine() *typing.Engine { return c.engine }

// PreviousStats returns the stats of the last completed attempt.
func (c *Controller) PreviousStats() (stats.Stats, bool) { return c.previous, c.hasPrevious }

// History returns the stats of every attempt completed this session.
func (c *Controller) History() []stats.Stats { return append([]stats.Stats(nil), c.history...) }

// Notice returns the message to show on the menu, if any.
func (c *Controller) Notice() string { return c.notice }

// LoadErr returns the corpus load failure, if any.
func (c *Controller) LoadErr() error { return c.loadErr }
