// Package typing implements the per-keystroke matching engine.
package typing

import (
	"errors"
	"time"

	"github.com/verte-zerg/typefast/internal/settings"
	"github.com/verte-zerg/typefast/internal/stats"
)

// ErrInvalidState is returned by Input once the phrase is complete.
var ErrInvalidState = errors.New("input after attempt completed")

// State is the lifecycle of one attempt.
type State int

const (
	Ready State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// LetterState is the correctness of one phrase position.
type LetterState int

const (
	Unpressed LetterState = iota
	Correct
	Incorrect
)

// Letter tracks one phrase position. Value is always the expected rune.
// Missed stays set once the position has been mistyped, even after the
// retry that corrects it.
type Letter struct {
	Value    rune
	State    LetterState
	Position int
	Missed   bool
}

// Attempt is the settings snapshot a phrase was generated with.
type Attempt struct {
	WordCount      int
	Capitalization bool
	Punctuation    bool
}

// Engine scores keystrokes against a fixed phrase.
type Engine struct {
	phrase  []rune
	letters []Letter
	typed   []rune
	cursor  int
	attempt Attempt

	start   time.Time
	elapsed time.Duration
	state   State

	text []Segment
	now  func() time.Time
}

// New builds a Ready engine over phrase. cfg is only read during the call.
func New(phrase []rune, cfg *settings.Settings) *Engine {
	return NewWithClock(phrase, cfg, time.Now)
}

// NewWithClock is New with an explicit monotonic clock.
func NewWithClock(phrase []rune, cfg *settings.Settings, now func() time.Time) *Engine {
	e := &Engine{
		phrase: append([]rune(nil), phrase...),
		now:    now,
	}
	if cfg != nil {
		e.attempt = Attempt{
			WordCount:      cfg.WordCount,
			Capitalization: cfg.Capitalization,
			Punctuation:    cfg.Punctuation,
		}
	}
	e.Reset()
	return e
}

// Reset restarts the attempt over the same phrase.
func (e *Engine) Reset() {
	e.letters = make([]Letter, len(e.phrase))
	for i, r := range e.phrase {
		e.letters[i] = Letter{Value: r, State: Unpressed, Position: i}
	}
	e.typed = nil
	e.cursor = 0
	e.start = time.Time{}
	e.elapsed = 0
	e.state = Ready
	if len(e.phrase) == 0 {
		e.state = Complete
	}
	e.ConstructText()
}

// Input records one keystroke and reports whether it completed the phrase.
// A mismatch marks the expected letter Incorrect and leaves the cursor in
// place; the matching retry overwrites it with Correct and advances.
func (e *Engine) Input(r rune) (bool, error) {
	if e.state == Complete || e.cursor >= len(e.phrase) {
		return false, ErrInvalidState
	}
	if len(e.typed) == 0 {
		e.start = e.now()
		e.state = InProgress
	}
	e.typed = append(e.typed, r)

	letter := &e.letters[e.cursor]
	if r == letter.Value {
		letter.State = Correct
		e.cursor++
	} else {
		letter.State = Incorrect
		letter.Missed = true
	}

	if e.cursor >= len(e.phrase) {
		e.elapsed = e.now().Sub(e.start)
		e.state = Complete
		return true, nil
	}
	return false, nil
}

// Statistics returns the stats of the attempt so far. A Ready attempt, or
// one with no measurable elapsed time, yields the zero Stats.
func (e *Engine) Statistics() stats.Stats {
	s, err := stats.Compute(len(e.typed), len(e.phrase), e.Elapsed())
	if err != nil {
		return stats.Stats{}
	}
	return s
}

// Elapsed returns the final duration of a complete attempt, or the running
// duration of one in progress.
func (e *Engine) Elapsed() time.Duration {
	switch e.state {
	case Complete:
		return e.elapsed
	case InProgress:
		return e.now().Sub(e.start)
	default:
		return 0
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Cursor returns the index of the next expected rune.
func (e *Engine) Cursor() int { return e.cursor }

// Phrase returns a copy of the target phrase.
func (e *Engine) Phrase() []rune { return append([]rune(nil), e.phrase...) }

// Typed returns a copy of every keystroke recorded, hits and misses.
func (e *Engine) Typed() []rune { return append([]rune(nil), e.typed...) }

// Letters returns a copy of the per-position records.
func (e *Engine) Letters() []Letter { return append([]Letter(nil), e.letters...) }

// Attempt returns the settings snapshot taken at construction.
func (e *Engine) Attempt() Attempt { return e.attempt }

// Progress returns the fraction of the phrase typed correctly so far.
func (e *Engine) Progress() float64 {
	if len(e.phrase) == 0 {
		return 1
	}
	return float64(e.cursor) / float64(len(e.phrase))
}
