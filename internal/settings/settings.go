// Package settings holds the session-scoped prompt configuration.
package settings

// DefaultWordCount is the word count used when none is configured.
const DefaultWordCount = 25

// WordCounts lists the allowed word counts in ascending order.
var WordCounts = []int{10, 25, 50, 100}

// Settings controls how phrases are generated and displayed.
type Settings struct {
	WordCount      int
	Capitalization bool
	Punctuation    bool
	Zen            bool
}

// New returns settings with the default word count and every toggle off.
func New() Settings {
	return Settings{WordCount: DefaultWordCount}
}

// ToggleCapitalization flips capitalization.
func (s *Settings) ToggleCapitalization() {
	s.Capitalization = !s.Capitalization
}

// TogglePunctuation flips punctuation.
func (s *Settings) TogglePunctuation() {
	s.Punctuation = !s.Punctuation
}

// ToggleZen flips zen mode.
func (s *Settings) ToggleZen() {
	s.Zen = !s.Zen
}

// NextWordCount advances to the next allowed word count, wrapping to the
// first after the last. A count outside the set (e.g. from --wc) moves to
// the smallest allowed count above it.
func (s *Settings) NextWordCount() {
	for _, n := range WordCounts {
		if n > s.WordCount {
			s.WordCount = n
			return
		}
	}
	s.WordCount = WordCounts[0]
}
