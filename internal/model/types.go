// Package model defines shared data structures.
package model

// Config defines startup settings resolved from flags and the config file.
type Config struct {
	Words     int
	Corpus    string
	SkipMenu  bool
	Caps      bool
	Punct     bool
	Zen       bool
	CapsRate  float64
	PunctRate float64
	PunctSet  string
	LogLevel  string
	LogFile   string
}
