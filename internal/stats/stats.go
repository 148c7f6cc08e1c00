// Package stats contains typing statistics calculations.
package stats

import (
	"errors"
	"math"
	"strings"
	"time"
)

const sparkChars = " .:-=+*#%@"

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// ErrDegenerate reports that an attempt has no elapsed time or no input,
// so its rates are undefined. Compute returns the zero Stats with it.
var ErrDegenerate = errors.New("statistics undefined for zero elapsed time or empty input")

// Stats is a read-only snapshot of one attempt.
type Stats struct {
	WPM      float64
	Accuracy float64 // percent, 0-100 for a completed attempt
	AWPM     float64
}

// Compute derives WPM, accuracy and accuracy-adjusted WPM from the number
// of keystrokes typed, the phrase length and the elapsed time.
//
// Every keystroke counts toward WPM, including misses, so accuracy is
// phraseLen/typed and drops with every mistyped character.
func Compute(typed, phraseLen int, elapsed time.Duration) (Stats, error) {
	if typed <= 0 || elapsed <= 0 {
		return Stats{}, ErrDegenerate
	}
	minutes := elapsed.Seconds() / 60.0
	wpm := (float64(typed) / charsPerWord) / minutes
	accuracy := float64(phraseLen) / float64(typed) * 100
	return Stats{
		WPM:      wpm,
		Accuracy: accuracy,
		AWPM:     wpm * (accuracy / 100),
	}, nil
}

// Summary aggregates the attempts completed during one run of the program.
type Summary struct {
	Attempts    int
	AvgWPM      float64
	AvgAccuracy float64
	AvgAWPM     float64
	BestWPM     float64
}

// Summarize averages a list of attempt stats.
func Summarize(history []Stats) Summary {
	if len(history) == 0 {
		return Summary{}
	}
	var sum Summary
	for _, s := range history {
		sum.AvgWPM += s.WPM
		sum.AvgAccuracy += s.Accuracy
		sum.AvgAWPM += s.AWPM
		if s.WPM > sum.BestWPM {
			sum.BestWPM = s.WPM
		}
	}
	n := float64(len(history))
	sum.Attempts = len(history)
	sum.AvgWPM /= n
	sum.AvgAccuracy /= n
	sum.AvgAWPM /= n
	return sum
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if maxVal-minVal < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - minVal) / (maxVal - minVal) * float64(last)))
		idx = max(0, min(idx, last))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// WPMSeries extracts the WPM of each attempt in order.
func WPMSeries(history []Stats) []float64 {
	out := make([]float64, len(history))
	for i, s := range history {
		out[i] = s.WPM
	}
	return out
}
