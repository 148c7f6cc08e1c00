package stats

import (
	"errors"
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputePerfectRun(t *testing.T) {
	// 50 keystrokes in 60s = 10 WPM.
	s, err := Compute(50, 50, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(s.WPM, 10) || !approx(s.Accuracy, 100) || !approx(s.AWPM, 10) {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestComputeCountsMisses(t *testing.T) {
	s, err := Compute(3, 2, 30*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(s.Accuracy, 200.0/3.0) {
		t.Fatalf("expected accuracy 66.67, got %.4f", s.Accuracy)
	}
	wantWPM := (3.0 / 5.0) / 0.5
	if !approx(s.WPM, wantWPM) {
		t.Fatalf("expected wpm %.4f, got %.4f", wantWPM, s.WPM)
	}
	if !approx(s.AWPM, wantWPM*2.0/3.0) {
		t.Fatalf("unexpected awpm %.4f", s.AWPM)
	}
}

func TestComputeDegenerate(t *testing.T) {
	cases := []struct {
		name    string
		typed   int
		elapsed time.Duration
	}{
		{"zero elapsed", 10, 0},
		{"empty input", 0, time.Second},
		{"negative elapsed", 4, -time.Second},
	}
	for _, tc := range cases {
		s, err := Compute(tc.typed, 4, tc.elapsed)
		if !errors.Is(err, ErrDegenerate) {
			t.Fatalf("%s: expected ErrDegenerate, got %v", tc.name, err)
		}
		if s != (Stats{}) {
			t.Fatalf("%s: expected zero stats, got %+v", tc.name, s)
		}
		if math.IsNaN(s.WPM) || math.IsInf(s.WPM, 0) {
			t.Fatalf("%s: expected finite wpm", tc.name)
		}
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]Stats{
		{WPM: 40, Accuracy: 90, AWPM: 36},
		{WPM: 60, Accuracy: 100, AWPM: 60},
	})
	if sum.Attempts != 2 || !approx(sum.AvgWPM, 50) || !approx(sum.AvgAccuracy, 95) || !approx(sum.AvgAWPM, 48) || !approx(sum.BestWPM, 60) {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatalf("expected empty summary")
	}
}

func TestMovingAverage(t *testing.T) {
	out := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if !approx(out[i], want[i]) {
			t.Fatalf("index %d: expected %.2f, got %.2f", i, want[i], out[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{5, 5, 5}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got != " @" {
		t.Fatalf("expected extremes, got %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
