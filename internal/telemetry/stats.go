// Package telemetry measures how long each frame takes to compute and draw.
package telemetry

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the number of recent frames kept for percentiles.
const DefaultWindow = 512

// RenderStats tracks frame durations: lifetime totals plus a rolling window.
// It is confined to the game loop goroutine.
type RenderStats struct {
	frames uint64
	total  time.Duration
	min    time.Duration
	max    time.Duration

	window      []float64 // Milliseconds
	writeIndex  int
	sampleCount int
}

// NewRenderStats creates a collector keeping the last windowSize frames.
func NewRenderStats(windowSize int) *RenderStats {
	if windowSize < 1 {
		windowSize = DefaultWindow
	}
	return &RenderStats{window: make([]float64, windowSize)}
}

// Record adds one rendered frame.
func (s *RenderStats) Record(d time.Duration) {
	if s.frames == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.frames++
	s.total += d

	s.window[s.writeIndex] = float64(d) / float64(time.Millisecond)
	s.writeIndex = (s.writeIndex + 1) % len(s.window)
	if s.sampleCount < len(s.window) {
		s.sampleCount++
	}
}

// Frames returns the number of frames recorded.
func (s *RenderStats) Frames() uint64 { return s.frames }

// Total returns the cumulative render time.
func (s *RenderStats) Total() time.Duration { return s.total }

// Summary holds aggregated render statistics.
type Summary struct {
	Frames uint64
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration

	// Over the rolling window, in milliseconds
	Window int
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
	P99    float64
}

// Summary computes aggregates over everything recorded so far.
func (s *RenderStats) Summary() Summary {
	sum := Summary{
		Frames: s.frames,
		Total:  s.total,
		Min:    s.min,
		Max:    s.max,
		Window: s.sampleCount,
	}
	if s.sampleCount == 0 {
		return sum
	}

	samples := slices.Clone(s.window[:s.sampleCount])
	slices.Sort(samples)

	sum.Mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		sum.StdDev = stat.StdDev(samples, nil)
	}
	sum.P50 = stat.Quantile(0.50, stat.Empirical, samples, nil)
	sum.P95 = stat.Quantile(0.95, stat.Empirical, samples, nil)
	sum.P99 = stat.Quantile(0.99, stat.Empirical, samples, nil)
	return sum
}

// Average returns the lifetime mean frame duration.
func (s Summary) Average() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// KeyVals returns the summary as structured log fields.
func (s Summary) KeyVals() []any {
	return []any{
		"frames", s.Frames,
		"total", s.Total,
		"avg", s.Average(),
		"min", s.Min,
		"max", s.Max,
		"p95_ms", s.P95,
	}
}

// Table renders the summary as a bordered two-column table.
func (s Summary) Table() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("render", "value").
		Row("frames", fmt.Sprintf("%d", s.Frames)).
		Row("total", s.Total.Round(time.Microsecond).String()).
		Row("average", s.Average().Round(time.Microsecond).String()).
		Row("min", s.Min.Round(time.Microsecond).String()).
		Row("max", s.Max.Round(time.Microsecond).String())

	if s.Window > 0 {
		t.Row(fmt.Sprintf("mean (last %d)", s.Window), fmt.Sprintf("%.3fms", s.Mean)).
			Row("stddev", fmt.Sprintf("%.3fms", s.StdDev)).
			Row("p50", fmt.Sprintf("%.3fms", s.P50)).
			Row("p95", fmt.Sprintf("%.3fms", s.P95)).
			Row("p99", fmt.Sprintf("%.3fms", s.P99))
	}
	return t.String()
}
