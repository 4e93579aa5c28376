package telemetry

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestRenderStatsEmpty(t *testing.T) {
	s := NewRenderStats(10)
	sum := s.Summary()
	if sum.Frames != 0 || sum.Window != 0 {
		t.Errorf("Summary() = %+v, expected empty", sum)
	}
	if sum.Average() != 0 {
		t.Errorf("Average() = %v, expected 0", sum.Average())
	}
	if !strings.Contains(sum.Table(), "frames") {
		t.Error("Table() should render even with no frames")
	}
}

func TestRenderStatsTotals(t *testing.T) {
	s := NewRenderStats(10)
	for _, d := range []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond} {
		s.Record(d)
	}

	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", s.Frames())
	}
	if s.Total() != 6*time.Millisecond {
		t.Errorf("Total() = %v, expected 6ms", s.Total())
	}

	sum := s.Summary()
	if sum.Min != time.Millisecond || sum.Max != 3*time.Millisecond {
		t.Errorf("Min/Max = %v/%v, expected 1ms/3ms", sum.Min, sum.Max)
	}
	if sum.Average() != 2*time.Millisecond {
		t.Errorf("Average() = %v, expected 2ms", sum.Average())
	}
	if math.Abs(sum.Mean-2) > 1e-9 {
		t.Errorf("Mean = %v, expected 2", sum.Mean)
	}
	if math.Abs(sum.StdDev-1) > 1e-9 {
		t.Errorf("StdDev = %v, expected 1", sum.StdDev)
	}
	if sum.P50 != 2 {
		t.Errorf("P50 = %v, expected 2", sum.P50)
	}
}

func TestRenderStatsRollingWindow(t *testing.T) {
	s := NewRenderStats(5)
	for i := range 10 {
		s.Record(time.Duration(i+1) * time.Millisecond)
	}

	sum := s.Summary()
	if sum.Frames != 10 {
		t.Errorf("Frames = %d, expected 10", sum.Frames)
	}
	if sum.Window != 5 {
		t.Errorf("Window = %d, expected 5", sum.Window)
	}
	// Window holds 6..10ms
	if math.Abs(sum.Mean-8) > 1e-9 {
		t.Errorf("Mean = %v, expected 8", sum.Mean)
	}
	if sum.Min != time.Millisecond {
		t.Errorf("Min = %v, expected lifetime min 1ms", sum.Min)
	}
	if sum.P99 != 10 {
		t.Errorf("P99 = %v, expected 10", sum.P99)
	}
}

func TestRenderStatsDefaultWindow(t *testing.T) {
	s := NewRenderStats(0)
	if len(s.window) != DefaultWindow {
		t.Errorf("window size = %d, expected %d", len(s.window), DefaultWindow)
	}
}

func TestSummaryTableAndKeyVals(t *testing.T) {
	s := NewRenderStats(4)
	s.Record(time.Millisecond)
	sum := s.Summary()

	table := sum.Table()
	for _, want := range []string{"frames", "p95", "mean (last 1)"} {
		if !strings.Contains(table, want) {
			t.Errorf("Table() missing %q:\n%s", want, table)
		}
	}
	if kv := sum.KeyVals(); len(kv)%2 != 0 {
		t.Errorf("KeyVals() has odd length %d", len(kv))
	}
}
