package core

import "testing"

func TestPositionStep(t *testing.T) {
	start := Pos(5, 5)

	tests := []struct {
		name     string
		dir      Direction
		expected Position
	}{
		{"up", DirUp, Pos(5, 4)},
		{"down", DirDown, Pos(5, 6)},
		{"left", DirLeft, Pos(4, 5)},
		{"right", DirRight, Pos(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := start.Step(tc.dir)
			if result != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, result, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, expected := range pairs {
		if d.Opposite() != expected {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), expected)
		}
		// Also test symmetry
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	tests := []struct {
		from, to Direction
		expected bool
	}{
		{DirRight, DirUp, true},
		{DirRight, DirDown, true},
		{DirRight, DirLeft, false},
		{DirRight, DirRight, false},
		{DirUp, DirLeft, true},
		{DirUp, DirRight, true},
		{DirUp, DirDown, false},
		{DirUp, DirUp, false},
	}

	for _, tc := range tests {
		result := tc.from.Perpendicular(tc.to)
		if result != tc.expected {
			t.Errorf("%v.Perpendicular(%v) = %v, expected %v", tc.from, tc.to, result, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 10, 10)

	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"inside", Pos(5, 5), true},
		{"top-left corner", Pos(2, 2), true},
		{"bottom-right corner", Pos(11, 11), true},
		{"right edge (exclusive)", Pos(12, 5), false},
		{"bottom edge (exclusive)", Pos(5, 12), false},
		{"left border", Pos(1, 5), false},
		{"top border", Pos(5, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectArea(t *testing.T) {
	r := NewRect(2, 2, 10, 6)

	if r.Area() != 60 {
		t.Errorf("Area() = %d, expected 60", r.Area())
	}
	if NewRect(0, 0, 0, 5).Area() != 0 {
		t.Error("Area() of an empty rect should be 0")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_magenta"); !ok || c != ColorBrightMagenta {
		t.Errorf("ParseColor(bright_magenta) = %v, %v", c, ok)
	}
	if c, ok := ParseColor(""); !ok || c != ColorDefault {
		t.Errorf("ParseColor(\"\") = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestFrameEmpty(t *testing.T) {
	var f Frame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}
	if (Frame{Clear: true}).Empty() {
		t.Error("clearing frame should not be empty")
	}
	f.Add(Pos(3, 1), "a", ColorGreen)
	if f.Empty() {
		t.Error("frame with cells should not be empty")
	}
}
