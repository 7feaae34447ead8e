package core

import "testing"

func TestShapeEdges(t *testing.T) {
	s := NewShape(100, 50, 40, 10)

	if s.Left() != 80 {
		t.Errorf("Left() = %v, expected 80", s.Left())
	}
	if s.Right() != 120 {
		t.Errorf("Right() = %v, expected 120", s.Right())
	}
	if s.Top() != 55 {
		t.Errorf("Top() = %v, expected 55", s.Top())
	}
	if s.Bottom() != 45 {
		t.Errorf("Bottom() = %v, expected 45", s.Bottom())
	}
}

func TestShapeContains(t *testing.T) {
	s := NewShape(10, 10, 20, 10) // x: [0, 20], y: [5, 15]

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 10, 10, true},
		{"top-left corner", 0, 15, true},
		{"bottom-right corner", 20, 5, true},
		{"outside left", -0.5, 10, false},
		{"outside right", 20.5, 10, false},
		{"outside top", 10, 15.1, false},
		{"outside bottom", 10, 4.9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestShapeCorners(t *testing.T) {
	c := NewShape(0, 0, 2, 4).Corners()
	expected := [4]Point{{-1, 2}, {1, 2}, {-1, -2}, {1, -2}}
	if c != expected {
		t.Errorf("Corners() = %v, expected %v", c, expected)
	}
}

func TestCornerInside(t *testing.T) {
	target := NewShape(50, 50, 40, 8) // x: [30, 70], y: [46, 54]

	tests := []struct {
		name     string
		probe    Shape
		expected bool
	}{
		{"one corner inside", NewShape(28, 44, 6, 6), true},
		{"fully inside", NewShape(50, 50, 2, 2), true},
		{"clear miss", NewShape(100, 100, 6, 6), false},
		// Probe wider than target on both axes: no corner lands inside.
		{"straddling larger probe", NewShape(50, 50, 100, 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CornerInside(tc.probe, target); got != tc.expected {
				t.Errorf("CornerInside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
