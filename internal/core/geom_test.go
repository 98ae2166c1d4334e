package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(24, 330, 120, 60),
			b:        NewRect(24, 390, 120, 60),
			expected: false,
		},
		{
			name:     "one unit overlap",
			a:        NewRect(24, 335, 120, 60),
			b:        NewRect(24, 390, 120, 60),
			expected: true,
		},
		{
			name:     "different columns",
			a:        NewRect(24, 390, 120, 60),
			b:        NewRect(168, 390, 120, 60),
			expected: false,
		},
		{
			name:     "negative origin",
			a:        NewRect(319, -59, 201, 219),
			b:        NewRect(400, 60, 120, 120),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectMoved(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	m := r.Moved(7, -7)

	if m.X != 12 || m.Y != 3 || m.W != 20 || m.H != 15 {
		t.Errorf("Moved() = %+v", m)
	}
	if r.X != 5 || r.Y != 10 {
		t.Error("Moved() should not modify the receiver")
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{WorldW: 600, WorldH: 480, ScreenW: 60, ScreenH: 25, OffsetY: 1}

	got := v.Project(NewRect(0, 0, 600, 480))
	if got != NewRect(0, 1, 60, 24) {
		t.Errorf("full world projected to %+v", got)
	}

	got = v.Project(NewRect(24, 390, 120, 60))
	if got.X != 2 || got.W != 12 {
		t.Errorf("receptacle projected to %+v", got)
	}

	// Tiny rects still cover a cell.
	got = v.Project(NewRect(1, 1, 1, 1))
	if got.W != 1 || got.H != 1 {
		t.Errorf("tiny rect projected to %+v, expected 1x1", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{5: 5, -5: 5, 0: 0, -150: 150} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", in, got, want)
		}
	}
}
