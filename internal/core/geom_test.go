package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected Point
	}{
		{
			name:     "add right unit vector",
			p:        Point{X: 3, Y: 4},
			q:        DirRight,
			expected: Point{X: 4, Y: 4},
		},
		{
			name:     "add up unit vector",
			p:        Point{X: 3, Y: 4},
			q:        DirUp,
			expected: Point{X: 3, Y: 3},
		},
		{
			name:     "add negative components",
			p:        Point{X: 0, Y: 0},
			q:        Point{X: -2, Y: -7},
			expected: Point{X: -2, Y: -7},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Add(tc.q)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		w, h     int
		expected Point
	}{
		{
			name:     "negative x wraps to right edge",
			p:        Point{X: -1, Y: 5},
			w:        10,
			h:        10,
			expected: Point{X: 9, Y: 5},
		},
		{
			name:     "x at width wraps to zero",
			p:        Point{X: 10, Y: 5},
			w:        10,
			h:        10,
			expected: Point{X: 0, Y: 5},
		},
		{
			name:     "negative y wraps to bottom edge",
			p:        Point{X: 3, Y: -1},
			w:        20,
			h:        15,
			expected: Point{X: 3, Y: 14},
		},
		{
			name:     "y at height wraps to zero",
			p:        Point{X: 3, Y: 15},
			w:        20,
			h:        15,
			expected: Point{X: 3, Y: 0},
		},
		{
			name:     "in-bounds point unchanged",
			p:        Point{X: 4, Y: 7},
			w:        20,
			h:        15,
			expected: Point{X: 4, Y: 7},
		},
		{
			name:     "large negative wraps correctly",
			p:        Point{X: -11, Y: 0},
			w:        10,
			h:        10,
			expected: Point{X: 9, Y: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Wrap(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("Wrap(%d, %d) = %v, expected %v", tc.w, tc.h, result, tc.expected)
			}
		})
	}
}

func TestPointWithinBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		w, h     int
		expected bool
	}{
		{name: "origin", p: Point{0, 0}, w: 10, h: 10, expected: true},
		{name: "max corner", p: Point{9, 9}, w: 10, h: 10, expected: true},
		{name: "x at width", p: Point{10, 0}, w: 10, h: 10, expected: false},
		{name: "y at height", p: Point{0, 10}, w: 10, h: 10, expected: false},
		{name: "negative x", p: Point{-1, 5}, w: 10, h: 10, expected: false},
		{name: "negative y", p: Point{5, -1}, w: 10, h: 10, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.WithinBounds(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("WithinBounds(%d, %d) = %v, expected %v", tc.w, tc.h, result, tc.expected)
			}
		})
	}
}

func TestPointAsMapKey(t *testing.T) {
	set := map[Point]struct{}{
		{X: 1, Y: 2}: {},
	}

	if _, ok := set[Point{X: 1, Y: 2}]; !ok {
		t.Error("Equal points should hash to the same map key")
	}
	if _, ok := set[Point{X: 2, Y: 1}]; ok {
		t.Error("Different points should not collide as map keys")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("Top-left corner should be contained")
	}
	if !r.Contains(5, 7) {
		t.Error("Bottom-right interior cell should be contained")
	}
	if r.Contains(6, 3) {
		t.Error("Right edge should be exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("Bottom edge should be exclusive")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}
