package geometry

import (
	"math"
	"testing"
)

func verifyPoints(t *testing.T, name string, got, expected []Point2, epsilon float64) {
	t.Helper()

	if len(got) != len(expected) {
		t.Errorf("%s: got %d points, want %d. got=%v, expected=%v", name, len(got), len(expected), got, expected)
		return
	}
	for i := range got {
		if !got[i].ApproxEqual(expected[i], epsilon) {
			t.Errorf("%s: point[%d] = %v, want %v", name, i, got[i], expected[i])
		}
	}
}

// sameSet reports whether a and b hold the same points regardless of order
func sameSet(a, b []Point2, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, p := range a {
		found := false
		for j, q := range b {
			if !used[j] && p.ApproxEqual(q, epsilon) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestIntersectCircleSegment(t *testing.T) {
	origin := NewPoint2(0, 0)

	tests := []struct {
		name     string
		center   Point2
		radius   float64
		p0, p1   Point2
		expected []Point2
	}{
		{
			name:     "two crossings",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(-2, 0),
			p1:       NewPoint2(2, 0),
			expected: []Point2{NewPoint2(-1, 0), NewPoint2(1, 0)},
		},
		{
			name:     "tangent",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(-2, 1),
			p1:       NewPoint2(2, 1),
			expected: []Point2{NewPoint2(0, 1)},
		},
		{
			name:     "line misses circle",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(-2, 5),
			p1:       NewPoint2(2, 5),
			expected: nil,
		},
		{
			name:     "degenerate point on circle",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(1, 0),
			p1:       NewPoint2(1, 0),
			expected: []Point2{NewPoint2(1, 0)},
		},
		{
			name:     "degenerate point off circle",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(0.5, 0),
			p1:       NewPoint2(0.5, 0),
			expected: nil,
		},
		{
			name:     "endpoint on boundary, other outside",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(1, 0),
			p1:       NewPoint2(3, 0),
			expected: []Point2{NewPoint2(1, 0)},
		},
		{
			name:     "from center outwards",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(0, 0),
			p1:       NewPoint2(2, 0),
			expected: []Point2{NewPoint2(1, 0)},
		},
		{
			name:     "both endpoints inside",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(-0.5, 0),
			p1:       NewPoint2(0.5, 0.2),
			expected: nil,
		},
		{
			name:     "outside and pointing away",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(2, 0),
			p1:       NewPoint2(3, 0),
			expected: nil,
		},
		{
			name:     "stops short of the circle",
			center:   origin,
			radius:   1,
			p0:       NewPoint2(-3, 0),
			p1:       NewPoint2(-1.5, 0),
			expected: nil,
		},
		{
			name:     "off-origin circle",
			center:   NewPoint2(0.25, -0.5),
			radius:   0.5,
			p0:       NewPoint2(0.25, 0.5),
			p1:       NewPoint2(0.25, -1.5),
			expected: []Point2{NewPoint2(0.25, 0), NewPoint2(0.25, -1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectCircleSegment(tt.center, tt.radius, tt.p0, tt.p1)
			verifyPoints(t, tt.name, got, tt.expected, 1e-9)
		})
	}
}

func TestIntersectClampsMarginalRoot(t *testing.T) {
	// The root sits at t = 1.0000001, just past p1 but within tolerance
	p0 := NewPoint2(0, 0)
	p1 := NewPoint2(0.9999999, 0)

	got := IntersectCircleSegment(NewPoint2(0, 0), 1, p0, p1)
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %v", got)
	}
	if got[0] != p1 {
		t.Errorf("marginal root should clamp onto p1: expected %v, got %v", p1, got[0])
	}
}

func TestIntersectMergesCoincidentRoots(t *testing.T) {
	// A long chord barely inside the boundary puts both roots within 1e-6 of t=0
	x := 1 - 2.5e-7
	p0 := NewPoint2(x, 0)
	p1 := NewPoint2(x, 1000)

	got := IntersectCircleSegment(NewPoint2(0, 0), 1, p0, p1)
	if len(got) != 1 {
		t.Fatalf("coincident roots should be reported once, got %v", got)
	}
	if !got[0].ApproxEqual(p0, 1e-3) {
		t.Errorf("expected a point near %v, got %v", p0, got[0])
	}
}

func TestIntersectToleranceIsCallerSupplied(t *testing.T) {
	// With a tighter tolerance the root just past p1 is rejected
	p0 := NewPoint2(0, 0)
	p1 := NewPoint2(0.9999999, 0)

	got := IntersectCircleSegmentTol(NewPoint2(0, 0), 1, p0, p1, 1e-9)
	if len(got) != 0 {
		t.Errorf("expected no points with eps=1e-9, got %v", got)
	}
}

func TestIntersectInvalidRadius(t *testing.T) {
	p0 := NewPoint2(-2, 0)
	p1 := NewPoint2(2, 0)

	if got := IntersectCircleSegment(NewPoint2(0, 0), -1, p0, p1); len(got) != 0 {
		t.Errorf("negative radius should yield no points, got %v", got)
	}
	if got := IntersectCircleSegment(NewPoint2(0, 0), math.NaN(), p0, p1); len(got) != 0 {
		t.Errorf("NaN radius should yield no points, got %v", got)
	}
}

func TestIntersectNaNInput(t *testing.T) {
	got := IntersectCircleSegment(NewPoint2(0, 0), 1, NewPoint2(math.NaN(), 0), NewPoint2(2, 0))
	if len(got) != 0 {
		t.Errorf("NaN endpoint should yield no points, got %v", got)
	}
}

func TestIntersectSymmetry(t *testing.T) {
	cases := []struct {
		center Point2
		radius float64
		p0, p1 Point2
	}{
		{NewPoint2(0, 0), 1, NewPoint2(-2, 0), NewPoint2(2, 0)},
		{NewPoint2(0, 0), 1, NewPoint2(-2, 1), NewPoint2(2, 1)},
		{NewPoint2(0, 0), 1, NewPoint2(1, 0), NewPoint2(3, 0)},
		{NewPoint2(0, 0), 1, NewPoint2(0, 0), NewPoint2(2, 0)},
		{NewPoint2(0.1, 0.2), 0.4, NewPoint2(-0.7, -0.3), NewPoint2(0.9, 0.6)},
		{NewPoint2(-0.3, 0.4), 0.25, NewPoint2(-0.9, 0.9), NewPoint2(0.2, -0.1)},
		{NewPoint2(0, 0), 0.5, NewPoint2(0.8, 0.8), NewPoint2(0.9, -0.7)},
	}

	for i, c := range cases {
		forward := IntersectCircleSegment(c.center, c.radius, c.p0, c.p1)
		backward := IntersectCircleSegment(c.center, c.radius, c.p1, c.p0)
		if !sameSet(forward, backward, 1e-9) {
			t.Errorf("case %d: reversing the segment changed the result: %v vs %v", i, forward, backward)
		}
	}
}

func TestIntersectOrderFollowsSegmentDirection(t *testing.T) {
	got := IntersectCircleSegment(NewPoint2(0, 0), 1, NewPoint2(2, 0), NewPoint2(-2, 0))
	verifyPoints(t, "reversed two crossings", got, []Point2{NewPoint2(1, 0), NewPoint2(-1, 0)}, 1e-9)
}

func TestIntersectIdempotent(t *testing.T) {
	center := NewPoint2(0.1, -0.2)
	p0 := NewPoint2(-0.8, -0.6)
	p1 := NewPoint2(0.7, 0.5)

	first := IntersectCircleSegment(center, 0.45, p0, p1)
	second := IntersectCircleSegment(center, 0.45, p0, p1)

	if len(first) != len(second) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated calls differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestIntersectPointsLieOnCircleAndSegment(t *testing.T) {
	center := NewPoint2(-0.1, 0.15)
	radius := 0.6
	p0 := NewPoint2(-0.9, -0.4)
	p1 := NewPoint2(0.8, 0.7)

	got := IntersectCircleSegment(center, radius, p0, p1)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %v", got)
	}

	length := p0.Distance(p1)
	for i, p := range got {
		if d := p.Distance(center); math.Abs(d-radius) > 1e-9 {
			t.Errorf("point %d not on circle: distance %v", i, d)
		}
		if d := p0.Distance(p) + p.Distance(p1); math.Abs(d-length) > 1e-9 {
			t.Errorf("point %d not on segment", i)
		}
	}
}
