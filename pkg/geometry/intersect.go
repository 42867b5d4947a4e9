package geometry

import "math"

// DefaultTolerance is the root-acceptance tolerance used by IntersectCircleSegment
const DefaultTolerance = 1e-6

// rootMergeDistance is the parameter distance below which the second root is
// treated as a repeat of the first. It is independent of the caller's tolerance.
const rootMergeDistance = 1e-6

// IntersectCircleSegment returns the points where the segment p0-p1 meets the
// circle, using DefaultTolerance.
func IntersectCircleSegment(center Point2, radius float64, p0, p1 Point2) []Point2 {
	return IntersectCircleSegmentTol(center, radius, p0, p1, DefaultTolerance)
}

// IntersectCircleSegmentTol returns zero, one or two points where the segment
// p0-p1 meets the circle with the given center and radius.
//
// The segment is parametrized as P(t) = p0 + t(p1-p0), t in [0,1], which turns
// |P(t)-center|² = radius² into A·t² + B·t + C = 0:
//
//	A = |p1-p0|²
//	B = 2((p0-center)·(p1-p0))
//	C = |p0-center|² - radius²
//	D = B² - 4AC
//
// Roots within eps of [0,1] are accepted and clamped onto the segment. When two
// roots are found they are returned in ascending t order, and the second is
// dropped if it lands within 1e-6 of the first after clamping.
//
// A negative or NaN radius yields no points.
func IntersectCircleSegmentTol(center Point2, radius float64, p0, p1 Point2, eps float64) []Point2 {
	if !(radius >= 0) {
		return nil
	}

	d := p1.Sub(p0)
	f := p0.Sub(center)

	a := d.LengthSquared()
	b := 2 * f.Dot(d)
	c := f.LengthSquared() - radius*radius
	disc := b*b - 4*a*c

	if disc < -eps {
		return nil
	}

	// Zero-length segment: the only candidate is p0 itself
	if math.Abs(a) < eps {
		if math.Abs(c) <= eps {
			return []Point2{p0}
		}
		return nil
	}

	accept := func(t float64) bool {
		return t >= -eps && t <= 1+eps
	}

	// Tangent: one double root
	if math.Abs(disc) <= eps {
		t := -b / (2 * a)
		if !accept(t) {
			return nil
		}
		return []Point2{p0.Lerp(p1, clamp01(t))}
	}

	s := math.Sqrt(disc)
	t1 := (-b - s) / (2 * a)
	t2 := (-b + s) / (2 * a)

	var out []Point2
	first := false
	if accept(t1) {
		t1 = clamp01(t1)
		out = append(out, p0.Lerp(p1, t1))
		first = true
	}
	if accept(t2) {
		t2 = clamp01(t2)
		if !(first && math.Abs(t2-t1) <= rootMergeDistance) {
			out = append(out, p0.Lerp(p1, t2))
		}
	}
	return out
}

func clamp01(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}
