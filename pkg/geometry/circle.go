package geometry

import "math"

// DefaultCircleSegments is the number of polygon sides used to approximate a circle outline
const DefaultCircleSegments = 128

// Circle is a center and a non-negative radius
type Circle struct {
	Center Point2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center Point2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies strictly inside the circle
func (c Circle) Contains(p Point2) bool {
	return p.Sub(c.Center).LengthSquared() < c.Radius*c.Radius
}

// Outline samples n points uniformly around the circle, starting at angle 0
// and going counter-clockwise. The result is meant to be drawn as a closed loop.
// n below 3 falls back to DefaultCircleSegments.
func (c Circle) Outline(n int) []Point2 {
	if n < 3 {
		n = DefaultCircleSegments
	}

	points := make([]Point2, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(n)
		points[i] = Point2{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		}
	}
	return points
}
