package geometry

import "math"

// Point2 represents a 2D point or vector in normalized device coordinates
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (p Point2) Add(other Point2) Point2 {
	return Point2{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (p Point2) Sub(other Point2) Point2 {
	return Point2{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{
		X: p.X * scalar,
		Y: p.Y * scalar,
	}
}

// Dot returns the dot product of two vectors
func (p Point2) Dot(other Point2) float64 {
	return p.X*other.X + p.Y*other.Y
}

// LengthSquared returns the squared magnitude of the vector
func (p Point2) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the magnitude of the vector
func (p Point2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// Lerp returns the point at parameter t on the line from p to other
func (p Point2) Lerp(other Point2, t float64) Point2 {
	return p.Add(other.Sub(p).Mul(t))
}

// ApproxEqual reports whether both coordinates differ by at most tol
func (p Point2) ApproxEqual(other Point2, tol float64) bool {
	return math.Abs(p.X-other.X) <= tol && math.Abs(p.Y-other.Y) <= tol
}

// Flatten appends the coordinates of points to dst as x0, y0, x1, y1, ...
func Flatten(dst []float64, points ...Point2) []float64 {
	for _, p := range points {
		dst = append(dst, p.X, p.Y)
	}
	return dst
}
