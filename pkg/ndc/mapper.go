// Package ndc maps between surface pixel positions and normalized device
// coordinates, where both axes span [-1,1] and y grows upward.
package ndc

import "github.com/philipparndt/gointersect/pkg/geometry"

// Rect is the bounding rectangle of a drawing surface in pixels
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a surface rectangle anchored at the origin
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// ToNDC converts a pointer position on the surface into normalized coordinates.
// Positions outside the rectangle map outside [-1,1]; nothing is clamped.
func (r Rect) ToNDC(px, py float64) geometry.Point2 {
	return geometry.Point2{
		X: (px-r.Left)/r.Width*2 - 1,
		Y: 1 - (py-r.Top)/r.Height*2,
	}
}

// ToScreen converts a normalized point back into a surface pixel position
func (r Rect) ToScreen(p geometry.Point2) (x, y float64) {
	x = r.Left + (p.X+1)/2*r.Width
	y = r.Top + (1-p.Y)/2*r.Height
	return x, y
}
