package ndc

import (
	"math"
	"testing"

	"github.com/philipparndt/gointersect/pkg/geometry"
)

func TestToNDC(t *testing.T) {
	rect := Rect{Left: 10, Top: 20, Width: 200, Height: 100}

	tests := []struct {
		name     string
		px, py   float64
		expected geometry.Point2
	}{
		{"top-left corner", 10, 20, geometry.NewPoint2(-1, 1)},
		{"bottom-right corner", 210, 120, geometry.NewPoint2(1, -1)},
		{"center", 110, 70, geometry.NewPoint2(0, 0)},
		{"y grows upward", 110, 45, geometry.NewPoint2(0, 0.5)},
		{"outside the surface", 310, 220, geometry.NewPoint2(2, -3)},
	}

	for _, tt := range tests {
		got := rect.ToNDC(tt.px, tt.py)
		if !got.ApproxEqual(tt.expected, 1e-12) {
			t.Errorf("%s: ToNDC(%v, %v) = %v, want %v", tt.name, tt.px, tt.py, got, tt.expected)
		}
	}
}

func TestToScreenInvertsToNDC(t *testing.T) {
	rect := Rect{Left: 5, Top: 7, Width: 640, Height: 480}

	for _, pos := range [][2]float64{{5, 7}, {645, 487}, {100, 300}, {-50, 600}} {
		x, y := rect.ToScreen(rect.ToNDC(pos[0], pos[1]))
		if math.Abs(x-pos[0]) > 1e-9 || math.Abs(y-pos[1]) > 1e-9 {
			t.Errorf("round trip of %v gave (%v, %v)", pos, x, y)
		}
	}
}
