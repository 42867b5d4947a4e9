package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/ndc"
	"github.com/philipparndt/gointersect/pkg/render"
)

// screenDrawer draws frame primitives into the current raylib frame
type screenDrawer struct {
	surface ndc.Rect
}

func toRaylibColor(c render.Color) rl.Color {
	rgba := c.RGBA()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (d *screenDrawer) Clear(c render.Color) {
	rl.ClearBackground(toRaylibColor(c))
}

func (d *screenDrawer) Draw(coords []float64, topology render.Topology, style render.Style) {
	col := toRaylibColor(style.Color)
	size := float32(style.Size)

	switch topology {
	case render.Points:
		for i := 0; i+1 < len(coords); i += 2 {
			rl.DrawCircleV(d.vector(coords[i], coords[i+1]), size/2, col)
		}

	case render.Lines:
		for i := 0; i+3 < len(coords); i += 4 {
			rl.DrawLineEx(d.vector(coords[i], coords[i+1]), d.vector(coords[i+2], coords[i+3]), size, col)
		}

	case render.LineLoop:
		n := len(coords) / 2
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			rl.DrawLineEx(d.vector(coords[2*i], coords[2*i+1]), d.vector(coords[2*j], coords[2*j+1]), size, col)
		}
	}
}

func (d *screenDrawer) vector(x, y float64) rl.Vector2 {
	sx, sy := d.surface.ToScreen(geometry.NewPoint2(x, y))
	return rl.Vector2{X: float32(sx), Y: float32(sy)}
}
