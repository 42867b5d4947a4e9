// Package render turns a session state into a frame of 2D primitives in NDC
// space. Backends implement Drawer and map the primitives onto their own
// drawing calls.
package render

import (
	"image/color"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/interaction"
)

// Topology says how a flat coordinate list is assembled into primitives
type Topology int

const (
	// Points draws every coordinate pair as a point
	Points Topology = iota
	// Lines draws each consecutive pair of points as a separate line
	Lines
	// LineLoop connects all points and closes the loop
	LineLoop
)

func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	}
	return "unknown"
}

// Color is a linear RGBA color with components in [0,1]
type Color struct {
	R, G, B, A float32
}

// RGBA converts the color to an 8 bit image color
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Style is the color and size of a primitive. Size is the line width for
// Lines and LineLoop, and the point diameter for Points, in pixels.
type Style struct {
	Color Color
	Size  float64
}

// Drawer is implemented by every rendering backend. Coordinates are flat
// x,y pairs in NDC space.
type Drawer interface {
	Clear(c Color)
	Draw(coords []float64, topology Topology, style Style)
}

// Palette holds the colors of a frame
type Palette struct {
	Background   Color
	AxisX        Color
	AxisY        Color
	Circle       Color
	Segment      Color
	Intersection Color
}

// DefaultPalette returns the standard dark palette
func DefaultPalette() Palette {
	return Palette{
		Background:   Color{0.05, 0.05, 0.07, 1},
		AxisX:        Color{0.65, 0.35, 0.20, 1},
		AxisY:        Color{0.0, 0.8, 0.6, 1},
		Circle:       Color{0.2, 0.8, 1.0, 1},
		Segment:      Color{1.0, 0.85, 0.2, 1},
		Intersection: Color{1.0, 0.2, 0.25, 1},
	}
}

// Options controls what a frame contains
type Options struct {
	Palette        Palette
	CircleSegments int
	PointSize      float64
	LineWidth      float64
	Axes           bool
}

// DefaultOptions returns the options used when no configuration is given
func DefaultOptions() Options {
	return Options{
		Palette:        DefaultPalette(),
		CircleSegments: geometry.DefaultCircleSegments,
		PointSize:      10,
		LineWidth:      2,
		Axes:           true,
	}
}

// DrawFrame draws one frame of the session state: background, axes, circle
// outline, segment and finally the intersection points.
func DrawFrame(d Drawer, s interaction.State, opts Options) {
	p := opts.Palette
	line := func(c Color) Style { return Style{Color: c, Size: opts.LineWidth} }

	d.Clear(p.Background)

	if opts.Axes {
		d.Draw([]float64{-1, 0, 1, 0}, Lines, line(p.AxisX))
		d.Draw([]float64{0, -1, 0, 1}, Lines, line(p.AxisY))
	}

	if s.Circle.HasCenter && s.Circle.Radius > 0 {
		outline := s.Circle.Shape().Outline(opts.CircleSegments)
		d.Draw(geometry.Flatten(nil, outline...), LineLoop, line(p.Circle))
	}

	if s.Segment.HasStart {
		d.Draw(geometry.Flatten(nil, s.Segment.A, s.Segment.B), Lines, line(p.Segment))
	}

	if s.Mode == interaction.Done && len(s.Intersections) > 0 {
		d.Draw(geometry.Flatten(nil, s.Intersections...), Points,
			Style{Color: p.Intersection, Size: opts.PointSize})
	}
}
