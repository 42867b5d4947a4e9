package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/ndc"
	"github.com/philipparndt/gointersect/pkg/render"
)

// Snapshot draws frames offscreen with the gg software rasterizer
type Snapshot struct {
	dc      *gg.Context
	surface ndc.Rect
	err     error
}

// NewSnapshot creates an offscreen canvas of the given pixel size
func NewSnapshot(width, height int) *Snapshot {
	return &Snapshot{
		dc:      gg.NewContext(width, height),
		surface: ndc.NewRect(float64(width), float64(height)),
	}
}

// Clear fills the canvas
func (s *Snapshot) Clear(c render.Color) {
	s.dc.ClearWithColor(gg.RGBA2(float64(c.R), float64(c.G), float64(c.B), float64(c.A)))
}

// Draw rasterizes one primitive. The first stroke or fill error is kept and
// reported by Err.
func (s *Snapshot) Draw(coords []float64, topology render.Topology, style render.Style) {
	c := style.Color
	s.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))

	switch topology {
	case render.Points:
		for i := 0; i+1 < len(coords); i += 2 {
			x, y := s.toScreen(coords[i], coords[i+1])
			s.dc.DrawPoint(x, y, style.Size/2)
		}
		s.keep(s.dc.Fill())

	case render.Lines:
		s.dc.SetLineWidth(style.Size)
		for i := 0; i+3 < len(coords); i += 4 {
			x0, y0 := s.toScreen(coords[i], coords[i+1])
			x1, y1 := s.toScreen(coords[i+2], coords[i+3])
			s.dc.DrawLine(x0, y0, x1, y1)
		}
		s.keep(s.dc.Stroke())

	case render.LineLoop:
		if len(coords) < 4 {
			return
		}
		s.dc.SetLineWidth(style.Size)
		s.dc.MoveTo(s.toScreen(coords[0], coords[1]))
		for i := 2; i+1 < len(coords); i += 2 {
			s.dc.LineTo(s.toScreen(coords[i], coords[i+1]))
		}
		s.dc.ClosePath()
		s.keep(s.dc.Stroke())
	}
}

func (s *Snapshot) toScreen(x, y float64) (float64, float64) {
	return s.surface.ToScreen(geometry.NewPoint2(x, y))
}

func (s *Snapshot) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first drawing error
func (s *Snapshot) Err() error {
	return s.err
}

// Image returns the canvas with the status lines printed in the top-left corner
func (s *Snapshot) Image(status []string) *image.RGBA {
	src := s.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{235, 235, 235, 255}),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil() + 4
	for i, line := range status {
		d.Dot = fixed.P(10, 10+face.Metrics().Ascent.Ceil()+i*lineHeight)
		d.DrawString(line)
	}
	return dst
}

// Close releases the canvas
func (s *Snapshot) Close() error {
	return s.dc.Close()
}

// WritePNG draws the session state with its status text and encodes it as PNG
func WritePNG(w io.Writer, state interaction.State, width, height int, opts render.Options) error {
	snap := NewSnapshot(width, height)
	defer snap.Close()

	render.DrawFrame(snap, state, opts)
	if err := snap.Err(); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}

	if err := png.Encode(w, snap.Image(analysis.StatusLines(state))); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
