// Package ebitenapp runs the interactive session on the ebiten game loop.
package ebitenapp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/philipparndt/gointersect/internal/config"
	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/ndc"
	"github.com/philipparndt/gointersect/pkg/render"
	"github.com/philipparndt/gointersect/version"
)

// Run opens a window and blocks until it is closed
func Run(cfg config.Config, logger *slog.Logger) error {
	g := newGame(cfg, logger)

	ebiten.SetWindowTitle(fmt.Sprintf("%s %s", cfg.Window.Title, version.GetVersion()))
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.FPS)

	logger.Info("window opened", "backend", "ebiten", "width", cfg.Window.Width, "height", cfg.Window.Height)
	err := ebiten.RunGame(g)
	logger.Info("window closed", "solves", g.session.Solves())
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	session  *interaction.Session
	poller   interaction.Poller
	options  render.Options
	showHelp bool
	width    int
	height   int
	drawer   screenDrawer
}

func newGame(cfg config.Config, logger *slog.Logger) *game {
	opts := render.DefaultOptions()
	opts.CircleSegments = cfg.Render.CircleSegments
	opts.PointSize = cfg.Render.PointSize
	opts.LineWidth = cfg.Render.LineWidth
	opts.Axes = cfg.Render.Axes

	return &game{
		session: interaction.NewSession(
			interaction.WithTolerance(cfg.Solver.Tolerance),
			interaction.WithLogger(logger),
		),
		options:  opts,
		showHelp: true,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
}

func (g *game) surface() ndc.Rect {
	return ndc.NewRect(float64(g.width), float64(g.height))
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.options.Axes = !g.options.Axes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	x, y := ebiten.CursorPosition()
	events := g.poller.Poll(
		float64(x), float64(y),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		g.surface(),
	)
	for _, ev := range events {
		g.session.Handle(ev)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	state := g.session.Snapshot()

	g.drawer.screen = screen
	g.drawer.surface = g.surface()
	render.DrawFrame(&g.drawer, state, g.options)

	ebitenutil.DebugPrintAt(screen, analysis.Status(state), 10, 10)
	if g.showHelp {
		help := []string{
			analysis.Hint(state.Mode),
			"  C: Start over | A: Toggle axes | H: Toggle help | Esc: Quit",
		}
		ebitenutil.DebugPrintAt(screen, strings.Join(help, "\n"), 10, g.height-44)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// screenDrawer draws frame primitives onto the ebiten screen
type screenDrawer struct {
	screen  *ebiten.Image
	surface ndc.Rect
}

func (d *screenDrawer) Clear(c render.Color) {
	d.screen.Fill(c.RGBA())
}

func (d *screenDrawer) Draw(coords []float64, topology render.Topology, style render.Style) {
	col := style.Color.RGBA()
	width := float32(style.Size)

	switch topology {
	case render.Points:
		for i := 0; i+1 < len(coords); i += 2 {
			x, y := d.point(coords[i], coords[i+1])
			vector.DrawFilledCircle(d.screen, x, y, width/2, col, true)
		}

	case render.Lines:
		for i := 0; i+3 < len(coords); i += 4 {
			x0, y0 := d.point(coords[i], coords[i+1])
			x1, y1 := d.point(coords[i+2], coords[i+3])
			vector.StrokeLine(d.screen, x0, y0, x1, y1, width, col, true)
		}

	case render.LineLoop:
		n := len(coords) / 2
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			x0, y0 := d.point(coords[2*i], coords[2*i+1])
			x1, y1 := d.point(coords[2*j], coords[2*j+1])
			vector.StrokeLine(d.screen, x0, y0, x1, y1, width, col, true)
		}
	}
}

func (d *screenDrawer) point(x, y float64) (float32, float32) {
	sx, sy := d.surface.ToScreen(geometry.NewPoint2(x, y))
	return float32(sx), float32(sy)
}
