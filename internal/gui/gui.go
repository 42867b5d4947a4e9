// Package gui is the fyne desktop front end: the drawing widget with a side
// panel that shows the status text.
package gui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gointersect/internal/config"
	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/render"
	"github.com/philipparndt/gointersect/pkg/viewer"
	"github.com/philipparndt/gointersect/version"
)

type App struct {
	window  fyne.Window
	session *interaction.Session
	view    *viewer.SessionView
	options render.Options
	logger  *slog.Logger
	width   int
	height  int
	info    *StatusInfo
}

// StatusInfo holds the labels of the side panel
type StatusInfo struct {
	circleLabel  *widget.Label
	segmentLabel *widget.Label
	resultLabel  *widget.Label
	hintLabel    *widget.Label
}

// Run opens the window and blocks until it is closed
func Run(cfg config.Config, logger *slog.Logger) error {
	a := app.New()
	gui := New(a, cfg, logger)
	logger.Info("window opened", "backend", "fyne", "width", cfg.Window.Width, "height", cfg.Window.Height)
	gui.window.ShowAndRun()
	logger.Info("window closed", "solves", gui.session.Solves())
	return nil
}

// New builds the window and its content without showing it
func New(a fyne.App, cfg config.Config, logger *slog.Logger) *App {
	opts := render.DefaultOptions()
	opts.CircleSegments = cfg.Render.CircleSegments
	opts.PointSize = cfg.Render.PointSize
	opts.LineWidth = cfg.Render.LineWidth
	opts.Axes = cfg.Render.Axes

	g := &App{
		window: a.NewWindow(fmt.Sprintf("%s %s", cfg.Window.Title, version.GetVersion())),
		session: interaction.NewSession(
			interaction.WithTolerance(cfg.Solver.Tolerance),
			interaction.WithLogger(logger),
		),
		options: opts,
		logger:  logger,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	g.setupMainUI()
	g.window.Resize(fyne.NewSize(float32(cfg.Window.Width+300), float32(cfg.Window.Height)))
	return g
}

func (g *App) setupMainUI() {
	g.info = &StatusInfo{
		circleLabel:  widget.NewLabel(""),
		segmentLabel: widget.NewLabel(""),
		resultLabel:  widget.NewLabel(""),
		hintLabel:    widget.NewLabel(""),
	}
	g.info.resultLabel.TextStyle = fyne.TextStyle{Bold: true}
	g.info.hintLabel.Wrapping = fyne.TextWrapWord

	g.view = viewer.NewSessionView(g.session, g.options)
	g.view.SetOnChange(g.updateStatus)

	resetButton := widget.NewButton("Reset", func() {
		g.view.Reset()
	})

	saveButton := widget.NewButton("Save PNG", func() {
		g.showSaveDialog()
	})

	axesCheck := widget.NewCheck("Show Axes", func(checked bool) {
		g.options.Axes = checked
		g.view.SetOptions(g.options)
	})
	axesCheck.SetChecked(g.options.Axes)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Press and drag to draw the circle\n" +
			"• Press and drag again to draw the segment\n" +
			"• Press C or Reset to start over",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Status:"),
		widget.NewSeparator(),
		g.info.circleLabel,
		g.info.segmentLabel,
		g.info.resultLabel,
		widget.NewSeparator(),
		g.info.hintLabel,
		widget.NewSeparator(),
		axesCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
		saveButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		g.view,     // center
	)

	g.window.SetContent(content)
	g.window.Canvas().SetOnTypedKey(g.handleKey)
	g.updateStatus(g.session.Snapshot())
}

// handleKey binds C to reset, like the window backends
func (g *App) handleKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyC {
		g.view.Reset()
	}
}

func (g *App) updateStatus(state interaction.State) {
	lines := analysis.StatusLines(state)
	labels := []*widget.Label{g.info.circleLabel, g.info.segmentLabel, g.info.resultLabel}
	for i, label := range labels {
		text := ""
		if i < len(lines) {
			text = lines[i]
		}
		label.SetText(text)
	}
	g.info.hintLabel.SetText(analysis.Hint(state.Mode))
}

func (g *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := viewer.WritePNG(writer, g.session.Snapshot(), g.width, g.height, g.options); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save snapshot: %w", err), g.window)
			return
		}
		g.logger.Info("snapshot saved", "path", writer.URI().Path())
	}, g.window)
}
