package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gointersect/internal/config"
	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/render"
	"github.com/philipparndt/gointersect/version"
)

type App struct {
	Session *interaction.Session
	View    ViewSettings
	Input   InputState
	UI      UIState

	options render.Options
	logger  *slog.Logger
}

// New creates the application state for a session. It does not open a window.
func New(cfg config.Config, logger *slog.Logger) *App {
	opts := render.DefaultOptions()
	opts.CircleSegments = cfg.Render.CircleSegments
	opts.PointSize = cfg.Render.PointSize
	opts.LineWidth = cfg.Render.LineWidth
	opts.Axes = cfg.Render.Axes

	return &App{
		Session: interaction.NewSession(
			interaction.WithTolerance(cfg.Solver.Tolerance),
			interaction.WithLogger(logger),
		),
		View: ViewSettings{
			showAxes: cfg.Render.Axes,
			showHelp: true,
		},
		UI: UIState{
			fontSize: 18,
		},
		options: opts,
		logger:  logger,
	}
}

// Run opens the window and runs the main loop until the window is closed
func Run(cfg config.Config, logger *slog.Logger) error {
	app := New(cfg, logger)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), fmt.Sprintf("%s %s", cfg.Window.Title, version.GetVersion()))
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window")
	}
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	app.UI.font = rl.GetFontDefault()
	logger.Info("window opened", "backend", "raylib", "width", cfg.Window.Width, "height", cfg.Window.Height)

	drawer := &screenDrawer{}

	for {
		if rl.WindowShouldClose() {
			break
		}

		// Check for Ctrl+Q to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Update
		app.handleInput()

		// Draw
		state := app.Session.Snapshot()
		drawer.surface = app.surface()

		opts := app.options
		opts.Axes = app.View.showAxes

		rl.BeginDrawing()
		render.DrawFrame(drawer, state, opts)
		app.drawUI(analysis.StatusLines(state))
		rl.EndDrawing()
	}

	rl.CloseWindow()
	logger.Info("window closed", "solves", app.Session.Solves())
	return nil
}
