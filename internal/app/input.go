package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gointersect/pkg/ndc"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyC) {
		app.Session.Reset()
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.View.showAxes = !app.View.showAxes
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	app.Input.lastMousePos = rl.GetMousePosition()
	pos := app.Input.lastMousePos

	events := app.Input.poller.Poll(
		float64(pos.X), float64(pos.Y),
		rl.IsMouseButtonPressed(rl.MouseLeftButton),
		rl.IsMouseButtonReleased(rl.MouseLeftButton),
		app.surface(),
	)
	for _, ev := range events {
		app.Session.Handle(ev)
	}
}

// surface returns the drawing area, which is the whole window
func (app *App) surface() ndc.Rect {
	return ndc.NewRect(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}
