package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/version"
)

// drawUI draws the status panel, the help panel and the footer
func (app *App) drawUI(status []string) {
	fontSize := app.UI.fontSize
	fontSize14 := float32(14)
	fontSize12 := float32(12)
	lineHeight := float32(20)

	if len(status) > 0 {
		label := Label{
			Lines:     status,
			ScreenPos: rl.Vector2{X: 10, Y: 10},
			Color:     rl.RayWhite,
		}
		label.Draw(app.UI.font, fontSize, 8)
	}

	screenHeight := float32(rl.GetScreenHeight())

	if app.View.showHelp {
		y := screenHeight - 30 - lineHeight*5
		rl.DrawTextEx(app.UI.font, analysis.Hint(app.Session.Mode()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(144, 238, 144, 255))
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  C: Start over", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  A: Toggle axes", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  H: Toggle help", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "  Ctrl+Q / Esc: Quit", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
