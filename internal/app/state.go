package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gointersect/pkg/interaction"
)

// ViewSettings holds display settings
type ViewSettings struct {
	showAxes bool
	showHelp bool
}

// InputState holds mouse state carried between frames
type InputState struct {
	poller       interaction.Poller
	lastMousePos rl.Vector2
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	fontSize float32
}
