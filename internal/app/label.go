package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a multi-line text box drawn on a dark background
type Label struct {
	Lines     []string
	ScreenPos rl.Vector2
	Color     rl.Color
}

// Draw renders the label with its top-left corner at ScreenPos and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	lineGap := fontSize * 0.3

	// Measure the widest line; empty lines still take up a row
	width := float32(0)
	for _, line := range l.Lines {
		if size := rl.MeasureTextEx(font, line, fontSize, 1); size.X > width {
			width = size.X
		}
	}
	height := float32(len(l.Lines))*(fontSize+lineGap) - lineGap

	rect := rl.Rectangle{
		X:      l.ScreenPos.X,
		Y:      l.ScreenPos.Y,
		Width:  width + 2*padding,
		Height: height + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 1, rl.NewColor(80, 80, 90, 255))

	y := l.ScreenPos.Y + padding
	for _, line := range l.Lines {
		rl.DrawTextEx(font, line, rl.Vector2{X: l.ScreenPos.X + padding, Y: y}, fontSize, 1, l.Color)
		y += fontSize + lineGap
	}

	return rect
}
