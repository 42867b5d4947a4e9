// Package script reads pointer sessions recorded as plain text.
//
// Each non-empty line is a command, and everything after # is a comment:
//
//	surface <left> <top> <width> <height>
//	down <x> <y>
//	move <x> <y>
//	up <x> <y>
//	reset
//
// Pointer coordinates are in pixels relative to the current surface.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/ndc"
)

// Parse reads a script file
func Parse(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return ParseReader(file, filepath.Base(filename))
}

// ParseReader reads a script from r. Errors carry the offending line number.
func ParseReader(r io.Reader, name string) (*Script, error) {
	scanner := bufio.NewScanner(r)
	script := NewScript(name)
	surface := DefaultSurface
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); cmd {
		case "surface":
			values, err := parseFloats(fields[1:], 4)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: surface: %w", name, lineNo, err)
			}
			if values[2] <= 0 || values[3] <= 0 {
				return nil, fmt.Errorf("%s:%d: surface size must be positive", name, lineNo)
			}
			surface = ndc.Rect{Left: values[0], Top: values[1], Width: values[2], Height: values[3]}

		case "down", "move", "up":
			values, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %s: %w", name, lineNo, cmd, err)
			}
			script.AddStep(Step{
				Line:   lineNo,
				Event:  interaction.FromPointer(eventKinds[cmd], values[0], values[1], surface),
				PixelX: values[0],
				PixelY: values[1],
			})

		case "reset":
			if len(fields) != 1 {
				return nil, fmt.Errorf("%s:%d: reset takes no arguments", name, lineNo)
			}
			script.AddStep(Step{Line: lineNo, Reset: true})

		default:
			return nil, fmt.Errorf("%s:%d: unknown command %q", name, lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	return script, nil
}

var eventKinds = map[string]interaction.EventKind{
	"down": interaction.PointerDown,
	"move": interaction.PointerMove,
	"up":   interaction.PointerUp,
}

func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(fields))
	}
	values := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values[i] = v
	}
	return values, nil
}
