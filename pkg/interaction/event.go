package interaction

import (
	"fmt"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/ndc"
)

// EventKind identifies a pointer event
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pointer event already mapped into normalized coordinates
type Event struct {
	Kind EventKind
	At   geometry.Point2
}

// FromPointer maps a raw pointer position on a surface into an Event
func FromPointer(kind EventKind, px, py float64, surface ndc.Rect) Event {
	return Event{Kind: kind, At: surface.ToNDC(px, py)}
}

// Down is shorthand for a pointer-down at a normalized position
func Down(at geometry.Point2) Event { return Event{Kind: PointerDown, At: at} }

// Move is shorthand for a pointer-move at a normalized position
func Move(at geometry.Point2) Event { return Event{Kind: PointerMove, At: at} }

// Up is shorthand for a pointer-up at a normalized position
func Up(at geometry.Point2) Event { return Event{Kind: PointerUp, At: at} }
