package interaction

import "github.com/philipparndt/gointersect/pkg/ndc"

// Poller turns pointer state sampled once per frame into events. Backends
// that poll the mouse instead of receiving callbacks feed it every frame.
type Poller struct {
	lastX, lastY float64
	seen         bool
}

// Poll returns the events for one frame in the order down, move, up.
// pressed and released report button edges seen during the frame. A move is
// emitted whenever the pointer position changed since the previous frame.
func (p *Poller) Poll(px, py float64, pressed, released bool, surface ndc.Rect) []Event {
	var events []Event

	moved := p.seen && (px != p.lastX || py != p.lastY)
	p.lastX, p.lastY, p.seen = px, py, true

	if pressed {
		events = append(events, FromPointer(PointerDown, px, py, surface))
	}
	if moved && !pressed {
		events = append(events, FromPointer(PointerMove, px, py, surface))
	}
	if released {
		events = append(events, FromPointer(PointerUp, px, py, surface))
	}
	return events
}
