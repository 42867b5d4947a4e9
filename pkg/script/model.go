package script

import (
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/ndc"
)

// DefaultSurface is the drawing surface assumed until a script declares one
var DefaultSurface = ndc.NewRect(900, 900)

// Step is one line of a script that does something
type Step struct {
	Line int
	// Reset discards the session instead of sending an event
	Reset bool
	// Event holds the pointer event already mapped into NDC space
	Event interaction.Event
	// PixelX and PixelY are the coordinates as written in the script
	PixelX, PixelY float64
}

// Script is a recorded pointer session
type Script struct {
	Name  string
	Steps []Step
}

// NewScript creates an empty script
func NewScript(name string) *Script {
	return &Script{
		Name:  name,
		Steps: make([]Step, 0),
	}
}

// AddStep appends a step
func (s *Script) AddStep(step Step) {
	s.Steps = append(s.Steps, step)
}

// EventCount returns the number of pointer events in the script
func (s *Script) EventCount() int {
	n := 0
	for _, step := range s.Steps {
		if !step.Reset {
			n++
		}
	}
	return n
}

// Replay feeds the script into session and returns every intersection result
// produced along the way, in order.
func (s *Script) Replay(session *interaction.Session) []interaction.Result {
	var results []interaction.Result
	for _, step := range s.Steps {
		if step.Reset {
			session.Reset()
			continue
		}
		if r := session.Handle(step.Event); r != nil {
			results = append(results, *r)
		}
	}
	return results
}
