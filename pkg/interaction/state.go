package interaction

import "github.com/philipparndt/gointersect/pkg/geometry"

// Circle is the circle being drawn. Center is meaningless until HasCenter is set.
type Circle struct {
	Center    geometry.Point2
	HasCenter bool
	Radius    float64
	Final     bool
}

// Shape returns the circle as a geometry value
func (c Circle) Shape() geometry.Circle {
	return geometry.NewCircle(c.Center, c.Radius)
}

// Segment is the line segment being drawn. A and B are meaningless until HasStart is set.
type Segment struct {
	A, B     geometry.Point2
	HasStart bool
	Final    bool
}

// State is everything a drawing session owns
type State struct {
	Mode    Mode
	Pressed bool
	Circle  Circle
	Segment Segment
	// Intersections is set once, on the transition into Done
	Intersections []geometry.Point2
}

// SolveFunc computes the intersection points of a circle and a segment
type SolveFunc func(center geometry.Point2, radius float64, p0, p1 geometry.Point2) []geometry.Point2

// Result is produced by the transition that finalizes the segment
type Result struct {
	Circle        geometry.Circle
	A, B          geometry.Point2
	Intersections []geometry.Point2
}

// Initial returns the state of a fresh session
func Initial() State {
	return State{Mode: AwaitCircle}
}

// Step applies one pointer event and returns the next state. The returned
// Result is non-nil only for the pointer-up that moves the session into Done,
// which is also the only time solve is called. Events that have no meaning in
// the current mode leave the shapes untouched.
func Step(s State, ev Event, solve SolveFunc) (State, *Result) {
	switch ev.Kind {
	case PointerDown:
		s.Pressed = true
		switch s.Mode {
		case AwaitCircle:
			s.Circle = Circle{Center: ev.At, HasCenter: true}
			s.Mode = DragCircle
		case AwaitSegmentStart:
			s.Segment = Segment{A: ev.At, B: ev.At, HasStart: true}
			s.Mode = DragSegment
		}

	case PointerMove:
		if !s.Pressed {
			return s, nil
		}
		switch s.Mode {
		case DragCircle:
			s.Circle.Radius = s.Circle.Center.Distance(ev.At)
		case DragSegment:
			s.Segment.B = ev.At
		}

	case PointerUp:
		s.Pressed = false
		switch s.Mode {
		case DragCircle:
			s.Circle.Final = true
			s.Mode = AwaitSegmentStart
		case DragSegment:
			s.Segment.Final = true
			s.Mode = Done

			points := solve(s.Circle.Center, s.Circle.Radius, s.Segment.A, s.Segment.B)
			s.Intersections = points
			return s, &Result{
				Circle:        s.Circle.Shape(),
				A:             s.Segment.A,
				B:             s.Segment.B,
				Intersections: append([]geometry.Point2(nil), points...),
			}
		}
	}
	return s, nil
}

// Clone returns a copy of s that shares no memory with it
func (s State) Clone() State {
	if s.Intersections != nil {
		s.Intersections = append([]geometry.Point2(nil), s.Intersections...)
	}
	return s
}
