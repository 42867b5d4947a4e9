package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/ndc"
)

// countingSolver wraps the real solver and records each call
type countingSolver struct {
	calls int
}

func (c *countingSolver) solve(center geometry.Point2, radius float64, p0, p1 geometry.Point2) []geometry.Point2 {
	c.calls++
	return geometry.IntersectCircleSegment(center, radius, p0, p1)
}

func pt(x, y float64) geometry.Point2 { return geometry.NewPoint2(x, y) }

func run(t *testing.T, solver *countingSolver, events ...Event) (State, []*Result) {
	t.Helper()
	s := Initial()
	var results []*Result
	for _, ev := range events {
		var r *Result
		s, r = Step(s, ev, solver.solve)
		if r != nil {
			results = append(results, r)
		}
	}
	return s, results
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "await_circle", AwaitCircle.String())
	assert.Equal(t, "drag_circle", DragCircle.String())
	assert.Equal(t, "await_seg_start", AwaitSegmentStart.String())
	assert.Equal(t, "drag_seg", DragSegment.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.Equal(t, AwaitCircle, s.Mode)
	assert.False(t, s.Pressed)
	assert.False(t, s.Circle.HasCenter)
	assert.False(t, s.Segment.HasStart)
	assert.Empty(t, s.Intersections)
}

func TestFullSession(t *testing.T) {
	solver := &countingSolver{}
	s, results := run(t, solver,
		Down(pt(0, 0)),
		Move(pt(0.5, 0)),
		Move(pt(0, 1)),
		Up(pt(0, 1)),
		Down(pt(-2, 0)),
		Move(pt(0, 0)),
		Move(pt(2, 0)),
		Up(pt(2, 0)),
	)

	assert.Equal(t, Done, s.Mode)
	assert.True(t, s.Circle.Final)
	assert.True(t, s.Segment.Final)
	assert.InDelta(t, 1.0, s.Circle.Radius, 1e-12)
	assert.Equal(t, pt(-2, 0), s.Segment.A)
	assert.Equal(t, pt(2, 0), s.Segment.B)

	assert.Equal(t, 1, solver.calls)
	require.Len(t, results, 1)
	require.Len(t, s.Intersections, 2)
	assert.True(t, s.Intersections[0].ApproxEqual(pt(-1, 0), 1e-9))
	assert.True(t, s.Intersections[1].ApproxEqual(pt(1, 0), 1e-9))
	assert.Equal(t, s.Intersections, results[0].Intersections)
	assert.Equal(t, geometry.NewCircle(pt(0, 0), 1), results[0].Circle)
}

func TestTransitions(t *testing.T) {
	solver := &countingSolver{}

	s := Initial()
	s, _ = Step(s, Down(pt(0.1, 0.2)), solver.solve)
	assert.Equal(t, DragCircle, s.Mode)
	assert.True(t, s.Pressed)
	assert.True(t, s.Circle.HasCenter)
	assert.Equal(t, pt(0.1, 0.2), s.Circle.Center)
	assert.Zero(t, s.Circle.Radius)

	s, _ = Step(s, Move(pt(0.4, 0.6)), solver.solve)
	assert.InDelta(t, 0.5, s.Circle.Radius, 1e-12)
	assert.False(t, s.Circle.Final)

	s, _ = Step(s, Up(pt(0.4, 0.6)), solver.solve)
	assert.Equal(t, AwaitSegmentStart, s.Mode)
	assert.False(t, s.Pressed)
	assert.True(t, s.Circle.Final)
	assert.False(t, s.Segment.HasStart)

	s, _ = Step(s, Down(pt(-0.5, -0.5)), solver.solve)
	assert.Equal(t, DragSegment, s.Mode)
	assert.True(t, s.Segment.HasStart)
	assert.Equal(t, pt(-0.5, -0.5), s.Segment.A)
	assert.Equal(t, pt(-0.5, -0.5), s.Segment.B)

	s, _ = Step(s, Move(pt(0.7, 0.1)), solver.solve)
	assert.Equal(t, pt(-0.5, -0.5), s.Segment.A)
	assert.Equal(t, pt(0.7, 0.1), s.Segment.B)
	assert.Equal(t, 0, solver.calls)

	s, r := Step(s, Up(pt(0.7, 0.1)), solver.solve)
	assert.Equal(t, Done, s.Mode)
	assert.NotNil(t, r)
	assert.Equal(t, 1, solver.calls)
}

func TestRadiusTracksLatestDragPoint(t *testing.T) {
	solver := &countingSolver{}
	s, _ := run(t, solver,
		Down(pt(0, 0)),
		Move(pt(0.9, 0)),
		Move(pt(0.3, 0.4)),
	)
	assert.InDelta(t, 0.5, s.Circle.Radius, 1e-12)
}

func TestMoveIgnoredWhileReleased(t *testing.T) {
	solver := &countingSolver{}

	s, _ := run(t, solver, Move(pt(0.5, 0.5)))
	assert.Equal(t, Initial(), s)

	s, _ = run(t, solver,
		Down(pt(0, 0)),
		Move(pt(0.5, 0)),
		Up(pt(0.5, 0)),
		Move(pt(0.9, 0)),
	)
	assert.InDelta(t, 0.5, s.Circle.Radius, 1e-12)
	assert.False(t, s.Segment.HasStart)

	s, _ = run(t, solver,
		Down(pt(0, 0)), Move(pt(0.5, 0)), Up(pt(0.5, 0)),
		Down(pt(-1, 0)), Move(pt(1, 0)), Up(pt(1, 0)),
		Move(pt(0, 1)),
	)
	assert.Equal(t, pt(1, 0), s.Segment.B)
}

func TestStrayEventsAreNoOps(t *testing.T) {
	solver := &countingSolver{}

	// A second pointer-down while dragging keeps the shape being dragged
	s, _ := run(t, solver,
		Down(pt(0, 0)), Move(pt(0.5, 0)),
		Down(pt(0.9, 0.9)),
	)
	assert.Equal(t, DragCircle, s.Mode)
	assert.Equal(t, pt(0, 0), s.Circle.Center)

	s, _ = run(t, solver,
		Down(pt(0, 0)), Move(pt(0.5, 0)), Up(pt(0.5, 0)),
		Down(pt(-1, 0)), Move(pt(0, 0)),
		Down(pt(0.3, 0.3)),
	)
	assert.Equal(t, DragSegment, s.Mode)
	assert.Equal(t, pt(-1, 0), s.Segment.A)

	// Pointer-up without a drag changes nothing
	s, _ = run(t, solver, Up(pt(0.2, 0.2)))
	assert.Equal(t, AwaitCircle, s.Mode)
	assert.False(t, s.Circle.HasCenter)

	assert.Equal(t, 0, solver.calls)
}

func TestDoneIgnoresFurtherEvents(t *testing.T) {
	solver := &countingSolver{}
	done, _ := run(t, solver,
		Down(pt(0, 0)), Move(pt(0, 1)), Up(pt(0, 1)),
		Down(pt(-2, 1)), Move(pt(2, 1)), Up(pt(2, 1)),
	)
	require.Equal(t, Done, done.Mode)

	s := done
	for _, ev := range []Event{Down(pt(0.5, 0.5)), Move(pt(0.1, 0.1)), Up(pt(0.1, 0.1))} {
		var r *Result
		s, r = Step(s, ev, solver.solve)
		assert.Nil(t, r)
	}

	assert.Equal(t, Done, s.Mode)
	assert.Equal(t, done.Circle, s.Circle)
	assert.Equal(t, done.Segment, s.Segment)
	assert.Equal(t, done.Intersections, s.Intersections)
	assert.Equal(t, 1, solver.calls)

	require.Len(t, s.Intersections, 1)
	assert.True(t, s.Intersections[0].ApproxEqual(pt(0, 1), 1e-9))
}

func TestSolverRunsExactlyOnce(t *testing.T) {
	solver := &countingSolver{}
	events := []Event{
		Move(pt(0.3, 0.3)),
		Up(pt(0.3, 0.3)),
		Down(pt(0, 0)),
		Down(pt(0.1, 0.1)),
		Move(pt(0.2, 0)),
		Move(pt(0.4, 0)),
		Up(pt(0.4, 0)),
		Move(pt(0.8, 0.8)),
		Up(pt(0.8, 0.8)),
		Down(pt(-1, 0)),
		Move(pt(0, 0.1)),
		Move(pt(1, 0)),
		Up(pt(1, 0)),
		Down(pt(0.5, 0.5)),
		Up(pt(0.5, 0.5)),
	}

	s, results := run(t, solver, events...)
	assert.Equal(t, Done, s.Mode)
	assert.Equal(t, 1, solver.calls)
	assert.Len(t, results, 1)
}

func TestStepDoesNotAliasIntersections(t *testing.T) {
	solver := &countingSolver{}
	s, results := run(t, solver,
		Down(pt(0, 0)), Move(pt(1, 0)), Up(pt(1, 0)),
		Down(pt(-2, 0)), Move(pt(2, 0)), Up(pt(2, 0)),
	)
	require.Len(t, results, 1)

	results[0].Intersections[0] = pt(99, 99)
	assert.NotEqual(t, pt(99, 99), s.Intersections[0])

	clone := s.Clone()
	clone.Intersections[1] = pt(42, 42)
	assert.NotEqual(t, pt(42, 42), s.Intersections[1])
}

func TestFromPointer(t *testing.T) {
	surface := ndc.NewRect(400, 200)

	ev := FromPointer(PointerDown, 300, 50, surface)
	assert.Equal(t, PointerDown, ev.Kind)
	assert.InDelta(t, 0.5, ev.At.X, 1e-12)
	assert.InDelta(t, 0.5, ev.At.Y, 1e-12)
}
