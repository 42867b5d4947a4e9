package interaction

import (
	"io"
	"log/slog"
	"sync"

	"github.com/philipparndt/gointersect/pkg/geometry"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	solve    SolveFunc
	logger   *slog.Logger
	onSolved []func(Result)
}

// WithTolerance makes the session solve with the given root-acceptance tolerance.
func WithTolerance(eps float64) SessionOption {
	return func(o *sessionOptions) {
		o.solve = func(center geometry.Point2, radius float64, p0, p1 geometry.Point2) []geometry.Point2 {
			return geometry.IntersectCircleSegmentTol(center, radius, p0, p1, eps)
		}
	}
}

// WithSolver replaces the intersection solver.
func WithSolver(solve SolveFunc) SessionOption {
	return func(o *sessionOptions) {
		o.solve = solve
	}
}

// WithLogger sets the logger for mode transitions and results.
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// OnSolved registers a callback invoked after the segment is finalized.
// Callbacks run with the session unlocked, on the goroutine that called Handle.
func OnSolved(fn func(Result)) SessionOption {
	return func(o *sessionOptions) {
		o.onSolved = append(o.onSolved, fn)
	}
}

// Session owns the state of one drawing session. Event handling and rendering
// may happen on different goroutines: Handle runs each transition under the
// session lock, and renderers read through Snapshot.
type Session struct {
	mu     sync.Mutex
	state  State
	solves int
	opts   sessionOptions
}

// NewSession creates a session in the initial state.
func NewSession(opts ...SessionOption) *Session {
	o := sessionOptions{
		solve:  geometry.IntersectCircleSegment,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{state: Initial(), opts: o}
}

// Handle applies a pointer event. It returns the intersection result when the
// event finalized the segment, and nil otherwise.
func (s *Session) Handle(ev Event) *Result {
	s.mu.Lock()
	prev := s.state.Mode
	next, result := Step(s.state, ev, s.opts.solve)
	s.state = next
	if result != nil {
		s.solves++
	}
	s.mu.Unlock()

	if next.Mode != prev {
		s.opts.logger.Debug("mode changed",
			"from", prev.String(),
			"to", next.Mode.String(),
			"event", ev.Kind.String(),
			"x", ev.At.X,
			"y", ev.At.Y,
		)
	}

	if result != nil {
		s.opts.logger.Info("intersection solved",
			"center_x", result.Circle.Center.X,
			"center_y", result.Circle.Center.Y,
			"radius", result.Circle.Radius,
			"count", len(result.Intersections),
			"points", result.Intersections,
		)
		for _, fn := range s.opts.onSolved {
			fn(*result)
		}
	}
	return result
}

// Snapshot returns a copy of the current state that is safe to read without the lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode
}

// Solves returns how many times the solver has run since the last reset.
func (s *Session) Solves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solves
}

// Reset discards both shapes and starts over from AwaitCircle.
func (s *Session) Reset() {
	s.mu.Lock()
	s.state = Initial()
	s.solves = 0
	s.mu.Unlock()

	s.opts.logger.Debug("session reset")
}
