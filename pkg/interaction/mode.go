package interaction

// Mode is the phase of a drawing session
type Mode int

const (
	// AwaitCircle waits for the pointer-down that places the circle center
	AwaitCircle Mode = iota
	// DragCircle follows the pointer to size the radius
	DragCircle
	// AwaitSegmentStart waits for the pointer-down that anchors the segment
	AwaitSegmentStart
	// DragSegment follows the pointer with the segment's free endpoint
	DragSegment
	// Done holds the final circle, segment and intersection result
	Done
)

var modeNames = [...]string{
	AwaitCircle:       "await_circle",
	DragCircle:        "drag_circle",
	AwaitSegmentStart: "await_seg_start",
	DragSegment:       "drag_seg",
	Done:              "done",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Dragging reports whether a shape is currently following the pointer
func (m Mode) Dragging() bool {
	return m == DragCircle || m == DragSegment
}
