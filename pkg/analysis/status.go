package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/interaction"
)

// displayEpsilon is the magnitude below which values are shown as zero
const displayEpsilon = 1e-6

// FormatValue formats a coordinate with three decimals. Values that are
// practically zero are printed as 0.000, never -0.000.
func FormatValue(v float64) string {
	if math.Abs(v) < displayEpsilon {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}

// FormatPoint formats a point as (x, y)
func FormatPoint(p geometry.Point2) string {
	return fmt.Sprintf("(%s, %s)", FormatValue(p.X), FormatValue(p.Y))
}

// FormatCircle describes the circle part of the status
func FormatCircle(c interaction.Circle) string {
	return fmt.Sprintf("center %s radius = %s", FormatPoint(c.Center), FormatValue(c.Radius))
}

// FormatSegment describes the segment part of the status
func FormatSegment(s interaction.Segment) string {
	return fmt.Sprintf("%s ~ %s", FormatPoint(s.A), FormatPoint(s.B))
}

// FormatIntersections describes a solver result
func FormatIntersections(points []geometry.Point2) string {
	if len(points) == 0 {
		return "No intersection"
	}

	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = FormatPoint(p)
	}
	return fmt.Sprintf("Intersect Points: %d %s", len(points), strings.Join(parts, " "))
}

// StatusLines returns the status text of a session, one entry per line.
// Nothing is shown before the circle is placed, and the intersection line
// stays empty until the segment is finalized.
func StatusLines(s interaction.State) []string {
	if !s.Circle.HasCenter {
		return nil
	}

	circle := "Circle: " + FormatCircle(s.Circle)
	if !s.Segment.HasStart {
		return []string{circle}
	}

	result := ""
	if s.Mode == interaction.Done {
		result = FormatIntersections(s.Intersections)
	}
	return []string{circle, "Line segment: " + FormatSegment(s.Segment), result}
}

// Status returns the status text as a single newline separated string
func Status(s interaction.State) string {
	return strings.Join(StatusLines(s), "\n")
}

// Hint tells the user what the next gesture does in the given mode
func Hint(mode interaction.Mode) string {
	switch mode {
	case interaction.AwaitCircle:
		return "Press and drag to draw the circle"
	case interaction.DragCircle:
		return "Release to fix the radius"
	case interaction.AwaitSegmentStart:
		return "Press and drag to draw the line segment"
	case interaction.DragSegment:
		return "Release to intersect"
	case interaction.Done:
		return "Done. Press C to start over"
	}
	return ""
}
