package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gointersect/pkg/geometry"
	"github.com/philipparndt/gointersect/pkg/interaction"
	"github.com/philipparndt/gointersect/pkg/ndc"
	"github.com/philipparndt/gointersect/pkg/render"
)

// SessionView is a fyne widget that lets the user draw the circle and the
// segment with the mouse
type SessionView struct {
	widget.BaseWidget
	session  *interaction.Session
	opts     render.Options
	surface  ndc.Rect
	objects  []fyne.CanvasObject
	onChange func(interaction.State)
}

var (
	_ desktop.Mouseable = (*SessionView)(nil)
	_ desktop.Hoverable = (*SessionView)(nil)
)

// NewSessionView creates a widget that drives session
func NewSessionView(session *interaction.Session, opts render.Options) *SessionView {
	v := &SessionView{
		session: session,
		opts:    opts,
		surface: ndc.NewRect(400, 400),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback invoked after every event that reached the session
func (v *SessionView) SetOnChange(callback func(state interaction.State)) {
	v.onChange = callback
}

// CreateRenderer creates the renderer for the widget
func (v *SessionView) CreateRenderer() fyne.WidgetRenderer {
	return &sessionViewRenderer{view: v}
}

// Render rebuilds the canvas objects from the current session state
func (v *SessionView) Render() {
	b := &objectBuilder{surface: v.surface}
	render.DrawFrame(b, v.session.Snapshot(), v.opts)
	v.objects = b.objects
	v.Refresh()
}

// MouseDown starts a drag
func (v *SessionView) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	v.handle(interaction.PointerDown, event.Position)
}

// MouseUp ends a drag
func (v *SessionView) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	v.handle(interaction.PointerUp, event.Position)
}

// MouseIn is required by desktop.Hoverable
func (v *SessionView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved updates the shape being dragged
func (v *SessionView) MouseMoved(event *desktop.MouseEvent) {
	v.handle(interaction.PointerMove, event.Position)
}

// MouseOut is required by desktop.Hoverable
func (v *SessionView) MouseOut() {}

// Reset clears the session and redraws
func (v *SessionView) Reset() {
	v.session.Reset()
	v.Render()
	if v.onChange != nil {
		v.onChange(v.session.Snapshot())
	}
}

func (v *SessionView) handle(kind interaction.EventKind, pos fyne.Position) {
	before := v.session.Snapshot()
	v.session.Handle(interaction.FromPointer(kind, float64(pos.X), float64(pos.Y), v.surface))
	after := v.session.Snapshot()

	// Hovering without a press produces a flood of no-op moves
	if kind == interaction.PointerMove && !before.Pressed {
		return
	}

	v.Render()
	if v.onChange != nil {
		v.onChange(after)
	}
}

// objectBuilder turns frame primitives into fyne canvas objects
type objectBuilder struct {
	surface ndc.Rect
	objects []fyne.CanvasObject
}

func (b *objectBuilder) Clear(c render.Color) {
	bg := canvas.NewRectangle(c.RGBA())
	bg.Resize(fyne.NewSize(float32(b.surface.Width), float32(b.surface.Height)))
	b.objects = append(b.objects[:0], bg)
}

func (b *objectBuilder) Draw(coords []float64, topology render.Topology, style render.Style) {
	col := style.Color.RGBA()

	switch topology {
	case render.Points:
		size := float32(style.Size)
		for i := 0; i+1 < len(coords); i += 2 {
			pos := b.position(coords[i], coords[i+1])
			dot := canvas.NewCircle(col)
			dot.Resize(fyne.NewSize(size, size))
			dot.Move(fyne.NewPos(pos.X-size/2, pos.Y-size/2))
			b.objects = append(b.objects, dot)
		}

	case render.Lines:
		for i := 0; i+3 < len(coords); i += 4 {
			b.line(col, style.Size, coords[i], coords[i+1], coords[i+2], coords[i+3])
		}

	case render.LineLoop:
		n := len(coords) / 2
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			b.line(col, style.Size, coords[2*i], coords[2*i+1], coords[2*j], coords[2*j+1])
		}
	}
}

func (b *objectBuilder) line(col color.Color, width float64, x0, y0, x1, y1 float64) {
	l := canvas.NewLine(col)
	l.StrokeWidth = float32(width)
	l.Position1 = b.position(x0, y0)
	l.Position2 = b.position(x1, y1)
	b.objects = append(b.objects, l)
}

func (b *objectBuilder) position(x, y float64) fyne.Position {
	sx, sy := b.surface.ToScreen(geometry.NewPoint2(x, y))
	return fyne.NewPos(float32(sx), float32(sy))
}

// sessionViewRenderer implements fyne.WidgetRenderer
type sessionViewRenderer struct {
	view *SessionView
}

func (r *sessionViewRenderer) Layout(size fyne.Size) {
	r.view.surface = ndc.NewRect(float64(size.Width), float64(size.Height))
	r.view.Render()
}

func (r *sessionViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sessionViewRenderer) Refresh() {
	canvas.Refresh(r.view)
}

func (r *sessionViewRenderer) Objects() []fyne.CanvasObject {
	return r.view.objects
}

func (r *sessionViewRenderer) Destroy() {}

// SetOptions replaces the frame options and redraws
func (v *SessionView) SetOptions(opts render.Options) {
	v.opts = opts
	v.Render()
}
