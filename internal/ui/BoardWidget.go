package ui

import (
	"image/color"
	"math"
	"slices"

	"Sketchpad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget hosts a StrokeCanvas inside a fyne window. It translates mouse,
// drag and resize events into canvas calls and paints the strokes as lines.
type BoardWidget struct {
	widget.BaseWidget
	canvas *state.StrokeCanvas

	// set when DragEnd already finished the stroke, so the MouseUp that
	// may follow does not record a second snapshot
	dragEnded bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{canvas: state.NewStrokeCanvas()}
	b.canvas.OnRefresh = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// Canvas returns the stroke model behind the board.
func (b *BoardWidget) Canvas() *state.StrokeCanvas {
	return b.canvas
}

func (b *BoardWidget) Undo() { b.canvas.Undo() }
func (b *BoardWidget) Redo() { b.canvas.Redo() }

// Resize passes the previous and new size to the model before laying out,
// so existing strokes keep their place relative to the surface.
func (b *BoardWidget) Resize(size fyne.Size) {
	old := b.Size()
	if old == size {
		return
	}
	b.canvas.Resize(toSize(old), toSize(size))
	b.BaseWidget.Resize(size)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.dragEnded = false
	b.canvas.PointerDown(toButton(e.Button), toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	btn := toButton(e.Button)
	if btn == state.ButtonPrimary && b.dragEnded {
		b.dragEnded = false
		return
	}
	b.canvas.PointerUp(btn)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.canvas.PointerMove(toPoint(e.Position))
}

// DragEnd finishes the stroke when the release happens outside the board
// and no MouseUp reaches us.
func (b *BoardWidget) DragEnd() {
	if !b.canvas.Drawing() {
		return
	}
	b.canvas.PointerUp(state.ButtonPrimary)
	b.dragEnded = true
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b, strokes: make(map[string]*strokeLines)}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

func toButton(b desktop.MouseButton) state.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return state.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return state.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return state.ButtonTertiary
	}
	return 0
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: int(p.X), Y: int(p.Y)}
}

// toSize rounds to the nearest unit; fractional layout sizes would otherwise
// shrink every scale factor a little.
func toSize(s fyne.Size) state.Size {
	return state.Size{Width: int(math.Round(float64(s.Width))), Height: int(math.Round(float64(s.Height)))}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	revision   uint64

	// segments per stroke ID, kept across rebuilds
	strokes map[string]*strokeLines
	order   []*strokeLines
	current *strokeLines
	lines   []fyne.CanvasObject
}

type strokeLines struct {
	points []state.Point
	lines  []fyne.CanvasObject
}

// BeginStroke keeps the segments of a stroke whose earlier points are
// unchanged, so a drag only adds lines for the points it appended.
func (r *boardWidgetRenderer) BeginStroke(id string, pts []state.Point) int {
	drawn := 0
	sl, ok := r.strokes[id]
	if ok && len(sl.points) <= len(pts) && slices.Equal(sl.points, pts[:len(sl.points)]) {
		drawn = len(sl.points)
	} else {
		sl = &strokeLines{}
		r.strokes[id] = sl
	}
	sl.points = slices.Clone(pts)
	r.order = append(r.order, sl)
	r.current = sl
	return drawn
}

func (r *boardWidgetRenderer) DrawLine(p1, p2 state.Point, pen state.Pen) {
	segment := canvas.NewLine(pen.Color)
	segment.StrokeWidth = pen.Width
	segment.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
	segment.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
	r.current.lines = append(r.current.lines, segment)
}

func (r *boardWidgetRenderer) rebuild() {
	r.order = r.order[:0]
	r.board.canvas.Render(r)
	r.revision = r.board.canvas.Revision()

	live := make(map[*strokeLines]bool, len(r.order))
	r.lines = r.lines[:0]
	for _, sl := range r.order {
		live[sl] = true
		r.lines = append(r.lines, sl.lines...)
	}
	for id, sl := range r.strokes {
		if !live[sl] {
			delete(r.strokes, id)
		}
	}
	r.current = nil
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.lines)+1)
	objects = append(objects, r.background)
	return append(objects, r.lines...)
}

func (r *boardWidgetRenderer) Refresh() {
	if r.revision != r.board.canvas.Revision() {
		r.rebuild()
	}
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
