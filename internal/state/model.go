package state

import "image/color"

// Point is a position on the canvas surface.
type Point struct{ X, Y int }

// Size is the width and height of the canvas surface.
type Size struct{ Width, Height int }

// Stroke is one continuous drag, from press to release.
type Stroke struct {
	ID     string
	Points []Point
}

// clone returns a copy of the stroke that shares no memory with s.
func (s Stroke) clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return Stroke{ID: s.ID, Points: pts}
}

// Button identifies the pointer button of a press or release.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// Pen describes how segments are drawn.
type Pen struct {
	Color color.Color
	Width float32
}

// DefaultPen is the only pen strokes are drawn with: solid, 2 units, black.
var DefaultPen = Pen{Color: color.Black, Width: 2}

// Painter draws line segments for a StrokeCanvas.
type Painter interface {
	DrawLine(p1, p2 Point, pen Pen)
}

// StrokePainter is a Painter that keeps its output per stroke. BeginStroke is
// called with each stroke before its segments and returns how many leading
// points are already drawn; only segments ending past that point are issued.
// pts belongs to the canvas and must not be retained.
type StrokePainter interface {
	Painter
	BeginStroke(id string, pts []Point) (drawn int)
}

// Handler is the event surface a host toolkit drives.
type Handler interface {
	PointerDown(b Button, p Point)
	PointerMove(p Point)
	PointerUp(b Button)
	Undo()
	Redo()
	Resize(oldSize, newSize Size)
	Render(p Painter)
}

// snapshot deep copies a stroke list.
func snapshot(strokes []Stroke) []Stroke {
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.clone()
	}
	return out
}
