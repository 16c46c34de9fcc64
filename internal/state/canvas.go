package state

import "github.com/google/uuid"

// StrokeCanvas is the stroke model behind a drawing surface. It turns pointer
// and resize events into an ordered list of strokes with linear undo/redo.
//
// A StrokeCanvas is not safe for concurrent use; the host must deliver events
// from a single goroutine.
type StrokeCanvas struct {
	strokes []Stroke
	history History
	drawing bool
	clock   revisionClock

	// OnRefresh is called whenever the canvas wants to be redrawn.
	OnRefresh func()
}

var _ Handler = (*StrokeCanvas)(nil)

func NewStrokeCanvas() *StrokeCanvas {
	return &StrokeCanvas{strokes: make([]Stroke, 0)}
}

// PointerDown starts a new stroke at p. Buttons other than primary are ignored.
func (c *StrokeCanvas) PointerDown(b Button, p Point) {
	if b != ButtonPrimary {
		return
	}
	c.strokes = append(c.strokes, Stroke{ID: uuid.NewString(), Points: []Point{p}})
	c.drawing = true
	c.changed()
}

// PointerMove extends the stroke in progress. It does nothing between strokes.
func (c *StrokeCanvas) PointerMove(p Point) {
	if !c.drawing || len(c.strokes) == 0 {
		return
	}
	last := &c.strokes[len(c.strokes)-1]
	last.Points = append(last.Points, p)
	c.changed()
}

// PointerUp finishes the stroke and records the whole canvas for undo.
// A release without a matching press still records a snapshot.
func (c *StrokeCanvas) PointerUp(b Button) {
	if b != ButtonPrimary {
		return
	}
	c.drawing = false
	c.history.Record(c.strokes)
	Logger().Debug("stroke finished", "stroke", c.lastID(),
		"strokes", len(c.strokes), "undo", c.history.UndoDepth())
}

func (c *StrokeCanvas) Undo() {
	prev, ok := c.history.Undo(c.strokes)
	if !ok {
		return
	}
	c.strokes = prev
	Logger().Debug("undo", "top", c.lastID(), "strokes", len(c.strokes),
		"undo", c.history.UndoDepth(), "redo", c.history.RedoDepth())
	c.changed()
}

func (c *StrokeCanvas) Redo() {
	next, ok := c.history.Redo(c.strokes)
	if !ok {
		return
	}
	c.strokes = next
	Logger().Debug("redo", "top", c.lastID(), "strokes", len(c.strokes),
		"undo", c.history.UndoDepth(), "redo", c.history.RedoDepth())
	c.changed()
}

// Resize scales every live point by newSize/oldSize per axis, truncating toward
// zero. An axis whose old extent is zero is left as is. Undo and redo entries
// keep their original coordinates.
func (c *StrokeCanvas) Resize(oldSize, newSize Size) {
	sx, okX := scale(oldSize.Width, newSize.Width)
	sy, okY := scale(oldSize.Height, newSize.Height)
	if !okX && !okY {
		Logger().Debug("resize skipped", "old", oldSize, "new", newSize)
		return
	}
	for i := range c.strokes {
		pts := c.strokes[i].Points
		for j := range pts {
			if okX {
				pts[j].X = int(float64(pts[j].X) * sx)
			}
			if okY {
				pts[j].Y = int(float64(pts[j].Y) * sy)
			}
		}
	}
	Logger().Debug("resized", "old", oldSize, "new", newSize)
	c.changed()
}

func scale(from, to int) (float64, bool) {
	if from == 0 {
		return 0, false
	}
	return float64(to) / float64(from), true
}

// Render issues one segment per consecutive pair of points of every stroke,
// in stroke order. Strokes with fewer than two points draw nothing. A
// StrokePainter is told about each stroke first and may skip the segments it
// already holds.
func (c *StrokeCanvas) Render(p Painter) {
	sp, perStroke := p.(StrokePainter)
	for _, s := range c.strokes {
		from := 1
		if perStroke {
			from = max(from, sp.BeginStroke(s.ID, s.Points))
		}
		for i := from; i < len(s.Points); i++ {
			p.DrawLine(s.Points[i-1], s.Points[i], DefaultPen)
		}
	}
}

// lastID is the ID of the topmost stroke, empty when there is none.
func (c *StrokeCanvas) lastID() string {
	if len(c.strokes) == 0 {
		return ""
	}
	return c.strokes[len(c.strokes)-1].ID
}

// Strokes returns a copy of the visible strokes in draw order.
func (c *StrokeCanvas) Strokes() []Stroke {
	return snapshot(c.strokes)
}

// Drawing reports whether a stroke is in progress.
func (c *StrokeCanvas) Drawing() bool { return c.drawing }

func (c *StrokeCanvas) CanUndo() bool  { return c.history.CanUndo() }
func (c *StrokeCanvas) CanRedo() bool  { return c.history.CanRedo() }
func (c *StrokeCanvas) UndoDepth() int { return c.history.UndoDepth() }
func (c *StrokeCanvas) RedoDepth() int { return c.history.RedoDepth() }

// Revision changes every time the visible strokes change.
func (c *StrokeCanvas) Revision() uint64 { return c.clock.now() }

func (c *StrokeCanvas) changed() {
	c.clock.tick()
	if c.OnRefresh != nil {
		c.OnRefresh()
	}
}
