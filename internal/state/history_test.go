package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryRecordCopies(t *testing.T) {
	var h History
	live := []Stroke{{ID: "a", Points: []Point{{1, 2}}}}
	h.Record(live)

	live[0].Points[0] = Point{9, 9}
	live = append(live, Stroke{ID: "b"})

	got, ok := h.Undo(live)
	assert.True(t, ok)
	assert.Equal(t, []Stroke{{ID: "a", Points: []Point{{1, 2}}}}, got)
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History
	h.Record([]Stroke{{ID: "a"}})
	h.Record([]Stroke{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, 2, h.UndoDepth())

	cur := []Stroke{{ID: "a"}, {ID: "b"}}
	cur, _ = h.Undo(cur)
	cur, _ = h.Undo(cur)
	assert.Equal(t, "a", cur[0].ID)
	assert.False(t, h.CanUndo())
	assert.Equal(t, 2, h.RedoDepth())

	_, ok := h.Undo(cur)
	assert.False(t, ok)
	assert.Equal(t, 2, h.RedoDepth())

	next, ok := h.Redo(cur)
	assert.True(t, ok)
	assert.Len(t, next, 2)
	assert.Equal(t, 1, h.UndoDepth())

	h.Record(next)
	assert.False(t, h.CanRedo())
	_, ok = h.Redo(next)
	assert.False(t, ok)
}
