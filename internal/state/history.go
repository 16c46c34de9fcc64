package state

// History holds the undo and redo stacks. Every stored entry is a deep copy,
// so later changes to the live stroke list never reach a snapshot.
type History struct {
	undo [][]Stroke
	redo [][]Stroke
}

// Record pushes a copy of current onto the undo stack and drops all redo entries.
func (h *History) Record(current []Stroke) {
	h.undo = append(h.undo, snapshot(current))
	h.redo = nil
}

// Undo saves current for redo and returns the most recent undo entry.
// It reports false and leaves both stacks untouched when there is nothing to undo.
func (h *History) Undo(current []Stroke) ([]Stroke, bool) {
	prev, ok := pop(&h.undo)
	if !ok {
		return nil, false
	}
	h.redo = append(h.redo, snapshot(current))
	return prev, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current []Stroke) ([]Stroke, bool) {
	next, ok := pop(&h.redo)
	if !ok {
		return nil, false
	}
	h.undo = append(h.undo, snapshot(current))
	return next, true
}

func (h *History) CanUndo() bool  { return len(h.undo) > 0 }
func (h *History) CanRedo() bool  { return len(h.redo) > 0 }
func (h *History) UndoDepth() int { return len(h.undo) }
func (h *History) RedoDepth() int { return len(h.redo) }

func pop(stack *[][]Stroke) ([]Stroke, bool) {
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	top := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return top, true
}
