package state

import "sync/atomic"

// revisionClock counts mutations of a canvas. Readers such as renderers
// compare revisions to decide whether their cached output is stale.
type revisionClock struct {
	n atomic.Uint64
}

func (c *revisionClock) tick() uint64 {
	return c.n.Add(1)
}

func (c *revisionClock) now() uint64 {
	return c.n.Load()
}
