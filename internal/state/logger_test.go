package state

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := NewStrokeCanvas()
	c.PointerDown(ButtonPrimary, Point{1, 1})
	c.PointerUp(ButtonPrimary)
	assert.Contains(t, buf.String(), "stroke finished")
	assert.Contains(t, buf.String(), "stroke="+c.Strokes()[0].ID)

	SetLogger(nil)
	buf.Reset()
	c.Undo()
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
