package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// command binds a key combination to a board action.
type command struct {
	name     string
	shortcut *desktop.CustomShortcut
	run      func()
}

func boardCommands(b *BoardWidget) []command {
	return []command{
		{
			name:     "undo",
			shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
			run:      b.Undo,
		},
		{
			name:     "redo",
			shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl},
			run:      b.Redo,
		},
	}
}

// RegisterShortcuts installs the undo/redo key bindings on c.
func RegisterShortcuts(c fyne.Canvas, b *BoardWidget) {
	for _, cmd := range boardCommands(b) {
		c.AddShortcut(cmd.shortcut, func(fyne.Shortcut) {
			slog.Debug("shortcut", "command", cmd.name)
			cmd.run()
		})
	}
}
