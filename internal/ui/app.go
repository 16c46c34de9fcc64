package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(title string, size fyne.Size) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)

	board := NewBoardWidget()
	toolbar := NewToolbar(board)
	RegisterShortcuts(myWindow.Canvas(), board)

	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, board))
	myWindow.Resize(size)

	slog.Info("window ready", "title", title, "width", size.Width, "height", size.Height)
	myWindow.ShowAndRun()
	slog.Info("window closed", "strokes", len(board.Canvas().Strokes()))
}
