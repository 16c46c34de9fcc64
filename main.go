package main

import (
	"log/slog"
	"os"

	"Sketchpad/internal/cmd"
	"Sketchpad/internal/state"
	"Sketchpad/internal/ui"

	"fyne.io/fyne/v2"
	"github.com/alecthomas/kong"
)

func main() {
	var opts cmd.Options
	parser := kong.Must(&opts,
		kong.Name("sketchpad"),
		kong.Description("A freehand drawing surface with undo and redo."))

	cfgArgs, err := cmd.LoadConfig()
	parser.FatalIfErrorf(err)

	_, err = parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	logger, err := opts.Logger(os.Stderr)
	parser.FatalIfErrorf(err)
	slog.SetDefault(logger)
	state.SetLogger(logger.With("pkg", "state"))

	ui.RunApp(opts.Title, fyne.NewSize(float32(opts.Width), float32(opts.Height)))
}
