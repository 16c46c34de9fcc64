package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Options are the command line flags of the sketchpad.
type Options struct {
	Width    int    `short:"W" default:"800" help:"Initial window width."`
	Height   int    `short:"H" default:"600" help:"Initial window height."`
	Title    string `short:"t" default:"Sketchpad" help:"Window title."`
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level."`
}

// LoadConfig reads default arguments from the user's config file. Arguments
// are whitespace separated and go before the ones given on the command line.
func LoadConfig() ([]string, error) {
	path, err := xdg.ConfigFile(filepath.Join("sketchpad", "sketchpad.conf"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return readArgs(path)
}

func readArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// no config file is fine
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}

// Logger builds a text logger on w at the configured level.
func (o Options) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
