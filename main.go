package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"MyLocalPaint/internal/paint"
	"MyLocalPaint/internal/ui"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/gogpu/gg"
)

type appOptions struct {
	Color          string `short:"c" default:"#000000" help:"Initial pen color as #rrggbb."`
	Width          int    `short:"w" default:"5" help:"Initial pen width (1-20)."`
	ViewportWidth  int    `default:"1024" help:"Window width; the surface takes 90% of it."`
	ViewportHeight int    `default:"768" help:"Window height; the surface takes 70% of it."`
	Verbose        bool   `short:"v" help:"Log stroke and renderer diagnostics."`
}

func (o *appOptions) Validate() error {
	if _, err := paint.ParseColor(o.Color); err != nil {
		return err
	}
	if o.Width < paint.MinWidth || o.Width > paint.MaxWidth {
		return fmt.Errorf("width must be between %d and %d but got %d", paint.MinWidth, paint.MaxWidth, o.Width)
	}
	if o.ViewportWidth <= 0 || o.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive but got %dx%d", o.ViewportWidth, o.ViewportHeight)
	}
	return nil
}

// loadConfig returns default arguments from the user's paint.conf, if any.
func loadConfig() ([]string, error) {
	path, err := xdg.ConfigFile(filepath.Join("mylocalpaint", "paint.conf"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}

func main() {
	var flags appOptions
	parser := kong.Must(&flags,
		kong.Name("mylocalpaint"),
		kong.Description("A freehand drawing board."),
	)

	cfgArgs, err := loadConfig()
	parser.FatalIfErrorf(err)

	_, err = parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	cfg := ui.Config{
		Viewport: paint.Size{Width: flags.ViewportWidth, Height: flags.ViewportHeight},
		Style:    paint.Style{Color: flags.Color, Width: flags.Width},
	}
	if flags.Verbose {
		cfg.Logger = log.Default()
		gg.SetLogger(slog.Default())
	}

	log.Println("Starting Local Paint")
	ui.RunApp(cfg)
}
