// Command revealdemo renders the terminals diagram reveal as PNG or SVG
// frames.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/gogpu/reveal"
	"github.com/gogpu/reveal/assets"
	"github.com/gogpu/reveal/recording"
	"github.com/gogpu/reveal/surface"
)

func main() {
	var (
		configPath  = flag.String("config", "", "TOML config file")
		writeTo     = flag.String("write-config", "", "write the effective config to this file and exit")
		width       = flag.Int("width", 0, "image width")
		height      = flag.Int("height", 0, "image height")
		fps         = flag.Int("fps", 0, "frames per second")
		surfaceName = flag.String("surface", "", "surface: "+fmt.Sprint(surface.List()))
		output      = flag.String("output", "", "output directory, empty to render without writing")
		fill        = flag.String("fill-curve", "", "fill curve: double-ease or ease")
		drawOn      = flag.Bool("draw-on", false, "draw glyph strokes on during the stroke phase")
		caption     = flag.String("caption", "", "caption revealed after the diagram")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)
	reveal.SetLogger(logger)

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fatal(logger, err)
		}
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FPS = *fps
		case "surface":
			cfg.Surface = *surfaceName
		case "output":
			cfg.Output = *output
		case "fill-curve":
			cfg.FillCurve = *fill
		case "draw-on":
			cfg.DrawOn = *drawOn
		case "caption":
			cfg.Caption.Text = *caption
		}
	})

	if *writeTo != "" {
		if err := writeConfig(*writeTo, cfg); err != nil {
			fatal(logger, err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		fatal(logger, err)
	}
}

// newLogger logs text to an interactive terminal and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func fatal(logger *slog.Logger, err error) {
	logger.Error("revealdemo failed", "err", err)
	os.Exit(1)
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	asset, err := buildAsset(cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	d, err := reveal.Assemble(asset, opts...)
	if err != nil {
		return err
	}

	sopts, err := cfg.surfaceOptions()
	if err != nil {
		return err
	}
	if sopts.Dir != "" {
		if err := os.MkdirAll(sopts.Dir, 0o755); err != nil {
			return err
		}
	}
	s, err := surface.NewSurfaceByName(cfg.Surface, sopts)
	if err != nil {
		return err
	}

	logger.Info("rendering",
		"diagram", d.Name(), "surface", cfg.Surface,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"fps", cfg.FPS, "duration", d.RevealDuration(), "output", sopts.Dir)

	start := time.Now()
	frames := 0
	tl := reveal.NewTimeline(cfg.FPS)
	err = tl.Run(ctx, d.Reveal(), func(f reveal.Frame) error {
		frames++
		return d.PaintFrame(s, f)
	})
	if err != nil {
		return err
	}

	if rec, ok := s.(*recording.Recorder); ok {
		r := rec.FinishRecording()
		logger.Info("recorded", "frames", r.FrameCount(), "commands", len(r.Commands()))
	}
	logger.Info("done", "frames", frames, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func buildAsset(cfg config) (reveal.Asset, error) {
	asset := assets.Terminals()
	if c := cfg.Container; c.Scale > 0 {
		asset.Container = reveal.ContainerSpec{
			Scale:  c.Scale,
			Offset: reveal.Pt(c.OffsetX, c.OffsetY),
		}
	}
	if c := cfg.Caption; c.Text != "" {
		return assets.WithCaption(asset, c.Text, reveal.Pt(c.X, c.Y), c.Size, c.Color)
	}
	return asset, nil
}
