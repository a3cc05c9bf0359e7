package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/reveal"
	"github.com/gogpu/reveal/surface"
)

type config struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FPS          int     `toml:"fps"`
	Surface      string  `toml:"surface"`
	Output       string  `toml:"output"`
	Background   string  `toml:"background"`
	Tolerance    float64 `toml:"tolerance"`
	FadeDuration float64 `toml:"fade_duration"`

	// FillCurve is "double-ease" (the authored curve) or "ease".
	FillCurve string `toml:"fill_curve"`
	DrawOn    bool   `toml:"draw_on"`

	Container containerConfig `toml:"container"`
	Caption   captionConfig   `toml:"caption"`
}

type containerConfig struct {
	Scale   float64 `toml:"scale"`
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
}

type captionConfig struct {
	Text  string  `toml:"text"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color"`
}

func defaultConfig() config {
	return config{
		Width:      1920,
		Height:     1080,
		FPS:        reveal.DefaultFrameRate,
		Surface:    "image",
		Output:     "frames",
		Background: "black",
		FillCurve:  "double-ease",
		Caption: captionConfig{
			X:     60,
			Y:     100,
			Size:  6,
			Color: "white",
		},
	}
}

// loadConfig decodes the TOML file at path over c. Unknown keys are an
// error so that typos do not pass silently.
func loadConfig(path string, c *config) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// writeConfig writes c as TOML.
func writeConfig(path string, c config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	if c.FadeDuration < 0 {
		return fmt.Errorf("invalid fade duration %v", c.FadeDuration)
	}
	if _, err := c.fillCurve(); err != nil {
		return err
	}
	return nil
}

func (c config) fillCurve() (reveal.FillCurve, error) {
	switch c.FillCurve {
	case "", "double-ease":
		return reveal.DoubleEaseFill, nil
	case "ease":
		return reveal.EaseInOutCubic, nil
	}
	return nil, fmt.Errorf("unknown fill curve %q", c.FillCurve)
}

func (c config) options() ([]reveal.Option, error) {
	curve, err := c.fillCurve()
	if err != nil {
		return nil, err
	}
	opts := []reveal.Option{reveal.WithFillCurve(curve)}
	if c.FadeDuration > 0 {
		opts = append(opts, reveal.WithFadeDuration(c.FadeDuration))
	}
	if c.DrawOn {
		opts = append(opts, reveal.WithStrokeReveal(reveal.DrawOnReveal))
	}
	return opts, nil
}

func (c config) surfaceOptions() (surface.Options, error) {
	bg, err := reveal.ParseColor(c.Background)
	if err != nil {
		return surface.Options{}, err
	}
	return surface.Options{
		Width:      c.Width,
		Height:     c.Height,
		Background: bg,
		Dir:        c.Output,
		Tolerance:  c.Tolerance,
	}, nil
}
