package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/reveal"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reveal.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
width = 640
height = 360
surface = "svg"
fill_curve = "ease"
draw_on = true

[container]
scale = 5
offset_x = -200
offset_y = -250

[caption]
text = "terminals"
`)
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	want := defaultConfig()
	want.Width, want.Height = 640, 360
	want.Surface = "svg"
	want.FillCurve = "ease"
	want.DrawOn = true
	want.Container = containerConfig{Scale: 5, OffsetX: -200, OffsetY: -250}
	want.Caption.Text = "terminals"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeFile(t, "widht = 640\n")
	cfg := defaultConfig()
	err := loadConfig(path, &cfg)
	if err == nil || !strings.Contains(err.Error(), "widht") {
		t.Errorf("loadConfig() error = %v, want unknown key widht", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := defaultConfig()
	cfg.Caption.Text = "hello"
	if err := writeConfig(path, cfg); err != nil {
		t.Fatalf("writeConfig() error = %v", err)
	}
	got := config{}
	if err := loadConfig(path, &got); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*config)
	}{
		{"zero width", func(c *config) { c.Width = 0 }},
		{"negative fps", func(c *config) { c.FPS = -1 }},
		{"negative fade", func(c *config) { c.FadeDuration = -2 }},
		{"unknown curve", func(c *config) { c.FillCurve = "linear" }},
	}
	if err := defaultConfig().validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mut(&cfg)
			if err := cfg.validate(); err == nil {
				t.Error("validate() accepted the config")
			}
		})
	}
}

func TestConfigFillCurve(t *testing.T) {
	for name, want := range map[string]reveal.FillCurve{
		"":            reveal.DoubleEaseFill,
		"double-ease": reveal.DoubleEaseFill,
		"ease":        reveal.EaseInOutCubic,
	} {
		cfg := config{FillCurve: name}
		got, err := cfg.fillCurve()
		if err != nil {
			t.Fatalf("fillCurve(%q) error = %v", name, err)
		}
		if got(0.3) != want(0.3) {
			t.Errorf("fillCurve(%q) picked the wrong curve", name)
		}
	}
}

func TestSurfaceOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Background = "rgb(100%,0%,0%)"
	opts, err := cfg.surfaceOptions()
	if err != nil {
		t.Fatalf("surfaceOptions() error = %v", err)
	}
	if opts.Background != reveal.RGB(1, 0, 0) || opts.Width != 1920 || opts.Dir != "frames" {
		t.Errorf("surfaceOptions() = %+v", opts)
	}

	cfg.Background = "nope"
	if _, err := cfg.surfaceOptions(); err == nil {
		t.Error("surfaceOptions() accepted a bad background")
	}
}

func TestRunRecording(t *testing.T) {
	cfg := defaultConfig()
	cfg.Surface = "recording"
	cfg.Output = ""
	cfg.FPS = 4
	cfg.Caption.Text = "ok"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRunWritesSVGFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Surface = "svg"
	cfg.Output = dir
	cfg.Width, cfg.Height = 64, 36
	cfg.FPS = 1
	cfg.FadeDuration = 0.5

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), cfg, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	if err != nil {
		t.Fatal(err)
	}
	// Nine glyphs at half a second each, one frame per second.
	if len(files) != 6 {
		t.Errorf("wrote %d frames, want 6", len(files))
	}
}
