// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/reveal"
)

// ImageSurface is a CPU surface that renders to an *image.RGBA.
//
// Fills are handed to the rasterizer as transformed Bezier outlines;
// strokes are expanded into polygons in local space first. Coverage is
// accumulated per primitive and composited with draw.Over.
//
// Example:
//
//	s, _ := surface.NewImageSurface(surface.Options{Width: 800, Height: 600})
//	_ = diagram.PaintFrame(s, reveal.Frame{})
//	img := s.Image()
type ImageSurface struct {
	opts    Options
	view    reveal.Matrix
	img     *image.RGBA
	ras     *vector.Rasterizer
	frame   reveal.Frame
	inFrame bool
}

var _ reveal.Surface = (*ImageSurface)(nil)

// NewImageSurface creates a surface of the given size.
func NewImageSurface(opts Options) (*ImageSurface, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &ImageSurface{
		opts: opts,
		view: opts.View(),
		img:  image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		ras:  vector.NewRasterizer(opts.Width, opts.Height),
	}, nil
}

// BeginFrame clears the image to the background color.
func (s *ImageSurface) BeginFrame(f reveal.Frame) error {
	if s.inFrame {
		return ErrFrameInProgress
	}
	s.frame = f
	s.inFrame = true
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.opts.Background.Color()), image.Point{}, draw.Src)
	return nil
}

// Draw rasterizes one primitive. Invisible primitives are skipped.
func (s *ImageSurface) Draw(d reveal.Draw) error {
	if !s.inFrame {
		return ErrNoFrame
	}
	if !d.IsVisible() {
		return nil
	}

	m := s.view.Multiply(d.Transform())
	s.ras.Reset(s.opts.Width, s.opts.Height)
	s.ras.DrawOp = draw.Over

	a := m.Aff3()
	switch d.Mode {
	case reveal.PaintFill:
		addPath(s.ras, d.Outline, a)
	default:
		for _, poly := range d.StrokePolygons(s.opts.localTolerance(m)) {
			addPolygon(s.ras, poly, a)
		}
	}

	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(d.Color.Color()), image.Point{})
	return nil
}

// EndFrame finishes the frame and writes it to Dir when one is set.
func (s *ImageSurface) EndFrame() error {
	if !s.inFrame {
		return ErrNoFrame
	}
	s.inFrame = false
	if s.opts.Dir == "" {
		return nil
	}

	name := filepath.Join(s.opts.Dir, fmt.Sprintf("frame-%05d.png", s.frame.Index))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", name, err)
	}
	return f.Close()
}

// Image returns the image of the last painted frame. The image is reused
// by the next frame.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the current image as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// addPath adds the outline mapped through a. Every subpath is closed
// explicitly; the rasterizer does not close a subpath on MoveTo.
func addPath(z *vector.Rasterizer, p *reveal.Path, a f64.Aff3) {
	open := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case reveal.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(device(a, e.Point))
			open = true
		case reveal.LineTo:
			z.LineTo(device(a, e.Point))
			open = true
		case reveal.QuadTo:
			cx, cy := device(a, e.Control)
			x, y := device(a, e.Point)
			z.QuadTo(cx, cy, x, y)
			open = true
		case reveal.CubicTo:
			c1x, c1y := device(a, e.Control1)
			c2x, c2y := device(a, e.Control2)
			x, y := device(a, e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
			open = true
		case reveal.Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

func addPolygon(z *vector.Rasterizer, poly []reveal.Point, a f64.Aff3) {
	if len(poly) < 3 {
		return
	}
	z.MoveTo(device(a, poly[0]))
	for _, p := range poly[1:] {
		z.LineTo(device(a, p))
	}
	z.ClosePath()
}

// device maps p through the row-major affine a into rasterizer coordinates.
func device(a f64.Aff3, p reveal.Point) (float32, float32) {
	return float32(a[0]*p.X + a[1]*p.Y + a[2]), float32(a[3]*p.X + a[4]*p.Y + a[5])
}
