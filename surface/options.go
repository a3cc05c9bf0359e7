// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/reveal"
)

// Options configures a surface.
type Options struct {
	// Width and Height are the view size in pixels.
	Width, Height int

	// Background is painted at the start of every frame.
	Background reveal.RGBA

	// Dir, when set, receives one output file per frame.
	Dir string

	// Tolerance is the flattening tolerance in pixels.
	// Zero means reveal.DefaultTolerance.
	Tolerance float64
}

// DefaultOptions returns a 1920x1080 view on a black background.
func DefaultOptions() Options {
	return Options{
		Width:      1920,
		Height:     1080,
		Background: reveal.Black,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	return nil
}

func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return reveal.DefaultTolerance
}

// View returns the transform from primitive space to pixels: the origin
// moves to the center of the view.
func (o Options) View() reveal.Matrix {
	return reveal.Translate(float64(o.Width)/2, float64(o.Height)/2)
}

// localTolerance converts the pixel tolerance into the local space of a
// primitive drawn through m.
func (o Options) localTolerance(m reveal.Matrix) float64 {
	tol := o.tolerance()
	if s := m.ScaleFactor(); s > 0 {
		tol /= s
	}
	return tol
}
