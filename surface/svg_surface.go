// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/reveal"
)

// SVGSurface serializes every frame as a standalone SVG document.
//
// Outlines keep their curves and carry their transform as a matrix
// attribute, so untrimmed strokes use native stroke attributes. A trimmed
// stroke is emitted as its visible flattened polylines instead.
type SVGSurface struct {
	opts    Options
	buf     bytes.Buffer
	last    []byte
	frame   reveal.Frame
	inFrame bool
}

var _ reveal.Surface = (*SVGSurface)(nil)

// NewSVGSurface creates an SVG surface of the given size.
func NewSVGSurface(opts Options) (*SVGSurface, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &SVGSurface{opts: opts}, nil
}

// BeginFrame starts a new document.
func (s *SVGSurface) BeginFrame(f reveal.Frame) error {
	if s.inFrame {
		return ErrFrameInProgress
	}
	s.frame = f
	s.inFrame = true
	s.buf.Reset()

	w, h := s.opts.Width, s.opts.Height
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	bg := s.opts.Background
	if bg.A > 0 {
		fmt.Fprintf(&s.buf, `<rect width="%d" height="%d" fill="%s"%s/>`+"\n", w, h, bg.Hex(), opacity("fill-opacity", bg.A))
	}
	fmt.Fprintf(&s.buf, `<g transform="%s">`+"\n", matrixAttr(s.opts.View()))
	return nil
}

// Draw appends one primitive to the document.
func (s *SVGSurface) Draw(d reveal.Draw) error {
	if !s.inFrame {
		return ErrNoFrame
	}
	if !d.IsVisible() {
		return nil
	}

	s.buf.WriteString(`<path id="`)
	_ = xml.EscapeText(&s.buf, []byte(d.ID))
	s.buf.WriteString(`"`)

	m := d.Transform()
	switch d.Mode {
	case reveal.PaintFill:
		fmt.Fprintf(&s.buf, ` d="%s" transform="%s" fill="%s"%s`,
			d.Outline.String(), matrixAttr(m), d.Color.Hex(), opacity("fill-opacity", d.Color.A))
	default:
		data := d.Outline.String()
		dashed := d.Stroke.IsDashed()
		if d.IsTrimmed() {
			data = polylineData(d.VisiblePolylines(s.opts.localTolerance(s.opts.View().Multiply(m))))
			dashed = false
		}
		fmt.Fprintf(&s.buf, ` d="%s" transform="%s" fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="%s" stroke-linejoin="%s" stroke-miterlimit="%s"`,
			data, matrixAttr(m), d.Color.Hex(), opacity("stroke-opacity", d.Color.A),
			num(d.Stroke.Width), d.Stroke.Cap, d.Stroke.Join, num(d.Stroke.MiterLimit))
		if dashed {
			s.buf.WriteString(` stroke-dasharray="`)
			for i, l := range d.Stroke.Dash.Array {
				if i > 0 {
					s.buf.WriteByte(' ')
				}
				s.buf.WriteString(num(l))
			}
			s.buf.WriteString(`"`)
			if d.Stroke.Dash.Offset != 0 {
				fmt.Fprintf(&s.buf, ` stroke-dashoffset="%s"`, num(d.Stroke.Dash.Offset))
			}
		}
	}
	s.buf.WriteString("/>\n")
	return nil
}

// EndFrame closes the document and writes it to Dir when one is set.
func (s *SVGSurface) EndFrame() error {
	if !s.inFrame {
		return ErrNoFrame
	}
	s.inFrame = false
	s.buf.WriteString("</g>\n</svg>\n")
	s.last = append(s.last[:0], s.buf.Bytes()...)

	if s.opts.Dir == "" {
		return nil
	}
	name := filepath.Join(s.opts.Dir, fmt.Sprintf("frame-%05d.svg", s.frame.Index))
	if err := os.WriteFile(name, s.last, 0o644); err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	return nil
}

// Bytes returns the document of the last finished frame.
func (s *SVGSurface) Bytes() []byte {
	return s.last
}

// WriteTo writes the last finished document to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.last)
	return int64(n), err
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func matrixAttr(m reveal.Matrix) string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m.A), num(m.B), num(m.C), num(m.D), num(m.Tx), num(m.Ty))
}

func opacity(attr string, a float64) string {
	if a >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(a))
}

func polylineData(pls []reveal.Polyline) string {
	p := reveal.NewPath()
	for _, pl := range pls {
		for i, pt := range pl.Points {
			if i == 0 {
				p.MoveTo(pt.X, pt.Y)
			} else {
				p.LineTo(pt.X, pt.Y)
			}
		}
	}
	return p.String()
}
