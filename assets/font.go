package assets

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/reveal"
)

var (
	regularOnce sync.Once
	regularFont *sfnt.Font
	regularErr  error
)

// goRegular parses the embedded Go Regular font once.
func goRegular() (*sfnt.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = sfnt.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// FontOutline returns the outline of r in Go Regular at size units per em,
// in the same glyph space as the authored outlines: origin on the baseline,
// y pointing down. It also returns the advance width. A rune without
// contours, such as a space, returns an empty path.
func FontOutline(r rune, size float64) (*reveal.Path, float64, error) {
	f, err := goRegular()
	if err != nil {
		return nil, 0, fmt.Errorf("assets: parse font: %w", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, 0, fmt.Errorf("assets: glyph index %q: %w", r, err)
	}
	if gid == 0 {
		return nil, 0, fmt.Errorf("assets: no glyph for %q", r)
	}

	ppem := fixed.Int26_6(size * 64)
	segments, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("assets: load glyph %q: %w", r, err)
	}
	advance, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("assets: advance %q: %w", r, err)
	}
	return segmentsToPath(segments), fromFixed(advance), nil
}

func segmentsToPath(segments sfnt.Segments) *reveal.Path {
	p := reveal.NewPath()
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			a := fromFixedPoint(seg.Args[0])
			p.MoveTo(a.X, a.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			a := fromFixedPoint(seg.Args[0])
			p.LineTo(a.X, a.Y)
		case sfnt.SegmentOpQuadTo:
			c, a := fromFixedPoint(seg.Args[0]), fromFixedPoint(seg.Args[1])
			p.QuadraticTo(c.X, c.Y, a.X, a.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, a := fromFixedPoint(seg.Args[0]), fromFixedPoint(seg.Args[1]), fromFixedPoint(seg.Args[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a.X, a.Y)
		}
	}
	if open {
		p.Close()
	}
	return p
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fromFixedPoint(p fixed.Point26_6) reveal.Point {
	return reveal.Pt(fromFixed(p.X), fromFixed(p.Y))
}

// Caption lays text out in Go Regular with its baseline starting at
// origin, one glyph spec per visible rune. Glyph ids are id/0, id/1, ...
// counting visible runes only. Kerning is applied when the font has it.
func Caption(id, text string, origin reveal.Point, size float64, color string) ([]reveal.GlyphSpec, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("assets: parse font: %w", err)
	}
	var (
		buf   sfnt.Buffer
		specs []reveal.GlyphSpec
		prev  sfnt.GlyphIndex
		pen   = origin
		ppem  = fixed.Int26_6(size * 64)
	)
	for _, r := range text {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("assets: glyph index %q: %w", r, err)
		}
		if prev != 0 && gid != 0 {
			kern, err := f.Kern(&buf, prev, gid, ppem, font.HintingNone)
			switch {
			case err == nil:
				pen.X += fromFixed(kern)
			case !errors.Is(err, sfnt.ErrNotFound):
				return nil, fmt.Errorf("assets: kern %q: %w", r, err)
			}
		}

		outline, advance, err := FontOutline(r, size)
		if err != nil {
			return nil, err
		}
		if !outline.IsEmpty() {
			specs = append(specs, reveal.GlyphSpec{
				ID:       fmt.Sprintf("%s/%d", id, len(specs)),
				Outline:  outline,
				Color:    color,
				Position: pen,
			})
		}
		pen.X += advance
		prev = gid
	}
	return specs, nil
}
