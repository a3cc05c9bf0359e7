// Package assets holds the authored diagram data: glyph outlines, connector
// curves, placement matrices and colors, plus caption glyphs generated
// from the Go fonts.
package assets

import (
	"fmt"
	"sort"

	"github.com/gogpu/reveal"
)

// outlines maps outline names to their authored path data.
var outlines = map[string]string{
	"T":           outlineT,
	"prime":       outlinePrime,
	"F":           outlineF,
	"two":         outlineTwo,
	"prime-small": outlinePrimeSmall,
	"four-a":      outlineFourA,
	"four-b":      outlineFourB,
	"five":        outlineFive,
}

// OutlineNames returns the names of the authored glyph outlines, sorted.
func OutlineNames() []string {
	names := make([]string, 0, len(outlines))
	for name := range outlines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Outline parses the authored glyph outline with the given name.
func Outline(name string) (*reveal.Path, error) {
	data, ok := outlines[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown outline %q", name)
	}
	return reveal.ParsePathData(data)
}

// WithCaption returns a copy of a with caption glyphs appended after the
// authored elements and revealed after the authored glyphs.
func WithCaption(a reveal.Asset, text string, origin reveal.Point, size float64, color string) (reveal.Asset, error) {
	specs, err := Caption("caption", text, origin, size, color)
	if err != nil {
		return reveal.Asset{}, err
	}
	a.Elements = append(append([]reveal.ElementSpec(nil), a.Elements...), elementSpecs(specs)...)
	a.RevealOrder = append([]string(nil), a.RevealOrder...)
	for _, s := range specs {
		a.RevealOrder = append(a.RevealOrder, s.ID)
	}
	return a, nil
}

func elementSpecs(specs []reveal.GlyphSpec) []reveal.ElementSpec {
	out := make([]reveal.ElementSpec, len(specs))
	for i, s := range specs {
		out[i] = s
	}
	return out
}
