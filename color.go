package reveal

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrMalformedColor is returned by ParseColor for unrecognized input.
var ErrMalformedColor = errors.New("reveal: malformed color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
//
// RGBA is a value type. Every operation that changes a component returns a
// new value; nothing mutates a color in place.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns a new color with the same R, G and B and the given
// alpha. The receiver is left untouched.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// Hex returns the color as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// IsOpaque reports whether alpha is at least 1.
func (c RGBA) IsOpaque() bool {
	return c.A >= 1
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// ParseColor parses a CSS/SVG color string.
//
// Supported forms:
//   - rgb(r, g, b) with components as 0-255 numbers or percentages
//   - rgba(r, g, b, a) with alpha in [0, 1]
//   - #rgb, #rgba, #rrggbb, #rrggbbaa
//   - SVG 1.1 color keywords ("white", "black", "steelblue", ...)
func ParseColor(s string) (RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrMalformedColor)
	}

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:], s)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgba("):len(v)-1], 4, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgb("):len(v)-1], 3, s)
	}

	if cn, ok := colornames.Map[v]; ok {
		return FromColor(cn), nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
}

func parseFunctional(body string, n int, orig string) (RGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return RGBA{}, fmt.Errorf("%w: %q: want %d components, got %d", ErrMalformedColor, orig, n, len(parts))
	}

	var comps [4]float64
	comps[3] = 1
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == 3 {
			a, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q: alpha %q", ErrMalformedColor, orig, part)
			}
			comps[3] = clamp01(a)
			continue
		}
		c, err := parseComponent(part)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: component %q", ErrMalformedColor, orig, part)
		}
		comps[i] = c
	}
	return RGBA{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

// parseComponent parses "52.000427%" or "133" into [0, 1].
func parseComponent(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, err
		}
		return clamp01(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / 255), nil
}

func parseHexColor(hex, orig string) (RGBA, error) {
	var digits [8]uint64
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, orig)
		}
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, orig)
		}
		digits[i] = d
	}

	short := func(i int) float64 { return float64(digits[i]*17) / 255 }
	long := func(i int) float64 { return float64(digits[i]*16+digits[i+1]) / 255 }

	switch len(hex) {
	case 3:
		return RGBA{R: short(0), G: short(1), B: short(2), A: 1}, nil
	case 4:
		return RGBA{R: short(0), G: short(1), B: short(2), A: short(3)}, nil
	case 6:
		return RGBA{R: long(0), G: long(2), B: long(4), A: 1}, nil
	case 8:
		return RGBA{R: long(0), G: long(2), B: long(4), A: long(6)}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, orig)
}
