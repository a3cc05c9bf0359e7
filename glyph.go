package reveal

import "fmt"

// FadeState is the reveal state of a glyph.
type FadeState int

const (
	// Hidden: fill alpha 0, fade-in not started.
	Hidden FadeState = iota
	// StrokeRevealing: first two thirds of the fade-in.
	StrokeRevealing
	// FillRevealing: last third, fill alpha rising.
	FillRevealing
	// Visible: fade-in complete, fill alpha 1.
	Visible
)

func (s FadeState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case StrokeRevealing:
		return "stroke-revealing"
	case FillRevealing:
		return "fill-revealing"
	case Visible:
		return "visible"
	}
	return fmt.Sprintf("FadeState(%d)", int(s))
}

// strokeShare is the fraction of a fade-in spent on the stroke phase.
const strokeShare = 2.0 / 3.0

// DefaultGlyphLineWidth is the stroke width of a glyph skeleton.
const DefaultGlyphLineWidth = 1.0

// FillCurve maps fill-phase progress in [0, 1] to the fill alpha.
type FillCurve func(progress float64) float64

// DoubleEaseFill feeds the progress into ease-in-out-cubic twice, once as
// the value and once as the lower bound of the output range:
// t + (1-t)*ease(t). It rises faster than EaseInOutCubic but shares its
// endpoints and is monotonic. Use WithFillCurve(EaseInOutCubic) for the
// plain curve.
func DoubleEaseFill(t float64) float64 {
	return EaseInOutCubicRange(t, t, 1)
}

// StrokeRevealFunc is called with the stroke-phase progress in [0, 1].
// It is also called once with 0 when the glyph is built, so the glyph
// starts in the hook's initial state.
type StrokeRevealFunc func(g *Glyph, progress float64)

// DrawOnReveal draws the stroke skeleton progressively: the visible range
// grows from (0, 0) to (0, 1) along ease-in-out-cubic.
func DrawOnReveal(g *Glyph, progress float64) {
	g.SetStrokeRange(0, EaseInOutCubic(progress))
}

// Glyph is a character-like outline with a two-phase fade-in. It owns two
// primitives over one outline and one placement: the stroke skeleton in
// the base color, and the fill whose alpha is animated.
type Glyph struct {
	id        string
	base      RGBA
	stroke    *PathPrimitive
	fill      *PathPrimitive
	state     FadeState
	fillCurve FillCurve
	onStroke  StrokeRevealFunc
}

// NewGlyph creates a hidden glyph at position inside container c.
func NewGlyph(id string, c *Container, outline *Path, base RGBA, position Point, opts ...Option) *Glyph {
	o := applyOptions(opts)
	placement := At(position)
	style := DefaultStroke().WithWidth(DefaultGlyphLineWidth)

	g := &Glyph{
		id:        id,
		base:      base,
		stroke:    NewStrokePrimitive(id+"/stroke", c, outline, placement, style, base),
		fill:      NewFillPrimitive(id+"/fill", c, outline, placement, base.WithAlpha(0)),
		fillCurve: o.fillCurve,
		onStroke:  o.strokeReveal,
	}
	if g.onStroke != nil {
		g.onStroke(g, 0)
	}
	return g
}

// ID returns the glyph identifier.
func (g *Glyph) ID() string { return g.id }

// State returns the current fade state.
func (g *Glyph) State() FadeState { return g.state }

// BaseColor returns the color the glyph was built with.
func (g *Glyph) BaseColor() RGBA { return g.base }

// FillColor returns the current fill color.
func (g *Glyph) FillColor() RGBA { return g.fill.color }

// Alpha returns the current fill alpha.
func (g *Glyph) Alpha() float64 { return g.fill.color.A }

// Placement returns the placement shared by stroke and fill.
func (g *Glyph) Placement() Placement { return g.fill.placement }

// StrokePrimitive returns the stroke skeleton primitive.
func (g *Glyph) StrokePrimitive() *PathPrimitive { return g.stroke }

// FillPrimitive returns the fill primitive.
func (g *Glyph) FillPrimitive() *PathPrimitive { return g.fill }

// SetStrokeRange sets the visible arc-length fractions of the stroke.
// It is meant for StrokeRevealFunc hooks.
func (g *Glyph) SetStrokeRange(start, end float64) {
	g.stroke.start = Clamp01(start)
	g.stroke.end = Clamp01(end)
}

// setAlpha replaces the fill color with a freshly built one; the base
// color is never modified.
func (g *Glyph) setAlpha(a float64) {
	g.fill.color = g.base.WithAlpha(Clamp01(a))
}

// Draws returns the surface descriptions of the glyph, fill first.
func (g *Glyph) Draws() []Draw {
	return []Draw{g.fill.Draw(), g.stroke.Draw()}
}

// FadeIn returns the reveal task of the glyph. The first 2/3 of duration
// is the stroke phase, which only runs the StrokeRevealFunc hook if one is
// installed; the last 1/3 raises the fill alpha along the fill curve.
// When the task completes the glyph is Visible with alpha 1.
func (g *Glyph) FadeIn(duration float64) Task {
	strokeTime := duration * strokeShare
	fillTime := duration - strokeTime

	return Sequence(
		Tween(strokeTime, func(t float64) {
			g.state = StrokeRevealing
			if g.onStroke != nil {
				g.onStroke(g, t)
			}
		}),
		Tween(fillTime, func(t float64) {
			g.state = FillRevealing
			g.setAlpha(g.fillCurve(t))
		}),
		Func(func() {
			g.state = Visible
		}),
	)
}
