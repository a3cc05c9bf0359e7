package reveal

import (
	"math"
	"testing"
)

var square = MustParsePathData("M0 0 H10 V10 H0 Z")

func newTestGlyph(opts ...Option) *Glyph {
	return NewGlyph("g", NewContainer(2, Pt(5, 5)), square, RGB(1, 0.5, 0.25), Pt(3, 4), opts...)
}

func TestNewGlyph(t *testing.T) {
	g := newTestGlyph()

	if g.State() != Hidden {
		t.Errorf("State() = %v, want hidden", g.State())
	}
	if g.Alpha() != 0 {
		t.Errorf("Alpha() = %v, want 0", g.Alpha())
	}
	if g.Placement() != At(Pt(3, 4)) {
		t.Errorf("Placement() = %+v", g.Placement())
	}
	if g.StrokePrimitive().Placement() != g.FillPrimitive().Placement() {
		t.Error("stroke and fill placements differ")
	}
	if g.StrokePrimitive().Outline() != g.FillPrimitive().Outline() {
		t.Error("stroke and fill do not share the outline")
	}
	if got := g.StrokePrimitive().Stroke().Width; got != DefaultGlyphLineWidth {
		t.Errorf("stroke width = %v, want %v", got, DefaultGlyphLineWidth)
	}
	if got := g.StrokePrimitive().Color(); got != g.BaseColor() {
		t.Errorf("stroke color = %v, want base %v", got, g.BaseColor())
	}
	if start, end := g.StrokePrimitive().Range(); start != 0 || end != 1 {
		t.Errorf("stroke range = (%v, %v), want (0, 1)", start, end)
	}
}

func TestGlyphFadeIn(t *testing.T) {
	g := newTestGlyph()
	base := g.BaseColor()
	task := g.FadeIn(1)

	if _, done := task.Advance(0.5); done {
		t.Fatal("done after 0.5s")
	}
	if g.State() != StrokeRevealing || g.Alpha() != 0 {
		t.Errorf("at 0.5s: state %v alpha %v, want stroke-revealing with alpha 0", g.State(), g.Alpha())
	}

	// 2/3 s of stroke, then 0.4 of the fill phase.
	if _, done := task.Advance(0.3); done {
		t.Fatal("done after 0.8s")
	}
	if g.State() != FillRevealing {
		t.Errorf("at 0.8s: state %v, want fill-revealing", g.State())
	}
	if want := DoubleEaseFill(0.4); math.Abs(g.Alpha()-want) > 1e-9 {
		t.Errorf("at 0.8s: alpha %v, want %v", g.Alpha(), want)
	}

	rest, done := task.Advance(0.2)
	if !done {
		t.Fatal("not done after 1s")
	}
	if rest > 1e-9 {
		t.Errorf("rest = %v, want 0", rest)
	}
	if g.State() != Visible || g.Alpha() != 1 {
		t.Errorf("at 1s: state %v alpha %v, want visible with alpha 1", g.State(), g.Alpha())
	}
	if g.BaseColor() != base {
		t.Errorf("base color changed to %v", g.BaseColor())
	}
	if got := g.FillColor().WithAlpha(base.A); got != base {
		t.Errorf("fill color %v drifted from base %v", got, base)
	}
}

func TestGlyphAlphaMonotonic(t *testing.T) {
	for _, curve := range []struct {
		name string
		fn   FillCurve
	}{
		{"double-ease", DoubleEaseFill},
		{"ease-in-out-cubic", EaseInOutCubic},
	} {
		t.Run(curve.name, func(t *testing.T) {
			g := newTestGlyph(WithFillCurve(curve.fn))
			task := g.FadeIn(1)
			prev := 0.0
			for done := false; !done; {
				_, done = task.Advance(1.0 / 60)
				if a := g.Alpha(); a < prev {
					t.Fatalf("alpha fell from %v to %v", prev, a)
				} else {
					prev = a
				}
			}
			if prev != 1 {
				t.Errorf("final alpha = %v, want 1", prev)
			}
		})
	}
}

func TestGlyphStrokeReveal(t *testing.T) {
	var calls []float64
	hook := func(g *Glyph, p float64) {
		calls = append(calls, p)
		DrawOnReveal(g, p)
	}
	g := newTestGlyph(WithStrokeReveal(hook))

	if start, end := g.StrokePrimitive().Range(); start != 0 || end != 0 {
		t.Errorf("initial range = (%v, %v), want (0, 0)", start, end)
	}
	if g.StrokePrimitive().Draw().IsVisible() {
		t.Error("stroke visible before the fade-in")
	}

	task := g.FadeIn(3)
	task.Advance(1)
	if _, end := g.StrokePrimitive().Range(); end != EaseInOutCubic(0.5) {
		t.Errorf("range end at half the stroke phase = %v, want %v", end, EaseInOutCubic(0.5))
	}
	task.Advance(1)
	if _, end := g.StrokePrimitive().Range(); end != 1 {
		t.Errorf("range end after the stroke phase = %v, want 1", end)
	}
	if calls[len(calls)-1] != 1 {
		t.Errorf("last hook progress = %v, want 1", calls[len(calls)-1])
	}
}

func TestGlyphDraws(t *testing.T) {
	g := newTestGlyph()
	draws := g.Draws()
	if len(draws) != 2 {
		t.Fatalf("Draws() returned %d draws, want 2", len(draws))
	}
	if draws[0].Mode != PaintFill || draws[1].Mode != PaintStroke {
		t.Errorf("modes = %v, %v; want fill then stroke", draws[0].Mode, draws[1].Mode)
	}
	if draws[0].IsVisible() {
		t.Error("hidden fill reported visible")
	}
	if !draws[1].IsVisible() {
		t.Error("stroke skeleton reported invisible")
	}
	want := Translate(5, 5).Multiply(Scale(2, 2)).Multiply(Translate(3, 4))
	if !draws[0].Transform().ApproxEqual(want, 1e-12) {
		t.Errorf("Transform() = %+v, want %+v", draws[0].Transform(), want)
	}
}

func TestSetStrokeRangeClamps(t *testing.T) {
	g := newTestGlyph()
	g.SetStrokeRange(-1, 2)
	if start, end := g.StrokePrimitive().Range(); start != 0 || end != 1 {
		t.Errorf("Range() = (%v, %v), want (0, 1)", start, end)
	}
}

func TestDoubleEaseFill(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.4, 0.5536},
		{0.5, 0.75},
		{1, 1},
	}
	for _, tt := range tests {
		if got := DoubleEaseFill(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DoubleEaseFill(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestFadeStateString(t *testing.T) {
	if got := FillRevealing.String(); got != "fill-revealing" {
		t.Errorf("String() = %q", got)
	}
	if got := FadeState(9).String(); got != "FadeState(9)" {
		t.Errorf("String() = %q", got)
	}
}
