package reveal

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testAsset() Asset {
	return Asset{
		Name:      "test",
		Container: ContainerSpec{Scale: 10, Offset: Pt(-50, -50)},
		Elements: []ElementSpec{
			GlyphSpec{ID: "a", Data: "M0 0 H2 V2 H0 Z", Color: "pink", Position: Pt(1, 1)},
			ConnectorSpec{
				ID:     "c",
				Data:   "M0 0 L4 0",
				Matrix: NewMatrix(1, 0, 0, -1, 2, 3),
				Color:  "white",
				Width:  0.5,
				Cap:    "round",
				Dash:   []float64{1, 0.5},
			},
			GlyphSpec{ID: "b", Data: "M0 0 L1 1", Color: "#00ff00", Position: Pt(5, 1)},
			GlyphSpec{ID: "hidden", Data: "M0 0 L1 0", Color: "green"},
		},
		RevealOrder:  []string{"b", "a"},
		FadeDuration: 1.5,
	}
}

func TestAssemble(t *testing.T) {
	d, err := Assemble(testAsset())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if diff := cmp.Diff([]string{"a", "c", "b", "hidden"}, d.IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
	if d.FadeDuration() != 1.5 || d.RevealDuration() != 3 {
		t.Errorf("durations = %v, %v; want 1.5, 3", d.FadeDuration(), d.RevealDuration())
	}

	var order []string
	for _, g := range d.RevealOrder() {
		order = append(order, g.ID())
	}
	if diff := cmp.Diff([]string{"b", "a"}, order); diff != "" {
		t.Errorf("RevealOrder() mismatch (-want +got):\n%s", diff)
	}

	c, ok := d.Connector("c")
	if !ok {
		t.Fatal("connector c missing")
	}
	want := Placement{ScaleX: 1, ScaleY: -1, Translation: Pt(2, 3)}
	if diff := cmp.Diff(want, c.Placement(), approx); diff != "" {
		t.Errorf("connector placement mismatch (-want +got):\n%s", diff)
	}
	if s := c.Stroke(); s.Width != 0.5 || s.Cap != LineCapRound || !s.IsDashed() || s.MiterLimit != DefaultMiterLimit {
		t.Errorf("connector stroke = %+v", s)
	}
	if c.Container() != d.Container() {
		t.Error("connector is not attached to the diagram container")
	}

	g, ok := d.Glyph("a")
	if !ok {
		t.Fatal("glyph a missing")
	}
	if g.BaseColor() != RGB(1, 192.0/255, 203.0/255) {
		t.Errorf("glyph a color = %+v", g.BaseColor())
	}
	if _, ok := d.Glyph("c"); ok {
		t.Error("Glyph(c) found a connector")
	}
}

func TestAssembleDefaults(t *testing.T) {
	a := Asset{
		Elements: []ElementSpec{
			GlyphSpec{Data: "M0 0 L1 0", Color: "white"},
			ConnectorSpec{Data: "M0 0 L1 0", Matrix: Identity(), Color: "white"},
		},
	}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if diff := cmp.Diff([]string{"element-0", "element-1"}, d.IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
	if got := d.Container().Placement(); got != IdentityPlacement() {
		t.Errorf("container placement = %+v, want identity", got)
	}
	c, _ := d.Connector("element-1")
	if c.Stroke().Width != 1 {
		t.Errorf("connector width = %v, want 1", c.Stroke().Width)
	}
}

func TestAssembleFadeDurationOption(t *testing.T) {
	d, err := Assemble(testAsset(), WithFadeDuration(0.25))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if d.FadeDuration() != 0.25 {
		t.Errorf("FadeDuration() = %v, want 0.25", d.FadeDuration())
	}
}

func TestAssembleIgnoreScale(t *testing.T) {
	a := Asset{Elements: []ElementSpec{
		ConnectorSpec{ID: "p", Data: "M0 0 L1 0", Matrix: NewMatrix(0, 3, 2, 0, 7, 8), Color: "white", IgnoreScale: true},
	}}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	p, _ := d.Connector("p")
	pl := p.Placement()
	if pl.ScaleX != 1 || pl.ScaleY != -1 {
		t.Errorf("scale = (%v, %v), want (1, -1)", pl.ScaleX, pl.ScaleY)
	}
	if math.Abs(pl.Rotation-math.Pi/2) > 1e-12 || pl.Translation != Pt(7, 8) {
		t.Errorf("placement = %+v", pl)
	}
}

func TestAssembleDegenerateConnector(t *testing.T) {
	a := Asset{Elements: []ElementSpec{
		ConnectorSpec{ID: "flat", Data: "M0 0 L1 0", Matrix: NewMatrix(1, 2, 2, 4, 3, 3), Color: "white"},
	}}
	d, err := Assemble(a)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	p, _ := d.Connector("flat")
	if !p.Placement().IsDegenerate() {
		t.Errorf("placement = %+v, want degenerate", p.Placement())
	}
	if p.Draw().IsVisible() {
		t.Error("degenerate connector reported visible")
	}
}

func TestAssembleErrors(t *testing.T) {
	glyph := func(id string) GlyphSpec { return GlyphSpec{ID: id, Data: "M0 0 L1 0", Color: "white"} }
	conn := func(mut func(*ConnectorSpec)) ConnectorSpec {
		c := ConnectorSpec{ID: "c", Data: "M0 0 L1 0", Matrix: Identity(), Color: "white"}
		mut(&c)
		return c
	}

	tests := []struct {
		name      string
		asset     Asset
		wantID    string
		wantField string
		wantErr   error
	}{
		{
			name:      "duplicate id",
			asset:     Asset{Elements: []ElementSpec{glyph("x"), glyph("x")}},
			wantID:    "x",
			wantField: "id",
			wantErr:   ErrDuplicateID,
		},
		{
			name:      "duplicate across kinds",
			asset:     Asset{Elements: []ElementSpec{glyph("c"), conn(func(*ConnectorSpec) {})}},
			wantID:    "c",
			wantField: "id",
			wantErr:   ErrDuplicateID,
		},
		{
			name:      "unknown reveal id",
			asset:     Asset{Elements: []ElementSpec{glyph("x")}, RevealOrder: []string{"y"}},
			wantID:    "y",
			wantField: "reveal order",
			wantErr:   ErrUnknownID,
		},
		{
			name: "connector in reveal order",
			asset: Asset{
				Elements:    []ElementSpec{conn(func(*ConnectorSpec) {})},
				RevealOrder: []string{"c"},
			},
			wantID:    "c",
			wantField: "reveal order",
			wantErr:   ErrUnknownID,
		},
		{
			name:      "repeated reveal id",
			asset:     Asset{Elements: []ElementSpec{glyph("x")}, RevealOrder: []string{"x", "x"}},
			wantID:    "x",
			wantField: "reveal order",
			wantErr:   ErrDuplicateID,
		},
		{
			name:      "malformed glyph data",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Data: "L1 1", Color: "white"}}},
			wantID:    "x",
			wantField: "data",
			wantErr:   ErrMalformedPath,
		},
		{
			name:      "missing glyph outline",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Color: "white"}}},
			wantID:    "x",
			wantField: "data",
			wantErr:   ErrMissingOutline,
		},
		{
			name:      "blank glyph data",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Data: "   ", Color: "white"}}},
			wantID:    "x",
			wantField: "data",
			wantErr:   ErrMissingOutline,
		},
		{
			name:      "empty glyph outline",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Outline: NewPath(), Color: "white"}}},
			wantID:    "x",
			wantField: "data",
			wantErr:   ErrMissingOutline,
		},
		{
			name:      "bad color",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Data: "M0 0 L1 0", Color: "blurple"}}},
			wantID:    "x",
			wantField: "color",
			wantErr:   ErrMalformedColor,
		},
		{
			name:      "non-finite position",
			asset:     Asset{Elements: []ElementSpec{GlyphSpec{ID: "x", Data: "M0 0 L1 0", Color: "white", Position: Pt(math.NaN(), 0)}}},
			wantID:    "x",
			wantField: "position",
			wantErr:   ErrNonFiniteMatrix,
		},
		{
			name:      "non-finite matrix",
			asset:     Asset{Elements: []ElementSpec{conn(func(c *ConnectorSpec) { c.Matrix.Tx = math.Inf(1) })}},
			wantID:    "c",
			wantField: "matrix",
			wantErr:   ErrNonFiniteMatrix,
		},
		{
			name:      "empty connector",
			asset:     Asset{Elements: []ElementSpec{conn(func(c *ConnectorSpec) { c.Data = "" })}},
			wantID:    "c",
			wantField: "data",
			wantErr:   ErrMissingOutline,
		},
		{
			name:      "blank connector data",
			asset:     Asset{Elements: []ElementSpec{conn(func(c *ConnectorSpec) { c.Data = "   " })}},
			wantID:    "c",
			wantField: "data",
			wantErr:   ErrMissingOutline,
		},
		{
			name: "dash cycle too short",
			asset: Asset{Elements: []ElementSpec{conn(func(c *ConnectorSpec) {
				c.Data = "M0 0 L100 0"
				c.Dash = []float64{1e-9, 1e-9}
			})}},
			wantID:    "c",
			wantField: "dash",
			wantErr:   ErrInvalidDash,
		},
		{
			name:      "non-finite dash",
			asset:     Asset{Elements: []ElementSpec{conn(func(c *ConnectorSpec) { c.Dash = []float64{1, math.Inf(1)} })}},
			wantID:    "c",
			wantField: "dash",
			wantErr:   ErrInvalidDash,
		},
		{
			name:      "negative duration",
			asset:     Asset{FadeDuration: -1},
			wantField: "fade duration",
			wantErr:   ErrInvalidDuration,
		},
		{
			name:      "non-finite container",
			asset:     Asset{Container: ContainerSpec{Scale: math.Inf(1)}},
			wantField: "container",
			wantErr:   ErrNonFiniteMatrix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Assemble(tt.asset)
			if d != nil {
				t.Error("Assemble() returned a partial diagram")
			}
			var ce *ConstructionError
			if !errors.As(err, &ce) {
				t.Fatalf("Assemble() error = %v, want *ConstructionError", err)
			}
			if ce.ID != tt.wantID || ce.Field != tt.wantField {
				t.Errorf("ConstructionError{ID: %q, Field: %q}, want {%q, %q}", ce.ID, ce.Field, tt.wantID, tt.wantField)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Assemble() error = %v, want to wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestAssembleBadStrokeStyle(t *testing.T) {
	for _, field := range []string{"cap", "join", "dash"} {
		c := ConnectorSpec{ID: "c", Data: "M0 0 L1 0", Matrix: Identity(), Color: "white"}
		switch field {
		case "cap":
			c.Cap = "pointy"
		case "join":
			c.Join = "weld"
		case "dash":
			c.Dash = []float64{1, math.NaN()}
		}
		_, err := Assemble(Asset{Elements: []ElementSpec{c}})
		var ce *ConstructionError
		if !errors.As(err, &ce) || ce.Field != field {
			t.Errorf("%s: Assemble() error = %v", field, err)
		}
	}
}

func TestAssembleShortDashOnShortOutline(t *testing.T) {
	// The cycle is judged against the outline it dashes, not an absolute size.
	c := ConnectorSpec{ID: "c", Data: "M0 0 L0.001 0", Matrix: Identity(), Color: "white", Dash: []float64{1e-6, 1e-6}}
	d, err := Assemble(Asset{Elements: []ElementSpec{c}})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	p, ok := d.Connector("c")
	if !ok {
		t.Fatal("Connector(c) not found")
	}
	// 0.001 / 2e-6 cycles, give or take one to rounding.
	if n := len(p.Draw().VisiblePolylines(DefaultTolerance)); n < 499 || n > 501 {
		t.Errorf("VisiblePolylines() = %d dashes, want 500", n)
	}
}

func TestDiagramRevealSequential(t *testing.T) {
	d, err := Assemble(testAsset())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	a, _ := d.Glyph("a")
	b, _ := d.Glyph("b")
	hidden, _ := d.Glyph("hidden")

	task := d.Reveal()
	step := 1.0 / 30
	elapsed := 0.0
	for done := false; !done; {
		_, done = task.Advance(step)
		elapsed += step

		// a may not leave Hidden until b is Visible.
		if a.State() != Hidden && b.State() != Visible {
			t.Fatalf("at %.3fs: a is %v while b is %v", elapsed, a.State(), b.State())
		}
		if hidden.State() != Hidden {
			t.Fatalf("unlisted glyph changed state to %v", hidden.State())
		}
	}

	if math.Abs(elapsed-d.RevealDuration()) > step {
		t.Errorf("reveal took %v, want about %v", elapsed, d.RevealDuration())
	}
	for _, g := range []*Glyph{a, b} {
		if g.State() != Visible || g.Alpha() != 1 {
			t.Errorf("glyph %s: state %v alpha %v", g.ID(), g.State(), g.Alpha())
		}
	}
	if hidden.Alpha() != 0 {
		t.Errorf("unlisted glyph alpha = %v", hidden.Alpha())
	}
}

func TestDiagramRevealEmpty(t *testing.T) {
	d, err := Assemble(Asset{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if _, done := d.Reveal().Advance(0); !done {
		t.Error("empty reveal not done immediately")
	}
}

type callLog struct {
	calls []string
	fail  string
}

func (l *callLog) BeginFrame(f Frame) error {
	l.calls = append(l.calls, "begin")
	return nil
}

func (l *callLog) Draw(d Draw) error {
	if d.ID == l.fail {
		return errors.New("boom")
	}
	l.calls = append(l.calls, d.ID)
	return nil
}

func (l *callLog) EndFrame() error {
	l.calls = append(l.calls, "end")
	return nil
}

func TestDiagramPaintOrder(t *testing.T) {
	d, err := Assemble(testAsset())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	var log callLog
	if err := d.PaintFrame(&log, Frame{}); err != nil {
		t.Fatalf("PaintFrame() error = %v", err)
	}
	want := []string{
		"begin",
		"a/fill", "a/stroke",
		"c",
		"b/fill", "b/stroke",
		"hidden/fill", "hidden/stroke",
		"end",
	}
	if diff := cmp.Diff(want, log.calls); diff != "" {
		t.Errorf("paint order mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagramPaintError(t *testing.T) {
	d, err := Assemble(testAsset())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	log := callLog{fail: "c"}
	err = d.Paint(&log)
	if err == nil || err.Error() != `reveal: paint "c": boom` {
		t.Errorf("Paint() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a/fill", "a/stroke"}, log.calls); diff != "" {
		t.Errorf("calls before failure (-want +got):\n%s", diff)
	}
}
