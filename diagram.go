package reveal

import (
	"fmt"
	"log/slog"
	"math"
)

// minDashCycle is the shortest dash cycle accepted, as a fraction of the
// outline length it is applied to.
const minDashCycle = 1e-6

// Diagram is an assembled asset: a registry of glyphs and connectors
// attached to one container, plus the reveal sequence. Only glyph alpha
// and stroke range change after assembly.
type Diagram struct {
	name         string
	container    *Container
	order        []string
	glyphs       map[string]*Glyph
	connectors   map[string]*PathPrimitive
	reveal       []*Glyph
	fadeDuration float64
}

// Assemble builds every element of asset in order, placing connectors by
// decomposing their authored matrices. The first invalid element aborts
// assembly with a *ConstructionError.
func Assemble(asset Asset, opts ...Option) (*Diagram, error) {
	o := applyOptions(opts)
	log := Logger().With(slog.String("diagram", asset.Name))

	duration := asset.FadeDuration
	if o.fadeDuration > 0 {
		duration = o.fadeDuration
	}
	if duration < 0 || !isFinite(duration) {
		return nil, constructionError("", "fade duration", fmt.Errorf("%w: %v", ErrInvalidDuration, duration))
	}

	cs := asset.Container
	if cs.Scale == 0 {
		cs.Scale = 1
	}
	if !isFinite(cs.Scale) || !cs.Offset.IsFinite() {
		return nil, constructionError("", "container", ErrNonFiniteMatrix)
	}

	d := &Diagram{
		name:         asset.Name,
		container:    NewContainer(cs.Scale, cs.Offset),
		glyphs:       make(map[string]*Glyph),
		connectors:   make(map[string]*PathPrimitive),
		fadeDuration: duration,
	}

	for i, el := range asset.Elements {
		id := el.elementID()
		if id == "" {
			id = fmt.Sprintf("element-%d", i)
		}
		if d.has(id) {
			return nil, constructionError(id, "id", ErrDuplicateID)
		}

		switch spec := el.(type) {
		case GlyphSpec:
			g, err := buildGlyph(id, spec, d.container, opts)
			if err != nil {
				return nil, err
			}
			d.glyphs[id] = g
			log.Debug("glyph built", "id", id, "x", spec.Position.X, "y", spec.Position.Y)
		case ConnectorSpec:
			p, err := buildConnector(id, spec, d.container)
			if err != nil {
				return nil, err
			}
			if p.placement.IsDegenerate() {
				log.Warn("connector matrix is degenerate, drawing with zero extent", "id", id)
			}
			d.connectors[id] = p
			pl := p.placement
			log.Debug("connector placed", "id", id,
				"scaleX", pl.ScaleX, "scaleY", pl.ScaleY,
				"rotation", pl.Rotation, "skewX", pl.SkewX,
				"x", pl.Translation.X, "y", pl.Translation.Y)
		default:
			return nil, constructionError(id, "kind", fmt.Errorf("unsupported element %T", el))
		}
		d.order = append(d.order, id)
	}

	seen := make(map[string]bool, len(asset.RevealOrder))
	for _, id := range asset.RevealOrder {
		g, ok := d.glyphs[id]
		if !ok {
			return nil, constructionError(id, "reveal order", ErrUnknownID)
		}
		if seen[id] {
			return nil, constructionError(id, "reveal order", ErrDuplicateID)
		}
		seen[id] = true
		d.reveal = append(d.reveal, g)
	}

	log.Debug("diagram assembled",
		"glyphs", len(d.glyphs), "connectors", len(d.connectors),
		"revealed", len(d.reveal), "fade", duration)
	return d, nil
}

func buildGlyph(id string, spec GlyphSpec, c *Container, opts []Option) (*Glyph, error) {
	outline := spec.Outline
	if outline == nil {
		if spec.Data == "" {
			return nil, constructionError(id, "data", ErrMissingOutline)
		}
		p, err := ParsePathData(spec.Data)
		if err != nil {
			return nil, constructionError(id, "data", err)
		}
		outline = p
	}
	if outline.IsEmpty() {
		return nil, constructionError(id, "data", ErrMissingOutline)
	}
	col, err := ParseColor(spec.Color)
	if err != nil {
		return nil, constructionError(id, "color", err)
	}
	if !spec.Position.IsFinite() {
		return nil, constructionError(id, "position", ErrNonFiniteMatrix)
	}
	return NewGlyph(id, c, outline, col, spec.Position, opts...), nil
}

func buildConnector(id string, spec ConnectorSpec, c *Container) (*PathPrimitive, error) {
	outline, err := ParsePathData(spec.Data)
	if err != nil {
		return nil, constructionError(id, "data", err)
	}
	if outline.IsEmpty() {
		return nil, constructionError(id, "data", ErrMissingOutline)
	}
	col, err := ParseColor(spec.Color)
	if err != nil {
		return nil, constructionError(id, "color", err)
	}
	if !spec.Matrix.IsFinite() {
		return nil, constructionError(id, "matrix", ErrNonFiniteMatrix)
	}
	lineCap, err := ParseLineCap(spec.Cap)
	if err != nil {
		return nil, constructionError(id, "cap", err)
	}
	join, err := ParseLineJoin(spec.Join)
	if err != nil {
		return nil, constructionError(id, "join", err)
	}

	style := DefaultStroke().WithCap(lineCap).WithJoin(join)
	if spec.Width > 0 {
		style = style.WithWidth(spec.Width)
	}
	if spec.MiterLimit > 0 {
		style = style.WithMiterLimit(spec.MiterLimit)
	}
	if len(spec.Dash) > 0 {
		for _, l := range spec.Dash {
			if math.IsNaN(l) || math.IsInf(l, 0) {
				return nil, constructionError(id, "dash", fmt.Errorf("%w: non-finite length %v", ErrInvalidDash, l))
			}
		}
		style = style.WithDashPattern(spec.Dash...)
		if style.IsDashed() {
			cycle, length := style.Dash.PatternLength(), outline.Length()
			if cycle < minDashCycle*length {
				return nil, constructionError(id, "dash",
					fmt.Errorf("%w: cycle %v too short for outline length %v", ErrInvalidDash, cycle, length))
			}
		}
	}

	placement := Decompose(spec.Matrix)
	if spec.IgnoreScale {
		placement = placement.WithUnitScale()
	}
	return NewStrokePrimitive(id, c, outline, placement, style, col), nil
}

func (d *Diagram) has(id string) bool {
	_, g := d.glyphs[id]
	_, p := d.connectors[id]
	return g || p
}

// Name returns the asset name.
func (d *Diagram) Name() string { return d.name }

// Container returns the shared container.
func (d *Diagram) Container() *Container { return d.container }

// IDs returns every element id in authored order.
func (d *Diagram) IDs() []string {
	return append([]string(nil), d.order...)
}

// Glyph returns the glyph registered under id.
func (d *Diagram) Glyph(id string) (*Glyph, bool) {
	g, ok := d.glyphs[id]
	return g, ok
}

// Connector returns the connector registered under id.
func (d *Diagram) Connector(id string) (*PathPrimitive, bool) {
	p, ok := d.connectors[id]
	return p, ok
}

// RevealOrder returns the glyphs that fade in, in order.
func (d *Diagram) RevealOrder() []*Glyph {
	return append([]*Glyph(nil), d.reveal...)
}

// FadeDuration returns the fade-in duration of one glyph.
func (d *Diagram) FadeDuration() float64 { return d.fadeDuration }

// RevealDuration returns the total reveal time: one fade per revealed glyph.
func (d *Diagram) RevealDuration() float64 {
	return float64(len(d.reveal)) * d.fadeDuration
}

// Reveal returns the task fading the reveal glyphs in one after another.
// Glyph k+1 does not start before glyph k is Visible.
func (d *Diagram) Reveal() Task {
	tasks := make([]Task, 0, 3*len(d.reveal))
	for i, g := range d.reveal {
		i, g := i, g
		tasks = append(tasks,
			Func(func() {
				Logger().Info("glyph fade-in started", "diagram", d.name, "glyph", g.ID(), "step", i+1, "of", len(d.reveal))
			}),
			g.FadeIn(d.fadeDuration),
			Func(func() {
				Logger().Info("glyph visible", "diagram", d.name, "glyph", g.ID())
			}),
		)
	}
	return Sequence(tasks...)
}

// Draws returns the surface descriptions of every primitive in authored
// order. A glyph contributes its fill and then its stroke.
func (d *Diagram) Draws() []Draw {
	draws := make([]Draw, 0, 2*len(d.order))
	for _, id := range d.order {
		if g, ok := d.glyphs[id]; ok {
			draws = append(draws, g.Draws()...)
			continue
		}
		draws = append(draws, d.connectors[id].Draw())
	}
	return draws
}

// Paint hands every primitive to s. It does not call BeginFrame or
// EndFrame, so several diagrams can share one frame.
func (d *Diagram) Paint(s Surface) error {
	for _, dr := range d.Draws() {
		if err := s.Draw(dr); err != nil {
			return fmt.Errorf("reveal: paint %q: %w", dr.ID, err)
		}
	}
	return nil
}

// PaintFrame wraps Paint in BeginFrame and EndFrame.
func (d *Diagram) PaintFrame(s Surface, f Frame) error {
	if err := s.BeginFrame(f); err != nil {
		return err
	}
	if err := d.Paint(s); err != nil {
		return err
	}
	return s.EndFrame()
}
