package reveal

// PathPrimitive is one painted outline: path data, placement, paint mode,
// line style and color. Its geometry is fixed at construction; only the
// color and the visible stroke range change, and only through the glyph
// that owns it.
type PathPrimitive struct {
	id        string
	container *Container
	outline   *Path
	placement Placement
	mode      PaintMode
	stroke    Stroke
	color     RGBA
	start     float64
	end       float64
}

// NewStrokePrimitive creates a stroked primitive drawn in full.
func NewStrokePrimitive(id string, c *Container, outline *Path, placement Placement, stroke Stroke, color RGBA) *PathPrimitive {
	return &PathPrimitive{
		id:        id,
		container: c,
		outline:   outline,
		placement: placement,
		mode:      PaintStroke,
		stroke:    stroke.Clone(),
		color:     color,
		end:       1,
	}
}

// NewFillPrimitive creates a filled primitive.
func NewFillPrimitive(id string, c *Container, outline *Path, placement Placement, color RGBA) *PathPrimitive {
	return &PathPrimitive{
		id:        id,
		container: c,
		outline:   outline,
		placement: placement,
		mode:      PaintFill,
		color:     color,
		end:       1,
	}
}

// ID returns the primitive identifier.
func (p *PathPrimitive) ID() string { return p.id }

// Container returns the owning container.
func (p *PathPrimitive) Container() *Container { return p.container }

// Outline returns the outline. Callers must not modify it.
func (p *PathPrimitive) Outline() *Path { return p.outline }

// Placement returns the decomposed placement.
func (p *PathPrimitive) Placement() Placement { return p.placement }

// Mode returns whether the outline is stroked or filled.
func (p *PathPrimitive) Mode() PaintMode { return p.mode }

// Stroke returns the line style.
func (p *PathPrimitive) Stroke() Stroke { return p.stroke }

// Color returns the current paint color.
func (p *PathPrimitive) Color() RGBA { return p.color }

// Range returns the visible stroke fractions.
func (p *PathPrimitive) Range() (start, end float64) { return p.start, p.end }

// Draw returns the surface description of the primitive.
func (p *PathPrimitive) Draw() Draw {
	return Draw{
		ID:        p.id,
		Mode:      p.mode,
		Container: p.container,
		Placement: p.placement,
		Outline:   p.outline,
		Color:     p.color,
		Stroke:    p.stroke,
		Start:     p.start,
		End:       p.end,
	}
}
