package reveal

// Asset is the authored description of a diagram: literal outlines,
// matrices and colors. It is plain data; Assemble validates it.
type Asset struct {
	Name      string
	Container ContainerSpec

	// Elements are built and painted in this order.
	Elements []ElementSpec

	// RevealOrder lists the glyph ids that fade in, in sequence. Glyphs
	// not listed stay hidden.
	RevealOrder []string

	// FadeDuration is the fade-in duration of one glyph in seconds.
	FadeDuration float64
}

// ContainerSpec is the uniform scale and offset mapping authored units
// onto the render surface.
type ContainerSpec struct {
	Scale  float64
	Offset Point
}

// ElementSpec is a GlyphSpec or a ConnectorSpec.
type ElementSpec interface {
	elementID() string
}

// GlyphSpec describes a glyph. Exactly one of Data and Outline is used;
// Outline wins when both are set.
type GlyphSpec struct {
	ID       string
	Data     string // SVG path data
	Outline  *Path
	Color    string // CSS color
	Position Point
}

func (g GlyphSpec) elementID() string { return g.ID }

// ConnectorSpec describes a decorative stroke placed by an authored matrix.
// Connectors do not take part in the reveal and paint at full opacity.
type ConnectorSpec struct {
	ID         string
	Data       string // SVG path data
	Matrix     Matrix
	Color      string  // CSS stroke color
	Width      float64 // stroke width, 0 means 1
	Cap        string  // "butt", "round", "square"
	Join       string  // "miter", "round", "bevel"
	MiterLimit float64 // 0 means DefaultMiterLimit
	Dash       []float64

	// IgnoreScale keeps rotation, skew and translation from Matrix but
	// drops its scale magnitudes.
	IgnoreScale bool
}

func (c ConnectorSpec) elementID() string { return c.ID }
