package reveal

// PaintMode selects how a primitive's outline is painted.
type PaintMode int

const (
	// PaintStroke strokes the outline with the primitive's Stroke style.
	PaintStroke PaintMode = iota
	// PaintFill fills the outline (nonzero winding).
	PaintFill
)

// String returns "stroke" or "fill".
func (m PaintMode) String() string {
	if m == PaintFill {
		return "fill"
	}
	return "stroke"
}

// Draw is the description of one primitive handed to a Surface. Surfaces
// must treat it as read-only; Outline is shared with the diagram.
type Draw struct {
	ID        string
	Mode      PaintMode
	Container *Container
	Placement Placement
	Outline   *Path
	Color     RGBA
	Stroke    Stroke

	// Start and End are the visible arc-length fractions of the outline
	// for strokes; fills ignore them.
	Start, End float64
}

// Transform returns the full user-to-surface transform of the primitive:
// container placement applied after the primitive's own placement.
func (d Draw) Transform() Matrix {
	return d.Container.Matrix().Multiply(d.Placement.Matrix())
}

// IsTrimmed reports whether only part of the stroke is visible.
func (d Draw) IsTrimmed() bool {
	return d.Mode == PaintStroke && (d.Start > 0 || d.End < 1)
}

// IsVisible reports whether painting d can change any pixel.
func (d Draw) IsVisible() bool {
	if d.Color.A <= 0 || d.Outline.IsEmpty() || d.Placement.IsDegenerate() {
		return false
	}
	if d.Mode == PaintStroke {
		return d.Stroke.Width > 0 && d.End > d.Start
	}
	return true
}

// Surface is the rendering collaborator. A diagram paints one frame as
// BeginFrame, a Draw per primitive in authored order, then EndFrame.
type Surface interface {
	BeginFrame(f Frame) error
	Draw(d Draw) error
	EndFrame() error
}
