package reveal

// Container is the shared parent every primitive of a diagram is attached
// to. It maps the authored coordinate space onto the render surface with a
// uniform scale and an offset, and never changes after assembly.
type Container struct {
	placement Placement
}

// NewContainer creates a container scaling authored units by scale and
// then translating by offset.
func NewContainer(scale float64, offset Point) *Container {
	return &Container{placement: Placement{ScaleX: scale, ScaleY: scale, Translation: offset}}
}

// Placement returns the container placement.
func (c *Container) Placement() Placement {
	if c == nil {
		return IdentityPlacement()
	}
	return c.placement
}

// Matrix returns the container transform.
func (c *Container) Matrix() Matrix {
	return c.Placement().Matrix()
}
