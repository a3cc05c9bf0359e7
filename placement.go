package reveal

import "math"

// degenerateEpsilon bounds the column length and the normalized determinant
// below which a matrix is treated as collapsing the plane.
const degenerateEpsilon = 1e-12

// Placement is the human-meaningful form of an affine matrix: the
// parameters a scene-graph node exposes for position, rotation, scale and
// skew. Angles are in radians.
//
// Recomposing a Placement applies scale, then skew, then rotation, then
// translation; see [Placement.Matrix].
type Placement struct {
	ScaleX, ScaleY float64
	Rotation       float64
	SkewX, SkewY   float64
	Translation    Point
}

// IdentityPlacement returns the placement of the identity matrix.
func IdentityPlacement() Placement {
	return Placement{ScaleX: 1, ScaleY: 1}
}

// At returns the identity placement translated to p.
func At(p Point) Placement {
	return Placement{ScaleX: 1, ScaleY: 1, Translation: p}
}

// Decompose splits m into scale, rotation, skew and translation.
//
// The linear part is factored QR-style: the first column yields ScaleX and
// Rotation; the second column, with the rotation removed, yields the
// shear and the remaining (signed) ScaleY. A negative determinant is
// carried by ScaleY, so a Y-flip decomposes to ScaleY = -1 and Rotation = 0.
// SkewY is always zero: both shear degrees of freedom collapse into SkewX.
//
// A matrix that collapses the plane (zero first column or zero
// determinant) is not an error: the result has zero scale, zero rotation
// and skew, and the translation of m, so the primitive renders with zero
// extent. Decompose never returns NaN for finite input.
//
// The factorization is not unique; the only guarantee is that
// Decompose(m).Matrix() reproduces m within floating tolerance.
func Decompose(m Matrix) Placement {
	p := Placement{Translation: Point{X: m.Tx, Y: m.Ty}}

	scaleX := math.Hypot(m.A, m.B)
	if scaleX <= degenerateEpsilon {
		return p
	}
	det := m.Determinant()
	if math.Abs(det) <= degenerateEpsilon*scaleX*math.Hypot(m.C, m.D) {
		return p
	}

	// Projection of column 2 onto column 1's direction, times |column 1|.
	skewFactor := m.A*m.C + m.B*m.D
	shear := skewFactor / scaleX

	// det = scaleX * scaleY exactly; the signed quotient avoids the
	// cancellation in sqrt(|col2|^2 - shear^2) for nearly parallel columns.
	scaleY := det / scaleX

	p.ScaleX = scaleX
	p.ScaleY = scaleY
	p.Rotation = math.Atan2(m.B, m.A)
	// atan2(shear, scaleY) folded into (-pi/2, pi/2): only tan(SkewX) is
	// observable, and the folded angle keeps a pure flip at SkewX = 0.
	p.SkewX = math.Atan(shear / scaleY)
	return p
}

// Matrix recomposes the placement: translate * rotate * skew * scale.
func (p Placement) Matrix() Matrix {
	return Translate(p.Translation.X, p.Translation.Y).
		Multiply(Rotate(p.Rotation)).
		Multiply(Skew(p.SkewX, p.SkewY)).
		Multiply(Scale(p.ScaleX, p.ScaleY))
}

// IsDegenerate reports whether the placement has zero extent.
func (p Placement) IsDegenerate() bool {
	return p.ScaleX == 0 || p.ScaleY == 0
}

// WithUnitScale returns a copy with the scale magnitudes reset to one.
// The sign of each scale is kept so reflections survive. A degenerate
// placement gets a plain unit scale.
func (p Placement) WithUnitScale() Placement {
	p.ScaleX = unitSign(p.ScaleX)
	p.ScaleY = unitSign(p.ScaleY)
	return p
}

func unitSign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
