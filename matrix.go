package reveal

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation.
// The six coefficients follow the SVG/PDF matrix(a, b, c, d, tx, ty)
// convention, i.e. the augmented matrix
//
//	| a  c  tx |
//	| b  d  ty |
//
// which maps a point as
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
type Matrix struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// NewMatrix creates a matrix from coefficients in authored order.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: x, Ty: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians).
// A positive angle rotates the positive X axis towards the positive Y axis.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Skew creates a shear matrix from two shear angles in radians.
// skewX shears along the X axis (x' = x + tan(skewX)*y), skewY along Y.
func Skew(skewX, skewY float64) Matrix {
	return Matrix{A: 1, B: math.Tan(skewY), C: math.Tan(skewX), D: 1}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		Tx: m.A*other.Tx + m.C*other.Ty + m.Tx,
		Ty: m.B*other.Tx + m.D*other.Ty + m.Ty,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
// A negative determinant means the matrix contains a reflection.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}

	inv := 1.0 / det
	return Matrix{
		A:  m.D * inv,
		B:  -m.B * inv,
		C:  -m.C * inv,
		D:  m.A * inv,
		Tx: (m.C*m.Ty - m.D*m.Tx) * inv,
		Ty: (m.B*m.Tx - m.A*m.Ty) * inv,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether all six coefficients are finite.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.Tx, m.Ty} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every coefficient of m is within tol of the
// corresponding coefficient of other.
func (m Matrix) ApproxEqual(other Matrix, tol float64) bool {
	return math.Abs(m.A-other.A) <= tol &&
		math.Abs(m.B-other.B) <= tol &&
		math.Abs(m.C-other.C) <= tol &&
		math.Abs(m.D-other.D) <= tol &&
		math.Abs(m.Tx-other.Tx) <= tol &&
		math.Abs(m.Ty-other.Ty) <= tol
}

// ScaleFactor returns the geometric mean of the axis scale factors,
// sqrt(|det|). Surfaces use it to map user-space line widths to device space.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// Aff3 converts the matrix to the row-major layout used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.Tx,
		m.B, m.D, m.Ty,
	}
}
