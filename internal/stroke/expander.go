package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point moved by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Polyline is a flattened subpath. A closed polyline may repeat its first
// point at the end.
type Polyline struct {
	Points []Point
	Closed bool
}

// Expander converts stroked polylines to polygons.
type Expander struct {
	style Style

	// Tolerance for arc approximation in round joins and caps.
	tolerance float64

	joinThresh float64
}

// NewExpander creates a new expander with the given style.
func NewExpander(style Style) *Expander {
	e := &Expander{style: style}
	e.SetTolerance(0.1)
	return e
}

// SetTolerance sets the maximum distance between a true arc and its
// polygon approximation.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
		e.joinThresh = 2.0 * tolerance / e.style.Width
	}
}

// Expand returns the polygons covering the stroke of lines. Every polygon
// is implicitly closed.
func (e *Expander) Expand(lines []Polyline) [][]Point {
	if !(e.style.Width > 0) {
		return nil
	}
	var out [][]Point
	for _, l := range lines {
		pts := dedupe(l.Points)
		closed := l.Closed
		if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		switch {
		case len(pts) == 0:
		case len(pts) == 1:
			if dot := e.dot(pts[0]); dot != nil {
				out = append(out, dot)
			}
		case closed && len(pts) > 2:
			out = append(out, e.closed(pts)...)
		default:
			out = append(out, e.open(pts))
		}
	}
	return out
}

func (e *Expander) halfWidth() float64 {
	return 0.5 * e.style.Width
}

func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(e.halfWidth() / tan.Length())
}

// side accumulates one offset of the stroke.
type side []Point

func (e *Expander) open(pts []Point) []Point {
	var fwd, bwd side
	n := len(pts)

	tan0 := pts[1].Sub(pts[0])
	startNorm := e.normal(tan0)
	fwd = append(fwd, pts[0].Add(startNorm.Neg()))
	bwd = append(bwd, pts[0].Add(startNorm))

	lastTan := tan0
	lastNorm := startNorm
	for i := 0; i < n-1; i++ {
		tan := pts[i+1].Sub(pts[i])
		norm := e.normal(tan)
		if i > 0 {
			e.join(&fwd, &bwd, pts[i], lastTan, tan, lastNorm, norm)
		}
		fwd = append(fwd, pts[i+1].Add(norm.Neg()))
		bwd = append(bwd, pts[i+1].Add(norm))
		lastTan, lastNorm = tan, norm
	}

	poly := append([]Point(nil), fwd...)
	poly = e.capAt(poly, pts[n-1], lastNorm.Neg())
	for i := len(bwd) - 1; i >= 0; i-- {
		poly = append(poly, bwd[i])
	}
	poly = e.capAt(poly, pts[0], startNorm)
	if signedArea(poly) < 0 {
		reverse(poly)
	}
	return poly
}

func (e *Expander) closed(pts []Point) [][]Point {
	var fwd, bwd side
	n := len(pts)

	tan0 := pts[1].Sub(pts[0])
	norm0 := e.normal(tan0)
	fwd = append(fwd, pts[0].Add(norm0.Neg()))
	bwd = append(bwd, pts[0].Add(norm0))

	lastTan, lastNorm := tan0, norm0
	for i := 0; i < n; i++ {
		next := pts[(i+1)%n]
		tan := next.Sub(pts[i])
		norm := e.normal(tan)
		if i > 0 {
			e.join(&fwd, &bwd, pts[i], lastTan, tan, lastNorm, norm)
		}
		fwd = append(fwd, next.Add(norm.Neg()))
		bwd = append(bwd, next.Add(norm))
		lastTan, lastNorm = tan, norm
	}
	e.join(&fwd, &bwd, pts[0], lastTan, tan0, lastNorm, norm0)

	outer, inner := []Point(fwd), []Point(bwd)
	if math.Abs(signedArea(inner)) > math.Abs(signedArea(outer)) {
		outer, inner = inner, outer
	}
	if signedArea(outer) < 0 {
		reverse(outer)
	}
	if signedArea(inner) > 0 {
		reverse(inner)
	}
	return [][]Point{outer, inner}
}

// join connects the segment ending at p0 with direction ab to the one
// starting there with direction cd. lastNorm and norm are the half-width
// normals of the two segments.
func (e *Expander) join(fwd, bwd *side, p0 Point, ab, cd, lastNorm, norm Vec2) {
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Skip join if angle change is insignificant, but still connect paths.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		*fwd = append(*fwd, p0.Add(norm.Neg()))
		*bwd = append(*bwd, p0.Add(norm))
		return
	}

	// outer is the side the corner bulges out on; inner goes through p0.
	outer, inner := fwd, bwd
	sign := -1.0
	if cross < 0 {
		outer, inner = bwd, fwd
		sign = 1.0
	}
	*inner = append(*inner, p0)

	switch e.style.Join {
	case LineJoinMiter:
		limit := e.style.MiterLimit
		if limit <= 0 {
			limit = 10
		}
		if cross != 0 && 2.0*hypot < (hypot+dot)*limit*limit {
			last := p0.Add(lastNorm.Scale(sign))
			this := p0.Add(norm.Scale(sign))
			h := ab.Cross(this.Sub(last)) / cross
			*outer = append(*outer, this.Add(cd.Scale(-h)))
		}
	case LineJoinRound:
		angle := math.Atan2(cross, dot)
		*outer = e.arc(*outer, p0, lastNorm.Scale(sign), angle)
	}

	*fwd = append(*fwd, p0.Add(norm.Neg()))
	*bwd = append(*bwd, p0.Add(norm))
}

// capAt appends the cap at center, starting from the offset center+from
// and ending at center-from.
func (e *Expander) capAt(poly []Point, center Point, from Vec2) []Point {
	switch e.style.Cap {
	case LineCapRound:
		poly = e.arc(poly, center, from, math.Pi)
	case LineCapSquare:
		ext := from.Perp()
		poly = append(poly,
			center.Add(from).Add(ext),
			center.Add(from.Neg()).Add(ext))
	}
	return poly
}

// arc appends points of the circular arc around center starting at
// center+from and sweeping angle radians. The start point itself is not
// appended; the end point is.
func (e *Expander) arc(poly []Point, center Point, from Vec2, angle float64) []Point {
	r := from.Length()
	step := math.Pi / 2
	if r > e.tolerance {
		step = 2 * math.Acos(1-e.tolerance/r)
	}
	n := int(math.Ceil(math.Abs(angle) / step))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		poly = append(poly, center.Add(from.Rotate(angle*float64(i)/float64(n))))
	}
	return poly
}

// dot strokes a zero-length subpath. Only round and square caps paint.
func (e *Expander) dot(p Point) []Point {
	hw := e.halfWidth()
	switch e.style.Cap {
	case LineCapRound:
		return e.arc(nil, p, Vec2{X: hw}, 2*math.Pi)
	case LineCapSquare:
		return []Point{
			{X: p.X - hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y - hw},
			{X: p.X + hw, Y: p.Y + hw},
			{X: p.X - hw, Y: p.Y + hw},
		}
	}
	return nil
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Sub(p).Length() < 1e-12 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// signedArea returns the shoelace area; positive for counter-clockwise
// polygons in a y-up frame.
func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func reverse(poly []Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}
