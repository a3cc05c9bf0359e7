package reveal

import "math"

// DefaultTolerance is the maximum distance between a curve and its
// flattened approximation, in the units of the space being flattened.
const DefaultTolerance = 0.1

// Polyline is one flattened subpath.
// A closed polyline repeats its first point as its last point.
type Polyline struct {
	Points []Point
	Closed bool
}

// Length returns the arc length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i].Distance(pl.Points[i-1])
	}
	return total
}

// Transform returns a copy with every point mapped through m.
func (pl Polyline) Transform(m Matrix) Polyline {
	pts := make([]Point, len(pl.Points))
	for i, pt := range pl.Points {
		pts[i] = m.TransformPoint(pt)
	}
	return Polyline{Points: pts, Closed: pl.Closed}
}

// Flatten converts the path into polylines, one per subpath, subdividing
// curves until they are within tolerance of the true curve.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		out     []Polyline
		cur     []Point
		current Point
	)
	flush := func(closed bool) {
		if len(cur) > 0 {
			if closed && cur[len(cur)-1] != cur[0] {
				cur = append(cur, cur[0])
			}
			out = append(out, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			cur = append(cur, current)
		case LineTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			current = e.Point
			cur = append(cur, current)
		case QuadTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			cur = flattenQuadratic(cur, current, e.Control, e.Point, tolerance)
			current = e.Point
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, current)
			}
			cur = flattenCubic(cur, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush(true)
		}
	}
	flush(false)
	return out
}

// Length returns the arc length of the path, flattened at DefaultTolerance.
func (p *Path) Length() float64 {
	return PolylinesLength(p.Flatten(DefaultTolerance))
}

// PolylinesLength returns the summed arc length of all polylines.
func PolylinesLength(pls []Polyline) float64 {
	var total float64
	for _, pl := range pls {
		total += pl.Length()
	}
	return total
}

// Trim keeps the part of pls between the arc-length fractions start and end
// of their combined length, measured across subpaths in order. Fractions are
// clamped to [0, 1]. Trim(pls, 0, 1) returns pls unchanged; an empty range
// returns nil.
func Trim(pls []Polyline, start, end float64) []Polyline {
	start, end = Clamp01(start), Clamp01(end)
	if start <= 0 && end >= 1 {
		return pls
	}
	if end <= start {
		return nil
	}

	total := PolylinesLength(pls)
	if total == 0 {
		return nil
	}
	from, to := start*total, end*total

	var out []Polyline
	var walked float64
	for _, pl := range pls {
		length := pl.Length()
		if walked+length <= from || walked >= to {
			walked += length
			continue
		}
		if piece := slicePolyline(pl, from-walked, to-walked); len(piece) >= 2 {
			out = append(out, Polyline{Points: piece})
		}
		walked += length
	}
	return out
}

// slicePolyline returns the points of pl between arc lengths from and to.
func slicePolyline(pl Polyline, from, to float64) []Point {
	var out []Point
	var walked float64
	for i := 1; i < len(pl.Points); i++ {
		a, b := pl.Points[i-1], pl.Points[i]
		seg := a.Distance(b)
		segStart, segEnd := walked, walked+seg
		walked = segEnd
		if segEnd < from || seg == 0 {
			continue
		}
		if segStart > to {
			break
		}
		if len(out) == 0 {
			out = append(out, a.Lerp(b, math.Max(0, (from-segStart)/seg)))
		}
		if segEnd <= to {
			out = append(out, b)
		} else {
			out = append(out, a.Lerp(b, (to-segStart)/seg))
			break
		}
	}
	return out
}

// maxSubdivision bounds curve recursion; 2^16 segments per curve.
const maxSubdivision = 16

// flattenQuadratic appends the subdivision of a quadratic Bezier (minus
// its start point) to pts.
func flattenQuadratic(pts []Point, p0, p1, p2 Point, tolerance float64) []Point {
	return flattenQuadraticRec(pts, p0, p1, p2, tolerance, 0)
}

func flattenQuadraticRec(pts []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxSubdivision || !(distanceToLine(p1, p0, p2) >= tolerance) {
		return append(pts, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	pts = flattenQuadraticRec(pts, p0, q0, q2, tolerance, depth+1)
	return flattenQuadraticRec(pts, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the subdivision of a cubic Bezier (minus its start
// point) to pts, splitting with de Casteljau's algorithm.
func flattenCubic(pts []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return flattenCubicRec(pts, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(pts []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxSubdivision || !(d >= tolerance) {
		return append(pts, p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	pts = flattenCubicRec(pts, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(pts, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
