package reveal

import "github.com/gogpu/reveal/internal/stroke"

// VisiblePolylines flattens the outline of a stroke draw in local space and
// keeps the part a surface has to paint: the [Start, End] range first, then
// the dash pattern.
func (d Draw) VisiblePolylines(tolerance float64) []Polyline {
	pls := d.Outline.Flatten(tolerance)
	if d.IsTrimmed() {
		pls = Trim(pls, d.Start, d.End)
	}
	if d.Stroke.IsDashed() {
		pls = d.Stroke.Dash.Apply(pls)
	}
	return pls
}

// StrokePolygons returns polygons covering the visible stroke of d in
// local space. Map them through Transform (and the surface viewport) to
// paint them; stroking before transforming keeps the line width subject to
// the same scale and skew as the outline.
func (d Draw) StrokePolygons(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	e := stroke.NewExpander(stroke.Style{
		Width:      d.Stroke.Width,
		Cap:        stroke.LineCap(d.Stroke.Cap),
		Join:       stroke.LineJoin(d.Stroke.Join),
		MiterLimit: d.Stroke.MiterLimit,
	})
	e.SetTolerance(tolerance)

	pls := d.VisiblePolylines(tolerance)
	in := make([]stroke.Polyline, len(pls))
	for i, pl := range pls {
		pts := make([]stroke.Point, len(pl.Points))
		for j, p := range pl.Points {
			pts[j] = stroke.Point(p)
		}
		in[i] = stroke.Polyline{Points: pts, Closed: pl.Closed}
	}

	polys := e.Expand(in)
	out := make([][]Point, len(polys))
	for i, poly := range polys {
		pts := make([]Point, len(poly))
		for j, p := range poly {
			pts[j] = Point(p)
		}
		out[i] = pts
	}
	return out
}
