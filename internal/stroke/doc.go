// Package stroke expands stroked polylines into filled polygons.
//
// A stroke is converted to polygons where:
//   - The forward offset runs along the right side of the line
//   - The backward offset runs along the left side and is reversed
//   - Line caps connect the two offsets at open ends
//   - Line joins connect consecutive segments
//
// The inner side of every join is routed through the vertex so that the
// polygons of one stroke always union correctly under a nonzero or
// absolute-accumulation fill. Open outlines are emitted with positive
// signed area; closed outlines emit an outer ring with positive area and
// an inner ring with negative area.
//
// Curves are not handled here: callers flatten, trim and dash in local
// space and transform the resulting polygons afterwards.
//
// The algorithm follows tiny-skia (path/src/stroker.rs) and kurbo
// (src/stroke.rs).
package stroke
