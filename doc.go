// Package reveal places vector glyphs and connector curves from authored
// affine matrices and plays a sequential fade-in over them.
//
// # Overview
//
// A diagram is authored as a table of outlines (SVG path data), colors and
// 2x3 transform matrices. [Assemble] turns that table into a [Diagram]:
// every matrix is split into human-meaningful placement parameters by
// [Decompose], every glyph becomes a [Glyph] with a stroke skeleton and a
// fill whose alpha is animated, and every connector becomes a static
// [PathPrimitive] drawn at full opacity.
//
// # Quick Start
//
//	d, err := reveal.Assemble(assets.Terminals())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := surface.NewSurfaceByName("image", surface.Options{
//	    Width: 1920, Height: 1080, Background: reveal.Black, Dir: "frames",
//	})
//
//	tl := reveal.NewTimeline(60)
//	err = tl.Run(ctx, d.Reveal(), func(f reveal.Frame) error {
//	    return d.PaintFrame(s, f)
//	})
//
// # Matrix Convention
//
// [Matrix] follows the SVG/PDF convention: six numbers (a, b, c, d, tx, ty)
// mapping a point as
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// # Animation Model
//
// Animations are [Task] values: suspendable state machines advanced by a
// [Timeline] one frame at a time. Nothing runs on its own goroutine; a
// glyph's fade-in only changes state while its task is being advanced.
//
// # Surfaces
//
// The package never rasterizes anything itself. [Diagram.Paint] hands a
// [Draw] description per primitive to a [Surface]. The surface package
// provides PNG and SVG frame output; the recording package captures frames
// in memory.
package reveal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
