// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the rendering surfaces a diagram paints onto.
//
// Every surface implements reveal.Surface. A frame is painted as
// BeginFrame, one Draw per primitive in authored order, then EndFrame.
//
// # Built-in Surfaces
//
//   - "image": anti-aliased raster output via golang.org/x/image/vector,
//     optionally written as numbered PNG files
//   - "svg": one standalone SVG document per frame
//
// Further surfaces register themselves with Register, following the
// database/sql driver pattern:
//
//	func init() {
//	    surface.Register("pdf", 20, pdfFactory, nil)
//	}
//
// # Coordinates
//
// Surfaces place the origin of the primitive coordinate space at the
// center of the view, with y pointing down. A draw is mapped to pixels by
// view * container * placement.
package surface
