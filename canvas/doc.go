// Package canvas defines the drawing-surface abstraction used by the label
// renderer, along with the coordinate-scope machinery that separates logical
// ("media") pixels from physical ("bitmap") pixels.
//
// A Canvas exposes a small, backend-neutral capability set: state save and
// restore, fill and stroke styles, rectangles, rounded rectangles with
// per-corner radii, circles, lines and text. Whether a backend has a native
// rounded-rectangle primitive or emulates it with arcs is a backend concern;
// all backends must produce the same visible shape.
//
// A Target wraps a Canvas together with per-axis pixel ratios and lends
// scoped access to the two coordinate spaces:
//
//	target.UseBitmapCoordinateSpace(func(scope canvas.BitmapScope) {
//	    // physical pixels, identity transform
//	})
//	target.UseMediaCoordinateSpace(func(scope canvas.MediaScope) {
//	    // logical pixels, canvas scaled by the pixel ratios
//	})
//
// Each scoped call brackets the callback with Save/Restore so state changes
// never leak between unrelated draws sharing one canvas per frame.
//
// Backends provided: ImageCanvas (software rasterization via
// golang.org/x/image/vector), SVGCanvas (github.com/ajstarks/svgo) and, in
// the ebitencanvas subpackage, an adapter for ebiten games. The recording
// package implements Canvas as a typed command stream for tests.
package canvas
