// Package charts provides the rendering primitives of unity-lightweight-charts,
// a Go library for drawing financial chart widgets.
//
// # Overview
//
// The module is centered on the price-axis label renderer: the small
// interactive tags drawn on a chart's price scale (last-price tags, the
// crosshair label, draggable price lines and their close buttons). The hard
// part is not the charting logic but crisp-edge geometry: every label is laid
// out in two coordinate spaces at once, a logical "media" space used for font
// metrics and a physical "bitmap" space used for fills and strokes, so that
// borders, ticks and separators land on exact physical pixels even at
// fractional device pixel ratios.
//
// # Packages
//
//   - charts (this package): shared Color type and library-wide logging.
//   - canvas: the drawing-surface abstraction (Canvas interface, coordinate
//     scopes) plus image, SVG and ebiten backends.
//   - recording: a Canvas that captures draw calls as typed commands, used
//     for testing and replay.
//   - text: text measurement, width caching and the go-text/typesetting
//     backed measurer.
//   - priceaxis: the label geometry engine and the layered drawer.
//
// # Quick Start
//
//	img := canvas.NewImageCanvas(140, 600)
//	target := canvas.NewTarget(img, 2, 2) // device pixel ratio 2
//
//	style := priceaxis.DefaultLabelStyle()
//	content := priceaxis.LabelContent{Text: "1892.34", Visible: true, TickVisible: true}
//	anchor := priceaxis.AnchorPosition{Coordinate: 120, Align: priceaxis.AlignRight}
//
//	geom := priceaxis.ComputeGeometry(content, style, anchor, false, target.BitmapScope(), width, corr)
//	priceaxis.DrawLabel(target, geom, content, style, priceaxis.DrawOptions{})
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Bitmap-space
// values are physical pixels; media-space values are logical pixels. The two
// are related by per-axis pixel ratios which may be fractional.
package charts
