package canvas

import (
	charts "github.com/unity-systems/unity-lightweight-charts"
)

// TextAlign specifies horizontal text anchoring for FillText.
type TextAlign uint8

const (
	// TextAlignLeft anchors the text's left edge at the given x.
	TextAlignLeft TextAlign = iota

	// TextAlignRight anchors the text's right edge at the given x.
	TextAlignRight

	// TextAlignCenter centers the text horizontally on the given x.
	TextAlignCenter
)

// String returns the string representation of a TextAlign.
func (a TextAlign) String() string {
	switch a {
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	default:
		return "left"
	}
}

// CompositeMode specifies how fills combine with existing pixels.
type CompositeMode uint8

const (
	// CompositeSourceOver alpha-blends new pixels over existing ones.
	CompositeSourceOver CompositeMode = iota

	// CompositeCopy replaces existing pixels, including alpha.
	CompositeCopy
)

// Radii holds per-corner radii for rounded rectangles, in drawing order:
// top-left, top-right, bottom-right, bottom-left.
type Radii [4]float64

// UniformRadii returns the same radius for all four corners.
func UniformRadii(r float64) Radii {
	return Radii{r, r, r, r}
}

// Canvas is the drawing-primitive surface the renderer is polymorphic over.
//
// Coordinates are in the canvas's own pixel space; callers wanting logical
// coordinates apply Scale first (the Target scope helpers do this). For
// FillText, y is the alphabetic baseline.
//
// Canvases are not safe for concurrent use. A canvas is shared by many
// unrelated draw calls per frame, so callers must either set every style
// property they depend on before drawing or bracket their work with
// Save/Restore.
type Canvas interface {
	// Width returns the canvas width in physical pixels.
	Width() int

	// Height returns the canvas height in physical pixels.
	Height() int

	// Save pushes the current drawing state (styles, transform).
	Save()

	// Restore pops the most recently saved drawing state.
	Restore()

	// Scale multiplies the current transform by the given per-axis factors.
	Scale(sx, sy float64)

	// SetFillColor sets the color used by Fill* operations.
	SetFillColor(c charts.Color)

	// SetStrokeColor sets the color used by Stroke* operations.
	SetStrokeColor(c charts.Color)

	// SetLineWidth sets the stroke width in current-space pixels.
	SetLineWidth(w float64)

	// SetFont selects the font for FillText. The name is a backend-resolved
	// face key; size is in current-space pixels.
	SetFont(name string, size float64)

	// SetTextAlign sets the horizontal anchoring for FillText.
	SetTextAlign(align TextAlign)

	// SetCompositeMode sets how subsequent fills combine with existing pixels.
	SetCompositeMode(mode CompositeMode)

	// FillRect fills an axis-aligned rectangle with the fill color.
	FillRect(x, y, w, h float64)

	// FillRoundRect fills a rectangle with per-corner rounded corners.
	FillRoundRect(x, y, w, h float64, radii Radii)

	// StrokeRoundRect strokes the outline of a rounded rectangle with the
	// stroke color and current line width, centered on the path.
	StrokeRoundRect(x, y, w, h float64, radii Radii)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64)

	// StrokeLine strokes a straight line segment with the current line width.
	StrokeLine(x1, y1, x2, y2 float64)

	// FillText draws s with the fill color; y is the alphabetic baseline and
	// x is interpreted per the current text alignment.
	FillText(s string, x, y float64)
}

// clampRadii shrinks radii so that adjacent corners never overlap on a
// w-by-h rectangle. Shared by backends that emulate rounded rectangles.
func clampRadii(radii Radii, w, h float64) Radii {
	maxWH := w
	if h < maxWH {
		maxWH = h
	}
	limit := maxWH / 2
	if limit < 0 {
		limit = 0
	}
	for i, r := range radii {
		if r < 0 {
			radii[i] = 0
		} else if r > limit {
			radii[i] = limit
		}
	}
	return radii
}
