package priceaxis

import (
	charts "github.com/unity-systems/unity-lightweight-charts"
)

// Align selects which edge of the drawing surface a label hangs off.
type Align uint8

const (
	// AlignLeft anchors labels to the left edge of the axis surface.
	AlignLeft Align = iota

	// AlignRight anchors labels to the right edge of the axis surface.
	AlignRight
)

// String returns the string representation of an Align.
func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Fixed-size affordance metrics, in logical pixels.
const (
	// CloseAffordanceWidth is the horizontal slot reserved for the close
	// button at the outer end of a label.
	CloseAffordanceWidth = 12.0

	// CloseAffordanceMargin separates the close button from the label text.
	CloseAffordanceMargin = 4.0

	// closeBoxSize is the side of the close button's square.
	closeBoxSize = 7.0

	// IconWidth is the fixed advance used for icon glyphs instead of a
	// measured text width.
	IconWidth = 10.0

	// IconFontSize is the fixed size icon glyphs render at.
	IconFontSize = 10.0

	// dragHandleMargin keeps the drag dots off the label's outer edge.
	dragHandleMargin = 3.0

	// dragHandleSpacing is the center distance between adjacent drag dots.
	dragHandleSpacing = 3.0

	// dragHandleDotRadius is the radius of one drag dot.
	dragHandleDotRadius = 1.0
)

// LabelContent is the caller-owned data of one label for one draw call.
// The renderer reads it and never retains it.
type LabelContent struct {
	// Text is the label string. Empty text with no icon glyph makes the
	// label a no-op: nothing is drawn and its height is zero.
	Text string

	// IconGlyph renders instead of Text when an icon color is supplied.
	// Zero means no icon.
	IconGlyph rune

	// Visible gates all drawing.
	Visible bool

	// TickVisible draws the tick mark connecting the label to its price line.
	TickVisible bool

	// SeparatorVisible draws the axis/pane separator strip behind the label.
	SeparatorVisible bool

	// MoveTextAwayFromTick shifts the text clear of the close affordance
	// slot, and releases the reserved tick space when the tick is hidden.
	MoveTextAwayFromTick bool
}

// IsEmpty reports whether the label has nothing to render.
func (c LabelContent) IsEmpty() bool {
	return c.Text == "" && c.IconGlyph == 0
}

// LabelStyle is the immutable per-draw-call appearance of a label.
// Callers supply it fresh each frame; the renderer never mutates it.
//
// Precondition: colors taking part in the rounded-rect border composition
// (BackgroundColor, BorderColor) must be fully opaque. The double-fill
// technique shows a seam with translucent colors.
type LabelStyle struct {
	TextColor       charts.Color
	BackgroundColor charts.Color

	// BorderColor of Transparent (the zero value) disables the border, as
	// does a BorderColor equal to BackgroundColor.
	BorderColor charts.Color

	// Font is the face key resolved by the canvas backend and the measurer.
	Font     string
	FontSize float64

	// Paddings in logical pixels. Top and bottom grow the label height;
	// inner padding sits between tick and text, outer between text and the
	// label's far edge.
	PaddingTop    float64
	PaddingBottom float64
	PaddingInner  float64
	PaddingOuter  float64

	// PaddingTopOffset and PaddingBottomOffset are per-call additions used
	// to stack several labels at one coordinate.
	PaddingTopOffset    float64
	PaddingBottomOffset float64

	TickLength float64

	// BorderSize is the logical border thickness; it also sets the
	// separator strip width. Must be less than half of either label
	// dimension (caller-validated; violations draw wrong, not crash).
	BorderSize float64

	// CornerRadius applies to the label's outside corners only.
	CornerRadius float64
}

// DefaultLabelStyle returns the stock price-axis label appearance.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		TextColor:       charts.White,
		BackgroundColor: charts.Hex("#2962ff"),
		Font:            "label",
		FontSize:        12,
		PaddingTop:      2,
		PaddingBottom:   2,
		PaddingInner:    5,
		PaddingOuter:    5,
		TickLength:      5,
		BorderSize:      1,
		CornerRadius:    2,
	}
}

// AnchorPosition places a label vertically and picks its surface edge.
type AnchorPosition struct {
	// Coordinate is the vertical center of the label in logical pixels.
	Coordinate float64

	// FixedCoordinate overrides Coordinate when HasFixedCoordinate is set.
	// Price-line drags use it to pin a label while the series value moves.
	FixedCoordinate    float64
	HasFixedCoordinate bool

	// Align selects the left or right surface edge.
	Align Align
}

// Y returns the effective anchor coordinate.
func (a AnchorPosition) Y() float64 {
	if a.HasFixedCoordinate {
		return a.FixedCoordinate
	}
	return a.Coordinate
}

// LabelHeight returns the label's logical-pixel height as used for stacking
// labels on the axis. Empty or invisible labels report zero height.
func LabelHeight(content LabelContent, style LabelStyle) float64 {
	if !content.Visible || content.IsEmpty() {
		return 0
	}
	return style.FontSize +
		style.PaddingTop + style.PaddingTopOffset +
		style.PaddingBottom + style.PaddingBottomOffset
}
