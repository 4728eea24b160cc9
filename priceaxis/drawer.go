package priceaxis

import (
	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

// DrawOptions carries the per-call extras that are not part of the label's
// content or style.
type DrawOptions struct {
	// Draggable draws the drag-handle dot grid.
	Draggable bool

	// CloseAffordance draws the close button at the outer end of the label.
	// The caller must have passed hasClose=true to ComputeGeometry so the
	// label is wide enough for it.
	CloseAffordance bool

	// IconColor enables icon rendering. When set (non-transparent) and the
	// content carries an icon glyph, the glyph draws instead of the text.
	IconColor charts.Color

	// PaneBackgroundColor fills the separator strip.
	PaneBackgroundColor charts.Color
}

// DrawLabel renders one label onto the target. Layers go down in a fixed
// order: background, tick, inner refill, separator, border, drag handle,
// close affordance, then text or icon. Everything except the text layer
// draws in bitmap coordinates.
//
// The call is stateless and idempotent: identical arguments produce
// identical canvas operations.
func DrawLabel(target *canvas.Target, geom Geometry, content LabelContent, style LabelStyle, opts DrawOptions) {
	if !content.Visible {
		return
	}
	if content.Text == "" && (content.IconGlyph == 0 || opts.IconColor.IsTransparent()) {
		return
	}

	hasBorder := geom.Bitmap.HorzBorder > 0 &&
		!style.BorderColor.IsTransparent() &&
		style.BorderColor != style.BackgroundColor

	target.UseBitmapCoordinateSpace(func(scope canvas.BitmapScope) {
		c := scope.Canvas
		drawLabelBody(c, scope, geom, content, style, opts, hasBorder)
	})

	target.UseMediaCoordinateSpace(func(scope canvas.MediaScope) {
		drawLabelText(scope.Canvas, geom, content, style, opts)
	})
}

func drawLabelBody(c canvas.Canvas, scope canvas.BitmapScope, geom Geometry, content LabelContent, style LabelStyle, opts DrawOptions, hasBorder bool) {
	g := geom.Bitmap
	hr := scope.HorizontalPixelRatio
	vr := scope.VerticalPixelRatio

	rectX := float64(g.XInside)
	if geom.AlignRight {
		rectX = float64(g.XOutside)
	}
	rectY := float64(g.YTop)
	rectW := float64(g.TotalWidth)
	rectH := float64(g.TotalHeight)

	// Rounded corners only on the outside edge; the inside edge sits flush
	// against the axis border.
	var radii canvas.Radii
	if geom.AlignRight {
		radii = canvas.Radii{g.Radius, 0, 0, g.Radius}
	} else {
		radii = canvas.Radii{0, g.Radius, g.Radius, 0}
	}

	c.SetFillColor(style.BackgroundColor)
	c.FillRoundRect(rectX, rectY, rectW, rectH, radii)

	if content.TickVisible {
		tickX := float64(g.XInside)
		if geom.AlignRight {
			tickX = float64(g.XTick)
		}
		tickW := float64(g.XTick - g.XInside)
		if tickW < 0 {
			tickW = -tickW
		}
		c.SetFillColor(style.TextColor)
		c.FillRect(tickX, float64(g.YMid), tickW, float64(g.TickHeight))
	}

	if hasBorder {
		// Refill the inner rectangle so the tick stops at the border region
		// instead of bleeding under the border stroke. The second fill is
		// intentional; it replaces a clip.
		b := float64(g.HorzBorder)
		c.SetFillColor(style.BackgroundColor)
		c.FillRoundRect(rectX+b, rectY+b, rectW-2*b, rectH-2*b, shrinkRadii(radii, b))
	}

	if g.Separator > 0 {
		sepX := 0.0
		if geom.AlignRight {
			sepX = float64(g.Right - g.Separator)
		}
		c.SetCompositeMode(canvas.CompositeCopy)
		c.SetFillColor(opts.PaneBackgroundColor)
		c.FillRect(sepX, 0, float64(g.Separator), float64(scope.BitmapSize.Height))
		c.SetCompositeMode(canvas.CompositeSourceOver)
	}

	if hasBorder {
		b := float64(g.HorzBorder)
		c.SetStrokeColor(style.BorderColor)
		c.SetLineWidth(b)
		c.StrokeRoundRect(rectX+b/2, rectY+b/2, rectW-b, rectH-b, shrinkRadii(radii, b/2))
	}

	yMidCenter := float64(g.YMid) + float64(g.TickHeight)/2

	if opts.Draggable {
		drawDragHandle(c, geom, style, opts.CloseAffordance, hr, vr, yMidCenter)
	}

	if opts.CloseAffordance {
		drawCloseAffordance(c, geom, style, hr, vr, yMidCenter)
	}
}

// drawDragHandle fills a 2x3 dot grid near the outer end of the label,
// stepped inward past the close affordance slot when one is present.
func drawDragHandle(c canvas.Canvas, geom Geometry, style LabelStyle, hasClose bool, hr, vr, yMidCenter float64) {
	inset := dragHandleMargin * hr
	if hasClose {
		inset += CloseAffordanceWidth * hr
	}
	baseX := float64(geom.Bitmap.XOutside) + inset
	stepX := dragHandleSpacing * hr
	if !geom.AlignRight {
		baseX = float64(geom.Bitmap.XOutside) - inset
		stepX = -stepX
	}
	rowOffset := dragHandleSpacing * vr / 2

	c.SetFillColor(style.TextColor)
	for col := 0; col < 3; col++ {
		x := baseX + float64(col)*stepX
		c.FillCircle(x, yMidCenter-rowOffset, dragHandleDotRadius*hr)
		c.FillCircle(x, yMidCenter+rowOffset, dragHandleDotRadius*hr)
	}
}

// drawCloseAffordance strokes a small square with an X centered in the
// close slot at the outer end of the label.
func drawCloseAffordance(c canvas.Canvas, geom Geometry, style LabelStyle, hr, vr, yMidCenter float64) {
	slot := CloseAffordanceWidth * hr
	cx := float64(geom.Bitmap.XOutside) + slot/2
	if !geom.AlignRight {
		cx = float64(geom.Bitmap.XOutside) - slot/2
	}

	boxW := closeBoxSize * hr
	boxH := closeBoxSize * vr
	bx := cx - boxW/2
	by := yMidCenter - boxH/2

	lineWidth := hr
	if lineWidth < 1 {
		lineWidth = 1
	}
	c.SetStrokeColor(style.TextColor)
	c.SetLineWidth(lineWidth)
	c.StrokeRoundRect(bx, by, boxW, boxH, canvas.Radii{})

	insetX := 2 * hr
	insetY := 2 * vr
	c.StrokeLine(bx+insetX, by+insetY, bx+boxW-insetX, by+boxH-insetY)
	c.StrokeLine(bx+boxW-insetX, by+insetY, bx+insetX, by+boxH-insetY)
}

func drawLabelText(c canvas.Canvas, geom Geometry, content LabelContent, style LabelStyle, opts DrawOptions) {
	iconMode := content.IconGlyph != 0 && !opts.IconColor.IsTransparent()
	yMid := (geom.Media.YTop+geom.Media.YBottom)/2 + geom.Media.TextMidCorrection

	if iconMode {
		x := geom.Media.XText
		if geom.AlignRight {
			x -= IconWidth
		}
		c.SetFillColor(opts.IconColor)
		c.SetFont(style.Font, IconFontSize)
		c.SetTextAlign(canvas.TextAlignLeft)
		c.FillText(string(content.IconGlyph), x, yMid)
		return
	}

	align := canvas.TextAlignLeft
	if geom.AlignRight {
		align = canvas.TextAlignRight
	}
	c.SetFillColor(style.TextColor)
	c.SetFont(style.Font, style.FontSize)
	c.SetTextAlign(align)
	c.FillText(content.Text, geom.Media.XText, yMid)
}

// shrinkRadii reduces each nonzero corner radius by the given amount,
// clamping at zero. Zero radii stay square.
func shrinkRadii(radii canvas.Radii, by float64) canvas.Radii {
	for i, r := range radii {
		if r <= 0 {
			continue
		}
		r -= by
		if r < 0 {
			r = 0
		}
		radii[i] = r
	}
	return radii
}
