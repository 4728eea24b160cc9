package priceaxis

import (
	"math"

	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

// BitmapGeometry carries physical-pixel values. Except for Radius every
// field is an integer device coordinate so fills land on pixel boundaries.
type BitmapGeometry struct {
	// YTop, YMid and YBottom bound the label rectangle vertically. YMid is
	// the tick row. TotalHeight - TickHeight is always even, so YMid sits
	// the same distance from both edges.
	YTop, YMid, YBottom int

	TotalWidth  int
	TotalHeight int

	// Radius is the corner radius already scaled to bitmap space. Consumers
	// must not rescale it.
	Radius float64

	// HorzBorder is the border thickness; zero when the border is disabled.
	HorzBorder int

	// Separator is the separator strip width; zero when hidden.
	Separator int

	// XOutside and XInside are the label's far and near horizontal edges.
	// XTick is where the tick meets the label body.
	XOutside, XInside, XTick int

	TickHeight int

	// Right is the surface width, kept so drawers can mirror coordinates.
	Right int
}

// MediaGeometry carries logical-pixel values used for text placement.
type MediaGeometry struct {
	YTop, YBottom float64

	// XText is the text anchor; alignment direction depends on AlignRight.
	XText float64

	// TextMidCorrection shifts the baseline from the vertical center so the
	// glyphs appear optically centered.
	TextMidCorrection float64
}

// Geometry is the full placement of one label, computed once per draw.
type Geometry struct {
	AlignRight bool
	Bitmap     BitmapGeometry
	Media      MediaGeometry
}

// ComputeGeometry places a label on the axis surface described by scope.
// textWidth is the measured logical advance of the label's text (or the
// fixed icon advance); textMidCorrection comes from the same measurer.
//
// The result is deterministic in its inputs. Identical inputs always yield
// identical geometry.
func ComputeGeometry(content LabelContent, style LabelStyle, anchor AnchorPosition, hasClose bool, scope canvas.BitmapScope, textWidth, textMidCorrection float64) Geometry {
	hr := scope.HorizontalPixelRatio
	vr := scope.VerticalPixelRatio

	alignRight := anchor.Align == AlignRight

	tickLength := style.TickLength
	if !content.TickVisible && content.MoveTextAwayFromTick {
		tickLength = 0
	}

	totalHeight := style.FontSize +
		style.PaddingTop + style.PaddingTopOffset +
		style.PaddingBottom + style.PaddingBottomOffset

	totalHeightBitmap := int(math.Round(totalHeight * vr))
	tickHeightBitmap := int(math.Floor(vr))
	if tickHeightBitmap < 1 {
		tickHeightBitmap = 1
	}
	// Keep the heights of matching parity so the tick row splits the label
	// into two equal halves.
	if totalHeightBitmap%2 != tickHeightBitmap%2 {
		totalHeightBitmap++
	}

	horzBorderBitmap := 0
	if style.BorderSize > 0 {
		horzBorderBitmap = int(math.Floor(style.BorderSize * hr))
		if horzBorderBitmap < 1 {
			horzBorderBitmap = 1
		}
	}

	separatorBitmap := 0
	if content.SeparatorVisible && style.BorderSize > 0 {
		separatorBitmap = int(math.Floor(style.BorderSize * hr))
		if separatorBitmap < 1 {
			separatorBitmap = 1
		}
	}

	totalWidth := style.BorderSize + style.PaddingInner + style.PaddingOuter +
		textWidth + tickLength
	if hasClose {
		totalWidth += CloseAffordanceWidth
	}
	totalWidthBitmap := int(math.Round(totalWidth * hr))

	yMid := int(math.Round(anchor.Y()*vr)) - int(math.Floor(vr/2))
	yTop := yMid - (totalHeightBitmap-tickHeightBitmap)/2
	yBottom := yTop + totalHeightBitmap

	tickSizeBitmap := int(math.Round(tickLength * hr))

	var xOutside, xInside, xTick int
	if alignRight {
		xInside = scope.BitmapSize.Width - horzBorderBitmap
		xOutside = xInside - totalWidthBitmap
		xTick = xInside - tickSizeBitmap
	} else {
		xInside = horzBorderBitmap
		xOutside = xInside + totalWidthBitmap
		xTick = xInside + tickSizeBitmap
	}

	textShift := 0.0
	if hasClose && content.MoveTextAwayFromTick {
		textShift = CloseAffordanceWidth + CloseAffordanceMargin
	}
	var xText float64
	mediaWidth := scope.MediaSize.Width
	if alignRight {
		xText = mediaWidth - style.BorderSize - tickLength - style.PaddingInner - textShift
	} else {
		xText = style.BorderSize + tickLength + style.PaddingInner + textShift
	}

	return Geometry{
		AlignRight: alignRight,
		Bitmap: BitmapGeometry{
			YTop:        yTop,
			YMid:        yMid,
			YBottom:     yBottom,
			TotalWidth:  totalWidthBitmap,
			TotalHeight: totalHeightBitmap,
			Radius:      style.CornerRadius * hr,
			HorzBorder:  horzBorderBitmap,
			Separator:   separatorBitmap,
			XOutside:    xOutside,
			XInside:     xInside,
			XTick:       xTick,
			TickHeight:  tickHeightBitmap,
			Right:       scope.BitmapSize.Width,
		},
		Media: MediaGeometry{
			YTop:              float64(yTop) / vr,
			YBottom:           float64(yBottom) / vr,
			XText:             xText,
			TextMidCorrection: textMidCorrection,
		},
	}
}
