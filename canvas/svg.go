package canvas

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	charts "github.com/unity-systems/unity-lightweight-charts"
)

// svgState is the saveable drawing state of an SVGCanvas.
type svgState struct {
	fill       charts.Color
	stroke     charts.Color
	lineWidth  float64
	fontName   string
	fontSize   float64
	align      TextAlign
	openGroups int
}

// SVGCanvas is a Canvas that writes SVG elements through github.com/ajstarks/svgo.
//
// It exists for axis-label snapshot export and golden-file inspection: the
// emitted markup is deterministic for identical draw sequences. Save opens an
// SVG group and Restore closes it, so scale transforms scope naturally.
//
// SetCompositeMode is a no-op; SVG has no destination-copy semantics, and the
// label drawer only relies on source-over compositing of opaque colors.
//
// Call Close once drawing is finished to emit the closing tag.
type SVGCanvas struct {
	svg    *svg.SVG
	width  int
	height int

	state svgState
	stack []svgState
}

// NewSVGCanvas starts an SVG document of the given pixel size on w.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	doc := svg.New(w)
	doc.Start(width, height)
	return &SVGCanvas{
		svg:    doc,
		width:  width,
		height: height,
		state: svgState{
			fill:      charts.Black,
			stroke:    charts.Black,
			lineWidth: 1,
			fontName:  "sans-serif",
			fontSize:  11,
		},
	}
}

// Close ends the SVG document. The canvas must not be used afterwards.
func (c *SVGCanvas) Close() {
	// Close any groups left open by unbalanced Save calls.
	for _, s := range c.stack {
		for i := 0; i < s.openGroups; i++ {
			c.svg.Gend()
		}
	}
	for i := 0; i < c.state.openGroups; i++ {
		c.svg.Gend()
	}
	c.stack = nil
	c.state.openGroups = 0
	c.svg.End()
}

func (c *SVGCanvas) Width() int  { return c.width }
func (c *SVGCanvas) Height() int { return c.height }

func (c *SVGCanvas) Save() {
	c.stack = append(c.stack, c.state)
	c.state.openGroups = 0
}

func (c *SVGCanvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	for i := 0; i < c.state.openGroups; i++ {
		c.svg.Gend()
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *SVGCanvas) Scale(sx, sy float64) {
	c.svg.ScaleXY(sx, sy)
	c.state.openGroups++
}

func (c *SVGCanvas) SetFillColor(col charts.Color)   { c.state.fill = col }
func (c *SVGCanvas) SetStrokeColor(col charts.Color) { c.state.stroke = col }
func (c *SVGCanvas) SetLineWidth(w float64)          { c.state.lineWidth = w }
func (c *SVGCanvas) SetTextAlign(align TextAlign)    { c.state.align = align }
func (c *SVGCanvas) SetCompositeMode(CompositeMode)  {}

func (c *SVGCanvas) SetFont(name string, size float64) {
	c.state.fontName = name
	c.state.fontSize = size
}

func (c *SVGCanvas) FillRect(x, y, w, h float64) {
	c.svg.Path(rectPath(x, y, w, h), c.fillStyle())
}

func (c *SVGCanvas) FillRoundRect(x, y, w, h float64, radii Radii) {
	c.svg.Path(roundRectPath(x, y, w, h, clampRadii(radii, w, h)), c.fillStyle())
}

func (c *SVGCanvas) StrokeRoundRect(x, y, w, h float64, radii Radii) {
	c.svg.Path(roundRectPath(x, y, w, h, clampRadii(radii, w, h)), c.strokeStyle())
}

func (c *SVGCanvas) FillCircle(cx, cy, r float64) {
	c.svg.Circle(round(cx), round(cy), round(r), c.fillStyle())
}

func (c *SVGCanvas) StrokeLine(x1, y1, x2, y2 float64) {
	c.svg.Line(round(x1), round(y1), round(x2), round(y2), c.strokeStyle())
}

func (c *SVGCanvas) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	anchor := "start"
	switch c.state.align {
	case TextAlignRight:
		anchor = "end"
	case TextAlignCenter:
		anchor = "middle"
	}
	style := fmt.Sprintf("font-family:%s;font-size:%gpx;text-anchor:%s;fill:%s%s",
		c.state.fontName, c.state.fontSize, anchor,
		c.state.fill.HexString(), opacitySuffix("fill-opacity", c.state.fill))
	c.svg.Text(round(x), round(y), s, style)
}

func (c *SVGCanvas) fillStyle() string {
	return fmt.Sprintf("fill:%s;stroke:none%s",
		c.state.fill.HexString(), opacitySuffix("fill-opacity", c.state.fill))
}

func (c *SVGCanvas) strokeStyle() string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g%s",
		c.state.stroke.HexString(), c.state.lineWidth,
		opacitySuffix("stroke-opacity", c.state.stroke))
}

func opacitySuffix(attr string, col charts.Color) string {
	if col.IsOpaque() {
		return ""
	}
	return fmt.Sprintf(";%s:%.3f", attr, col.A)
}

func rectPath(x, y, w, h float64) string {
	return fmt.Sprintf("M%s %sH%sV%sH%sZ", num(x), num(y), num(x+w), num(y+h), num(x))
}

// roundRectPath builds an SVG path with per-corner arc radii; svgo's
// Roundrect only supports a single uniform radius.
func roundRectPath(x, y, w, h float64, radii Radii) string {
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s", num(x+tl), num(y))
	fmt.Fprintf(&b, "H%s", num(x+w-tr))
	if tr > 0 {
		fmt.Fprintf(&b, "A%s %s 0 0 1 %s %s", num(tr), num(tr), num(x+w), num(y+tr))
	}
	fmt.Fprintf(&b, "V%s", num(y+h-br))
	if br > 0 {
		fmt.Fprintf(&b, "A%s %s 0 0 1 %s %s", num(br), num(br), num(x+w-br), num(y+h))
	}
	fmt.Fprintf(&b, "H%s", num(x+bl))
	if bl > 0 {
		fmt.Fprintf(&b, "A%s %s 0 0 1 %s %s", num(bl), num(bl), num(x), num(y+h-bl))
	}
	fmt.Fprintf(&b, "V%s", num(y+tl))
	if tl > 0 {
		fmt.Fprintf(&b, "A%s %s 0 0 1 %s %s", num(tl), num(tl), num(x+tl), num(y))
	}
	b.WriteString("Z")
	return b.String()
}

func num(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}

func round(v float64) int {
	return int(math.Round(v))
}
