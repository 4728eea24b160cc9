package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	charts "github.com/unity-systems/unity-lightweight-charts"
)

// kappa approximates a quarter circle with a single cubic Bezier.
const kappa = 0.5522847498307936

// imageState is the saveable drawing state of an ImageCanvas.
type imageState struct {
	fill      charts.Color
	stroke    charts.Color
	lineWidth float64
	fontName  string
	fontSize  float64
	align     TextAlign
	composite CompositeMode
	scaleX    float64
	scaleY    float64
}

// ImageCanvas is a CPU-backed Canvas rendering into an *image.RGBA.
//
// Fills and strokes are rasterized with golang.org/x/image/vector. Text is
// drawn with golang.org/x/image/font faces registered via RegisterFace; the
// face key must match the name passed to SetFont. Unregistered fonts fall
// back to basicfont.Face7x13.
//
// Scale affects coordinates and line widths but not glyph rasterization:
// register faces at the physical pixel size you want on screen.
type ImageCanvas struct {
	img    *image.RGBA
	width  int
	height int

	state imageState
	stack []imageState

	faces map[string]font.Face
}

// NewImageCanvas creates a canvas of the given size in physical pixels.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageCanvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		state:  defaultImageState(),
		faces:  make(map[string]font.Face),
	}
}

// NewImageCanvasFromImage creates a canvas that renders into img directly.
func NewImageCanvasFromImage(img *image.RGBA) *ImageCanvas {
	b := img.Bounds()
	return &ImageCanvas{
		img:    img,
		width:  b.Dx(),
		height: b.Dy(),
		state:  defaultImageState(),
		faces:  make(map[string]font.Face),
	}
}

func defaultImageState() imageState {
	return imageState{
		fill:      charts.Black,
		stroke:    charts.Black,
		lineWidth: 1,
		fontSize:  11,
		scaleX:    1,
		scaleY:    1,
	}
}

// RegisterFace associates a font name with a concrete face. Subsequent
// SetFont calls with the same name select it for FillText.
func (c *ImageCanvas) RegisterFace(name string, face font.Face) {
	c.faces[name] = face
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with the given color, resetting alpha too.
func (c *ImageCanvas) Clear(col charts.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *ImageCanvas) Width() int  { return c.width }
func (c *ImageCanvas) Height() int { return c.height }

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *ImageCanvas) Scale(sx, sy float64) {
	c.state.scaleX *= sx
	c.state.scaleY *= sy
}

func (c *ImageCanvas) SetFillColor(col charts.Color)    { c.state.fill = col }
func (c *ImageCanvas) SetStrokeColor(col charts.Color)  { c.state.stroke = col }
func (c *ImageCanvas) SetLineWidth(w float64)           { c.state.lineWidth = w }
func (c *ImageCanvas) SetTextAlign(align TextAlign)     { c.state.align = align }
func (c *ImageCanvas) SetCompositeMode(m CompositeMode) { c.state.composite = m }

func (c *ImageCanvas) SetFont(name string, size float64) {
	c.state.fontName = name
	c.state.fontSize = size
}

func (c *ImageCanvas) FillRect(x, y, w, h float64) {
	c.fillPath(c.state.fill, func(p *rasterPath) {
		p.moveTo(x, y)
		p.lineTo(x+w, y)
		p.lineTo(x+w, y+h)
		p.lineTo(x, y+h)
		p.close()
	})
}

func (c *ImageCanvas) FillRoundRect(x, y, w, h float64, radii Radii) {
	radii = clampRadii(radii, w, h)
	c.fillPath(c.state.fill, func(p *rasterPath) {
		p.roundRectCW(x, y, w, h, radii)
	})
}

// StrokeRoundRect fills the ring between the rounded rectangle grown and
// shrunk by half the line width. The inner contour runs counterclockwise so
// the non-zero winding fill leaves the middle empty.
func (c *ImageCanvas) StrokeRoundRect(x, y, w, h float64, radii Radii) {
	lw := c.state.lineWidth
	half := lw / 2
	outer := Radii{}
	inner := Radii{}
	for i, r := range radii {
		if r > 0 {
			outer[i] = r + half
			inner[i] = math.Max(0, r-half)
		}
	}
	outer = clampRadii(outer, w+lw, h+lw)
	inner = clampRadii(inner, w-lw, h-lw)
	c.fillPath(c.state.stroke, func(p *rasterPath) {
		p.roundRectCW(x-half, y-half, w+lw, h+lw, outer)
		if w > lw && h > lw {
			p.roundRectCCW(x+half, y+half, w-lw, h-lw, inner)
		}
	})
}

func (c *ImageCanvas) FillCircle(cx, cy, r float64) {
	off := r * kappa
	c.fillPath(c.state.fill, func(p *rasterPath) {
		p.moveTo(cx+r, cy)
		p.cubeTo(cx+r, cy+off, cx+off, cy+r, cx, cy+r)
		p.cubeTo(cx-off, cy+r, cx-r, cy+off, cx-r, cy)
		p.cubeTo(cx-r, cy-off, cx-off, cy-r, cx, cy-r)
		p.cubeTo(cx+off, cy-r, cx+r, cy-off, cx+r, cy)
		p.close()
	})
}

func (c *ImageCanvas) StrokeLine(x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal, scaled to half the line width.
	nx := -dy / length * c.state.lineWidth / 2
	ny := dx / length * c.state.lineWidth / 2
	c.fillPath(c.state.stroke, func(p *rasterPath) {
		p.moveTo(x1+nx, y1+ny)
		p.lineTo(x2+nx, y2+ny)
		p.lineTo(x2-nx, y2-ny)
		p.lineTo(x1-nx, y1-ny)
		p.close()
	})
}

func (c *ImageCanvas) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	face := c.face()
	px := x * c.state.scaleX
	py := y * c.state.scaleY
	switch c.state.align {
	case TextAlignRight:
		px -= fixedToFloat(font.MeasureString(face, s))
	case TextAlignCenter:
		px -= fixedToFloat(font.MeasureString(face, s)) / 2
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.state.fill.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(px), Y: floatToFixed(py)},
	}
	d.DrawString(s)
}

func (c *ImageCanvas) face() font.Face {
	if f, ok := c.faces[c.state.fontName]; ok {
		return f
	}
	return basicfont.Face7x13
}

// fillPath rasterizes the path built by build and composites it with col.
func (c *ImageCanvas) fillPath(col charts.Color, build func(p *rasterPath)) {
	r := vector.NewRasterizer(c.width, c.height)
	if c.state.composite == CompositeCopy {
		r.DrawOp = draw.Src
	} else {
		r.DrawOp = draw.Over
	}
	p := &rasterPath{r: r, sx: c.state.scaleX, sy: c.state.scaleY}
	build(p)
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

// rasterPath builds a path on a vector.Rasterizer, applying the canvas scale.
type rasterPath struct {
	r      *vector.Rasterizer
	sx, sy float64
}

func (p *rasterPath) moveTo(x, y float64) {
	p.r.MoveTo(float32(x*p.sx), float32(y*p.sy))
}

func (p *rasterPath) lineTo(x, y float64) {
	p.r.LineTo(float32(x*p.sx), float32(y*p.sy))
}

func (p *rasterPath) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.r.CubeTo(
		float32(c1x*p.sx), float32(c1y*p.sy),
		float32(c2x*p.sx), float32(c2y*p.sy),
		float32(x*p.sx), float32(y*p.sy),
	)
}

func (p *rasterPath) close() {
	p.r.ClosePath()
}

// roundRectCW traces a rounded rectangle clockwise starting on the top edge.
func (p *rasterPath) roundRectCW(x, y, w, h float64, radii Radii) {
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	p.moveTo(x+tl, y)
	p.lineTo(x+w-tr, y)
	if tr > 0 {
		p.cubeTo(x+w-tr+kappa*tr, y, x+w, y+tr-kappa*tr, x+w, y+tr)
	}
	p.lineTo(x+w, y+h-br)
	if br > 0 {
		p.cubeTo(x+w, y+h-br+kappa*br, x+w-br+kappa*br, y+h, x+w-br, y+h)
	}
	p.lineTo(x+bl, y+h)
	if bl > 0 {
		p.cubeTo(x+bl-kappa*bl, y+h, x, y+h-bl+kappa*bl, x, y+h-bl)
	}
	p.lineTo(x, y+tl)
	if tl > 0 {
		p.cubeTo(x, y+tl-kappa*tl, x+tl-kappa*tl, y, x+tl, y)
	}
	p.close()
}

// roundRectCCW traces the same contour counterclockwise. Appending it after
// a clockwise contour cancels the winding in the interior, yielding a ring.
func (p *rasterPath) roundRectCCW(x, y, w, h float64, radii Radii) {
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]
	p.moveTo(x+tl, y)
	if tl > 0 {
		p.cubeTo(x+tl-kappa*tl, y, x, y+tl-kappa*tl, x, y+tl)
	} else {
		p.lineTo(x, y)
	}
	p.lineTo(x, y+h-bl)
	if bl > 0 {
		p.cubeTo(x, y+h-bl+kappa*bl, x+bl-kappa*bl, y+h, x+bl, y+h)
	}
	p.lineTo(x+w-br, y+h)
	if br > 0 {
		p.cubeTo(x+w-br+kappa*br, y+h, x+w, y+h-br+kappa*br, x+w, y+h-br)
	}
	p.lineTo(x+w, y+tr)
	if tr > 0 {
		p.cubeTo(x+w, y+tr-kappa*tr, x+w-tr+kappa*tr, y, x+w-tr, y)
	}
	p.close()
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
