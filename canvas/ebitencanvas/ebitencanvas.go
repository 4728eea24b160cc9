// Package ebitencanvas adapts an ebiten image to the canvas.Canvas interface
// so axis labels can be drawn inside an ebiten game loop.
//
// Rounded rectangles are built from vector.Path arcs and filled through
// DrawTriangles against a shared 1x1 white source image. Text uses
// github.com/hajimehoshi/ebiten/v2/text/v2 faces registered per font name.
package ebitencanvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

// whiteImage is a reusable 1x1 white pixel used as the source for
// DrawTriangles fills so solid shapes need no per-shape image.
var whiteImage *ebiten.Image

func init() {
	whiteImage = ebiten.NewImage(1, 1)
	whiteImage.Fill(color.White)
}

type state struct {
	fill      charts.Color
	stroke    charts.Color
	lineWidth float64
	fontName  string
	fontSize  float64
	align     canvas.TextAlign
	blend     ebiten.Blend
	scaleX    float64
	scaleY    float64
}

// Canvas implements canvas.Canvas on top of an *ebiten.Image.
// Not safe for concurrent use; draw from the game's Draw callback only.
type Canvas struct {
	dst   *ebiten.Image
	state state
	stack []state
	faces map[string]etext.Face
}

// New wraps dst. The destination's bounds define the canvas size in
// physical pixels.
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{
		dst: dst,
		state: state{
			fill:      charts.Black,
			stroke:    charts.Black,
			lineWidth: 1,
			fontSize:  11,
			blend:     ebiten.BlendSourceOver,
			scaleX:    1,
			scaleY:    1,
		},
		faces: make(map[string]etext.Face),
	}
}

// RegisterFace associates a font name with a text/v2 face for FillText.
func (c *Canvas) RegisterFace(name string, face etext.Face) {
	c.faces[name] = face
}

func (c *Canvas) Width() int  { return c.dst.Bounds().Dx() }
func (c *Canvas) Height() int { return c.dst.Bounds().Dy() }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Scale(sx, sy float64) {
	c.state.scaleX *= sx
	c.state.scaleY *= sy
}

func (c *Canvas) SetFillColor(col charts.Color)   { c.state.fill = col }
func (c *Canvas) SetStrokeColor(col charts.Color) { c.state.stroke = col }
func (c *Canvas) SetLineWidth(w float64)          { c.state.lineWidth = w }

func (c *Canvas) SetFont(name string, size float64) {
	c.state.fontName = name
	c.state.fontSize = size
}

func (c *Canvas) SetTextAlign(align canvas.TextAlign) { c.state.align = align }

func (c *Canvas) SetCompositeMode(mode canvas.CompositeMode) {
	if mode == canvas.CompositeCopy {
		c.state.blend = ebiten.BlendCopy
	} else {
		c.state.blend = ebiten.BlendSourceOver
	}
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	x, y = c.px(x, y)
	w *= c.state.scaleX
	h *= c.state.scaleY
	if c.state.blend == ebiten.BlendSourceOver {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.state.fill.NRGBA(), false)
		return
	}
	var p vector.Path
	p.MoveTo(float32(x), float32(y))
	p.LineTo(float32(x+w), float32(y))
	p.LineTo(float32(x+w), float32(y+h))
	p.LineTo(float32(x), float32(y+h))
	p.Close()
	c.fillPath(&p, c.state.fill)
}

func (c *Canvas) FillRoundRect(x, y, w, h float64, radii canvas.Radii) {
	p := c.roundRectPath(x, y, w, h, radii)
	c.fillPath(p, c.state.fill)
}

func (c *Canvas) StrokeRoundRect(x, y, w, h float64, radii canvas.Radii) {
	p := c.roundRectPath(x, y, w, h, radii)
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width: float32(c.state.lineWidth * c.state.scaleX),
	})
	c.drawTriangles(vs, is, c.state.stroke)
}

func (c *Canvas) FillCircle(cx, cy, r float64) {
	cx, cy = c.px(cx, cy)
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r*c.state.scaleX), c.state.fill.NRGBA(), true)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	x1, y1 = c.px(x1, y1)
	x2, y2 = c.px(x2, y2)
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2),
		float32(c.state.lineWidth*c.state.scaleX), c.state.stroke.NRGBA(), false)
}

func (c *Canvas) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	face, ok := c.faces[c.state.fontName]
	if !ok {
		charts.Logger().Warn("ebitencanvas: no face registered for font", "font", c.state.fontName)
		return
	}
	x, y = c.px(x, y)
	switch c.state.align {
	case canvas.TextAlignRight:
		x -= etext.Advance(s, face)
	case canvas.TextAlignCenter:
		x -= etext.Advance(s, face) / 2
	}
	// FillText receives the alphabetic baseline; text.Draw positions the
	// top of the line, so shift up by the ascent.
	m := face.Metrics()
	op := &etext.DrawOptions{}
	op.GeoM.Translate(x, y-m.HAscent)
	op.ColorScale.ScaleWithColor(c.state.fill.NRGBA())
	etext.Draw(c.dst, s, face, op)
}

// px applies the current scale to a coordinate pair.
func (c *Canvas) px(x, y float64) (float64, float64) {
	return x * c.state.scaleX, y * c.state.scaleY
}

func (c *Canvas) roundRectPath(x, y, w, h float64, radii canvas.Radii) *vector.Path {
	x, y = c.px(x, y)
	w *= c.state.scaleX
	h *= c.state.scaleY
	left, top := float32(x), float32(y)
	right, bottom := float32(x+w), float32(y+h)
	tl := float32(radii[0] * c.state.scaleX)
	tr := float32(radii[1] * c.state.scaleX)
	br := float32(radii[2] * c.state.scaleX)
	bl := float32(radii[3] * c.state.scaleX)

	var p vector.Path
	p.MoveTo(left+tl, top)
	p.LineTo(right-tr, top)
	if tr > 0 {
		p.Arc(right-tr, top+tr, tr, -math.Pi/2, 0, vector.Clockwise)
	}
	p.LineTo(right, bottom-br)
	if br > 0 {
		p.Arc(right-br, bottom-br, br, 0, math.Pi/2, vector.Clockwise)
	}
	p.LineTo(left+bl, bottom)
	if bl > 0 {
		p.Arc(left+bl, bottom-bl, bl, math.Pi/2, math.Pi, vector.Clockwise)
	}
	p.LineTo(left, top+tl)
	if tl > 0 {
		p.Arc(left+tl, top+tl, tl, math.Pi, 3*math.Pi/2, vector.Clockwise)
	}
	p.Close()
	return &p
}

func (c *Canvas) fillPath(p *vector.Path, col charts.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, col)
}

func (c *Canvas) drawTriangles(vs []ebiten.Vertex, is []uint16, col charts.Color) {
	r, g, b, a := col.NRGBA().RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
		Blend:          c.state.blend,
	}
	c.dst.DrawTriangles(vs, is, whiteImage, op)
}
