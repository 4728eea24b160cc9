// Command pricetags renders a sample price axis with several label styles
// to a PNG and, optionally, an SVG snapshot.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
	"github.com/unity-systems/unity-lightweight-charts/priceaxis"
	"github.com/unity-systems/unity-lightweight-charts/text"
)

func main() {
	var (
		width    = flag.Int("width", 120, "axis width in logical pixels")
		height   = flag.Int("height", 400, "axis height in logical pixels")
		scale    = flag.Float64("scale", 2, "device pixel ratio")
		fontPath = flag.String("font", "", "TTF font file (optional; falls back to a bitmap face)")
		output   = flag.String("output", "pricetags.png", "output PNG file")
		svgOut   = flag.String("svg", "", "also write an SVG snapshot to this file")
	)
	flag.Parse()

	style := priceaxis.DefaultLabelStyle()

	face, measurer, err := loadFont(*fontPath, style.FontSize, *scale)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	cache := text.NewWidthCache(measurer, 256)

	bw := int(float64(*width) * *scale)
	bh := int(float64(*height) * *scale)
	img := canvas.NewImageCanvas(bw, bh)
	img.RegisterFace(style.Font, face)
	img.Clear(charts.Hex("#131722"))

	target := canvas.NewTarget(img, *scale, *scale)
	renderLabels(target, cache, style)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Axis saved to %s (%dx%d)\n", *output, bw, bh)

	if *svgOut != "" {
		sf, err := os.Create(*svgOut)
		if err != nil {
			log.Fatalf("Failed to create SVG output: %v", err)
		}
		defer sf.Close()
		svgc := canvas.NewSVGCanvas(sf, bw, bh)
		svgTarget := canvas.NewTarget(svgc, *scale, *scale)
		renderLabels(svgTarget, cache, style)
		svgc.Close()
		log.Printf("SVG snapshot saved to %s\n", *svgOut)
	}
}

// renderLabels draws one label per supported variation.
func renderLabels(target *canvas.Target, cache *text.WidthCache, base priceaxis.LabelStyle) {
	pane := charts.Hex("#131722")

	lastPrice := base
	lastPrice.BackgroundColor = charts.Hex("#2962ff")

	alert := base
	alert.BackgroundColor = charts.Hex("#f7525f")
	alert.BorderColor = charts.White

	crosshair := base
	crosshair.BackgroundColor = charts.Hex("#4c525e")

	draw := func(value string, y float64, style priceaxis.LabelStyle, content priceaxis.LabelContent, hasClose bool, opts priceaxis.DrawOptions) {
		content.Text = value
		anchor := priceaxis.AnchorPosition{Coordinate: y, Align: priceaxis.AlignRight}
		textWidth := cache.CeilMeasureText(style.Font, value)
		if content.IconGlyph != 0 {
			textWidth = priceaxis.IconWidth
		}
		corr := cache.BaselineCorrection(style.Font, value)
		geom := priceaxis.ComputeGeometry(content, style, anchor, hasClose, target.BitmapScope(), textWidth, corr)
		priceaxis.DrawLabel(target, geom, content, style, opts)
	}

	shown := priceaxis.LabelContent{Visible: true, TickVisible: true, SeparatorVisible: true}

	draw("18342.25", 60, lastPrice, shown, false,
		priceaxis.DrawOptions{PaneBackgroundColor: pane})

	movable := shown
	movable.MoveTextAwayFromTick = true
	draw("18250.00", 140, alert, movable, true, priceaxis.DrawOptions{
		Draggable:           true,
		CloseAffordance:     true,
		PaneBackgroundColor: pane,
	})

	noTick := shown
	noTick.TickVisible = false
	draw("18120.50", 220, crosshair, noTick, false,
		priceaxis.DrawOptions{PaneBackgroundColor: pane})

	flagged := shown
	flagged.IconGlyph = '⚑'
	draw("", 300, lastPrice, flagged, false, priceaxis.DrawOptions{
		IconColor:           charts.Hex("#ffa726"),
		PaneBackgroundColor: pane,
	})
}

// loadFont returns a rendering face and a matching width measurer. The face
// is sized in physical pixels so glyphs stay sharp; the measurer reports
// logical widths. Without a TTF path both fall back to the fixed-size
// bitmap face.
func loadFont(path string, size, scale float64) (font.Face, text.Measurer, error) {
	if path == "" {
		face := basicfont.Face7x13
		return face, faceMeasurer{face: face, scale: scale}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, err
	}
	return face, faceMeasurer{face: face, scale: scale}, nil
}

// faceMeasurer measures with the same font.Face the image canvas draws with,
// so measured widths match rendered widths. The face metrics are in physical
// pixels; scale converts them back to logical ones.
type faceMeasurer struct {
	face  font.Face
	scale float64
}

func (m faceMeasurer) MeasureText(_, s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64 / m.scale
}

func (m faceMeasurer) BaselineCorrection(_, _ string) float64 {
	metrics := m.face.Metrics()
	return float64(metrics.Ascent-metrics.Descent) / 64 / 2 / m.scale
}
