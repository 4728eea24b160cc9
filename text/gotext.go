package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	charts "github.com/unity-systems/unity-lightweight-charts"
)

// registeredFont pairs a parsed font with the pixel size it was registered at.
// font.Font is read-only and safe for concurrent use; font.Face is not, so a
// lightweight Face is created per measurement call.
type registeredFont struct {
	font *font.Font
	size float64
}

// GoTextMeasurer is a Measurer backed by go-text/typesetting's HarfBuzz
// shaper. Shaped measurement accounts for kerning, ligatures and complex
// scripts, so the widths match what a shaping text renderer will produce.
//
// Fonts are registered by name with RegisterFont; the name is the font key
// the rest of the library passes around. GoTextMeasurer is safe for
// concurrent use.
type GoTextMeasurer struct {
	// shaperPool pools HarfbuzzShaper instances: they carry internal
	// mutable buffers and are not safe for concurrent use.
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[string]registeredFont
}

// NewGoTextMeasurer creates an empty measurer. Register at least one font
// before measuring.
func NewGoTextMeasurer() *GoTextMeasurer {
	return &GoTextMeasurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[string]registeredFont),
	}
}

// RegisterFont parses TTF/OTF data and associates it with name at the given
// pixel size. Re-registering a name replaces the previous font; callers
// should then reset any WidthCache built on this measurer.
func (m *GoTextMeasurer) RegisterFont(name string, data []byte, size float64) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: parse font %q: %w", name, err)
	}
	m.mu.Lock()
	m.fonts[name] = registeredFont{font: face.Font, size: size}
	m.mu.Unlock()
	return nil
}

// MeasureText returns the shaped advance width of s in logical pixels.
// Unregistered fonts measure as zero width.
func (m *GoTextMeasurer) MeasureText(fontName string, s string) float64 {
	if s == "" {
		return 0
	}
	out, ok := m.shape(fontName, s)
	if !ok {
		return 0
	}
	return fixedToFloat(out.Advance)
}

// BaselineCorrection returns the offset from the visual middle of s down to
// its alphabetic baseline, derived from the shaped ink bounds.
func (m *GoTextMeasurer) BaselineCorrection(fontName string, s string) float64 {
	if s == "" {
		return 0
	}
	out, ok := m.shape(fontName, s)
	if !ok {
		return 0
	}
	// Ascent is positive above the baseline, Descent negative below it;
	// their mean is the midline-to-baseline distance.
	bounds := out.GlyphBounds
	if bounds.Ascent == 0 && bounds.Descent == 0 {
		bounds = out.LineBounds
	}
	return fixedToFloat(bounds.Ascent+bounds.Descent) / 2
}

func (m *GoTextMeasurer) shape(fontName, s string) (shaping.Output, bool) {
	m.mu.RLock()
	reg, ok := m.fonts[fontName]
	m.mu.RUnlock()
	if !ok {
		charts.Logger().Warn("text: measuring with unregistered font", "font", fontName)
		return shaping.Output{}, false
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(s),
		Face:      font.NewFace(reg.font),
		Size:      floatToFixed(reg.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shaperPool.Put(shaper)
	return out, true
}

// detectDirection resolves the paragraph direction of s with the Unicode
// bidi algorithm. Price strings are LTR, but the measurer is shared with
// arbitrary label text.
func detectDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
