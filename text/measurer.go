package text

import (
	"math"
	"strings"
)

// Measurer measures text for a named font. Implementations are expected to
// be deterministic: identical (font, text) inputs must yield identical
// results for as long as the font registration is unchanged.
type Measurer interface {
	// MeasureText returns the advance width of s in logical pixels.
	MeasureText(font string, s string) float64

	// BaselineCorrection returns the vertical offset, in logical pixels,
	// from the visual middle of s down to its alphabetic baseline. Adding
	// it to a midline coordinate yields the baseline to draw at.
	BaselineCorrection(font string, s string) float64
}

// widthKey identifies one cached measurement.
type widthKey struct {
	font string
	text string
}

// WidthCache memoizes Measurer results.
//
// Price strings tick every frame, but in most fonts all digits share the
// same advance. Unless keepAllDigits is set, digits 2-9 are folded to '0'
// in the cache key so "1234.56" and "1970.03" hit one entry. Fonts with
// proportional digits should construct the cache with KeepAllDigits.
type WidthCache struct {
	measurer      Measurer
	widths        *Cache[widthKey, float64]
	corrections   *Cache[widthKey, float64]
	keepAllDigits bool
}

// WidthCacheOption configures a WidthCache.
type WidthCacheOption func(*WidthCache)

// KeepAllDigits disables digit folding in cache keys.
func KeepAllDigits() WidthCacheOption {
	return func(c *WidthCache) { c.keepAllDigits = true }
}

// NewWidthCache wraps a Measurer with memoization. softLimit bounds the
// number of distinct cached strings per table (0 = unlimited).
func NewWidthCache(m Measurer, softLimit int, opts ...WidthCacheOption) *WidthCache {
	c := &WidthCache{
		measurer:    m,
		widths:      NewCache[widthKey, float64](softLimit),
		corrections: NewCache[widthKey, float64](softLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MeasureText returns the cached advance width of s.
func (c *WidthCache) MeasureText(font string, s string) float64 {
	key := widthKey{font: font, text: c.cacheKey(s)}
	return c.widths.GetOrCreate(key, func() float64 {
		return c.measurer.MeasureText(font, key.text)
	})
}

// CeilMeasureText returns the advance width rounded up to the next integer
// logical pixel. Upward rounding guarantees a label background never clips
// glyph edges.
func (c *WidthCache) CeilMeasureText(font string, s string) float64 {
	return math.Ceil(c.MeasureText(font, s))
}

// BaselineCorrection returns the cached midline-to-baseline offset of s.
func (c *WidthCache) BaselineCorrection(font string, s string) float64 {
	key := widthKey{font: font, text: c.cacheKey(s)}
	return c.corrections.GetOrCreate(key, func() float64 {
		return c.measurer.BaselineCorrection(font, key.text)
	})
}

// Reset drops all cached measurements. Call after changing a font
// registration so stale metrics are not served.
func (c *WidthCache) Reset() {
	c.widths.Clear()
	c.corrections.Clear()
}

func (c *WidthCache) cacheKey(s string) string {
	if c.keepAllDigits {
		return s
	}
	return foldDigits(s)
}

// foldDigits maps digits 2-9 to '0'. '1' keeps its own slot: it is the one
// digit that is narrower than the rest even in many tabular fonts.
func foldDigits(s string) string {
	if !strings.ContainsAny(s, "23456789") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '2' && r <= '9' {
			r = '0'
		}
		b.WriteRune(r)
	}
	return b.String()
}
