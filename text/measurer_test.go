package text

import "testing"

// countingMeasurer measures one logical pixel per byte and counts calls.
type countingMeasurer struct {
	measureCalls    int
	correctionCalls int
}

func (m *countingMeasurer) MeasureText(font string, s string) float64 {
	m.measureCalls++
	return float64(len(s))
}

func (m *countingMeasurer) BaselineCorrection(font string, s string) float64 {
	m.correctionCalls++
	return 1.5
}

func TestWidthCacheMemoizes(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0)

	if got := c.MeasureText("label", "12.5"); got != 4 {
		t.Errorf("MeasureText = %v, want 4", got)
	}
	c.MeasureText("label", "12.5")
	if m.measureCalls != 1 {
		t.Errorf("measurer called %d times, want 1", m.measureCalls)
	}
}

func TestWidthCacheDigitFolding(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0)

	c.MeasureText("label", "1234.56")
	c.MeasureText("label", "1970.03")
	if m.measureCalls != 1 {
		t.Errorf("digit-folded strings measured %d times, want 1 shared measurement", m.measureCalls)
	}

	// '1' is kept distinct from the folded digits.
	c.MeasureText("label", "1111.11")
	if m.measureCalls != 2 {
		t.Errorf("measurer called %d times, want 2", m.measureCalls)
	}
}

func TestWidthCacheKeepAllDigits(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0, KeepAllDigits())

	c.MeasureText("label", "1234.56")
	c.MeasureText("label", "1970.03")
	if m.measureCalls != 2 {
		t.Errorf("measurer called %d times with KeepAllDigits, want 2", m.measureCalls)
	}
}

func TestWidthCacheCeil(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0)
	// countingMeasurer returns whole numbers; check Ceil is a no-op there.
	if got := c.CeilMeasureText("label", "abc"); got != 3 {
		t.Errorf("CeilMeasureText = %v, want 3", got)
	}
}

func TestWidthCacheBaselineCorrection(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0)
	if got := c.BaselineCorrection("label", "42"); got != 1.5 {
		t.Errorf("BaselineCorrection = %v, want 1.5", got)
	}
	c.BaselineCorrection("label", "42")
	if m.correctionCalls != 1 {
		t.Errorf("correction measured %d times, want 1", m.correctionCalls)
	}
}

func TestWidthCacheReset(t *testing.T) {
	m := &countingMeasurer{}
	c := NewWidthCache(m, 0)
	c.MeasureText("label", "42")
	c.Reset()
	c.MeasureText("label", "42")
	if m.measureCalls != 2 {
		t.Errorf("measurer called %d times after Reset, want 2", m.measureCalls)
	}
}

func TestFoldDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"1234.56", "1000.00"},
		{"0.01", "0.01"},
		{"E 9987", "E 0000"},
	}
	for _, tt := range tests {
		if got := foldDigits(tt.in); got != tt.want {
			t.Errorf("foldDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
