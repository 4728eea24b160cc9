package charts

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"short rgb", "#f00", color.NRGBA{R: 255, A: 255}},
		{"short rgba", "#f008", color.NRGBA{R: 255, A: 136}},
		{"long rgb", "#2196f3", color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 255}},
		{"long rgba", "#2196f380", color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0x80}},
		{"no hash", "2196f3", color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 255}},
		{"invalid length", "#12345", color.NRGBA{A: 255}},
		{"empty", "", color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex).NRGBA()
			if got != tt.want {
				t.Errorf("Hex(%q).NRGBA() = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorPredicates(t *testing.T) {
	tests := []struct {
		name        string
		c           Color
		transparent bool
		opaque      bool
	}{
		{"zero value", Color{}, true, false},
		{"transparent sentinel", Transparent, true, false},
		{"opaque black", Black, false, true},
		{"half alpha", RGBA(1, 0, 0, 0.5), false, false},
		{"opaque white", White, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsTransparent(); got != tt.transparent {
				t.Errorf("IsTransparent() = %v, want %v", got, tt.transparent)
			}
			if got := tt.c.IsOpaque(); got != tt.opaque {
				t.Errorf("IsOpaque() = %v, want %v", got, tt.opaque)
			}
		})
	}
}

func TestColorEquality(t *testing.T) {
	if Hex("#2196f3") != Hex("2196f3") {
		t.Error("identical colors compare unequal")
	}
	if Hex("#2196f3") == Hex("#1e88e5") {
		t.Error("distinct colors compare equal")
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	orig := color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	got := FromColor(orig).NRGBA()
	if got != orig {
		t.Errorf("FromColor roundtrip = %v, want %v", got, orig)
	}
}

func TestHexString(t *testing.T) {
	if got := Hex("#2196f3").HexString(); got != "#2196f3" {
		t.Errorf("HexString() = %q, want %q", got, "#2196f3")
	}
}
