package priceaxis

import (
	"math"
	"reflect"
	"testing"

	"github.com/unity-systems/unity-lightweight-charts/canvas"
	"github.com/unity-systems/unity-lightweight-charts/recording"
)

func testScope(w, h int, hr, vr float64) canvas.BitmapScope {
	rec := recording.NewRecorder(w, h)
	return canvas.NewTarget(rec, hr, vr).BitmapScope()
}

func testContent() LabelContent {
	return LabelContent{
		Text:        "1234.56",
		Visible:     true,
		TickVisible: true,
	}
}

func TestComputeGeometryParity(t *testing.T) {
	content := testContent()
	style := DefaultLabelStyle()
	anchor := AnchorPosition{Coordinate: 100, Align: AlignRight}

	for _, vr := range []float64{1, 1.25, 1.5, 1.75, 2, 2.5, 3} {
		scope := testScope(200, 600, vr, vr)
		geom := ComputeGeometry(content, style, anchor, false, scope, 40, 0)
		if (geom.Bitmap.TotalHeight-geom.Bitmap.TickHeight)%2 != 0 {
			t.Errorf("vr=%v: total height %d and tick height %d have mismatched parity",
				vr, geom.Bitmap.TotalHeight, geom.Bitmap.TickHeight)
		}
	}
}

func TestComputeGeometryHeights(t *testing.T) {
	content := testContent()
	style := DefaultLabelStyle()
	anchor := AnchorPosition{Coordinate: 100, Align: AlignRight}

	t.Run("ratio 2", func(t *testing.T) {
		scope := testScope(200, 600, 2, 2)
		geom := ComputeGeometry(content, style, anchor, false, scope, 40, 0)
		if got := geom.Bitmap.TotalHeight; got != 32 {
			t.Errorf("TotalHeight = %d, want 32", got)
		}
		if got := geom.Bitmap.TickHeight; got != 2 {
			t.Errorf("TickHeight = %d, want 2", got)
		}
	})

	t.Run("ratio 1.5 nudges to odd", func(t *testing.T) {
		scope := testScope(200, 600, 1.5, 1.5)
		geom := ComputeGeometry(content, style, anchor, false, scope, 40, 0)
		if got := geom.Bitmap.TickHeight; got != 1 {
			t.Errorf("TickHeight = %d, want 1", got)
		}
		// 16 * 1.5 = 24 is even, so the engine must bump it to 25.
		if got := geom.Bitmap.TotalHeight; got != 25 {
			t.Errorf("TotalHeight = %d, want 25", got)
		}
	})
}

func TestComputeGeometryDeterministic(t *testing.T) {
	content := testContent()
	content.SeparatorVisible = true
	style := DefaultLabelStyle()
	anchor := AnchorPosition{Coordinate: 123.4, Align: AlignRight}
	scope := testScope(200, 600, 1.25, 1.25)

	a := ComputeGeometry(content, style, anchor, true, scope, 41.5, 1.5)
	b := ComputeGeometry(content, style, anchor, true, scope, 41.5, 1.5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different geometry:\n%+v\n%+v", a, b)
	}
}

func TestComputeGeometryAlignment(t *testing.T) {
	content := testContent()
	style := DefaultLabelStyle()
	scope := testScope(200, 600, 1, 1)

	right := ComputeGeometry(content, style, AnchorPosition{Coordinate: 100, Align: AlignRight}, false, scope, 40, 0)
	left := ComputeGeometry(content, style, AnchorPosition{Coordinate: 100, Align: AlignLeft}, false, scope, 40, 0)

	if !right.AlignRight || left.AlignRight {
		t.Fatalf("AlignRight flags wrong: right=%v left=%v", right.AlignRight, left.AlignRight)
	}
	w := scope.BitmapSize.Width
	if got, want := right.Bitmap.XInside, w-left.Bitmap.XInside; got != want {
		t.Errorf("XInside = %d, want mirror %d", got, want)
	}
	if got, want := right.Bitmap.XOutside, w-left.Bitmap.XOutside; got != want {
		t.Errorf("XOutside = %d, want mirror %d", got, want)
	}
	if got, want := right.Bitmap.XTick, w-left.Bitmap.XTick; got != want {
		t.Errorf("XTick = %d, want mirror %d", got, want)
	}
	if right.Bitmap.TotalWidth != left.Bitmap.TotalWidth {
		t.Errorf("TotalWidth differs by alignment: %d vs %d",
			right.Bitmap.TotalWidth, left.Bitmap.TotalWidth)
	}
}

func TestComputeGeometryWidth(t *testing.T) {
	content := testContent()
	style := DefaultLabelStyle()
	anchor := AnchorPosition{Coordinate: 100, Align: AlignRight}
	scope := testScope(200, 600, 1, 1)

	t.Run("close affordance widens", func(t *testing.T) {
		without := ComputeGeometry(content, style, anchor, false, scope, 40, 0)
		with := ComputeGeometry(content, style, anchor, true, scope, 40, 0)
		if got, want := with.Bitmap.TotalWidth-without.Bitmap.TotalWidth, int(CloseAffordanceWidth); got != want {
			t.Errorf("close affordance added %d px, want %d", got, want)
		}
	})

	t.Run("hidden tick releases space", func(t *testing.T) {
		reserved := content
		reserved.TickVisible = false
		released := reserved
		released.MoveTextAwayFromTick = true

		a := ComputeGeometry(reserved, style, anchor, false, scope, 40, 0)
		b := ComputeGeometry(released, style, anchor, false, scope, 40, 0)
		if got, want := a.Bitmap.TotalWidth-b.Bitmap.TotalWidth, int(style.TickLength); got != want {
			t.Errorf("hiding the tick released %d px, want %d", got, want)
		}
	})
}

func TestComputeGeometryScaledFields(t *testing.T) {
	content := testContent()
	content.SeparatorVisible = true
	style := DefaultLabelStyle()
	anchor := AnchorPosition{Coordinate: 100, Align: AlignRight}
	scope := testScope(400, 1200, 2, 2)

	geom := ComputeGeometry(content, style, anchor, false, scope, 40, 0)

	if got, want := geom.Bitmap.Radius, style.CornerRadius*2; got != want {
		t.Errorf("Radius = %v, want %v (pre-scaled)", got, want)
	}
	if got, want := geom.Bitmap.HorzBorder, 2; got != want {
		t.Errorf("HorzBorder = %d, want %d", got, want)
	}
	if got, want := geom.Bitmap.Separator, 2; got != want {
		t.Errorf("Separator = %d, want %d", got, want)
	}
	if got, want := geom.Bitmap.Right, 400; got != want {
		t.Errorf("Right = %d, want %d", got, want)
	}
	if got, want := geom.Media.YTop, float64(geom.Bitmap.YTop)/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("Media.YTop = %v, want %v", got, want)
	}
	if got, want := geom.Media.YBottom, float64(geom.Bitmap.YBottom)/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("Media.YBottom = %v, want %v", got, want)
	}
}

func TestComputeGeometryFixedCoordinate(t *testing.T) {
	content := testContent()
	style := DefaultLabelStyle()
	scope := testScope(200, 600, 1, 1)

	free := ComputeGeometry(content, style, AnchorPosition{Coordinate: 100, Align: AlignRight}, false, scope, 40, 0)
	pinned := ComputeGeometry(content, style, AnchorPosition{
		Coordinate:         100,
		FixedCoordinate:    150,
		HasFixedCoordinate: true,
		Align:              AlignRight,
	}, false, scope, 40, 0)

	if free.Bitmap.YMid == pinned.Bitmap.YMid {
		t.Error("fixed coordinate did not move the label")
	}
	if got, want := pinned.Bitmap.YMid-free.Bitmap.YMid, 50; got != want {
		t.Errorf("fixed coordinate moved label by %d, want %d", got, want)
	}
}

func TestLabelHeight(t *testing.T) {
	style := DefaultLabelStyle()

	tests := []struct {
		name    string
		content LabelContent
		want    float64
	}{
		{"visible text", LabelContent{Text: "42", Visible: true}, 16},
		{"invisible", LabelContent{Text: "42"}, 0},
		{"empty", LabelContent{Visible: true}, 0},
		{"icon only", LabelContent{IconGlyph: '⚑', Visible: true}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelHeight(tt.content, style); got != tt.want {
				t.Errorf("LabelHeight = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("padding offsets stack", func(t *testing.T) {
		s := style
		s.PaddingTopOffset = 3
		s.PaddingBottomOffset = 1
		if got := LabelHeight(LabelContent{Text: "42", Visible: true}, s); got != 20 {
			t.Errorf("LabelHeight = %v, want 20", got)
		}
	})
}
