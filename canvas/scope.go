package canvas

// BitmapSize is a size in physical pixels.
type BitmapSize struct {
	Width, Height int
}

// MediaSize is a size in logical pixels. Fractional at non-integer ratios.
type MediaSize struct {
	Width, Height float64
}

// BitmapScope grants access to a canvas in physical-pixel coordinates.
// Fill and stroke geometry computed for crisp edges draws through this scope.
type BitmapScope struct {
	Canvas     Canvas
	BitmapSize BitmapSize
	MediaSize  MediaSize

	// HorizontalPixelRatio and VerticalPixelRatio convert media to bitmap
	// coordinates. They may differ per axis and may be fractional.
	HorizontalPixelRatio float64
	VerticalPixelRatio   float64
}

// MediaScope grants access to a canvas in logical-pixel coordinates.
// Text layout draws through this scope; positions stay fractional.
type MediaScope struct {
	Canvas    Canvas
	MediaSize MediaSize
}

// Target binds a canvas to its pixel ratios and lends out scoped access to
// the two coordinate spaces. The renderer never queries a device pixel ratio
// itself; it is always handed the target's ratios through a scope.
type Target struct {
	canvas               Canvas
	horizontalPixelRatio float64
	verticalPixelRatio   float64
}

// NewTarget wraps a canvas with the given per-axis pixel ratios.
// Ratios that are zero or negative are treated as 1.
func NewTarget(c Canvas, horizontalPixelRatio, verticalPixelRatio float64) *Target {
	if horizontalPixelRatio <= 0 {
		horizontalPixelRatio = 1
	}
	if verticalPixelRatio <= 0 {
		verticalPixelRatio = 1
	}
	return &Target{
		canvas:               c,
		horizontalPixelRatio: horizontalPixelRatio,
		verticalPixelRatio:   verticalPixelRatio,
	}
}

// BitmapScope returns the physical-pixel view of the target.
func (t *Target) BitmapScope() BitmapScope {
	w, h := t.canvas.Width(), t.canvas.Height()
	return BitmapScope{
		Canvas:               t.canvas,
		BitmapSize:           BitmapSize{Width: w, Height: h},
		MediaSize:            t.mediaSize(w, h),
		HorizontalPixelRatio: t.horizontalPixelRatio,
		VerticalPixelRatio:   t.verticalPixelRatio,
	}
}

// MediaScope returns the logical-pixel view of the target.
func (t *Target) MediaScope() MediaScope {
	w, h := t.canvas.Width(), t.canvas.Height()
	return MediaScope{
		Canvas:    t.canvas,
		MediaSize: t.mediaSize(w, h),
	}
}

func (t *Target) mediaSize(bitmapW, bitmapH int) MediaSize {
	return MediaSize{
		Width:  float64(bitmapW) / t.horizontalPixelRatio,
		Height: float64(bitmapH) / t.verticalPixelRatio,
	}
}

// UseBitmapCoordinateSpace runs f against the canvas in physical-pixel
// coordinates. The canvas state is saved before and restored after f, so
// style changes made inside the scope do not leak.
func (t *Target) UseBitmapCoordinateSpace(f func(scope BitmapScope)) {
	t.canvas.Save()
	defer t.canvas.Restore()
	f(t.BitmapScope())
}

// UseMediaCoordinateSpace runs f against the canvas scaled so that one unit
// equals one logical pixel. State is saved and restored around f.
func (t *Target) UseMediaCoordinateSpace(f func(scope MediaScope)) {
	t.canvas.Save()
	defer t.canvas.Restore()
	t.canvas.Scale(t.horizontalPixelRatio, t.verticalPixelRatio)
	f(t.MediaScope())
}
