package recording

import (
	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

// Recorder captures canvas operations as commands. It mirrors the
// canvas.Canvas API but records instead of rasterizing.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ canvas.Canvas = (*Recorder)(nil)

// NewRecorder creates a Recorder posing as a canvas of the given
// physical-pixel dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Commands returns the recorded command sequence in draw order.
// The returned slice is owned by the Recorder; callers must not modify it.
func (r *Recorder) Commands() []Command { return r.commands }

// Reset discards all recorded commands, keeping capacity.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// CountType returns how many recorded commands have the given type.
func (r *Recorder) CountType(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// FilterType returns the recorded commands of the given type, in order.
func (r *Recorder) FilterType(t CommandType) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			out = append(out, cmd)
		}
	}
	return out
}

// Types returns the command types in recorded order. Handy for asserting on
// draw-order protocols without caring about coordinates.
func (r *Recorder) Types() []CommandType {
	out := make([]CommandType, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = cmd.Type()
	}
	return out
}

// Replay plays the recorded commands back onto a real canvas.
func (r *Recorder) Replay(dst canvas.Canvas) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCmd:
			dst.Save()
		case RestoreCmd:
			dst.Restore()
		case ScaleCmd:
			dst.Scale(c.SX, c.SY)
		case SetFillColorCmd:
			dst.SetFillColor(c.Color)
		case SetStrokeColorCmd:
			dst.SetStrokeColor(c.Color)
		case SetLineWidthCmd:
			dst.SetLineWidth(c.Width)
		case SetFontCmd:
			dst.SetFont(c.Name, c.Size)
		case SetTextAlignCmd:
			dst.SetTextAlign(c.Align)
		case SetCompositeModeCmd:
			dst.SetCompositeMode(c.Mode)
		case FillRectCmd:
			dst.FillRect(c.X, c.Y, c.W, c.H)
		case FillRoundRectCmd:
			dst.FillRoundRect(c.X, c.Y, c.W, c.H, c.Radii)
		case StrokeRoundRectCmd:
			dst.StrokeRoundRect(c.X, c.Y, c.W, c.H, c.Radii)
		case FillCircleCmd:
			dst.FillCircle(c.CX, c.CY, c.R)
		case StrokeLineCmd:
			dst.StrokeLine(c.X1, c.Y1, c.X2, c.Y2)
		case FillTextCmd:
			dst.FillText(c.Text, c.X, c.Y)
		}
	}
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save()    { r.record(SaveCmd{}) }
func (r *Recorder) Restore() { r.record(RestoreCmd{}) }

func (r *Recorder) Scale(sx, sy float64) {
	r.record(ScaleCmd{SX: sx, SY: sy})
}

func (r *Recorder) SetFillColor(c charts.Color) {
	r.record(SetFillColorCmd{Color: c})
}

func (r *Recorder) SetStrokeColor(c charts.Color) {
	r.record(SetStrokeColorCmd{Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(SetLineWidthCmd{Width: w})
}

func (r *Recorder) SetFont(name string, size float64) {
	r.record(SetFontCmd{Name: name, Size: size})
}

func (r *Recorder) SetTextAlign(align canvas.TextAlign) {
	r.record(SetTextAlignCmd{Align: align})
}

func (r *Recorder) SetCompositeMode(mode canvas.CompositeMode) {
	r.record(SetCompositeModeCmd{Mode: mode})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(FillRectCmd{X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRoundRect(x, y, w, h float64, radii canvas.Radii) {
	r.record(FillRoundRectCmd{X: x, Y: y, W: w, H: h, Radii: radii})
}

func (r *Recorder) StrokeRoundRect(x, y, w, h float64, radii canvas.Radii) {
	r.record(StrokeRoundRectCmd{X: x, Y: y, W: w, H: h, Radii: radii})
}

func (r *Recorder) FillCircle(cx, cy, radius float64) {
	r.record(FillCircleCmd{CX: cx, CY: cy, R: radius})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64) {
	r.record(StrokeLineCmd{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.record(FillTextCmd{Text: s, X: x, Y: y})
}
