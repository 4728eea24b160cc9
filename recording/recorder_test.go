package recording

import (
	"reflect"
	"testing"

	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

func TestRecorderCapturesInOrder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Save()
	r.SetFillColor(charts.White)
	r.FillRect(1, 2, 3, 4)
	r.FillText("42.5", 10, 20)
	r.Restore()

	want := []CommandType{CmdSave, CmdSetFillColor, CmdFillRect, CmdFillText, CmdRestore}
	if got := r.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}

func TestRecorderCommandValues(t *testing.T) {
	r := NewRecorder(100, 50)
	r.FillRoundRect(5, 6, 20, 10, canvas.Radii{2, 2, 0, 0})

	cmds := r.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	got, ok := cmds[0].(FillRoundRectCmd)
	if !ok {
		t.Fatalf("command is %T, want FillRoundRectCmd", cmds[0])
	}
	want := FillRoundRectCmd{X: 5, Y: 6, W: 20, H: 10, Radii: canvas.Radii{2, 2, 0, 0}}
	if got != want {
		t.Errorf("recorded %+v, want %+v", got, want)
	}
}

func TestRecorderCountAndFilter(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillRect(0, 0, 1, 1)
	r.StrokeLine(0, 0, 1, 1)
	r.FillRect(2, 2, 1, 1)

	if got := r.CountType(CmdFillRect); got != 2 {
		t.Errorf("CountType(CmdFillRect) = %d, want 2", got)
	}
	if got := len(r.FilterType(CmdStrokeLine)); got != 1 {
		t.Errorf("len(FilterType(CmdStrokeLine)) = %d, want 1", got)
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillRect(0, 0, 1, 1)
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(64, 64)
	src.Save()
	src.Scale(2, 2)
	src.SetFillColor(charts.Black)
	src.SetFont("label", 11)
	src.SetTextAlign(canvas.TextAlignRight)
	src.SetCompositeMode(canvas.CompositeCopy)
	src.SetStrokeColor(charts.White)
	src.SetLineWidth(3)
	src.FillRoundRect(0, 0, 10, 10, canvas.UniformRadii(2))
	src.StrokeRoundRect(1, 1, 8, 8, canvas.UniformRadii(1))
	src.FillCircle(5, 5, 2)
	src.StrokeLine(0, 0, 9, 9)
	src.FillText("x", 4, 4)
	src.Restore()

	dst := NewRecorder(64, 64)
	src.Replay(dst)
	if !reflect.DeepEqual(dst.Commands(), src.Commands()) {
		t.Errorf("replayed commands differ:\n got %v\nwant %v", dst.Commands(), src.Commands())
	}
}

func TestCommandTypeString(t *testing.T) {
	if got := CmdFillRoundRect.String(); got != "FillRoundRect" {
		t.Errorf("CmdFillRoundRect.String() = %q", got)
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q, want Unknown", got)
	}
}
