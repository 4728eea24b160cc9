// Package recording provides a canvas.Canvas implementation that captures
// drawing operations as typed command structures instead of producing pixels.
//
// Recorded commands are inspectable values, which makes the recorder the
// test double of choice for the label drawer: tests assert on the exact
// sequence of fills, strokes and text operations without a graphics backend.
// A recording can also be replayed onto any real Canvas.
//
// Typed command structs are used rather than a serialized byte stream so a
// failing test prints something readable.
package recording

import (
	charts "github.com/unity-systems/unity-lightweight-charts"
	"github.com/unity-systems/unity-lightweight-charts/canvas"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// State commands
	CmdSave CommandType = iota
	CmdRestore
	CmdScale

	// Style commands
	CmdSetFillColor
	CmdSetStrokeColor
	CmdSetLineWidth
	CmdSetFont
	CmdSetTextAlign
	CmdSetCompositeMode

	// Drawing commands
	CmdFillRect
	CmdFillRoundRect
	CmdStrokeRoundRect
	CmdFillCircle
	CmdStrokeLine
	CmdFillText
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:             "Save",
	CmdRestore:          "Restore",
	CmdScale:            "Scale",
	CmdSetFillColor:     "SetFillColor",
	CmdSetStrokeColor:   "SetStrokeColor",
	CmdSetLineWidth:     "SetLineWidth",
	CmdSetFont:          "SetFont",
	CmdSetTextAlign:     "SetTextAlign",
	CmdSetCompositeMode: "SetCompositeMode",
	CmdFillRect:         "FillRect",
	CmdFillRoundRect:    "FillRoundRect",
	CmdStrokeRoundRect:  "StrokeRoundRect",
	CmdFillCircle:       "FillCircle",
	CmdStrokeLine:       "StrokeLine",
	CmdFillText:         "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCmd records a Save call.
type SaveCmd struct{}

// RestoreCmd records a Restore call.
type RestoreCmd struct{}

// ScaleCmd records a Scale call.
type ScaleCmd struct {
	SX, SY float64
}

// SetFillColorCmd records a fill color change.
type SetFillColorCmd struct {
	Color charts.Color
}

// SetStrokeColorCmd records a stroke color change.
type SetStrokeColorCmd struct {
	Color charts.Color
}

// SetLineWidthCmd records a line width change.
type SetLineWidthCmd struct {
	Width float64
}

// SetFontCmd records a font selection.
type SetFontCmd struct {
	Name string
	Size float64
}

// SetTextAlignCmd records a text alignment change.
type SetTextAlignCmd struct {
	Align canvas.TextAlign
}

// SetCompositeModeCmd records a composite mode change.
type SetCompositeModeCmd struct {
	Mode canvas.CompositeMode
}

// FillRectCmd records an axis-aligned rectangle fill.
type FillRectCmd struct {
	X, Y, W, H float64
}

// FillRoundRectCmd records a rounded rectangle fill.
type FillRoundRectCmd struct {
	X, Y, W, H float64
	Radii      canvas.Radii
}

// StrokeRoundRectCmd records a rounded rectangle stroke.
type StrokeRoundRectCmd struct {
	X, Y, W, H float64
	Radii      canvas.Radii
}

// FillCircleCmd records a circle fill.
type FillCircleCmd struct {
	CX, CY, R float64
}

// StrokeLineCmd records a line stroke.
type StrokeLineCmd struct {
	X1, Y1, X2, Y2 float64
}

// FillTextCmd records a text fill. Y is the alphabetic baseline.
type FillTextCmd struct {
	Text string
	X, Y float64
}

func (SaveCmd) Type() CommandType             { return CmdSave }
func (RestoreCmd) Type() CommandType          { return CmdRestore }
func (ScaleCmd) Type() CommandType            { return CmdScale }
func (SetFillColorCmd) Type() CommandType     { return CmdSetFillColor }
func (SetStrokeColorCmd) Type() CommandType   { return CmdSetStrokeColor }
func (SetLineWidthCmd) Type() CommandType     { return CmdSetLineWidth }
func (SetFontCmd) Type() CommandType          { return CmdSetFont }
func (SetTextAlignCmd) Type() CommandType     { return CmdSetTextAlign }
func (SetCompositeModeCmd) Type() CommandType { return CmdSetCompositeMode }
func (FillRectCmd) Type() CommandType         { return CmdFillRect }
func (FillRoundRectCmd) Type() CommandType    { return CmdFillRoundRect }
func (StrokeRoundRectCmd) Type() CommandType  { return CmdStrokeRoundRect }
func (FillCircleCmd) Type() CommandType       { return CmdFillCircle }
func (StrokeLineCmd) Type() CommandType       { return CmdStrokeLine }
func (FillTextCmd) Type() CommandType         { return CmdFillText }
