// Package primitives holds the shared vocabulary of the rendering
// pipeline: path command codes, vertices, points and rectangles,
// fixed-point coordinate scales and the rounding helpers everything
// else is built on.
package primitives

// Cmd is a path command code. The low nibble carries the command kind,
// the high nibble carries orientation and close flags.
type Cmd uint32

const (
	CmdStop    Cmd = 0
	CmdMoveTo  Cmd = 1
	CmdLineTo  Cmd = 2
	CmdCurve3  Cmd = 3
	CmdCurve4  Cmd = 4
	CmdEndPoly Cmd = 0x0F

	CmdMask Cmd = 0x0F
)

// Flag bits stored in the high nibble of a Cmd.
const (
	FlagNone  Cmd = 0
	FlagCCW   Cmd = 0x10
	FlagCW    Cmd = 0x20
	FlagClose Cmd = 0x40

	FlagMask Cmd = 0xF0
)

// Kind strips the flag bits.
func (c Cmd) Kind() Cmd { return c & CmdMask }

// IsVertex reports whether the command carries a coordinate pair.
func (c Cmd) IsVertex() bool {
	k := c.Kind()
	return k >= CmdMoveTo && k < CmdEndPoly
}

// IsDrawing reports whether the command extends the current contour.
func (c Cmd) IsDrawing() bool {
	k := c.Kind()
	return k >= CmdLineTo && k < CmdEndPoly
}

func (c Cmd) IsStop() bool   { return c.Kind() == CmdStop }
func (c Cmd) IsMoveTo() bool { return c.Kind() == CmdMoveTo }
func (c Cmd) IsLineTo() bool { return c.Kind() == CmdLineTo }
func (c Cmd) IsCurve3() bool { return c.Kind() == CmdCurve3 }
func (c Cmd) IsCurve4() bool { return c.Kind() == CmdCurve4 }

// IsCurve reports whether the command is either curve kind.
func (c Cmd) IsCurve() bool {
	k := c.Kind()
	return k == CmdCurve3 || k == CmdCurve4
}

func (c Cmd) IsEndPoly() bool { return c.Kind() == CmdEndPoly }

// IsNextPoly reports whether the command terminates the current contour.
func (c Cmd) IsNextPoly() bool {
	return c.IsStop() || c.IsMoveTo() || c.IsEndPoly()
}

func (c Cmd) IsClose() bool    { return c&FlagClose != 0 }
func (c Cmd) IsCW() bool       { return c&FlagCW != 0 }
func (c Cmd) IsCCW() bool      { return c&FlagCCW != 0 }
func (c Cmd) IsOriented() bool { return c&(FlagCW|FlagCCW) != 0 }

// CloseFlag extracts the close bit.
func (c Cmd) CloseFlag() Cmd { return c & FlagClose }

// Orientation extracts the orientation bits.
func (c Cmd) Orientation() Cmd { return c & (FlagCW | FlagCCW) }

// ClearOrientation drops the orientation bits.
func (c Cmd) ClearOrientation() Cmd { return c &^ (FlagCW | FlagCCW) }

// SetOrientation replaces the orientation bits.
func (c Cmd) SetOrientation(o Cmd) Cmd {
	return c.ClearOrientation() | o.Orientation()
}
