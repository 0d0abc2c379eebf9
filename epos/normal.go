package epos

import (
	"fmt"
	"strings"
)

// Commands in this file are legal in normal mode only.

// Cut cuts the paper.
type Cut struct {
	// Type is the type of cut to perform. Required.
	Type CutType
}

func (c *Cut) Kind() Kind     { return KindCut }
func (c *Cut) modes() modeSet { return modeSetNormal }

func (c *Cut) validate() error {
	if c.Type == CutNone {
		return fmt.Errorf("%w: cut type is required", ErrInvalidPayload)
	}

	return nil
}

func (c *Cut) appendXML(sb *strings.Builder) {
	w := openElem(sb, "cut")
	w.attrToken("type", c.Type.String())
	w.closeEmpty()
}

// Hline draws a horizontal ruled line across the paper.
type Hline struct {
	// X1 is the draw start position in dots.
	X1 uint16
	// X2 is the draw end position in dots.
	X2 uint16
	// Style is the line style.
	Style LineStyle
}

func (c *Hline) Kind() Kind      { return KindHline }
func (c *Hline) modes() modeSet  { return modeSetNormal }
func (c *Hline) validate() error { return nil }

func (c *Hline) appendXML(sb *strings.Builder) {
	w := openElem(sb, "hline")
	w.attrUint16("x1", c.X1)
	w.attrUint16("x2", c.X2)
	w.attrToken("style", c.Style.String())
	w.closeEmpty()
}
