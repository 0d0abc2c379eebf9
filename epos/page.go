package epos

import (
	"fmt"
	"strings"
)

// Commands in this file are legal in page mode only.

// Area defines the rectangular print area that subsequent page-mode commands
// are placed in.
type Area struct {
	// X is the origin of the print area on the horizontal axis, in dots.
	X uint16
	// Y is the origin of the print area on the vertical axis, in dots.
	Y uint16
	// Width is the print area width in dots.
	Width uint16
	// Height is the print area height in dots.
	Height uint16
}

func (c *Area) Kind() Kind     { return KindArea }
func (c *Area) modes() modeSet { return modeSetPage }

func (c *Area) validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: print area %dx%d is empty", ErrInvalidPayload, c.Width, c.Height)
	}

	return nil
}

func (c *Area) appendXML(sb *strings.Builder) {
	w := openElem(sb, "area")
	w.attrUint16("x", c.X)
	w.attrUint16("y", c.Y)
	w.attrUint16("width", c.Width)
	w.attrUint16("height", c.Height)
	w.closeEmpty()
}

// Rectangle draws a rectangle inside the print area.
type Rectangle struct {
	// X1 is the horizontal draw start position in dots.
	X1 uint16
	// Y1 is the vertical draw start position in dots.
	Y1 uint16
	// X2 is the horizontal draw end position in dots.
	X2 uint16
	// Y2 is the vertical draw end position in dots.
	Y2 uint16
	// Style is the line style.
	Style LineStyle
}

func (c *Rectangle) Kind() Kind      { return KindRectangle }
func (c *Rectangle) modes() modeSet  { return modeSetPage }
func (c *Rectangle) validate() error { return nil }

func (c *Rectangle) appendXML(sb *strings.Builder) {
	w := openElem(sb, "rectangle")
	w.attrUint16("x1", c.X1)
	w.attrUint16("y1", c.Y1)
	w.attrUint16("x2", c.X2)
	w.attrUint16("y2", c.Y2)
	w.attrToken("style", c.Style.String())
	w.closeEmpty()
}

// Line draws a line inside the print area.
type Line struct {
	// X1 is the horizontal draw start position in dots.
	X1 uint16
	// Y1 is the vertical draw start position in dots.
	Y1 uint16
	// X2 is the horizontal draw end position in dots.
	X2 uint16
	// Y2 is the vertical draw end position in dots.
	Y2 uint16
	// Style is the line style.
	Style LineStyle
}

func (c *Line) Kind() Kind      { return KindLine }
func (c *Line) modes() modeSet  { return modeSetPage }
func (c *Line) validate() error { return nil }

func (c *Line) appendXML(sb *strings.Builder) {
	w := openElem(sb, "line")
	w.attrUint16("x1", c.X1)
	w.attrUint16("y1", c.Y1)
	w.attrUint16("x2", c.X2)
	w.attrUint16("y2", c.Y2)
	w.attrToken("style", c.Style.String())
	w.closeEmpty()
}

// Direction sets the print direction inside the print area.
type Direction struct {
	// Dir is the print direction. Required.
	Dir PrintDirection
}

func (c *Direction) Kind() Kind     { return KindDirection }
func (c *Direction) modes() modeSet { return modeSetPage }

func (c *Direction) validate() error {
	if c.Dir == DirectionNone {
		return fmt.Errorf("%w: print direction is required", ErrInvalidPayload)
	}

	return nil
}

func (c *Direction) appendXML(sb *strings.Builder) {
	w := openElem(sb, "direction")
	w.attrToken("dir", c.Dir.String())
	w.closeEmpty()
}

// Position sets the print start position inside the print area.
type Position struct {
	// X is the print start position on the horizontal axis, in dots.
	X uint16
	// Y is the print start position on the vertical axis, in dots.
	Y uint16
}

func (c *Position) Kind() Kind      { return KindPosition }
func (c *Position) modes() modeSet  { return modeSetPage }
func (c *Position) validate() error { return nil }

func (c *Position) appendXML(sb *strings.Builder) {
	w := openElem(sb, "position")
	w.attrUint16("x", c.X)
	w.attrUint16("y", c.Y)
	w.closeEmpty()
}
