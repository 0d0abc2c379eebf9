package epos

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Commands in this file are legal in both normal mode and page mode.

// Text produces a line of text.
//
// If only a bare text value is printed, the device may not flush it until a
// newline is included in Data.
type Text struct {
	// Data is the text to print, carried as element content.
	Data string
	// Font selects the device font.
	Font Font
	// Smoothing enables text smoothing.
	Smoothing *bool
	// DoubleWidth doubles the character width. When Width is also set, Width
	// takes precedence.
	DoubleWidth *bool
	// DoubleHeight doubles the character height. When Height is also set, Height
	// takes precedence.
	DoubleHeight *bool
	// Width is the character width scale, between 1 and 8.
	Width *uint8
	// Height is the character height scale, between 1 and 8.
	Height *uint8
	// Underline enables underlining.
	Underline *bool
	// Emph enables emphasis.
	Emph *bool
	// Color selects the print color.
	Color Color
	// Lang selects the language of the text.
	Lang Lang
	// Align selects the print position. In page mode the device only honors
	// alignment at the start of a line.
	Align Align
}

func (c *Text) Kind() Kind     { return KindText }
func (c *Text) modes() modeSet { return modeSetBoth }

func (c *Text) validate() error {
	if err := checkRange("text width", c.Width, 1, 8); err != nil {
		return err
	}
	if err := checkRange("text height", c.Height, 1, 8); err != nil {
		return err
	}

	return nil
}

func (c *Text) appendXML(sb *strings.Builder) {
	w := openElem(sb, "text")
	w.attrToken("font", c.Font.String())
	w.attrBool("smoothing", c.Smoothing)
	w.attrBool("dw", c.DoubleWidth)
	w.attrBool("dh", c.DoubleHeight)
	w.attrUint8("width", c.Width)
	w.attrUint8("height", c.Height)
	w.attrBool("ul", c.Underline)
	w.attrBool("em", c.Emph)
	w.attrToken("color", c.Color.String())
	w.attrToken("lang", c.Lang.String())
	w.attrToken("align", c.Align.String())
	w.closeText(c.Data)
}

// Feed feeds paper. At least one of the amount attributes should be set;
// a bare feed advances one line.
type Feed struct {
	// Unit is the paper feed amount in dots.
	Unit *uint8
	// Line is the paper feed amount in lines.
	Line *uint8
	// LineSpacing is the per-line paper feed amount in dots.
	LineSpacing *uint8
	// Pos is the paper feed position of label paper or black mark paper.
	Pos FeedPos
}

func (c *Feed) Kind() Kind      { return KindFeed }
func (c *Feed) modes() modeSet  { return modeSetBoth }
func (c *Feed) validate() error { return nil }

func (c *Feed) appendXML(sb *strings.Builder) {
	w := openElem(sb, "feed")
	w.attrUint8("unit", c.Unit)
	w.attrUint8("line", c.Line)
	w.attrUint8("linespc", c.LineSpacing)
	w.attrToken("pos", c.Pos.String())
	w.closeEmpty()
}

// Image prints a raster image. The raster bits are supplied pre-encoded in
// base64; this package does not model the bitmap format.
type Image struct {
	// Data is the base64-encoded raster image, carried as element content.
	Data string
	// Width is the raster width in dots.
	Width int32
	// Height is the raster height in dots.
	Height int32
}

func (c *Image) Kind() Kind     { return KindImage }
func (c *Image) modes() modeSet { return modeSetBoth }

func (c *Image) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image dimensions %dx%d are not positive", ErrInvalidPayload, c.Width, c.Height)
	}
	if _, err := base64.StdEncoding.DecodeString(c.Data); err != nil {
		return fmt.Errorf("%w: image data is not valid base64: %v", ErrInvalidPayload, err)
	}

	return nil
}

func (c *Image) appendXML(sb *strings.Builder) {
	w := openElem(sb, "image")
	w.attrInt32("width", c.Width)
	w.attrInt32("height", c.Height)
	w.closeText(c.Data)
}

// Barcode prints a 1D barcode.
type Barcode struct {
	// Data is the barcode content, carried as element content. Its structure is
	// checked against the rules of the selected symbology.
	Data string
	// Type is the barcode symbology. Required.
	Type BarcodeType
	// HRI selects where the human-readable interpretation is printed.
	HRI HRI
	// Font selects the HRI font.
	Font Font
	// Width is the module width, between 2 and 6.
	Width *uint8
	// Height is the barcode height in dots.
	Height *uint8
	// Align selects the print position.
	Align Align
	// Rotate prints the barcode rotated 90 degrees clockwise.
	Rotate *bool
}

func (c *Barcode) Kind() Kind     { return KindBarcode }
func (c *Barcode) modes() modeSet { return modeSetBoth }

func (c *Barcode) validate() error {
	if c.Type == BarcodeNone {
		return fmt.Errorf("%w: barcode type is required", ErrInvalidPayload)
	}
	if err := checkRange("barcode width", c.Width, 2, 6); err != nil {
		return err
	}

	return validateBarcodeData(c.Type, c.Data)
}

func (c *Barcode) appendXML(sb *strings.Builder) {
	w := openElem(sb, "barcode")
	w.attrToken("type", c.Type.String())
	w.attrToken("hri", c.HRI.String())
	w.attrToken("font", c.Font.String())
	w.attrUint8("width", c.Width)
	w.attrUint8("height", c.Height)
	w.attrToken("align", c.Align.String())
	w.attrBool("rotate", c.Rotate)
	w.closeText(c.Data)
}

// Symbol prints a 2D symbol.
type Symbol struct {
	// Data is the symbol content, carried as element content.
	Data string
	// Type is the symbol type. Required.
	Type SymbolType
	// Level is the error correction level.
	Level Level
	// Width is the module width in dots. The valid range depends on the symbol
	// type: PDF417 2-8, QR code 1-16, Aztec code 2-16, DataMatrix 2-16,
	// GS1 DataBar 2-8; MaxiCode ignores it.
	Width *uint8
	// Height is the module height, used by PDF417 only, between 2 and 8.
	Height *uint8
	// Size is the number of code words per row for PDF417, or the maximum
	// barcode width for GS1 DataBar Expanded Stacked.
	Size *uint8
	// Align selects the print position.
	Align Align
	// Rotate prints the symbol rotated 90 degrees clockwise.
	Rotate *bool
}

func (c *Symbol) Kind() Kind     { return KindSymbol }
func (c *Symbol) modes() modeSet { return modeSetBoth }

func (c *Symbol) validate() error {
	if c.Type == SymbolNone {
		return fmt.Errorf("%w: symbol type is required", ErrInvalidPayload)
	}

	return validateSymbol(c.Type, c.Data, c.Width, c.Height)
}

func (c *Symbol) appendXML(sb *strings.Builder) {
	w := openElem(sb, "symbol")
	w.attrToken("type", c.Type.String())
	w.attrToken("level", c.Level.String())
	w.attrUint8("width", c.Width)
	w.attrUint8("height", c.Height)
	w.attrUint8("size", c.Size)
	w.attrToken("align", c.Align.String())
	w.attrBool("rotate", c.Rotate)
	w.closeText(c.Data)
}
