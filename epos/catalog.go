package epos

import (
	"fmt"
	"strconv"
)

// parseToken resolves a wire token against a variant-to-token table.
func parseToken[T comparable](tokens map[T]string, token string) (T, bool) {
	for variant, tok := range tokens {
		if tok == token {
			return variant, true
		}
	}

	var zero T

	return zero, false
}

// Align specifies the print position of an element.
// The zero value omits the attribute and leaves the device default in effect.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignTokens = map[Align]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the wire token of the alignment, or an empty string for the
// unset value.
func (a Align) String() string { return alignTokens[a] }

// ParseAlign decodes a wire token into an Align variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseAlign(token string) (Align, error) {
	if a, ok := parseToken(alignTokens, token); ok {
		return a, nil
	}
	return AlignNone, fmt.Errorf("%w: %q is not an alignment", ErrUnknownCatalogValue, token)
}

// Font specifies one of the device fonts.
// The zero value omits the attribute and leaves the device default in effect.
type Font int

const (
	FontNone Font = iota
	FontA
	FontB
	FontC
	FontD
	FontE
)

var fontTokens = map[Font]string{
	FontA: "font_a",
	FontB: "font_b",
	FontC: "font_c",
	FontD: "font_d",
	FontE: "font_e",
}

// String returns the wire token of the font, or an empty string for the unset value.
func (f Font) String() string { return fontTokens[f] }

// ParseFont decodes a wire token into a Font variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseFont(token string) (Font, error) {
	if f, ok := parseToken(fontTokens, token); ok {
		return f, nil
	}
	return FontNone, fmt.Errorf("%w: %q is not a font", ErrUnknownCatalogValue, token)
}

// CutType specifies the type of paper cut to perform.
type CutType int

const (
	// CutNone is the unset value; a cut command requires an explicit type.
	CutNone CutType = iota
	// CutNoFeed cuts without feeding.
	CutNoFeed
	// CutFeed feeds to the cut position, then cuts.
	CutFeed
	// CutReserve prints until the cut position.
	CutReserve
)

var cutTokens = map[CutType]string{
	CutNoFeed:  "no_feed",
	CutFeed:    "feed",
	CutReserve: "reserve",
}

// String returns the wire token of the cut type, or an empty string for the unset value.
func (c CutType) String() string { return cutTokens[c] }

// ParseCutType decodes a wire token into a CutType variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseCutType(token string) (CutType, error) {
	if c, ok := parseToken(cutTokens, token); ok {
		return c, nil
	}
	return CutNone, fmt.Errorf("%w: %q is not a cut type", ErrUnknownCatalogValue, token)
}

// FeedPos specifies the paper feed position of label paper or black mark paper.
// The zero value omits the attribute and leaves the device default in effect.
type FeedPos int

const (
	FeedPosNone FeedPos = iota
	// FeedPosPeeling feeds to the peeling position.
	FeedPosPeeling
	// FeedPosCutting feeds to the cutting position.
	FeedPosCutting
	// FeedPosCurrentTOF feeds to the head position of the current label.
	FeedPosCurrentTOF
	// FeedPosNextTOF feeds to the head position of the next label.
	FeedPosNextTOF
)

var feedPosTokens = map[FeedPos]string{
	FeedPosPeeling:    "peeling",
	FeedPosCutting:    "cutting",
	FeedPosCurrentTOF: "current_tof",
	FeedPosNextTOF:    "next_tof",
}

// String returns the wire token of the feed position, or an empty string for the unset value.
func (p FeedPos) String() string { return feedPosTokens[p] }

// ParseFeedPos decodes a wire token into a FeedPos variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseFeedPos(token string) (FeedPos, error) {
	if p, ok := parseToken(feedPosTokens, token); ok {
		return p, nil
	}
	return FeedPosNone, fmt.Errorf("%w: %q is not a feed position", ErrUnknownCatalogValue, token)
}

// HRI specifies the position of the human-readable interpretation printed with a
// 1D barcode.
// The zero value omits the attribute and leaves the device default in effect.
type HRI int

const (
	HRIUnset HRI = iota
	HRINone
	HRIAbove
	HRIBelow
	HRIBoth
)

var hriTokens = map[HRI]string{
	HRINone:  "none",
	HRIAbove: "above",
	HRIBelow: "below",
	HRIBoth:  "both",
}

// String returns the wire token of the HRI position, or an empty string for the unset value.
func (h HRI) String() string { return hriTokens[h] }

// ParseHRI decodes a wire token into an HRI variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseHRI(token string) (HRI, error) {
	if h, ok := parseToken(hriTokens, token); ok {
		return h, nil
	}
	return HRIUnset, fmt.Errorf("%w: %q is not an HRI position", ErrUnknownCatalogValue, token)
}

// LineStyle specifies the style of ruled lines drawn by hline, line and
// rectangle commands.
// The zero value omits the attribute and leaves the device default in effect.
type LineStyle int

const (
	LineStyleNone LineStyle = iota
	LineThin
	LineThinDouble
	LineMedium
	LineMediumDouble
	LineThick
	LineThickDouble
)

var lineStyleTokens = map[LineStyle]string{
	LineThin:         "thin",
	LineThinDouble:   "thin_double",
	LineMedium:       "medium",
	LineMediumDouble: "medium_double",
	LineThick:        "thick",
	LineThickDouble:  "thick_double",
}

// String returns the wire token of the line style, or an empty string for the unset value.
func (s LineStyle) String() string { return lineStyleTokens[s] }

// ParseLineStyle decodes a wire token into a LineStyle variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseLineStyle(token string) (LineStyle, error) {
	if s, ok := parseToken(lineStyleTokens, token); ok {
		return s, nil
	}
	return LineStyleNone, fmt.Errorf("%w: %q is not a line style", ErrUnknownCatalogValue, token)
}

// PrintDirection specifies the print direction inside a page-mode print area.
type PrintDirection int

const (
	// DirectionNone is the unset value; a direction command requires an explicit
	// direction.
	DirectionNone PrintDirection = iota
	DirectionLeftToRight
	DirectionBottomToTop
	DirectionRightToLeft
	DirectionTopToBottom
)

var directionTokens = map[PrintDirection]string{
	DirectionLeftToRight: "left_to_right",
	DirectionBottomToTop: "bottom_to_top",
	DirectionRightToLeft: "right_to_left",
	DirectionTopToBottom: "top_to_bottom",
}

// String returns the wire token of the print direction, or an empty string for the unset value.
func (d PrintDirection) String() string { return directionTokens[d] }

// ParsePrintDirection decodes a wire token into a PrintDirection variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParsePrintDirection(token string) (PrintDirection, error) {
	if d, ok := parseToken(directionTokens, token); ok {
		return d, nil
	}
	return DirectionNone, fmt.Errorf("%w: %q is not a print direction", ErrUnknownCatalogValue, token)
}

// Color specifies the print color for devices with multi-color support.
// The zero value omits the attribute and leaves the device default in effect.
type Color int

const (
	ColorUnset Color = iota
	ColorNone
	Color1
	Color2
	Color3
	Color4
)

var colorTokens = map[Color]string{
	ColorNone: "none",
	Color1:    "color_1",
	Color2:    "color_2",
	Color3:    "color_3",
	Color4:    "color_4",
}

// String returns the wire token of the color, or an empty string for the unset value.
func (c Color) String() string { return colorTokens[c] }

// ParseColor decodes a wire token into a Color variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseColor(token string) (Color, error) {
	if c, ok := parseToken(colorTokens, token); ok {
		return c, nil
	}
	return ColorUnset, fmt.Errorf("%w: %q is not a color", ErrUnknownCatalogValue, token)
}

// Lang specifies the language used by a text command.
//
// The catalog declares the languages the vendor documents; device firmwares
// accept additional region tags, so unknown tokens are preserved through the
// LangOther fallback rather than rejected.
// The zero value omits the attribute and leaves the device default in effect.
type Lang struct {
	code string
}

var (
	LangDe     = Lang{"de"}
	LangFr     = Lang{"fr"}
	LangEn     = Lang{"en"}
	LangIt     = Lang{"it"}
	LangEs     = Lang{"es"}
	LangJa     = Lang{"ja"}
	LangJaJP   = Lang{"ja-jp"}
	LangKo     = Lang{"ko"}
	LangKoKR   = Lang{"ko-kr"}
	LangZhHans = Lang{"zh-hans"}
	LangZhCN   = Lang{"zh-cn"}
	LangZhHant = Lang{"zh-hant"}
	LangZhTW   = Lang{"zh-tw"}
)

// LangOther carries a language token outside the declared catalog verbatim.
func LangOther(code string) Lang { return Lang{code} }

// String returns the wire token of the language, or an empty string for the unset value.
func (l Lang) String() string { return l.code }

// ParseLang decodes a wire token into a Lang value. Tokens outside the declared
// catalog are preserved in the LangOther fallback; ParseLang never fails.
func ParseLang(token string) Lang { return Lang{token} }

// Level specifies the error correction level of a 2D symbol.
//
// The level_0 through level_8 variants are used by PDF417, level_l through
// level_h by QR codes, and Aztec codes take a plain integer between 5 and 95
// through LevelInt.
// The zero value omits the attribute and leaves the device default in effect.
type Level struct {
	token string
}

var (
	Level0       = Level{"level_0"}
	Level1       = Level{"level_1"}
	Level2       = Level{"level_2"}
	Level3       = Level{"level_3"}
	Level4       = Level{"level_4"}
	Level5       = Level{"level_5"}
	Level6       = Level{"level_6"}
	Level7       = Level{"level_7"}
	Level8       = Level{"level_8"}
	LevelL       = Level{"level_l"}
	LevelM       = Level{"level_m"}
	LevelQ       = Level{"level_q"}
	LevelH       = Level{"level_h"}
	LevelDefault = Level{"default"}
)

// LevelInt carries a plain integer error correction level, as used by Aztec
// codes.
func LevelInt(v uint32) Level { return Level{strconv.FormatUint(uint64(v), 10)} }

// String returns the wire token of the level, or an empty string for the unset value.
func (l Level) String() string { return l.token }

// ParseLevel decodes a wire token into a Level value. Tokens outside the
// declared catalog are preserved verbatim; ParseLevel never fails.
func ParseLevel(token string) Level { return Level{token} }
