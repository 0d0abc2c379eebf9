package epos

import "strings"

// Kind identifies the kind of a print command.
type Kind int

const (
	KindText Kind = iota
	KindFeed
	KindImage
	KindBarcode
	KindSymbol
	KindCut
	KindHline
	KindArea
	KindRectangle
	KindLine
	KindDirection
	KindPosition
)

var kindNames = map[Kind]string{
	KindText:      "text",
	KindFeed:      "feed",
	KindImage:     "image",
	KindBarcode:   "barcode",
	KindSymbol:    "symbol",
	KindCut:       "cut",
	KindHline:     "hline",
	KindArea:      "area",
	KindRectangle: "rectangle",
	KindLine:      "line",
	KindDirection: "direction",
	KindPosition:  "position",
}

// String returns the element name of the command kind.
func (k Kind) String() string { return kindNames[k] }

// modeSet is a bit set of the modes a command kind is legal in.
type modeSet uint8

const (
	modeSetNormal modeSet = 1 << iota
	modeSetPage
)

const modeSetBoth = modeSetNormal | modeSetPage

// Command is a single print command that renders itself into the vendor's wire
// element syntax.
//
// A command value is inert until appended to a Document, which checks mode
// legality and payload validity and renders it into an immutable wire fragment.
type Command interface {
	// Kind returns the kind of the command.
	Kind() Kind

	// modes returns the set of document modes the command is legal in.
	modes() modeSet

	// validate checks the command's attribute ranges and payload rules.
	validate() error

	// appendXML renders the command into sb. It must only be called on a
	// validated command.
	appendXML(sb *strings.Builder)
}

// Render validates cmd and returns its wire fragment.
//
// Fragments are self-delimiting XML elements; a document concatenates them in
// append order with no separators.
func Render(cmd Command) (string, error) {
	if err := cmd.validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	cmd.appendXML(&sb)

	return sb.String(), nil
}

// Bool returns a pointer to v, for filling optional boolean attributes.
func Bool(v bool) *bool { return &v }

// Uint8 returns a pointer to v, for filling optional numeric attributes.
func Uint8(v uint8) *uint8 { return &v }
