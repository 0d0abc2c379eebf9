package epos

import (
	"fmt"

	"github.com/epos-dev/go-epos/internal/util"
)

// Mode selects how a document composes its commands.
type Mode int

const (
	// ModeNormal prints commands sequentially, one at a time.
	ModeNormal Mode = iota
	// ModePage places commands within a defined rectangular print area.
	ModePage
)

var modeNames = map[Mode]string{
	ModeNormal: "normal",
	ModePage:   "page",
}

// String returns the name of the mode.
func (m Mode) String() string { return modeNames[m] }

func (m Mode) bit() modeSet {
	if m == ModePage {
		return modeSetPage
	}

	return modeSetNormal
}

// Document is an ordered, append-only buffer of rendered wire fragments for a
// single print job.
//
// A document is bound to the mode it was created in and rejects commands that
// are not legal in that mode at append time. It is consumed by exactly one
// dispatch; after Take it is spent, and a fresh document is required for the
// next job.
//
// A Document is not safe for concurrent use. Each print job owns an
// independent document.
type Document struct {
	mode      Mode
	fragments []string
	spent     bool
}

// NewDocument creates an empty document in the given mode.
func NewDocument(mode Mode) *Document {
	return &Document{mode: mode}
}

// Mode returns the mode the document was created in.
func (d *Document) Mode() Mode { return d.mode }

// Len returns the number of commands appended so far.
func (d *Document) Len() int { return len(d.fragments) }

// Add validates cmd against the document mode and the vendor's payload rules,
// renders it, and appends the fragment.
//
// It returns ErrIllegalForMode when the command kind is not permitted in the
// document mode, ErrInvalidPayload when the payload violates range or
// symbology rules, and ErrDocumentSpent when the document has already been
// dispatched. The document is unchanged on error.
func (d *Document) Add(cmd Command) error {
	if d.spent {
		return ErrDocumentSpent
	}
	if cmd.modes()&d.mode.bit() == 0 {
		return fmt.Errorf("%w: %s is not legal in %s mode", ErrIllegalForMode, cmd.Kind(), d.mode)
	}

	// feed pos targets label/black mark positions and cannot be specified in
	// page mode
	if d.mode == ModePage {
		if feed, ok := cmd.(*Feed); ok && feed.Pos != FeedPosNone {
			return fmt.Errorf("%w: feed pos cannot be specified in page mode", ErrInvalidPayload)
		}
	}

	fragment, err := Render(cmd)
	if err != nil {
		return err
	}

	d.fragments = append(d.fragments, fragment)

	return nil
}

// Fragments returns a snapshot of the rendered wire fragments in append order.
func (d *Document) Fragments() []string {
	return util.CloneSlice(d.fragments, 0)
}

// Take consumes the document for dispatch: it returns the rendered fragments
// and marks the document spent. Subsequent Add or Take calls fail with
// ErrDocumentSpent, which rules out accidentally resending a job by
// dispatching the same document twice.
func (d *Document) Take() ([]string, error) {
	if d.spent {
		return nil, ErrDocumentSpent
	}

	d.spent = true
	fragments := d.fragments
	d.fragments = nil

	return fragments, nil
}
