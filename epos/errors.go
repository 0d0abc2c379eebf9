package epos

import "errors"

var (
	// ErrIllegalForMode indicates that a command was appended to a document whose
	// mode does not permit that command kind.
	// Page-layout commands are legal in page mode only; cut and hline commands are
	// legal in normal mode only.
	ErrIllegalForMode = errors.New("command is not legal in the document mode")

	// ErrDocumentSpent indicates that a document was used after it has been
	// dispatched. A document is consumed by a single dispatch; create a new
	// document for a new print job.
	ErrDocumentSpent = errors.New("document has already been dispatched")

	// ErrInvalidPayload indicates that a command payload or attribute violates the
	// vendor's range or symbology rules. The device gives no useful diagnostics on
	// malformed input, so these rules are enforced locally at append time.
	ErrInvalidPayload = errors.New("invalid command payload")

	// ErrUnknownCatalogValue indicates that a wire token could not be decoded into
	// any variant of a closed catalog enumeration.
	ErrUnknownCatalogValue = errors.New("unknown catalog value")
)
