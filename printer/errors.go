package printer

import (
	"errors"
	"fmt"

	"github.com/epos-dev/go-epos/status"
)

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("client config is nil")

	// ErrDocumentNil indicates that a nil document was passed to Print.
	ErrDocumentNil = errors.New("document is nil")

	// ErrHTTPStatus indicates that the device answered with a non-success HTTP
	// status code.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
)

// ResponseError indicates that the device accepted the request but reported a
// failed print job. It carries the full decoded response so the caller can
// branch on the vendor code and the decoded status flags.
type ResponseError struct {
	Response *status.Response
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("device reported print failure: %s", e.Response)
}
