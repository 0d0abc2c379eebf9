package soap

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/epos-dev/go-epos/status"
)

// ErrMalformedReply indicates that the reply body could not be parsed as a
// reply envelope carrying a response element.
var ErrMalformedReply = errors.New("malformed reply envelope")

type replyEnvelope struct {
	XMLName xml.Name   `xml:"Envelope"`
	Body    *replyBody `xml:"Body"`
}

type replyBody struct {
	Response *replyResponse `xml:"response"`
}

type replyResponse struct {
	Success string `xml:"success,attr"`
	Code    string `xml:"code,attr"`
	Status  uint32 `xml:"status,attr"`
	Battery uint32 `xml:"battery,attr"`
}

// ParseResponse parses the reply envelope returned by the device and extracts
// the response status.
//
// The success attribute is reported as "true"/"false" by most firmwares and as
// "1"/"0" by some older ones; both spellings decode.
func ParseResponse(body []byte) (*status.Response, error) {
	var reply replyEnvelope
	if err := xml.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if reply.Body == nil || reply.Body.Response == nil {
		return nil, fmt.Errorf("%w: no response element", ErrMalformedReply)
	}

	raw := reply.Body.Response

	return &status.Response{
		Success: raw.Success == "true" || raw.Success == "1",
		Code:    raw.Code,
		Status:  raw.Status,
		Battery: raw.Battery,
	}, nil
}
