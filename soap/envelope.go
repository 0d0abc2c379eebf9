// Package soap assembles the transport envelope around a rendered command
// stream and parses the reply envelope a printer returns.
//
// The envelope layout is fixed by the device: an outer SOAP Envelope, an
// optional Header carrying the print job ID parameter, and a Body holding the
// epos-print payload. Rendered command fragments are already escaped by the
// codec and are concatenated here without re-escaping.
package soap

import (
	"strings"

	"github.com/epos-dev/go-epos/epos"
)

const (
	// SOAPNamespace is the namespace of the outer transport envelope.
	SOAPNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

	// PrintNamespace is the namespace of the print payload and its reply.
	PrintNamespace = "http://www.epson-pos.com/schemas/2011/03/epos-print"

	// Endpoint is the fixed request path, appended to the device base URL.
	Endpoint = "/cgi-bin/epos/service.cgi"
)

const xmlDecl = `<?xml version="1.0" encoding="utf-8"?>`

var headerEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

// BuildRequest wraps the rendered fragments of a document in the transport
// envelope.
//
// In page mode the fragments are nested under an extra page element; in normal
// mode they are emitted directly. When jobID is non-empty, a printjobid
// parameter is added to the envelope header so the device tags its reply with
// the job.
func BuildRequest(mode epos.Mode, fragments []string, jobID string) []byte {
	var sb strings.Builder

	sb.WriteString(xmlDecl)
	sb.WriteString(`<s:Envelope xmlns:s="`)
	sb.WriteString(SOAPNamespace)
	sb.WriteString(`">`)

	if jobID != "" {
		sb.WriteString(`<s:Header><parameter xmlns="`)
		sb.WriteString(PrintNamespace)
		sb.WriteString(`"><printjobid>`)
		sb.WriteString(headerEscaper.Replace(jobID))
		sb.WriteString(`</printjobid></parameter></s:Header>`)
	}

	sb.WriteString(`<s:Body><epos-print xmlns="`)
	sb.WriteString(PrintNamespace)
	sb.WriteString(`">`)

	if mode == epos.ModePage {
		sb.WriteString("<page>")
	}
	for _, fragment := range fragments {
		sb.WriteString(fragment)
	}
	if mode == epos.ModePage {
		sb.WriteString("</page>")
	}

	sb.WriteString(`</epos-print></s:Body></s:Envelope>`)

	return []byte(sb.String())
}
