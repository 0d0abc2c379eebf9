package epos

import (
	"strconv"
	"strings"
)

// The codec escapes exactly once, at render time: element text escapes the
// structural characters '&' and '<', attribute values additionally escape '"'.
// Everything else, including barcode escape sequences such as "{1" and "{A" and
// \xNN binary escapes, is carried verbatim. Envelope assembly concatenates
// rendered fragments without re-escaping, so the transmitted bytes contain each
// payload sequence exactly as the caller wrote it.

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// escapeText escapes the characters that are structurally significant inside
// element content.
func escapeText(s string) string { return textEscaper.Replace(s) }

// escapeAttr escapes the characters that are structurally significant inside a
// double-quoted attribute value.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// elemWriter renders one wire element with the vendor's fixed attribute order.
// Absent optional attributes are omitted entirely; boolean attributes render as
// the literal tokens "true" and "false".
type elemWriter struct {
	sb  *strings.Builder
	tag string
}

func openElem(sb *strings.Builder, tag string) elemWriter {
	sb.WriteByte('<')
	sb.WriteString(tag)

	return elemWriter{sb: sb, tag: tag}
}

func (w elemWriter) attr(name, value string) {
	w.sb.WriteByte(' ')
	w.sb.WriteString(name)
	w.sb.WriteString(`="`)
	w.sb.WriteString(escapeAttr(value))
	w.sb.WriteByte('"')
}

// attrToken writes a catalog-typed attribute, omitting it when the value is unset.
func (w elemWriter) attrToken(name string, token string) {
	if token == "" {
		return
	}
	w.attr(name, token)
}

func (w elemWriter) attrBool(name string, v *bool) {
	if v == nil {
		return
	}
	w.attr(name, strconv.FormatBool(*v))
}

func (w elemWriter) attrUint8(name string, v *uint8) {
	if v == nil {
		return
	}
	w.attr(name, strconv.FormatUint(uint64(*v), 10))
}

func (w elemWriter) attrUint16(name string, v uint16) {
	w.attr(name, strconv.FormatUint(uint64(v), 10))
}

func (w elemWriter) attrInt32(name string, v int32) {
	w.attr(name, strconv.FormatInt(int64(v), 10))
}

// closeEmpty closes the element in self-closing form.
func (w elemWriter) closeEmpty() {
	w.sb.WriteString("/>")
}

// closeText closes the element with text as its content.
func (w elemWriter) closeText(text string) {
	w.sb.WriteByte('>')
	w.sb.WriteString(escapeText(text))
	w.sb.WriteString("</")
	w.sb.WriteString(w.tag)
	w.sb.WriteByte('>')
}
