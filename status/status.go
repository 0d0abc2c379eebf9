// Package status decodes the reply a printer returns for a print job: the
// success/code attributes and the 32-bit hardware status bitmask.
//
// Some bit positions are shared by two conditions because the hardware reuses
// them across mutually exclusive device families; the decoder reports every
// matching condition and leaves disambiguation to the caller.
package status

import "strings"

// Flag is a named predicate over the status bitmask.
type Flag struct {
	Name string
	Mask uint32
}

// Table lists the known status conditions in the vendor's documented order.
//
// Entries are independent predicates, not a partition: DRAWER_KICK_OUT_CONNECTOR
// and BATTERY_OFFLINE_STATUS share bit 0x4, and BUZZER_ON and LABEL_WAIT_REMOVAL
// share bit 0x1000000. Both names of a shared bit are reported when it is set.
var Table = []Flag{
	{Name: "NO_RESPONSE", Mask: 0x00000001},
	{Name: "PRINT_SUCCESS", Mask: 0x00000002},
	{Name: "DRAWER_KICK_OUT_CONNECTOR", Mask: 0x00000004},
	{Name: "BATTERY_OFFLINE_STATUS", Mask: 0x00000004},
	{Name: "OFFLINE", Mask: 0x00000008},
	{Name: "COVER_OPEN", Mask: 0x00000020},
	{Name: "PAPER_FEED_OPERATION", Mask: 0x00000040},
	{Name: "WAITING_ONLINE", Mask: 0x00000100},
	{Name: "PAPER_FEED_SWITCH_PRESSED", Mask: 0x00000200},
	{Name: "MECHANICAL_ERROR", Mask: 0x00000400},
	{Name: "AUTOCUTTER_ERROR", Mask: 0x00000800},
	{Name: "UNRECOVERABLE_ERROR", Mask: 0x00002000},
	{Name: "RECOVERABLE_ERROR", Mask: 0x00004000},
	{Name: "PAPER_NEAR_END", Mask: 0x00020000},
	{Name: "PAPER_END", Mask: 0x00080000},
	{Name: "BUZZER_ON", Mask: 0x01000000},
	{Name: "LABEL_WAIT_REMOVAL", Mask: 0x01000000},
	{Name: "NO_PAPER_IN_PEEL_SENSOR", Mask: 0x40000000},
	{Name: "SPOOLER_STOPPED", Mask: 0x80000000},
}

// Decode returns the flags whose mask is set in value, in Table order.
func Decode(value uint32) []Flag {
	var flags []Flag
	for _, f := range Table {
		if value&f.Mask != 0 {
			flags = append(flags, f)
		}
	}

	return flags
}

// Response is the decoded reply of a print job.
type Response struct {
	// Success reports whether the job printed.
	Success bool
	// Code is the vendor error code. It is meaningful only when Success is false.
	Code string
	// Status is the raw 32-bit hardware status bitmask. Decode it with Flags.
	Status uint32
	// Battery is the raw battery status code.
	Battery uint32
}

// Flags decodes the status bitmask into named conditions.
func (r *Response) Flags() []Flag {
	return Decode(r.Status)
}

// String renders the response for logs and error messages.
func (r *Response) String() string {
	var sb strings.Builder

	sb.WriteString("code: '")
	sb.WriteString(r.Code)
	sb.WriteString("' status: [")
	for i, f := range r.Flags() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Name)
	}
	sb.WriteByte(']')

	return sb.String()
}
