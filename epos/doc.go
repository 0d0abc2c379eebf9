// Package epos provides the command data model and wire codec for the ePOS-Print
// XML protocol used by network-attached Epson receipt and label printers.
//
// Key Features:
//   - Command Model: typed print commands (text, 1D barcodes, 2D symbols, raster
//     images, paper feed/cut, and page-layout primitives) with per-command
//     optional attributes that are omitted from the wire when unset.
//   - Catalog Types: closed enumerations for every vendor-defined attribute value
//     (alignment, font, language, cut type, barcode symbology, and so on), each
//     with its exact wire spelling.
//   - Mode Rules: a Document is created in either normal or page mode and rejects
//     commands that are not legal in that mode at append time.
//   - Wire Codec: commands render to the vendor's exact XML element syntax, with
//     structural characters escaped exactly once and barcode escape sequences
//     (for example "{1" or "{A") carried verbatim.
//
// Usage Example:
//
//	doc := epos.NewDocument(epos.ModeNormal)
//	_ = doc.Add(&epos.Text{Data: "hello\n", Align: epos.AlignCenter})
//	_ = doc.Add(&epos.Feed{Line: epos.Uint8(3)})
//	_ = doc.Add(&epos.Cut{Type: epos.CutFeed})
//
//	// ... hand doc to a printer.Client to dispatch it.
package epos
