package epos

import "fmt"

// BarcodeType specifies a 1D barcode symbology.
//
// Binary payload bytes can be specified with \xNN escapes, and \\ prints a
// backslash; the codec carries these sequences verbatim.
type BarcodeType int

const (
	// BarcodeNone is the unset value; a barcode command requires an explicit type.
	BarcodeNone BarcodeType = iota

	// BarcodeUPCA encodes UPC-A. When an 11-digit number is specified, the check
	// digit is computed by the device; when a 12-digit number is specified, the
	// 12th digit is taken as a provided, unvalidated check digit.
	BarcodeUPCA
	// BarcodeUPCE encodes UPC-E. The first digit must be 0; check digit rules are
	// the same as UPC-A.
	BarcodeUPCE
	// BarcodeEAN13 encodes EAN13 at 12 or 13 digits, analogous to UPC-A.
	BarcodeEAN13
	// BarcodeJAN13 encodes JAN13 at 12 or 13 digits, analogous to UPC-A.
	BarcodeJAN13
	// BarcodeEAN8 encodes EAN8 at 7 or 8 digits, analogous to UPC-A.
	BarcodeEAN8
	// BarcodeJAN8 encodes JAN8 at 7 or 8 digits, analogous to UPC-A.
	BarcodeJAN8
	// BarcodeCode39 encodes Code39. A leading * is taken as the start character;
	// otherwise one is added by the device.
	BarcodeCode39
	// BarcodeITF encodes Interleaved 2 of 5. Start and stop codes are added by the
	// device; check digits are neither added nor validated.
	BarcodeITF
	// BarcodeCodabar encodes Codabar. The payload must carry explicit start and
	// stop characters (A to D, a to d).
	BarcodeCodabar
	// BarcodeCode93 encodes Code93. Start/stop characters and the check digit are
	// added by the device.
	BarcodeCode93
	// BarcodeCode128 encodes Code128. The payload must begin with a code set
	// selector ({A, {B or {C); control codes are encoded as two-character
	// sequences beginning with "{".
	BarcodeCode128
	// BarcodeGS1128 encodes GS1-128. FNC1, the check digit and the stop character
	// are added by the device; parentheses around an application identifier are
	// printed as HRI characters and not encoded.
	BarcodeGS1128
	// BarcodeGS1DataBarOmnidirectional encodes a 13-digit GTIN without application
	// identifier or check digit.
	BarcodeGS1DataBarOmnidirectional
	// BarcodeGS1DataBarTruncated encodes a 13-digit GTIN without application
	// identifier or check digit.
	BarcodeGS1DataBarTruncated
	// BarcodeGS1DataBarLimited encodes a 13-digit GTIN without application
	// identifier or check digit.
	BarcodeGS1DataBarLimited
	// BarcodeGS1DataBarExpanded encodes GS1 DataBar Expanded; control codes are
	// encoded as two-character sequences beginning with "{".
	BarcodeGS1DataBarExpanded
)

// The vendor spells ean8/jan8 in uppercase on the wire, unlike every other
// symbology token.
var barcodeTokens = map[BarcodeType]string{
	BarcodeUPCA:                      "upc_a",
	BarcodeUPCE:                      "upc_e",
	BarcodeEAN13:                     "ean13",
	BarcodeJAN13:                     "jan13",
	BarcodeEAN8:                      "EAN8",
	BarcodeJAN8:                      "JAN8",
	BarcodeCode39:                    "code39",
	BarcodeITF:                       "itf",
	BarcodeCodabar:                   "codabar",
	BarcodeCode93:                    "code93",
	BarcodeCode128:                   "code128",
	BarcodeGS1128:                    "gs1_128",
	BarcodeGS1DataBarOmnidirectional: "gs1_databar_omnidirectional",
	BarcodeGS1DataBarTruncated:       "gs1_databar_truncated",
	BarcodeGS1DataBarLimited:         "gs1_databar_limited",
	BarcodeGS1DataBarExpanded:        "gs1_databar_expanded",
}

// String returns the wire token of the symbology, or an empty string for the unset value.
func (t BarcodeType) String() string { return barcodeTokens[t] }

// ParseBarcodeType decodes a wire token into a BarcodeType variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseBarcodeType(token string) (BarcodeType, error) {
	if t, ok := parseToken(barcodeTokens, token); ok {
		return t, nil
	}
	return BarcodeNone, fmt.Errorf("%w: %q is not a barcode type", ErrUnknownCatalogValue, token)
}

// SymbolType specifies a 2D symbol type.
type SymbolType int

const (
	// SymbolNone is the unset value; a symbol command requires an explicit type.
	SymbolNone SymbolType = iota

	SymbolPDF417Standard
	SymbolPDF417Truncated
	SymbolQRCodeModel1
	SymbolQRCodeModel2
	// SymbolMaxiCodeMode2 carries a structured carrier message with a numeric
	// postal code.
	SymbolMaxiCodeMode2
	// SymbolMaxiCodeMode3 carries a structured carrier message with an
	// alphanumeric postal code.
	SymbolMaxiCodeMode3
	// SymbolMaxiCodeMode4 carries unformatted data with standard error correction.
	SymbolMaxiCodeMode4
	// SymbolMaxiCodeMode5 carries unformatted data with enhanced error correction.
	SymbolMaxiCodeMode5
	// SymbolMaxiCodeMode6 is used for programming hardware devices.
	SymbolMaxiCodeMode6
	SymbolGS1DataBarStacked
	SymbolGS1DataBarStackedOmnidirectional
	SymbolGS1DataBarExpandedStacked
	SymbolAztecCodeFullRange
	SymbolAztecCodeCompact
	SymbolDataMatrixSquare
	SymbolDataMatrixRectangle8
	SymbolDataMatrixRectangle12
	SymbolDataMatrixRectangle16
)

var symbolTokens = map[SymbolType]string{
	SymbolPDF417Standard:                   "pdf417_standard",
	SymbolPDF417Truncated:                  "pdf417_truncated",
	SymbolQRCodeModel1:                     "qrcode_model_1",
	SymbolQRCodeModel2:                     "qrcode_model_2",
	SymbolMaxiCodeMode2:                    "maxicode_mode_2",
	SymbolMaxiCodeMode3:                    "maxicode_mode_3",
	SymbolMaxiCodeMode4:                    "maxicode_mode_4",
	SymbolMaxiCodeMode5:                    "maxicode_mode_5",
	SymbolMaxiCodeMode6:                    "maxicode_mode_6",
	SymbolGS1DataBarStacked:                "gs1_databar_stacked",
	SymbolGS1DataBarStackedOmnidirectional: "gs1_databar_stacked_omnidirectional",
	SymbolGS1DataBarExpandedStacked:        "gs1_databar_expanded_stacked",
	SymbolAztecCodeFullRange:               "azteccode_fullrange",
	SymbolAztecCodeCompact:                 "azteccode_compact",
	SymbolDataMatrixSquare:                 "datamatrix_square",
	SymbolDataMatrixRectangle8:             "datamatrix_rectangle_8",
	SymbolDataMatrixRectangle12:            "datamatrix_rectangle_12",
	SymbolDataMatrixRectangle16:            "datamatrix_rectangle_16",
}

// String returns the wire token of the symbol type, or an empty string for the unset value.
func (t SymbolType) String() string { return symbolTokens[t] }

// ParseSymbolType decodes a wire token into a SymbolType variant.
// It returns ErrUnknownCatalogValue for tokens outside the catalog.
func ParseSymbolType(token string) (SymbolType, error) {
	if t, ok := parseToken(symbolTokens, token); ok {
		return t, nil
	}
	return SymbolNone, fmt.Errorf("%w: %q is not a symbol type", ErrUnknownCatalogValue, token)
}

func (t SymbolType) isPDF417() bool {
	return t == SymbolPDF417Standard || t == SymbolPDF417Truncated
}

func (t SymbolType) isQRCode() bool {
	return t == SymbolQRCodeModel1 || t == SymbolQRCodeModel2
}

func (t SymbolType) isMaxiCode() bool {
	return t >= SymbolMaxiCodeMode2 && t <= SymbolMaxiCodeMode6
}

func (t SymbolType) isGS1DataBar() bool {
	return t == SymbolGS1DataBarStacked ||
		t == SymbolGS1DataBarStackedOmnidirectional ||
		t == SymbolGS1DataBarExpandedStacked
}

func (t SymbolType) isAztecCode() bool {
	return t == SymbolAztecCodeFullRange || t == SymbolAztecCodeCompact
}

func (t SymbolType) isDataMatrix() bool {
	return t >= SymbolDataMatrixSquare && t <= SymbolDataMatrixRectangle16
}
