package epos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateBarcodeData(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc    string
		typ     BarcodeType
		data    string
		wantErr bool
	}{
		{desc: "upc_a 11 digits, check digit computed by device", typ: BarcodeUPCA, data: "01234567890"},
		{desc: "upc_a 12 digits, caller-provided check digit", typ: BarcodeUPCA, data: "012345678905"},
		{desc: "upc_a 10 digits", typ: BarcodeUPCA, data: "0123456789", wantErr: true},
		{desc: "upc_a 13 digits", typ: BarcodeUPCA, data: "0123456789012", wantErr: true},
		{desc: "upc_a non-numeric", typ: BarcodeUPCA, data: "0123456789A", wantErr: true},
		{desc: "upc_e leading zero", typ: BarcodeUPCE, data: "01234500006"},
		{desc: "upc_e without leading zero", typ: BarcodeUPCE, data: "11234500006", wantErr: true},
		{desc: "ean13 12 digits", typ: BarcodeEAN13, data: "012345678901"},
		{desc: "ean13 13 digits", typ: BarcodeEAN13, data: "0123456789012"},
		{desc: "ean13 11 digits", typ: BarcodeEAN13, data: "01234567890", wantErr: true},
		{desc: "jan13 12 digits", typ: BarcodeJAN13, data: "490123456789"},
		{desc: "ean8 7 digits", typ: BarcodeEAN8, data: "0123456"},
		{desc: "ean8 8 digits", typ: BarcodeEAN8, data: "01234565"},
		{desc: "ean8 6 digits", typ: BarcodeEAN8, data: "012345", wantErr: true},
		{desc: "jan8 7 digits", typ: BarcodeJAN8, data: "4901234"},
		{desc: "code39 charset", typ: BarcodeCode39, data: "*CODE-39 OK.$/+%*"},
		{desc: "code39 lowercase", typ: BarcodeCode39, data: "abc", wantErr: true},
		{desc: "itf digits", typ: BarcodeITF, data: "0123456789"},
		{desc: "itf letters", typ: BarcodeITF, data: "A123", wantErr: true},
		{desc: "codabar start/stop", typ: BarcodeCodabar, data: "A1234-5/6B"},
		{desc: "codabar lowercase start/stop", typ: BarcodeCodabar, data: "a40156d"},
		{desc: "codabar missing stop", typ: BarcodeCodabar, data: "A12345", wantErr: true},
		{desc: "codabar invalid body character", typ: BarcodeCodabar, data: "A12E45B", wantErr: true},
		{desc: "code93 ascii", typ: BarcodeCode93, data: "CODE 93 ok"},
		{desc: "code93 non-ascii", typ: BarcodeCode93, data: "héllo", wantErr: true},
		{desc: "code128 code set B", typ: BarcodeCode128, data: "{BHello"},
		{desc: "code128 fnc1 escape", typ: BarcodeCode128, data: "{C{112345678"},
		{desc: "code128 literal brace escape", typ: BarcodeCode128, data: "{B{{literal"},
		{desc: "code128 missing code set selector", typ: BarcodeCode128, data: "Hello", wantErr: true},
		{desc: "code128 dangling brace", typ: BarcodeCode128, data: "{BHello{", wantErr: true},
		{desc: "code128 invalid escape", typ: BarcodeCode128, data: "{B{Zoops", wantErr: true},
		{desc: "gs1_128 ai with parens", typ: BarcodeGS1128, data: "{1(01)04912345123459"},
		{desc: "gs1_128 check digit marker", typ: BarcodeGS1128, data: "(01)0491234512345{*"},
		{desc: "gs1_128 invalid escape", typ: BarcodeGS1128, data: "{2data", wantErr: true},
		{desc: "gs1 databar 13-digit gtin", typ: BarcodeGS1DataBarOmnidirectional, data: "0491234512345"},
		{desc: "gs1 databar short gtin", typ: BarcodeGS1DataBarTruncated, data: "049123451234", wantErr: true},
		{desc: "gs1 databar with check digit", typ: BarcodeGS1DataBarLimited, data: "04912345123456", wantErr: true},
		{desc: "gs1 databar expanded escapes", typ: BarcodeGS1DataBarExpanded, data: "{1(01)94912345123459(3103)000123"},
		{desc: "gs1 databar expanded invalid escape", typ: BarcodeGS1DataBarExpanded, data: "{A(01)949", wantErr: true},
		{desc: "empty content", typ: BarcodeCode39, data: "", wantErr: true},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		err := validateBarcodeData(test.typ, test.data)
		if test.wantErr {
			require.ErrorIs(err, ErrInvalidPayload)
		} else {
			require.NoError(err)
		}
	}
}

func TestValidateSymbol(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc    string
		cmd     *Symbol
		wantErr bool
	}{
		{desc: "pdf417 width in range", cmd: &Symbol{Data: "x", Type: SymbolPDF417Standard, Width: Uint8(2)}},
		{desc: "pdf417 width too small", cmd: &Symbol{Data: "x", Type: SymbolPDF417Standard, Width: Uint8(1)}, wantErr: true},
		{desc: "pdf417 height out of range", cmd: &Symbol{Data: "x", Type: SymbolPDF417Truncated, Height: Uint8(9)}, wantErr: true},
		{desc: "qr width 1 is legal", cmd: &Symbol{Data: "x", Type: SymbolQRCodeModel2, Width: Uint8(1)}},
		{desc: "qr width 16 is legal", cmd: &Symbol{Data: "x", Type: SymbolQRCodeModel1, Width: Uint8(16)}},
		{desc: "qr width 17", cmd: &Symbol{Data: "x", Type: SymbolQRCodeModel2, Width: Uint8(17)}, wantErr: true},
		{desc: "aztec width in range", cmd: &Symbol{Data: "x", Type: SymbolAztecCodeCompact, Width: Uint8(16)}},
		{desc: "aztec width too small", cmd: &Symbol{Data: "x", Type: SymbolAztecCodeFullRange, Width: Uint8(1)}, wantErr: true},
		{desc: "datamatrix width in range", cmd: &Symbol{Data: "x", Type: SymbolDataMatrixSquare, Width: Uint8(10)}},
		{desc: "datamatrix width too large", cmd: &Symbol{Data: "x", Type: SymbolDataMatrixRectangle16, Width: Uint8(17)}, wantErr: true},
		{desc: "maxicode ignores width and height", cmd: &Symbol{Data: "x", Type: SymbolMaxiCodeMode4, Width: Uint8(200), Height: Uint8(200)}},
		{desc: "gs1 databar stacked gtin", cmd: &Symbol{Data: "0491234512345", Type: SymbolGS1DataBarStacked, Width: Uint8(2)}},
		{desc: "gs1 databar stacked bad gtin", cmd: &Symbol{Data: "049", Type: SymbolGS1DataBarStacked}, wantErr: true},
		{desc: "gs1 databar expanded stacked free-form", cmd: &Symbol{Data: "(01)94912345123459", Type: SymbolGS1DataBarExpandedStacked}},
		{desc: "missing type", cmd: &Symbol{Data: "x"}, wantErr: true},
		{desc: "empty content", cmd: &Symbol{Type: SymbolQRCodeModel2}, wantErr: true},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		err := test.cmd.validate()
		if test.wantErr {
			require.ErrorIs(err, ErrInvalidPayload)
		} else {
			require.NoError(err)
		}
	}
}

func TestValidate_Ranges(t *testing.T) {
	require := require.New(t)

	// text width/height 1-8
	require.NoError((&Text{Data: "x", Width: Uint8(1), Height: Uint8(8)}).validate())
	require.ErrorIs((&Text{Data: "x", Width: Uint8(0)}).validate(), ErrInvalidPayload)
	require.ErrorIs((&Text{Data: "x", Height: Uint8(9)}).validate(), ErrInvalidPayload)

	// barcode width 2-6
	require.NoError((&Barcode{Data: "0123456", Type: BarcodeEAN8, Width: Uint8(2)}).validate())
	require.ErrorIs((&Barcode{Data: "0123456", Type: BarcodeEAN8, Width: Uint8(1)}).validate(), ErrInvalidPayload)
	require.ErrorIs((&Barcode{Data: "0123456", Type: BarcodeEAN8, Width: Uint8(7)}).validate(), ErrInvalidPayload)

	// image dimensions and payload encoding
	require.NoError((&Image{Data: "AAECAw==", Width: 8, Height: 4}).validate())
	require.ErrorIs((&Image{Data: "AAECAw==", Width: 0, Height: 4}).validate(), ErrInvalidPayload)
	require.ErrorIs((&Image{Data: "not base64!", Width: 8, Height: 4}).validate(), ErrInvalidPayload)

	// empty page area
	require.ErrorIs((&Area{Width: 0, Height: 100}).validate(), ErrInvalidPayload)
}
