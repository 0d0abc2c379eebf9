package epos

import (
	"fmt"
	"strings"
	"unicode"
)

// The device rejects malformed commands silently or with an opaque parse error,
// so range and symbology rules are enforced here, before anything is rendered.

// checkRange checks an optional numeric attribute against an inclusive range.
func checkRange(name string, v *uint8, minVal, maxVal uint8) error {
	if v == nil {
		return nil
	}
	if *v < minVal || *v > maxVal {
		return fmt.Errorf("%w: %s %d is out of range [%d, %d]", ErrInvalidPayload, name, *v, minVal, maxVal)
	}

	return nil
}

func allDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return len(s) > 0
}

// checkDigits checks a fixed-length numeric payload where the longer length
// carries a caller-provided check digit.
func checkDigits(t BarcodeType, data string, dataLen, withCheckLen int) error {
	if !allDigits(data) {
		return fmt.Errorf("%w: %s content %q must be numeric", ErrInvalidPayload, t, data)
	}
	if len(data) != dataLen && len(data) != withCheckLen {
		return fmt.Errorf("%w: %s content must be %d digits, or %d with a check digit, got %d",
			ErrInvalidPayload, t, dataLen, withCheckLen, len(data))
	}

	return nil
}

// checkEscapes checks that every '{' in data starts a two-character escape
// sequence whose second character is in allowed.
func checkEscapes(t BarcodeType, data, allowed string) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '{' {
			continue
		}
		if i+1 >= len(data) || !strings.ContainsRune(allowed, rune(data[i+1])) {
			return fmt.Errorf("%w: %s content has an invalid {-escape at position %d", ErrInvalidPayload, t, i)
		}
		i++
	}

	return nil
}

const code39Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ -.$/+%*"

func validateBarcodeData(t BarcodeType, data string) error {
	if data == "" {
		return fmt.Errorf("%w: %s content is empty", ErrInvalidPayload, t)
	}

	switch t {
	case BarcodeUPCA:
		return checkDigits(t, data, 11, 12)
	case BarcodeUPCE:
		if data[0] != '0' {
			return fmt.Errorf("%w: %s content must start with 0", ErrInvalidPayload, t)
		}
		return checkDigits(t, data, 11, 12)
	case BarcodeEAN13, BarcodeJAN13:
		return checkDigits(t, data, 12, 13)
	case BarcodeEAN8, BarcodeJAN8:
		return checkDigits(t, data, 7, 8)
	case BarcodeCode39:
		for _, ch := range data {
			if !strings.ContainsRune(code39Charset, ch) {
				return fmt.Errorf("%w: %s content has invalid character %q", ErrInvalidPayload, t, ch)
			}
		}
		return nil
	case BarcodeITF:
		if !allDigits(data) {
			return fmt.Errorf("%w: %s content %q must be numeric", ErrInvalidPayload, t, data)
		}
		return nil
	case BarcodeCodabar:
		return validateCodabar(data)
	case BarcodeCode93:
		for _, ch := range data {
			if ch > unicode.MaxASCII {
				return fmt.Errorf("%w: %s content has non-ASCII character %q", ErrInvalidPayload, t, ch)
			}
		}
		return nil
	case BarcodeCode128:
		if len(data) < 2 || data[0] != '{' || (data[1] != 'A' && data[1] != 'B' && data[1] != 'C') {
			return fmt.Errorf("%w: %s content must start with a code set selector {A, {B or {C", ErrInvalidPayload, t)
		}
		return checkEscapes(t, data, "1234ABCS{")
	case BarcodeGS1128:
		return checkEscapes(t, data, "13()*{")
	case BarcodeGS1DataBarOmnidirectional, BarcodeGS1DataBarTruncated, BarcodeGS1DataBarLimited:
		if !allDigits(data) || len(data) != 13 {
			return fmt.Errorf("%w: %s content must be a 13-digit GTIN", ErrInvalidPayload, t)
		}
		return nil
	case BarcodeGS1DataBarExpanded:
		return checkEscapes(t, data, "1(){")
	case BarcodeNone:
		return fmt.Errorf("%w: barcode type is required", ErrInvalidPayload)
	}

	return nil
}

func validateCodabar(data string) error {
	if len(data) < 2 {
		return fmt.Errorf("%w: codabar content needs start and stop characters", ErrInvalidPayload)
	}

	isStartStop := func(b byte) bool {
		return (b >= 'A' && b <= 'D') || (b >= 'a' && b <= 'd')
	}
	if !isStartStop(data[0]) || !isStartStop(data[len(data)-1]) {
		return fmt.Errorf("%w: codabar start and stop characters must be A to D", ErrInvalidPayload)
	}

	for _, ch := range data[1 : len(data)-1] {
		if (ch < '0' || ch > '9') && !strings.ContainsRune("-$:/.+", ch) {
			return fmt.Errorf("%w: codabar content has invalid character %q", ErrInvalidPayload, ch)
		}
	}

	return nil
}

func validateSymbol(t SymbolType, data string, width, height *uint8) error {
	if data == "" {
		return fmt.Errorf("%w: %s content is empty", ErrInvalidPayload, t)
	}

	switch {
	case t.isPDF417():
		if err := checkRange("pdf417 width", width, 2, 8); err != nil {
			return err
		}
		return checkRange("pdf417 height", height, 2, 8)
	case t.isQRCode():
		return checkRange("qrcode width", width, 1, 16)
	case t.isAztecCode():
		return checkRange("azteccode width", width, 2, 16)
	case t.isDataMatrix():
		return checkRange("datamatrix width", width, 2, 16)
	case t.isGS1DataBar():
		if t != SymbolGS1DataBarExpandedStacked && (!allDigits(data) || len(data) != 13) {
			return fmt.Errorf("%w: %s content must be a 13-digit GTIN", ErrInvalidPayload, t)
		}
		return checkRange("gs1 databar width", width, 2, 8)
	case t.isMaxiCode():
		// MaxiCode ignores width and height.
		return nil
	}

	return nil
}
