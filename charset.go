package qrcode

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// alphanumericAlphabet is the 45-character alphabet of spec.md §4.4,
// in index order (digits=0-9, A-Z=10-35, then the nine symbols).
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphanumericCode returns r's index in alphanumericAlphabet, or -1 if
// r is not in the alphanumeric alphabet.
func alphanumericCode(r rune) int {
	if r > 127 {
		return -1
	}
	return strings.IndexRune(alphanumericAlphabet, r)
}

// shiftJISEncoder returns a fresh Shift_JIS encoder; japanese.ShiftJIS
// encoders carry per-call state, so one is allocated per encode.
func shiftJISEncoder() *encoding.Encoder {
	return japanese.ShiftJIS.NewEncoder()
}

// isOnlyDoubleByteKanji implements spec.md §4.4's Shift_JIS kanji
// test: the content must Shift_JIS-encode to an even number of bytes,
// every pair's leading byte must fall within the double-byte kanji
// lead-byte ranges, and the encoding itself must succeed.
func isOnlyDoubleByteKanji(content string) bool {
	enc, err := japanese.ShiftJIS.NewEncoder().String(content)
	if err != nil {
		return false
	}
	if len(enc)%2 != 0 {
		return false
	}
	for i := 0; i < len(enc); i += 2 {
		b1 := enc[i]
		if !((b1 >= 0x81 && b1 <= 0x9f) || (b1 >= 0xe0 && b1 <= 0xeb)) {
			return false
		}
	}
	return true
}

// defaultCharsetName is the Byte-mode charset assumed when the caller
// supplies no hint (spec.md §6).
const defaultCharsetName = "UTF-8"

// eciByCharset maps the charset names this package resolves via
// golang.org/x/text to their standard ECI assignment numbers
// (ISO/IEC 18004 Annex C). Only designators in this table — all ≤ 127,
// single-byte designators — are supported; anything else is
// ErrUnsupportedCharset, per spec.md §4.5 step 3.
var eciByCharset = map[string]int{
	"UTF-8":      26,
	"ISO-8859-1": 3,
	"Shift_JIS":  20,
}

// resolveByteCharset resolves a caller-supplied charset hint (any
// label golang.org/x/text/encoding/htmlindex understands) to an
// encoding.Encoding and, when it differs from the default, its ECI
// designator. A label whose charset has no entry in eciByCharset is
// rejected with ErrUnsupportedCharset. isDefault is true when no ECI
// prefix is required.
func resolveByteCharset(hint string) (enc encoding.Encoding, eci int, isDefault bool, err error) {
	name := hint
	if name == "" {
		name = defaultCharsetName
	}

	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return unicode.UTF8, 0, true, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return charmap.ISO8859_1, eciByCharset["ISO-8859-1"], false, nil
	case "SHIFT_JIS", "SHIFT-JIS", "SJIS":
		return japanese.ShiftJIS, eciByCharset["Shift_JIS"], false, nil
	}

	resolved, err := htmlindex.Get(name)
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %q", ErrUnsupportedCharset, hint)
	}
	// htmlindex canonical names are lower case ("shift_jis", "utf-8").
	canonical, _ := htmlindex.Name(resolved)
	for charsetName, eciVal := range eciByCharset {
		if strings.EqualFold(charsetName, canonical) {
			return resolved, eciVal, false, nil
		}
	}
	return nil, 0, false, fmt.Errorf("%w: no ECI designator for %q", ErrUnsupportedCharset, hint)
}
