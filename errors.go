package qrcode

import "errors"

// The error kinds are a closed set (spec.md §7). Call sites wrap one
// of these sentinels with fmt.Errorf("%w: detail", Kind) so callers
// can test with errors.Is; the sentinel itself carries no detail.
var (
	// ErrInvalidContent marks a character that cannot be represented
	// in the selected mode (an out-of-alphabet rune reaching the
	// alphanumeric packer, an odd-length or out-of-range Kanji byte
	// pair, invalid Shift_JIS bytes).
	ErrInvalidContent = errors.New("qrcode: invalid content for mode")

	// ErrCapacityExceeded marks input that does not fit the forced or
	// maximum version at the chosen error-correction level, including
	// a character count that overflows its count-bits field.
	ErrCapacityExceeded = errors.New("qrcode: capacity exceeded")

	// ErrUnsupportedCharset marks a charset hint the platform's
	// text-encoding facility cannot resolve, or an ECI designator
	// above 127.
	ErrUnsupportedCharset = errors.New("qrcode: unsupported charset")

	// ErrInternalInvariant marks a sanity-check trip — interleave
	// byte-count mismatch, EC-per-block mismatch, termination-size
	// mismatch — indicating a bug in this package's tables or logic
	// rather than a problem with caller input.
	ErrInternalInvariant = errors.New("qrcode: internal invariant violated")
)
