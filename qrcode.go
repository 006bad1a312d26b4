// Package qrcode encodes text into a QR Code symbol matrix, per
// JIS X 0510:2004 / ISO/IEC 18004. It implements the symbol encoder
// only: mode selection, capacity fitting, Reed-Solomon error
// correction and block interleaving, and mask-scored matrix layout.
// Decoding, image rendering, and any CLI or configuration surface are
// the caller's responsibility.
package qrcode

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// QRCode is the immutable result of a successful Encode call.
type QRCode struct {
	Mode        Mode
	Level       Level
	Version     Version
	MaskPattern int
	Matrix      *ByteMatrix
}

// Options carries the optional hints Encode accepts. The zero value
// selects UTF-8 Byte-mode-default charset, auto version, and
// auto mask — except ForcedMask, whose zero value (0) forces mask 0;
// pass ForcedMask: -1 explicitly to auto-select the mask while still
// setting other fields. A nil *Options is equivalent to auto-everything.
type Options struct {
	// Charset names the Byte-mode charset, resolved via
	// golang.org/x/text/encoding/htmlindex. Empty means UTF-8. Setting
	// this to "Shift_JIS" additionally makes Kanji mode eligible.
	Charset string
	// ForcedVersion, when in 1..40, skips auto version selection.
	ForcedVersion int
	// ForcedMask, when in 0..7, skips mask scoring. Any other value
	// (including the zero value's sibling -1, the documented "auto"
	// sentinel when the caller sets it explicitly) auto-selects.
	ForcedMask int
	// Logger receives debug-level tracing of version fitting and mask
	// selection. A nil Logger is a no-op.
	Logger *zap.SugaredLogger
}

// Encode turns content into a QRCode at the given error-correction
// level. See Options for optional hints.
func Encode(content string, level Level, opts *Options) (qr *QRCode, err error) {
	if opts == nil {
		opts = &Options{ForcedMask: -1}
	}
	log := loggerOrNoop(opts.Logger)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternalInvariant, r)
			qr = nil
		}
	}()

	declaredShiftJIS := strings.EqualFold(opts.Charset, "Shift_JIS") ||
		strings.EqualFold(opts.Charset, "Shift-JIS") ||
		strings.EqualFold(opts.Charset, "SJIS")

	mode := chooseMode(content, declaredShiftJIS)
	log.Debugw("chose mode", "mode", mode, "len", len(content))

	dataBits := &Bits{}
	var numLetters int
	var eciDesignator int
	needsECI := false

	switch mode {
	case ModeNumeric:
		if err := appendNumeric(content, dataBits); err != nil {
			return nil, err
		}
		numLetters = len(content)
	case ModeAlphanumeric:
		if err := appendAlphanumeric(content, dataBits); err != nil {
			return nil, err
		}
		numLetters = len(content)
	case ModeByte:
		enc, eci, isDefault, err := resolveByteCharset(opts.Charset)
		if err != nil {
			return nil, err
		}
		encoded, err := enc.NewEncoder().String(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCharset, err)
		}
		appendByteData([]byte(encoded), dataBits)
		numLetters = dataBits.SizeInBytes()
		if !isDefault {
			if eci > 127 {
				return nil, fmt.Errorf("%w: ECI designator %d exceeds single-byte range", ErrUnsupportedCharset, eci)
			}
			needsECI = true
			eciDesignator = eci
		}
	case ModeKanji:
		if err := appendKanji(content, dataBits); err != nil {
			return nil, err
		}
		numLetters = dataBits.Size() / 13
	default:
		return nil, fmt.Errorf("%w: unsupported mode %v", ErrInvalidContent, mode)
	}

	headerEstimate := &Bits{}
	if needsECI {
		headerEstimate.AppendBits(modeECI.indicatorBits(), 4)
		headerEstimate.AppendBits(uint32(eciDesignator), 8)
	}
	headerEstimate.AppendBits(mode.indicatorBits(), 4)

	var version Version
	if opts.ForcedVersion > 0 {
		if opts.ForcedVersion > int(maxVersion) {
			return nil, fmt.Errorf("%w: forced version %d out of range", ErrCapacityExceeded, opts.ForcedVersion)
		}
		version = Version(opts.ForcedVersion)
		if !fitsVersion(mode, headerEstimate.Size(), dataBits.Size(), level, version) {
			return nil, fmt.Errorf("%w: forced version %d too small", ErrCapacityExceeded, opts.ForcedVersion)
		}
	} else {
		var err error
		version, err = chooseVersion(mode, headerEstimate.Size(), dataBits.Size(), level)
		if err != nil {
			return nil, err
		}
	}
	log.Debugw("chose version", "version", version, "level", level)

	countBits := mode.characterCountBits(int(version))
	if numLetters >= 1<<uint(countBits) {
		return nil, fmt.Errorf("%w: %d characters overflow %d-bit count field", ErrCapacityExceeded, numLetters, countBits)
	}

	final := &Bits{}
	if needsECI {
		final.AppendBits(modeECI.indicatorBits(), 4)
		final.AppendBits(uint32(eciDesignator), 8)
	}
	final.AppendBits(mode.indicatorBits(), 4)
	final.AppendBits(uint32(numLetters), countBits)
	final.AppendStream(dataBits)

	numDataBytes := version.dataBytes(level)
	if err := terminateBits(final, numDataBytes); err != nil {
		return nil, err
	}

	interleaved, err := interleaveWithECBytes(final, version, level)
	if err != nil {
		return nil, err
	}

	var mask int
	var matrix *ByteMatrix
	if opts.ForcedMask >= 0 && opts.ForcedMask <= 7 {
		mask = opts.ForcedMask
		matrix = newByteMatrix(version.Dimension())
		embedFunctionPatterns(version, matrix)
		embedFormatInfo(level, mask, matrix)
		if version >= 7 {
			embedVersionInfo(version, matrix)
		}
		placeData(interleaved, mask, matrix)
	} else {
		mask, matrix = chooseMaskPattern(interleaved, level, version)
	}
	log.Debugw("chose mask", "mask", mask)

	return &QRCode{
		Mode:        mode,
		Level:       level,
		Version:     version,
		MaskPattern: mask,
		Matrix:      matrix,
	}, nil
}
