package qrcode

import (
	"fmt"

	"github.com/luodanyalian/qrcode/internal/gf256"
)

// qrField is the GF(256) field QR Code's Reed-Solomon coding uses,
// primitive polynomial x⁸+x⁴+x³+x²+1 (spec.md §4.2).
var qrField = gf256.NewField(0x11d, 2)

// chooseVersion implements spec.md §4.5 step 1's two-pass fit: the
// character-count field width depends on the version being chosen, so
// a first pass assumes V1's (smallest) width, and a second pass
// re-derives the fit using the first pass's resolved width. This is
// provably sufficient because character-count width is monotonic in
// version and only changes at V10 and V27 (spec.md §9).
func chooseVersion(mode Mode, headerBits, dataBitsLen int, level Level) (Version, error) {
	v1, err := fitVersion(mode, headerBits, dataBitsLen, level, minVersion)
	if err != nil {
		return 0, err
	}
	v2, err := fitVersion(mode, headerBits, dataBitsLen, level, v1)
	if err != nil {
		return 0, err
	}
	return v2, nil
}

// fitVersion scans versions 1..40 for the smallest one whose data
// capacity holds headerBits+charCount(countFrom)+dataBitsLen, using
// countFrom only to pick the character-count field width (not to
// restrict the search).
func fitVersion(mode Mode, headerBits, dataBitsLen int, level Level, countFrom Version) (Version, error) {
	countBits := mode.characterCountBits(int(countFrom))
	totalBits := headerBits + countBits + dataBitsLen
	for v := minVersion; v <= maxVersion; v++ {
		numDataBytes := v.dataBytes(level)
		if totalBits <= numDataBytes*8 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: no version at level %v holds %d bits", ErrCapacityExceeded, level, totalBits)
}

// fitsVersion reports whether headerBits+charCount(v)+dataBitsLen fits
// in v's capacity at level — used for the forced-version path.
func fitsVersion(mode Mode, headerBits, dataBitsLen int, level Level, v Version) bool {
	countBits := mode.characterCountBits(int(v))
	totalBits := headerBits + countBits + dataBitsLen
	return totalBits <= v.dataBytes(level)*8
}

// terminateBits implements spec.md §4.5 step 5: append up to 4 zero
// terminator bits (never past capacity), zero-pad the remaining
// fractional byte, then fill whole bytes alternating 0xEC, 0x11. Fails
// if bits already exceed capacity; the post-condition (exact capacity)
// is checked here with a panic, which Encode's recover turns into an
// InternalInvariant error.
func terminateBits(bits *Bits, numDataBytes int) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits exceed %d-bit capacity", ErrCapacityExceeded, bits.Size(), capacity)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}
	for bits.Size()%8 != 0 {
		bits.AppendBit(false)
	}
	for i := 0; bits.SizeInBytes() < numDataBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xec, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}

	if bits.Size() != capacity {
		panic("qrcode: termination did not reach exact capacity")
	}
	return nil
}

// blockPair holds one Reed-Solomon block's data and EC codewords
// during interleaving (spec.md §3's BlockPair; its lifetime spans only
// this function).
type blockPair struct {
	data []byte
	ec   []byte
}

// interleaveWithECBytes implements spec.md §4.5's interleaving
// algorithm (JIS §8.6): split data codewords into RS blocks per the
// version's ECBlocks table, compute EC codewords per block, then
// concatenate byte i of every block's data (for increasing i), followed
// by byte i of every block's EC.
func interleaveWithECBytes(bits *Bits, v Version, level Level) (*Bits, error) {
	eb := v.ECBlocks(level)
	numDataBytes := eb.totalDataCodewords()
	numTotalBytes := v.TotalCodewords()

	if bits.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("%w: data bytes %d != expected %d", ErrInternalInvariant, bits.SizeInBytes(), numDataBytes)
	}

	blocks := make([]blockPair, 0, eb.numBlocks())
	rs := gf256.NewRSEncoder(qrField, eb.ecPerBlock)
	offset := 0
	maxData, maxEC := 0, eb.ecPerBlock

	appendGroup := func(g blockGroup) error {
		for i := 0; i < g.count; i++ {
			data := make([]byte, g.dataPerBlock)
			bits.ToBytes(offset*8, data, 0, g.dataPerBlock)
			offset += g.dataPerBlock

			ec := make([]byte, eb.ecPerBlock)
			rs.ECC(data, ec)

			blocks = append(blocks, blockPair{data: data, ec: ec})
			if len(data) > maxData {
				maxData = len(data)
			}
		}
		return nil
	}
	if err := appendGroup(eb.groups[0]); err != nil {
		return nil, err
	}
	if eb.groups[1].count > 0 {
		if err := appendGroup(eb.groups[1]); err != nil {
			return nil, err
		}
	}

	result := &Bits{}
	for i := 0; i < maxData; i++ {
		for _, blk := range blocks {
			if i < len(blk.data) {
				result.AppendBits(uint32(blk.data[i]), 8)
			}
		}
	}
	for i := 0; i < maxEC; i++ {
		for _, blk := range blocks {
			if i < len(blk.ec) {
				result.AppendBits(uint32(blk.ec[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != numTotalBytes {
		return nil, fmt.Errorf("%w: interleaved size %d != expected %d", ErrInternalInvariant, result.SizeInBytes(), numTotalBytes)
	}
	return result, nil
}
