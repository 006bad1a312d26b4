package qrcode

import "testing"

func TestEmbedFunctionPatternsSetsFinderCorners(t *testing.T) {
	v := Version(1)
	m := newByteMatrix(v.Dimension())
	embedFunctionPatterns(v, m)

	// top-left finder's outer ring must be fully dark at (0,0) and (6,6).
	if m.Get(0, 0) != 1 {
		t.Errorf("Get(0,0) = %d, want 1", m.Get(0, 0))
	}
	if m.Get(6, 6) != 1 {
		t.Errorf("Get(6,6) = %d, want 1", m.Get(6, 6))
	}
	// finder center is dark, inner ring is light
	if m.Get(3, 3) != 1 {
		t.Errorf("Get(3,3) = %d, want 1 (finder center)", m.Get(3, 3))
	}
	if m.Get(1, 1) != 0 {
		t.Errorf("Get(1,1) = %d, want 0 (finder inner ring)", m.Get(1, 1))
	}
	// dark module is always set
	if m.Get(8, v.Dimension()-8) != 1 {
		t.Errorf("dark module not set")
	}
}

func TestEmbedFunctionPatternsSkipsAlignmentOnV1(t *testing.T) {
	v := Version(1)
	m := newByteMatrix(v.Dimension())
	embedFunctionPatterns(v, m)
	// V1 has no alignment pattern; center of the symbol must remain unset.
	mid := v.Dimension() / 2
	if m.Get(mid, mid) != -1 {
		t.Errorf("V1 center = %d, want -1 (unset, no alignment pattern)", m.Get(mid, mid))
	}
}

func TestPlaceDataFillsEveryNonFunctionCell(t *testing.T) {
	v := Version(1)
	m := newByteMatrix(v.Dimension())
	embedFunctionPatterns(v, m)
	embedFormatInfo(L, 0, m)

	bits := &Bits{}
	numDataBits := v.dataBytes(L) * 8
	// V1-L total codewords (26) fill the whole data region with no EC
	// split needed for this structural check; pad with zero bits.
	for i := 0; i < numDataBits; i++ {
		bits.AppendBit(false)
	}
	// account for the fact placeData consumes exactly one bit stream
	// covering the full data+EC region for the chosen version/level;
	// use the EC-block total instead of raw data bytes.
	eb := v.ECBlocks(L)
	full := &Bits{}
	for i := 0; i < eb.numBlocks()*eb.ecPerBlock*8+numDataBits; i++ {
		full.AppendBit(i%2 == 0)
	}
	placeData(full, -1, m)

	for y := 0; y < m.dim; y++ {
		for x := 0; x < m.dim; x++ {
			if m.Get(x, y) == -1 {
				t.Fatalf("cell (%d,%d) left unset after placeData", x, y)
			}
		}
	}
}

func TestEmbedFormatInfoWritesFirstCopyBits(t *testing.T) {
	v := Version(1)
	m := newByteMatrix(v.Dimension())
	embedFunctionPatterns(v, m)
	embedFormatInfo(M, 3, m)
	bits := formatInfoBits(M, 3)
	for i := 0; i < 15; i++ {
		want := int((bits >> uint(i)) & 1)
		c := formatInfoCoordinates[i]
		if got := m.Get(c[0], c[1]); got != want {
			t.Errorf("format info bit %d at (%d,%d) = %d, want %d", i, c[0], c[1], got, want)
		}
	}
}

func TestEmbedVersionInfoAreaSetOnV7(t *testing.T) {
	v := Version(7)
	m := newByteMatrix(v.Dimension())
	embedFunctionPatterns(v, m)
	embedVersionInfo(v, m)
	if m.Get(5, m.dim-9) == -1 {
		t.Errorf("version info area left unset for V7")
	}
}
