package qrcode

import "testing"

func TestDimension(t *testing.T) {
	cases := []struct {
		v    Version
		want int
	}{
		{1, 21},
		{2, 25},
		{40, 177},
	}
	for _, c := range cases {
		if got := c.v.Dimension(); got != c.want {
			t.Errorf("Version(%d).Dimension() = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestAlignmentPatternCentersV1Empty(t *testing.T) {
	if got := Version(1).AlignmentPatternCenters(); got != nil {
		t.Errorf("V1 centers = %v, want nil", got)
	}
}

func TestAlignmentPatternCentersV7(t *testing.T) {
	want := []int{6, 22, 38}
	got := Version(7).AlignmentPatternCenters()
	if len(got) != len(want) {
		t.Fatalf("V7 centers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("V7 centers = %v, want %v", got, want)
		}
	}
}

func TestECBlocksInvariantHoldsAcrossVersionsAndLevels(t *testing.T) {
	for v := int(minVersion); v <= int(maxVersion); v++ {
		for l := L; l <= H; l++ {
			eb := Version(v).ECBlocks(l)
			got := eb.numBlocks()*eb.ecPerBlock + eb.totalDataCodewords()
			want := Version(v).TotalCodewords()
			if got != want {
				t.Errorf("v=%d l=%v: total %d != expected %d", v, l, got, want)
			}
			if got := eb.totalDataCodewords(); got != Version(v).dataBytes(l) {
				t.Errorf("v=%d l=%v: totalDataCodewords %d != dataBytes %d", v, l, got, Version(v).dataBytes(l))
			}
		}
	}
}

func TestFormatInfoBitsDiffersByHammingDistance(t *testing.T) {
	// Adjacent (level, mask) encodings of the 15-bit format info must
	// differ in at least a handful of bits, per the standard's BCH(15,5)
	// minimum distance of 7 — this is what keeps a single-bit photo
	// misread from resolving to the wrong mask/level.
	a := formatInfoBits(L, 0)
	b := formatInfoBits(L, 1)
	if hamming(a, b) < 7 {
		t.Errorf("hamming distance between adjacent format infos = %d, want >= 7", hamming(a, b))
	}
}

func hamming(a, b int) int {
	x := a ^ b
	n := 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}

func TestVersionInfoBitsMatchBCHComputation(t *testing.T) {
	for v := 7; v <= int(maxVersion); v++ {
		bch := bchCode(v, versionInfoPoly)
		computed := (v << 12) | bch
		if computed != vtab[v].pattern {
			t.Errorf("version %d: table %#x != computed %#x", v, vtab[v].pattern, computed)
		}
	}
}

func TestCharacterCountBitsSizeClassBoundaries(t *testing.T) {
	if got := ModeNumeric.characterCountBits(9); got != 10 {
		t.Errorf("V9 numeric count bits = %d, want 10", got)
	}
	if got := ModeNumeric.characterCountBits(10); got != 12 {
		t.Errorf("V10 numeric count bits = %d, want 12", got)
	}
	if got := ModeNumeric.characterCountBits(26); got != 12 {
		t.Errorf("V26 numeric count bits = %d, want 12", got)
	}
	if got := ModeNumeric.characterCountBits(27); got != 14 {
		t.Errorf("V27 numeric count bits = %d, want 14", got)
	}
}
