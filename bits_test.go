package qrcode

import "testing"

func TestAppendBitsPrefixIndependence(t *testing.T) {
	// spec.md §3's BitStream invariant: the byte representation of the
	// first 8k appended bits depends only on those bits, not on what
	// is appended afterward.
	a := &Bits{}
	a.AppendBits(0xAB, 8)
	prefixA := append([]byte(nil), a.Bytes()...)

	b := &Bits{}
	b.AppendBits(0xAB, 8)
	b.AppendBits(0x3, 3)
	prefixB := b.b[:1]

	if prefixA[0] != prefixB[0] {
		t.Errorf("prefix diverged: %08b vs %08b", prefixA[0], prefixB[0])
	}
}

func TestSizeInBytesRoundsUp(t *testing.T) {
	b := &Bits{}
	b.AppendBits(1, 1)
	if got := b.SizeInBytes(); got != 1 {
		t.Errorf("SizeInBytes() = %d, want 1", got)
	}
	for i := 0; i < 7; i++ {
		b.AppendBit(false)
	}
	if got := b.SizeInBytes(); got != 1 {
		t.Errorf("SizeInBytes() = %d, want 1", got)
	}
	b.AppendBit(true)
	if got := b.SizeInBytes(); got != 2 {
		t.Errorf("SizeInBytes() = %d, want 2", got)
	}
}

func TestAppendStreamConcatenates(t *testing.T) {
	a := &Bits{}
	a.AppendBits(0x5, 3) // 101
	b := &Bits{}
	b.AppendBits(0x3, 2) // 11
	a.AppendStream(b)
	if a.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", a.Size())
	}
	var got uint32
	for i := 0; i < 5; i++ {
		got <<= 1
		if a.b[i/8]&(1<<uint(7-i%8)) != 0 {
			got |= 1
		}
	}
	if got != 0b10111 {
		t.Errorf("concatenated bits = %05b, want 10111", got)
	}
}

func TestAppendBitsPanicsOnOversizedValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when value overflows n bits")
		}
	}()
	b := &Bits{}
	b.AppendBits(8, 3) // 8 needs 4 bits, not 3
}

func TestToBytesReadsAtByteOffset(t *testing.T) {
	b := &Bits{}
	b.AppendBits(0x11, 8)
	b.AppendBits(0x22, 8)
	b.AppendBits(0x33, 8)
	dst := make([]byte, 2)
	b.ToBytes(8, dst, 0, 2)
	if dst[0] != 0x22 || dst[1] != 0x33 {
		t.Errorf("ToBytes = %x, want [22 33]", dst)
	}
}
