package qrcode

import (
	"errors"
	"testing"
)

func TestChooseVersionPicksSmallestThatFits(t *testing.T) {
	b := &Bits{}
	if err := appendNumeric("12345", b); err != nil {
		t.Fatal(err)
	}
	header := &Bits{}
	header.AppendBits(ModeNumeric.indicatorBits(), 4)
	v, err := chooseVersion(ModeNumeric, header.Size(), b.Size(), L)
	if err != nil {
		t.Fatalf("chooseVersion: %v", err)
	}
	if v != 1 {
		t.Errorf("chooseVersion() = %d, want 1", v)
	}
}

func TestChooseVersionOverflowsToErrCapacityExceeded(t *testing.T) {
	b := &Bits{}
	for i := 0; i < 24000; i++ { // V40-L holds 2956 data bytes = 23648 bits
		b.AppendBit(false)
	}
	_, err := chooseVersion(ModeByte, 4, b.Size(), L)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v, want ErrCapacityExceeded", err)
	}
}

func TestTerminateBitsPadsToExactCapacity(t *testing.T) {
	b := &Bits{}
	b.AppendBits(0x1, 4)
	if err := terminateBits(b, 2); err != nil {
		t.Fatalf("terminateBits: %v", err)
	}
	if b.Size() != 16 {
		t.Fatalf("Size() = %d, want 16", b.Size())
	}
	// terminator nibble: 0001 + 0000 (terminator) = byte 0x10, then pad byte 0xEC
	if b.Bytes()[0] != 0x10 {
		t.Errorf("first byte = %#x, want 0x10", b.Bytes()[0])
	}
	if b.Bytes()[1] != 0xec {
		t.Errorf("second byte = %#x, want 0xec", b.Bytes()[1])
	}
}

func TestTerminateBitsAlternatesPadBytes(t *testing.T) {
	b := &Bits{}
	if err := terminateBits(b, 3); err != nil {
		t.Fatalf("terminateBits: %v", err)
	}
	// empty input: 4 terminator bits + 4 alignment bits = 0x00, then pads
	want := []byte{0x00, 0xec, 0x11}
	for i, w := range want {
		if b.Bytes()[i] != w {
			t.Errorf("Bytes()[%d] = %#x, want %#x", i, b.Bytes()[i], w)
		}
	}
}

func TestTerminateBitsRejectsOverCapacity(t *testing.T) {
	b := &Bits{}
	b.AppendBits(0xff, 8)
	b.AppendBits(0xff, 8)
	err := terminateBits(b, 1)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v, want ErrCapacityExceeded", err)
	}
}

func TestInterleaveWithECBytesProducesExpectedTotalSize(t *testing.T) {
	// V5-H has 4 blocks (2 groups of 2) at 22 EC bytes/block, 11 and 12
	// data bytes/block respectively.
	v := Version(5)
	level := H
	eb := v.ECBlocks(level)
	data := &Bits{}
	for i := 0; i < eb.totalDataCodewords(); i++ {
		data.AppendBits(uint32(i%256), 8)
	}
	out, err := interleaveWithECBytes(data, v, level)
	if err != nil {
		t.Fatalf("interleaveWithECBytes: %v", err)
	}
	if got, want := out.SizeInBytes(), v.TotalCodewords(); got != want {
		t.Errorf("interleaved size = %d, want %d", got, want)
	}
}

func TestInterleaveWithECBytesRejectsWrongSizedInput(t *testing.T) {
	v := Version(1)
	data := &Bits{}
	data.AppendBits(0, 8) // far short of V1-L's 19 data bytes
	_, err := interleaveWithECBytes(data, v, L)
	if !errors.Is(err, ErrInternalInvariant) {
		t.Errorf("err = %v, want ErrInternalInvariant", err)
	}
}
