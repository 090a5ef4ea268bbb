package bits

import "testing"

func TestReaderGetBits(t *testing.T) {
	// 0xA5 0x3C 0xF0 = 1010 0101 0011 1100 1111 0000
	r := NewReader([]byte{0xa5, 0x3c, 0xf0}, 24)

	if got := r.GetBits(4); got != 0xa {
		t.Fatalf("GetBits(4) = %#x, want 0xa", got)
	}
	if got := r.GetBits(8); got != 0x53 {
		t.Fatalf("GetBits(8) = %#x, want 0x53", got)
	}
	if got := r.Count(); got != 12 {
		t.Fatalf("Count() = %d, want 12", got)
	}
	if got := r.Left(); got != 12 {
		t.Fatalf("Left() = %d, want 12", got)
	}
	if got := r.GetBits(12); got != 0xcf0 {
		t.Fatalf("GetBits(12) = %#x, want 0xcf0", got)
	}
}

func TestReaderShowBitsDoesNotConsume(t *testing.T) {
	r := NewReader([]byte{0xde, 0xad}, 16)

	if got := r.ShowBits(8); got != 0xde {
		t.Fatalf("ShowBits(8) = %#x, want 0xde", got)
	}
	if got := r.Count(); got != 0 {
		t.Fatalf("Count() after ShowBits = %d, want 0", got)
	}
	if got := r.GetBits(16); got != 0xdead {
		t.Fatalf("GetBits(16) = %#x, want 0xdead", got)
	}
}

func TestReaderGet1(t *testing.T) {
	r := NewReader([]byte{0xb0}, 8) // 1011 0000
	want := []uint32{1, 0, 1, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := r.Get1(); got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReaderGetSigned(t *testing.T) {
	// 111010 = -6 in 6-bit two's complement, 011111 = 31.
	r := NewReader([]byte{0xe8 | 0x01, 0xf0}, 12) // 1110 1001 1111
	if got := r.GetSigned(6); got != -6 {
		t.Fatalf("GetSigned(6) = %d, want -6", got)
	}
	if got := r.GetSigned(6); got != 31 {
		t.Fatalf("GetSigned(6) = %d, want 31", got)
	}
}

func TestReaderPastEndReadsZero(t *testing.T) {
	r := NewReader([]byte{0xff}, 8)
	r.SkipBits(8)
	if got := r.GetBits(16); got != 0 {
		t.Fatalf("GetBits past end = %#x, want 0", got)
	}
	if got := r.Left(); got != -16 {
		t.Fatalf("Left() = %d, want -16", got)
	}
}

func TestReaderUnalignedShow32(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9a}, 40)
	r.SkipBits(4)
	if got := r.ShowBits(32); got != 0x23456789 {
		t.Fatalf("ShowBits(32) = %#x, want 0x23456789", got)
	}
}
