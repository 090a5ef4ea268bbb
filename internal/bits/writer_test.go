package bits

import (
	"bytes"
	"testing"
)

func TestWriterWriteBits(t *testing.T) {
	buf := make([]byte, 3)
	w := NewWriter(buf)

	w.WriteBits(4, 0xa)
	w.WriteBits(8, 0x53)
	w.WriteBits(12, 0xcf0)

	if w.Len() != 24 {
		t.Fatalf("Len() = %d, want 24", w.Len())
	}
	if !bytes.Equal(buf, []byte{0xa5, 0x3c, 0xf0}) {
		t.Fatalf("buf = %x, want a53cf0", buf)
	}
}

func TestWriterOverwritesStaleBits(t *testing.T) {
	buf := []byte{0xff, 0xff}
	w := NewWriter(buf)

	w.WriteBits(12, 0)
	if buf[0] != 0 || buf[1]&0xf0 != 0 {
		t.Fatalf("buf = %x, want first 12 bits zero", buf)
	}
	// The low 4 bits were never written and must survive.
	if buf[1]&0x0f != 0x0f {
		t.Fatalf("buf = %x, trailing bits clobbered", buf)
	}
}

func TestWriterReset(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)

	w.WriteBits(8, 0x12)
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", w.Len())
	}
	w.WriteBits(8, 0x34)
	if buf[0] != 0x34 {
		t.Fatalf("buf[0] = %#x, want 0x34", buf[0])
	}
}

func TestCopyBitsRoundTrip(t *testing.T) {
	src := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}

	// Copy an unaligned span and read it back through a Reader.
	buf := make([]byte, 8)
	w := NewWriter(buf)
	w.WriteBits(3, 0x5) // misalign the destination too
	w.CopyBits(src, 5, 37)

	r := NewReader(buf, w.Len())
	if got := r.GetBits(3); got != 0x5 {
		t.Fatalf("prefix = %#x, want 0x5", got)
	}
	want := NewReader(src, 48)
	want.SkipBits(5)
	for n := 37; n > 0; {
		take := uint(16)
		if n < 16 {
			take = uint(n)
		}
		g, w := r.GetBits(take), want.GetBits(take)
		if g != w {
			t.Fatalf("copied bits mismatch: got %#x, want %#x", g, w)
		}
		n -= int(take)
	}
}
