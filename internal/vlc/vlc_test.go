package vlc

import (
	"testing"

	"github.com/llehouerou/go-wmapro/internal/bits"
)

func TestDecodeShortCodes(t *testing.T) {
	// 0 -> "0", 1 -> "10", 2 -> "110", 3 -> "111"
	tab := New(
		[]uint8{1, 2, 3, 3},
		[]uint32{0, 2, 6, 7},
	)

	// "10" "0" "111" "110" "0" = 1001 1111 00 -> 0x9f, 0x00
	r := bits.NewReader([]byte{0x9f, 0x00}, 10)
	want := []int{1, 0, 3, 2, 0}
	for i, w := range want {
		if got := tab.Decode(r); got != w {
			t.Fatalf("symbol %d = %d, want %d", i, got, w)
		}
	}
	if r.Count() != 10 {
		t.Fatalf("Count() = %d, want 10", r.Count())
	}
}

func TestDecodeLongCodes(t *testing.T) {
	// Codes longer than the primary lookup exercise the tree walk.
	tab := New(
		[]uint8{1, 12, 12},
		[]uint32{0, 0x800, 0x801},
	)

	// "100000000001" "0" "100000000000" -> 1000 0000 0001 0100 0000 0000 0
	r := bits.NewReader([]byte{0x80, 0x14, 0x00, 0x00}, 25)
	want := []int{2, 0, 1}
	for i, w := range want {
		if got := tab.Decode(r); got != w {
			t.Fatalf("symbol %d = %d, want %d", i, got, w)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	// Only "00" and "01" are defined; a stream starting with 1 matches nothing.
	tab := New(
		[]uint8{2, 2},
		[]uint32{0, 1},
	)

	r := bits.NewReader([]byte{0xff}, 8)
	if got := tab.Decode(r); got != -1 {
		t.Fatalf("Decode = %d, want -1", got)
	}
}

func TestNewPanicsOnNonPrefixCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New accepted a non-prefix code")
		}
	}()
	// "0" is a prefix of "01".
	New([]uint8{1, 2}, []uint32{0, 1})
}

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New accepted mismatched inputs")
		}
	}()
	New([]uint8{1, 2}, []uint32{0})
}
