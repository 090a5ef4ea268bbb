package wmapro

import (
	"testing"

	"github.com/llehouerou/go-wmapro/internal/tables"
)

// zeroPairSymbol returns the vector code whose symbol is two zero values.
func zeroPairSymbol(t *testing.T) int {
	t.Helper()
	for i, v := range tables.SymbolToVec2 {
		if v == 0 {
			return i
		}
	}
	t.Fatal("no zero pair in the vector code table")
	return -1
}

// TestDecodeCoeffsVectorEscapes drives the vector decode through the full
// escape chain: the four-value escape down to pairs, the pair escape down to
// single values, and the single-value escape out to an uncompressed level.
func TestDecodeCoeffsVectorEscapes(t *testing.T) {
	d := mustDecoder(t, testConfig())
	d.transmitNumVecCoeffs = true
	d.subframeLen = 64
	d.escLen = 6
	ci := &d.channel[0]
	ci.coefOffset = 0
	ci.numVecCoeffs = 4
	ci.out[4] = 1 << 32 // stale value the run level prologue must clear

	var b bitstream
	b.put(1, 0) // run level table 0
	b.put(uint(tables.Vec4HuffBits[vec4Escape]), tables.Vec4HuffCodes[vec4Escape])
	// first pair: escape again, then two single values
	b.put(uint(tables.Vec2HuffBits[vec2Escape]), tables.Vec2HuffCodes[vec2Escape])
	b.put(uint(tables.Vec1HuffBits[vec1Escape]), tables.Vec1HuffCodes[vec1Escape])
	b.put(1, 0)                                                  // 8 bit uncompressed value
	b.put(8, 5)                                                  // escape value 100+5
	b.put(uint(tables.Vec1HuffBits[7]), tables.Vec1HuffCodes[7]) // plain value 7
	// second pair: a regular symbol of two zeros
	zp := zeroPairSymbol(t)
	b.put(uint(tables.Vec2HuffBits[zp]), tables.Vec2HuffCodes[zp])
	// signs for the two nonzero values
	b.put(1, 1) // positive
	b.put(1, 0) // negative
	// rest of the subframe: immediate end of block
	b.put(uint(tables.Coef0HuffBits[1]), tables.Coef0HuffCodes[1])
	feedBits(t, d, &b)

	if err := d.decodeCoeffs(0); err != nil {
		t.Fatal(err)
	}

	want := [4]int64{105 << 32, -7 << 32, 0, 0}
	for i, w := range want {
		if ci.out[i] != w {
			t.Errorf("coef %d = %#x, want %#x", i, ci.out[i], w)
		}
	}
	for i := 4; i < d.subframeLen; i++ {
		if ci.out[i] != 0 {
			t.Fatalf("coef %d = %#x, want 0", i, ci.out[i])
		}
	}
}
