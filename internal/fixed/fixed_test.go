package fixed

import (
	"math"
	"testing"
)

func TestSinCosMatchesFloat(t *testing.T) {
	// Phases spread over all four quadrants, including the edges.
	phases := []uint32{
		0,
		0x10000000, // pi/8
		0x20000000, // pi/4
		0x40000000, // pi/2
		0x60000000,
		0x80000000, // pi
		0xa0000000,
		0xc0000000, // 3pi/2
		0xe0000000,
		0xffffffff,
		12345,
		0x12345678,
		0x87654321,
		0xdeadbeef,
	}

	const tol = 64 // full scale is 1<<31

	for _, phase := range phases {
		sin, cos := SinCos(phase)

		angle := 2 * math.Pi * float64(phase) / (1 << 32)
		wantSin := math.Sin(angle) * (1 << 31)
		wantCos := math.Cos(angle) * (1 << 31)

		if math.Abs(float64(sin)-wantSin) > tol {
			t.Errorf("SinCos(%#x) sin = %d, want %.0f", phase, sin, wantSin)
		}
		if math.Abs(float64(cos)-wantCos) > tol {
			t.Errorf("SinCos(%#x) cos = %d, want %.0f", phase, cos, wantCos)
		}
	}
}

func TestSinCosUnitMagnitude(t *testing.T) {
	for i := 0; i < 64; i++ {
		phase := uint32(i) << 26
		sin, cos := SinCos(phase)
		mag := math.Hypot(float64(sin), float64(cos))
		if rel := math.Abs(mag-(1<<31)) / (1 << 31); rel > 1e-7 {
			t.Errorf("SinCos(%#x): |sin,cos| = %.0f, relative error %g", phase, mag, rel)
		}
	}
}

func TestMul32(t *testing.T) {
	cases := []struct{ a, b int32 }{
		{0, 0},
		{1 << 30, 1 << 30},
		{-1 << 30, 1 << 30},
		{0x7fffffff, 0x7fffffff},
		{-0x80000000, 0x7fffffff},
		{123456789, -987654321},
	}
	for _, c := range cases {
		want := int32(int64(c.a) * int64(c.b) >> 32)
		if got := Mul32(c.a, c.b); got != want {
			t.Errorf("Mul32(%d, %d) = %d, want %d", c.a, c.b, got, want)
		}
		want = int32(int64(c.a) * int64(c.b) >> 31)
		if got := Mul31(c.a, c.b); got != want {
			t.Errorf("Mul31(%d, %d) = %d, want %d", c.a, c.b, got, want)
		}
	}
}

func TestMAdd31MSub31(t *testing.T) {
	cases := []struct{ a, t, b, v int32 }{
		{1 << 29, 1 << 29, 1 << 29, 1 << 29},
		{-1 << 29, 1 << 28, 1 << 27, -1 << 26},
		{0x7fffffff, 0x7fffffff, 0x7fffffff, 0x7fffffff},
		{123, 456, 789, 1011},
	}
	for _, c := range cases {
		wantAdd := int32((int64(c.a)*int64(c.t)+int64(c.b)*int64(c.v))>>32) << 1
		if got := MAdd31(c.a, c.t, c.b, c.v); got != wantAdd {
			t.Errorf("MAdd31(%d,%d,%d,%d) = %d, want %d", c.a, c.t, c.b, c.v, got, wantAdd)
		}
		wantSub := int32((int64(c.a)*int64(c.t)-int64(c.b)*int64(c.v))>>32) << 1
		if got := MSub31(c.a, c.t, c.b, c.v); got != wantSub {
			t.Errorf("MSub31(%d,%d,%d,%d) = %d, want %d", c.a, c.t, c.b, c.v, got, wantSub)
		}
	}
}

func TestCMul(t *testing.T) {
	are, aim := int32(1<<28), int32(-1<<27)
	bre, bim := int32(1<<30), int32(1<<29)

	re, im := CMul(are, aim, bre, bim)

	wantRe := int32((int64(are)*int64(bre) - int64(aim)*int64(bim)) >> 32)
	wantIm := int32((int64(are)*int64(bim) + int64(aim)*int64(bre)) >> 32)
	if re != wantRe || im != wantIm {
		t.Errorf("CMul = (%d, %d), want (%d, %d)", re, im, wantRe, wantIm)
	}
}

func TestMulShift64(t *testing.T) {
	cases := []struct {
		a     int64
		b     int32
		shift uint
	}{
		{1 << 40, 1 << 30, 31},
		{-1 << 40, 1 << 30, 31},
		{0x1234567890abcdef, 0x12345678, 31},
		{-0x1234567890abcdef, 0x7fffffff, 31},
		{1 << 20, -1 << 30, 31},
	}
	for _, c := range cases {
		// reference through float is precise enough for these magnitudes
		want := float64(c.a) * float64(c.b) / float64(int64(1)<<c.shift)
		got := MulShift64(c.a, c.b, c.shift)
		if diff := math.Abs(float64(got) - want); diff > math.Abs(want)*1e-12+64 {
			t.Errorf("MulShift64(%d, %d, %d) = %d, want about %.0f", c.a, c.b, c.shift, got, want)
		}
	}
}
