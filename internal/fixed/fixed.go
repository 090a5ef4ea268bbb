// Package fixed provides the integer-only arithmetic primitives shared by the
// transform and reconstruction stages: CORDIC sine/cosine and the scaled
// 32x32->64 multiply helpers every butterfly and window is built from.
package fixed

// cordicGain compensates for the magnitude growth of the CORDIC rotation
// sequence (product of 1/cos(atan(2^-i)) over all iterations, ~0.607253 of
// full scale).
const cordicGain int32 = -1304065735 // int32(0xb2458939)

// SinCos computes sine and cosine by iterative vector rotation.
//
// phase covers [0, 2pi) as the full uint32 range. The results are signed
// fractions of full scale: math.MinInt32 and math.MaxInt32 represent -1 and 1.
// Gives at least 24 bits of precision and is fully deterministic, which the
// bit-exact decode pipeline depends on.
func SinCos(phase uint32) (sin, cos int32) {
	x := cordicGain
	y := int32(0)
	z := phase

	// The rotation loop needs z somewhere in [0, pi].
	switch {
	case z < 0xffffffff/4:
		// first quadrant, z += pi/2 to correct
		x = -x
		z += 0xffffffff / 4
	case z < 3*(0xffffffff/4):
		// third quadrant, z -= pi/2 to correct
		z -= 0xffffffff / 4
	default:
		// fourth quadrant, z -= 3pi/2 to correct
		x = -x
		z -= 3 * (0xffffffff / 4)
	}

	// Each iteration adds roughly one bit of precision. The pivot point for
	// the rotation direction is pi/2.
	for i := 0; i < 31; i++ {
		x1 := x >> uint(i)
		y1 := y >> uint(i)
		z1 := atanTable[i]

		if z >= 0xffffffff/4 {
			x -= y1
			y += x1
			z -= z1
		} else {
			x += y1
			y -= x1
			z += z1
		}
	}

	return y, x
}

// Mul32 returns the high 32 bits of the 64-bit product, i.e. (a*b) >> 32.
func Mul32(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 32)
}

// Mul31 multiplies two Q31 fractions: (a*b) >> 31.
func Mul31(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 31)
}

// MAdd31 returns ((a*t + b*v) >> 32) << 1, the Q31 rotation sum used by the
// butterfly twiddles, the decorrelation matrix build and the window fold.
func MAdd31(a, t, b, v int32) int32 {
	return int32(((int64(a)*int64(t) + int64(b)*int64(v)) >> 32) << 1)
}

// MSub31 returns ((a*t - b*v) >> 32) << 1.
func MSub31(a, t, b, v int32) int32 {
	return int32(((int64(a)*int64(t) - int64(b)*int64(v)) >> 32) << 1)
}

// CMul multiplies two complex Q31 values without the renormalizing shift:
// re = (are*bre - aim*bim) >> 32, im = (are*bim + aim*bre) >> 32.
func CMul(are, aim, bre, bim int32) (re, im int32) {
	re = int32((int64(are)*int64(bre) - int64(aim)*int64(bim)) >> 32)
	im = int32((int64(are)*int64(bim) + int64(aim)*int64(bre)) >> 32)
	return re, im
}

// MulShift64 multiplies a 64-bit accumulator by a 32-bit factor and shifts the
// 96-bit product right, splitting the accumulator so no intermediate bits are
// lost: ((hi(a)*b) << (32-shift)) + ((lo(a)*b) >> shift).
func MulShift64(a int64, b int32, shift uint) int64 {
	hi := a >> 32
	lo := int64(uint32(a))
	return (hi*int64(b))<<(32-shift) + (lo*int64(b))>>shift
}
