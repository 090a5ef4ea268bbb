// Package fft implements a fixed-point split-radix FFT over Q31 complex
// samples for transform sizes 4 through 4096.
package fft

import "github.com/llehouerou/go-wmapro/internal/fixed"

// Complex is a Q31 complex sample.
type Complex struct {
	Re, Im int32
}

// Twiddles for the size-16 butterflies, cos(k*pi/8) in s.31.
const (
	cPI1_8 int32 = 0x7641af3d
	cPI2_8 int32 = 0x5a82799a
	cPI3_8 int32 = 0x30fbc54d
)

// Calc runs an in-place unnormalized FFT of 1<<nbits points, 2 <= nbits <= 12,
// with a positive exponent kernel. Input must already be reordered through
// RevTab.
func Calc(nbits int, z []Complex) {
	dispatch[nbits-2](z)
}

var dispatch = [11]func([]Complex){
	fft4, fft8, fft16, fft32, fft64, fft128, fft256, fft512,
	fft1024, fft2048, fft4096,
}

func butterflies(z []Complex, o, n int, t1, t2, t5, t6 int32) {
	a0, a1, a2, a3 := &z[o], &z[o+n], &z[o+2*n], &z[o+3*n]
	d, s := t5-t1, t5+t1
	a2.Re, a0.Re = a0.Re-s, a0.Re+s
	a3.Im, a1.Im = a1.Im-d, a1.Im+d
	d, s = t2-t6, t2+t6
	a3.Re, a1.Re = a1.Re-d, a1.Re+d
	a2.Im, a0.Im = a0.Im-s, a0.Im+s
}

func transform(z []Complex, o, n int, wre, wim int32) {
	r := z[o+2*n]
	t1 := fixed.MAdd31(r.Re, wre, r.Im, wim)
	t2 := fixed.MSub31(r.Im, wre, r.Re, wim)
	r = z[o+3*n]
	t5 := fixed.MSub31(r.Re, wre, r.Im, wim)
	t6 := fixed.MAdd31(r.Im, wre, r.Re, wim)
	butterflies(z, o, n, t1, t2, t5, t6)
}

func transformZero(z []Complex, o, n int) {
	butterflies(z, o, n, z[o+2*n].Re, z[o+2*n].Im, z[o+3*n].Re, z[o+3*n].Im)
}

func transformEqual(z []Complex, o, n int) {
	t2 := fixed.Mul31(z[o+2*n].Re, cPI2_8)
	u1 := fixed.Mul31(z[o+2*n].Im, cPI2_8)
	u2 := fixed.Mul31(z[o+3*n].Re, cPI2_8)
	t5 := fixed.Mul31(z[o+3*n].Im, cPI2_8)
	butterflies(z, o, n, u1+t2, u1-t2, u2-t5, u2+t5)
}

// pass merges four transforms of n points into one of 4n, reading twiddles
// from the quarter-wave table: forward with (sin, cos) pair ordering, then
// backward with the roles swapped.
func pass(z []Complex, step, n int) {
	w := step
	transformZero(z, 0, n)
	transform(z, 1, n, sincosLookup[w+1], sincosLookup[w])
	w += step
	o := 1
	for {
		o++
		transform(z, o, n, sincosLookup[w+1], sincosLookup[w])
		w += step
		o++
		transform(z, o, n, sincosLookup[w+1], sincosLookup[w])
		w += step
		if w >= 1024 {
			break
		}
	}
	for w > 0 {
		o++
		transform(z, o, n, sincosLookup[w], sincosLookup[w+1])
		w -= step
		o++
		transform(z, o, n, sincosLookup[w], sincosLookup[w+1])
		w -= step
	}
}

func fft4(z []Complex) {
	t3, t1 := z[0].Re-z[1].Re, z[0].Re+z[1].Re
	t8, t6 := z[3].Re-z[2].Re, z[3].Re+z[2].Re
	z[2].Re, z[0].Re = t1-t6, t1+t6
	t4, t2 := z[0].Im-z[1].Im, z[0].Im+z[1].Im
	t7, t5 := z[2].Im-z[3].Im, z[2].Im+z[3].Im
	z[3].Im, z[1].Im = t4-t8, t4+t8
	z[3].Re, z[1].Re = t3-t7, t3+t7
	z[2].Im, z[0].Im = t2-t5, t2+t5
}

func fft8(z []Complex) {
	fft4(z)

	t1, r5 := z[4].Re+z[5].Re, z[4].Re-z[5].Re
	t2, i5 := z[4].Im+z[5].Im, z[4].Im-z[5].Im
	t3, r7 := z[6].Re+z[7].Re, z[6].Re-z[7].Re
	t4, i7 := z[6].Im+z[7].Im, z[6].Im-z[7].Im
	z[5].Re, z[5].Im, z[7].Re, z[7].Im = r5, i5, r7, i7
	t8, t1 := t3-t1, t3+t1
	t7, t2 := t2-t4, t2+t4
	z[4].Re, z[0].Re = z[0].Re-t1, z[0].Re+t1
	z[4].Im, z[0].Im = z[0].Im-t2, z[0].Im+t2
	z[6].Re, z[2].Re = z[2].Re-t7, z[2].Re+t7
	z[6].Im, z[2].Im = z[2].Im-t8, z[2].Im+t8

	transformEqual(z, 1, 2)
}

func fft16(z []Complex) {
	fft8(z)
	fft4(z[8:])
	fft4(z[12:])

	transformZero(z, 0, 4)
	transformEqual(z, 2, 4)
	transform(z, 1, 4, cPI1_8, cPI3_8)
	transform(z, 3, 4, cPI3_8, cPI1_8)
}

func fft32(z []Complex) {
	fft16(z)
	fft8(z[16:])
	fft8(z[24:])
	pass(z, 8192/32, 8)
}

func fft64(z []Complex) {
	fft32(z)
	fft16(z[32:])
	fft16(z[48:])
	pass(z, 8192/64, 16)
}

func fft128(z []Complex) {
	fft64(z)
	fft32(z[64:])
	fft32(z[96:])
	pass(z, 8192/128, 32)
}

func fft256(z []Complex) {
	fft128(z)
	fft64(z[128:])
	fft64(z[192:])
	pass(z, 8192/256, 64)
}

func fft512(z []Complex) {
	fft256(z)
	fft128(z[256:])
	fft128(z[384:])
	pass(z, 8192/512, 128)
}

func fft1024(z []Complex) {
	fft512(z)
	fft256(z[512:])
	fft256(z[768:])
	pass(z, 8192/1024, 256)
}

func fft2048(z []Complex) {
	fft1024(z)
	fft512(z[1024:])
	fft512(z[1536:])
	pass(z, 8192/2048, 512)
}

func fft4096(z []Complex) {
	fft2048(z)
	fft1024(z[2048:])
	fft1024(z[3072:])
	pass(z, 8192/4096, 1024)
}
