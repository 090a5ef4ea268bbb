// Package mdct computes the fixed-point inverse MDCT used to turn decoded
// frequency coefficients back into time-domain samples.
package mdct

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/fft"
	"github.com/llehouerou/go-wmapro/internal/fixed"
)

// IMDCT performs inverse MDCTs of a single size 1<<bits. It is not safe for
// concurrent use because transforms share the instance's scratch buffer.
type IMDCT struct {
	bits    int
	fftBits int
	tcos    []int32
	tsin    []int32
	scratch []fft.Complex
}

// New creates an IMDCT for transforms of 1<<bits points, 4 <= bits <= 14.
func New(bits int) *IMDCT {
	if bits < 4 || bits > 14 {
		panic(fmt.Sprintf("mdct: unsupported transform size 1<<%d", bits))
	}
	n4 := 1 << (bits - 2)
	m := &IMDCT{
		bits:    bits,
		fftBits: bits - 2,
		tcos:    make([]int32, n4),
		tsin:    make([]int32, n4),
		scratch: make([]fft.Complex, n4),
	}
	for i := 0; i < n4; i++ {
		alpha := (0xffffffff>>uint(bits))*uint32(i) + 0xffffffff>>uint(bits+3)
		sin, cos := fixed.SinCos(alpha)
		m.tsin[i] = -sin
		m.tcos[i] = -cos
	}
	return m
}

// Half computes the middle half of the inverse MDCT, the part not derivable
// by symmetry. It reads 1<<(bits-1) coefficients from input and writes
// 1<<(bits-1) samples to output.
func (m *IMDCT) Half(output, input []int32) {
	n2 := 1 << (m.bits - 1)
	n4 := n2 >> 1
	n8 := n4 >> 1
	z := m.scratch
	shift := uint(14 - m.bits)

	// Pre-rotation into bit-reversed order.
	for k := 0; k < n4; k++ {
		j := fft.RevTab[k] >> shift
		z[j].Re, z[j].Im = fixed.CMul(input[n2-1-2*k], input[2*k], m.tcos[k], m.tsin[k])
	}

	fft.Calc(m.fftBits, z)

	// Post-rotation with mirrored reordering.
	for k := 0; k < n8; k++ {
		r0, i1 := fixed.CMul(z[n8-k-1].Im, z[n8-k-1].Re, m.tsin[n8-k-1], m.tcos[n8-k-1])
		r1, i0 := fixed.CMul(z[n8+k].Im, z[n8+k].Re, m.tsin[n8+k], m.tcos[n8+k])
		z[n8-k-1].Re, z[n8-k-1].Im = r0, i0
		z[n8+k].Re, z[n8+k].Im = r1, i1
	}

	for k := 0; k < n4; k++ {
		output[2*k] = z[k].Re
		output[2*k+1] = z[k].Im
	}
}
