package mdct

import (
	"math"
	"math/rand"
	"testing"
)

// floatHalf mirrors Half in float64 arithmetic: same pre-rotation, a direct
// positive-exponent DFT in place of the fixed-point FFT, same post-rotation.
// Integer values are kept in their raw scale so results compare directly.
func floatHalf(bits int, input []int32) []float64 {
	n := 1 << bits
	n2 := n >> 1
	n4 := n >> 2
	n8 := n >> 3

	tcos := make([]float64, n4)
	tsin := make([]float64, n4)
	for i := 0; i < n4; i++ {
		angle := 2 * math.Pi * (float64(i) + 0.125) / float64(n)
		tcos[i] = -math.Cos(angle) * (1 << 31)
		tsin[i] = -math.Sin(angle) * (1 << 31)
	}
	cmul := func(are, aim, bre, bim float64) (float64, float64) {
		return (are*bre - aim*bim) / (1 << 32), (are*bim + aim*bre) / (1 << 32)
	}

	xre := make([]float64, n4)
	xim := make([]float64, n4)
	for k := 0; k < n4; k++ {
		xre[k], xim[k] = cmul(float64(input[n2-1-2*k]), float64(input[2*k]), tcos[k], tsin[k])
	}

	zre := make([]float64, n4)
	zim := make([]float64, n4)
	for j := 0; j < n4; j++ {
		for k := 0; k < n4; k++ {
			arg := 2 * math.Pi * float64(j) * float64(k) / float64(n4)
			c, s := math.Cos(arg), math.Sin(arg)
			zre[j] += xre[k]*c - xim[k]*s
			zim[j] += xre[k]*s + xim[k]*c
		}
	}

	for k := 0; k < n8; k++ {
		r0, i1 := cmul(zim[n8-k-1], zre[n8-k-1], tsin[n8-k-1], tcos[n8-k-1])
		r1, i0 := cmul(zim[n8+k], zre[n8+k], tsin[n8+k], tcos[n8+k])
		zre[n8-k-1], zim[n8-k-1] = r0, i0
		zre[n8+k], zim[n8+k] = r1, i1
	}

	out := make([]float64, n2)
	for k := 0; k < n4; k++ {
		out[2*k] = zre[k]
		out[2*k+1] = zim[k]
	}
	return out
}

func TestHalfMatchesFloatReference(t *testing.T) {
	const tol = 4096

	rng := rand.New(rand.NewSource(7))
	for _, bits := range []int{4, 6, 7, 9, 12} {
		n2 := 1 << (bits - 1)
		input := make([]int32, n2)
		for i := range input {
			input[i] = int32(rng.Intn(1<<19) - 1<<18)
		}

		got := make([]int32, n2)
		New(bits).Half(got, input)
		want := floatHalf(bits, input)

		for i := range got {
			if math.Abs(float64(got[i])-want[i]) > tol {
				t.Fatalf("bits=%d sample %d = %d, want %.0f", bits, i, got[i], want[i])
			}
		}
	}
}

func TestHalfZeroInput(t *testing.T) {
	m := New(7)
	input := make([]int32, 64)
	output := make([]int32, 64)
	for i := range output {
		output[i] = -1 // must be overwritten
	}

	m.Half(output, input)
	for i, v := range output {
		if v != 0 {
			t.Fatalf("sample %d = %d, want 0", i, v)
		}
	}
}

func TestNewPanicsOnBadSize(t *testing.T) {
	for _, bits := range []int{3, 15} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d) did not panic", bits)
				}
			}()
			New(bits)
		}()
	}
}
