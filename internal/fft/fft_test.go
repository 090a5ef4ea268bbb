package fft

import (
	"math"
	"math/rand"
	"testing"
)

// permute places time-domain samples into the reordered input layout Calc
// expects.
func permute(nbits int, x []Complex) []Complex {
	z := make([]Complex, len(x))
	for k, v := range x {
		z[RevTab[k]>>(12-nbits)] = v
	}
	return z
}

func TestCalcImpulseAtZero(t *testing.T) {
	const amp = 1 << 27

	for nbits := 2; nbits <= 12; nbits++ {
		n := 1 << nbits
		x := make([]Complex, n)
		x[0] = Complex{Re: amp}

		z := permute(nbits, x)
		Calc(nbits, z)

		// A unit impulse transforms to a flat spectrum, exactly: every
		// twiddle multiply sees a zero operand on the path that matters.
		for j, v := range z {
			if v.Re != amp || v.Im != 0 {
				t.Fatalf("n=%d bin %d = (%d,%d), want (%d,0)", n, j, v.Re, v.Im, amp)
			}
		}
	}
}

func TestCalcShiftedImpulse(t *testing.T) {
	const (
		amp = 1 << 27
		tol = 1 << 10
	)

	for nbits := 2; nbits <= 12; nbits++ {
		n := 1 << nbits
		for _, p := range []int{1, n / 3, n - 1} {
			x := make([]Complex, n)
			x[p] = Complex{Re: amp}

			z := permute(nbits, x)
			Calc(nbits, z)

			for j, v := range z {
				arg := 2 * math.Pi * float64(j) * float64(p) / float64(n)
				wantRe := amp * math.Cos(arg)
				wantIm := amp * math.Sin(arg)
				if math.Abs(float64(v.Re)-wantRe) > tol || math.Abs(float64(v.Im)-wantIm) > tol {
					t.Fatalf("n=%d p=%d bin %d = (%d,%d), want (%.0f,%.0f)",
						n, p, j, v.Re, v.Im, wantRe, wantIm)
				}
			}
		}
	}
}

func TestCalcMatchesDirectTransform(t *testing.T) {
	const tol = 1 << 12

	rng := rand.New(rand.NewSource(1))
	for _, nbits := range []int{2, 3, 4, 6} {
		n := 1 << nbits
		x := make([]Complex, n)
		for i := range x {
			x[i] = Complex{
				Re: int32(rng.Intn(1<<21) - 1<<20),
				Im: int32(rng.Intn(1<<21) - 1<<20),
			}
		}

		z := permute(nbits, x)
		Calc(nbits, z)

		for j := 0; j < n; j++ {
			var sumRe, sumIm float64
			for k := 0; k < n; k++ {
				arg := 2 * math.Pi * float64(j) * float64(k) / float64(n)
				c, s := math.Cos(arg), math.Sin(arg)
				sumRe += float64(x[k].Re)*c - float64(x[k].Im)*s
				sumIm += float64(x[k].Re)*s + float64(x[k].Im)*c
			}
			if math.Abs(float64(z[j].Re)-sumRe) > tol || math.Abs(float64(z[j].Im)-sumIm) > tol {
				t.Fatalf("n=%d bin %d = (%d,%d), want (%.0f,%.0f)",
					n, j, z[j].Re, z[j].Im, sumRe, sumIm)
			}
		}
	}
}
