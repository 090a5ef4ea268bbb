package wmapro

import (
	"math"
	"math/rand"
	"testing"
)

// TestDecorrelationMatrixRowNorms decodes matrices from random rotation
// angles and sign bits and checks that every row keeps unit scale: the
// matrix is a product of Givens rotations applied to a signed identity.
func TestDecorrelationMatrixRowNorms(t *testing.T) {
	cfg := testConfig()
	cfg.Channels = 6
	d := mustDecoder(t, cfg)

	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{2, 3, 4, 6} {
		for trial := 0; trial < 4; trial++ {
			var b bitstream
			for i := 0; i < n*(n-1)/2; i++ {
				b.put(6, uint32(rng.Intn(64)))
			}
			for i := 0; i < n; i++ {
				b.put(1, uint32(rng.Intn(2)))
			}
			feedBits(t, d, &b)

			g := &chGroup{numChannels: n}
			d.decodeDecorrelationMatrix(g)

			for row := 0; row < n; row++ {
				var norm float64
				for col := 0; col < n; col++ {
					v := float64(g.matrix[row*n+col]) / (1 << 31)
					norm += v * v
				}
				if math.Abs(norm-1) > 1e-4 {
					t.Fatalf("n=%d trial %d row %d: squared norm %f", n, trial, row, norm)
				}
			}
		}
	}
}
