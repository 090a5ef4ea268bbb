package wmapro

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/fixed"
	"github.com/llehouerou/go-wmapro/internal/tables"
)

const (
	q31One    int32 = 0x7fffffff
	q31CosPI4 int32 = 1518338048 // 0.70703125, the coded approximation of cos(pi/4)
	q30Sqrt2  int32 = 1518338048 // 181/128 in s1.30
)

// decodeDecorrelationMatrix reads a rotation-angle coded decorrelation matrix
// for the group. Angles are 6-bit indexes into a quarter-wave sine table and
// are applied as Givens rotations to a signed diagonal.
func (d *Decoder) decodeDecorrelationMatrix(g *chGroup) {
	var rotationOffset [maxChannels * maxChannels]int
	n := g.numChannels

	for i := range g.matrix {
		g.matrix[i] = 0
	}

	for i := 0; i < n*(n-1)>>1; i++ {
		rotationOffset[i] = int(d.gb.GetBits(6))
	}

	for i := 0; i < n; i++ {
		if d.gb.Get1() != 0 {
			g.matrix[n*i+i] = q31One
		} else {
			g.matrix[n*i+i] = -q31One
		}
	}

	offset := 0
	for i := 1; i < n; i++ {
		for x := 0; x < i; x++ {
			for y := 0; y < i+1; y++ {
				v1 := g.matrix[x*n+y]
				v2 := g.matrix[i*n+y]
				r := rotationOffset[offset+x]

				var sinv, cosv int32
				if r < 32 {
					sinv = d.sin64[r]
					cosv = d.sin64[32-r]
				} else {
					sinv = d.sin64[64-r]
					cosv = -d.sin64[r-32]
				}

				g.matrix[y+x*n] = fixed.MSub31(v1, sinv, v2, cosv)
				g.matrix[y+i*n] = fixed.MAdd31(v1, cosv, v2, sinv)
			}
		}
		offset += i
	}
}

// decodeChannelTransform reads the channel grouping and the transform of
// every group for the current subframe.
func (d *Decoder) decodeChannelTransform() error {
	d.numChGroups = 0
	if d.numChannels <= 1 {
		return nil
	}

	remainingChannels := d.channelsForCurSub

	if d.gb.Get1() != 0 {
		d.log.Warn().Msg("unsupported channel transform bit")
		return fmt.Errorf("%w: unsupported channel transform bit", ErrInvalidData)
	}

	for ; remainingChannels > 0 && d.numChGroups < d.channelsForCurSub; d.numChGroups++ {
		g := &d.chgroup[d.numChGroups]
		g.numChannels = 0
		g.transform = false

		// decode channel mask
		if remainingChannels > 2 {
			for i := 0; i < d.channelsForCurSub; i++ {
				idx := d.channelIndexes[i]
				if !d.channel[idx].grouped && d.gb.Get1() != 0 {
					g.channels[g.numChannels] = idx
					g.numChannels++
					d.channel[idx].grouped = true
				}
			}
		} else {
			g.numChannels = remainingChannels
			slot := 0
			for i := 0; i < d.channelsForCurSub; i++ {
				idx := d.channelIndexes[i]
				if !d.channel[idx].grouped {
					g.channels[slot] = idx
					slot++
				}
				d.channel[idx].grouped = true
			}
		}

		// decode transform type
		if g.numChannels == 2 {
			if d.gb.Get1() != 0 {
				if d.gb.Get1() != 0 {
					d.log.Warn().Msg("unsupported channel transform type")
				}
			} else {
				g.transform = true
				if d.numChannels == 2 {
					g.matrix[0] = q31One
					g.matrix[1] = -q31One
					g.matrix[2] = q31One
					g.matrix[3] = q31One
				} else {
					g.matrix[0] = q31CosPI4
					g.matrix[1] = -q31CosPI4
					g.matrix[2] = q31CosPI4
					g.matrix[3] = q31CosPI4
				}
			}
		} else if g.numChannels > 2 {
			if d.gb.Get1() != 0 {
				g.transform = true
				if d.gb.Get1() != 0 {
					d.decodeDecorrelationMatrix(g)
				} else if g.numChannels > 6 {
					// no default matrix for more than 6 coupled
					// channels, leave the group untransformed
					d.log.Warn().Int("channels", g.numChannels).
						Msg("coupled channels > 6, skipping transform")
					g.transform = false
				} else {
					def := tables.DefaultDecorrelation[g.numChannels]
					copy(g.matrix[:g.numChannels*g.numChannels], def)
				}
			}
		}

		// decode transform on/off, possibly per band
		if g.transform {
			if d.gb.Get1() == 0 {
				for i := 0; i < d.numBands; i++ {
					g.transformBand[i] = d.gb.Get1() != 0
				}
			} else {
				for i := 0; i < d.numBands; i++ {
					g.transformBand[i] = true
				}
			}
		}
		remainingChannels -= g.numChannels
	}

	return nil
}

// inverseChannelTransform reconstructs the individual channel data from the
// grouped and decorrelated coefficients.
func (d *Decoder) inverseChannelTransform() {
	for gi := 0; gi < d.numChGroups; gi++ {
		g := &d.chgroup[gi]
		if !g.transform {
			continue
		}

		var data [maxChannels]int32
		n := g.numChannels

		for b := 0; b < d.numBands; b++ {
			start := d.curSFBOffsets[b]
			end := min(d.curSFBOffsets[b+1], d.subframeLen)

			if g.transformBand[b] {
				// multiply values with the decorrelation matrix
				for y := start; y < end; y++ {
					for i := 0; i < n; i++ {
						ch := &d.channel[g.channels[i]]
						data[i] = int32(ch.out[ch.coefOffset+y] >> 32)
					}

					mi := 0
					for i := 0; i < n; i++ {
						var sum int64
						for k := 0; k < n; k++ {
							sum += int64(data[k]) * int64(g.matrix[mi])
							mi++
						}
						ch := &d.channel[g.channels[i]]
						ch.out[ch.coefOffset+y] = sum << 1
					}
				}
			} else if d.numChannels == 2 {
				// sum-difference coded band left untransformed, both
				// channels only need the sqrt(2) gain
				for i := 0; i < 2; i++ {
					ch := &d.channel[g.channels[i]]
					for y := start; y < end; y++ {
						hi := int32(ch.out[ch.coefOffset+y]>>32) << 2
						ch.out[ch.coefOffset+y] = int64(hi) * int64(q30Sqrt2)
					}
				}
			}
		}
	}
}
