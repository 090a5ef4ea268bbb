package wmapro

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/tables"
)

// decodeScaleFactors extracts the scale factors for every channel of the
// current subframe.
//
// Transmitted factors are kept in a double buffer per channel: blocks that
// reuse factors resample the previously transmitted set to the current band
// layout and optionally apply run length coded corrections on top.
func (d *Decoder) decodeScaleFactors() error {
	for i := 0; i < d.channelsForCurSub; i++ {
		c := &d.channel[d.channelIndexes[i]]
		c.scaleFactors = c.savedScaleFactors[1-c.scaleFactorIdx][:]

		// resample scale factors for the new block size, the factors
		// might get resampled several times before new values arrive
		if c.reuseSF {
			sfOffsets := d.sfOffsets[d.tableIdx][c.tableIdx]
			saved := c.savedScaleFactors[c.scaleFactorIdx]
			for b := 0; b < d.numBands; b++ {
				c.scaleFactors[b] = saved[sfOffsets[b]]
			}
		}

		if c.curSubframe == 0 || d.gb.Get1() != 0 {
			if !c.reuseSF {
				// DPCM coded scale factors
				c.scaleFactorStep = int(d.gb.GetBits(2)) + 1
				val := 45 / c.scaleFactorStep
				for b := 0; b < d.numBands; b++ {
					val += sfVLC.Decode(d.gb) - 60
					c.scaleFactors[b] = val
				}
			} else {
				// run length coded differences to the resampled factors
			rl:
				for b := 0; b < d.numBands; b++ {
					var val, skip, sign int

					switch idx := sfRLVLC.Decode(d.gb); {
					case idx == 0:
						code := d.gb.GetBits(14)
						val = int(code >> 6)
						sign = int(code&1) - 1
						skip = int(code&0x3f) >> 1
					case idx == 1: // end of corrections
						break rl
					case idx > 1:
						skip = int(tables.ScaleRLRun[idx])
						val = int(tables.ScaleRLLevel[idx])
						sign = int(d.gb.Get1()) - 1
					default:
						return fmt.Errorf("%w: invalid scale factor code", ErrInvalidData)
					}

					b += skip
					if b >= d.numBands {
						return fmt.Errorf("%w: invalid scale factor coding", ErrInvalidData)
					}
					c.scaleFactors[b] += (val ^ sign) - sign
				}
			}

			// swap buffers
			c.scaleFactorIdx = 1 - c.scaleFactorIdx
			c.tableIdx = d.tableIdx
			c.reuseSF = true
		}

		c.maxScaleFactor = c.scaleFactors[0]
		for b := 1; b < d.numBands; b++ {
			if c.scaleFactors[b] > c.maxScaleFactor {
				c.maxScaleFactor = c.scaleFactors[b]
			}
		}
	}
	return nil
}
