package wmapro

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/fixed"
	"github.com/llehouerou/go-wmapro/internal/tables"
)

// q31TwoFifths scales the base-10 mantissa down for negative exponents.
const q31TwoFifths int32 = 858993459 // 2/5

// rescaleBand turns raw Q32.32 coefficients into Q31 IMDCT input: multiply
// with the quantization mantissa, the power-of-5 part and shift into place.
func rescaleBand(dst []int32, src []int64, mant int32, quant5 int64, shift int) {
	for i := range dst {
		v := fixed.MulShift64(src[i], mant, 31) * quant5
		if shift >= 0 {
			dst[i] = int32(v >> uint(shift))
		} else {
			dst[i] = int32(v << uint(-shift))
		}
	}
}

// windowAndOverlap applies the sine window to the IMDCT output of every
// channel of the current subframe and overlap-adds it with the previous
// block. A shorter current block narrows the window to its length.
func (d *Decoder) windowAndOverlap() {
	for i := 0; i < d.channelsForCurSub; i++ {
		c := &d.channel[d.channelIndexes[i]]

		winlen := c.prevBlockLen
		start := c.coefOffset - winlen>>1
		if d.subframeLen < winlen {
			start += (winlen - d.subframeLen) >> 1
			winlen = d.subframeLen
		}

		win := d.windows[ilog2(uint32(winlen))-blockMinBits]
		half := winlen >> 1

		buf := c.out32[start : start+2*half]
		for x, j := 0, 2*half-1; x < half; x, j = x+1, j-1 {
			s0, s1 := buf[x], buf[j]
			wi, wj := win[x], win[j]
			buf[x] = fixed.MSub31(s0, wj, s1, wi)
			buf[j] = fixed.MAdd31(s0, wi, s1, wj)
		}

		c.prevBlockLen = d.subframeLen
	}
}

// decodeSubframe decodes one subframe: the next block of the channels with
// the smallest number of already decoded samples.
func (d *Decoder) decodeSubframe() error {
	offset := d.samplesPerFrame
	subframeLen := d.samplesPerFrame
	totalSamples := d.samplesPerFrame * d.numChannels
	transmitCoeffs := false

	// find the next block offset and size
	for i := 0; i < d.numChannels; i++ {
		d.channel[i].grouped = false
		if offset > d.channel[i].decodedSamples {
			offset = d.channel[i].decodedSamples
			subframeLen = d.channel[i].subframeLen[d.channel[i].curSubframe]
		}
	}

	// list all channels that contain the estimated block
	d.channelsForCurSub = 0
	for i := 0; i < d.numChannels; i++ {
		c := &d.channel[i]
		totalSamples -= c.decodedSamples

		if offset == c.decodedSamples && subframeLen == c.subframeLen[c.curSubframe] {
			totalSamples -= c.subframeLen[c.curSubframe]
			c.decodedSamples += c.subframeLen[c.curSubframe]
			d.channelIndexes[d.channelsForCurSub] = i
			d.channelsForCurSub++
		}
	}

	// the frame is complete once this block is processed
	if totalSamples == 0 {
		d.parsedAllSubframes = true
	}

	d.tableIdx = ilog2(uint32(d.samplesPerFrame / subframeLen))
	d.numBands = d.numSFB[d.tableIdx]
	d.curSFBOffsets = d.sfbOffsets[d.tableIdx][:]
	curSubwooferCutoff := d.subwooferCutoffs[d.tableIdx]

	for i := 0; i < d.channelsForCurSub; i++ {
		c := &d.channel[d.channelIndexes[i]]
		c.coefOffset = d.samplesPerFrame>>1 + offset
	}

	d.subframeLen = subframeLen
	d.escLen = uint(ilog2(uint32(subframeLen-1)) + 1)

	// skip extended header if any
	if d.gb.Get1() != 0 {
		numFillBits := int(d.gb.GetBits(2))
		if numFillBits == 0 {
			l := d.gb.GetBits(4)
			numFillBits = int(d.gb.GetBits(uint(l))) + 1
		}
		if d.gb.Count()+numFillBits > d.numSavedBits {
			return fmt.Errorf("%w: invalid number of fill bits", ErrInvalidData)
		}
		d.gb.SkipBits(numFillBits)
	}

	if d.gb.Get1() != 0 {
		d.log.Warn().Msg("reserved subframe bit set")
		return fmt.Errorf("%w: reserved bit set", ErrInvalidData)
	}

	if err := d.decodeChannelTransform(); err != nil {
		return err
	}

	for i := 0; i < d.channelsForCurSub; i++ {
		c := &d.channel[d.channelIndexes[i]]
		c.transmitCoefs = d.gb.Get1() != 0
		if c.transmitCoefs {
			transmitCoeffs = true
		}
	}

	if transmitCoeffs {
		quantStep := 90 * d.bitsPerSample >> 4

		// number of vector coded coefficients
		d.transmitNumVecCoeffs = d.gb.Get1() != 0
		if d.transmitNumVecCoeffs {
			numBits := uint(ilog2(uint32((subframeLen+3)/4)) + 1)
			for i := 0; i < d.channelsForCurSub; i++ {
				n := int(d.gb.GetBits(numBits)) << 2
				if n > subframeLen {
					return fmt.Errorf("%w: invalid number of vector coded coefficients %d",
						ErrInvalidData, n)
				}
				d.channel[d.channelIndexes[i]].numVecCoeffs = n
			}
		} else {
			for i := 0; i < d.channelsForCurSub; i++ {
				d.channel[d.channelIndexes[i]].numVecCoeffs = subframeLen
			}
		}

		// quantization step, with an extension code for large deltas
		step := int(d.gb.GetSigned(6))
		quantStep += step
		if step == -32 || step == 31 {
			sign := -1
			if step == 31 {
				sign = 0
			}
			quant := 0
			for d.gb.Count()+5 < d.numSavedBits {
				step = int(d.gb.GetBits(5))
				if step != 31 {
					break
				}
				quant += 31
			}
			quantStep += ((quant + step) ^ sign) - sign
		}
		if quantStep < 0 {
			d.log.Debug().Int("step", quantStep).Msg("negative quant step")
		}

		// quantization step modifiers for every channel
		if d.channelsForCurSub == 1 {
			d.channel[d.channelIndexes[0]].quantStep = quantStep
		} else {
			modifierLen := uint(d.gb.GetBits(3))
			for i := 0; i < d.channelsForCurSub; i++ {
				c := &d.channel[d.channelIndexes[i]]
				c.quantStep = quantStep
				if d.gb.Get1() != 0 {
					if modifierLen != 0 {
						c.quantStep += int(d.gb.GetBits(modifierLen)) + 1
					} else {
						c.quantStep++
					}
				}
			}
		}

		if err := d.decodeScaleFactors(); err != nil {
			return err
		}
	}

	// parse coefficients
	for i := 0; i < d.channelsForCurSub; i++ {
		ci := d.channelIndexes[i]
		c := &d.channel[ci]
		if c.transmitCoefs && d.gb.Count() < d.numSavedBits {
			if err := d.decodeCoeffs(ci); err != nil {
				return err
			}
		} else {
			coefs := c.out[c.coefOffset:]
			for x := 0; x < subframeLen; x++ {
				coefs[x] = 0
			}
		}
	}

	if transmitCoeffs {
		scale := ilog2(uint32(subframeLen)) + d.bitsPerSample - 2

		d.inverseChannelTransform()

		for i := 0; i < d.channelsForCurSub; i++ {
			ci := d.channelIndexes[i]
			c := &d.channel[ci]
			sf := c.scaleFactors

			if ci == d.lfeChannel {
				for x := curSubwooferCutoff; x < subframeLen; x++ {
					d.tmp[x] = 0
				}
			}

			// inverse quantization and rescaling
			for b := 0; b < d.numBands; b++ {
				start := d.curSFBOffsets[b]
				end := min(d.curSFBOffsets[b+1], subframeLen)

				exp := c.quantStep - (c.maxScaleFactor-sf[b])*c.scaleFactorStep
				expfrac := exp % 20
				expint := exp / 20
				if expfrac < 0 {
					expint--
					expfrac += 20
				}

				mant := tables.Pow10Mant[expfrac]
				quant5 := int64(1)
				if expint > 0 {
					for e := 0; e < expint; e++ {
						quant5 *= 5
					}
				} else if expint < 0 {
					for e := expint; e < 0; e++ {
						mant = fixed.Mul32(mant, q31TwoFifths)
					}
				}

				shift := scale - expint - int(tables.Pow10Exp[expfrac]) + 2
				rescaleBand(d.tmp[start:end], c.out[c.coefOffset+start:c.coefOffset+end],
					mant, quant5, shift)
			}

			d.imdct[ilog2(uint32(subframeLen))-blockMinBits].
				Half(c.out32[c.coefOffset:], d.tmp[:subframeLen])
		}
	} else {
		for i := 0; i < d.channelsForCurSub; i++ {
			c := &d.channel[d.channelIndexes[i]]
			for x := 0; x < subframeLen; x++ {
				c.out32[c.coefOffset+x] = 0
			}
		}
	}

	d.windowAndOverlap()

	for i := 0; i < d.channelsForCurSub; i++ {
		c := &d.channel[d.channelIndexes[i]]
		if c.curSubframe >= c.numSubframes {
			return fmt.Errorf("%w: broken subframe", ErrInvalidData)
		}
		c.curSubframe++
	}

	return nil
}
