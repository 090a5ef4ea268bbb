package wmapro

import "fmt"

// decodeSubframeLength reads the length of the subframe starting at the given
// sample offset.
func (d *Decoder) decodeSubframeLength(offset int) (int, error) {
	// only one length is possible, nothing to read
	if offset == d.samplesPerFrame-d.minSamplesPerSubframe {
		return d.minSamplesPerSubframe, nil
	}

	frameLenShift := 0
	if d.maxSubframeLenBit {
		// 1 bit indicates if the subframe is of maximum length
		if d.gb.Get1() != 0 {
			frameLenShift = 1 + int(d.gb.GetBits(uint(d.subframeLenBits-1)))
		}
	} else {
		frameLenShift = int(d.gb.GetBits(uint(d.subframeLenBits)))
	}

	subframeLen := d.samplesPerFrame >> frameLenShift
	if subframeLen < d.minSamplesPerSubframe || subframeLen > d.samplesPerFrame {
		return 0, fmt.Errorf("%w: broken frame: subframe length %d", ErrInvalidData, subframeLen)
	}
	return subframeLen, nil
}

// decodeTileHeader reconstructs the subframe list of every channel.
//
// Every frame carries a fixed number of samples per channel, split into
// subframes of possibly different sizes per channel. When the split is not
// uniform, the channels with the lowest number of assigned samples are
// considered first: for each of them one bit says whether the channel takes
// part in the next subframe whose size follows in the bitstream. This repeats
// until all channels are fully divided.
func (d *Decoder) decodeTileHeader() error {
	var numSamples [maxChannels]int
	var containsSubframe [maxChannels]bool
	channelsForCurSubframe := d.numChannels
	fixedChannelLayout := false
	minChannelLen := 0

	for c := 0; c < d.numChannels; c++ {
		d.channel[c].numSubframes = 0
	}

	if d.maxNumSubframes == 1 || d.gb.Get1() != 0 {
		fixedChannelLayout = true
	}

	// loop until the frame data is split between the subframes
	for {
		// check which channels contain the subframe
		for c := 0; c < d.numChannels; c++ {
			if numSamples[c] == minChannelLen {
				if fixedChannelLayout || channelsForCurSubframe == 1 ||
					minChannelLen == d.samplesPerFrame-d.minSamplesPerSubframe {
					containsSubframe[c] = true
				} else {
					containsSubframe[c] = d.gb.Get1() != 0
				}
			} else {
				containsSubframe[c] = false
			}
		}

		subframeLen, err := d.decodeSubframeLength(minChannelLen)
		if err != nil {
			return err
		}

		// add subframes to the individual channels and find the new
		// minimum channel length
		minChannelLen += subframeLen
		for c := 0; c < d.numChannels; c++ {
			ch := &d.channel[c]

			if containsSubframe[c] {
				if ch.numSubframes >= maxSubframes {
					return fmt.Errorf("%w: broken frame: too many subframes", ErrInvalidData)
				}
				ch.subframeLen[ch.numSubframes] = subframeLen
				numSamples[c] += subframeLen
				ch.numSubframes++
				if numSamples[c] > d.samplesPerFrame {
					return fmt.Errorf("%w: broken frame: channel length exceeds frame", ErrInvalidData)
				}
			} else if numSamples[c] <= minChannelLen {
				if numSamples[c] < minChannelLen {
					channelsForCurSubframe = 0
					minChannelLen = numSamples[c]
				}
				channelsForCurSubframe++
			}
		}

		if minChannelLen >= d.samplesPerFrame {
			break
		}
	}

	for c := 0; c < d.numChannels; c++ {
		offset := 0
		for i := 0; i < d.channel[c].numSubframes; i++ {
			d.channel[c].subframeOffset[i] = offset
			offset += d.channel[c].subframeLen[i]
		}
	}

	return nil
}
