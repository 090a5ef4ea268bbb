package wmapro

// interleaveOutput downmixes the decoded frame to at most two channels and
// appends it to the output window as interleaved 16-bit PCM.
//
// Mono and stereo pass through. Multichannel layouts fold the center and the
// surround channels into the front pair:
//
//	3ch (L R C):        L+C, R+C
//	4ch (L R Lb Rb):    L+Lb, R+Rb
//	5ch+ (L R C Lb Rb): L+C+Lb, R+C+Rb
func (d *Decoder) interleaveOutput() {
	out := d.out[d.outPos:]

	switch {
	case d.numChannels <= 2:
		for c := 0; c < d.numChannels; c++ {
			src := d.channel[c].out32[:d.samplesPerFrame]
			for i, v := range src {
				out[i*d.numChannels+c] = clipInt16(v >> 12)
			}
		}
	case d.numChannels == 3:
		for i := 0; i < d.samplesPerFrame; i++ {
			c0 := d.channel[0].out32[i]
			c1 := d.channel[1].out32[i]
			c2 := d.channel[2].out32[i]
			out[2*i] = clipInt16((c0 + c2) >> 12)
			out[2*i+1] = clipInt16((c1 + c2) >> 12)
		}
	case d.numChannels == 4:
		for i := 0; i < d.samplesPerFrame; i++ {
			c0 := d.channel[0].out32[i]
			c1 := d.channel[1].out32[i]
			c2 := d.channel[2].out32[i]
			c3 := d.channel[3].out32[i]
			out[2*i] = clipInt16((c0 + c2) >> 12)
			out[2*i+1] = clipInt16((c1 + c3) >> 12)
		}
	default:
		for i := 0; i < d.samplesPerFrame; i++ {
			c0 := d.channel[0].out32[i]
			c1 := d.channel[1].out32[i]
			c2 := d.channel[2].out32[i]
			c3 := d.channel[3].out32[i]
			c4 := d.channel[4].out32[i]
			out[2*i] = clipInt16((c0 + c2 + c3) >> 12)
			out[2*i+1] = clipInt16((c1 + c2 + c4) >> 12)
		}
	}
}

// decodeFrame decodes one frame from the bit reservoir and reports whether
// the trailer bit announces more frames. Errors mark the packet lost; the
// decoder resynchronizes on a following packet.
func (d *Decoder) decodeFrame() (moreFrames bool) {
	gb := d.gb

	// make sure the output window can take the frame
	if d.samplesPerFrame*d.OutputChannels() > len(d.out)-d.outPos {
		d.log.Error().Msg("not enough space for the output samples")
		d.packetLoss = true
		return false
	}

	var frameLen int
	if d.lenPrefix {
		frameLen = int(gb.GetBits(uint(d.log2FrameSize)))
	}

	if err := d.decodeTileHeader(); err != nil {
		d.log.Warn().Err(err).Msg("dropping frame")
		d.packetLoss = true
		return false
	}

	// postproc transform coefficients, not applied
	if d.numChannels > 1 && gb.Get1() != 0 {
		if gb.Get1() != 0 {
			gb.SkipBits(4 * d.numChannels * d.numChannels)
		}
	}

	if d.drcPresent {
		d.drcGain = int(gb.GetBits(8))
	}

	// skip sample counts for the first and the last frame of the stream
	if gb.Get1() != 0 {
		n := uint(ilog2(uint32(d.samplesPerFrame * 2)))
		if gb.Get1() != 0 {
			gb.SkipBits(int(n))
		}
		if gb.Get1() != 0 {
			gb.SkipBits(int(n))
		}
	}

	d.parsedAllSubframes = false
	for i := 0; i < d.numChannels; i++ {
		d.channel[i].decodedSamples = 0
		d.channel[i].curSubframe = 0
		d.channel[i].reuseSF = false
	}

	for !d.parsedAllSubframes {
		if err := d.decodeSubframe(); err != nil {
			d.log.Warn().Err(err).Msg("dropping frame")
			d.packetLoss = true
			return false
		}
	}

	d.interleaveOutput()

	// keep the second half of the output for the overlap-add with the
	// next frame
	for i := 0; i < d.numChannels; i++ {
		c := &d.channel[i]
		copy(c.out32[:d.samplesPerFrame>>1], c.out32[d.samplesPerFrame:])
	}

	if d.skipFrame {
		d.skipFrame = false
	} else {
		d.outPos += d.samplesPerFrame * d.OutputChannels()
	}

	if d.lenPrefix {
		consumed := gb.Count() - d.frameOffset
		if frameLen != consumed+2 {
			d.log.Warn().Int("frame", d.frameNum).Int("skip", frameLen-consumed-1).
				Msg("frame length mismatch")
			d.packetLoss = true
			return false
		}
		// skip the remaining frame data
		gb.SkipBits(frameLen - consumed - 1)
	} else {
		// skip padding up to the trailer bit
		for gb.Count() < d.numSavedBits && gb.Get1() == 0 {
		}
	}

	moreFrames = gb.Get1() != 0
	d.frameNum++
	return moreFrames
}
