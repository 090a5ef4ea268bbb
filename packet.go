package wmapro

import (
	"fmt"

	"github.com/llehouerou/go-wmapro/internal/bits"
)

// saveBits feeds length bits from the packet reader into the bit reservoir.
// Without appendMode the reservoir is reset first: the bits before the
// current position in the same byte are copied too and skipped later, so the
// bulk of the data moves with a byte copy. The frame reader is rewound to the
// start of the reservoir afterwards.
func (d *Decoder) saveBits(gb *bits.Reader, length int, appendMode bool) {
	if !appendMode {
		d.frameOffset = gb.Count() & 7
		d.numSavedBits = d.frameOffset
		d.pw.Reset()
	}

	buflen := (d.numSavedBits + length + 8) >> 3
	if length <= 0 || buflen > maxFrameSize {
		d.log.Warn().Msg("packet frame too large for the bit reservoir")
		d.packetLoss = true
		return
	}

	d.numSavedBits += length
	if !appendMode {
		d.pw.CopyBits(gb.Data(), gb.Count()&^7, d.numSavedBits)
	} else {
		align := 8 - gb.Count()&7
		if align > length {
			align = length
		}
		d.pw.WriteBits(uint(align), gb.GetBits(uint(align)))
		length -= align
		d.pw.CopyBits(gb.Data(), gb.Count(), length)
	}
	gb.SkipBits(length)

	d.gb = bits.NewReader(d.frameData[:], d.numSavedBits)
	d.gb.SkipBits(d.frameOffset)
}

// DecodePacket decodes all frames carried by one packet of BlockAlign bytes
// and writes them to out as interleaved 16-bit PCM.
//
// It returns the number of samples produced per output channel, the number
// of input bytes consumed, and an error if the packet was lost or damaged.
// A frame that straddles the packet boundary is held in the bit reservoir
// and completed by the next packet, so a successful call may produce zero
// samples. When the error is non-nil, samples decoded before the damage was
// detected are still valid.
func (d *Decoder) DecodePacket(pkt []byte, out []int16) (samples, consumed int, err error) {
	if len(pkt) < d.blockAlign {
		return 0, 0, fmt.Errorf("%w: packet size %d below block align %d",
			ErrInvalidData, len(pkt), d.blockAlign)
	}

	d.out = out
	d.outPos = 0
	defer func() { d.out = nil }()

	bufBits := d.blockAlign * 8
	gb := bits.NewReader(pkt[:d.blockAlign], bufBits)

	// parse the packet header
	d.packetDone = false
	seq := int(gb.GetBits(4))
	gb.SkipBits(2)
	numBitsPrevFrame := int(gb.GetBits(uint(d.log2FrameSize)))

	if !d.packetLoss && (d.packetSequenceNumber+1)&0xf != seq {
		d.packetLoss = true
		d.log.Warn().Int("expected", (d.packetSequenceNumber+1)&0xf).Int("got", seq).
			Msg("packet loss detected")
	}
	d.packetSequenceNumber = seq

	if numBitsPrevFrame > 0 {
		remaining := bufBits - gb.Count()
		if numBitsPrevFrame >= remaining {
			numBitsPrevFrame = remaining
			d.packetDone = true
		}

		// append the bits owed to the previous frame and decode it
		d.saveBits(gb, numBitsPrevFrame, true)
		if !d.packetLoss {
			d.decodeFrame()
		}
	} else if d.numSavedBits-d.frameOffset > 0 {
		d.log.Debug().Int("bits", d.numSavedBits-d.frameOffset).
			Msg("ignoring previously saved bits")
	}

	if d.packetLoss {
		// drop the reservoir so no partial frame survives the loss, the
		// frames of this packet are still extracted below
		d.numSavedBits = 0
		d.packetLoss = false
	}

	// extract the frames fully contained in this packet
	for !d.packetDone && !d.packetLoss {
		if d.lenPrefix {
			remaining := bufBits - gb.Count()
			frameSize := 0
			if remaining > d.log2FrameSize {
				frameSize = int(gb.ShowBits(uint(d.log2FrameSize)))
			}
			if frameSize == 0 || frameSize > remaining {
				d.packetDone = true
				break
			}
			d.saveBits(gb, frameSize, false)
			if d.packetLoss {
				break
			}
			d.packetDone = !d.decodeFrame()
		} else if d.numSavedBits > d.gb.Count() {
			// without length prefixes the reservoir holds only whole
			// frames, keep going until it runs dry
			d.packetDone = !d.decodeFrame()
		} else {
			d.packetDone = true
		}
	}

	if d.packetDone && !d.packetLoss && bufBits-gb.Count() > 0 {
		// keep the rest for the frame that continues in the next packet
		d.saveBits(gb, bufBits-gb.Count(), false)
	}

	samples = d.outPos / d.OutputChannels()
	consumed = gb.Count() >> 3

	if d.packetLoss {
		return samples, consumed, ErrInvalidData
	}
	return samples, consumed, nil
}
