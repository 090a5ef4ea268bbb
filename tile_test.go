package wmapro

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-wmapro/internal/bits"
)

// feedBits points the frame reader at a hand-built bit sequence.
func feedBits(t *testing.T, d *Decoder, b *bitstream) {
	t.Helper()
	d.frameOffset = 0
	d.numSavedBits = len(b.bits)
	d.gb = bits.NewReader(b.packet(t, (len(b.bits)+7)/8), len(b.bits))
}

// TestTileHeaderUniformSplit decodes a frame split into eight uniform
// subframes per channel and checks that every channel is assigned exactly
// samplesPerFrame samples.
func TestTileHeaderUniformSplit(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 3<<3) // up to 8 subframes
	cfg.Channels = 2
	d := mustDecoder(t, cfg)

	var b bitstream
	b.put(1, 1) // fixed channel layout
	for i := 0; i < 7; i++ {
		b.put(2, 3) // shift 3: 256 sample subframes, last length implied
	}
	feedBits(t, d, &b)

	if err := d.decodeTileHeader(); err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 2; c++ {
		ch := &d.channel[c]
		if ch.numSubframes != 8 {
			t.Fatalf("channel %d: %d subframes, want 8", c, ch.numSubframes)
		}
		total := 0
		for i := 0; i < ch.numSubframes; i++ {
			if ch.subframeOffset[i] != total {
				t.Fatalf("channel %d subframe %d: offset %d, want %d",
					c, i, ch.subframeOffset[i], total)
			}
			total += ch.subframeLen[i]
		}
		if total != d.samplesPerFrame {
			t.Fatalf("channel %d: %d samples assigned, want %d", c, total, d.samplesPerFrame)
		}
	}
}

// TestTileHeaderChannelOverflow rejects a split that assigns a channel more
// samples than the frame holds: one channel takes a half frame, then its
// next subframe claims a full frame.
func TestTileHeaderChannelOverflow(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 3<<3)
	cfg.Channels = 2
	d := mustDecoder(t, cfg)

	var b bitstream
	b.put(1, 0) // per-subframe channel masks
	b.put(1, 1) // channel 0 takes the subframe
	b.put(1, 0) // channel 1 does not
	b.put(2, 1) // half frame for channel 0
	b.put(2, 0) // full frame for channel 1
	b.put(2, 0) // full frame for channel 0 again: 1024 + 2048 > 2048
	feedBits(t, d, &b)

	if err := d.decodeTileHeader(); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidData)
	}
}

// TestScaleFactorResampleIdentity checks that mapping a band layout onto
// itself is the identity: reused scale factors must survive a block size
// change to the same size untouched.
func TestScaleFactorResampleIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 2<<3) // up to 4 subframes
	d := mustDecoder(t, cfg)

	for i := 0; i < 3; i++ {
		for b := 0; b < d.numSFB[i]; b++ {
			if got := d.sfOffsets[i][i][b]; got != b {
				t.Errorf("size index %d: band %d resamples to %d", i, b, got)
			}
		}
	}
}
