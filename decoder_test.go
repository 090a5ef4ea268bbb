package wmapro

import (
	"encoding/binary"
	"errors"
	"testing"
)

// testExtraData builds the 18 byte codec specific data blob.
func testExtraData(bitsPerSample int, channelMask uint32, flags int) []byte {
	ed := make([]byte, 18)
	binary.LittleEndian.PutUint16(ed[0:2], uint16(bitsPerSample))
	binary.LittleEndian.PutUint32(ed[2:6], channelMask)
	binary.LittleEndian.PutUint16(ed[14:16], uint16(flags))
	return ed
}

func testConfig() Config {
	return Config{
		ExtraData:  testExtraData(16, 0, 0),
		SampleRate: 44100,
		Channels:   1,
		BlockAlign: 2048,
	}
}

func TestNewDecoderValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"valid", func(*Config) {}, nil},
		{"short extradata", func(c *Config) { c.ExtraData = c.ExtraData[:17] }, ErrInvalidData},
		{"zero channels", func(c *Config) { c.Channels = 0 }, ErrInvalidData},
		{"too many channels", func(c *Config) { c.Channels = 9 }, ErrUnsupportedConfig},
		{"max channels", func(c *Config) { c.Channels = 8 }, nil},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, ErrInvalidData},
		{"zero block align", func(c *Config) { c.BlockAlign = 0 }, ErrInvalidData},
		{"oversized frame", func(c *Config) { c.SampleRate = 192000 }, ErrUnsupportedConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(&cfg)
			_, err := NewDecoder(cfg)
			if !errors.Is(err, tt.err) {
				t.Fatalf("NewDecoder() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestFrameLenBits(t *testing.T) {
	tests := []struct {
		rate  int
		flags int
		want  int
	}{
		{8000, 0, 9},
		{16000, 0, 9},
		{22050, 0, 10},
		{44100, 0, 11},
		{48000, 0, 11},
		{96000, 0, 12},
		{176400, 0, 13},
		{44100, 0x2, 12},
		{44100, 0x4, 10},
		{44100, 0x6, 9},
	}

	for _, tt := range tests {
		if got := frameLenBits(tt.rate, tt.flags); got != tt.want {
			t.Errorf("frameLenBits(%d, %#x) = %d, want %d", tt.rate, tt.flags, got, tt.want)
		}
	}
}

func TestNewDecoderDerivedParams(t *testing.T) {
	d, err := NewDecoder(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if d.SamplesPerFrame() != 2048 {
		t.Errorf("SamplesPerFrame() = %d, want 2048", d.SamplesPerFrame())
	}
	if d.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", d.SampleRate())
	}
	if d.Channels() != 1 || d.OutputChannels() != 1 {
		t.Errorf("Channels() = %d/%d, want 1/1", d.Channels(), d.OutputChannels())
	}
	if d.log2FrameSize != 15 {
		t.Errorf("log2FrameSize = %d, want 15", d.log2FrameSize)
	}
	if d.maxNumSubframes != 1 || d.minSamplesPerSubframe != 2048 {
		t.Errorf("subframe split = %d/%d, want 1/2048", d.maxNumSubframes, d.minSamplesPerSubframe)
	}
}

func TestOutputChannelsCapsAtStereo(t *testing.T) {
	cfg := testConfig()
	cfg.Channels = 6
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d.Channels() != 6 {
		t.Errorf("Channels() = %d, want 6", d.Channels())
	}
	if d.OutputChannels() != 2 {
		t.Errorf("OutputChannels() = %d, want 2", d.OutputChannels())
	}
}

func TestMaxSubframeLenBit(t *testing.T) {
	tests := []struct {
		flags   int
		maxSubs int
		lenBit  bool
	}{
		{0 << 3, 1, false},
		{1 << 3, 2, false},
		{2 << 3, 4, true},
		{3 << 3, 8, false},
		{4 << 3, 16, true},
	}

	for _, tt := range tests {
		cfg := testConfig()
		cfg.ExtraData = testExtraData(16, 0, tt.flags)
		d, err := NewDecoder(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if d.maxNumSubframes != tt.maxSubs || d.maxSubframeLenBit != tt.lenBit {
			t.Errorf("flags %#x: subframes = %d/%v, want %d/%v",
				tt.flags, d.maxNumSubframes, d.maxSubframeLenBit, tt.maxSubs, tt.lenBit)
		}
	}
}

func TestScaleFactorBandLayout(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 2<<3) // up to 4 subframes
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		subframeLen := d.samplesPerFrame >> i
		n := d.numSFB[i]
		if n < 1 || n > maxBands {
			t.Fatalf("size %d: %d bands", subframeLen, n)
		}
		if d.sfbOffsets[i][0] != 0 {
			t.Errorf("size %d: first offset = %d, want 0", subframeLen, d.sfbOffsets[i][0])
		}
		if d.sfbOffsets[i][n] != subframeLen {
			t.Errorf("size %d: last offset = %d, want %d", subframeLen, d.sfbOffsets[i][n], subframeLen)
		}
		for b := 0; b < n; b++ {
			if d.sfbOffsets[i][b] >= d.sfbOffsets[i][b+1] {
				t.Errorf("size %d: band %d not monotonic: %d >= %d",
					subframeLen, b, d.sfbOffsets[i][b], d.sfbOffsets[i][b+1])
			}
			if b > 0 && d.sfbOffsets[i][b]&3 != 0 {
				t.Errorf("size %d: offset %d not a multiple of 4", subframeLen, d.sfbOffsets[i][b])
			}
		}
	}
}

func TestHighSampleRateBandLayout(t *testing.T) {
	// At 96 kHz every critical frequency maps well below the subframe length,
	// so the band loop runs through the whole table before the terminal band
	// closes the layout.
	cfg := testConfig()
	cfg.SampleRate = 96000
	cfg.ExtraData = testExtraData(16, 0, 2<<3)
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d.SamplesPerFrame() != 4096 {
		t.Fatalf("SamplesPerFrame() = %d, want 4096", d.SamplesPerFrame())
	}

	for i := 0; i < 3; i++ {
		subframeLen := d.samplesPerFrame >> i
		n := d.numSFB[i]
		if n < 1 || n > maxBands {
			t.Fatalf("size %d: %d bands", subframeLen, n)
		}
		if d.sfbOffsets[i][0] != 0 || d.sfbOffsets[i][n] != subframeLen {
			t.Errorf("size %d: layout spans [%d,%d], want [0,%d]",
				subframeLen, d.sfbOffsets[i][0], d.sfbOffsets[i][n], subframeLen)
		}
		for b := 0; b < n; b++ {
			if d.sfbOffsets[i][b] >= d.sfbOffsets[i][b+1] {
				t.Errorf("size %d: band %d not monotonic: %d >= %d",
					subframeLen, b, d.sfbOffsets[i][b], d.sfbOffsets[i][b+1])
			}
		}
	}
}

func TestSubwooferCutoffBounds(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 2<<3)
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		blockSize := d.samplesPerFrame >> i
		c := d.subwooferCutoffs[i]
		if c < 4 || c > blockSize {
			t.Errorf("size %d: cutoff %d out of range", blockSize, c)
		}
	}
}

func TestLFEChannelFromMask(t *testing.T) {
	tests := []struct {
		mask uint32
		want int
	}{
		{0, -1},        // no LFE bit
		{0x3f, 3},      // 5.1: FL FR FC LFE BL BR
		{0x8 | 0x1, 1}, // FL + LFE
		{0x8, 0},       // LFE alone
		{0x7, -1},      // FL FR FC, no LFE
	}

	for _, tt := range tests {
		cfg := testConfig()
		cfg.ExtraData = testExtraData(16, tt.mask, 0)
		d, err := NewDecoder(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if d.lfeChannel != tt.want {
			t.Errorf("mask %#x: lfeChannel = %d, want %d", tt.mask, d.lfeChannel, tt.want)
		}
	}
}
