package wmapro

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/go-wmapro/internal/bits"
	"github.com/llehouerou/go-wmapro/internal/fixed"
	"github.com/llehouerou/go-wmapro/internal/mdct"
	"github.com/llehouerou/go-wmapro/internal/tables"
)

const (
	maxChannels  = 8     // supported channels per stream
	maxSubframes = 32    // max number of subframes per channel
	maxBands     = 29    // max number of scale factor bands
	maxFrameSize = 32768 // maximum compressed frame size in bytes

	blockMinBits = 6 // log2 of min block size
	blockMaxBits = 12
	blockMaxSize = 1 << blockMaxBits
	blockSizes   = blockMaxBits - blockMinBits + 1 // possible block sizes
)

// Config holds the stream parameters needed to set up a Decoder. They come
// from the container: for ASF the codec specific data of the stream
// properties object, for Matroska the track's CodecPrivate.
type Config struct {
	// ExtraData is the codec specific data, at least 18 bytes.
	ExtraData []byte

	// SampleRate in Hz.
	SampleRate int

	// Channels in the coded stream, 1 to 8.
	Channels int

	// BlockAlign is the packet payload size in bytes.
	BlockAlign int

	// Logger receives decode warnings. The zero value discards them.
	Logger zerolog.Logger
}

// channel is the per-channel decoder state for one stream channel.
type channel struct {
	prevBlockLen   int // length of the previous block
	transmitCoefs  bool
	numSubframes   int
	subframeLen    [maxSubframes]int // subframe length in samples
	subframeOffset [maxSubframes]int // subframe positions in the current frame
	curSubframe    int
	decodedSamples int // number of already processed samples
	grouped        bool
	quantStep      int

	reuseSF           bool
	scaleFactorStep   int
	maxScaleFactor    int
	savedScaleFactors [2][maxBands]int // resampled and (previously) transmitted scale factor values
	scaleFactorIdx    int
	scaleFactors      []int // scale factors used for decoding, one of the saved buffers
	tableIdx          int   // block size of the scale factor reference block

	numVecCoeffs int
	coefOffset   int // subframe position inside out/out32

	// Raw coefficients carry their value in the upper 32 bits so channel
	// transforms and rescaling keep full precision. out32 receives the
	// IMDCT result and the windowed history used for overlap-add.
	out   [blockMaxSize + blockMaxSize/2]int64
	out32 [blockMaxSize + blockMaxSize/2]int32
}

// chGroup describes one channel group of a subframe and its transform.
type chGroup struct {
	numChannels   int
	transform     bool
	transformBand [maxBands]bool
	matrix        [maxChannels * maxChannels]int32
	channels      [maxChannels]int // stream channel index per group slot
}

// Decoder decodes WMA Pro packets into interleaved 16-bit PCM.
type Decoder struct {
	log zerolog.Logger

	// stream parameters
	decodeFlags           int
	lenPrefix             bool // frames are prefixed with their length
	drcPresent            bool
	bitsPerSample         int
	sampleRate            int
	blockAlign            int
	samplesPerFrame       int
	log2FrameSize         int
	numChannels           int
	lfeChannel            int // -1 when absent
	maxNumSubframes       int
	subframeLenBits       int
	maxSubframeLenBit     bool // first subframe length bit flags maximum size
	minSamplesPerSubframe int

	numSFB           [blockSizes]int
	sfbOffsets       [blockSizes][maxBands + 1]int
	sfOffsets        [blockSizes][blockSizes][maxBands]int // scale factor resample matrix
	subwooferCutoffs [blockSizes]int
	sin64            [33]int32 // decorrelation matrix angles

	imdct   [blockSizes]*mdct.IMDCT
	windows [blockSizes][]int32
	tmp     [blockMaxSize]int32

	// bit reservoir
	frameData    [maxFrameSize]byte
	pw           *bits.Writer
	gb           *bits.Reader // reads assembled frames from frameData
	numSavedBits int
	frameOffset  int // bit offset of the frame inside frameData

	// packet state
	packetSequenceNumber int
	packetLoss           bool
	packetDone           bool

	// frame state
	frameNum           int
	drcGain            int
	skipFrame          bool // drop the output of the next frame
	parsedAllSubframes bool

	// current output window, valid during DecodePacket
	out    []int16
	outPos int

	// subframe state
	subframeLen          int
	channelsForCurSub    int
	channelIndexes       [maxChannels]int
	numBands             int
	transmitNumVecCoeffs bool
	curSFBOffsets        []int
	tableIdx             int
	escLen               uint

	numChGroups int
	chgroup     [maxChannels]chGroup
	channel     [maxChannels]channel
}

// NewDecoder validates cfg and returns a ready decoder.
func NewDecoder(cfg Config) (*Decoder, error) {
	if len(cfg.ExtraData) < 18 {
		return nil, fmt.Errorf("%w: extradata too short (%d bytes)", ErrInvalidData, len(cfg.ExtraData))
	}
	if cfg.Channels < 1 {
		return nil, fmt.Errorf("%w: invalid number of channels %d", ErrInvalidData, cfg.Channels)
	}
	if cfg.Channels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedConfig, cfg.Channels)
	}
	if cfg.SampleRate < 1 {
		return nil, fmt.Errorf("%w: invalid sample rate %d", ErrInvalidData, cfg.SampleRate)
	}
	if cfg.BlockAlign < 1 {
		return nil, fmt.Errorf("%w: invalid block align %d", ErrInvalidData, cfg.BlockAlign)
	}

	d := &Decoder{
		log:        cfg.Logger,
		sampleRate: cfg.SampleRate,
		blockAlign: cfg.BlockAlign,
	}

	d.bitsPerSample = int(binary.LittleEndian.Uint16(cfg.ExtraData[0:2]))
	channelMask := binary.LittleEndian.Uint32(cfg.ExtraData[2:6])
	d.decodeFlags = int(binary.LittleEndian.Uint16(cfg.ExtraData[14:16]))

	d.log2FrameSize = ilog2(uint32(cfg.BlockAlign)) + 4

	d.skipFrame = true // skip output of the first frame
	d.packetLoss = true
	d.packetDone = true
	d.lenPrefix = d.decodeFlags&0x40 != 0
	d.drcPresent = d.decodeFlags&0x80 != 0

	d.samplesPerFrame = 1 << frameLenBits(cfg.SampleRate, d.decodeFlags)
	if d.samplesPerFrame > blockMaxSize {
		return nil, fmt.Errorf("%w: %d samples per frame", ErrUnsupportedConfig, d.samplesPerFrame)
	}

	d.numChannels = cfg.Channels
	for i := 0; i < d.numChannels; i++ {
		d.channel[i].prevBlockLen = d.samplesPerFrame
	}

	log2MaxNumSubframes := (d.decodeFlags & 0x38) >> 3
	d.maxNumSubframes = 1 << log2MaxNumSubframes
	if d.maxNumSubframes == 16 || d.maxNumSubframes == 4 {
		d.maxSubframeLenBit = true
	}
	d.subframeLenBits = ilog2(uint32(log2MaxNumSubframes)) + 1

	numPossibleBlockSizes := log2MaxNumSubframes + 1
	d.minSamplesPerSubframe = d.samplesPerFrame / d.maxNumSubframes

	if d.maxNumSubframes > maxSubframes {
		return nil, fmt.Errorf("%w: invalid number of subframes %d", ErrInvalidData, d.maxNumSubframes)
	}

	// lfe channel position
	d.lfeChannel = -1
	if channelMask&8 != 0 {
		for mask := uint32(1); mask < 16; mask <<= 1 {
			if channelMask&mask != 0 {
				d.lfeChannel++
			}
		}
	}

	// scale factor band offsets for every possible block size
	for i := 0; i < numPossibleBlockSizes; i++ {
		subframeLen := d.samplesPerFrame >> i
		band := 1

		d.sfbOffsets[i][0] = 0
		for x := 0; x < len(tables.CriticalFreqs) && d.sfbOffsets[i][band-1] < subframeLen; x++ {
			offset := (subframeLen*2*int(tables.CriticalFreqs[x]))/cfg.SampleRate + 2
			offset &^= 3
			if offset > d.sfbOffsets[i][band-1] {
				d.sfbOffsets[i][band] = offset
				band++
			}
		}
		d.sfbOffsets[i][band-1] = subframeLen
		d.numSFB[i] = band - 1
	}

	// Scale factors can be shared between blocks of different size as every
	// block has a different scale factor band layout. The sfOffsets matrix
	// maps a band to the band of the reference block covering its center.
	for i := 0; i < numPossibleBlockSizes; i++ {
		for b := 0; b < d.numSFB[i]; b++ {
			offset := ((d.sfbOffsets[i][b] + d.sfbOffsets[i][b+1] - 1) << i) >> 1
			for x := 0; x < numPossibleBlockSizes; x++ {
				v := 0
				for d.sfbOffsets[x][v+1]<<x < offset {
					v++
				}
				d.sfOffsets[i][x][b] = v
			}
		}
	}

	for i := 0; i < blockSizes; i++ {
		d.imdct[i] = mdct.New(blockMinBits + 1 + i)
		d.windows[i] = tables.SineWindows[i]
	}

	// subwoofer cutoff values
	for i := 0; i < numPossibleBlockSizes; i++ {
		blockSize := d.samplesPerFrame >> i
		cutoff := (440*blockSize + 3*(cfg.SampleRate>>1) - 1) / cfg.SampleRate
		d.subwooferCutoffs[i] = clip(cutoff, 4, blockSize)
	}

	// sine values for the decorrelation matrix
	for i := 0; i < 33; i++ {
		sin, _ := fixed.SinCos(uint32(i) * (0xffffffff >> 7))
		d.sin64[i] = sin
	}

	d.pw = bits.NewWriter(d.frameData[:])
	d.gb = bits.NewReader(d.frameData[:], 0)

	return d, nil
}

// SamplesPerFrame returns the number of output samples per channel that one
// frame carries.
func (d *Decoder) SamplesPerFrame() int {
	return d.samplesPerFrame
}

// Channels returns the number of channels in the coded stream.
func (d *Decoder) Channels() int {
	return d.numChannels
}

// OutputChannels returns the number of channels DecodePacket emits: the
// stream channel count capped at stereo.
func (d *Decoder) OutputChannels() int {
	if d.numChannels > 2 {
		return 2
	}
	return d.numChannels
}

// SampleRate returns the output sample rate in Hz.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// Flush drops the bit reservoir and the overlap-add history. Call it after
// seeking; decoding resumes cleanly at the next packet.
func (d *Decoder) Flush() {
	for i := 0; i < d.numChannels; i++ {
		c := &d.channel[i]
		for x := 0; x < d.samplesPerFrame; x++ {
			c.out[x] = 0
			c.out32[x] = 0
		}
		c.prevBlockLen = d.samplesPerFrame
	}
	d.packetLoss = true
	d.packetDone = true
	d.skipFrame = true
}

// Close releases the decoder. The decoder must not be used afterwards.
func (d *Decoder) Close() error {
	return nil
}

// frameLenBits returns log2 of the samples per frame for the given sample
// rate, adjusted by the compression feature flags.
func frameLenBits(sampleRate, decodeFlags int) int {
	var n int
	switch {
	case sampleRate <= 16000:
		n = 9
	case sampleRate <= 22050:
		n = 10
	case sampleRate <= 48000:
		n = 11
	case sampleRate <= 96000:
		n = 12
	default:
		n = 13
	}

	switch decodeFlags & 0x6 {
	case 0x2:
		n++
	case 0x4:
		n--
	case 0x6:
		n -= 2
	}
	return n
}
