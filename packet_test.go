package wmapro

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-wmapro/internal/tables"
)

// bitstream accumulates MSB-first bits for hand-built test packets.
type bitstream struct {
	bits []byte
}

func (b *bitstream) put(n uint, v uint32) {
	for i := int(n) - 1; i >= 0; i-- {
		b.bits = append(b.bits, byte(v>>uint(i)&1))
	}
}

// header appends a packet header: sequence number, two reserved bits and the
// bit count owed to the frame continued from the previous packet.
func (b *bitstream) header(seq, numBitsPrevFrame uint32) {
	b.put(4, seq)
	b.put(2, 0)
	b.put(15, numBitsPrevFrame)
}

// silentMonoFrame appends a minimal frame for a mono single-subframe stream:
// no skipped samples, no extended header, no coefficients transmitted.
func (b *bitstream) silentMonoFrame() {
	b.put(1, 0) // no skip sample counts
	b.put(1, 0) // no extended header
	b.put(1, 0) // reserved
	b.put(1, 0) // no coefficients for the only channel
}

// packet zero-pads the accumulated bits to a packet of size bytes.
func (b *bitstream) packet(t *testing.T, size int) []byte {
	t.Helper()
	if len(b.bits) > size*8 {
		t.Fatalf("%d bits do not fit a %d byte packet", len(b.bits), size)
	}
	out := make([]byte, size)
	for i, bit := range b.bits {
		out[i>>3] |= bit << uint(7-i&7)
	}
	return out
}

// zeroQuadSymbol returns the vector code whose symbol is four zero values.
func zeroQuadSymbol(t *testing.T) int {
	t.Helper()
	for i, v := range tables.SymbolToVec4 {
		if v == 0 {
			return i
		}
	}
	t.Fatal("no zero quad in the vector code table")
	return -1
}

func mustDecoder(t *testing.T, cfg Config) *Decoder {
	t.Helper()
	d, err := NewDecoder(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// TestDecodeSilentStream feeds three packets of a mono stream where every
// frame rides the bit reservoir into the next packet. The first packet only
// fills the reservoir, the second decodes the frame that pre-rolls the
// overlap-add history, the third produces a full frame of samples.
func TestDecodeSilentStream(t *testing.T) {
	d := mustDecoder(t, testConfig())
	out := make([]int16, 4096)

	var b bitstream
	b.header(0, 0)
	b.silentMonoFrame()
	samples, consumed, err := d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("packet 1: %v", err)
	}
	if samples != 0 || consumed != 2048 {
		t.Fatalf("packet 1: %d samples, %d consumed, want 0, 2048", samples, consumed)
	}

	b = bitstream{}
	b.header(1, 1)
	b.put(1, 0) // the bit owed to the previous frame
	b.silentMonoFrame()
	samples, _, err = d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("packet 2: %v", err)
	}
	if samples != 0 {
		t.Fatalf("packet 2: %d samples, want 0 while pre-rolling", samples)
	}

	b = bitstream{}
	b.header(2, 1)
	b.put(1, 0)
	samples, _, err = d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("packet 3: %v", err)
	}
	if samples != d.SamplesPerFrame() {
		t.Fatalf("packet 3: %d samples, want %d", samples, d.SamplesPerFrame())
	}
	for i := 0; i < samples; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d = %d, want silence", i, out[i])
		}
	}
}

// appendTransmitFrame appends a frame that carries coefficients: a vector
// budget of 12 coefficients, all zero quads and an immediate end of block, so
// the whole quantization and transform path runs on silence.
func appendTransmitFrame(t *testing.T, b *bitstream, d *Decoder) {
	t.Helper()

	b.put(1, 0)  // no skip sample counts
	b.put(1, 0)  // no extended header
	b.put(1, 0)  // reserved
	b.put(1, 1)  // coefficients follow
	b.put(1, 1)  // vector budget transmitted
	b.put(10, 3) // 3<<2 vector coded coefficients
	b.put(6, 0)  // quantization step delta
	b.put(2, 0)  // scale factor step code

	// flat scale factors, one zero delta per band
	for i := 0; i < d.numSFB[0]; i++ {
		b.put(uint(tables.ScaleHuffBits[60]), tables.ScaleHuffCodes[60])
	}

	b.put(1, 0) // first coefficient table
	quad := zeroQuadSymbol(t)
	for i := 0; i < 3; i++ {
		b.put(uint(tables.Vec4HuffBits[quad]), tables.Vec4HuffCodes[quad])
	}
	b.put(uint(tables.Coef0HuffBits[1]), tables.Coef0HuffCodes[1]) // end of block
}

func TestDecodeTransmittedCoefficients(t *testing.T) {
	d := mustDecoder(t, testConfig())
	out := make([]int16, 4096)

	var b bitstream
	b.header(0, 0)
	b.silentMonoFrame()
	if _, _, err := d.DecodePacket(b.packet(t, 2048), out); err != nil {
		t.Fatalf("packet 1: %v", err)
	}

	b = bitstream{}
	b.header(1, 1)
	b.put(1, 0)
	appendTransmitFrame(t, &b, d)
	samples, _, err := d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("packet 2: %v", err)
	}
	if samples != 0 {
		t.Fatalf("packet 2: %d samples, want 0 while pre-rolling", samples)
	}

	b = bitstream{}
	b.header(2, 1)
	b.put(1, 0)
	samples, _, err = d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("packet 3: %v", err)
	}
	if samples != d.SamplesPerFrame() {
		t.Fatalf("packet 3: %d samples, want %d", samples, d.SamplesPerFrame())
	}
	for i := 0; i < samples; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d = %d, want silence", i, out[i])
		}
	}
}

// TestSequenceDiscontinuity drops a packet: the decoder flags the loss
// internally, discards the partial frame and resynchronizes without
// surfacing an error for the discontinuous packet itself.
func TestSequenceDiscontinuity(t *testing.T) {
	d := mustDecoder(t, testConfig())
	out := make([]int16, 4096)

	var b bitstream
	b.header(0, 0)
	b.silentMonoFrame()
	if _, _, err := d.DecodePacket(b.packet(t, 2048), out); err != nil {
		t.Fatalf("packet 1: %v", err)
	}

	// packet 2 never arrives; packet 3 restarts the reservoir
	b = bitstream{}
	b.header(9, 0)
	b.silentMonoFrame()
	samples, _, err := d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("discontinuous packet: %v", err)
	}
	if samples != 0 {
		t.Fatalf("discontinuous packet: %d samples, want 0", samples)
	}

	b = bitstream{}
	b.header(10, 1)
	b.put(1, 0)
	if _, _, err := d.DecodePacket(b.packet(t, 2048), out); err != nil {
		t.Fatalf("resync packet: %v", err)
	}
}

// TestCorruptFrameReturnsError chains two frames in one reservoir and
// corrupts the second with a set reserved bit.
func TestCorruptFrameReturnsError(t *testing.T) {
	d := mustDecoder(t, testConfig())
	out := make([]int16, 4096)

	var b bitstream
	b.header(0, 0)
	b.silentMonoFrame()
	b.put(1, 1) // stop the zero padding scan
	b.put(1, 1) // another frame follows
	// second frame: reserved bit set
	b.put(1, 0)
	b.put(1, 0)
	b.put(1, 1)
	if _, _, err := d.DecodePacket(b.packet(t, 2048), out); err != nil {
		t.Fatalf("packet 1: %v", err)
	}

	b = bitstream{}
	b.header(1, 1)
	b.put(1, 0)
	samples, _, err := d.DecodePacket(b.packet(t, 2048), out)
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidData)
	}
	if samples != 0 {
		t.Fatalf("%d samples, want 0", samples)
	}
}

// TestLenPrefixStream decodes frames that carry their own length and are
// fully contained in their packet, so no reservoir round trip is needed.
func TestLenPrefixStream(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraData = testExtraData(16, 0, 0x40)
	d := mustDecoder(t, cfg)
	out := make([]int16, 4096)

	lenPrefixPacket := func(seq uint32) []byte {
		var b bitstream
		b.header(seq, 0)
		b.put(15, 21) // frame length: prefix, frame bits, padding, trailer
		b.silentMonoFrame()
		b.put(1, 0) // padding
		b.put(1, 0) // no more frames
		return b.packet(t, 2048)
	}

	samples, consumed, err := d.DecodePacket(lenPrefixPacket(0), out)
	if err != nil {
		t.Fatalf("packet 1: %v", err)
	}
	if samples != 0 || consumed != 2048 {
		t.Fatalf("packet 1: %d samples, %d consumed, want 0, 2048", samples, consumed)
	}

	samples, _, err = d.DecodePacket(lenPrefixPacket(1), out)
	if err != nil {
		t.Fatalf("packet 2: %v", err)
	}
	if samples != d.SamplesPerFrame() {
		t.Fatalf("packet 2: %d samples, want %d", samples, d.SamplesPerFrame())
	}
}

func TestDecodePacketTooShort(t *testing.T) {
	d := mustDecoder(t, testConfig())
	_, _, err := d.DecodePacket(make([]byte, 100), make([]int16, 4096))
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidData)
	}
}

// TestFlushResetsStream seeks by flushing and restarts on a packet whose
// sequence number does not follow the last one.
func TestFlushResetsStream(t *testing.T) {
	d := mustDecoder(t, testConfig())
	out := make([]int16, 4096)

	var b bitstream
	b.header(0, 0)
	b.silentMonoFrame()
	if _, _, err := d.DecodePacket(b.packet(t, 2048), out); err != nil {
		t.Fatalf("packet 1: %v", err)
	}

	d.Flush()

	b = bitstream{}
	b.header(7, 0)
	b.silentMonoFrame()
	samples, _, err := d.DecodePacket(b.packet(t, 2048), out)
	if err != nil {
		t.Fatalf("post-seek packet: %v", err)
	}
	if samples != 0 {
		t.Fatalf("post-seek packet: %d samples, want 0", samples)
	}
}
