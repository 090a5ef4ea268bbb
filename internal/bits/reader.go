// Package bits implements the big-endian bitstream reader and writer the
// decoder parses packets with and fills the frame reservoir through.
package bits

// Reader reads bits MSB-first from a byte buffer.
//
// It tracks an absolute bit position so callers can account for consumed bits
// (frame length prefixes and reservoir budgets are expressed in bits) and
// resume reading mid-byte. Reads past the end of the buffer yield zero bits;
// the surrounding parser detects overruns through its bit-budget checks.
type Reader struct {
	data []byte
	pos  int // current bit position
	size int // total number of valid bits
}

// NewReader creates a Reader over data, limited to sizeBits valid bits.
func NewReader(data []byte, sizeBits int) *Reader {
	return &Reader{data: data, size: sizeBits}
}

// Data returns the underlying byte buffer.
func (r *Reader) Data() []byte {
	return r.data
}

// Count returns the number of bits consumed so far.
func (r *Reader) Count() int {
	return r.pos
}

// Left returns the number of unread bits.
func (r *Reader) Left() int {
	return r.size - r.pos
}

// ShowBits returns the next n bits (n <= 32) without consuming them.
// Bits beyond the end of the buffer read as zero.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	byteIdx := r.pos >> 3
	var v uint64
	for i := 0; i < 8; i++ {
		if byteIdx+i < len(r.data) {
			v |= uint64(r.data[byteIdx+i]) << (56 - 8*i)
		}
	}
	v <<= uint(r.pos & 7)
	return uint32(v >> (64 - n))
}

// SkipBits advances the read position by n bits.
func (r *Reader) SkipBits(n int) {
	r.pos += n
}

// GetBits reads and consumes n bits (n <= 32).
func (r *Reader) GetBits(n uint) uint32 {
	v := r.ShowBits(n)
	r.pos += int(n)
	return v
}

// Get1 reads a single bit.
func (r *Reader) Get1() uint32 {
	return r.GetBits(1)
}

// GetSigned reads an n-bit two's-complement value and sign-extends it.
func (r *Reader) GetSigned(n uint) int32 {
	v := r.GetBits(n)
	return int32(v<<(32-n)) >> (32 - n)
}
