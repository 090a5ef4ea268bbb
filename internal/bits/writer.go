package bits

// Writer writes bits MSB-first into a caller-owned byte buffer.
//
// The decoder uses one Writer over its frame reservoir: partial frames are
// appended bit by bit when they straddle packet boundaries. Writes always
// overwrite the target bits, so stale reservoir content never leaks into a
// reassembled frame.
type Writer struct {
	buf []byte
	pos int // current bit position
}

// NewWriter creates a Writer over buf. Writing past len(buf) panics; callers
// bound the write size beforehand.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Reset moves the write position back to the start of the buffer.
func (w *Writer) Reset() {
	w.pos = 0
}

// Len returns the number of bits written since the last reset.
func (w *Writer) Len() int {
	return w.pos
}

// WriteBits writes the low n bits of v (n <= 32).
func (w *Writer) WriteBits(n uint, v uint32) {
	for n > 0 {
		byteIdx := w.pos >> 3
		bitOff := uint(w.pos & 7)
		take := 8 - bitOff
		if take > n {
			take = n
		}
		chunk := byte(v>>(n-take)) & (1<<take - 1)
		shift := 8 - bitOff - take
		mask := byte(1<<take-1) << shift
		w.buf[byteIdx] = w.buf[byteIdx]&^mask | chunk<<shift
		w.pos += int(take)
		n -= take
	}
}

// CopyBits appends n bits read from src starting at bit position srcBit.
func (w *Writer) CopyBits(src []byte, srcBit, n int) {
	r := NewReader(src, srcBit+n)
	r.SkipBits(srcBit)
	for n >= 32 {
		w.WriteBits(32, r.GetBits(32))
		n -= 32
	}
	if n > 0 {
		w.WriteBits(uint(n), r.GetBits(uint(n)))
	}
}
