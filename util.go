package wmapro

import "math/bits"

// ilog2 returns the position of the highest set bit, or 0 for v == 0.
func ilog2(v uint32) int {
	if v == 0 {
		return 0
	}
	return bits.Len32(v) - 1
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clipInt16(v int32) int16 {
	if v < -32768 {
		return -32768
	}
	if v > 32767 {
		return 32767
	}
	return int16(v)
}
