package partition

import "bazil.org/intmath/intmath"

// nextPowerOfTwo rounds v up to a power of two. Zero, and values
// above 1<<63, wrap to zero.
func nextPowerOfTwo(v uint64) uint64 {
	return 1 << intmath.Log2RoundUp(v)
}

func nearestPowerOfTwo(v uint64) uint64 {
	next := nextPowerOfTwo(v)
	if next == 0 {
		if v == 0 {
			return 0
		}
		return 1 << 63
	}
	prev := next >> 1
	if v-prev < next-v {
		return prev
	}
	return next
}

// bitsOfPowerOfTwo rounds to nearest power of two and reports the
// number of bits needed to store it. Zero reports zero.
func bitsOfPowerOfTwo(v uint64) int {
	v = nearestPowerOfTwo(v)
	if v == 0 {
		return 0
	}
	return int(intmath.Log2(v))
}
