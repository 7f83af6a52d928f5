// Package intmath provides bit counting and base 2 logarithm helpers
// for any integer type.
//
// The helpers look only at the non-sign bits of a value: all bits for
// unsigned types, all but the most significant bit for signed types.
// Zero and negative inputs are never rejected; their results follow
// from the bit patterns, as documented on each function.
package intmath

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types the helpers accept.
type Integer interface {
	constraints.Integer
}

func signed[T Integer]() bool {
	return ^T(0) < 0
}

// NonSignBits reports how many bits of T carry magnitude: the bit
// width for unsigned types, one less for signed types.
func NonSignBits[T Integer]() int {
	var zero T
	n := int(unsafe.Sizeof(zero)) * 8
	if signed[T]() {
		n--
	}
	return n
}

// CountLeadingZeros returns B-i, where B is NonSignBits[T] and i is the
// index of the highest set bit among the non-sign bits of x.
//
// If none of those bits is set the result is B+1, which keeps zero
// distinguishable from a value with bit B-1 set. The sign bit is never
// looked at, so for signed types math.MinInt* also returns B+1 and no
// negative value returns 0. A scan that starts at the sign bit would
// return 0 for every negative value instead.
func CountLeadingZeros[T Integer](x T) T {
	b := NonSignBits[T]()
	v := uint64(x) & (uint64(1)<<uint(b) - 1)
	if v == 0 {
		return T(b + 1)
	}
	return T(b - (bits.Len64(v) - 1))
}

// IsPowerOfTwo reports whether x&(x-1) is zero.
//
// Note that this holds for 0 as well. Callers of Log2RoundUp depend
// on it.
func IsPowerOfTwo[T Integer](x T) bool {
	return x&(x-1) == 0
}

// Log2 returns floor(log2(x)) for x > 0.
//
// Log2(0) is -1. For unsigned types that is the maximum value of T.
func Log2[T Integer](x T) T {
	return T(NonSignBits[T]()) - CountLeadingZeros(x)
}

// Log2RoundUp returns ceil(log2(x)) for x > 0, the number of bits
// needed to address x distinct values.
//
// Log2RoundUp(0) is the same as Log2(0).
func Log2RoundUp[T Integer](x T) T {
	n := Log2(x)
	if !IsPowerOfTwo(x) {
		n++
	}
	return n
}

// IsOdd reports whether the lowest bit of x is set.
func IsOdd[T Integer](x T) bool {
	return x&1 != 0
}
