package ctmask

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// msb returns a mask with every bit equal to the most
// significant bit of a.
func msb[T constraints.Unsigned](a T) T {
	return -(a >> (uint(unsafe.Sizeof(a))*8 - 1))
}

// isZero returns all ones if a == 0.
//
// For any a != 0 at least one of a and -a has its top bit set.
// For a == 0 both are zero.
func isZero[T constraints.Unsigned](a T) T {
	return ^msb(a | -a)
}

func eq[T constraints.Unsigned](a, b T) T {
	return isZero(a ^ b)
}

// lt returns all ones if a < b.
//
// If the top bits of a and b differ, the top bit of a^b is set and
// the result is the top bit of b. Otherwise |a-b| fits in the low
// w-1 bits and the top bit of a-b is the borrow. This is the
// equivalent of
//
//	if msb(a) != msb(b) {
//	    return msb(b)
//	}
//	return msb(a - b)
//
// and, unlike msb(a - b) alone, is correct for every pair of
// inputs.
func lt[T constraints.Unsigned](a, b T) T {
	return msb(a ^ ((a ^ b) | ((a - b) ^ b)))
}

func ge[T constraints.Unsigned](a, b T) T {
	return ^lt(a, b)
}

func sel[T constraints.Unsigned](m, a, b T) T {
	return (m & a) | (^m & b)
}

func condSwap[T constraints.Unsigned](m T, a, b *T) {
	t := m & (*a ^ *b)
	*a ^= t
	*b ^= t
}
