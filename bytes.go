package ctmask

// The slice functions run in time that depends on the length of
// their arguments, never on their contents. Lengths are treated as
// public.

// IsZeroBytes returns True8 if every byte in x is zero and False8
// otherwise.
func IsZeroBytes(x []byte) uint8 {
	var v byte
	for i := 0; i < len(x); i++ {
		v |= x[i]
	}
	return IsZero8(v)
}

// EqBytes returns True8 if x and y, which must have the same
// length, have equal contents and False8 otherwise.
func EqBytes(x, y []byte) uint8 {
	if len(x) != len(y) {
		panic("ctmask: slices have different lengths")
	}
	var v byte
	for i := 0; i < len(x); i++ {
		v |= x[i] ^ y[i]
	}
	return IsZero8(v)
}

// LtBytes compares x and y, which must have the same length, as
// big-endian integers.
//
// It returns True8 if x < y and False8 otherwise.
func LtBytes(x, y []byte) uint8 {
	if len(x) != len(y) {
		panic("ctmask: slices have different lengths")
	}
	// done is True8 once a differing byte has been seen. Only the
	// first (most significant) difference decides the result.
	//
	// This is the constant-time equivalent of
	//
	//	for i := range x {
	//	    if x[i] != y[i] {
	//	        return x[i] < y[i]
	//	    }
	//	}
	//	return false
	//
	var lt, done uint8
	for i := 0; i < len(x); i++ {
		lt |= ^done & Lt8(x[i], y[i])
		done |= ^Eq8(x[i], y[i])
	}
	return lt
}

// GeBytes compares x and y, which must have the same length, as
// big-endian integers.
//
// It returns True8 if x >= y and False8 otherwise.
func GeBytes(x, y []byte) uint8 {
	return ^LtBytes(x, y)
}

// SelectBytes sets dst[i] to a[i] if m is True8 and to b[i] if m
// is False8. All three slices must have the same length.
//
// dst may alias a or b.
func SelectBytes(m uint8, dst, a, b []byte) {
	if len(dst) != len(a) || len(dst) != len(b) {
		panic("ctmask: slices have different lengths")
	}
	for i := 0; i < len(dst); i++ {
		dst[i] = Select8(m, a[i], b[i])
	}
}

// CondSwapBytes swaps the contents of a and b, which must have the
// same length, if m is True8. If m is False8 they are left
// unchanged.
func CondSwapBytes(m uint8, a, b []byte) {
	if len(a) != len(b) {
		panic("ctmask: slices have different lengths")
	}
	for i := 0; i < len(a); i++ {
		t := m & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}
