package ctmask

// Canonical masks for each width.
const (
	True8  uint8 = 0xff
	False8 uint8 = 0

	True  uint32 = 0xffffffff
	False uint32 = 0

	TrueUint  = ^uint(0)
	FalseUint = uint(0)

	True64  = ^uint64(0)
	False64 = uint64(0)
)

// Msb8 returns True8 if the most significant bit of a is set and
// False8 otherwise.
func Msb8(a uint8) uint8 { return msb(a) }

// IsZero8 returns True8 if a == 0 and False8 otherwise.
func IsZero8(a uint8) uint8 { return isZero(a) }

// Eq8 returns True8 if a == b and False8 otherwise.
func Eq8(a, b uint8) uint8 { return eq(a, b) }

// Lt8 returns True8 if a < b and False8 otherwise.
func Lt8(a, b uint8) uint8 { return lt(a, b) }

// Ge8 returns True8 if a >= b and False8 otherwise.
func Ge8(a, b uint8) uint8 { return ge(a, b) }

// Select8 returns a if m is True8 and b if m is False8.
func Select8(m, a, b uint8) uint8 { return sel(m, a, b) }

// Msb returns True if the most significant bit of a is set and
// False otherwise.
func Msb(a uint32) uint32 { return msb(a) }

// IsZero returns True if a == 0 and False otherwise.
func IsZero(a uint32) uint32 { return isZero(a) }

// Eq returns True if a == b and False otherwise.
func Eq(a, b uint32) uint32 { return eq(a, b) }

// Lt returns True if a < b and False otherwise.
//
// Lt is correct over the entire range of uint32, including
// comparisons against 0 and math.MaxUint32.
func Lt(a, b uint32) uint32 { return lt(a, b) }

// Ge returns True if a >= b and False otherwise.
//
// Ge(a, b) is always exactly ^Lt(a, b).
func Ge(a, b uint32) uint32 { return ge(a, b) }

// Select returns a if m is True and b if m is False.
//
// Its behavior is unspecified if m takes any other value.
func Select(m, a, b uint32) uint32 { return sel(m, a, b) }

// CondSwap swaps *a and *b if m is True and leaves them
// unchanged if m is False.
func CondSwap(m uint32, a, b *uint32) { condSwap(m, a, b) }

// The Uint functions are the uint forms of Msb, IsZero, Eq, Lt, Ge
// and Select. Their masks are TrueUint and FalseUint.

func MsbUint(a uint) uint { return msb(a) }

func IsZeroUint(a uint) uint { return isZero(a) }

func EqUint(a, b uint) uint { return eq(a, b) }

func LtUint(a, b uint) uint { return lt(a, b) }

func GeUint(a, b uint) uint { return ge(a, b) }

func SelectUint(m, a, b uint) uint { return sel(m, a, b) }

// Msb64 returns True64 if the most significant bit of a is set
// and False64 otherwise.
func Msb64(a uint64) uint64 { return msb(a) }

// IsZero64 returns True64 if a == 0 and False64 otherwise.
func IsZero64(a uint64) uint64 { return isZero(a) }

// Eq64 returns True64 if a == b and False64 otherwise.
func Eq64(a, b uint64) uint64 { return eq(a, b) }

// Lt64 returns True64 if a < b and False64 otherwise.
func Lt64(a, b uint64) uint64 { return lt(a, b) }

// Ge64 returns True64 if a >= b and False64 otherwise.
func Ge64(a, b uint64) uint64 { return ge(a, b) }

// Select64 returns a if m is True64 and b if m is False64.
func Select64(m, a, b uint64) uint64 { return sel(m, a, b) }

// CondSwap64 swaps *a and *b if m is True64 and leaves them
// unchanged if m is False64.
func CondSwap64(m uint64, a, b *uint64) { condSwap(m, a, b) }

// EqInt returns True if a == b and False otherwise.
//
// Two's complement integers are equal exactly when their bit
// patterns are, so EqInt never subtracts and is well defined for
// math.MinInt32.
func EqInt(a, b int32) uint32 {
	return Eq(uint32(a), uint32(b))
}

// EqInt8 is like EqInt, but returns True8 or False8.
func EqInt8(a, b int32) uint8 {
	return uint8(EqInt(a, b))
}

// SelectInt returns a if m is True and b if m is False.
func SelectInt(m uint32, a, b int32) int32 {
	return int32(Select(m, uint32(a), uint32(b)))
}

// FromBit converts v, which must be 0 or 1, to FalseUint or
// TrueUint.
//
// It bridges the 0/1 results of crypto/subtle to masks.
func FromBit(v int) uint {
	return -uint(v)
}

// ToBit converts the mask m to 1 if it is TrueUint and 0 if it is
// FalseUint.
func ToBit(m uint) int {
	return int(m & 1)
}
