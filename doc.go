// Package ctmask implements branch-free, constant-time comparison
// and selection primitives for cryptographic code.
//
// # Masks
//
// Every predicate returns a mask rather than a bool or a 0/1 flag.
// A mask is all ones for true and all zeros for false, so it can
// be fed straight into another bitwise operation:
//
//	m := ctmask.Lt(x, limit)
//	y := ctmask.Select(m, x, limit) // min(x, limit)
//
// Passing a value that is neither all ones nor all zeros to one of
// the Select functions is a bug in the caller. The result is
// unspecified.
//
// # Widths
//
// Each operation comes in several width families that never mix:
//
//	uint8   Eq8, Lt8, ...       mask is uint8
//	uint32  Eq, Lt, ...         mask is uint32
//	uint    EqUint, LtUint, ... mask is uint
//	uint64  Eq64, Lt64, ...     mask is uint64
//	int32   EqInt, SelectInt    mask is uint32 (or uint8 for EqInt8)
//
// Pick the family that matches the width of the secret.
//
// # Branches
//
// Go offers no guarantee that the compiler will not emit a
// conditional branch. The functions here only use operations the
// gc compiler lowers to straight-line code, and cmd/ctaudit checks
// a compiled binary for conditional branches in them.
package ctmask
