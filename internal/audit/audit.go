// Package audit finds conditional branches in compiled code.
//
// The primitives in ctmask are only constant time if the compiler
// lowers them to straight-line code. The audit package checks that
// it did, by disassembling the functions in a binary and reporting
// every conditional branch it finds.
package audit

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Arch is an instruction set architecture.
type Arch int

const (
	AMD64 Arch = iota + 1
	ARM64
)

func (a Arch) String() string {
	switch a {
	case AMD64:
		return "amd64"
	case ARM64:
		return "arm64"
	default:
		return fmt.Sprintf("Arch(%d)", int(a))
	}
}

// ParseArch returns the Arch named by the GOARCH value s.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "amd64":
		return AMD64, nil
	case "arm64":
		return ARM64, nil
	default:
		return 0, errors.Errorf("unsupported architecture %q", s)
	}
}

// Finding is a conditional branch.
type Finding struct {
	Symbol string
	// Addr is the address of the instruction.
	Addr uint64
	// Offset is the offset of the instruction from the start of
	// Symbol.
	Offset uint64
	// Inst is the disassembled instruction.
	Inst string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s+%#x (%#x): %s", f.Symbol, f.Offset, f.Addr, f.Inst)
}

// Report is the result of auditing a binary.
type Report struct {
	Arch Arch
	// Symbols are the functions that were audited, sorted by
	// name.
	Symbols  []string
	Findings []Finding
}

// Clean reports whether no conditional branches were found.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// DefaultMatch selects the branch-free ctmask primitives and
// their generic implementations. The slice functions loop over
// their (public) lengths and are excluded.
const DefaultMatch = `^github\.com/ericlagergren/ctmask\.` +
	`((Msb|IsZero|Eq|Lt|Ge|Select|CondSwap)(8|64|Uint|Int|Int8)?|FromBit|ToBit` +
	`|(msb|isZero|eq|lt|ge|sel|condSwap)\[.*\])$`

// Options configure an audit.
type Options struct {
	// Match selects the functions to audit by symbol name. A nil
	// Match selects every function.
	Match *regexp.Regexp
	// AllowPrologue ignores the stack-growth check the Go
	// compiler inserts at the start of non-leaf functions.
	AllowPrologue bool
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) match(name string) bool {
	return o.Match == nil || o.Match.MatchString(name)
}

// prologueWindow is the number of leading instructions that may
// hold the stack-growth check.
const prologueWindow = 4

// inst is a decoded instruction.
type inst struct {
	len  int
	text string
	// cond is set for conditional branches.
	cond bool
	// spCmp is set for comparisons against the stack pointer.
	spCmp bool
}

// ScanCode disassembles code, the body of symbol loaded at addr,
// and returns every conditional branch in it.
func ScanCode(arch Arch, symbol string, addr uint64, code []byte, opts Options) ([]Finding, error) {
	var decode func([]byte) (inst, error)
	switch arch {
	case AMD64:
		decode = decodeAMD64
	case ARM64:
		decode = decodeARM64
	default:
		return nil, errors.Errorf("unsupported architecture %s", arch)
	}

	log := opts.logger().With(zap.String("symbol", symbol))

	var findings []Finding
	var prev inst
	for off, n := 0, 0; off < len(code); n++ {
		in, err := decode(code[off:])
		if err != nil {
			return findings, errors.Wrapf(err, "%s: decoding at offset %#x", symbol, off)
		}
		if in.cond {
			if opts.AllowPrologue && n < prologueWindow && prev.spCmp {
				log.Debug("ignoring stack check", zap.Int("offset", off), zap.String("inst", in.text))
			} else {
				f := Finding{
					Symbol: symbol,
					Addr:   addr + uint64(off),
					Offset: uint64(off),
					Inst:   in.text,
				}
				log.Debug("conditional branch", zap.Stringer("finding", f))
				findings = append(findings, f)
			}
		}
		prev = in
		off += in.len
	}
	return findings, nil
}

func sortFindings(fs []Finding) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].Symbol != fs[j].Symbol {
			return fs[i].Symbol < fs[j].Symbol
		}
		return fs[i].Offset < fs[j].Offset
	})
}
