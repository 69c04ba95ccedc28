package audit

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"
)

// condAMD64 is the set of x86 instructions that branch on flags
// or on a counter register.
var condAMD64 = map[x86asm.Op]bool{
	x86asm.JA:     true,
	x86asm.JAE:    true,
	x86asm.JB:     true,
	x86asm.JBE:    true,
	x86asm.JCXZ:   true,
	x86asm.JE:     true,
	x86asm.JECXZ:  true,
	x86asm.JG:     true,
	x86asm.JGE:    true,
	x86asm.JL:     true,
	x86asm.JLE:    true,
	x86asm.JNE:    true,
	x86asm.JNO:    true,
	x86asm.JNP:    true,
	x86asm.JNS:    true,
	x86asm.JO:     true,
	x86asm.JP:     true,
	x86asm.JRCXZ:  true,
	x86asm.JS:     true,
	x86asm.LOOP:   true,
	x86asm.LOOPE:  true,
	x86asm.LOOPNE: true,
}

func decodeAMD64(code []byte) (inst, error) {
	in, err := x86asm.Decode(code, 64)
	if err != nil {
		return inst{}, errors.WithStack(err)
	}
	// A lone prefix, or an opcode cut off by the end of the
	// section, decodes without error as Op 0.
	if in.Op == 0 {
		if len(code) > 15 {
			code = code[:15]
		}
		return inst{}, errors.Errorf("truncated or unknown instruction: % x", code)
	}
	var sp bool
	if in.Op == x86asm.CMP {
		for _, a := range in.Args {
			if a == x86asm.RSP {
				sp = true
			}
		}
	}
	return inst{
		len:   in.Len,
		text:  in.String(),
		cond:  condAMD64[in.Op],
		spCmp: sp,
	}, nil
}

// decodeARM64 decodes one fixed-width arm64 instruction.
//
// Words the disassembler does not know, such as the zero padding
// between functions, are reported as non-branches.
func decodeARM64(code []byte) (inst, error) {
	if len(code) < 4 {
		return inst{}, errors.Errorf("truncated instruction: %d bytes", len(code))
	}
	in, err := arm64asm.Decode(code)
	if err != nil {
		return inst{len: 4, text: "?"}, nil
	}
	text := in.String()

	var cond bool
	switch in.Op {
	case arm64asm.CBZ, arm64asm.CBNZ, arm64asm.TBZ, arm64asm.TBNZ:
		cond = true
	case arm64asm.B:
		// B.cond carries its condition as the first argument.
		_, cond = in.Args[0].(arm64asm.Cond)
	}

	var sp bool
	if in.Op == arm64asm.CMP {
		for _, f := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return r == ' ' || r == ','
		}) {
			if f == "sp" || f == "rsp" {
				sp = true
			}
		}
	}
	return inst{len: 4, text: text, cond: cond, spCmp: sp}, nil
}
