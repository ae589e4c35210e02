// Package disasm verifies chasm's encoder output against a reference
// disassembler, adapted from the teacher's disasm package (which walks a
// live Go function's machine code with unsafe.Pointer tricks). chasm's
// tests only ever need to disassemble a byte slice the encoder itself
// produced, so this version drops the reflect/unsafe function-value walk
// and decodes straight from []byte.
package disasm

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"
)

// Decode disassembles every instruction in code, stopping at the first
// decode error or once the slice is exhausted. Bytes that x86asm decodes
// without error but without an opcode (Op == 0, as it reports invalid or
// truncated encodings) are a decode error too.
func Decode(code []byte) ([]x86asm.Inst, error) {
	var out []x86asm.Inst
	for n := 0; n < len(code); {
		inst, err := x86asm.Decode(code[n:], 64)
		if err != nil {
			return out, fmt.Errorf("disasm: decode at offset %d: %w", n, err)
		}
		if inst.Op == 0 {
			return out, fmt.Errorf("disasm: no valid instruction at offset %d", n)
		}
		out = append(out, inst)
		n += inst.Len
	}
	return out, nil
}

// IntelLines disassembles code and renders each instruction with
// x86asm.IntelSyntax, one string per instruction -- the reference half of
// chasm's round-trip property tests (spec §8 properties 1 and 6).
func IntelLines(code []byte) ([]string, error) {
	insts, err := Decode(code)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(insts))
	for i, inst := range insts {
		lines[i] = x86asm.IntelSyntax(inst, 0, nil)
	}
	return lines, nil
}
