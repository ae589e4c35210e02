package chasm

import (
	"fmt"
	"strings"
)

var regNames = map[Reg]string{
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
	AL: "al", CL: "cl", DL: "dl", BL: "bl", SPB: "spl", BPB: "bpl", SIB8: "sil", DIB: "dil",
	R8B: "r8b", R9B: "r9b", R10B: "r10b", R11B: "r11b", R12B: "r12b", R13B: "r13b", R14B: "r14b", R15B: "r15b",
	AX: "ax", CX: "cx", DX: "dx", BX: "bx", SP: "sp", BP: "bp", SI: "si", DI: "di",
	R8W: "r8w", R9W: "r9w", R10W: "r10w", R11W: "r11w", R12W: "r12w", R13W: "r13w", R14W: "r14w", R15W: "r15w",
	EAX: "eax", ECX: "ecx", EDX: "edx", EBX: "ebx", ESP: "esp", EBP: "ebp", ESI: "esi", EDI: "edi",
	R8L: "r8d", R9L: "r9d", R10L: "r10d", R11L: "r11d", R12L: "r12d", R13L: "r13d", R14L: "r14d", R15L: "r15d",
	RAX: "rax", RCX: "rcx", RDX: "rdx", RBX: "rbx", RSP: "rsp", RBP: "rbp", RSI: "rsi", RDI: "rdi",
	R8: "r8", R9: "r9", R10: "r10", R11: "r11", R12: "r12", R13: "r13", R14: "r14", R15: "r15",
	RIP: "rip",
	ST0: "st0", ST1: "st1", ST2: "st2", ST3: "st3", ST4: "st4", ST5: "st5", ST6: "st6", ST7: "st7",
	MM0: "mm0", MM1: "mm1", MM2: "mm2", MM3: "mm3", MM4: "mm4", MM5: "mm5", MM6: "mm6", MM7: "mm7",
	X0: "xmm0", X1: "xmm1", X2: "xmm2", X3: "xmm3", X4: "xmm4", X5: "xmm5", X6: "xmm6", X7: "xmm7",
	X8: "xmm8", X9: "xmm9", X10: "xmm10", X11: "xmm11", X12: "xmm12", X13: "xmm13", X14: "xmm14", X15: "xmm15",
	Y0: "ymm0", Y1: "ymm1", Y2: "ymm2", Y3: "ymm3", Y4: "ymm4", Y5: "ymm5", Y6: "ymm6", Y7: "ymm7",
	Y8: "ymm8", Y9: "ymm9", Y10: "ymm10", Y11: "ymm11", Y12: "ymm12", Y13: "ymm13", Y14: "ymm14", Y15: "ymm15",
	ES: "es", CS: "cs", SS: "ss", DS: "ds", FS: "fs", GS: "gs",
	CR0: "cr0", CR1: "cr1", CR2: "cr2", CR3: "cr3", CR4: "cr4", CR8: "cr8",
	DR0: "dr0", DR1: "dr1", DR2: "dr2", DR3: "dr3", DR6: "dr6", DR7: "dr7",
}

func (r Reg) String() string {
	if n, ok := regNames[r]; ok {
		return n
	}
	return fmt.Sprintf("reg(%#x)", uint32(r))
}

var memSizeKeyword = map[uint16]string{
	8: "byte", 16: "word", 32: "dword", 64: "qword", 80: "tbyte", 128: "xmmword", 256: "ymmword",
}

// Stringify renders a sequence of instructions as Intel-syntax assembly
// text, one instruction per line (spec §4.6). Rel operands render as
// "$+k"/"$-k"/"$" and a RIPREL memory base renders as "[$+k]" using the
// same instruction-relative delta, since chasm has no symbolic labels to
// fall back on; an explicit RIP base renders as "[rip + disp]".
func Stringify(insts []Instruction) (string, error) {
	var sb strings.Builder
	for i, inst := range insts {
		line, err := stringifyOne(inst)
		if err != nil {
			return "", fmt.Errorf("instruction %d: %w", i, err)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func stringifyOne(inst Instruction) (string, error) {
	real, arity, _ := splitOperands(inst.Operands)
	parts := make([]string, 0, arity)
	for i := 0; i < arity; i++ {
		parts = append(parts, stringifyOperand(real[i]))
	}
	if len(parts) == 0 {
		return inst.Mnemonic.Name(), nil
	}
	return inst.Mnemonic.Name() + " " + strings.Join(parts, ", "), nil
}

func stringifyOperand(op Operand) string {
	switch v := op.(type) {
	case Reg:
		return v.String()
	case Imm:
		return fmt.Sprintf("%d", v.Value)
	case Rel:
		return relString(v.Delta)
	case Mem:
		return stringifyMem(v)
	default:
		return "?"
	}
}

func relString(delta int) string {
	switch {
	case delta == 0:
		return "$"
	case delta > 0:
		return fmt.Sprintf("$+%d", delta)
	default:
		return fmt.Sprintf("$%d", delta)
	}
}

func stringifyMem(m Mem) string {
	var sb strings.Builder
	if kw, ok := memSizeKeyword[m.Width]; ok {
		sb.WriteString(kw)
		sb.WriteString(" ptr ")
	}
	if m.Seg != 0 {
		sb.WriteString(m.Seg.String())
		sb.WriteByte(':')
	}
	sb.WriteByte('[')
	switch {
	case m.isRIPRel():
		sb.WriteString(relString(m.RelDelta))
	case m.isRIPAbs():
		sb.WriteString("rip")
		writeDisp(&sb, m.Disp, true)
	default:
		first := true
		if m.Base != 0 {
			sb.WriteString(m.Base.String())
			first = false
		}
		if m.Index != 0 {
			if !first {
				sb.WriteString(" + ")
			}
			sb.WriteString(m.Index.String())
			fmt.Fprintf(&sb, "*%d", m.normalizedScale())
			first = false
		}
		writeDisp(&sb, m.Disp, !first)
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeDisp(sb *strings.Builder, disp int32, haveBaseOrIndex bool) {
	switch {
	case disp == 0 && haveBaseOrIndex:
		return
	case disp < 0:
		fmt.Fprintf(sb, " - %d", -disp)
	case haveBaseOrIndex:
		fmt.Fprintf(sb, " + %d", disp)
	default:
		fmt.Fprintf(sb, "%d", disp)
	}
}
