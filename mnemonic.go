package chasm

import "strings"

// Mnemonic is a dense identifier for an x86-64 instruction, drawn from a
// closed enumeration (spec §3). It is deliberately a plain enum rather than
// the teacher's packed (offset|count|id) word: the teacher's encoding exists
// to make Inst itself carry its table-slice bounds inline; chasm's catalog
// is instead a map keyed by Mnemonic (see catalog in catalog.go), so Mnemonic only
// needs to be a comparable, switchable value.
type Mnemonic uint16

// Mnemonics, grouped as the encoding table groups their variants.
const (
	_ Mnemonic = iota

	MOV
	LEA
	PUSH
	POP
	NOP
	RET
	CALL
	JMP

	ADD
	ADC
	SUB
	SBB
	AND
	OR
	XOR
	CMP
	TEST
	INC
	DEC
	NEG
	NOT
	MUL
	IMUL
	DIV
	IDIV
	SHL
	SHR
	SAR
	ROL
	ROR

	JO
	JNO
	JB
	JNB
	JZ
	JNZ
	JBE
	JNBE
	JS
	JNS
	JP
	JNP
	JL
	JNL
	JLE
	JNLE

	SETO
	SETNO
	SETB
	SETNB
	SETZ
	SETNZ
	SETBE
	SETNBE
	SETS
	SETNS
	SETP
	SETNP
	SETL
	SETNL
	SETLE
	SETNLE

	CMOVO
	CMOVNO
	CMOVB
	CMOVNB
	CMOVZ
	CMOVNZ
	CMOVBE
	CMOVNBE
	CMOVS
	CMOVNS
	CMOVP
	CMOVNP
	CMOVL
	CMOVNL
	CMOVLE
	CMOVNLE

	MOVSS
	MOVSD
	MOVAPS
	MOVUPS
	ADDSS
	ADDSD
	SUBSS
	SUBSD
	MULSS
	MULSD
	DIVSS
	DIVSD
	XORPS
	ANDPS

	VMOVAPS
	VADDPS
	VADDSS

	FLD
	FSTP
	FADD

	numMnemonics
)

var mnemonicNames = [numMnemonics]string{
	MOV: "MOV", LEA: "LEA", PUSH: "PUSH", POP: "POP", NOP: "NOP", RET: "RET", CALL: "CALL", JMP: "JMP",
	ADD: "ADD", ADC: "ADC", SUB: "SUB", SBB: "SBB", AND: "AND", OR: "OR", XOR: "XOR", CMP: "CMP",
	TEST: "TEST", INC: "INC", DEC: "DEC", NEG: "NEG", NOT: "NOT", MUL: "MUL", IMUL: "IMUL", DIV: "DIV", IDIV: "IDIV",
	SHL: "SHL", SHR: "SHR", SAR: "SAR", ROL: "ROL", ROR: "ROR",
	JO: "JO", JNO: "JNO", JB: "JB", JNB: "JNB", JZ: "JZ", JNZ: "JNZ", JBE: "JBE", JNBE: "JNBE",
	JS: "JS", JNS: "JNS", JP: "JP", JNP: "JNP", JL: "JL", JNL: "JNL", JLE: "JLE", JNLE: "JNLE",
	SETO: "SETO", SETNO: "SETNO", SETB: "SETB", SETNB: "SETNB", SETZ: "SETZ", SETNZ: "SETNZ",
	SETBE: "SETBE", SETNBE: "SETNBE", SETS: "SETS", SETNS: "SETNS", SETP: "SETP", SETNP: "SETNP",
	SETL: "SETL", SETNL: "SETNL", SETLE: "SETLE", SETNLE: "SETNLE",
	CMOVO: "CMOVO", CMOVNO: "CMOVNO", CMOVB: "CMOVB", CMOVNB: "CMOVNB", CMOVZ: "CMOVZ", CMOVNZ: "CMOVNZ",
	CMOVBE: "CMOVBE", CMOVNBE: "CMOVNBE", CMOVS: "CMOVS", CMOVNS: "CMOVNS", CMOVP: "CMOVP", CMOVNP: "CMOVNP",
	CMOVL: "CMOVL", CMOVNL: "CMOVNL", CMOVLE: "CMOVLE", CMOVNLE: "CMOVNLE",
	MOVSS: "MOVSS", MOVSD: "MOVSD", MOVAPS: "MOVAPS", MOVUPS: "MOVUPS",
	ADDSS: "ADDSS", ADDSD: "ADDSD", SUBSS: "SUBSS", SUBSD: "SUBSD",
	MULSS: "MULSS", MULSD: "MULSD", DIVSS: "DIVSS", DIVSD: "DIVSD", XORPS: "XORPS", ANDPS: "ANDPS",
	VMOVAPS: "VMOVAPS", VADDPS: "VADDPS", VADDSS: "VADDSS",
	FLD: "FLD", FSTP: "FSTP", FADD: "FADD",
}

// Name returns the canonical mnemonic text, e.g. "MOV".
func (m Mnemonic) Name() string {
	if int(m) < len(mnemonicNames) {
		if n := mnemonicNames[m]; n != "" {
			return n
		}
	}
	return "UNKNOWN"
}

var nameToMnemonic = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, numMnemonics)
	for i, name := range mnemonicNames {
		if name != "" {
			m[name] = Mnemonic(i)
		}
	}
	return m
}()

// Lookup resolves a mnemonic's canonical text (case-insensitive) back to
// its Mnemonic value, the supplement to Name ported from the teacher's
// lookup package.
func Lookup(name string) (Mnemonic, bool) {
	m, ok := nameToMnemonic[strings.ToUpper(name)]
	return m, ok
}
