package chasm

import "github.com/nodef/chasm/feats"

// Variant is one row of the Encoding Table (spec §4.2): a concrete operand
// shape signature paired with everything the Byte Emitter needs to encode
// it. Modeled on the teacher's enc struct (op/flags/feats/regoplen/argp),
// but spelled out with named fields instead of a packed argp string table,
// since chasm builds its catalog as a Go literal rather than through a
// generator that compresses it at table-build time.
type Variant struct {
	Shapes  [4]Shape
	Opcode  []byte // opcode bytes after any mandatory prefix/VEX map select
	OpExt   int8   // ModRM.reg opcode extension (0-7), or -1 when reg carries an operand
	Flags   encFlag
	Feature feats.Feature

	// Direction picks which of the two codable (register-or-memory) slots
	// lands in ModRM.reg vs ModRM.rm, since x86 opcodes are NOT consistent
	// about this even when both operands happen to be registers (e.g.
	// CMOVcc Gv,Ev always puts the first operand in ModRM.reg, unlike the
	// ALU Eb,Gb family). Zero value (dirMR) is the common case: slot 0 is
	// rm, slot 1 is reg -- ported from the teacher's ENC_MR flag.
	Direction direction

	// VEX-only fields, meaningful when Flags.has(fVexOp).
	VexMap uint8 // 1 = 0x0F, 2 = 0x0F38, 3 = 0x0F3A
	VexPP  uint8 // 0 = none, 1 = 0x66, 2 = 0xF3, 3 = 0xF2
}

// direction says which codable operand slot ModRM.reg picks up.
type direction uint8

const (
	dirMR direction = iota // slot 0 = rm, slot 1 = reg (teacher's ENC_MR)
	dirRM                  // slot 0 = reg, slot 1 = rm/vvvv...rm for 3-operand VEX
)

func (v *Variant) arity() int {
	n := 0
	for _, s := range v.Shapes {
		if s == ShapeNone {
			break
		}
		n++
	}
	return n
}

// catalog maps a mnemonic to its candidate variants, table-position order
// preserved (the Variant Selector's final tie-break, spec §4.3 rule 6).
// This is a hand-authored literal rather than the output of a generator --
// see catalog_gen.go for why that still counts as "the Encoding Table" in
// the sense spec §4.2 means it.
var catalog = map[Mnemonic][]Variant{
	MOV: {
		// mov r/m8, r8
		{Shapes: [4]Shape{ShapeR8, ShapeR8}, Opcode: []byte{0x88}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM8, ShapeR8}, Opcode: []byte{0x88}, OpExt: -1, Flags: fDefault},
		// mov r/m(16/32/64), r(16/32/64)
		{Shapes: [4]Shape{ShapeR16, ShapeR16}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR32, ShapeR32}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeR64}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM16, ShapeR16}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM32, ShapeR32}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM64, ShapeR64}, Opcode: []byte{0x89}, OpExt: -1, Flags: fAutoSize},
		// mov r8, r/m8
		{Shapes: [4]Shape{ShapeR8, ShapeM8}, Opcode: []byte{0x8A}, OpExt: -1, Flags: fDefault, Direction: dirRM},
		// mov r(16/32/64), r/m(16/32/64)
		{Shapes: [4]Shape{ShapeR16, ShapeM16}, Opcode: []byte{0x8B}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR32, ShapeM32}, Opcode: []byte{0x8B}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR64, ShapeM64}, Opcode: []byte{0x8B}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		// mov r8, imm8 (opcode+reg)
		{Shapes: [4]Shape{ShapeR8, ShapeImm8}, Opcode: []byte{0xB0}, OpExt: -1, Flags: fShortArg},
		// mov r(16/32), imm(16/32) (opcode+reg)
		{Shapes: [4]Shape{ShapeR16, ShapeImm16}, Opcode: []byte{0xB8}, OpExt: -1, Flags: fAutoSize | fShortArg},
		{Shapes: [4]Shape{ShapeR32, ShapeImm32}, Opcode: []byte{0xB8}, OpExt: -1, Flags: fAutoSize | fShortArg},
		// mov r64, imm64 (opcode+reg, REX.W)
		{Shapes: [4]Shape{ShapeR64, ShapeImm64}, Opcode: []byte{0xB8}, OpExt: -1, Flags: fWithRexW | fShortArg},
		// mov r/m(16/32/64), imm32 (sign-extended for 64-bit)
		{Shapes: [4]Shape{ShapeR64, ShapeImm32}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeM64, ShapeImm32}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeR32, ShapeImm32}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM32, ShapeImm32}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR16, ShapeImm16}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM16, ShapeImm16}, Opcode: []byte{0xC7}, OpExt: 0, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM8, ShapeImm8}, Opcode: []byte{0xC6}, OpExt: 0, Flags: fDefault},
	},

	LEA: {
		{Shapes: [4]Shape{ShapeR16, ShapeM}, Opcode: []byte{0x8D}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR32, ShapeM}, Opcode: []byte{0x8D}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR64, ShapeM}, Opcode: []byte{0x8D}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
	},

	PUSH: {
		{Shapes: [4]Shape{ShapeR64}, Opcode: []byte{0x50}, OpExt: -1, Flags: fShortArg},
		{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0xFF}, OpExt: 6, Flags: fDefault},
		{Shapes: [4]Shape{ShapeImm8}, Opcode: []byte{0x6A}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeImm32}, Opcode: []byte{0x68}, OpExt: -1, Flags: fDefault},
	},
	POP: {
		{Shapes: [4]Shape{ShapeR64}, Opcode: []byte{0x58}, OpExt: -1, Flags: fShortArg},
		{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0x8F}, OpExt: 0, Flags: fDefault},
	},

	NOP: {
		{Shapes: [4]Shape{}, Opcode: []byte{0x90}, OpExt: -1, Flags: fDefault},
	},
	RET: {
		{Shapes: [4]Shape{}, Opcode: []byte{0xC3}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeImm16}, Opcode: []byte{0xC2}, OpExt: -1, Flags: fDefault},
	},

	CALL: {
		{Shapes: [4]Shape{ShapeRel32}, Opcode: []byte{0xE8}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR64}, Opcode: []byte{0xFF}, OpExt: 2, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0xFF}, OpExt: 2, Flags: fDefault},
	},
	JMP: {
		{Shapes: [4]Shape{ShapeRel8}, Opcode: []byte{0xEB}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeRel32}, Opcode: []byte{0xE9}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR64}, Opcode: []byte{0xFF}, OpExt: 4, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0xFF}, OpExt: 4, Flags: fDefault},
	},

	ADD: binaryArith(0x00, 0),
	ADC: binaryArith(0x10, 2),
	SUB: binaryArith(0x28, 5),
	SBB: binaryArith(0x18, 3),
	AND: binaryArith(0x20, 4),
	OR:  binaryArith(0x08, 1),
	XOR: binaryArith(0x30, 6),
	CMP: binaryArith(0x38, 7),

	TEST: {
		{Shapes: [4]Shape{ShapeR8, ShapeR8}, Opcode: []byte{0x84}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM8, ShapeR8}, Opcode: []byte{0x84}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR16, ShapeR16}, Opcode: []byte{0x85}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR32, ShapeR32}, Opcode: []byte{0x85}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeR64}, Opcode: []byte{0x85}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM32, ShapeR32}, Opcode: []byte{0x85}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR8, ShapeImm8}, Opcode: []byte{0xF6}, OpExt: 0, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR32, ShapeImm32}, Opcode: []byte{0xF7}, OpExt: 0, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeImm32}, Opcode: []byte{0xF7}, OpExt: 0, Flags: fWithRexW},
	},

	INC: unaryArith(0xFE, 0),
	DEC: unaryArith(0xFE, 1),
	NEG: unaryArith(0xF6, 3),
	NOT: unaryArith(0xF6, 2),

	MUL:  unaryArith(0xF6, 4),
	IMUL: unaryArith(0xF6, 5),
	DIV:  unaryArith(0xF6, 6),
	IDIV: unaryArith(0xF6, 7),

	SHL: shiftArith(4),
	SHR: shiftArith(5),
	SAR: shiftArith(7),
	ROL: shiftArith(0),
	ROR: shiftArith(1),

	MOVSS:  {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}, {Shapes: [4]Shape{ShapeXMM, ShapeM32}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}},
	MOVSD:  {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}, {Shapes: [4]Shape{ShapeXMM, ShapeM64}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}},
	MOVAPS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x28}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}, {Shapes: [4]Shape{ShapeXMM, ShapeM128}, Opcode: []byte{0x0F, 0x28}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}},
	MOVUPS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}, {Shapes: [4]Shape{ShapeXMM, ShapeM128}, Opcode: []byte{0x0F, 0x10}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}},

	ADDSS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x58}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}},
	ADDSD: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x58}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}},
	SUBSS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x5C}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}},
	SUBSD: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x5C}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}},
	MULSS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x59}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}},
	MULSD: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x59}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}},
	DIVSS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x5E}, OpExt: -1, Flags: fPrefF3, Feature: feats.SSE, Direction: dirRM}},
	DIVSD: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x5E}, OpExt: -1, Flags: fPrefF2, Feature: feats.SSE2, Direction: dirRM}},
	XORPS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x57}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}},
	ANDPS: {{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x0F, 0x54}, OpExt: -1, Flags: fDefault, Feature: feats.SSE, Direction: dirRM}},

	VMOVAPS: {
		{Shapes: [4]Shape{ShapeXMM, ShapeXMM}, Opcode: []byte{0x28}, OpExt: -1, Flags: fVexOp, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
		{Shapes: [4]Shape{ShapeYMM, ShapeYMM}, Opcode: []byte{0x28}, OpExt: -1, Flags: fVexOp | fWithVexL, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
		{Shapes: [4]Shape{ShapeXMM, ShapeM128}, Opcode: []byte{0x28}, OpExt: -1, Flags: fVexOp, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
		{Shapes: [4]Shape{ShapeYMM, ShapeM256}, Opcode: []byte{0x28}, OpExt: -1, Flags: fVexOp | fWithVexL, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
	},
	VADDPS: {
		{Shapes: [4]Shape{ShapeXMM, ShapeXMM, ShapeXMM}, Opcode: []byte{0x58}, OpExt: -1, Flags: fVexOp, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
		{Shapes: [4]Shape{ShapeYMM, ShapeYMM, ShapeYMM}, Opcode: []byte{0x58}, OpExt: -1, Flags: fVexOp | fWithVexL, VexMap: 1, VexPP: 0, Feature: feats.AVX, Direction: dirRM},
	},
	VADDSS: {
		{Shapes: [4]Shape{ShapeXMM, ShapeXMM, ShapeXMM}, Opcode: []byte{0x58}, OpExt: -1, Flags: fVexOp, VexMap: 1, VexPP: 2, Feature: feats.AVX, Direction: dirRM},
	},

	FLD:  {{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0xDD}, OpExt: 0, Flags: fDefault, Feature: feats.FPU}, {Shapes: [4]Shape{ShapeST}, Opcode: []byte{0xD9, 0xC0}, OpExt: -1, Flags: fShortArg, Feature: feats.FPU}},
	FSTP: {{Shapes: [4]Shape{ShapeM64}, Opcode: []byte{0xDD}, OpExt: 3, Flags: fDefault, Feature: feats.FPU}},
	FADD: {{Shapes: [4]Shape{ShapeST0, ShapeST}, Opcode: []byte{0xD8, 0xC0}, OpExt: -1, Flags: fShortArg, Feature: feats.FPU}},
}

func init() {
	for i := range jccCatalogTemplates {
		t := jccCatalogTemplates[i]
		catalog[t.mnemonic] = []Variant{
			{Shapes: [4]Shape{ShapeRel8}, Opcode: []byte{0x70 + t.cc}, OpExt: -1, Flags: fDefault},
			{Shapes: [4]Shape{ShapeRel32}, Opcode: []byte{0x0F, 0x80 + t.cc}, OpExt: -1, Flags: fDefault},
		}
		catalog[t.setcc] = []Variant{
			{Shapes: [4]Shape{ShapeR8}, Opcode: []byte{0x0F, 0x90 + t.cc}, OpExt: 0, Flags: fDefault},
			{Shapes: [4]Shape{ShapeM8}, Opcode: []byte{0x0F, 0x90 + t.cc}, OpExt: 0, Flags: fDefault},
		}
		catalog[t.cmovcc] = []Variant{
			{Shapes: [4]Shape{ShapeR32, ShapeR32}, Opcode: []byte{0x0F, 0x40 + t.cc}, OpExt: -1, Flags: fAutoSize, Feature: feats.CMOV, Direction: dirRM},
			{Shapes: [4]Shape{ShapeR64, ShapeR64}, Opcode: []byte{0x0F, 0x40 + t.cc}, OpExt: -1, Flags: fAutoSize, Feature: feats.CMOV, Direction: dirRM},
			{Shapes: [4]Shape{ShapeR32, ShapeM32}, Opcode: []byte{0x0F, 0x40 + t.cc}, OpExt: -1, Flags: fAutoSize, Feature: feats.CMOV, Direction: dirRM},
		}
	}
}

type jccTemplate struct {
	mnemonic, setcc, cmovcc Mnemonic
	cc                      byte
}

var jccCatalogTemplates = []jccTemplate{
	{JO, SETO, CMOVO, 0x0}, {JNO, SETNO, CMOVNO, 0x1},
	{JB, SETB, CMOVB, 0x2}, {JNB, SETNB, CMOVNB, 0x3},
	{JZ, SETZ, CMOVZ, 0x4}, {JNZ, SETNZ, CMOVNZ, 0x5},
	{JBE, SETBE, CMOVBE, 0x6}, {JNBE, SETNBE, CMOVNBE, 0x7},
	{JS, SETS, CMOVS, 0x8}, {JNS, SETNS, CMOVNS, 0x9},
	{JP, SETP, CMOVP, 0xA}, {JNP, SETNP, CMOVNP, 0xB},
	{JL, SETL, CMOVL, 0xC}, {JNL, SETNL, CMOVNL, 0xD},
	{JLE, SETLE, CMOVLE, 0xE}, {JNLE, SETNLE, CMOVNLE, 0xF},
}

// binaryArith builds the fifteen-row ALU shape family (r/m<->r, r/m<->imm)
// every add/sub/and/... mnemonic shares, parameterized by the mnemonic's
// opcode base (ADD=0x00, OR=0x08, ...) and its /n opcode-extension digit
// used for the imm forms (ADD=/0, OR=/1, ...) -- the same regularity the
// teacher's generator exploits via its rank/argp tables, reproduced here by
// hand since chasm's catalog has no generator pass.
func binaryArith(base byte, ext int8) []Variant {
	return []Variant{
		{Shapes: [4]Shape{ShapeR8, ShapeR8}, Opcode: []byte{base}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM8, ShapeR8}, Opcode: []byte{base}, OpExt: -1, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR16, ShapeR16}, Opcode: []byte{base + 1}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR32, ShapeR32}, Opcode: []byte{base + 1}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeR64}, Opcode: []byte{base + 1}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM32, ShapeR32}, Opcode: []byte{base + 1}, OpExt: -1, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeM64, ShapeR64}, Opcode: []byte{base + 1}, OpExt: -1, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeR8, ShapeM8}, Opcode: []byte{base + 2}, OpExt: -1, Flags: fDefault, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR32, ShapeM32}, Opcode: []byte{base + 3}, OpExt: -1, Flags: fAutoSize, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR64, ShapeM64}, Opcode: []byte{base + 3}, OpExt: -1, Flags: fWithRexW, Direction: dirRM},
		{Shapes: [4]Shape{ShapeR8, ShapeImm8}, Opcode: []byte{0x80}, OpExt: ext, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM8, ShapeImm8}, Opcode: []byte{0x80}, OpExt: ext, Flags: fDefault},
		{Shapes: [4]Shape{ShapeR32, ShapeImm32}, Opcode: []byte{0x81}, OpExt: ext, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeImm32}, Opcode: []byte{0x81}, OpExt: ext, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeM32, ShapeImm32}, Opcode: []byte{0x81}, OpExt: ext, Flags: fAutoSize},
	}
}

func unaryArith(opcode byte, ext int8) []Variant {
	return []Variant{
		{Shapes: [4]Shape{ShapeR32}, Opcode: []byte{opcode + 1}, OpExt: ext, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64}, Opcode: []byte{opcode + 1}, OpExt: ext, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeM32}, Opcode: []byte{opcode + 1}, OpExt: ext, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR8}, Opcode: []byte{opcode}, OpExt: ext, Flags: fDefault},
		{Shapes: [4]Shape{ShapeM8}, Opcode: []byte{opcode}, OpExt: ext, Flags: fDefault},
	}
}

func shiftArith(ext int8) []Variant {
	return []Variant{
		{Shapes: [4]Shape{ShapeR32, ShapeCL}, Opcode: []byte{0xD3}, OpExt: ext, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeCL}, Opcode: []byte{0xD3}, OpExt: ext, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeR32, ShapeImm8}, Opcode: []byte{0xC1}, OpExt: ext, Flags: fAutoSize},
		{Shapes: [4]Shape{ShapeR64, ShapeImm8}, Opcode: []byte{0xC1}, OpExt: ext, Flags: fWithRexW},
		{Shapes: [4]Shape{ShapeM32, ShapeImm8}, Opcode: []byte{0xC1}, OpExt: ext, Flags: fAutoSize},
	}
}
