package chasm

// Per-variant bit flags, ported from the teacher's internal/flags package
// (itself mirrored by the public flags package it hands to its generator).
// Kept as plain uint32 constants rather than a separate leaf package since
// nothing outside the catalog/emitter ever needs to name them.
type encFlag uint32

const (
	fDefault  encFlag = 0
	fVexOp    encFlag = 1 << iota // requires a VEX prefix
	fXopOp                        // requires an XOP prefix (unused by the current catalog, kept for parity)
	fAutoSize                     // 16-bit -> 0x66, 32-bit -> none, 64-bit -> REX.W
	fWithRexW                     // always emits REX.W
	fWithVexL                     // always emits VEX.L (256-bit)
	fPref66                       // mandatory 0x66 prefix (legacy SSE)
	fPrefF2                       // mandatory 0xF2 prefix (legacy SSE)
	fPrefF3                       // mandatory 0xF3 prefix (legacy SSE)
	fShortArg                     // low 3 bits of the register operand are OR'd into the final opcode byte
	fLockable                     // accepts a LOCK prefix
	fImplicitReg                  // the instruction has an implicit register operand not carried in Variant.Shapes
)

func (f encFlag) has(bit encFlag) bool { return f&bit != 0 }
