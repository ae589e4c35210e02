package chasm

// ConditionCode identifies an x86 condition for Jcc/SETcc/CMOVcc, using the
// same numbering as the low nibble of the Jcc opcode (0x70+cc / 0x0F80+cc).
// Ported from the teacher's condition_codes.go, which carries this exact
// table as a supplement: spec.md's Mnemonic enumeration already lists each
// conditional mnemonic individually, but building them up programmatically
// from a ConditionCode (e.g. when lowering a comparison operator) is a
// convenience the original assembler ships and nothing in spec's Non-goals
// excludes.
type ConditionCode uint8

const (
	CCOverflow    ConditionCode = 0x0
	CCNotOverflow ConditionCode = 0x1
	CCUnsignedLT  ConditionCode = 0x2
	CCUnsignedGTE ConditionCode = 0x3
	CCEq          ConditionCode = 0x4
	CCNeq         ConditionCode = 0x5
	CCUnsignedLTE ConditionCode = 0x6
	CCUnsignedGT  ConditionCode = 0x7
	CCSign        ConditionCode = 0x8
	CCNotSign     ConditionCode = 0x9
	CCParity      ConditionCode = 0xA
	CCNotParity   ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

var jccTable = [16]Mnemonic{
	CCOverflow: JO, CCNotOverflow: JNO, CCUnsignedLT: JB, CCUnsignedGTE: JNB,
	CCEq: JZ, CCNeq: JNZ, CCUnsignedLTE: JBE, CCUnsignedGT: JNBE,
	CCSign: JS, CCNotSign: JNS, CCParity: JP, CCNotParity: JNP,
	CCSignedLT: JL, CCSignedGTE: JNL, CCSignedLTE: JLE, CCSignedGT: JNLE,
}

var setccTable = [16]Mnemonic{
	CCOverflow: SETO, CCNotOverflow: SETNO, CCUnsignedLT: SETB, CCUnsignedGTE: SETNB,
	CCEq: SETZ, CCNeq: SETNZ, CCUnsignedLTE: SETBE, CCUnsignedGT: SETNBE,
	CCSign: SETS, CCNotSign: SETNS, CCParity: SETP, CCNotParity: SETNP,
	CCSignedLT: SETL, CCSignedGTE: SETNL, CCSignedLTE: SETLE, CCSignedGT: SETNLE,
}

var cmovccTable = [16]Mnemonic{
	CCOverflow: CMOVO, CCNotOverflow: CMOVNO, CCUnsignedLT: CMOVB, CCUnsignedGTE: CMOVNB,
	CCEq: CMOVZ, CCNeq: CMOVNZ, CCUnsignedLTE: CMOVBE, CCUnsignedGT: CMOVNBE,
	CCSign: CMOVS, CCNotSign: CMOVNS, CCParity: CMOVP, CCNotParity: CMOVNP,
	CCSignedLT: CMOVL, CCSignedGTE: CMOVNL, CCSignedLTE: CMOVLE, CCSignedGT: CMOVNLE,
}

var invccTable = [16]ConditionCode{
	CCOverflow: CCNotOverflow, CCNotOverflow: CCOverflow,
	CCUnsignedLT: CCUnsignedGTE, CCUnsignedGTE: CCUnsignedLT,
	CCEq: CCNeq, CCNeq: CCEq,
	CCUnsignedLTE: CCUnsignedGT, CCUnsignedGT: CCUnsignedLTE,
	CCSign: CCNotSign, CCNotSign: CCSign,
	CCParity: CCNotParity, CCNotParity: CCParity,
	CCSignedLT: CCSignedGTE, CCSignedGTE: CCSignedLT,
	CCSignedLTE: CCSignedGT, CCSignedGT: CCSignedLTE,
}

// Jcc returns the conditional-jump mnemonic for a condition code.
func Jcc(cc ConditionCode) Mnemonic { return jccTable[cc&0xf] }

// Setcc returns the conditional-set mnemonic for a condition code.
func Setcc(cc ConditionCode) Mnemonic { return setccTable[cc&0xf] }

// Cmovcc returns the conditional-move mnemonic for a condition code.
func Cmovcc(cc ConditionCode) Mnemonic { return cmovccTable[cc&0xf] }

// Invcc inverts a condition code (e.g. CCEq <-> CCNeq).
func Invcc(cc ConditionCode) ConditionCode { return invccTable[cc&0xf] }
