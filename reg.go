package chasm

// RegClass identifies the architectural register family a Reg belongs to.
type RegClass uint8

// Register classes, per the Operand Model (spec §3/§4.1).
const (
	GPR8 RegClass = iota
	GPR8H         // AH, CH, DH, BH -- forbids REX
	GPR16
	GPR32
	GPR64
	MMX
	XMM
	YMM
	SEG
	CR
	DR
	ST
	RIPClass // IP/EIP/RIP, used only as Mem.Base
)

// Reg is a register operand: a class plus an index within that class.
// It is bit-packed (width<<16 | class<<8 | index) so values are cheap,
// comparable, and usable as map keys or switch cases without indirection --
// the same representation the teacher repository uses for its closed
// register set.
type Reg uint32

func mkreg(width uint8, class RegClass, index uint8) Reg {
	return Reg(uint32(width)<<16 | uint32(class)<<8 | uint32(index))
}

func (r Reg) isOperand() {}

// Class returns the register family.
func (r Reg) Class() RegClass { return RegClass(uint8(r >> 8)) }

// Index returns the number distinguishing the register within its class
// (0-31). RIP has no meaningful index and returns 0.
func (r Reg) Index() uint8 { return uint8(r) & 0x1f }

// Width returns the width of the register in bytes.
func (r Reg) Width() uint8 { return uint8(r>>16) & 0x7f }

// Extended reports whether the register needs REX.B/X/R (or VEX's inverted
// equivalent) to address, i.e. its index is 8 or higher.
func (r Reg) Extended() bool { return r.Index() >= 8 }

func (r Reg) shape() Shape {
	switch r.Class() {
	case GPR8:
		return ShapeR8
	case GPR8H:
		return ShapeR8H
	case GPR16:
		return ShapeR16
	case GPR32:
		return ShapeR32
	case GPR64:
		return ShapeR64
	case MMX:
		return ShapeMMX
	case XMM:
		return ShapeXMM
	case YMM:
		return ShapeYMM
	case SEG:
		return ShapeSeg
	case CR:
		return ShapeCR
	case DR:
		return ShapeDR
	case ST:
		return ShapeST
	default:
		return ShapeNone
	}
}

// Registers.
const (
	// 8-bit high-byte registers (REG_HIGHBYTE): no REX encoding exists for these.
	AH Reg = Reg(1<<16 | uint32(GPR8H)<<8 | 4)
	CH Reg = Reg(1<<16 | uint32(GPR8H)<<8 | 5)
	DH Reg = Reg(1<<16 | uint32(GPR8H)<<8 | 6)
	BH Reg = Reg(1<<16 | uint32(GPR8H)<<8 | 7)

	// 8-bit.
	AL   Reg = Reg(1<<16 | uint32(GPR8)<<8 | 0)
	CL   Reg = Reg(1<<16 | uint32(GPR8)<<8 | 1)
	DL   Reg = Reg(1<<16 | uint32(GPR8)<<8 | 2)
	BL   Reg = Reg(1<<16 | uint32(GPR8)<<8 | 3)
	SPB  Reg = Reg(1<<16 | uint32(GPR8)<<8 | 4)
	BPB  Reg = Reg(1<<16 | uint32(GPR8)<<8 | 5)
	SIB8 Reg = Reg(1<<16 | uint32(GPR8)<<8 | 6)
	DIB  Reg = Reg(1<<16 | uint32(GPR8)<<8 | 7)
	R8B  Reg = Reg(1<<16 | uint32(GPR8)<<8 | 8)
	R9B  Reg = Reg(1<<16 | uint32(GPR8)<<8 | 9)
	R10B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 10)
	R11B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 11)
	R12B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 12)
	R13B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 13)
	R14B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 14)
	R15B Reg = Reg(1<<16 | uint32(GPR8)<<8 | 15)

	// 16-bit.
	AX   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 0)
	CX   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 1)
	DX   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 2)
	BX   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 3)
	SP   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 4)
	BP   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 5)
	SI   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 6)
	DI   Reg = Reg(2<<16 | uint32(GPR16)<<8 | 7)
	R8W  Reg = Reg(2<<16 | uint32(GPR16)<<8 | 8)
	R9W  Reg = Reg(2<<16 | uint32(GPR16)<<8 | 9)
	R10W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 10)
	R11W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 11)
	R12W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 12)
	R13W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 13)
	R14W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 14)
	R15W Reg = Reg(2<<16 | uint32(GPR16)<<8 | 15)

	// 32-bit.
	EAX  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 0)
	ECX  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 1)
	EDX  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 2)
	EBX  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 3)
	ESP  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 4)
	EBP  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 5)
	ESI  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 6)
	EDI  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 7)
	R8L  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 8)
	R9L  Reg = Reg(4<<16 | uint32(GPR32)<<8 | 9)
	R10L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 10)
	R11L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 11)
	R12L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 12)
	R13L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 13)
	R14L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 14)
	R15L Reg = Reg(4<<16 | uint32(GPR32)<<8 | 15)

	// 64-bit.
	RAX Reg = Reg(8<<16 | uint32(GPR64)<<8 | 0)
	RCX Reg = Reg(8<<16 | uint32(GPR64)<<8 | 1)
	RDX Reg = Reg(8<<16 | uint32(GPR64)<<8 | 2)
	RBX Reg = Reg(8<<16 | uint32(GPR64)<<8 | 3)
	RSP Reg = Reg(8<<16 | uint32(GPR64)<<8 | 4)
	RBP Reg = Reg(8<<16 | uint32(GPR64)<<8 | 5)
	RSI Reg = Reg(8<<16 | uint32(GPR64)<<8 | 6)
	RDI Reg = Reg(8<<16 | uint32(GPR64)<<8 | 7)
	R8  Reg = Reg(8<<16 | uint32(GPR64)<<8 | 8)
	R9  Reg = Reg(8<<16 | uint32(GPR64)<<8 | 9)
	R10 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 10)
	R11 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 11)
	R12 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 12)
	R13 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 13)
	R14 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 14)
	R15 Reg = Reg(8<<16 | uint32(GPR64)<<8 | 15)

	// Instruction pointer, valid only as Mem.Base for RIP-relative addressing.
	RIP Reg = Reg(8<<16 | uint32(RIPClass)<<8 | 0)

	// x87 FPU stack registers.
	ST0 Reg = Reg(10<<16 | uint32(ST)<<8 | 0)
	ST1 Reg = Reg(10<<16 | uint32(ST)<<8 | 1)
	ST2 Reg = Reg(10<<16 | uint32(ST)<<8 | 2)
	ST3 Reg = Reg(10<<16 | uint32(ST)<<8 | 3)
	ST4 Reg = Reg(10<<16 | uint32(ST)<<8 | 4)
	ST5 Reg = Reg(10<<16 | uint32(ST)<<8 | 5)
	ST6 Reg = Reg(10<<16 | uint32(ST)<<8 | 6)
	ST7 Reg = Reg(10<<16 | uint32(ST)<<8 | 7)

	// MMX registers.
	MM0 Reg = Reg(8<<16 | uint32(MMX)<<8 | 0)
	MM1 Reg = Reg(8<<16 | uint32(MMX)<<8 | 1)
	MM2 Reg = Reg(8<<16 | uint32(MMX)<<8 | 2)
	MM3 Reg = Reg(8<<16 | uint32(MMX)<<8 | 3)
	MM4 Reg = Reg(8<<16 | uint32(MMX)<<8 | 4)
	MM5 Reg = Reg(8<<16 | uint32(MMX)<<8 | 5)
	MM6 Reg = Reg(8<<16 | uint32(MMX)<<8 | 6)
	MM7 Reg = Reg(8<<16 | uint32(MMX)<<8 | 7)

	// XMM registers.
	X0  Reg = Reg(16<<16 | uint32(XMM)<<8 | 0)
	X1  Reg = Reg(16<<16 | uint32(XMM)<<8 | 1)
	X2  Reg = Reg(16<<16 | uint32(XMM)<<8 | 2)
	X3  Reg = Reg(16<<16 | uint32(XMM)<<8 | 3)
	X4  Reg = Reg(16<<16 | uint32(XMM)<<8 | 4)
	X5  Reg = Reg(16<<16 | uint32(XMM)<<8 | 5)
	X6  Reg = Reg(16<<16 | uint32(XMM)<<8 | 6)
	X7  Reg = Reg(16<<16 | uint32(XMM)<<8 | 7)
	X8  Reg = Reg(16<<16 | uint32(XMM)<<8 | 8)
	X9  Reg = Reg(16<<16 | uint32(XMM)<<8 | 9)
	X10 Reg = Reg(16<<16 | uint32(XMM)<<8 | 10)
	X11 Reg = Reg(16<<16 | uint32(XMM)<<8 | 11)
	X12 Reg = Reg(16<<16 | uint32(XMM)<<8 | 12)
	X13 Reg = Reg(16<<16 | uint32(XMM)<<8 | 13)
	X14 Reg = Reg(16<<16 | uint32(XMM)<<8 | 14)
	X15 Reg = Reg(16<<16 | uint32(XMM)<<8 | 15)

	// YMM registers.
	Y0  Reg = Reg(32<<16 | uint32(YMM)<<8 | 0)
	Y1  Reg = Reg(32<<16 | uint32(YMM)<<8 | 1)
	Y2  Reg = Reg(32<<16 | uint32(YMM)<<8 | 2)
	Y3  Reg = Reg(32<<16 | uint32(YMM)<<8 | 3)
	Y4  Reg = Reg(32<<16 | uint32(YMM)<<8 | 4)
	Y5  Reg = Reg(32<<16 | uint32(YMM)<<8 | 5)
	Y6  Reg = Reg(32<<16 | uint32(YMM)<<8 | 6)
	Y7  Reg = Reg(32<<16 | uint32(YMM)<<8 | 7)
	Y8  Reg = Reg(32<<16 | uint32(YMM)<<8 | 8)
	Y9  Reg = Reg(32<<16 | uint32(YMM)<<8 | 9)
	Y10 Reg = Reg(32<<16 | uint32(YMM)<<8 | 10)
	Y11 Reg = Reg(32<<16 | uint32(YMM)<<8 | 11)
	Y12 Reg = Reg(32<<16 | uint32(YMM)<<8 | 12)
	Y13 Reg = Reg(32<<16 | uint32(YMM)<<8 | 13)
	Y14 Reg = Reg(32<<16 | uint32(YMM)<<8 | 14)
	Y15 Reg = Reg(32<<16 | uint32(YMM)<<8 | 15)

	// Segment registers.
	ES Reg = Reg(2<<16 | uint32(SEG)<<8 | 0)
	CS Reg = Reg(2<<16 | uint32(SEG)<<8 | 1)
	SS Reg = Reg(2<<16 | uint32(SEG)<<8 | 2)
	DS Reg = Reg(2<<16 | uint32(SEG)<<8 | 3)
	FS Reg = Reg(2<<16 | uint32(SEG)<<8 | 4)
	GS Reg = Reg(2<<16 | uint32(SEG)<<8 | 5)

	// Control registers.
	CR0  Reg = Reg(4<<16 | uint32(CR)<<8 | 0)
	CR1  Reg = Reg(4<<16 | uint32(CR)<<8 | 1)
	CR2  Reg = Reg(4<<16 | uint32(CR)<<8 | 2)
	CR3  Reg = Reg(4<<16 | uint32(CR)<<8 | 3)
	CR4  Reg = Reg(4<<16 | uint32(CR)<<8 | 4)
	CR8  Reg = Reg(4<<16 | uint32(CR)<<8 | 8)

	// Debug registers.
	DR0 Reg = Reg(4<<16 | uint32(DR)<<8 | 0)
	DR1 Reg = Reg(4<<16 | uint32(DR)<<8 | 1)
	DR2 Reg = Reg(4<<16 | uint32(DR)<<8 | 2)
	DR3 Reg = Reg(4<<16 | uint32(DR)<<8 | 3)
	DR6 Reg = Reg(4<<16 | uint32(DR)<<8 | 6)
	DR7 Reg = Reg(4<<16 | uint32(DR)<<8 | 7)
)
