package chasm

// Operand is the tagged union accepted by Instruction.Operands: a register,
// an immediate, a memory reference, a relative displacement, a prefix hint,
// or None. It mirrors spec §3's Operand variants; unlike the teacher's
// interface hierarchy (Reg/ImmArg/DispArg/LabelArg/RegArg), there is no
// label variant here -- spec.md's Non-goals drop symbolic labels in favor
// of instruction-relative Rel/RIPREL operands exclusively.
type Operand interface {
	isOperand()
}

// Shape is the compact descriptor used as the key for table lookup (spec §4.1).
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeR8
	ShapeR8H // AH/CH/DH/BH
	ShapeR16
	ShapeR32
	ShapeR64
	ShapeMMX
	ShapeXMM
	ShapeYMM
	ShapeSeg
	ShapeCR
	ShapeDR
	ShapeST
	ShapeM8
	ShapeM16
	ShapeM32
	ShapeM64
	ShapeM80
	ShapeM128
	ShapeM256
	ShapeM // size-unspecified memory
	ShapeImm8
	ShapeImm16
	ShapeImm32
	ShapeImm64
	ShapeRel8
	ShapeRel32
	ShapeMoffs
	// Fixed-register shapes: these only match a single, specific register
	// value (spec §4.3 rule 2 "Fixed registers... only match themselves").
	ShapeAL
	ShapeCL
	ShapeAX
	ShapeDX
	ShapeEAX
	ShapeRAX
	ShapeST0
	ShapeCR8
)

// None is the sentinel operand for absent/unused operand slots.
type None struct{}

func (None) isOperand() {}

// ImmWidth enumerates the legal widths for an Immediate operand. Auto
// permits the selector to pick the smallest legal width (spec §4.1).
type ImmWidth uint8

const (
	ImmAuto ImmWidth = iota
	ImmW8
	ImmW16
	ImmW32
	ImmW64
)

// Imm is an immediate-value operand. Construct with ImmI8/ImmI16/ImmI32/ImmI64
// for a fixed width, or ImmAutoV for the selector to pick the smallest legal
// width for the matched variant.
type Imm struct {
	Width ImmWidth
	Value int64
}

func (Imm) isOperand() {}

// ImmI8 builds an 8-bit immediate operand.
func ImmI8(v int8) Imm { return Imm{Width: ImmW8, Value: int64(v)} }

// ImmI16 builds a 16-bit immediate operand.
func ImmI16(v int16) Imm { return Imm{Width: ImmW16, Value: int64(v)} }

// ImmI32 builds a 32-bit immediate operand.
func ImmI32(v int32) Imm { return Imm{Width: ImmW32, Value: int64(v)} }

// ImmI64 builds a 64-bit immediate operand.
func ImmI64(v int64) Imm { return Imm{Width: ImmW64, Value: v} }

// ImmAutoV builds an auto-width immediate: the selector fans it out to the
// smallest shape (imm8 ⊂ imm16 ⊂ imm32 ⊂ imm64) it fits.
func ImmAutoV(v int64) Imm { return Imm{Width: ImmAuto, Value: v} }

func (i Imm) fits(w ImmWidth) bool {
	switch w {
	case ImmW8:
		return i.Value >= -128 && i.Value <= 127
	case ImmW16:
		return i.Value >= -32768 && i.Value <= 32767
	case ImmW32:
		return i.Value >= -2147483648 && i.Value <= 2147483647
	default:
		return true
	}
}

// shapes returns every shape tag the immediate could be encoded as, smallest
// first, honoring an explicit (non-auto) width exactly.
func (i Imm) shapes() []Shape {
	if i.Width != ImmAuto {
		switch i.Width {
		case ImmW8:
			return []Shape{ShapeImm8}
		case ImmW16:
			return []Shape{ShapeImm16}
		case ImmW32:
			return []Shape{ShapeImm32}
		default:
			return []Shape{ShapeImm64}
		}
	}
	var out []Shape
	if i.fits(ImmW8) {
		out = append(out, ShapeImm8)
	}
	if i.fits(ImmW16) {
		out = append(out, ShapeImm16)
	}
	if i.fits(ImmW32) {
		out = append(out, ShapeImm32)
	}
	out = append(out, ShapeImm64)
	return out
}

// Rel is an instruction-relative displacement operand (spec §3/§4.5).
// Delta counts instructions, not bytes: Delta==0 targets the start of the
// instruction that carries this operand itself.
type Rel struct {
	Delta int
}

func (Rel) isOperand() {}

// RelTo builds a Rel operand targeting the instruction k positions away
// (negative for backward references, 0 for self).
func RelTo(k int) Rel { return Rel{Delta: k} }

// MemBase special values: in addition to ordinary GPRs, Base may be RIP
// (absolute-from-RIP addressing with an explicit, already-known
// displacement) or RIPREL (an instruction-relative reference whose
// displacement the Linker fills in during the second pass, exactly like a
// Rel operand -- see spec §3/§4.4/§4.5).
var RIPREL = Reg(8<<16 | uint32(RIPClass)<<8 | 1)

// Mem is a memory-reference operand (spec §3/§4.1).
type Mem struct {
	Base  Reg // zero value means "no base"
	Disp  int32
	Index Reg  // zero value means "no index"
	Scale uint8
	Seg   Reg  // zero value means "no segment override"; else one of ES/CS/SS/DS/FS/GS
	Width uint16 // explicit size in bits: 0 (unspecified), 8, 16, 32, 64, 80, 128, 256
	// RelDelta carries the instruction-relative target when Base == RIPREL;
	// unused otherwise. It has the same meaning as Rel.Delta.
	RelDelta int
}

func (Mem) isOperand() {}

func (m Mem) isRIPRel() bool { return m.Base == RIPREL }
func (m Mem) isRIPAbs() bool { return m.Base == RIP }

// normalizedScale maps illegal scale values (anything but 1/2/4/8) to 1,
// per spec §3's invariant: "scale values other than 1/2/4/8 are silently
// mapped to 1." warnScaleFold reports the fold for debug-mode diagnostics
// (spec §9 "Scale-of-3 and other illegal scales").
func (m Mem) normalizedScale() uint8 {
	switch m.Scale {
	case 1, 2, 4, 8:
		return m.Scale
	case 0:
		return 1
	default:
		return 1
	}
}

func (m Mem) shape() Shape {
	switch m.Width {
	case 8:
		return ShapeM8
	case 16:
		return ShapeM16
	case 32:
		return ShapeM32
	case 64:
		return ShapeM64
	case 80:
		return ShapeM80
	case 128:
		return ShapeM128
	case 256:
		return ShapeM256
	default:
		return ShapeM
	}
}

// PrefixHint forces an operand-size override (PREF66) or REX.W (PREFREX_W)
// when the chosen encoding allows it (spec §3/§4.3 rule 3).
type PrefixHint uint8

const (
	PREF66 PrefixHint = iota
	PREFREX_W
)

func (PrefixHint) isOperand() {}
