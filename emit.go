package chasm

// encoded is one instruction's emitted bytes, plus the relocatable site
// within them if the instruction carried a Rel operand or a RIPREL memory
// base (spec §4.5's fixup record, minus the target index -- the Assembler
// fills that in once it knows where in the sequence this instruction sits).
type encoded struct {
	bytes       []byte
	hasFixup    bool
	fixupOffset int // byte offset within bytes where the fixup site begins
	fixupWidth  uint8
	fixupDelta  int // instruction-relative target, copied from Rel.Delta/Mem.RelDelta
}

var fixedShapes = map[Shape]bool{
	ShapeAL: true, ShapeCL: true, ShapeAX: true, ShapeDX: true,
	ShapeEAX: true, ShapeRAX: true, ShapeST0: true, ShapeCR8: true,
}

// codableSlot names one of a Variant's operand slots that participates in
// ModRM/SIB/VEX.vvvv, as opposed to a fixed (implicit) register, an
// immediate, or a relative displacement.
type codableSlot struct {
	index int
	reg   Reg // valid when mem == nil
	mem   *Mem
}

// emitOne runs the Byte Emitter (spec §4.4) for a single already-selected
// instruction: mandatory prefix, REX or VEX, opcode, ModRM/SIB, then
// displacement and immediate/relative bytes, in that fixed order.
func emitOne(sel *selected) (encoded, error) {
	v := sel.variant
	ops := sel.operands
	arity := sel.arity

	var codable []codableSlot
	var immIdx = -1
	var relIdx = -1 // bare Rel operand (not a RIPREL Mem)
	for i := 0; i < arity; i++ {
		switch op := ops[i].(type) {
		case Reg:
			if fixedShapes[v.Shapes[i]] {
				continue
			}
			codable = append(codable, codableSlot{index: i, reg: op})
		case Mem:
			m := op
			codable = append(codable, codableSlot{index: i, mem: &m})
		case Imm:
			immIdx = i
		case Rel:
			relIdx = i
		}
	}

	var buf buffer

	// Segment override, if the memory operand (if any) names a non-default
	// segment: emitted before every other prefix (spec §4.4 step 1).
	for _, c := range codable {
		if c.mem == nil {
			continue
		}
		if b, ok := segOverridePrefix(*c.mem); ok {
			buf.byte(b)
		}
		break
	}

	// Mandatory legacy SSE prefix / operand-size override.
	opSize66 := v.Flags.has(fPref66)
	for _, h := range sel.hints {
		if h == PREF66 {
			opSize66 = true
		}
	}
	if v.Flags.has(fAutoSize) {
		for i := 0; i < arity; i++ {
			if v.Shapes[i] == ShapeR16 || v.Shapes[i] == ShapeM16 {
				opSize66 = true
			}
		}
	}

	rexW := v.Flags.has(fWithRexW)
	for _, h := range sel.hints {
		if h == PREFREX_W {
			rexW = true
		}
	}
	if v.Flags.has(fAutoSize) {
		for i := 0; i < arity; i++ {
			if v.Shapes[i] == ShapeR64 || v.Shapes[i] == ShapeM64 {
				rexW = true
			}
		}
	}

	// Assign ModRM roles.
	var regSlot, rmSlot, vvvvSlot *codableSlot
	shortArgSlot := -1
	switch {
	case v.Flags.has(fShortArg):
		if len(codable) > 0 && codable[0].mem == nil {
			shortArgSlot = codable[0].index
		}
	case len(codable) == 1:
		rmSlot = &codable[0]
	case len(codable) == 2:
		if v.Direction == dirRM {
			regSlot, rmSlot = &codable[0], &codable[1]
		} else {
			rmSlot, regSlot = &codable[0], &codable[1]
		}
	case len(codable) == 3:
		regSlot, vvvvSlot, rmSlot = &codable[0], &codable[1], &codable[2]
	}

	// REX/VEX bit computation.
	var regExt, idxExt, baseExt bool
	regHigh8 := false
	lowByteNeedsRex := false
	checkReg := func(r Reg) {
		if r.Class() == GPR8H {
			regHigh8 = true
		}
		if r.Class() == GPR8 && r.Index() >= 4 && r.Index() <= 7 {
			lowByteNeedsRex = true
		}
	}
	if regSlot != nil && regSlot.mem == nil {
		regExt = regSlot.reg.Extended()
		checkReg(regSlot.reg)
	}
	if rmSlot != nil {
		if rmSlot.mem != nil {
			if rmSlot.mem.Base != 0 {
				baseExt = rmSlot.mem.Base.Extended()
			}
			if rmSlot.mem.Index != 0 {
				idxExt = rmSlot.mem.Index.Extended()
			}
		} else {
			baseExt = rmSlot.reg.Extended()
			checkReg(rmSlot.reg)
		}
	}
	if shortArgSlot >= 0 {
		r := ops[shortArgSlot].(Reg)
		baseExt = r.Extended()
		checkReg(r)
	}

	needsRex := rexW || regExt || idxExt || baseExt || lowByteNeedsRex
	if needsRex && regHigh8 {
		return encoded{}, newErr(ErrInvalidHighByteWithRex, ErrHighByteWithRex,
			"high-byte register combined with an operand requiring REX")
	}

	if v.Flags.has(fVexOp) {
		emitVex(&buf, v, regExt, idxExt, baseExt, rexW, vvvvSlot)
	} else {
		if opSize66 {
			buf.byte(0x66)
		}
		if v.Flags.has(fPrefF2) {
			buf.byte(0xF2)
		}
		if v.Flags.has(fPrefF3) {
			buf.byte(0xF3)
		}
		if needsRex {
			buf.byte(rexByte(rexW, regExt, idxExt, baseExt))
		}
	}

	// Opcode, with the short-arg register (if any) OR'd into the last byte.
	opcode := append([]byte(nil), v.Opcode...)
	if shortArgSlot >= 0 {
		opcode[len(opcode)-1] += ops[shortArgSlot].(Reg).Index() & 7
	}
	buf.bytes(opcode)

	var fixup *encoded
	if rmSlot != nil {
		regDigit := uint8(0)
		if regSlot != nil {
			regDigit = regSlot.reg.Index() & 7
		} else if v.OpExt >= 0 {
			regDigit = uint8(v.OpExt)
		}
		if rmSlot.mem != nil {
			f, err := emitMemOperand(&buf, *rmSlot.mem, regDigit)
			if err != nil {
				return encoded{}, err
			}
			fixup = f
		} else {
			buf.byte(0xC0 | regDigit<<3 | rmSlot.reg.Index()&7)
		}
	}

	if immIdx >= 0 {
		emitImm(&buf, ops[immIdx].(Imm), v.Shapes[immIdx])
	}

	out := encoded{bytes: buf.b}
	if fixup != nil {
		out.hasFixup, out.fixupOffset, out.fixupWidth, out.fixupDelta =
			true, fixup.fixupOffset, fixup.fixupWidth, fixup.fixupDelta
	}
	if relIdx >= 0 {
		width := uint8(4)
		if v.Shapes[relIdx] == ShapeRel8 {
			width = 1
		}
		offset := buf.len()
		r := ops[relIdx].(Rel)
		if width == 1 {
			buf.int8(0)
		} else {
			buf.int32(0)
		}
		out.bytes = buf.b
		out.hasFixup, out.fixupOffset, out.fixupWidth, out.fixupDelta = true, offset, width, r.Delta
	}
	return out, nil
}

func rexByte(w, r, x, b bool) byte {
	v := byte(0x40)
	if w {
		v |= 0x08
	}
	if r {
		v |= 0x04
	}
	if x {
		v |= 0x02
	}
	if b {
		v |= 0x01
	}
	return v
}

// emitVex writes a 2-byte or 3-byte VEX prefix (spec §4.4): the 2-byte form
// is used whenever the 3-byte form would be equivalent -- map select is
// 0x0F and REX.X/B/W are all clear -- exactly the teacher's emitVexXop
// selection rule.
func emitVex(buf *buffer, v *Variant, r, x, b, w bool, vvvvSlot *codableSlot) {
	vvvv := uint8(0xF)
	if vvvvSlot != nil && vvvvSlot.mem == nil {
		vvvv = ^vvvvSlot.reg.Index() & 0xF
	}
	l := uint8(0)
	if v.Flags.has(fWithVexL) {
		l = 1
	}
	rBit := boolBit(!r)
	if v.VexMap == 1 && !x && !b && !w {
		buf.byte(0xC5)
		buf.byte(rBit<<7 | vvvv<<3 | l<<2 | v.VexPP)
		return
	}
	buf.byte(0xC4)
	buf.byte(rBit<<7 | boolBit(!x)<<6 | boolBit(!b)<<5 | v.VexMap)
	wBit := uint8(0)
	if w {
		wBit = 1
	}
	buf.byte(wBit<<7 | vvvv<<3 | l<<2 | v.VexPP)
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// emitImm appends an immediate's bytes at the width the selector chose.
func emitImm(buf *buffer, imm Imm, shape Shape) {
	switch shape {
	case ShapeImm8:
		buf.int8(int8(imm.Value))
	case ShapeImm16:
		buf.int16(int16(imm.Value))
	case ShapeImm32:
		buf.int32(int32(imm.Value))
	default:
		buf.int64(imm.Value)
	}
}
