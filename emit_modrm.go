package chasm

// emitMemOperand writes the ModRM (and, when needed, SIB and displacement)
// bytes for a memory operand occupying the rm role, given the already-
// chosen ModRM.reg digit (either another register operand's index or the
// variant's opcode-extension digit). It implements the addressing-mode
// special cases from spec §4.4/§9, ported from the teacher's sanitizeMem +
// emitMSIB pair:
//
//   - RIP/RIPREL base: mod=00, rm=101, disp32 (absolute or a fixup site).
//   - no base, no index: mod=00, rm=100 (SIB), SIB base=101 forces disp32.
//   - base low 3 bits == 101 (RBP/R13) with zero displacement: bumped to
//     mod=01 with an explicit disp8 of 0, since mod=00/rm=101 is reserved
//     for RIP-relative addressing.
//   - base low 3 bits == 100 (RSP/R12): always routed through a SIB byte,
//     since rm=100 without SIB is reserved for that purpose.
func emitMemOperand(buf *buffer, m Mem, regDigit uint8) (*encoded, error) {
	if m.isRIPRel() || m.isRIPAbs() {
		buf.byte(0x00<<6 | regDigit<<3 | 0x05)
		offset := buf.len()
		if m.isRIPRel() {
			buf.int32(0)
			return &encoded{hasFixup: true, fixupOffset: offset, fixupWidth: 4, fixupDelta: m.RelDelta}, nil
		}
		buf.int32(m.Disp)
		return nil, nil
	}

	hasBase := m.Base != 0
	hasIndex := m.Index != 0
	if m.Scale != 0 && m.Scale != 1 && m.Scale != 2 && m.Scale != 4 && m.Scale != 8 {
		warnScaleFold(m.Scale)
	}
	scaleLog := scaleLogOf(m.normalizedScale())

	if !hasBase && !hasIndex {
		buf.byte(0x00<<6 | regDigit<<3 | 0x04)
		buf.byte(0x00<<6 | 0x04<<3 | 0x05)
		buf.int32(m.Disp)
		return nil, nil
	}
	if !hasBase && hasIndex {
		buf.byte(0x00<<6 | regDigit<<3 | 0x04)
		buf.byte(scaleLog<<6 | (m.Index.Index()&7)<<3 | 0x05)
		buf.int32(m.Disp)
		return nil, nil
	}

	baseLow3 := m.Base.Index() & 7
	needSIB := hasIndex || baseLow3 == 4

	var mod uint8
	switch {
	case m.Disp == 0 && baseLow3 != 5:
		mod = 0
	case fitsInt8(m.Disp):
		mod = 1
	default:
		mod = 2
	}

	if needSIB {
		sibIndex := uint8(0x04)
		if hasIndex {
			sibIndex = m.Index.Index() & 7
		}
		buf.byte(mod<<6 | regDigit<<3 | 0x04)
		buf.byte(scaleLog<<6 | sibIndex<<3 | baseLow3)
	} else {
		buf.byte(mod<<6 | regDigit<<3 | baseLow3)
	}

	switch mod {
	case 1:
		buf.int8(int8(m.Disp))
	case 2:
		buf.int32(m.Disp)
	}
	return nil, nil
}

// segOverridePrefix returns the legacy segment-override prefix byte for m
// (spec §4.4 step 1), or ok=false when m carries no override or the
// requested segment already matches the addressing mode's implicit
// default -- SS for an RSP/RBP/R12/R13 base, DS otherwise -- in which case
// no override byte is emitted.
func segOverridePrefix(m Mem) (byte, bool) {
	if m.Seg == 0 {
		return 0, false
	}
	def := DS
	switch m.Base {
	case RSP, RBP, R12, R13:
		def = SS
	}
	if m.Seg == def {
		return 0, false
	}
	switch m.Seg {
	case ES:
		return 0x26, true
	case CS:
		return 0x2E, true
	case SS:
		return 0x36, true
	case DS:
		return 0x3E, true
	case FS:
		return 0x64, true
	case GS:
		return 0x65, true
	default:
		return 0, false
	}
}

func scaleLogOf(scale uint8) uint8 {
	switch scale {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		return 0
	}
}

func fitsInt8(v int32) bool { return v >= -128 && v <= 127 }
