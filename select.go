package chasm

import "github.com/nodef/chasm/feats"

// selected is the outcome of variant selection: the chosen Variant plus the
// real (non-hint, non-None) operands it was matched against, in slot order.
type selected struct {
	variant *Variant
	operands [4]Operand
	arity    int
	hints    []PrefixHint
}

// splitOperands separates an Instruction's four operand slots into the
// "real" operands (Reg/Imm/Mem/Rel), in order, and any PrefixHint values,
// which modify selection rather than occupying a shape slot (spec §4.3
// rule 3). None is only legal as a trailing sentinel once hints are
// removed.
func splitOperands(ops [4]Operand) (real [4]Operand, arity int, hints []PrefixHint) {
	for _, op := range ops {
		if op == nil {
			continue
		}
		if h, ok := op.(PrefixHint); ok {
			hints = append(hints, h)
			continue
		}
		if _, ok := op.(None); ok {
			continue
		}
		real[arity] = op
		arity++
	}
	return real, arity, hints
}

// operandShapes returns every Shape tag a real operand could satisfy, used
// to intersect against a Variant.Shapes slot. Multiple tags are returned
// for operands whose width is not yet pinned down (auto immediates,
// unsized memory, relative displacements) -- the Variant Selector's size
// minimization step (rule 4) then picks the smallest surviving one.
func operandShapes(op Operand) []Shape {
	switch v := op.(type) {
	case Reg:
		shapes := []Shape{v.shape()}
		if v.Class() == GPR8H {
			// AH/CH/DH/BH occupy the same 3-bit ModRM encoding space as
			// AL-DH/BL and are accepted anywhere an r8 operand is: the
			// conflict with REX (which makes them unaddressable) is an
			// emission-time check (emit.go), not a shape mismatch, mirroring
			// how the teacher's argument matcher doesn't distinguish them
			// either and leaves the REX conflict to checkRex.
			shapes = append(shapes, ShapeR8)
		}
		switch v {
		case AL:
			shapes = append(shapes, ShapeAL)
		case CL:
			shapes = append(shapes, ShapeCL)
		case AX:
			shapes = append(shapes, ShapeAX)
		case DX:
			shapes = append(shapes, ShapeDX)
		case EAX:
			shapes = append(shapes, ShapeEAX)
		case RAX:
			shapes = append(shapes, ShapeRAX)
		case ST0:
			shapes = append(shapes, ShapeST0)
		case CR8:
			shapes = append(shapes, ShapeCR8)
		}
		return shapes
	case Imm:
		return v.shapes()
	case Mem:
		if v.Width != 0 {
			return []Shape{v.shape()}
		}
		return []Shape{ShapeM8, ShapeM16, ShapeM32, ShapeM64, ShapeM80, ShapeM128, ShapeM256, ShapeM}
	case Rel:
		return []Shape{ShapeRel8, ShapeRel32}
	default:
		return nil
	}
}

// shapeRank orders candidate shapes smallest-first for the size
// minimization rule (spec §4.3 rule 4): the earlier a shape appears here,
// the smaller an encoding it produces.
var shapeRank = map[Shape]int{
	ShapeRel8: 0, ShapeRel32: 1,
	ShapeImm8: 0, ShapeImm16: 1, ShapeImm32: 2, ShapeImm64: 3,
	ShapeM8: 0, ShapeM16: 1, ShapeM32: 2, ShapeM64: 3, ShapeM80: 4, ShapeM128: 5, ShapeM256: 6, ShapeM: 7,
}

func containsShape(candidates []Shape, want Shape) bool {
	for _, c := range candidates {
		if c == want {
			return true
		}
	}
	return false
}

// bestRank returns the shapeRank of the shape the variant's slot demands
// (want; candidates is not consulted), or 0 for a shape with no rank, used
// to compare two otherwise-tied variants by which one demands the smaller
// encoding.
func bestRank(candidates []Shape, want Shape) int {
	if r, ok := shapeRank[want]; ok {
		return r
	}
	_ = candidates
	return 0
}

func honorsHint(v *Variant, h PrefixHint) bool {
	switch h {
	case PREF66:
		return v.Flags.has(fPref66) || v.Flags.has(fAutoSize)
	case PREFREX_W:
		return v.Flags.has(fWithRexW) || v.Flags.has(fAutoSize)
	}
	return false
}

// selectVariant implements the Variant Selector (spec §4.3): arity filter,
// per-slot shape compatibility (with fixed-register exact match and
// explicit memory-size override), prefix-hint compatibility, CPU feature
// gating, size minimization (memory width first, then immediate width, the
// documented resolution of spec §9's ordering Open Question -- see
// DESIGN.md), and finally table-position tie-break.
func selectVariant(mnemonic Mnemonic, ops [4]Operand, enabled feats.Feature) (*selected, error) {
	variants, ok := catalog[mnemonic]
	if !ok {
		return nil, newErr(ErrNoSuchMnemonic, ErrUnknownMnemonic, "unknown mnemonic %v", mnemonic)
	}
	real, arity, hints := splitOperands(ops)

	var byArity []*Variant
	for i := range variants {
		if variants[i].arity() == arity {
			byArity = append(byArity, &variants[i])
		}
	}
	if len(byArity) == 0 {
		return nil, newErr(ErrNoSuchForm, ErrNoMatchingForm, "%s: no variant accepts %d operand(s)", mnemonic.Name(), arity)
	}

	candShapes := [4][]Shape{}
	for i := 0; i < arity; i++ {
		candShapes[i] = operandShapes(real[i])
	}

	sawSizeMismatch := false
	var byShape []*Variant
	for _, v := range byArity {
		ok := true
		for i := 0; i < arity; i++ {
			if !containsShape(candShapes[i], v.Shapes[i]) {
				if _, isMem := real[i].(Mem); isMem && real[i].(Mem).Width != 0 {
					sawSizeMismatch = true
				}
				ok = false
				break
			}
		}
		if ok {
			byShape = append(byShape, v)
		}
	}
	if len(byShape) == 0 {
		if sawSizeMismatch {
			return nil, newErr(ErrSizeUnavailable, ErrMemSizeUnavailable, "%s: no variant encodes the requested explicit memory size", mnemonic.Name())
		}
		return nil, newErr(ErrOperandMismatch, ErrShapeMismatch, "%s: no variant matches the supplied operand shapes", mnemonic.Name())
	}

	var byHint []*Variant
	for _, v := range byShape {
		ok := true
		for _, h := range hints {
			if !honorsHint(v, h) {
				ok = false
				break
			}
		}
		if ok {
			byHint = append(byHint, v)
		}
	}
	if len(byHint) == 0 {
		return nil, newErr(ErrPrefixConflict, ErrHintConflict, "%s: no variant honors the requested prefix hint", mnemonic.Name())
	}

	var byFeature []*Variant
	for _, v := range byHint {
		if v.Feature == 0 || enabled&v.Feature == v.Feature {
			byFeature = append(byFeature, v)
		}
	}
	if len(byFeature) == 0 {
		return nil, newErr(ErrNoSuchForm, ErrNoMatchingForm, "%s: every matching variant requires a disabled CPU feature", mnemonic.Name())
	}

	best := byFeature[0]
	bestKey := sizeKey(best, candShapes, arity)
	for _, v := range byFeature[1:] {
		k := sizeKey(v, candShapes, arity)
		if lessSizeKey(k, bestKey) {
			best, bestKey = v, k
		}
	}

	return &selected{variant: best, operands: real, arity: arity, hints: hints}, nil
}

// sizeKey computes the (memory-rank, immediate-rank) tuple used for the
// deterministic minimization order spec §9 leaves as an Open Question:
// chasm resolves it as "shrink memory operands before immediate operands".
func sizeKey(v *Variant, candShapes [4][]Shape, arity int) [2]int {
	var memRank, immRank int
	for i := 0; i < arity; i++ {
		switch v.Shapes[i] {
		case ShapeM8, ShapeM16, ShapeM32, ShapeM64, ShapeM80, ShapeM128, ShapeM256, ShapeM:
			if r := bestRank(candShapes[i], v.Shapes[i]); r > memRank {
				memRank = r
			}
		case ShapeImm8, ShapeImm16, ShapeImm32, ShapeImm64, ShapeRel8, ShapeRel32:
			if r := bestRank(candShapes[i], v.Shapes[i]); r > immRank {
				immRank = r
			}
		}
	}
	return [2]int{memRank, immRank}
}

func lessSizeKey(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
