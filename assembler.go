package chasm

import "github.com/nodef/chasm/feats"

// Instruction is the flat four-operand aggregate spec §3/§6 passes around:
// POD-like, safe to build with a composite literal the way the teacher
// builds calls to Inst(MOV, RAX, Mem{...}) inline at the call site.
type Instruction struct {
	Mnemonic Mnemonic
	Operands [4]Operand
}

// Option configures an Assembler at construction time, mirroring the
// teacher's SetFeatures/EnableFeature/DisableFeature trio but expressed as
// functional options (spec's ambient "Configuration" stack, SPEC_FULL §4).
type Option func(*Assembler)

// WithFeatures sets the initial enabled CPU feature mask.
func WithFeatures(f feats.Feature) Option {
	return func(a *Assembler) { a.enabled = f }
}

// Assembler holds the CPU feature mask governing which catalog Variants the
// Selector may pick, and provides the Sequence Assembler & Linker (spec
// §4.5) and single-instruction (spec §4.4-only) entry points.
type Assembler struct {
	enabled feats.Feature
}

// NewAssembler builds an Assembler with every known feature enabled unless
// narrowed by opts.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{enabled: feats.AllFeatures}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// EnableFeature turns on additional CPU features.
func (a *Assembler) EnableFeature(f feats.Feature) { a.enabled |= f }

// DisableFeature turns off CPU features, causing the Selector to reject any
// variant that requires them.
func (a *Assembler) DisableFeature(f feats.Feature) { a.enabled &^= f }

// SetFeatures replaces the enabled feature mask outright.
func (a *Assembler) SetFeatures(f feats.Feature) { a.enabled = f }

// EmitOne encodes a single instruction into out with no relative
// resolution: a Rel operand or RIPREL memory base is encoded with its
// fixup site left as a zero placeholder, since there is no sequence
// context here to resolve it against (spec §6's EmitOne contract).
func (a *Assembler) EmitOne(inst Instruction, out []byte) (int, error) {
	sel, err := selectVariant(inst.Mnemonic, inst.Operands, a.enabled)
	if err != nil {
		return 0, err
	}
	enc, err := emitOne(sel)
	if err != nil {
		return 0, err
	}
	if len(out) < len(enc.bytes) {
		return 0, newErr(ErrInvalidArgument, ErrBadArgument, "output buffer too small: need %d bytes, have %d", len(enc.bytes), len(out))
	}
	return copy(out, enc.bytes), nil
}

// Assemble runs the two-pass Sequence Assembler & Linker (spec §4.5): pass
// one selects a Variant and emits bytes for every instruction, recording
// each fixup site as {offset, width, target instruction index}; pass two
// computes every fixup's displacement as target_offset - here_end (byte
// offset just past the instruction carrying the fixup) and patches it in
// place, failing with RelOutOfRange if the value doesn't fit the site's
// width.
func (a *Assembler) Assemble(insts []Instruction) ([]byte, error) {
	if len(insts) == 0 {
		return nil, newErr(ErrInvalidArgument, ErrBadArgument, "Assemble: instruction sequence is empty")
	}
	encs := make([]encoded, len(insts))
	offsets := make([]int, len(insts)+1)
	for i, inst := range insts {
		sel, err := selectVariant(inst.Mnemonic, inst.Operands, a.enabled)
		if err != nil {
			return nil, err
		}
		e, err := emitOne(sel)
		if err != nil {
			return nil, err
		}
		encs[i] = e
		offsets[i+1] = offsets[i] + len(e.bytes)
	}

	out := make([]byte, offsets[len(insts)])
	for i, e := range encs {
		copy(out[offsets[i]:], e.bytes)
	}

	for i, e := range encs {
		if !e.hasFixup {
			continue
		}
		target := i + e.fixupDelta
		if target < 0 || target > len(insts) {
			return nil, newErr(ErrInvalidArgument, ErrBadArgument,
				"instruction %d: relative target instruction %d is out of sequence", i, target)
		}
		hereEnd := offsets[i+1]
		disp := offsets[target] - hereEnd
		site := offsets[i] + e.fixupOffset
		if err := patchRel(out, site, e.fixupWidth, disp); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func patchRel(out []byte, site int, width uint8, disp int) error {
	switch width {
	case 1:
		if disp < -128 || disp > 127 {
			return newErr(ErrRelOutOfRange, ErrRelRange, "relative displacement %d does not fit in 8 bits", disp)
		}
		out[site] = byte(int8(disp))
	default:
		if disp < -2147483648 || disp > 2147483647 {
			return newErr(ErrRelOutOfRange, ErrRelRange, "relative displacement %d does not fit in 32 bits", disp)
		}
		out[site] = byte(disp)
		out[site+1] = byte(disp >> 8)
		out[site+2] = byte(disp >> 16)
		out[site+3] = byte(disp >> 24)
	}
	return nil
}

// Nop appends a single canonical multi-byte NOP sequence of n bytes to out.
func (a *Assembler) Nop(out []byte, n int) []byte { return appendNop(out, n) }

// AlignPC pads out with NOPs until its length is a multiple of align
// (align must be a power of two).
func (a *Assembler) AlignPC(out []byte, align int) []byte {
	pad := (align - len(out)%align) % align
	return appendNop(out, pad)
}

// Assemble is the package-level convenience form of (*Assembler).Assemble,
// using every known CPU feature (spec §6's external Assemble signature).
func Assemble(insts []Instruction) ([]byte, error) { return NewAssembler().Assemble(insts) }

// EmitOne is the package-level convenience form of (*Assembler).EmitOne.
func EmitOne(inst Instruction, out []byte) (int, error) { return NewAssembler().EmitOne(inst, out) }
