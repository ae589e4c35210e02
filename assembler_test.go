package chasm

import (
	"errors"
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// assertEncodes checks an instruction's encoded bytes against a hard-coded
// expected sequence and, where possible, against golang.org/x/arch's
// decoder -- the same two-pronged check the teacher's assembler_test.go
// uses (manually verified through ODA/Shell-Storm there; here the bytes
// below were checked the same way).
func assertEncodes(t *testing.T, inst Instruction, want []byte) {
	t.Helper()
	out := make([]byte, 32)
	n, err := EmitOne(inst, out)
	if err != nil {
		t.Fatalf("EmitOne(%v): %v", inst, err)
	}
	got := out[:n]
	if string(got) != string(want) {
		t.Fatalf("EmitOne(%v) = % x, want % x", inst, got, want)
	}
	if _, err := x86asm.Decode(got, 64); err != nil {
		t.Fatalf("golang.org/x/arch/x86/x86asm rejected % x: %v", got, err)
	}
}

func TestEmitOneMovRegImm(t *testing.T) {
	// mov rax, 0 -> 48 c7 c0 00 00 00 00
	assertEncodes(t, Instruction{MOV, [4]Operand{RAX, ImmI32(0)}},
		[]byte{0x48, 0xC7, 0xC0, 0x00, 0x00, 0x00, 0x00})
}

func TestEmitOneLeaScaledIndex(t *testing.T) {
	// lea rax, [rax + rdx*2 + 100] -> 48 8d 44 50 64
	assertEncodes(t, Instruction{LEA, [4]Operand{RAX, Mem{Base: RAX, Index: RDX, Scale: 2, Disp: 100}}},
		[]byte{0x48, 0x8D, 0x44, 0x50, 0x64})
}

func TestEmitOneMovLowByteImm(t *testing.T) {
	// mov al, 0xff -> b0 ff
	assertEncodes(t, Instruction{MOV, [4]Operand{AL, ImmI8(-1)}}, []byte{0xB0, 0xFF})
}

func TestEmitOneMovHighByteImm(t *testing.T) {
	// mov ah, 1 -> b4 01
	assertEncodes(t, Instruction{MOV, [4]Operand{AH, ImmI8(1)}}, []byte{0xB4, 0x01})
}

func TestEmitOneHighByteWithRexConflict(t *testing.T) {
	// mov ah, r8b would require REX (for r8b) while ah cannot be REX-encoded.
	out := make([]byte, 8)
	_, err := EmitOne(Instruction{MOV, [4]Operand{AH, R8B}}, out)
	if err == nil {
		t.Fatal("expected an error mixing a high-byte register with a REX-requiring operand")
	}
	if _, code := LastError(); code != ErrInvalidHighByteWithRex {
		t.Fatalf("LastError() code = %v, want ErrInvalidHighByteWithRex", code)
	}
}

func TestEmitOneSegmentOverride(t *testing.T) {
	// mov eax, fs:[rax] -> 64 8b 00
	assertEncodes(t, Instruction{MOV, [4]Operand{EAX, Mem{Base: RAX, Width: 32, Seg: FS}}},
		[]byte{0x64, 0x8B, 0x00})
}

func TestEmitOneNoSegmentOverrideForDefaultSegment(t *testing.T) {
	// mov eax, ds:[rax] -- DS is already the default segment for a
	// non-RSP/RBP base, so no override byte is emitted.
	assertEncodes(t, Instruction{MOV, [4]Operand{EAX, Mem{Base: RAX, Width: 32, Seg: DS}}},
		[]byte{0x8B, 0x00})
}

func TestAssembleJmpSelf(t *testing.T) {
	code, err := Assemble([]Instruction{{JMP, [4]Operand{RelTo(0)}}})
	if err != nil {
		t.Fatal(err)
	}
	// jmp $-2 (jump back to the start of itself) -> eb fe
	want := []byte{0xEB, 0xFE}
	if string(code) != string(want) {
		t.Fatalf("Assemble(jmp $) = % x, want % x", code, want)
	}
}

func TestAssembleForwardJump(t *testing.T) {
	code, err := Assemble([]Instruction{
		{JMP, [4]Operand{RelTo(2)}}, // target instruction index 2 (RET), skipping the NOP at index 1
		{NOP, [4]Operand{}},
		{RET, [4]Operand{}},
	})
	if err != nil {
		t.Fatal(err)
	}
	// jmp rel8 over the NOP, landing on RET.
	want := []byte{0xEB, 0x01, 0x90, 0xC3}
	if string(code) != string(want) {
		t.Fatalf("Assemble(forward jmp) = % x, want % x", code, want)
	}
}

func TestAssembleRelOutOfRange(t *testing.T) {
	const nops = 200
	insts := []Instruction{{JMP, [4]Operand{RelTo(nops)}}}
	// Pad with enough NOPs that a rel8 jump can no longer reach past them.
	for i := 0; i < nops; i++ {
		insts = append(insts, Instruction{NOP, [4]Operand{}})
	}
	_, err := Assemble(insts)
	if err == nil {
		t.Fatal("expected RelOutOfRange for a rel8 jump spanning 199 bytes")
	}
}

func TestAssembleRoundTripsThroughReferenceDisassembler(t *testing.T) {
	insts := []Instruction{
		{MOV, [4]Operand{RCX, RDX}},
		{ADD, [4]Operand{RCX, ImmI32(16)}},
		{SUB, [4]Operand{EAX, EBX}},
		{CMP, [4]Operand{RAX, RCX}},
		{PUSH, [4]Operand{RBP}},
		{POP, [4]Operand{RBP}},
		{RET, [4]Operand{}},
	}
	code, err := Assemble(insts)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for i := 0; n < len(code); i++ {
		inst, err := x86asm.Decode(code[n:], 64)
		if err != nil {
			t.Fatalf("decode failed at instruction %d, offset %d: %v", i, n, err)
		}
		n += inst.Len
	}
}

func TestAssembleRejectsEmptySequence(t *testing.T) {
	for _, insts := range [][]Instruction{nil, {}} {
		_, err := Assemble(insts)
		if !errors.Is(err, ErrBadArgument) {
			t.Fatalf("Assemble(%v) = %v, want ErrBadArgument", insts, err)
		}
	}
}

func TestEmitOneRejectsUnknownMnemonic(t *testing.T) {
	out := make([]byte, 8)
	_, err := EmitOne(Instruction{Mnemonic: numMnemonics + 1}, out)
	if err == nil {
		t.Fatal("expected an error for an out-of-range mnemonic")
	}
}
