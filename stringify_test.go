package chasm

import "testing"

func TestStringifySimpleForms(t *testing.T) {
	cases := []struct {
		inst Instruction
		want string
	}{
		{Instruction{MOV, [4]Operand{RAX, RCX}}, "MOV rax, rcx\n"},
		{Instruction{ADD, [4]Operand{RAX, ImmI32(16)}}, "ADD rax, 16\n"},
		{Instruction{RET, [4]Operand{}}, "RET\n"},
		{Instruction{JMP, [4]Operand{RelTo(-2)}}, "JMP $-2\n"},
		{Instruction{JMP, [4]Operand{RelTo(0)}}, "JMP $\n"},
	}
	for _, c := range cases {
		got, err := Stringify([]Instruction{c.inst})
		if err != nil {
			t.Fatalf("Stringify(%v): %v", c.inst, err)
		}
		if got != c.want {
			t.Errorf("Stringify(%v) = %q, want %q", c.inst, got, c.want)
		}
	}
}

func TestStringifyMemoryOperand(t *testing.T) {
	m := Mem{Base: RAX, Index: RDX, Scale: 2, Disp: 100, Width: 64}
	got, err := Stringify([]Instruction{{LEA, [4]Operand{RAX, m}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "LEA rax, qword ptr [rax + rdx*2 + 100]\n"
	if got != want {
		t.Errorf("Stringify(lea) = %q, want %q", got, want)
	}
}

func TestStringifyRIPRelative(t *testing.T) {
	m := Mem{Base: RIPREL, RelDelta: 3}
	got, err := Stringify([]Instruction{{MOV, [4]Operand{RAX, m}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "MOV rax, [$+3]\n"
	if got != want {
		t.Errorf("Stringify(rip-rel) = %q, want %q", got, want)
	}
}

func TestStringifyRIPAbsolute(t *testing.T) {
	m := Mem{Base: RIP, Disp: 16}
	got, err := Stringify([]Instruction{{MOV, [4]Operand{RAX, m}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "MOV rax, [rip + 16]\n"
	if got != want {
		t.Errorf("Stringify(rip-abs) = %q, want %q", got, want)
	}
}

func TestStringifyNegativeDisplacement(t *testing.T) {
	m := Mem{Base: RBP, Disp: -8, Width: 64}
	got, err := Stringify([]Instruction{{MOV, [4]Operand{RAX, m}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "MOV rax, qword ptr [rbp - 8]\n"
	if got != want {
		t.Errorf("Stringify(neg disp) = %q, want %q", got, want)
	}
}
