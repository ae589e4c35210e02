package chasm

import "testing"

func TestInvccIsAnInvolution(t *testing.T) {
	for cc := ConditionCode(0); cc < 16; cc++ {
		inv := Invcc(cc)
		if inv == cc {
			t.Errorf("Invcc(%d) = %d, want a distinct code", cc, inv)
		}
		if back := Invcc(inv); back != cc {
			t.Errorf("Invcc(Invcc(%d)) = %d, want %d", cc, back, cc)
		}
	}
}

func TestJccSetccCmovccCoverAllSixteenCodes(t *testing.T) {
	seen := map[Mnemonic]bool{}
	for cc := ConditionCode(0); cc < 16; cc++ {
		for _, m := range []Mnemonic{Jcc(cc), Setcc(cc), Cmovcc(cc)} {
			if m == 0 {
				t.Fatalf("condition code %d produced the zero Mnemonic", cc)
			}
			if seen[m] {
				t.Fatalf("mnemonic %v produced for more than one condition code", m)
			}
			seen[m] = true
		}
	}
}

func TestJccEncodesOpcodeFromConditionCode(t *testing.T) {
	// jz $ (CCEq, cc=4) -> rel8 opcode 0x70+4 = 0x74, self-target -> disp -2
	code, err := Assemble([]Instruction{{Jcc(CCEq), [4]Operand{RelTo(0)}}})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x74, 0xFE}
	if string(code) != string(want) {
		t.Fatalf("Assemble(jz $) = % x, want % x", code, want)
	}
}

func TestSetccAndCmovccAreRegisteredInCatalog(t *testing.T) {
	for cc := ConditionCode(0); cc < 16; cc++ {
		if _, ok := catalog[Setcc(cc)]; !ok {
			t.Errorf("Setcc(%d) = %v has no catalog entry", cc, Setcc(cc))
		}
		if _, ok := catalog[Cmovcc(cc)]; !ok {
			t.Errorf("Cmovcc(%d) = %v has no catalog entry", cc, Cmovcc(cc))
		}
	}
}
