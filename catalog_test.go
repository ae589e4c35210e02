package chasm

import "testing"

func TestBinaryArithOpcodeBasesMatchTheISA(t *testing.T) {
	cases := []struct {
		m    Mnemonic
		base byte
		ext  int8
	}{
		{ADD, 0x00, 0}, {OR, 0x08, 1}, {ADC, 0x10, 2}, {SBB, 0x18, 3},
		{AND, 0x20, 4}, {SUB, 0x28, 5}, {XOR, 0x30, 6}, {CMP, 0x38, 7},
	}
	for _, c := range cases {
		rows, ok := catalog[c.m]
		if !ok {
			t.Fatalf("%v has no catalog entry", c.m)
		}
		var foundRR, foundImm bool
		for _, v := range rows {
			if v.Shapes[0] == ShapeR8 && v.Shapes[1] == ShapeR8 {
				foundRR = true
				if v.Opcode[0] != c.base {
					t.Errorf("%v r8,r8 opcode = %#x, want %#x", c.m, v.Opcode[0], c.base)
				}
			}
			if v.Shapes[0] == ShapeR8 && v.Shapes[1] == ShapeImm8 {
				foundImm = true
				if v.OpExt != c.ext {
					t.Errorf("%v r8,imm8 OpExt = %d, want %d", c.m, v.OpExt, c.ext)
				}
			}
		}
		if !foundRR || !foundImm {
			t.Errorf("%v: missing expected r8,r8 or r8,imm8 row", c.m)
		}
	}
}

func TestMovR64M64RowIsRmDirection(t *testing.T) {
	for _, v := range catalog[MOV] {
		if v.Shapes[0] == ShapeR64 && v.Shapes[1] == ShapeM64 {
			if v.Direction != dirRM {
				t.Errorf("MOV r64,m64 Direction = %v, want dirRM", v.Direction)
			}
			return
		}
	}
	t.Fatal("MOV has no r64,m64 row")
}

func TestVariantArityMatchesShapeCount(t *testing.T) {
	for m, rows := range catalog {
		for _, v := range rows {
			count := 0
			for _, s := range v.Shapes {
				if s != ShapeNone {
					count++
				}
			}
			if v.arity() != count {
				t.Errorf("%v variant %+v: arity() = %d, want %d", m, v, v.arity(), count)
			}
		}
	}
}

func TestVmovapsRowsCarryVexMap(t *testing.T) {
	for _, v := range catalog[VMOVAPS] {
		if v.VexMap == 0 {
			t.Errorf("VMOVAPS variant %+v: VexMap unset", v)
		}
	}
}
