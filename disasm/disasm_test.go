package disasm

import "testing"

func TestDecodeWalksAConcatenatedSequence(t *testing.T) {
	// mov ecx, 1; ret
	code := []byte{0xB9, 0x01, 0x00, 0x00, 0x00, 0xC3}
	insts, err := Decode(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 2 {
		t.Fatalf("Decode returned %d instructions, want 2", len(insts))
	}
	if insts[0].Len != 5 || insts[1].Len != 1 {
		t.Fatalf("unexpected instruction lengths: %d, %d", insts[0].Len, insts[1].Len)
	}
}

func TestDecodeReportsTrailingGarbage(t *testing.T) {
	code := []byte{0xC3, 0x0F, 0xFF}
	_, err := Decode(code)
	if err == nil {
		t.Fatal("expected an error decoding a malformed trailing opcode")
	}
}

func TestIntelLinesRendersOneLinePerInstruction(t *testing.T) {
	code := []byte{0xB9, 0x01, 0x00, 0x00, 0x00, 0xC3}
	lines, err := IntelLines(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("IntelLines returned %d lines, want 2", len(lines))
	}
}
