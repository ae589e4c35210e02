package lookup

import (
	"testing"

	"github.com/nodef/chasm"
)

func TestInstIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"mov", "MOV", "Mov", "mOv"} {
		m, ok := Inst(name)
		if !ok {
			t.Fatalf("Inst(%q): not found", name)
		}
		if m != chasm.MOV {
			t.Fatalf("Inst(%q) = %v, want chasm.MOV", name, m)
		}
	}
}

func TestInstRejectsUnknownText(t *testing.T) {
	if _, ok := Inst("not_a_real_mnemonic"); ok {
		t.Fatal("expected Inst to reject an unknown mnemonic name")
	}
}
