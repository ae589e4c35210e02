package chasm

import (
	"errors"
	"testing"

	"github.com/nodef/chasm/feats"
)

func TestSelectVariantArityMismatch(t *testing.T) {
	_, err := selectVariant(MOV, [4]Operand{RAX, RCX, RDX}, feats.AllFeatures)
	if !errors.Is(err, ErrNoMatchingForm) {
		t.Fatalf("got %v, want ErrNoMatchingForm", err)
	}
}

func TestSelectVariantUnknownMnemonic(t *testing.T) {
	_, err := selectVariant(Mnemonic(0), [4]Operand{RAX}, feats.AllFeatures)
	if !errors.Is(err, ErrUnknownMnemonic) {
		t.Fatalf("got %v, want ErrUnknownMnemonic", err)
	}
}

func TestSelectVariantShapeMismatch(t *testing.T) {
	// MOVSS only accepts xmm operands.
	_, err := selectVariant(MOVSS, [4]Operand{RAX, RCX}, feats.AllFeatures)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestSelectVariantExplicitMemorySizeUnavailable(t *testing.T) {
	// MOV has no 256-bit memory form.
	_, err := selectVariant(MOV, [4]Operand{RAX, Mem{Base: RBX, Width: 256}}, feats.AllFeatures)
	if err == nil {
		t.Fatal("expected an error selecting an unsupported explicit memory size")
	}
}

func TestSelectVariantFeatureGating(t *testing.T) {
	_, err := selectVariant(VADDPS, [4]Operand{X0, X1, X2}, feats.SSE)
	if err == nil {
		t.Fatal("expected VADDPS to be rejected when AVX is disabled")
	}
	sel, err := selectVariant(VADDPS, [4]Operand{X0, X1, X2}, feats.AVX)
	if err != nil {
		t.Fatalf("VADDPS with AVX enabled: %v", err)
	}
	if sel.variant.Feature != feats.AVX {
		t.Fatalf("selected variant requires %v, want feats.AVX", sel.variant.Feature)
	}
}

func TestSelectVariantPrefixHintConflict(t *testing.T) {
	// NOP has no row that can honor PREFREX_W.
	_, err := selectVariant(NOP, [4]Operand{PREFREX_W}, feats.AllFeatures)
	if !errors.Is(err, ErrHintConflict) {
		t.Fatalf("got %v, want ErrHintConflict", err)
	}
}

func TestSelectVariantSizeMinimizationPrefersSmallestImmediate(t *testing.T) {
	sel, err := selectVariant(PUSH, [4]Operand{ImmAutoV(5)}, feats.AllFeatures)
	if err != nil {
		t.Fatal(err)
	}
	if sel.variant.Shapes[0] != ShapeImm8 {
		t.Fatalf("selected shape %v, want ShapeImm8 (smallest fit)", sel.variant.Shapes[0])
	}
}
