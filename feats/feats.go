// Package feats enumerates the CPU feature sets that gate instruction
// variants in the encoding table. A Variant's required Feature must be a
// subset of the Selector's enabled set, or the variant is rejected during
// selection regardless of how well its operand shapes otherwise fit.
package feats

// Feature is a bitmask of CPU feature flags.
type Feature uint32

// CPU feature flags. X64_IMPLICIT marks encodings available on every
// x86-64 CPU, requiring no feature check.
const (
	X64_IMPLICIT Feature = 0
	FPU          Feature = 1 << iota
	MMX
	SSE
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	AVX
	AVX2
	FMA
	BMI1
	BMI2
	LZCNT
	POPCNT
	ADX
	CMOV
)

// AllFeatures enables every known feature; it is the default for a new Assembler.
const AllFeatures Feature = 0xffffffff

// Name returns the canonical name for a single feature flag.
func Name(f Feature) string { return names[f] }

var names = map[Feature]string{
	X64_IMPLICIT: "X64_IMPLICIT",
	FPU:          "FPU",
	MMX:          "MMX",
	SSE:          "SSE",
	SSE2:         "SSE2",
	SSE3:         "SSE3",
	SSSE3:        "SSSE3",
	SSE41:        "SSE41",
	SSE42:        "SSE42",
	AVX:          "AVX",
	AVX2:         "AVX2",
	FMA:          "FMA",
	BMI1:         "BMI1",
	BMI2:         "BMI2",
	LZCNT:        "LZCNT",
	POPCNT:       "POPCNT",
	ADX:          "ADX",
	CMOV:         "CMOV",
}
