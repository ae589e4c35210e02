package chasm

// The teacher repository builds its encoding table with a small code
// generator (gen/gen.go: go build -o gen gen.go && ./gen > x86.generated.go)
// that expands a terse per-mnemonic description into the packed enc rows
// consumed by match.go. chasm's catalog in catalog.go plays the same role
// as that generated file -- a flat, append-only table keyed by mnemonic --
// but is written directly as a Go literal instead of through a generator
// pass, since nothing here needs the teacher's byte-packing trick (Mnemonic
// is already a plain enum, not an offset-into-table word).
//
// If the catalog grows past hand-maintainable size, the natural next step
// is the same one the teacher took: describe each mnemonic's shape/opcode
// rows in a compact source format and regenerate catalog.go from it with
// `go generate`. That step is not taken here because the current catalog's
// regular families (binaryArith/unaryArith/shiftArith/the Jcc template
// table) already factor out the repetition a generator would otherwise
// exist to collapse.
