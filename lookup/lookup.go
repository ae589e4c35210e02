// Package lookup resolves mnemonic text to a chasm.Mnemonic, split into its
// own package the way the teacher keeps its mnemonic-name lookup
// (x64lookup) separate from the encoder itself -- useful for any caller
// building Instruction values from text rather than Go identifiers.
package lookup

import "github.com/nodef/chasm"

// Inst looks up the Mnemonic for a mnemonic's text, case-insensitively.
func Inst(mnemonic string) (chasm.Mnemonic, bool) {
	return chasm.Lookup(mnemonic)
}
