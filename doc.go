// Package chasm is a runtime x86-64 instruction encoder: flat Instruction
// records in, a contiguous buffer of legal machine code out, with
// intra-sequence relative references resolved in a second pass.
//
// usage example:
//
//	package example
//
//	import (
//		"github.com/nodef/chasm"
//		"github.com/nodef/chasm/execmem"
//	)
//
//	func CompileSum() (func(a, b int64) int64, error) {
//		region, err := execmem.Acquire(64)
//		if err != nil {
//			return nil, err
//		}
//
//		code, err := chasm.Assemble([]chasm.Instruction{
//			{chasm.MOV, [4]chasm.Operand{chasm.RAX, chasm.Mem{Base: chasm.RSP, Disp: 8}}},
//			{chasm.MOV, [4]chasm.Operand{chasm.RBX, chasm.Mem{Base: chasm.RSP, Disp: 16}}},
//			{chasm.ADD, [4]chasm.Operand{chasm.RAX, chasm.RBX}},
//			{chasm.RET, [4]chasm.Operand{}},
//		})
//		if err != nil {
//			_ = region.Release()
//			return nil, err
//		}
//
//		copy(region.Bytes(), code)
//		if err := region.MakeExecutable(); err != nil {
//			return nil, err
//		}
//
//		// Turning region.Bytes() into a callable Go func value requires the
//		// same unsafe function-value trick the teacher's SetFunctionCode used;
//		// chasm only owns encoding and memory management, not that part.
//		_ = region
//		return nil, nil
//	}
package chasm
