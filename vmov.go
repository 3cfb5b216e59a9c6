// Completion: 100% - Vector move families complete
package asm2c

// Vector moves render in one of two shapes. With register operands only they
// are plain assignments (`dst = src`). As soon as a memory location is
// involved they become explicit intrinsic-style calls,
// `_mm_{aligned,unaligned}_{load,store}<suffix>(op0, op1, ...)`, where the
// suffix encodes the element width/type of the exact mnemonic.

// alignedMoveSuffixes holds the aligned move family. Map membership defines
// the family; the value is the element-type suffix.
var alignedMoveSuffixes = map[Mnemonic]string{
	MnemonicMovaps:    "_ps",
	MnemonicMovapd:    "_pd",
	MnemonicVmovdqa:   "_si",
	MnemonicVmovdqa32: "_epi32",
	MnemonicVmovdqa64: "_epi64",
}

// unalignedMoveSuffixes holds the unaligned move family. VMOVD carries no
// suffix and renders as the bare load/store name.
var unalignedMoveSuffixes = map[Mnemonic]string{
	MnemonicMovups:    "_ps",
	MnemonicMovupd:    "_pd",
	MnemonicMovq:      "_si64",
	MnemonicLddqu:     "_cross_cache_line_si",
	MnemonicVmovd:     "",
	MnemonicVmovdqu:   "_si",
	MnemonicVmovdqu16: "_epi16",
	MnemonicVmovdqu32: "_epi32",
	MnemonicVmovdqu64: "_epi64",
	MnemonicVmovdqu8:  "_epi8",
}

// writeVectorMove renders one vector move. A destination memory operand
// selects the store call form, a source memory operand the load call form,
// anything else the plain assignment form. The call form lists every operand
// starting with the destination.
func writeVectorMove(w *Writer, inst *Instruction, operands []Operand, virtualAddress uint64, suffix string, aligned bool) bool {
	registerToRegister := false

	if operands[0].Type == OperandMemory {
		name := "_mm_unaligned_store"
		if aligned {
			name = "_mm_aligned_store"
		}
		if !w.WriteRaw(name) {
			return false
		}
	} else if inst.OperandCount > 1 && operands[1].Type == OperandMemory {
		name := "_mm_unaligned_load"
		if aligned {
			name = "_mm_aligned_load"
		}
		if !w.WriteRaw(name) {
			return false
		}
	} else {
		registerToRegister = true
	}

	if !registerToRegister {
		if !w.WriteRaw(suffix) || !w.WriteRaw("(") {
			return false
		}
	}

	if !w.WriteOperand(&operands[0], virtualAddress) {
		return false
	}

	separator := ", "
	if registerToRegister {
		separator = " = "
	}
	if !w.WriteRaw(separator) {
		return false
	}

	if !writeArgumentList(w, inst, operands, virtualAddress) {
		return false
	}

	if !registerToRegister {
		return w.WriteRaw(")")
	}
	return true
}

// writeArgumentList writes operands 1..OperandCount-1, comma-separated.
func writeArgumentList(w *Writer, inst *Instruction, operands []Operand, virtualAddress uint64) bool {
	for i := 1; i < inst.OperandCount; i++ {
		if i > 1 && !w.WriteRaw(", ") {
			return false
		}
		if !w.WriteOperand(&operands[i], virtualAddress) {
			return false
		}
	}
	return true
}
