// Completion: 100% - Mnemonic translator complete
package asm2c

// TranslateInstruction renders one decoded instruction as a single line of
// C-like pseudo-source in the caller-owned buf, for example `(i64)a = (i64)b;`
// or `if (carry_flag) goto 0x401020; // if below`.
//
// len(buf) includes the terminating NUL byte, so a buffer of length n holds
// at most n-1 bytes of text. The call is a pure, single-pass render: it
// retains nothing and may be issued concurrently on distinct buffers.
//
// Results:
//   - invalid arguments (nil instruction, no operands, operand count below
//     one or larger than the operand slice, empty buffer): ok=false,
//     hasTranslation=false, nothing written;
//   - unsupported mnemonic: ok=false, hasTranslation=false, buf holds the
//     empty string;
//   - overflow mid-render or an unsupported operand/addressing form:
//     ok=false, hasTranslation=true, buf holds partial output that the
//     caller must discard;
//   - success: ok=true, hasTranslation=true, buf holds the NUL-terminated
//     line with no trailing newline.
func TranslateInstruction(inst *Instruction, operands []Operand, virtualAddress uint64, buf []byte) (ok, hasTranslation bool) {
	if inst == nil || len(operands) == 0 || inst.OperandCount < 1 || inst.OperandCount > len(operands) {
		return false, false
	}
	w, valid := NewWriter(buf)
	if !valid {
		return false, false
	}

	switch inst.Mnemonic {
	case MnemonicMov:
		if !writeAssignment(&w, operands, virtualAddress, " = ") {
			return false, true
		}

	case MnemonicLea:
		if !writeAssignment(&w, operands, virtualAddress, " = &") {
			return false, true
		}

	case MnemonicTest, MnemonicCmp:
		// compare() lines end in the flags comment, never a semicolon.
		return writeCompare(&w, inst.Mnemonic, operands, virtualAddress), true

	case MnemonicCall:
		// Callee name resolution is out of scope, so the target renders raw.
		if !w.WriteRaw("(") || !w.WriteOperand(&operands[0], virtualAddress) || !w.WriteRaw(")()") {
			return false, true
		}

	case MnemonicJmp:
		if !w.WriteRaw("goto ") || !w.WriteOperand(&operands[0], virtualAddress) {
			return false, true
		}

	case MnemonicSub:
		if !writeAssignment(&w, operands, virtualAddress, " -= ") {
			return false, true
		}

	case MnemonicAdd:
		if !writeAssignment(&w, operands, virtualAddress, " += ") {
			return false, true
		}

	case MnemonicAnd:
		if !writeAssignment(&w, operands, virtualAddress, " &= ") {
			return false, true
		}

	case MnemonicOr:
		if !writeAssignment(&w, operands, virtualAddress, " |= ") {
			return false, true
		}

	default:
		if jump, found := conditionalJumps[inst.Mnemonic]; found {
			jumpOK, terminated := writeConditionalJump(&w, &jump, &operands[0], virtualAddress)
			if !jumpOK {
				return false, true
			}
			if terminated {
				return true, true
			}
		} else if suffix, found := alignedMoveSuffixes[inst.Mnemonic]; found {
			if !writeVectorMove(&w, inst, operands, virtualAddress, suffix, true) {
				return false, true
			}
		} else if suffix, found := unalignedMoveSuffixes[inst.Mnemonic]; found {
			if !writeVectorMove(&w, inst, operands, virtualAddress, suffix, false) {
				return false, true
			}
		} else if name, found := vectorIntrinsics[inst.Mnemonic]; found {
			if !writeVectorIntrinsic(&w, inst, operands, virtualAddress, name) {
				return false, true
			}
		} else {
			// No literal translation exists for this mnemonic. The buffer
			// still holds the initial empty string.
			return false, false
		}
	}

	if !w.WriteRaw(";") {
		return false, true
	}
	return true, true
}

// writeAssignment renders `dst <op> src` for the two-operand templates.
func writeAssignment(w *Writer, operands []Operand, virtualAddress uint64, operator string) bool {
	if len(operands) < 2 {
		return false
	}
	if !w.WriteOperand(&operands[0], virtualAddress) || !w.WriteRaw(operator) {
		return false
	}
	return w.WriteOperand(&operands[1], virtualAddress)
}

// writeCompare renders `compare(a, b) // set <flags>`. TEST and CMP differ
// only in the set of flags named by the comment.
func writeCompare(w *Writer, mnemonic Mnemonic, operands []Operand, virtualAddress uint64) bool {
	if len(operands) < 2 {
		return false
	}
	if !w.WriteRaw("compare(") || !w.WriteOperand(&operands[0], virtualAddress) {
		return false
	}
	if !w.WriteRaw(", ") || !w.WriteOperand(&operands[1], virtualAddress) {
		return false
	}
	switch mnemonic {
	case MnemonicTest:
		return w.WriteRaw(") // set carry_flag, parity_flag, zero_flag")
	case MnemonicCmp:
		return w.WriteRaw(") // set carry_flag, overflow_flag, signed_flag, zero_flag, aux_carry_flag and parity_flag")
	}
	return false
}
