// Completion: 100% - Operand model and formatter complete
package asm2c

// OperandType tags the variant held by an Operand.
type OperandType int

const (
	OperandUnused OperandType = iota
	OperandRegister
	OperandMemory
	OperandImmediate
)

// MemoryOperandType classifies a memory operand. Direct operands denote a
// dereferenced load/store location, indirect pairs a two-part bounds-style
// reference, and address-generation operands an address that is never
// dereferenced (LEA and friends).
type MemoryOperandType int

const (
	MemoryInvalid MemoryOperandType = iota
	MemoryDirect
	MemoryIndirectPair
	MemoryAddressGeneration
)

// MemoryOperand describes one decoded memory addressing form.
type MemoryOperand struct {
	Type            MemoryOperandType
	Segment         Register
	Base            Register // RegNone when absent
	Index           Register // RegNone when absent
	Scale           uint8
	HasDisplacement bool
	Displacement    int64
}

// ImmediateOperand holds a 64-bit immediate. When Relative is set, Value is
// a displacement from the instruction's virtual address (branch targets).
type ImmediateOperand struct {
	Value    uint64
	Signed   bool
	Relative bool
}

// Operand is a tagged variant over register, memory and immediate operands.
// Only the field selected by Type is meaningful.
type Operand struct {
	Type OperandType
	Reg  Register
	Mem  MemoryOperand
	Imm  ImmediateOperand
}

// Instruction is the decoded record the translator consumes. It is read-only
// to this package; OperandCount must not exceed the number of operands the
// caller actually provides.
type Instruction struct {
	Mnemonic     Mnemonic
	OperandCount int
}

// WriteOperand renders one decoded operand. virtualAddress is the address of
// the instruction the operand belongs to; relative immediates are rendered
// as the absolute target virtualAddress + value. Unknown operand variants
// and unknown addressing-mode tags fail.
func (w *Writer) WriteOperand(op *Operand, virtualAddress uint64) bool {
	switch op.Type {
	case OperandRegister:
		return w.WriteRegister(op.Reg)
	case OperandMemory:
		return w.writeMemoryOperand(&op.Mem)
	case OperandImmediate:
		if op.Imm.Relative {
			return w.WriteHex(virtualAddress + op.Imm.Value)
		}
		if op.Imm.Signed {
			return w.WriteInt(int64(op.Imm.Value))
		}
		return w.WriteUint(op.Imm.Value)
	}
	return false
}

// writeMemoryOperand renders `*(segment: base ...)` for dereferencing forms
// and `(segment: base ...)` for address generation. Direct operands render
// either the displacement clause or the index/scale clause, never both;
// indirect pairs and address generation render only a displacement even when
// the decoded operand carries an index.
func (w *Writer) writeMemoryOperand(mem *MemoryOperand) bool {
	open := "*("
	if mem.Type == MemoryAddressGeneration {
		open = "("
	}
	if !w.WriteRaw(open) {
		return false
	}

	switch mem.Type {
	case MemoryDirect:
		if !w.WriteRegister(mem.Segment) || !w.WriteRaw(": ") || !w.WriteRegister(mem.Base) {
			return false
		}
		if mem.HasDisplacement {
			if !w.WriteRaw(" + ") || !w.WriteInt(mem.Displacement) {
				return false
			}
		} else if mem.Index != RegNone {
			if !w.WriteRaw(" + ") {
				return false
			}
			if mem.Scale != 1 && !w.WriteRaw("(") {
				return false
			}
			if !w.WriteRegister(mem.Index) {
				return false
			}
			if mem.Scale != 1 {
				if !w.WriteRaw(" * ") || !w.WriteUint(uint64(mem.Scale)) || !w.WriteRaw(")") {
					return false
				}
			}
		}
		return w.WriteRaw(")")

	case MemoryIndirectPair, MemoryAddressGeneration:
		if !w.WriteRegister(mem.Segment) || !w.WriteRaw(": ") || !w.WriteRegister(mem.Base) {
			return false
		}
		if mem.HasDisplacement {
			if !w.WriteRaw(" + ") || !w.WriteInt(mem.Displacement) {
				return false
			}
		}
		return w.WriteRaw(")")
	}

	return false
}
