package asm2c

import (
	"testing"
)

func renderOperand(t *testing.T, op Operand, virtualAddress uint64) string {
	t.Helper()
	var buf [128]byte
	w, _ := NewWriter(buf[:])
	if !w.WriteOperand(&op, virtualAddress) {
		t.Fatalf("WriteOperand failed for %+v", op)
	}
	return w.String()
}

// TestWriteOperandRegister tests the register variant
func TestWriteOperandRegister(t *testing.T) {
	op := Operand{Type: OperandRegister, Reg: RegECX}
	if got := renderOperand(t, op, 0); got != "(i32)cx" {
		t.Errorf("expected %q, got %q", "(i32)cx", got)
	}
}

// TestWriteOperandMemory tests the direct addressing forms
func TestWriteOperandMemory(t *testing.T) {
	tests := []struct {
		name string
		mem  MemoryOperand
		want string
	}{
		{
			"base only",
			MemoryOperand{Type: MemoryDirect, Segment: RegDS, Base: RegRAX, Scale: 1},
			"*(data_segment: (i64)a)",
		},
		{
			"positive displacement",
			MemoryOperand{Type: MemoryDirect, Segment: RegSS, Base: RegRBP, Scale: 1, HasDisplacement: true, Displacement: 16},
			"*(stack_segment: (i64)bp + 16)",
		},
		{
			"negative displacement",
			MemoryOperand{Type: MemoryDirect, Segment: RegSS, Base: RegRBP, Scale: 1, HasDisplacement: true, Displacement: -8},
			"*(stack_segment: (i64)bp + -8)",
		},
		{
			"index with scale 1",
			MemoryOperand{Type: MemoryDirect, Segment: RegDS, Base: RegRAX, Index: RegRCX, Scale: 1},
			"*(data_segment: (i64)a + (i64)c)",
		},
		{
			"index with scale 4",
			MemoryOperand{Type: MemoryDirect, Segment: RegDS, Base: RegRAX, Index: RegRCX, Scale: 4},
			"*(data_segment: (i64)a + ((i64)c * 4))",
		},
		{
			// The displacement clause and the index clause are mutually
			// exclusive: a displacement hides the index.
			"displacement beats index",
			MemoryOperand{Type: MemoryDirect, Segment: RegDS, Base: RegRAX, Index: RegRCX, Scale: 4, HasDisplacement: true, Displacement: 32},
			"*(data_segment: (i64)a + 32)",
		},
		{
			"no base register",
			MemoryOperand{Type: MemoryDirect, Segment: RegDS, Base: RegNone, Scale: 1, HasDisplacement: true, Displacement: 4096},
			"*(data_segment:  + 4096)",
		},
		{
			"address generation",
			MemoryOperand{Type: MemoryAddressGeneration, Segment: RegSS, Base: RegRBP, Scale: 1, HasDisplacement: true, Displacement: 8},
			"(stack_segment: (i64)bp + 8)",
		},
		{
			// Address generation never renders an index term, with or
			// without a displacement.
			"address generation drops index",
			MemoryOperand{Type: MemoryAddressGeneration, Segment: RegDS, Base: RegRAX, Index: RegRCX, Scale: 4},
			"(data_segment: (i64)a)",
		},
		{
			"indirect pair",
			MemoryOperand{Type: MemoryIndirectPair, Segment: RegDS, Base: RegRAX, Index: RegRCX, Scale: 8, HasDisplacement: true, Displacement: 8},
			"*(data_segment: (i64)a + 8)",
		},
	}
	for _, test := range tests {
		op := Operand{Type: OperandMemory, Mem: test.mem}
		if got := renderOperand(t, op, 0); got != test.want {
			t.Errorf("%s: expected %q, got %q", test.name, test.want, got)
		}
	}
}

// TestWriteOperandMemoryInvalid tests that an unknown addressing mode fails
func TestWriteOperandMemoryInvalid(t *testing.T) {
	var buf [64]byte
	w, _ := NewWriter(buf[:])
	op := Operand{Type: OperandMemory, Mem: MemoryOperand{Type: MemoryInvalid, Segment: RegDS}}
	if w.WriteOperand(&op, 0) {
		t.Errorf("invalid memory operand type rendered")
	}
}

// TestWriteOperandImmediate tests the immediate variant in all three flavors
func TestWriteOperandImmediate(t *testing.T) {
	tests := []struct {
		name string
		imm  ImmediateOperand
		va   uint64
		want string
	}{
		{"unsigned", ImmediateOperand{Value: 42}, 0, "42"},
		{"signed positive", ImmediateOperand{Value: 42, Signed: true}, 0, "42"},
		// -7 as the two's-complement bit pattern a decoder hands over.
		{"signed negative", ImmediateOperand{Value: 0xFFFFFFFFFFFFFFF9, Signed: true}, 0, "-7"},
		{"relative", ImmediateOperand{Value: 0x10, Relative: true}, 0x400000, "0x400010"},
		{"relative ignores signedness", ImmediateOperand{Value: 0x20, Signed: true, Relative: true}, 0x140000000, "0x140000020"},
	}
	for _, test := range tests {
		op := Operand{Type: OperandImmediate, Imm: test.imm}
		if got := renderOperand(t, op, test.va); got != test.want {
			t.Errorf("%s: expected %q, got %q", test.name, test.want, got)
		}
	}
}

// TestWriteOperandUnknown tests that an unknown operand variant fails
func TestWriteOperandUnknown(t *testing.T) {
	var buf [64]byte
	w, _ := NewWriter(buf[:])
	op := Operand{Type: OperandUnused}
	if w.WriteOperand(&op, 0) {
		t.Errorf("unused operand variant rendered")
	}
	op = Operand{Type: OperandType(99)}
	if w.WriteOperand(&op, 0) {
		t.Errorf("unknown operand variant rendered")
	}
}
