package asm2c

import (
	"testing"
)

// TestRegisterNameBounds tests that every id inside the table resolves and
// every id outside it fails
func TestRegisterNameBounds(t *testing.T) {
	for reg := Register(0); reg < RegisterCount; reg++ {
		if _, ok := RegisterName(reg); !ok {
			t.Errorf("RegisterName(%d) failed inside table bounds", reg)
		}
	}
	if _, ok := RegisterName(-1); ok {
		t.Errorf("RegisterName(-1) succeeded")
	}
	if _, ok := RegisterName(RegisterCount); ok {
		t.Errorf("RegisterName(RegisterCount) succeeded")
	}
}

// TestRegisterNameDeterministic tests that repeated lookups agree
func TestRegisterNameDeterministic(t *testing.T) {
	for reg := Register(0); reg < RegisterCount; reg++ {
		first, _ := RegisterName(reg)
		second, _ := RegisterName(reg)
		if first != second {
			t.Fatalf("RegisterName(%d) not deterministic: %q vs %q", reg, first, second)
		}
	}
}

// TestRegisterNameSpellings spot-checks canonical spellings across the groups
func TestRegisterNameSpellings(t *testing.T) {
	tests := []struct {
		reg  Register
		want string
	}{
		{RegNone, ""},
		{RegAL, "(i8)a"},
		{RegAH, "(i8)(a >> 8)"},
		{RegSPL, "(i8)stack_pointer"},
		{RegAX, "(i16)a"},
		{RegEAX, "(i32)ax"},
		{RegESP, "(i32)stack_pointer"},
		{RegRAX, "(i64)a"},
		{RegR15, "(i64)r15"},
		{RegST0, "(float)s0"},
		{RegX87Tag, "x87tag"},
		{RegMM7, "(float)mm7"},
		{RegXMM0, "(m128)x0"},
		{RegXMM31, "(m128)x31"},
		{RegYMM16, "(m256)y16"},
		{RegZMM31, "(m512)z31"},
		{RegTMM0, "(matrix_tile)t0"},
		{RegRFlags, "rflags"},
		{RegRIP, "instruction_pointer64"},
		{RegES, "extra_segment"},
		{RegSS, "stack_segment"},
		{RegDS, "data_segment"},
		{RegGS, "g_segment"},
		{RegGDTR, "table_gdtr"},
		{RegTR7, "test_tr7"},
		{RegCR8, "control_cr8"},
		{RegDR15, "debug_dr15"},
		{RegK7, "mask_k7"},
		{RegBNDStatus, "bound_bndstatus"},
		{RegUIF, "uif"},
	}
	for _, test := range tests {
		got, ok := RegisterName(test.reg)
		if !ok {
			t.Fatalf("RegisterName(%d) failed", test.reg)
		}
		if got != test.want {
			t.Errorf("RegisterName(%d): expected %q, got %q", test.reg, test.want, got)
		}
	}
}

// TestWriteRegister tests rendering through the buffer writer, including the
// zero-length sentinel render
func TestWriteRegister(t *testing.T) {
	var buf [32]byte
	w, _ := NewWriter(buf[:])
	if !w.WriteRegister(RegNone) {
		t.Errorf("RegNone did not render as a valid empty string")
	}
	if !w.WriteRegister(RegRBX) {
		t.Fatalf("WriteRegister(RegRBX) failed")
	}
	if got := w.String(); got != "(i64)b" {
		t.Errorf("expected %q, got %q", "(i64)b", got)
	}
	if w.WriteRegister(RegisterCount) {
		t.Errorf("out-of-range register rendered")
	}
	if w.WriteRegister(-1) {
		t.Errorf("negative register rendered")
	}
}
