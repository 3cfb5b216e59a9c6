package asm2c

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// decodeAndTranslate runs the full pipeline: decode the machine code bytes in
// 64-bit mode, adapt, translate.
func decodeAndTranslate(t *testing.T, code []byte, virtualAddress uint64) string {
	t.Helper()
	decoded, err := x86asm.Decode(code, 64)
	if err != nil {
		t.Fatalf("Decode(% X) error: %v", code, err)
	}
	if decoded.Len != len(code) {
		t.Fatalf("Decode(% X) consumed %d of %d bytes", code, decoded.Len, len(code))
	}
	inst, operands, ok := InstructionFromX86Asm(decoded)
	if !ok {
		t.Fatalf("InstructionFromX86Asm(%v) failed", decoded)
	}
	var buf [256]byte
	ok, hasTranslation := TranslateInstruction(&inst, operands, virtualAddress, buf[:])
	if !ok || !hasTranslation {
		t.Fatalf("TranslateInstruction(%v) failed: ok=%v hasTranslation=%v", decoded, ok, hasTranslation)
	}
	return BufferString(buf[:])
}

// TestDecodePipeline feeds real encodings through the decoder, the adapter
// and the translator, checking the final pseudo-source line
func TestDecodePipeline(t *testing.T) {
	tests := []struct {
		name           string
		code           []byte
		virtualAddress uint64
		want           string
	}{
		{
			"mov r32, r32",
			[]byte{0x89, 0xD8}, // mov eax, ebx
			0x401000,
			"(i32)ax = (i32)bx;",
		},
		{
			"add r64, r64",
			[]byte{0x48, 0x01, 0xD8}, // add rax, rbx
			0x401000,
			"(i64)a += (i64)b;",
		},
		{
			"cmp r64, r64",
			[]byte{0x48, 0x39, 0xD8}, // cmp rax, rbx
			0x401000,
			"compare((i64)a, (i64)b) // set carry_flag, overflow_flag, signed_flag, zero_flag, aux_carry_flag and parity_flag",
		},
		{
			"je forward",
			[]byte{0x74, 0x0E}, // je +0x0e
			0x400000,
			"if (zero_flag) goto 0x400010; // if zero / equal",
		},
		{
			"jne backward to self",
			[]byte{0x75, 0xFE}, // jne -2
			0x400000,
			"if (!zero_flag) goto 0x400000; // if not zero / not equal",
		},
		{
			"jmp forward",
			[]byte{0xEB, 0x10}, // jmp +0x10
			0x400000,
			"goto 0x400012;",
		},
		{
			"call next instruction",
			[]byte{0xE8, 0x00, 0x00, 0x00, 0x00}, // call +0
			0x401000,
			"(0x401005)();",
		},
		{
			"lea from the stack frame",
			[]byte{0x48, 0x8D, 0x45, 0x08}, // lea rax, [rbp+8]
			0x401000,
			"(i64)a = &(stack_segment: (i64)bp + 8);",
		},
		{
			"mov with scaled index",
			[]byte{0x48, 0x8B, 0x04, 0x8B}, // mov rax, [rbx+rcx*4]
			0x401000,
			"(i64)a = *(data_segment: (i64)b + ((i64)c * 4));",
		},
		{
			"pand xmm, xmm",
			[]byte{0x66, 0x0F, 0xDB, 0xC1}, // pand xmm0, xmm1
			0x401000,
			"(m128)x0 = _mm_and_si((m128)x1);",
		},
		{
			"movaps store",
			[]byte{0x0F, 0x29, 0x07}, // movaps [rdi], xmm0
			0x401000,
			"_mm_aligned_store_ps(*(data_segment: (i64)di), (m128)x0);",
		},
	}
	for _, test := range tests {
		got := decodeAndTranslate(t, test.code, test.virtualAddress)
		if got != test.want {
			t.Errorf("%s: expected %q, got %q", test.name, test.want, got)
		}
	}
}

// TestAdapterRejectsUnmapped tests that opcodes outside the mnemonic set are
// reported as unconvertible rather than mistranslated
func TestAdapterRejectsUnmapped(t *testing.T) {
	decoded, err := x86asm.Decode([]byte{0x90}, 64) // nop
	if err != nil {
		t.Fatalf("Decode(nop) error: %v", err)
	}
	if _, _, ok := InstructionFromX86Asm(decoded); ok {
		t.Errorf("NOP converted despite having no translation")
	}
}

// TestAdapterRejectsOperandless tests that instructions with no operands are
// rejected; the translator requires at least one
func TestAdapterRejectsOperandless(t *testing.T) {
	decoded, err := x86asm.Decode([]byte{0x0F, 0x77}, 64) // emms
	if err != nil {
		t.Fatalf("Decode(emms) error: %v", err)
	}
	if _, _, ok := InstructionFromX86Asm(decoded); ok {
		t.Errorf("EMMS converted despite having no operands")
	}
}

// TestAdapterRelativeFoldsLength tests that branch displacements are rebased
// from instruction end to instruction start
func TestAdapterRelativeFoldsLength(t *testing.T) {
	decoded, err := x86asm.Decode([]byte{0xEB, 0x10}, 64)
	if err != nil {
		t.Fatalf("Decode(jmp) error: %v", err)
	}
	_, operands, ok := InstructionFromX86Asm(decoded)
	if !ok {
		t.Fatalf("jmp not converted")
	}
	imm := operands[0].Imm
	if !imm.Relative {
		t.Errorf("branch target not marked relative")
	}
	if imm.Value != 0x12 {
		t.Errorf("expected folded displacement 0x12, got %#x", imm.Value)
	}
}
