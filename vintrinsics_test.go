package asm2c

import (
	"testing"
)

// TestVectorIntrinsicCall tests the `dst = name(args)` shape
func TestVectorIntrinsicCall(t *testing.T) {
	got := translate(t, MnemonicPand, []Operand{regOperand(RegXMM0), regOperand(RegXMM1)}, 0)
	if got != "(m128)x0 = _mm_and_si((m128)x1);" {
		t.Errorf("got %q", got)
	}
}

// TestVectorIntrinsicThreeOperands tests that VEX three-operand forms list
// both sources
func TestVectorIntrinsicThreeOperands(t *testing.T) {
	operands := []Operand{regOperand(RegYMM0), regOperand(RegYMM1), regOperand(RegYMM2)}
	got := translate(t, MnemonicVpaddd, operands, 0)
	if got != "(m256)y0 = _mm_add_epi32((m256)y1, (m256)y2);" {
		t.Errorf("got %q", got)
	}
}

// TestVectorIntrinsicNames spot-checks the name table, including the
// deliberately odd spellings that must not be normalized
func TestVectorIntrinsicNames(t *testing.T) {
	tests := []struct {
		mnemonic Mnemonic
		want     string
	}{
		{MnemonicVpand, "_mm_and_si"},
		{MnemonicVpandq, "_mm_and_epi64"},
		{MnemonicPcmpeqb, "_mm_cmpeq_epi8"},
		{MnemonicVpcmpgtq, "_mm_cmpgt_epi64"},
		{MnemonicPackuswb, "_mm_packus_epu16_to_epi8"},
		{MnemonicPaddq, "_mm_add_epi64"},
		{MnemonicPmaddwd, "_mm_pmadd_epi16"},
		{MnemonicPmulhw, "_mm_mulhi_epi16"},
		{MnemonicPmullw, "_mm_mullo_epi16"},
		{MnemonicVporq, "_mm_or_epi64"},
		{MnemonicAddsubps, "_mm_addsub_ps"},
		{MnemonicPalignr, "_mm_alignr_epi8"},
		{MnemonicPavgw, "_mm_avg_epu16"},
		{MnemonicVpblendd, "_mm_blend_epi32"},
		{MnemonicBlendvpd, "_mm_blendv_pd"},
		{MnemonicVbroadcastf32x4, "_mm_broadcast_f32x4"},
		{MnemonicVbroadcasti128, "_mm_broadcastsi128_si256"},
		{MnemonicVpbroadcastmb2q, "_mm_broadcastmb_epi64"},
		{MnemonicVpbroadcastw, "_mm_broadcast_epi16"},

		// PABSB and PABSW share the epi16 name, and the saturating adds
		// split on the VEX prefix rather than the element width.
		{MnemonicPabsb, "_mm_abs_epi16"},
		{MnemonicPabsw, "_mm_abs_epi16"},
		{MnemonicPabsd, "_mm_abs_epi32"},
		{MnemonicPaddsb, "_mm_adds_epi8"},
		{MnemonicPaddsw, "_mm_adds_epi8"},
		{MnemonicVpaddsb, "_mm_adds_epi16"},
		{MnemonicVpaddsw, "_mm_adds_epi16"},
	}
	for _, test := range tests {
		name, found := vectorIntrinsics[test.mnemonic]
		if !found {
			t.Errorf("%s: missing from the intrinsic table", test.mnemonic)
			continue
		}
		if name != test.want {
			t.Errorf("%s: expected %q, got %q", test.mnemonic, test.want, name)
		}
	}
}

// TestVectorIntrinsicTableSize pins the table against accidental edits
func TestVectorIntrinsicTableSize(t *testing.T) {
	if len(vectorIntrinsics) != 104 {
		t.Errorf("expected 104 entries, got %d", len(vectorIntrinsics))
	}
	if len(alignedMoveSuffixes) != 5 {
		t.Errorf("expected 5 aligned move entries, got %d", len(alignedMoveSuffixes))
	}
	if len(unalignedMoveSuffixes) != 10 {
		t.Errorf("expected 10 unaligned move entries, got %d", len(unalignedMoveSuffixes))
	}
	if len(conditionalJumps) != 18 {
		t.Errorf("expected 18 conditional jump entries, got %d", len(conditionalJumps))
	}
}
