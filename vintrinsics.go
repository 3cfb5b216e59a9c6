// Completion: 100% - Vector intrinsic name table complete
package asm2c

// vectorIntrinsics maps the closed vector arithmetic/logical/compare/blend/
// broadcast family to the intrinsic-style name rendered as
// `dst = <name>(op1, ...)`. Map membership defines the family.
//
// A few of the names are odd on purpose and must stay stable for
// downstream diffing: PABSB and PABSW both render as _mm_abs_epi16, and the
// saturating adds split by prefix (PADDSB/PADDSW as _mm_adds_epi8,
// VPADDSB/VPADDSW as _mm_adds_epi16) rather than by element width.
var vectorIntrinsics = map[Mnemonic]string{
	MnemonicPand:    "_mm_and_si",
	MnemonicVpand:   "_mm_and_si",
	MnemonicVpandq:  "_mm_and_epi64",
	MnemonicVpandd:  "_mm_and_epi32",
	MnemonicPandn:   "_mm_andnot_si",
	MnemonicVpandn:  "_mm_andnot_si",
	MnemonicVpandnq: "_mm_andnot_epi64",
	MnemonicVpandnd: "_mm_andnot_epi32",

	MnemonicPcmpeqb:  "_mm_cmpeq_epi8",
	MnemonicVpcmpeqb: "_mm_cmpeq_epi8",
	MnemonicPcmpeqw:  "_mm_cmpeq_epi16",
	MnemonicVpcmpeqw: "_mm_cmpeq_epi16",
	MnemonicPcmpeqd:  "_mm_cmpeq_epi32",
	MnemonicVpcmpeqd: "_mm_cmpeq_epi32",
	MnemonicPcmpeqq:  "_mm_cmpeq_epi64",
	MnemonicVpcmpeqq: "_mm_cmpeq_epi64",
	MnemonicPcmpgtb:  "_mm_cmpgt_epi8",
	MnemonicVpcmpgtb: "_mm_cmpgt_epi8",
	MnemonicPcmpgtw:  "_mm_cmpgt_epi16",
	MnemonicVpcmpgtw: "_mm_cmpgt_epi16",
	MnemonicPcmpgtd:  "_mm_cmpgt_epi32",
	MnemonicVpcmpgtd: "_mm_cmpgt_epi32",
	MnemonicPcmpgtq:  "_mm_cmpgt_epi64",
	MnemonicVpcmpgtq: "_mm_cmpgt_epi64",

	MnemonicPackuswb:  "_mm_packus_epu16_to_epi8",
	MnemonicVpackuswb: "_mm_packus_epu16_to_epi8",
	MnemonicPackusdw:  "_mm_packus_epu32_to_epi16",
	MnemonicVpackusdw: "_mm_packus_epu32_to_epi16",
	MnemonicPacksswb:  "_mm_packs_epu16_to_epi8",
	MnemonicVpacksswb: "_mm_packs_epu16_to_epi8",
	MnemonicPackssdw:  "_mm_packs_epu32_to_epi16",
	MnemonicVpackssdw: "_mm_packs_epu32_to_epi16",

	MnemonicPaddb:   "_mm_add_epi8",
	MnemonicVpaddb:  "_mm_add_epi8",
	MnemonicPaddw:   "_mm_add_epi16",
	MnemonicVpaddw:  "_mm_add_epi16",
	MnemonicPaddd:   "_mm_add_epi32",
	MnemonicVpaddd:  "_mm_add_epi32",
	MnemonicPaddq:   "_mm_add_epi64",
	MnemonicVpaddq:  "_mm_add_epi64",
	MnemonicPaddsb:  "_mm_adds_epi8",
	MnemonicPaddsw:  "_mm_adds_epi8",
	MnemonicVpaddsb: "_mm_adds_epi16",
	MnemonicVpaddsw: "_mm_adds_epi16",

	MnemonicEmms: "_mm_empty",

	MnemonicPmaddwd:  "_mm_pmadd_epi16",
	MnemonicVpmaddwd: "_mm_pmadd_epi16",
	MnemonicPmulhw:   "_mm_mulhi_epi16",
	MnemonicVpmulhw:  "_mm_mulhi_epi16",
	MnemonicPmullw:   "_mm_mullo_epi16",
	MnemonicVpmullw:  "_mm_mullo_epi16",

	MnemonicPor:   "_mm_or_si",
	MnemonicVpor:  "_mm_or_si",
	MnemonicVpord: "_mm_or_epi32",
	MnemonicVporq: "_mm_or_epi64",

	MnemonicPabsb:  "_mm_abs_epi16",
	MnemonicVpabsb: "_mm_abs_epi16",
	MnemonicPabsw:  "_mm_abs_epi16",
	MnemonicVpabsw: "_mm_abs_epi16",
	MnemonicPabsd:  "_mm_abs_epi32",
	MnemonicVpabsd: "_mm_abs_epi32",

	MnemonicAddsubps:  "_mm_addsub_ps",
	MnemonicVaddsubps: "_mm_addsub_ps",
	MnemonicAddsubpd:  "_mm_addsub_pd",
	MnemonicVaddsubpd: "_mm_addsub_pd",

	MnemonicPalignr:  "_mm_alignr_epi8",
	MnemonicVpalignr: "_mm_alignr_epi8",

	MnemonicPavgb:  "_mm_avg_epu8",
	MnemonicVpavgb: "_mm_avg_epu8",
	MnemonicPavgw:  "_mm_avg_epu16",
	MnemonicVpavgw: "_mm_avg_epu16",

	MnemonicPblendw:   "_mm_blend_epi16",
	MnemonicVpblendw:  "_mm_blend_epi16",
	MnemonicVpblendd:  "_mm_blend_epi32",
	MnemonicBlendps:   "_mm_blend_ps",
	MnemonicVblendps:  "_mm_blend_ps",
	MnemonicBlendpd:   "_mm_blend_pd",
	MnemonicVblendpd:  "_mm_blend_pd",
	MnemonicPblendvb:  "_mm_blendv_epi8",
	MnemonicVpblendvb: "_mm_blendv_epi8",
	MnemonicBlendvps:  "_mm_blendv_ps",
	MnemonicVblendvps: "_mm_blendv_ps",
	MnemonicBlendvpd:  "_mm_blendv_pd",
	MnemonicVblendvpd: "_mm_blendv_pd",

	MnemonicVbroadcastf128:  "_mm_broadcast_f128",
	MnemonicVbroadcastf32x2: "_mm_broadcast_f32x2",
	MnemonicVbroadcastf32x4: "_mm_broadcast_f32x4",
	MnemonicVbroadcastf32x8: "_mm_broadcast_f32x8",
	MnemonicVbroadcastf64x2: "_mm_broadcast_f64x2",
	MnemonicVbroadcastf64x4: "_mm_broadcast_f64x4",
	MnemonicVbroadcasti128:  "_mm_broadcastsi128_si256",
	MnemonicVbroadcasti32x2: "_mm_broadcast_i32x2",
	MnemonicVbroadcasti32x4: "_mm_broadcast_i32x4",
	MnemonicVbroadcasti32x8: "_mm_broadcast_i32x8",
	MnemonicVbroadcasti64x2: "_mm_broadcast_i64x2",
	MnemonicVbroadcasti64x4: "_mm_broadcast_i64x4",
	MnemonicVbroadcastsd:    "_mm_broadcast_sd",
	MnemonicVbroadcastss:    "_mm_broadcast_ss",
	MnemonicVpbroadcastb:    "_mm_broadcast_epi8",
	MnemonicVpbroadcastw:    "_mm_broadcast_epi16",
	MnemonicVpbroadcastd:    "_mm_broadcast_epi32",
	MnemonicVpbroadcastq:    "_mm_broadcast_epi64",
	MnemonicVpbroadcastmb2q: "_mm_broadcastmb_epi64",
	MnemonicVpbroadcastmw2d: "_mm_broadcastmw_epi32",
}

// writeVectorIntrinsic renders `dst = <name>(op1, ...)`.
func writeVectorIntrinsic(w *Writer, inst *Instruction, operands []Operand, virtualAddress uint64, name string) bool {
	if !w.WriteOperand(&operands[0], virtualAddress) || !w.WriteRaw(" = ") {
		return false
	}
	if !w.WriteRaw(name) || !w.WriteRaw("(") {
		return false
	}
	if !writeArgumentList(w, inst, operands, virtualAddress) {
		return false
	}
	return w.WriteRaw(")")
}
