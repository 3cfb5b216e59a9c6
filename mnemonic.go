// Completion: 100% - Mnemonic enumeration complete
package asm2c

// Mnemonic identifies one supported instruction. The set is closed: the
// translator signals anything outside it through its hasTranslation result
// instead of guessing.
type Mnemonic int

const (
	MnemonicInvalid Mnemonic = iota

	// Scalar data movement, comparison and control flow
	MnemonicMov
	MnemonicLea
	MnemonicTest
	MnemonicCmp
	MnemonicCall
	MnemonicJmp
	MnemonicJb
	MnemonicJbe
	MnemonicJcxz
	MnemonicJecxz
	MnemonicJl
	MnemonicJle
	MnemonicJnb
	MnemonicJnbe
	MnemonicJnl
	MnemonicJnle
	MnemonicJno
	MnemonicJnp
	MnemonicJns
	MnemonicJnz
	MnemonicJo
	MnemonicJp
	MnemonicJs
	MnemonicJz
	MnemonicSub
	MnemonicAdd
	MnemonicAnd
	MnemonicOr

	// Aligned vector moves
	MnemonicMovaps
	MnemonicMovapd
	MnemonicVmovdqa
	MnemonicVmovdqa32
	MnemonicVmovdqa64

	// Unaligned vector moves
	MnemonicMovups
	MnemonicMovupd
	MnemonicMovq
	MnemonicLddqu
	MnemonicVmovd
	MnemonicVmovdqu
	MnemonicVmovdqu16
	MnemonicVmovdqu32
	MnemonicVmovdqu64
	MnemonicVmovdqu8

	// Vector arithmetic, logic, compare, blend and broadcast
	MnemonicPand
	MnemonicVpand
	MnemonicVpandq
	MnemonicVpandd
	MnemonicPandn
	MnemonicVpandn
	MnemonicVpandnq
	MnemonicVpandnd
	MnemonicPcmpeqb
	MnemonicPcmpeqw
	MnemonicPcmpeqd
	MnemonicPcmpeqq
	MnemonicVpcmpeqb
	MnemonicVpcmpeqw
	MnemonicVpcmpeqd
	MnemonicVpcmpeqq
	MnemonicPcmpgtb
	MnemonicPcmpgtw
	MnemonicPcmpgtd
	MnemonicPcmpgtq
	MnemonicVpcmpgtb
	MnemonicVpcmpgtw
	MnemonicVpcmpgtd
	MnemonicVpcmpgtq
	MnemonicPackuswb
	MnemonicPackusdw
	MnemonicVpackuswb
	MnemonicVpackusdw
	MnemonicPacksswb
	MnemonicPackssdw
	MnemonicVpacksswb
	MnemonicVpackssdw
	MnemonicPaddb
	MnemonicPaddw
	MnemonicPaddd
	MnemonicPaddq
	MnemonicVpaddb
	MnemonicVpaddw
	MnemonicVpaddd
	MnemonicVpaddq
	MnemonicPaddsb
	MnemonicPaddsw
	MnemonicVpaddsb
	MnemonicVpaddsw
	MnemonicEmms
	MnemonicPmaddwd
	MnemonicVpmaddwd
	MnemonicPmulhw
	MnemonicVpmulhw
	MnemonicPmullw
	MnemonicVpmullw
	MnemonicPor
	MnemonicVpor
	MnemonicVpord
	MnemonicVporq
	MnemonicPabsw
	MnemonicVpabsw
	MnemonicPabsb
	MnemonicVpabsb
	MnemonicPabsd
	MnemonicVpabsd
	MnemonicAddsubps
	MnemonicVaddsubps
	MnemonicAddsubpd
	MnemonicVaddsubpd
	MnemonicPalignr
	MnemonicVpalignr
	MnemonicPavgb
	MnemonicVpavgb
	MnemonicPavgw
	MnemonicVpavgw
	MnemonicPblendw
	MnemonicVpblendw
	MnemonicPblendvb
	MnemonicVpblendvb
	MnemonicVpblendd
	MnemonicBlendps
	MnemonicVblendps
	MnemonicBlendpd
	MnemonicVblendpd
	MnemonicBlendvps
	MnemonicVblendvps
	MnemonicBlendvpd
	MnemonicVblendvpd
	MnemonicVbroadcastf128
	MnemonicVbroadcastf32x2
	MnemonicVbroadcastf32x4
	MnemonicVbroadcastf32x8
	MnemonicVbroadcastf64x2
	MnemonicVbroadcastf64x4
	MnemonicVbroadcasti128
	MnemonicVbroadcasti32x2
	MnemonicVbroadcasti32x4
	MnemonicVbroadcasti32x8
	MnemonicVbroadcasti64x2
	MnemonicVbroadcasti64x4
	MnemonicVbroadcastsd
	MnemonicVbroadcastss
	MnemonicVpbroadcastb
	MnemonicVpbroadcastd
	MnemonicVpbroadcastmb2q
	MnemonicVpbroadcastmw2d
	MnemonicVpbroadcastq
	MnemonicVpbroadcastw

	mnemonicCount
)

var mnemonicNames = [mnemonicCount]string{
	MnemonicInvalid: "invalid",

	MnemonicMov:   "mov",
	MnemonicLea:   "lea",
	MnemonicTest:  "test",
	MnemonicCmp:   "cmp",
	MnemonicCall:  "call",
	MnemonicJmp:   "jmp",
	MnemonicJb:    "jb",
	MnemonicJbe:   "jbe",
	MnemonicJcxz:  "jcxz",
	MnemonicJecxz: "jecxz",
	MnemonicJl:    "jl",
	MnemonicJle:   "jle",
	MnemonicJnb:   "jnb",
	MnemonicJnbe:  "jnbe",
	MnemonicJnl:   "jnl",
	MnemonicJnle:  "jnle",
	MnemonicJno:   "jno",
	MnemonicJnp:   "jnp",
	MnemonicJns:   "jns",
	MnemonicJnz:   "jnz",
	MnemonicJo:    "jo",
	MnemonicJp:    "jp",
	MnemonicJs:    "js",
	MnemonicJz:    "jz",
	MnemonicSub:   "sub",
	MnemonicAdd:   "add",
	MnemonicAnd:   "and",
	MnemonicOr:    "or",

	MnemonicMovaps:    "movaps",
	MnemonicMovapd:    "movapd",
	MnemonicVmovdqa:   "vmovdqa",
	MnemonicVmovdqa32: "vmovdqa32",
	MnemonicVmovdqa64: "vmovdqa64",

	MnemonicMovups:    "movups",
	MnemonicMovupd:    "movupd",
	MnemonicMovq:      "movq",
	MnemonicLddqu:     "lddqu",
	MnemonicVmovd:     "vmovd",
	MnemonicVmovdqu:   "vmovdqu",
	MnemonicVmovdqu16: "vmovdqu16",
	MnemonicVmovdqu32: "vmovdqu32",
	MnemonicVmovdqu64: "vmovdqu64",
	MnemonicVmovdqu8:  "vmovdqu8",

	MnemonicPand:            "pand",
	MnemonicVpand:           "vpand",
	MnemonicVpandq:          "vpandq",
	MnemonicVpandd:          "vpandd",
	MnemonicPandn:           "pandn",
	MnemonicVpandn:          "vpandn",
	MnemonicVpandnq:         "vpandnq",
	MnemonicVpandnd:         "vpandnd",
	MnemonicPcmpeqb:         "pcmpeqb",
	MnemonicPcmpeqw:         "pcmpeqw",
	MnemonicPcmpeqd:         "pcmpeqd",
	MnemonicPcmpeqq:         "pcmpeqq",
	MnemonicVpcmpeqb:        "vpcmpeqb",
	MnemonicVpcmpeqw:        "vpcmpeqw",
	MnemonicVpcmpeqd:        "vpcmpeqd",
	MnemonicVpcmpeqq:        "vpcmpeqq",
	MnemonicPcmpgtb:         "pcmpgtb",
	MnemonicPcmpgtw:         "pcmpgtw",
	MnemonicPcmpgtd:         "pcmpgtd",
	MnemonicPcmpgtq:         "pcmpgtq",
	MnemonicVpcmpgtb:        "vpcmpgtb",
	MnemonicVpcmpgtw:        "vpcmpgtw",
	MnemonicVpcmpgtd:        "vpcmpgtd",
	MnemonicVpcmpgtq:        "vpcmpgtq",
	MnemonicPackuswb:        "packuswb",
	MnemonicPackusdw:        "packusdw",
	MnemonicVpackuswb:       "vpackuswb",
	MnemonicVpackusdw:       "vpackusdw",
	MnemonicPacksswb:        "packsswb",
	MnemonicPackssdw:        "packssdw",
	MnemonicVpacksswb:       "vpacksswb",
	MnemonicVpackssdw:       "vpackssdw",
	MnemonicPaddb:           "paddb",
	MnemonicPaddw:           "paddw",
	MnemonicPaddd:           "paddd",
	MnemonicPaddq:           "paddq",
	MnemonicVpaddb:          "vpaddb",
	MnemonicVpaddw:          "vpaddw",
	MnemonicVpaddd:          "vpaddd",
	MnemonicVpaddq:          "vpaddq",
	MnemonicPaddsb:          "paddsb",
	MnemonicPaddsw:          "paddsw",
	MnemonicVpaddsb:         "vpaddsb",
	MnemonicVpaddsw:         "vpaddsw",
	MnemonicEmms:            "emms",
	MnemonicPmaddwd:         "pmaddwd",
	MnemonicVpmaddwd:        "vpmaddwd",
	MnemonicPmulhw:          "pmulhw",
	MnemonicVpmulhw:         "vpmulhw",
	MnemonicPmullw:          "pmullw",
	MnemonicVpmullw:         "vpmullw",
	MnemonicPor:             "por",
	MnemonicVpor:            "vpor",
	MnemonicVpord:           "vpord",
	MnemonicVporq:           "vporq",
	MnemonicPabsw:           "pabsw",
	MnemonicVpabsw:          "vpabsw",
	MnemonicPabsb:           "pabsb",
	MnemonicVpabsb:          "vpabsb",
	MnemonicPabsd:           "pabsd",
	MnemonicVpabsd:          "vpabsd",
	MnemonicAddsubps:        "addsubps",
	MnemonicVaddsubps:       "vaddsubps",
	MnemonicAddsubpd:        "addsubpd",
	MnemonicVaddsubpd:       "vaddsubpd",
	MnemonicPalignr:         "palignr",
	MnemonicVpalignr:        "vpalignr",
	MnemonicPavgb:           "pavgb",
	MnemonicVpavgb:          "vpavgb",
	MnemonicPavgw:           "pavgw",
	MnemonicVpavgw:          "vpavgw",
	MnemonicPblendw:         "pblendw",
	MnemonicVpblendw:        "vpblendw",
	MnemonicPblendvb:        "pblendvb",
	MnemonicVpblendvb:       "vpblendvb",
	MnemonicVpblendd:        "vpblendd",
	MnemonicBlendps:         "blendps",
	MnemonicVblendps:        "vblendps",
	MnemonicBlendpd:         "blendpd",
	MnemonicVblendpd:        "vblendpd",
	MnemonicBlendvps:        "blendvps",
	MnemonicVblendvps:       "vblendvps",
	MnemonicBlendvpd:        "blendvpd",
	MnemonicVblendvpd:       "vblendvpd",
	MnemonicVbroadcastf128:  "vbroadcastf128",
	MnemonicVbroadcastf32x2: "vbroadcastf32x2",
	MnemonicVbroadcastf32x4: "vbroadcastf32x4",
	MnemonicVbroadcastf32x8: "vbroadcastf32x8",
	MnemonicVbroadcastf64x2: "vbroadcastf64x2",
	MnemonicVbroadcastf64x4: "vbroadcastf64x4",
	MnemonicVbroadcasti128:  "vbroadcasti128",
	MnemonicVbroadcasti32x2: "vbroadcasti32x2",
	MnemonicVbroadcasti32x4: "vbroadcasti32x4",
	MnemonicVbroadcasti32x8: "vbroadcasti32x8",
	MnemonicVbroadcasti64x2: "vbroadcasti64x2",
	MnemonicVbroadcasti64x4: "vbroadcasti64x4",
	MnemonicVbroadcastsd:    "vbroadcastsd",
	MnemonicVbroadcastss:    "vbroadcastss",
	MnemonicVpbroadcastb:    "vpbroadcastb",
	MnemonicVpbroadcastd:    "vpbroadcastd",
	MnemonicVpbroadcastmb2q: "vpbroadcastmb2q",
	MnemonicVpbroadcastmw2d: "vpbroadcastmw2d",
	MnemonicVpbroadcastq:    "vpbroadcastq",
	MnemonicVpbroadcastw:    "vpbroadcastw",
}

func (m Mnemonic) String() string {
	if m < 0 || m >= mnemonicCount {
		return "unknown"
	}
	return mnemonicNames[m]
}
