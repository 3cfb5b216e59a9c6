// Completion: 100% - Register enumeration and name table complete
package asm2c

// Register identifies one architectural x86-64 register. The values follow
// the decoder's register enumeration so that a decoded register id can index
// the name table directly. RegNone is the "no register" sentinel and renders
// as the empty string.
type Register int

const (
	RegNone Register = iota

	// General purpose registers, 8-bit
	RegAL
	RegCL
	RegDL
	RegBL
	RegAH
	RegCH
	RegDH
	RegBH
	RegSPL
	RegBPL
	RegSIL
	RegDIL
	RegR8B
	RegR9B
	RegR10B
	RegR11B
	RegR12B
	RegR13B
	RegR14B
	RegR15B

	// General purpose registers, 16-bit
	RegAX
	RegCX
	RegDX
	RegBX
	RegSP
	RegBP
	RegSI
	RegDI
	RegR8W
	RegR9W
	RegR10W
	RegR11W
	RegR12W
	RegR13W
	RegR14W
	RegR15W

	// General purpose registers, 32-bit
	RegEAX
	RegECX
	RegEDX
	RegEBX
	RegESP
	RegEBP
	RegESI
	RegEDI
	RegR8D
	RegR9D
	RegR10D
	RegR11D
	RegR12D
	RegR13D
	RegR14D
	RegR15D

	// General purpose registers, 64-bit
	RegRAX
	RegRCX
	RegRDX
	RegRBX
	RegRSP
	RegRBP
	RegRSI
	RegRDI
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15

	// Legacy floating point registers
	RegST0
	RegST1
	RegST2
	RegST3
	RegST4
	RegST5
	RegST6
	RegST7
	RegX87Control
	RegX87Status
	RegX87Tag

	// Multimedia registers
	RegMM0
	RegMM1
	RegMM2
	RegMM3
	RegMM4
	RegMM5
	RegMM6
	RegMM7

	// Vector registers, 128-bit
	RegXMM0
	RegXMM1
	RegXMM2
	RegXMM3
	RegXMM4
	RegXMM5
	RegXMM6
	RegXMM7
	RegXMM8
	RegXMM9
	RegXMM10
	RegXMM11
	RegXMM12
	RegXMM13
	RegXMM14
	RegXMM15
	RegXMM16
	RegXMM17
	RegXMM18
	RegXMM19
	RegXMM20
	RegXMM21
	RegXMM22
	RegXMM23
	RegXMM24
	RegXMM25
	RegXMM26
	RegXMM27
	RegXMM28
	RegXMM29
	RegXMM30
	RegXMM31

	// Vector registers, 256-bit
	RegYMM0
	RegYMM1
	RegYMM2
	RegYMM3
	RegYMM4
	RegYMM5
	RegYMM6
	RegYMM7
	RegYMM8
	RegYMM9
	RegYMM10
	RegYMM11
	RegYMM12
	RegYMM13
	RegYMM14
	RegYMM15
	RegYMM16
	RegYMM17
	RegYMM18
	RegYMM19
	RegYMM20
	RegYMM21
	RegYMM22
	RegYMM23
	RegYMM24
	RegYMM25
	RegYMM26
	RegYMM27
	RegYMM28
	RegYMM29
	RegYMM30
	RegYMM31

	// Vector registers, 512-bit
	RegZMM0
	RegZMM1
	RegZMM2
	RegZMM3
	RegZMM4
	RegZMM5
	RegZMM6
	RegZMM7
	RegZMM8
	RegZMM9
	RegZMM10
	RegZMM11
	RegZMM12
	RegZMM13
	RegZMM14
	RegZMM15
	RegZMM16
	RegZMM17
	RegZMM18
	RegZMM19
	RegZMM20
	RegZMM21
	RegZMM22
	RegZMM23
	RegZMM24
	RegZMM25
	RegZMM26
	RegZMM27
	RegZMM28
	RegZMM29
	RegZMM30
	RegZMM31

	// Matrix tile registers
	RegTMM0
	RegTMM1
	RegTMM2
	RegTMM3
	RegTMM4
	RegTMM5
	RegTMM6
	RegTMM7

	// Flags registers
	RegFlags
	RegEFlags
	RegRFlags

	// Instruction-pointer registers
	RegIP
	RegEIP
	RegRIP

	// Segment registers
	RegES
	RegCS
	RegSS
	RegDS
	RegFS
	RegGS

	// Descriptor-table registers
	RegGDTR
	RegLDTR
	RegIDTR
	RegTR

	// Test registers
	RegTR0
	RegTR1
	RegTR2
	RegTR3
	RegTR4
	RegTR5
	RegTR6
	RegTR7

	// Control registers
	RegCR0
	RegCR1
	RegCR2
	RegCR3
	RegCR4
	RegCR5
	RegCR6
	RegCR7
	RegCR8
	RegCR9
	RegCR10
	RegCR11
	RegCR12
	RegCR13
	RegCR14
	RegCR15

	// Debug registers
	RegDR0
	RegDR1
	RegDR2
	RegDR3
	RegDR4
	RegDR5
	RegDR6
	RegDR7
	RegDR8
	RegDR9
	RegDR10
	RegDR11
	RegDR12
	RegDR13
	RegDR14
	RegDR15

	// Mask registers
	RegK0
	RegK1
	RegK2
	RegK3
	RegK4
	RegK5
	RegK6
	RegK7

	// Bound registers
	RegBND0
	RegBND1
	RegBND2
	RegBND3
	RegBNDCFG
	RegBNDStatus

	// Uncategorized
	RegMXCSR
	RegPKRU
	RegXCR0
	RegUIF

	// RegisterCount is the number of valid register ids, sentinel included.
	RegisterCount
)

// registerNames maps every register id to its canonical pseudo-code
// spelling. An 8-bit alias of a wider register renders with an explicit
// width cast so the reader can see which part of the value is touched.
// The table is built once and never mutated.
var registerNames = [RegisterCount]string{
	RegNone: "",

	RegAL:   "(i8)a",
	RegCL:   "(i8)c",
	RegDL:   "(i8)d",
	RegBL:   "(i8)b",
	RegAH:   "(i8)(a >> 8)",
	RegCH:   "(i8)(c >> 8)",
	RegDH:   "(i8)(d >> 8)",
	RegBH:   "(i8)(b >> 8)",
	RegSPL:  "(i8)stack_pointer",
	RegBPL:  "(i8)bp",
	RegSIL:  "(i8)si",
	RegDIL:  "(i8)di",
	RegR8B:  "(i8)r8",
	RegR9B:  "(i8)r9",
	RegR10B: "(i8)r10",
	RegR11B: "(i8)r11",
	RegR12B: "(i8)r12",
	RegR13B: "(i8)r13",
	RegR14B: "(i8)r14",
	RegR15B: "(i8)r15",

	RegAX:   "(i16)a",
	RegCX:   "(i16)c",
	RegDX:   "(i16)d",
	RegBX:   "(i16)b",
	RegSP:   "(i16)stack_pointer",
	RegBP:   "(i16)bp",
	RegSI:   "(i16)si",
	RegDI:   "(i16)di",
	RegR8W:  "(i16)r8",
	RegR9W:  "(i16)r9",
	RegR10W: "(i16)r10",
	RegR11W: "(i16)r11",
	RegR12W: "(i16)r12",
	RegR13W: "(i16)r13",
	RegR14W: "(i16)r14",
	RegR15W: "(i16)r15",

	RegEAX:  "(i32)ax",
	RegECX:  "(i32)cx",
	RegEDX:  "(i32)dx",
	RegEBX:  "(i32)bx",
	RegESP:  "(i32)stack_pointer",
	RegEBP:  "(i32)bp",
	RegESI:  "(i32)si",
	RegEDI:  "(i32)di",
	RegR8D:  "(i32)r8",
	RegR9D:  "(i32)r9",
	RegR10D: "(i32)r10",
	RegR11D: "(i32)r11",
	RegR12D: "(i32)r12",
	RegR13D: "(i32)r13",
	RegR14D: "(i32)r14",
	RegR15D: "(i32)r15",

	RegRAX: "(i64)a",
	RegRCX: "(i64)c",
	RegRDX: "(i64)d",
	RegRBX: "(i64)b",
	RegRSP: "(i64)stack_pointer",
	RegRBP: "(i64)bp",
	RegRSI: "(i64)si",
	RegRDI: "(i64)di",
	RegR8:  "(i64)r8",
	RegR9:  "(i64)r9",
	RegR10: "(i64)r10",
	RegR11: "(i64)r11",
	RegR12: "(i64)r12",
	RegR13: "(i64)r13",
	RegR14: "(i64)r14",
	RegR15: "(i64)r15",

	RegST0:        "(float)s0",
	RegST1:        "(float)s1",
	RegST2:        "(float)s2",
	RegST3:        "(float)s3",
	RegST4:        "(float)s4",
	RegST5:        "(float)s5",
	RegST6:        "(float)s6",
	RegST7:        "(float)s7",
	RegX87Control: "x87control",
	RegX87Status:  "x87status",
	RegX87Tag:     "x87tag",

	RegMM0: "(float)mm0",
	RegMM1: "(float)mm1",
	RegMM2: "(float)mm2",
	RegMM3: "(float)mm3",
	RegMM4: "(float)mm4",
	RegMM5: "(float)mm5",
	RegMM6: "(float)mm6",
	RegMM7: "(float)mm7",

	RegXMM0:  "(m128)x0",
	RegXMM1:  "(m128)x1",
	RegXMM2:  "(m128)x2",
	RegXMM3:  "(m128)x3",
	RegXMM4:  "(m128)x4",
	RegXMM5:  "(m128)x5",
	RegXMM6:  "(m128)x6",
	RegXMM7:  "(m128)x7",
	RegXMM8:  "(m128)x8",
	RegXMM9:  "(m128)x9",
	RegXMM10: "(m128)x10",
	RegXMM11: "(m128)x11",
	RegXMM12: "(m128)x12",
	RegXMM13: "(m128)x13",
	RegXMM14: "(m128)x14",
	RegXMM15: "(m128)x15",
	RegXMM16: "(m128)x16",
	RegXMM17: "(m128)x17",
	RegXMM18: "(m128)x18",
	RegXMM19: "(m128)x19",
	RegXMM20: "(m128)x20",
	RegXMM21: "(m128)x21",
	RegXMM22: "(m128)x22",
	RegXMM23: "(m128)x23",
	RegXMM24: "(m128)x24",
	RegXMM25: "(m128)x25",
	RegXMM26: "(m128)x26",
	RegXMM27: "(m128)x27",
	RegXMM28: "(m128)x28",
	RegXMM29: "(m128)x29",
	RegXMM30: "(m128)x30",
	RegXMM31: "(m128)x31",

	RegYMM0:  "(m256)y0",
	RegYMM1:  "(m256)y1",
	RegYMM2:  "(m256)y2",
	RegYMM3:  "(m256)y3",
	RegYMM4:  "(m256)y4",
	RegYMM5:  "(m256)y5",
	RegYMM6:  "(m256)y6",
	RegYMM7:  "(m256)y7",
	RegYMM8:  "(m256)y8",
	RegYMM9:  "(m256)y9",
	RegYMM10: "(m256)y10",
	RegYMM11: "(m256)y11",
	RegYMM12: "(m256)y12",
	RegYMM13: "(m256)y13",
	RegYMM14: "(m256)y14",
	RegYMM15: "(m256)y15",
	RegYMM16: "(m256)y16",
	RegYMM17: "(m256)y17",
	RegYMM18: "(m256)y18",
	RegYMM19: "(m256)y19",
	RegYMM20: "(m256)y20",
	RegYMM21: "(m256)y21",
	RegYMM22: "(m256)y22",
	RegYMM23: "(m256)y23",
	RegYMM24: "(m256)y24",
	RegYMM25: "(m256)y25",
	RegYMM26: "(m256)y26",
	RegYMM27: "(m256)y27",
	RegYMM28: "(m256)y28",
	RegYMM29: "(m256)y29",
	RegYMM30: "(m256)y30",
	RegYMM31: "(m256)y31",

	RegZMM0:  "(m512)z0",
	RegZMM1:  "(m512)z1",
	RegZMM2:  "(m512)z2",
	RegZMM3:  "(m512)z3",
	RegZMM4:  "(m512)z4",
	RegZMM5:  "(m512)z5",
	RegZMM6:  "(m512)z6",
	RegZMM7:  "(m512)z7",
	RegZMM8:  "(m512)z8",
	RegZMM9:  "(m512)z9",
	RegZMM10: "(m512)z10",
	RegZMM11: "(m512)z11",
	RegZMM12: "(m512)z12",
	RegZMM13: "(m512)z13",
	RegZMM14: "(m512)z14",
	RegZMM15: "(m512)z15",
	RegZMM16: "(m512)z16",
	RegZMM17: "(m512)z17",
	RegZMM18: "(m512)z18",
	RegZMM19: "(m512)z19",
	RegZMM20: "(m512)z20",
	RegZMM21: "(m512)z21",
	RegZMM22: "(m512)z22",
	RegZMM23: "(m512)z23",
	RegZMM24: "(m512)z24",
	RegZMM25: "(m512)z25",
	RegZMM26: "(m512)z26",
	RegZMM27: "(m512)z27",
	RegZMM28: "(m512)z28",
	RegZMM29: "(m512)z29",
	RegZMM30: "(m512)z30",
	RegZMM31: "(m512)z31",

	RegTMM0: "(matrix_tile)t0",
	RegTMM1: "(matrix_tile)t1",
	RegTMM2: "(matrix_tile)t2",
	RegTMM3: "(matrix_tile)t3",
	RegTMM4: "(matrix_tile)t4",
	RegTMM5: "(matrix_tile)t5",
	RegTMM6: "(matrix_tile)t6",
	RegTMM7: "(matrix_tile)t7",

	RegFlags:  "flags",
	RegEFlags: "eflags",
	RegRFlags: "rflags",

	RegIP:  "instruction_pointer",
	RegEIP: "instruction_pointer32",
	RegRIP: "instruction_pointer64",

	RegES: "extra_segment",
	RegCS: "code_segment",
	RegSS: "stack_segment",
	RegDS: "data_segment",
	RegFS: "f_segment",
	RegGS: "g_segment",

	RegGDTR: "table_gdtr",
	RegLDTR: "table_ldtr",
	RegIDTR: "table_idtr",
	RegTR:   "table_tr",

	RegTR0: "test_tr0",
	RegTR1: "test_tr1",
	RegTR2: "test_tr2",
	RegTR3: "test_tr3",
	RegTR4: "test_tr4",
	RegTR5: "test_tr5",
	RegTR6: "test_tr6",
	RegTR7: "test_tr7",

	RegCR0:  "control_cr0",
	RegCR1:  "control_cr1",
	RegCR2:  "control_cr2",
	RegCR3:  "control_cr3",
	RegCR4:  "control_cr4",
	RegCR5:  "control_cr5",
	RegCR6:  "control_cr6",
	RegCR7:  "control_cr7",
	RegCR8:  "control_cr8",
	RegCR9:  "control_cr9",
	RegCR10: "control_cr10",
	RegCR11: "control_cr11",
	RegCR12: "control_cr12",
	RegCR13: "control_cr13",
	RegCR14: "control_cr14",
	RegCR15: "control_cr15",

	RegDR0:  "debug_dr0",
	RegDR1:  "debug_dr1",
	RegDR2:  "debug_dr2",
	RegDR3:  "debug_dr3",
	RegDR4:  "debug_dr4",
	RegDR5:  "debug_dr5",
	RegDR6:  "debug_dr6",
	RegDR7:  "debug_dr7",
	RegDR8:  "debug_dr8",
	RegDR9:  "debug_dr9",
	RegDR10: "debug_dr10",
	RegDR11: "debug_dr11",
	RegDR12: "debug_dr12",
	RegDR13: "debug_dr13",
	RegDR14: "debug_dr14",
	RegDR15: "debug_dr15",

	RegK0: "mask_k0",
	RegK1: "mask_k1",
	RegK2: "mask_k2",
	RegK3: "mask_k3",
	RegK4: "mask_k4",
	RegK5: "mask_k5",
	RegK6: "mask_k6",
	RegK7: "mask_k7",

	RegBND0:      "bound_bnd0",
	RegBND1:      "bound_bnd1",
	RegBND2:      "bound_bnd2",
	RegBND3:      "bound_bnd3",
	RegBNDCFG:    "bound_bndcfg",
	RegBNDStatus: "bound_bndstatus",

	RegMXCSR: "mxcsr",
	RegPKRU:  "pkru",
	RegXCR0:  "xcr0",
	RegUIF:   "uif",
}

// RegisterName returns the canonical pseudo-code spelling for reg.
// RegNone yields the empty string with ok set; out-of-range ids fail.
func RegisterName(reg Register) (string, bool) {
	if reg < 0 || reg >= RegisterCount {
		return "", false
	}
	return registerNames[reg], true
}

// WriteRegister writes the canonical name of reg. Fails for ids outside the
// name table. RegNone is a valid, zero-length render: callers that need a
// non-empty segment or index name must check for it themselves.
func (w *Writer) WriteRegister(reg Register) bool {
	if reg < 0 || reg >= RegisterCount {
		return false
	}
	return w.WriteRaw(registerNames[reg])
}
