// Completion: 100% - x86asm decoder adapter complete
package asm2c

import (
	"golang.org/x/arch/x86/x86asm"
)

// This file adapts instructions decoded by golang.org/x/arch/x86/x86asm to
// the translator's instruction model. The decoder itself stays outside the
// core: the translator only ever sees an Instruction plus its operand slice.
//
// x86asm does not decode VEX/EVEX encodings, so the AVX half of the mnemonic
// set is unreachable through this adapter; it is still translatable for
// callers that decode with a different front end.

// x86asmMnemonics maps decoder opcodes onto the translator's mnemonic set.
// x86asm spells several conditional jumps by their alias (JAE for JNB, JE
// for JZ, JG for JNLE, ...).
var x86asmMnemonics = map[x86asm.Op]Mnemonic{
	x86asm.MOV:   MnemonicMov,
	x86asm.LEA:   MnemonicLea,
	x86asm.TEST:  MnemonicTest,
	x86asm.CMP:   MnemonicCmp,
	x86asm.CALL:  MnemonicCall,
	x86asm.JMP:   MnemonicJmp,
	x86asm.JB:    MnemonicJb,
	x86asm.JBE:   MnemonicJbe,
	x86asm.JCXZ:  MnemonicJcxz,
	x86asm.JECXZ: MnemonicJecxz,
	x86asm.JL:    MnemonicJl,
	x86asm.JLE:   MnemonicJle,
	x86asm.JAE:   MnemonicJnb,
	x86asm.JA:    MnemonicJnbe,
	x86asm.JGE:   MnemonicJnl,
	x86asm.JG:    MnemonicJnle,
	x86asm.JNO:   MnemonicJno,
	x86asm.JNP:   MnemonicJnp,
	x86asm.JNS:   MnemonicJns,
	x86asm.JNE:   MnemonicJnz,
	x86asm.JO:    MnemonicJo,
	x86asm.JP:    MnemonicJp,
	x86asm.JS:    MnemonicJs,
	x86asm.JE:    MnemonicJz,
	x86asm.SUB:   MnemonicSub,
	x86asm.ADD:   MnemonicAdd,
	x86asm.AND:   MnemonicAnd,
	x86asm.OR:    MnemonicOr,

	x86asm.MOVAPS: MnemonicMovaps,
	x86asm.MOVAPD: MnemonicMovapd,
	x86asm.MOVUPS: MnemonicMovups,
	x86asm.MOVUPD: MnemonicMovupd,
	x86asm.MOVQ:   MnemonicMovq,
	x86asm.LDDQU:  MnemonicLddqu,

	x86asm.PAND:     MnemonicPand,
	x86asm.PANDN:    MnemonicPandn,
	x86asm.POR:      MnemonicPor,
	x86asm.PCMPEQB:  MnemonicPcmpeqb,
	x86asm.PCMPEQW:  MnemonicPcmpeqw,
	x86asm.PCMPEQD:  MnemonicPcmpeqd,
	x86asm.PCMPEQQ:  MnemonicPcmpeqq,
	x86asm.PCMPGTB:  MnemonicPcmpgtb,
	x86asm.PCMPGTW:  MnemonicPcmpgtw,
	x86asm.PCMPGTD:  MnemonicPcmpgtd,
	x86asm.PCMPGTQ:  MnemonicPcmpgtq,
	x86asm.PACKUSWB: MnemonicPackuswb,
	x86asm.PACKUSDW: MnemonicPackusdw,
	x86asm.PACKSSWB: MnemonicPacksswb,
	x86asm.PACKSSDW: MnemonicPackssdw,
	x86asm.PADDB:    MnemonicPaddb,
	x86asm.PADDW:    MnemonicPaddw,
	x86asm.PADDD:    MnemonicPaddd,
	x86asm.PADDQ:    MnemonicPaddq,
	x86asm.PADDSB:   MnemonicPaddsb,
	x86asm.PADDSW:   MnemonicPaddsw,
	x86asm.EMMS:     MnemonicEmms,
	x86asm.PMADDWD:  MnemonicPmaddwd,
	x86asm.PMULHW:   MnemonicPmulhw,
	x86asm.PMULLW:   MnemonicPmullw,
	x86asm.PABSB:    MnemonicPabsb,
	x86asm.PABSW:    MnemonicPabsw,
	x86asm.PABSD:    MnemonicPabsd,
	x86asm.ADDSUBPS: MnemonicAddsubps,
	x86asm.ADDSUBPD: MnemonicAddsubpd,
	x86asm.PALIGNR:  MnemonicPalignr,
	x86asm.PAVGB:    MnemonicPavgb,
	x86asm.PAVGW:    MnemonicPavgw,
	x86asm.PBLENDW:  MnemonicPblendw,
	x86asm.PBLENDVB: MnemonicPblendvb,
	x86asm.BLENDPS:  MnemonicBlendps,
	x86asm.BLENDPD:  MnemonicBlendpd,
	x86asm.BLENDVPS: MnemonicBlendvps,
	x86asm.BLENDVPD: MnemonicBlendvpd,
}

// x86asmRegisters maps decoder register ids onto the name table's ids.
var x86asmRegisters = map[x86asm.Reg]Register{
	x86asm.AL: RegAL, x86asm.CL: RegCL, x86asm.DL: RegDL, x86asm.BL: RegBL,
	x86asm.AH: RegAH, x86asm.CH: RegCH, x86asm.DH: RegDH, x86asm.BH: RegBH,
	x86asm.SPB: RegSPL, x86asm.BPB: RegBPL, x86asm.SIB: RegSIL, x86asm.DIB: RegDIL,
	x86asm.R8B: RegR8B, x86asm.R9B: RegR9B, x86asm.R10B: RegR10B, x86asm.R11B: RegR11B,
	x86asm.R12B: RegR12B, x86asm.R13B: RegR13B, x86asm.R14B: RegR14B, x86asm.R15B: RegR15B,

	x86asm.AX: RegAX, x86asm.CX: RegCX, x86asm.DX: RegDX, x86asm.BX: RegBX,
	x86asm.SP: RegSP, x86asm.BP: RegBP, x86asm.SI: RegSI, x86asm.DI: RegDI,
	x86asm.R8W: RegR8W, x86asm.R9W: RegR9W, x86asm.R10W: RegR10W, x86asm.R11W: RegR11W,
	x86asm.R12W: RegR12W, x86asm.R13W: RegR13W, x86asm.R14W: RegR14W, x86asm.R15W: RegR15W,

	x86asm.EAX: RegEAX, x86asm.ECX: RegECX, x86asm.EDX: RegEDX, x86asm.EBX: RegEBX,
	x86asm.ESP: RegESP, x86asm.EBP: RegEBP, x86asm.ESI: RegESI, x86asm.EDI: RegEDI,
	x86asm.R8L: RegR8D, x86asm.R9L: RegR9D, x86asm.R10L: RegR10D, x86asm.R11L: RegR11D,
	x86asm.R12L: RegR12D, x86asm.R13L: RegR13D, x86asm.R14L: RegR14D, x86asm.R15L: RegR15D,

	x86asm.RAX: RegRAX, x86asm.RCX: RegRCX, x86asm.RDX: RegRDX, x86asm.RBX: RegRBX,
	x86asm.RSP: RegRSP, x86asm.RBP: RegRBP, x86asm.RSI: RegRSI, x86asm.RDI: RegRDI,
	x86asm.R8: RegR8, x86asm.R9: RegR9, x86asm.R10: RegR10, x86asm.R11: RegR11,
	x86asm.R12: RegR12, x86asm.R13: RegR13, x86asm.R14: RegR14, x86asm.R15: RegR15,

	x86asm.IP: RegIP, x86asm.EIP: RegEIP, x86asm.RIP: RegRIP,

	x86asm.F0: RegST0, x86asm.F1: RegST1, x86asm.F2: RegST2, x86asm.F3: RegST3,
	x86asm.F4: RegST4, x86asm.F5: RegST5, x86asm.F6: RegST6, x86asm.F7: RegST7,

	x86asm.M0: RegMM0, x86asm.M1: RegMM1, x86asm.M2: RegMM2, x86asm.M3: RegMM3,
	x86asm.M4: RegMM4, x86asm.M5: RegMM5, x86asm.M6: RegMM6, x86asm.M7: RegMM7,

	x86asm.X0: RegXMM0, x86asm.X1: RegXMM1, x86asm.X2: RegXMM2, x86asm.X3: RegXMM3,
	x86asm.X4: RegXMM4, x86asm.X5: RegXMM5, x86asm.X6: RegXMM6, x86asm.X7: RegXMM7,
	x86asm.X8: RegXMM8, x86asm.X9: RegXMM9, x86asm.X10: RegXMM10, x86asm.X11: RegXMM11,
	x86asm.X12: RegXMM12, x86asm.X13: RegXMM13, x86asm.X14: RegXMM14, x86asm.X15: RegXMM15,

	x86asm.ES: RegES, x86asm.CS: RegCS, x86asm.SS: RegSS,
	x86asm.DS: RegDS, x86asm.FS: RegFS, x86asm.GS: RegGS,

	x86asm.GDTR: RegGDTR, x86asm.LDTR: RegLDTR, x86asm.IDTR: RegIDTR, x86asm.TASK: RegTR,

	x86asm.CR0: RegCR0, x86asm.CR1: RegCR1, x86asm.CR2: RegCR2, x86asm.CR3: RegCR3,
	x86asm.CR4: RegCR4, x86asm.CR5: RegCR5, x86asm.CR6: RegCR6, x86asm.CR7: RegCR7,
	x86asm.CR8: RegCR8, x86asm.CR9: RegCR9, x86asm.CR10: RegCR10, x86asm.CR11: RegCR11,
	x86asm.CR12: RegCR12, x86asm.CR13: RegCR13, x86asm.CR14: RegCR14, x86asm.CR15: RegCR15,

	x86asm.DR0: RegDR0, x86asm.DR1: RegDR1, x86asm.DR2: RegDR2, x86asm.DR3: RegDR3,
	x86asm.DR4: RegDR4, x86asm.DR5: RegDR5, x86asm.DR6: RegDR6, x86asm.DR7: RegDR7,
	x86asm.DR8: RegDR8, x86asm.DR9: RegDR9, x86asm.DR10: RegDR10, x86asm.DR11: RegDR11,
	x86asm.DR12: RegDR12, x86asm.DR13: RegDR13, x86asm.DR14: RegDR14, x86asm.DR15: RegDR15,

	x86asm.TR0: RegTR0, x86asm.TR1: RegTR1, x86asm.TR2: RegTR2, x86asm.TR3: RegTR3,
	x86asm.TR4: RegTR4, x86asm.TR5: RegTR5, x86asm.TR6: RegTR6, x86asm.TR7: RegTR7,
}

// InstructionFromX86Asm converts a decoded x86asm instruction into the
// translator's model. It returns false when the opcode or any operand has no
// representation here; it never guesses a partial conversion.
func InstructionFromX86Asm(decoded x86asm.Inst) (Instruction, []Operand, bool) {
	mnemonic, found := x86asmMnemonics[decoded.Op]
	if !found {
		return Instruction{}, nil, false
	}

	operands := make([]Operand, 0, len(decoded.Args))
	for _, arg := range decoded.Args {
		if arg == nil {
			break
		}
		op, ok := operandFromX86Asm(arg, decoded.Len)
		if !ok {
			return Instruction{}, nil, false
		}
		operands = append(operands, op)
	}
	if len(operands) == 0 {
		return Instruction{}, nil, false
	}

	// x86asm does not distinguish address generation from dereferencing
	// forms, but LEA's source is an address, never a load.
	if mnemonic == MnemonicLea && len(operands) > 1 && operands[1].Type == OperandMemory {
		operands[1].Mem.Type = MemoryAddressGeneration
	}

	inst := Instruction{Mnemonic: mnemonic, OperandCount: len(operands)}
	return inst, operands, true
}

func operandFromX86Asm(arg x86asm.Arg, instructionLength int) (Operand, bool) {
	switch a := arg.(type) {
	case x86asm.Reg:
		reg, found := x86asmRegisters[a]
		if !found {
			return Operand{}, false
		}
		return Operand{Type: OperandRegister, Reg: reg}, true

	case x86asm.Mem:
		mem := MemoryOperand{Type: MemoryDirect, Scale: 1}
		if a.Segment != 0 {
			segment, found := x86asmRegisters[a.Segment]
			if !found {
				return Operand{}, false
			}
			mem.Segment = segment
		} else {
			mem.Segment = defaultSegment(a.Base)
		}
		if a.Base != 0 {
			base, found := x86asmRegisters[a.Base]
			if !found {
				return Operand{}, false
			}
			mem.Base = base
		}
		if a.Index != 0 {
			index, found := x86asmRegisters[a.Index]
			if !found {
				return Operand{}, false
			}
			mem.Index = index
			if a.Scale != 0 {
				mem.Scale = a.Scale
			}
		}
		if a.Disp != 0 {
			mem.HasDisplacement = true
			mem.Displacement = a.Disp
		}
		return Operand{Type: OperandMemory, Mem: mem}, true

	case x86asm.Imm:
		return Operand{Type: OperandImmediate, Imm: ImmediateOperand{
			Value:  uint64(a),
			Signed: true,
		}}, true

	case x86asm.Rel:
		// x86asm relative targets count from the end of the instruction;
		// the translator adds the immediate to the instruction's own
		// address, so fold the length in here.
		return Operand{Type: OperandImmediate, Imm: ImmediateOperand{
			Value:    uint64(int64(a) + int64(instructionLength)),
			Signed:   true,
			Relative: true,
		}}, true
	}
	return Operand{}, false
}

// defaultSegment mirrors the hardware's implicit segment selection: stack
// addressing through SP/BP goes to the stack segment, everything else to the
// data segment.
func defaultSegment(base x86asm.Reg) Register {
	switch base {
	case x86asm.SP, x86asm.BP, x86asm.ESP, x86asm.EBP, x86asm.RSP, x86asm.RBP, x86asm.SPB, x86asm.BPB:
		return RegSS
	}
	return RegDS
}
