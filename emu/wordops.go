package emu

import "github.com/sarchlab/rvsim/insts"

// RV64 word-operation groups (OP-32, OP-IMM-32). Every kernel here
// computes on the low 32 bits of its operands in 32-bit arithmetic and
// sign-extends the 32-bit result into the 64-bit destination. The
// dispatcher only routes these opcodes on a 64-bit machine.

// executeMathW executes ADDW/SUBW/SLLW/SRLW/SRAW.
func executeMathW[T Word](inst insts.R, regs *RegFile[T]) error {
	src1 := uint32(uint64(regs.ReadReg(inst.Rs1)))
	src2 := uint32(uint64(regs.ReadReg(inst.Rs2)))

	var result uint32
	switch inst.ID() {
	case addID:
		result = src1 + src2
	case subID:
		result = src1 - src2
	case sllID:
		result = src1 << (src2 & 31)
	case srlID:
		result = src1 >> (src2 & 31)
	case sraID:
		result = uint32(int32(src1) >> (src2 & 31))
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, extendSigned32[T](result))
	return nil
}

// executeMathIW executes ADDIW; the OP-IMM-32 shifts are routed to
// executeShiftIW before matching.
func executeMathIW[T Word](inst insts.I, regs *RegFile[T]) error {
	if inst.Funct3 != 0b000 {
		return errIllegal
	}

	src1 := uint32(uint64(regs.ReadReg(inst.Rs1)))
	result := src1 + uint32(int32(inst.Imm.SignExtend()))
	regs.WriteReg(inst.Rd, extendSigned32[T](result))
	return nil
}

// executeShiftIW executes SLLIW/SRLIW/SRAIW. The shift amount stays 5
// bits wide; the full 7-bit prefix must match exactly.
func executeShiftIW[T Word](inst insts.Shift, regs *RegFile[T]) error {
	src1 := uint32(uint64(regs.ReadReg(inst.Rs1)))
	shamt := uint(inst.Shamt.Uint8())
	prefix := inst.Prefix.Uint8()

	var result uint32
	switch {
	case inst.Funct3 == 0b001 && prefix == slPrefix:
		result = src1 << shamt
	case inst.Funct3 == 0b101 && prefix == slPrefix:
		result = src1 >> shamt
	case inst.Funct3 == 0b101 && prefix == srPrefix:
		result = uint32(int32(src1) >> shamt)
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, extendSigned32[T](result))
	return nil
}
