package emu

import "github.com/sarchlab/rvsim/insts"

// R-format match keys: funct3 + funct7. The sums are unambiguous within
// the base ISA.
const (
	addID  = 0b000
	sllID  = 0b001
	sltID  = 0b010
	sltuID = 0b011
	xorID  = 0b100
	srlID  = 0b101
	orID   = 0b110
	andID  = 0b111
	subID  = 0b000 + 0b0100000
	sraID  = 0b101 + 0b0100000
)

// I-format match keys for the OP-IMM group: funct3. The shift encodings
// (funct3 001 and 101) are routed to executeShiftI before matching.
const (
	addiID  = 0b000
	sltiID  = 0b010
	sltiuID = 0b011
	xoriID  = 0b100
	oriID   = 0b110
	andiID  = 0b111
)

// Shift prefixes: imm[11:5]. srPrefix selects the arithmetic right shift.
const (
	slPrefix = 0b0000000
	srPrefix = 0b0100000
)

// executeMath executes the register-register OP group.
func executeMath[T Word](inst insts.R, regs *RegFile[T]) error {
	src1 := regs.ReadReg(inst.Rs1)
	src2 := regs.ReadReg(inst.Rs2)

	var result T
	switch inst.ID() {
	case addID:
		result = src1 + src2
	case subID:
		result = src1 - src2
	case sllID:
		result = sll(src1, uint(src2))
	case sltID:
		if signedOf(src1) < signedOf(src2) {
			result = 1
		}
	case sltuID:
		if src1 < src2 {
			result = 1
		}
	case xorID:
		result = src1 ^ src2
	case srlID:
		result = srl(src1, uint(src2))
	case sraID:
		result = sra(src1, uint(src2))
	case orID:
		result = src1 | src2
	case andID:
		result = src1 & src2
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, result)
	return nil
}

// executeMathI executes the non-shift part of the OP-IMM group.
func executeMathI[T Word](inst insts.I, regs *RegFile[T]) error {
	src1 := regs.ReadReg(inst.Rs1)
	imm := immWord[T](inst.Imm)

	var result T
	switch inst.ID() {
	case addiID:
		result = src1 + imm
	case sltiID:
		if signedOf(src1) < signedOf(imm) {
			result = 1
		}
	case sltiuID:
		if src1 < imm {
			result = 1
		}
	case xoriID:
		result = src1 ^ imm
	case oriID:
		result = src1 | imm
	case andiID:
		result = src1 & imm
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, result)
	return nil
}

// executeShiftI executes the immediate shifts of the OP-IMM group. On a
// 64-bit machine the shift amount is 6 bits wide and borrows the low bit
// of the prefix; the remaining prefix bits must still match exactly, so
// reserved encodings stay illegal.
func executeShiftI[T Word](inst insts.Shift, regs *RegFile[T]) error {
	prefix := inst.Prefix.Uint8()
	shamt := uint(inst.Shamt.Uint8())
	if xlen[T]() == 64 {
		shamt |= uint(prefix&1) << 5
		prefix &^= 1
	}

	src1 := regs.ReadReg(inst.Rs1)

	var result T
	switch {
	case inst.Funct3 == 0b001 && prefix == slPrefix:
		result = src1 << shamt
	case inst.Funct3 == 0b101 && prefix == slPrefix:
		result = src1 >> shamt
	case inst.Funct3 == 0b101 && prefix == srPrefix:
		result = sra(src1, shamt)
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, result)
	return nil
}

// executeLUI places the upper immediate in rd.
func executeLUI[T Word](inst insts.U, regs *RegFile[T]) {
	regs.WriteReg(inst.Rd, upperImm[T](inst.Imm))
}

// executeAUIPC adds the upper immediate to the current PC.
func executeAUIPC[T Word](inst insts.U, regs *RegFile[T], pc T) {
	regs.WriteReg(inst.Rd, pc+upperImm[T](inst.Imm))
}
