package emu

import "github.com/sarchlab/rvsim/insts"

// Branch match keys: funct3.
const (
	beqID  = 0b000
	bneID  = 0b001
	bltID  = 0b100
	bgeID  = 0b101
	bltuID = 0b110
	bgeuID = 0b111
)

// executeBranch evaluates the branch relation and updates the PC: taken
// branches add the sign-extended offset, untaken ones fall through to
// PC+4. PC arithmetic wraps mod 2^XLEN.
func executeBranch[T Word](inst insts.B, regs *RegFile[T], pc *T) error {
	src1 := regs.ReadReg(inst.Rs1)
	src2 := regs.ReadReg(inst.Rs2)

	var taken bool
	switch inst.ID() {
	case beqID:
		taken = src1 == src2
	case bneID:
		taken = src1 != src2
	case bltID:
		taken = signedOf(src1) < signedOf(src2)
	case bgeID:
		taken = signedOf(src1) >= signedOf(src2)
	case bltuID:
		taken = src1 < src2
	case bgeuID:
		taken = src1 >= src2
	default:
		return errIllegal
	}

	if taken {
		*pc += branchOffset[T](inst.Imm)
	} else {
		*pc += 4
	}
	return nil
}

// executeJAL links PC+4 into rd, then adds the jump offset to the PC.
func executeJAL[T Word](inst insts.J, regs *RegFile[T], pc *T) {
	regs.WriteReg(inst.Rd, *pc+4)
	*pc += jumpOffset[T](inst.Imm)
}

// executeJALR computes the target from the base register before the link
// write, so rd == rs1 stays correct. The target's least-significant bit
// is cleared.
func executeJALR[T Word](inst insts.I, regs *RegFile[T], pc *T) error {
	if inst.Funct3 != 0b000 {
		return errIllegal
	}

	target := (regs.ReadReg(inst.Rs1) + immWord[T](inst.Imm)) &^ 1
	regs.WriteReg(inst.Rd, *pc+4)
	*pc = target
	return nil
}
