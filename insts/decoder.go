package insts

// Instruction-format records for the base integer ISA. Each record is an
// immutable value decoded from a 32-bit instruction word; the bit layout
// follows the RISC-V unprivileged specification:
//
//	rd     = bits [11:7]
//	funct3 = bits [14:12]
//	rs1    = bits [19:15]
//	rs2    = bits [24:20]
//	funct7 = bits [31:25]
//
// Decoding is total: every 32-bit word decodes into any requested format.
// Encodings that match no instruction are rejected during dispatch, not
// here.

// R is the register-register format (OP, OP-32 groups).
type R struct {
	Funct7 U7
	Rs2    U5
	Rs1    U5
	Funct3 U3
	Rd     U5
}

// DecodeR extracts the R-format fields from an instruction word.
func DecodeR(word uint32) R {
	return R{
		Funct7: U7Truncate(uint8(word >> 25)),
		Rs2:    U5Truncate(uint8(word >> 20)),
		Rs1:    U5Truncate(uint8(word >> 15)),
		Funct3: U3Truncate(uint8(word >> 12)),
		Rd:     U5Truncate(uint8(word >> 7)),
	}
}

// ID returns the match key for the R format: funct3 + funct7. The sum is
// unambiguous within the base ISA.
func (r R) ID() uint32 {
	return r.Funct3.Uint32() + r.Funct7.Uint32()
}

// I is the register-immediate format (OP-IMM, JALR, LOAD groups). The
// 12-bit immediate sits in bits [31:20] and sign-extends for arithmetic
// use.
type I struct {
	Imm    U12
	Rs1    U5
	Funct3 U3
	Rd     U5
}

// DecodeI extracts the I-format fields from an instruction word.
func DecodeI(word uint32) I {
	return I{
		Imm:    U12Truncate(uint16(word >> 20)),
		Rs1:    U5Truncate(uint8(word >> 15)),
		Funct3: U3Truncate(uint8(word >> 12)),
		Rd:     U5Truncate(uint8(word >> 7)),
	}
}

// ID returns the match key for the I format: funct3.
func (i I) ID() uint32 {
	return i.Funct3.Uint32()
}

// Shift refines the I format for immediate shifts, splitting the
// immediate into a 5-bit shift amount and a 7-bit prefix (imm[11:5]).
// On RV64 the shift amount borrows the prefix's low bit.
type Shift struct {
	Prefix U7
	Shamt  U5
	Rs1    U5
	Funct3 U3
	Rd     U5
}

// ShiftFromI splits an I record's immediate into prefix and shamt.
func ShiftFromI(i I) Shift {
	return Shift{
		Prefix: U7Truncate(uint8(i.Imm.Uint16() >> 5)),
		Shamt:  U5Truncate(uint8(i.Imm.Uint16())),
		Rs1:    i.Rs1,
		Funct3: i.Funct3,
		Rd:     i.Rd,
	}
}

// DecodeShift extracts the shift-immediate fields from an instruction word.
func DecodeShift(word uint32) Shift {
	return ShiftFromI(DecodeI(word))
}

// ID returns the match key for the Shift format: funct3 + prefix.
func (s Shift) ID() uint32 {
	return s.Funct3.Uint32() + s.Prefix.Uint32()
}

// Fence is the MISC-MEM layout: fm in bits [31:28], predecessor and
// successor ordering sets in [27:24] and [23:20].
type Fence struct {
	Fm     U4
	Pred   U4
	Succ   U4
	Rs1    U5
	Funct3 U3
	Rd     U5
}

// DecodeFence extracts the FENCE fields from an instruction word.
func DecodeFence(word uint32) Fence {
	return Fence{
		Fm:     U4Truncate(uint8(word >> 28)),
		Pred:   U4Truncate(uint8(word >> 24)),
		Succ:   U4Truncate(uint8(word >> 20)),
		Rs1:    U5Truncate(uint8(word >> 15)),
		Funct3: U3Truncate(uint8(word >> 12)),
		Rd:     U5Truncate(uint8(word >> 7)),
	}
}

// S is the store format. The 12-bit immediate is split across the word:
// imm[11:5] in bits [31:25], imm[4:0] in bits [11:7].
type S struct {
	Imm    U12
	Rs2    U5
	Rs1    U5
	Funct3 U3
}

// DecodeS extracts the S-format fields from an instruction word.
func DecodeS(word uint32) S {
	upper := uint16(word>>25) & 0x7F
	lower := uint16(word>>7) & 0x1F
	return S{
		Imm:    U12Truncate(upper<<5 | lower),
		Rs2:    U5Truncate(uint8(word >> 20)),
		Rs1:    U5Truncate(uint8(word >> 15)),
		Funct3: U3Truncate(uint8(word >> 12)),
	}
}

// ID returns the match key for the S format: funct3.
func (s S) ID() uint32 {
	return s.Funct3.Uint32()
}

// B is the branch format. The 13-bit immediate scatters across the word:
// imm[12] in bit 31, imm[11] in bit 7, imm[10:5] in bits [30:25],
// imm[4:1] in bits [11:8]. Bit 0 is always zero.
type B struct {
	Imm    U13
	Rs2    U5
	Rs1    U5
	Funct3 U3
}

// DecodeB extracts the B-format fields from an instruction word.
func DecodeB(word uint32) B {
	imm := word>>19&(1<<12) |
		word<<4&(1<<11) |
		word>>20&(0b111111<<5) |
		word>>7&(0b1111<<1)
	return B{
		Imm:    U13Truncate(uint16(imm)),
		Rs2:    U5Truncate(uint8(word >> 20)),
		Rs1:    U5Truncate(uint8(word >> 15)),
		Funct3: U3Truncate(uint8(word >> 12)),
	}
}

// ID returns the match key for the B format: funct3.
func (b B) ID() uint32 {
	return b.Funct3.Uint32()
}

// U is the upper-immediate format (LUI, AUIPC). The immediate keeps the
// word's high 20 bits in place; the low 12 bits are always zero.
type U struct {
	Imm uint32
	Rd  U5
}

// DecodeU extracts the U-format fields from an instruction word.
func DecodeU(word uint32) U {
	return U{
		Imm: word & 0xFFFFF000,
		Rd:  U5Truncate(uint8(word >> 7)),
	}
}

// J is the jump format (JAL). The 21-bit immediate scatters across the
// word: imm[20] in bit 31, imm[19:12] in bits [19:12], imm[11] in bit 20,
// imm[10:1] in bits [30:21]. Bit 0 is always zero.
type J struct {
	Imm U21
	Rd  U5
}

// DecodeJ extracts the J-format fields from an instruction word.
func DecodeJ(word uint32) J {
	imm := word&(1<<31)>>11 |
		word&(0b1111111111<<21)>>20 |
		word&(1<<20)>>9 |
		word&(0b11111111<<12)
	return J{
		Imm: U21Truncate(imm),
		Rd:  U5Truncate(uint8(word >> 7)),
	}
}
