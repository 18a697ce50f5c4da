// Package insts provides RISC-V instruction-format definitions and decoding
// for the RV32I and RV64I base integer ISAs.
package insts

// Opcode is the major opcode held in bits [6:0] of an instruction word.
type Opcode uint8

// RV32I base opcode groups.
const (
	OpcodeLUI     Opcode = 0b0110111
	OpcodeAUIPC   Opcode = 0b0010111
	OpcodeJAL     Opcode = 0b1101111
	OpcodeJALR    Opcode = 0b1100111
	OpcodeBranch  Opcode = 0b1100011
	OpcodeLoad    Opcode = 0b0000011
	OpcodeStore   Opcode = 0b0100011
	OpcodeOpImm   Opcode = 0b0010011
	OpcodeOp      Opcode = 0b0110011
	OpcodeMiscMem Opcode = 0b0001111
	OpcodeSystem  Opcode = 0b1110011
)

// RV64-only word-operation groups.
const (
	OpcodeOpImm32 Opcode = 0b0011011
	OpcodeOp32    Opcode = 0b0111011
)

// OpcodeOf extracts the major opcode from an instruction word.
func OpcodeOf(word uint32) Opcode {
	return Opcode(word & 0b1111111)
}
