package insts

// Bounded unsigned integers for the narrow bit-fields of an instruction
// word. Each width has a checked constructor that rejects out-of-range
// values and a truncating constructor that masks with (1<<N)-1. The
// stored value is always < 2^N. SignExtend interprets the top bit as a
// sign and widens to the next natural signed width.

// U2 is a 2-bit unsigned value.
type U2 uint8

// U3 is a 3-bit unsigned value (funct3).
type U3 uint8

// U4 is a 4-bit unsigned value (fence fm/pred/succ).
type U4 uint8

// U5 is a 5-bit unsigned value (register numbers, RV32 shamt).
type U5 uint8

// U6 is a 6-bit unsigned value (RV64 shamt).
type U6 uint8

// U7 is a 7-bit unsigned value (funct7, shift prefix).
type U7 uint8

// U12 is a 12-bit unsigned value (I and S immediates).
type U12 uint16

// U13 is a 13-bit unsigned value (B immediate, bit 0 always clear).
type U13 uint16

// U21 is a 21-bit unsigned value (J immediate, bit 0 always clear).
type U21 uint32

// Bit widths.
const (
	U2Bits  = 2
	U3Bits  = 3
	U4Bits  = 4
	U5Bits  = 5
	U6Bits  = 6
	U7Bits  = 7
	U12Bits = 12
	U13Bits = 13
	U21Bits = 21
)

// Bitmasks, (1<<N)-1.
const (
	U2Mask  uint8  = 1<<U2Bits - 1
	U3Mask  uint8  = 1<<U3Bits - 1
	U4Mask  uint8  = 1<<U4Bits - 1
	U5Mask  uint8  = 1<<U5Bits - 1
	U6Mask  uint8  = 1<<U6Bits - 1
	U7Mask  uint8  = 1<<U7Bits - 1
	U12Mask uint16 = 1<<U12Bits - 1
	U13Mask uint16 = 1<<U13Bits - 1
	U21Mask uint32 = 1<<U21Bits - 1
)

// NewU2 returns the value as a U2, or false if it does not fit in 2 bits.
func NewU2(v uint8) (U2, bool) {
	if v > uint8(U2Mask) {
		return 0, false
	}
	return U2(v), true
}

// U2Truncate masks the value to its low 2 bits.
func U2Truncate(v uint8) U2 { return U2(v & U2Mask) }

// Uint8 zero-extends to uint8.
func (u U2) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U2) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 1.
func (u U2) SignExtend() int8 { return int8(u<<6) >> 6 }

// NewU3 returns the value as a U3, or false if it does not fit in 3 bits.
func NewU3(v uint8) (U3, bool) {
	if v > uint8(U3Mask) {
		return 0, false
	}
	return U3(v), true
}

// U3Truncate masks the value to its low 3 bits.
func U3Truncate(v uint8) U3 { return U3(v & U3Mask) }

// Uint8 zero-extends to uint8.
func (u U3) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U3) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 2.
func (u U3) SignExtend() int8 { return int8(u<<5) >> 5 }

// NewU4 returns the value as a U4, or false if it does not fit in 4 bits.
func NewU4(v uint8) (U4, bool) {
	if v > uint8(U4Mask) {
		return 0, false
	}
	return U4(v), true
}

// U4Truncate masks the value to its low 4 bits.
func U4Truncate(v uint8) U4 { return U4(v & U4Mask) }

// Uint8 zero-extends to uint8.
func (u U4) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U4) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 3.
func (u U4) SignExtend() int8 { return int8(u<<4) >> 4 }

// NewU5 returns the value as a U5, or false if it does not fit in 5 bits.
func NewU5(v uint8) (U5, bool) {
	if v > uint8(U5Mask) {
		return 0, false
	}
	return U5(v), true
}

// U5Truncate masks the value to its low 5 bits.
func U5Truncate(v uint8) U5 { return U5(v & U5Mask) }

// Uint8 zero-extends to uint8.
func (u U5) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U5) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 4.
func (u U5) SignExtend() int8 { return int8(u<<3) >> 3 }

// NewU6 returns the value as a U6, or false if it does not fit in 6 bits.
func NewU6(v uint8) (U6, bool) {
	if v > uint8(U6Mask) {
		return 0, false
	}
	return U6(v), true
}

// U6Truncate masks the value to its low 6 bits.
func U6Truncate(v uint8) U6 { return U6(v & U6Mask) }

// Uint8 zero-extends to uint8.
func (u U6) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U6) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 5.
func (u U6) SignExtend() int8 { return int8(u<<2) >> 2 }

// NewU7 returns the value as a U7, or false if it does not fit in 7 bits.
func NewU7(v uint8) (U7, bool) {
	if v > uint8(U7Mask) {
		return 0, false
	}
	return U7(v), true
}

// U7Truncate masks the value to its low 7 bits.
func U7Truncate(v uint8) U7 { return U7(v & U7Mask) }

// Uint8 zero-extends to uint8.
func (u U7) Uint8() uint8 { return uint8(u) }

// Uint32 zero-extends to uint32.
func (u U7) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int8, replicating bit 6.
func (u U7) SignExtend() int8 { return int8(u<<1) >> 1 }

// NewU12 returns the value as a U12, or false if it does not fit in 12 bits.
func NewU12(v uint16) (U12, bool) {
	if v > U12Mask {
		return 0, false
	}
	return U12(v), true
}

// U12Truncate masks the value to its low 12 bits.
func U12Truncate(v uint16) U12 { return U12(v & U12Mask) }

// Uint16 zero-extends to uint16.
func (u U12) Uint16() uint16 { return uint16(u) }

// Uint32 zero-extends to uint32.
func (u U12) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int16, replicating bit 11.
func (u U12) SignExtend() int16 { return int16(u<<4) >> 4 }

// NewU13 returns the value as a U13, or false if it does not fit in 13 bits.
func NewU13(v uint16) (U13, bool) {
	if v > U13Mask {
		return 0, false
	}
	return U13(v), true
}

// U13Truncate masks the value to its low 13 bits.
func U13Truncate(v uint16) U13 { return U13(v & U13Mask) }

// Uint16 zero-extends to uint16.
func (u U13) Uint16() uint16 { return uint16(u) }

// Uint32 zero-extends to uint32.
func (u U13) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int16, replicating bit 12.
func (u U13) SignExtend() int16 { return int16(u<<3) >> 3 }

// NewU21 returns the value as a U21, or false if it does not fit in 21 bits.
func NewU21(v uint32) (U21, bool) {
	if v > U21Mask {
		return 0, false
	}
	return U21(v), true
}

// U21Truncate masks the value to its low 21 bits.
func U21Truncate(v uint32) U21 { return U21(v & U21Mask) }

// Uint32 zero-extends to uint32.
func (u U21) Uint32() uint32 { return uint32(u) }

// SignExtend widens to int32, replicating bit 20.
func (u U21) SignExtend() int32 { return int32(u<<11) >> 11 }
