// Package emu provides functional RV32I/RV64I emulation.
package emu

import "github.com/sarchlab/rvsim/insts"

// Word constrains the machine word. The same kernels run as a 32-bit or
// a 64-bit machine depending on the instantiation; Go's defined
// conversion and wrap-around semantics supply the two's-complement
// behavior the ISA requires.
type Word interface {
	~uint32 | ~uint64
}

// xlen reports the width of the machine word in bits.
func xlen[T Word]() uint {
	if uint64(^T(0)) == 0xFFFFFFFF {
		return 32
	}
	return 64
}

// signedOf reinterprets the word as a signed value, widened to int64.
func signedOf[T Word](v T) int64 {
	if xlen[T]() == 32 {
		return int64(int32(uint32(v)))
	}
	return int64(uint64(v))
}

// sll shifts left, masking the amount to XLEN-1 bits.
func sll[T Word](v T, sh uint) T {
	return v << (sh & (xlen[T]() - 1))
}

// srl shifts right logically, masking the amount to XLEN-1 bits.
func srl[T Word](v T, sh uint) T {
	return v >> (sh & (xlen[T]() - 1))
}

// sra shifts right arithmetically, masking the amount to XLEN-1 bits.
func sra[T Word](v T, sh uint) T {
	sh &= xlen[T]() - 1
	if xlen[T]() == 32 {
		return T(uint32(int32(uint32(v)) >> sh))
	}
	return T(uint64(int64(uint64(v)) >> sh))
}

// immWord materializes a sign-extended 12-bit immediate as a machine word.
func immWord[T Word](imm insts.U12) T {
	return T(int64(imm.SignExtend()))
}

// branchOffset materializes a sign-extended 13-bit branch offset.
func branchOffset[T Word](imm insts.U13) T {
	return T(int64(imm.SignExtend()))
}

// jumpOffset materializes a sign-extended 21-bit jump offset.
func jumpOffset[T Word](imm insts.U21) T {
	return T(int64(imm.SignExtend()))
}

// upperImm materializes a U-format immediate. The low 12 bits are already
// zero; on a 64-bit machine bit 31 sign-extends into the upper half.
func upperImm[T Word](imm uint32) T {
	return T(int64(int32(imm)))
}

// extendSigned32 sign-extends a 32-bit result into the machine word.
func extendSigned32[T Word](v uint32) T {
	return T(int64(int32(v)))
}
