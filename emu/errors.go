package emu

import (
	"errors"
	"fmt"
)

// errIllegal is the internal marker the executors return for encodings
// that match no instruction. The dispatcher converts it into an
// IllegalInstructionError carrying the offending word and PC.
var errIllegal = errors.New("illegal instruction")

// IllegalInstructionError reports an encoding that matches no known
// mnemonic for the active XLEN.
type IllegalInstructionError struct {
	PC   uint64
	Word uint32
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction 0x%08X at PC=0x%X", e.Word, e.PC)
}

// OutOfBoundsError reports a memory access whose byte range exceeds the
// memory buffer.
type OutOfBoundsError struct {
	Addr uint64
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds: %d bytes at 0x%X", e.Size, e.Addr)
}

// MisalignedFetchError reports an instruction fetch from a PC that is
// not 4-byte aligned.
type MisalignedFetchError struct {
	PC uint64
}

func (e *MisalignedFetchError) Error() string {
	return fmt.Sprintf("misaligned instruction fetch at PC=0x%X", e.PC)
}
