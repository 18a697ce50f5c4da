package emu

import "github.com/sarchlab/rvsim/insts"

// RegFile holds the 31 stored architectural registers x1-x31. Register
// x0 has no backing slot: reads yield zero without touching storage and
// writes are silently discarded, which is exactly the hardwired-zero
// contract of the ISA.
type RegFile[T Word] struct {
	x [31]T
}

// ReadReg returns the value of a register. Register 0 always reads zero.
func (r *RegFile[T]) ReadReg(reg insts.U5) T {
	if reg == 0 {
		return 0
	}
	return r.x[reg.Uint8()-1]
}

// WriteReg sets the value of a register. Writes to register 0 vanish.
func (r *RegFile[T]) WriteReg(reg insts.U5, value T) {
	if reg == 0 {
		return
	}
	r.x[reg.Uint8()-1] = value
}
