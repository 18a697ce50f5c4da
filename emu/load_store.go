package emu

import "github.com/sarchlab/rvsim/insts"

// Load match keys: funct3. LD and LWU only exist on a 64-bit machine.
const (
	lbID  = 0b000
	lhID  = 0b001
	lwID  = 0b010
	ldID  = 0b011
	lbuID = 0b100
	lhuID = 0b101
	lwuID = 0b110
)

// Store match keys: funct3. SD only exists on a 64-bit machine.
const (
	sbID = 0b000
	shID = 0b001
	swID = 0b010
	sdID = 0b011
)

// effectiveAddr forms rs1 + sign_extend(imm) mod 2^XLEN, widened for
// memory indexing.
func effectiveAddr[T Word](base T, imm insts.U12) uint64 {
	return uint64(base + immWord[T](imm))
}

// executeLoad executes the LOAD group. A failing bounds check leaves rd
// untouched; an rd of x0 still performs the memory read and its bounds
// check before the write is discarded.
func executeLoad[T Word](inst insts.I, regs *RegFile[T], mem *Memory) error {
	addr := effectiveAddr(regs.ReadReg(inst.Rs1), inst.Imm)

	var value T
	switch inst.ID() {
	case lbID:
		b, err := mem.Read8(addr)
		if err != nil {
			return err
		}
		value = T(int64(int8(b)))
	case lhID:
		h, err := mem.Read16(addr)
		if err != nil {
			return err
		}
		value = T(int64(int16(h)))
	case lwID:
		w, err := mem.Read32(addr)
		if err != nil {
			return err
		}
		value = extendSigned32[T](w)
	case ldID:
		if xlen[T]() != 64 {
			return errIllegal
		}
		d, err := mem.Read64(addr)
		if err != nil {
			return err
		}
		value = T(d)
	case lbuID:
		b, err := mem.Read8(addr)
		if err != nil {
			return err
		}
		value = T(b)
	case lhuID:
		h, err := mem.Read16(addr)
		if err != nil {
			return err
		}
		value = T(h)
	case lwuID:
		if xlen[T]() != 64 {
			return errIllegal
		}
		w, err := mem.Read32(addr)
		if err != nil {
			return err
		}
		value = T(w)
	default:
		return errIllegal
	}

	regs.WriteReg(inst.Rd, value)
	return nil
}

// executeStore executes the STORE group. A failing bounds check leaves
// memory untouched.
func executeStore[T Word](inst insts.S, regs *RegFile[T], mem *Memory) error {
	addr := effectiveAddr(regs.ReadReg(inst.Rs1), inst.Imm)
	src2 := regs.ReadReg(inst.Rs2)

	switch inst.ID() {
	case sbID:
		return mem.Write8(addr, uint8(uint64(src2)))
	case shID:
		return mem.Write16(addr, uint16(uint64(src2)))
	case swID:
		return mem.Write32(addr, uint32(uint64(src2)))
	case sdID:
		if xlen[T]() != 64 {
			return errIllegal
		}
		return mem.Write64(addr, uint64(src2))
	default:
		return errIllegal
	}
}
