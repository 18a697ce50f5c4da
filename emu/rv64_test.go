package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/emu"
)

var _ = Describe("Emulator (RV64)", func() {
	var e *emu.Emulator[uint64]

	BeforeEach(func() {
		e = emu.NewRV64(4096)
	})

	loadAt := func(addr uint64, words ...uint32) {
		Expect(e.Load([]emu.Segment{{Addr: addr, Data: program(words...)}})).To(Succeed())
		e.SetPC(addr)
	}

	Describe("word immediates", func() {
		It("should sign-extend ADDIW and zero-fill SRLIW", func() {
			loadAt(0,
				encodeI(opOpImm32, -1, 0, 0b000, 1), // ADDIW x1, x0, -1
				encodeI(opOpImm32, 1, 1, 0b101, 2),  // SRLIW x2, x1, 1
			)

			e.Step()
			e.Step()
			Expect(e.RegFile().ReadReg(reg(1))).To(Equal(uint64(0xFFFFFFFFFFFFFFFF)))
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0x000000007FFFFFFF)))
		})

		It("should wrap ADDIW in 32-bit arithmetic", func() {
			e.RegFile().WriteReg(reg(1), 0x7FFFFFFF)
			loadAt(0, encodeI(opOpImm32, 1, 1, 0b000, 2)) // ADDIW x2, x1, 1

			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0xFFFFFFFF80000000)))
		})

		It("should ignore the high operand half in SLLIW", func() {
			e.RegFile().WriteReg(reg(1), 0xFFFFFFFF00000001)
			loadAt(0, encodeI(opOpImm32, 4, 1, 0b001, 2)) // SLLIW x2, x1, 4

			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0x10)))
		})

		It("should fill SRAIW of a negative word with ones", func() {
			e.RegFile().WriteReg(reg(1), 0x0000000080000000)
			loadAt(0, encodeI(opOpImm32, 0b0100000_00100, 1, 0b101, 2)) // SRAIW x2, x1, 4

			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0xFFFFFFFFF8000000)))
		})

		It("should reject a reserved SRLIW prefix", func() {
			loadAt(0, encodeI(opOpImm32, 0b0000001_00001, 1, 0b101, 2))

			Expect(e.Step().Outcome).To(Equal(emu.OutcomeFault))
		})
	})

	Describe("word register operations", func() {
		It("should wrap ADDW in 32 bits and sign-extend the result", func() {
			e.RegFile().WriteReg(reg(1), 0x00000000FFFFFFFF)
			e.RegFile().WriteReg(reg(2), 1)
			loadAt(0, encodeR(opOp32, 0, 2, 1, 0b000, 3)) // ADDW x3, x1, x2

			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0)))
		})

		It("should sign-extend a negative SUBW result", func() {
			e.RegFile().WriteReg(reg(1), 0)
			e.RegFile().WriteReg(reg(2), 1)
			loadAt(0, encodeR(opOp32, 0b0100000, 2, 1, 0b000, 3)) // SUBW x3, x1, x2

			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0xFFFFFFFFFFFFFFFF)))
		})

		It("should mask the SLLW shift amount to 5 bits", func() {
			e.RegFile().WriteReg(reg(1), 1)
			e.RegFile().WriteReg(reg(2), 33)
			loadAt(0, encodeR(opOp32, 0, 2, 1, 0b001, 3)) // SLLW x3, x1, x2

			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(2)))
		})

		It("should shift arithmetically with SRAW", func() {
			e.RegFile().WriteReg(reg(1), 0x0000000080000000)
			e.RegFile().WriteReg(reg(2), 4)
			loadAt(0, encodeR(opOp32, 0b0100000, 2, 1, 0b101, 3)) // SRAW x3, x1, x2

			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0xFFFFFFFFF8000000)))
		})

		It("should reject an unknown OP-32 key", func() {
			loadAt(0, encodeR(opOp32, 0, 2, 1, 0b100, 3)) // no XORW exists

			Expect(e.Step().Outcome).To(Equal(emu.OutcomeFault))
		})
	})

	Describe("doubleword shifts", func() {
		It("should take the 6-bit shift amount from the prefix", func() {
			e.RegFile().WriteReg(reg(1), 1)
			loadAt(0, encodeI(opOpImm, 32, 1, 0b001, 2)) // SLLI x2, x1, 32

			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(1) << 32))
		})

		It("should shift arithmetically by up to 63", func() {
			e.RegFile().WriteReg(reg(1), 0x8000000000000000)
			loadAt(0, encodeI(opOpImm, 0b010000_111111, 1, 0b101, 2)) // SRAI x2, x1, 63

			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0xFFFFFFFFFFFFFFFF)))
		})

		It("should mask the register shift amount to 6 bits", func() {
			e.RegFile().WriteReg(reg(1), 0x1234)
			e.RegFile().WriteReg(reg(2), 64)
			loadAt(0, encodeR(opOp, 0, 2, 1, 0b001, 3)) // SLL x3, x1, x2

			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0x1234)))
		})
	})

	Describe("doubleword loads and stores", func() {
		It("should round-trip SD and LD", func() {
			e.RegFile().WriteReg(reg(1), 64)
			e.RegFile().WriteReg(reg(2), 0x0123456789ABCDEF)
			loadAt(0,
				encodeS(0, 2, 1, 0b011),         // SD x2, 0(x1)
				encodeI(opLoad, 0, 1, 0b011, 3), // LD x3, 0(x1)
			)

			e.Step()
			e.Step()
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0x0123456789ABCDEF)))
		})

		It("should zero-extend LWU and sign-extend LW", func() {
			e.RegFile().WriteReg(reg(1), 64)
			Expect(e.Memory().Write32(64, 0xDEADBEEF)).To(Succeed())
			loadAt(0,
				encodeI(opLoad, 0, 1, 0b110, 2), // LWU x2, 0(x1)
				encodeI(opLoad, 0, 1, 0b010, 3), // LW x3, 0(x1)
			)

			e.Step()
			e.Step()
			Expect(e.RegFile().ReadReg(reg(2))).To(Equal(uint64(0x00000000DEADBEEF)))
			Expect(e.RegFile().ReadReg(reg(3))).To(Equal(uint64(0xFFFFFFFFDEADBEEF)))
		})
	})

	Describe("upper immediates", func() {
		It("should sign-extend LUI into the upper half", func() {
			loadAt(0, encodeU(opLUI, 0x80000, 1)) // LUI x1, 0x80000

			e.Step()
			Expect(e.RegFile().ReadReg(reg(1))).To(Equal(uint64(0xFFFFFFFF80000000)))
		})

		It("should wrap AUIPC mod 2^64", func() {
			e = emu.NewRV64(0x2000) // room for an instruction at 0x1000
			loadAt(0x1000, encodeU(opAUIPC, 0x80000, 1)) // AUIPC x1, 0x80000

			e.Step()
			Expect(e.RegFile().ReadReg(reg(1))).To(Equal(uint64(0xFFFFFFFF80001000)))
		})
	})

	Describe("branch offsets", func() {
		It("should wrap the PC on a backwards branch from zero", func() {
			loadAt(0, encodeB(-8, 0, 0, 0b000)) // BEQ x0, x0, -8

			e.Step()
			Expect(e.PC()).To(Equal(uint64(0xFFFFFFFFFFFFFFF8)))
		})
	})
})
