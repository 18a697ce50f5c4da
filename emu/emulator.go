package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/rvsim/insts"
)

// StepOutcome classifies the result of executing a single instruction.
type StepOutcome uint8

// Step outcomes.
const (
	// OutcomeContinue means the instruction retired normally.
	OutcomeContinue StepOutcome = iota
	// OutcomeEnvCall means an ECALL surfaced; handling belongs to the host.
	OutcomeEnvCall
	// OutcomeBreakpoint means an EBREAK surfaced.
	OutcomeBreakpoint
	// OutcomeFault means execution stopped with an error; architectural
	// state is unchanged and the PC still addresses the faulting word.
	OutcomeFault
)

// String implements fmt.Stringer.
func (o StepOutcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeEnvCall:
		return "environment call"
	case OutcomeBreakpoint:
		return "breakpoint"
	case OutcomeFault:
		return "fault"
	default:
		return fmt.Sprintf("StepOutcome(%d)", uint8(o))
	}
}

// StepResult is the result of executing a single instruction.
type StepResult struct {
	Outcome StepOutcome

	// Err is set when Outcome is OutcomeFault.
	Err error
}

// Segment is a loadable program segment: raw bytes placed at a physical
// address. MemSize may exceed len(Data); the tail is zero-filled (BSS).
type Segment struct {
	Addr    uint64
	Data    []byte
	MemSize uint64
}

// Emulator executes RV32I or RV64I instructions functionally, depending
// on the machine-word instantiation. One emulator owns its registers,
// memory, and PC exclusively; Step and Run must not be called
// concurrently.
type Emulator[T Word] struct {
	regFile *RegFile[T]
	memory  *Memory
	pc      T

	instructionCount uint64
	maxInstructions  uint64
}

// Option configures an Emulator.
type Option func(*options)

type options struct {
	maxInstructions uint64
}

// WithMaxInstructions caps the number of instructions Step will execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) Option {
	return func(o *options) {
		o.maxInstructions = max
	}
}

// NewRV32 creates a 32-bit emulator with zeroed registers and memBytes
// of zeroed memory.
func NewRV32(memBytes int, opts ...Option) *Emulator[uint32] {
	return newEmulator[uint32](memBytes, opts)
}

// NewRV64 creates a 64-bit emulator with zeroed registers and memBytes
// of zeroed memory.
func NewRV64(memBytes int, opts ...Option) *Emulator[uint64] {
	return newEmulator[uint64](memBytes, opts)
}

func newEmulator[T Word](memBytes int, opts []Option) *Emulator[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Emulator[T]{
		regFile:         &RegFile[T]{},
		memory:          NewMemory(memBytes),
		maxInstructions: o.maxInstructions,
	}
}

// RegFile returns the emulator's register file.
func (e *Emulator[T]) RegFile() *RegFile[T] {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator[T]) Memory() *Memory {
	return e.memory
}

// PC returns the program counter.
func (e *Emulator[T]) PC() T {
	return e.pc
}

// SetPC sets the program counter, normally to the ELF entry point.
func (e *Emulator[T]) SetPC(entry T) {
	e.pc = entry
}

// InstructionCount returns the number of instructions retired.
func (e *Emulator[T]) InstructionCount() uint64 {
	return e.instructionCount
}

// Load writes each segment at its physical address and zero-fills any
// BSS tail. It fails with an OutOfBoundsError if a segment exceeds the
// memory buffer.
func (e *Emulator[T]) Load(segments []Segment) error {
	for _, seg := range segments {
		if err := e.memory.WriteBytes(seg.Addr, seg.Data); err != nil {
			return fmt.Errorf("loading segment at 0x%X: %w", seg.Addr, err)
		}
		if tail := int(seg.MemSize) - len(seg.Data); tail > 0 {
			addr := seg.Addr + uint64(len(seg.Data))
			if err := e.memory.Zero(addr, tail); err != nil {
				return fmt.Errorf("zeroing segment tail at 0x%X: %w", addr, err)
			}
		}
	}
	return nil
}

// Step fetches, decodes, and executes exactly one instruction from the
// PC. On a fault the PC is not advanced, so the host can inspect the
// offending instruction.
func (e *Emulator[T]) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{
			Outcome: OutcomeFault,
			Err:     fmt.Errorf("instruction budget of %d exhausted", e.maxInstructions),
		}
	}

	pc := uint64(e.pc)
	if pc%4 != 0 {
		return StepResult{Outcome: OutcomeFault, Err: &MisalignedFetchError{PC: pc}}
	}

	word, err := e.memory.Read32(pc)
	if err != nil {
		return StepResult{
			Outcome: OutcomeFault,
			Err:     fmt.Errorf("instruction fetch at PC=0x%X: %w", pc, err),
		}
	}

	result := e.execute(word)
	if result.Outcome != OutcomeFault {
		e.instructionCount++
	}
	return result
}

// Run repeatedly steps until a non-continue outcome or, when maxSteps is
// non-zero, until the step budget is spent.
func (e *Emulator[T]) Run(maxSteps uint64) StepResult {
	for n := uint64(0); maxSteps == 0 || n < maxSteps; n++ {
		result := e.Step()
		if result.Outcome != OutcomeContinue {
			return result
		}
	}
	return StepResult{Outcome: OutcomeContinue}
}

// execute dispatches a fetched word to its format executor. Executors
// for jumps and branches set the PC themselves; every other instruction
// advances it by 4 after retiring.
func (e *Emulator[T]) execute(word uint32) StepResult {
	var err error
	advance := true

	switch op := insts.OpcodeOf(word); op {
	case insts.OpcodeLUI:
		executeLUI(insts.DecodeU(word), e.regFile)
	case insts.OpcodeAUIPC:
		executeAUIPC(insts.DecodeU(word), e.regFile, e.pc)
	case insts.OpcodeJAL:
		executeJAL(insts.DecodeJ(word), e.regFile, &e.pc)
		advance = false
	case insts.OpcodeJALR:
		err = executeJALR(insts.DecodeI(word), e.regFile, &e.pc)
		advance = false
	case insts.OpcodeBranch:
		err = executeBranch(insts.DecodeB(word), e.regFile, &e.pc)
		advance = false
	case insts.OpcodeLoad:
		err = executeLoad(insts.DecodeI(word), e.regFile, e.memory)
	case insts.OpcodeStore:
		err = executeStore(insts.DecodeS(word), e.regFile, e.memory)
	case insts.OpcodeOpImm:
		inst := insts.DecodeI(word)
		if inst.Funct3 == 0b001 || inst.Funct3 == 0b101 {
			err = executeShiftI(insts.ShiftFromI(inst), e.regFile)
		} else {
			err = executeMathI(inst, e.regFile)
		}
	case insts.OpcodeOp:
		err = executeMath(insts.DecodeR(word), e.regFile)
	case insts.OpcodeMiscMem:
		// FENCE decodes but orders nothing: a single in-order hart
		// already executes in program order.
		_ = insts.DecodeFence(word)
	case insts.OpcodeSystem:
		return e.executeSystem(word)
	case insts.OpcodeOpImm32:
		if xlen[T]() != 64 {
			err = errIllegal
			break
		}
		inst := insts.DecodeI(word)
		if inst.Funct3 == 0b000 {
			err = executeMathIW(inst, e.regFile)
		} else {
			err = executeShiftIW(insts.ShiftFromI(inst), e.regFile)
		}
	case insts.OpcodeOp32:
		if xlen[T]() != 64 {
			err = errIllegal
			break
		}
		err = executeMathW(insts.DecodeR(word), e.regFile)
	default:
		err = errIllegal
	}

	if err != nil {
		return StepResult{Outcome: OutcomeFault, Err: e.faultError(word, err)}
	}
	if advance {
		e.pc += 4
	}
	return StepResult{Outcome: OutcomeContinue}
}

// executeSystem surfaces ECALL and EBREAK to the host. The PC advances
// past the trapping instruction so the host can resume at the next one.
func (e *Emulator[T]) executeSystem(word uint32) StepResult {
	inst := insts.DecodeI(word)
	if inst.Funct3 != 0b000 {
		return StepResult{Outcome: OutcomeFault, Err: e.faultError(word, errIllegal)}
	}

	switch inst.Imm {
	case 0:
		e.pc += 4
		return StepResult{Outcome: OutcomeEnvCall}
	case 1:
		e.pc += 4
		return StepResult{Outcome: OutcomeBreakpoint}
	default:
		return StepResult{Outcome: OutcomeFault, Err: e.faultError(word, errIllegal)}
	}
}

// faultError attaches PC and word context to an executor error.
func (e *Emulator[T]) faultError(word uint32, err error) error {
	if errors.Is(err, errIllegal) {
		return &IllegalInstructionError{PC: uint64(e.pc), Word: word}
	}
	return err
}
