// Package loader provides ELF binary loading for RISC-V executables.
package loader

import (
	"debug/elf"
	"fmt"
	"io"
)

// Class is the ELF class of a loaded binary, which must match the
// emulated machine width.
type Class uint8

// ELF classes.
const (
	Class32 Class = 32
	Class64 Class = 64
)

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the physical/virtual address where this segment
	// should be placed.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
}

// Program represents a loaded ELF program ready for execution.
type Program struct {
	// EntryPoint is the address where execution should begin.
	EntryPoint uint64
	// Class is 32 or 64, matching RV32 or RV64.
	Class Class
	// Segments contains all loadable segments from the ELF file.
	Segments []Segment
}

// Load parses a little-endian RISC-V ELF binary and returns a Program
// ready for loading into the emulator's memory. Both 32-bit and 64-bit
// binaries are accepted; the caller matches Class against its machine.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("not a RISC-V ELF file (machine type: %v)", f.Machine)
	}
	if f.Data != elf.ELFDATA2LSB {
		return nil, fmt.Errorf("not a little-endian ELF file")
	}

	var class Class
	switch f.Class {
	case elf.ELFCLASS32:
		class = Class32
	case elf.ELFCLASS64:
		class = Class64
	default:
		return nil, fmt.Errorf("unsupported ELF class: %v", f.Class)
	}

	prog := &Program{
		EntryPoint: f.Entry,
		Class:      class,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
		})
	}

	return prog, nil
}
