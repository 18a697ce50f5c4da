package emu

import "encoding/binary"

// Memory is a contiguous byte buffer, little-endian throughout. All
// typed accessors bounds-check the full access range first: a failing
// access performs no partial read or write and never wraps.
type Memory struct {
	data []byte
}

// NewMemory allocates a zeroed memory buffer of the given size.
func NewMemory(size int) *Memory {
	return &Memory{data: make([]byte, size)}
}

// Size returns the buffer size in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// check validates that [addr, addr+size) lies inside the buffer.
func (m *Memory) check(addr uint64, size int) error {
	if addr > uint64(len(m.data)) || uint64(size) > uint64(len(m.data))-addr {
		return &OutOfBoundsError{Addr: addr, Size: size}
	}
	return nil
}

// Read8 reads one byte.
func (m *Memory) Read8(addr uint64) (uint8, error) {
	if err := m.check(addr, 1); err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

// Read16 reads a little-endian 16-bit value.
func (m *Memory) Read16(addr uint64) (uint16, error) {
	if err := m.check(addr, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(m.data[addr:]), nil
}

// Read32 reads a little-endian 32-bit value.
func (m *Memory) Read32(addr uint64) (uint32, error) {
	if err := m.check(addr, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(m.data[addr:]), nil
}

// Read64 reads a little-endian 64-bit value.
func (m *Memory) Read64(addr uint64) (uint64, error) {
	if err := m.check(addr, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(m.data[addr:]), nil
}

// Write8 writes one byte.
func (m *Memory) Write8(addr uint64, value uint8) error {
	if err := m.check(addr, 1); err != nil {
		return err
	}
	m.data[addr] = value
	return nil
}

// Write16 writes a little-endian 16-bit value.
func (m *Memory) Write16(addr uint64, value uint16) error {
	if err := m.check(addr, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(m.data[addr:], value)
	return nil
}

// Write32 writes a little-endian 32-bit value.
func (m *Memory) Write32(addr uint64, value uint32) error {
	if err := m.check(addr, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(m.data[addr:], value)
	return nil
}

// Write64 writes a little-endian 64-bit value.
func (m *Memory) Write64(addr uint64, value uint64) error {
	if err := m.check(addr, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(m.data[addr:], value)
	return nil
}

// WriteBytes copies a byte slice into memory at the given address.
func (m *Memory) WriteBytes(addr uint64, data []byte) error {
	if err := m.check(addr, len(data)); err != nil {
		return err
	}
	copy(m.data[addr:], data)
	return nil
}

// Zero clears size bytes starting at the given address.
func (m *Memory) Zero(addr uint64, size int) error {
	if err := m.check(addr, size); err != nil {
		return err
	}
	clear(m.data[addr : addr+uint64(size)])
	return nil
}
