// Package cpu provides the register file, flags, and byte-addressable
// memory backing a single emulated core.
package cpu

import "fmt"

// MemorySize is the fixed size of emulated memory in bytes. It never
// changes for the lifetime of an emulation.
const MemorySize = 65536

// Memory is a fixed-size, zero-initialized, byte-addressable block of
// emulated RAM. The zero value is an all-zero memory ready to use;
// NewMemory returns a pointer to one.
type Memory struct {
	bytes [MemorySize]byte
}

// NewMemory returns a zero-initialized 64KB memory.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryFromImage returns a memory pre-loaded with image starting at
// offset 0. image must have a length that is a positive multiple of 4 and
// no larger than MemorySize.
func NewMemoryFromImage(image []byte) (*Memory, error) {
	if len(image) == 0 || len(image)%4 != 0 {
		return nil, fmt.Errorf("cpu: image length %d is not a positive multiple of 4", len(image))
	}
	if len(image) > MemorySize {
		return nil, fmt.Errorf("cpu: image length %d exceeds memory size %d", len(image), MemorySize)
	}

	m := NewMemory()
	copy(m.bytes[:], image)
	return m, nil
}

// Len reports the fixed memory size (always MemorySize).
func (m *Memory) Len() int {
	return len(m.bytes)
}

// ReadByte reads a single byte at addr.
func (m *Memory) ReadByte(addr uint32) byte {
	return m.bytes[addr]
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint32, value byte) {
	m.bytes[addr] = value
}

// FetchLE reads four consecutive bytes starting at addr and assembles them
// into a 32-bit word in little-endian order. Undefined if addr+3 is out of
// bounds; well-formed programs never reach that condition.
func (m *Memory) FetchLE(addr uint32) uint32 {
	b := m.bytes[addr : addr+4 : addr+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// FetchBE reads four consecutive bytes starting at addr and assembles them
// into a 32-bit word in big-endian order. Used only by the test harness
// when inspecting stored words; the emulator itself always reads/writes
// little-endian.
func (m *Memory) FetchBE(addr uint32) uint32 {
	b := m.bytes[addr : addr+4 : addr+4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// StoreLE writes the four bytes of word in little-endian order at
// addr..addr+3.
func (m *Memory) StoreLE(addr uint32, word uint32) {
	b := m.bytes[addr : addr+4 : addr+4]
	b[0] = byte(word)
	b[1] = byte(word >> 8)
	b[2] = byte(word >> 16)
	b[3] = byte(word >> 24)
}
