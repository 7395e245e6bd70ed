package vm

import "log"

// NotReadableByte is the sentinel value returned by reads from unmapped or
// unreadable memory.
const NotReadableByte uint8 = 0xFF

// Memory is a flat byte-addressable region with independent read/write
// permission bits. Out-of-range or disallowed accesses never panic: reads
// return NotReadableByte and log a warning, writes are silently dropped
// after logging a warning.
type Memory struct {
	Name     string
	bytes    []uint8
	Readable bool
	Writable bool
}

// NewMemory allocates a zeroed Memory region of the given size.
func NewMemory(name string, size int, readable, writable bool) *Memory {
	return &Memory{Name: name, bytes: make([]uint8, size), Readable: readable, Writable: writable}
}

// Len returns the size of the region in bytes.
func (m *Memory) Len() int { return len(m.bytes) }

// ReadByte reads a single byte at offset.
func (m *Memory) ReadByte(offset uint32) uint8 {
	if !m.Readable || int(offset) >= len(m.bytes) {
		log.Printf("warning: read from unreadable %s offset %#X", m.Name, offset)
		return NotReadableByte
	}
	return m.bytes[offset]
}

// WriteByte writes a single byte at offset.
func (m *Memory) WriteByte(offset uint32, val uint8) {
	if !m.Writable || int(offset) >= len(m.bytes) {
		log.Printf("warning: write to unwritable %s offset %#X", m.Name, offset)
		return
	}
	m.bytes[offset] = val
}

// ReadWord reads a little-endian 16-bit word at offset.
func (m *Memory) ReadWord(offset uint32) uint16 {
	lo := m.ReadByte(offset)
	hi := m.ReadByte(offset + 1)
	return CombineU8BE(hi, lo)
}

// WriteWord writes a little-endian 16-bit word at offset.
func (m *Memory) WriteWord(offset uint32, val uint16) {
	hi, lo := SplitWord(val)
	m.WriteByte(offset, lo)
	m.WriteByte(offset+1, hi)
}

// ReadDword reads a little-endian 32-bit double word at offset.
func (m *Memory) ReadDword(offset uint32) uint32 {
	lo := m.ReadWord(offset)
	hi := m.ReadWord(offset + 2)
	return CombineU16BE(hi, lo)
}

// WriteDword writes a little-endian 32-bit double word at offset.
func (m *Memory) WriteDword(offset uint32, val uint32) {
	hi, lo := SplitDword(val)
	m.WriteWord(offset, lo)
	m.WriteWord(offset+2, hi)
}

// LoadBytes copies src into the region starting at offset, bypassing the
// write-permission check (used by the program loader to install ROM
// contents before execution begins).
func (m *Memory) LoadBytes(offset uint32, src []byte) {
	copy(m.bytes[offset:], src)
}
