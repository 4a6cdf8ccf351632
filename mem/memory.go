// Package mem provides the flat 64 KiB address space the 8080 core runs
// against. There is no banking, mirroring, or memory-mapped I/O here — port
// I/O is a separate concern handled by package ports.
package mem

// Memory is the 8080's entire addressable space: 64 KiB (0x0000-0xFFFF),
// zeroed on construction. A single Memory may be shared between a cpu.State
// and, for example, a debugger that wants to peek at a page without going
// through the CPU.
type Memory struct {
	Ram [64 * 1024]byte
}

// New returns a zeroed 64 KiB Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.Ram[addr]
}

// Write stores data at addr.
func (m *Memory) Write(addr uint16, data byte) {
	m.Ram[addr] = data
}

// Load copies program into memory starting at addr, truncating silently if
// it would run past the end of the address space.
func (m *Memory) Load(program []byte, addr uint16) {
	n := copy(m.Ram[addr:], program)
	_ = n
}
