// Package cpu implements the Intel 8080 microprocessor: its register file,
// flags, the total decoder over all 256 opcodes, every instruction family,
// and the fetch-decode-execute runner that drives them.
package cpu

import (
	"i8080/bits"
	"i8080/mem"
	"i8080/ports"
)

// State is the entire machine: registers, flags, program counter, stack
// pointer, interrupt-enable latch, halt latch, a cycle counter, and the
// Memory/Ports it runs against. It has no internal locking -- Step is a
// synchronous call, and the host is responsible for serializing access (see
// spec's concurrency model).
type State struct {
	Registers [numRegisters]uint8
	Flags     Flags

	PC uint16
	SP uint16

	// IME (interrupt master enable) is set by EI and cleared by DI or by
	// the core itself when an interrupt is taken. Named for the same
	// concept under its common emulator-literature abbreviation rather
	// than the spec's "are_interrupts_enabled", matching this codebase's
	// preference for short field names (Cpu.Flags, not
	// Cpu.StatusRegister).
	IME bool

	// Halted is set by HLT and cleared only by State.Interrupt or an
	// explicit host reset. A halted State's Step is a no-op that still
	// consumes cycles, matching real hardware sitting in its halt state
	// waiting for an interrupt.
	Halted bool

	// Cycles counts the total number of 8080 clock cycles consumed by
	// every Step call so far.
	Cycles uint64

	Memory *mem.Memory
	Ports  ports.Ports
}

// New returns a State with zeroed registers and flags, SP at 0, PC at 0,
// wired to memory and p. A nil memory gets a fresh zeroed mem.Memory; a nil
// p gets ports.Null{}, matching original_source's BlankMachine default.
func New(memory *mem.Memory, p ports.Ports) *State {
	if memory == nil {
		memory = mem.New()
	}
	if p == nil {
		p = ports.Null{}
	}
	return &State{Memory: memory, Ports: p}
}

// Reg returns the value of r.
func (s *State) Reg(r Register) byte {
	return s.Registers[r]
}

// SetReg stores value in r.
func (s *State) SetReg(r Register, value byte) {
	s.Registers[r] = value
}

// FullRPValue returns the 16-bit value held in pair: the concatenation of
// its two registers for BC/DE/HL, or SP directly.
func (s *State) FullRPValue(pair RegisterPair) uint16 {
	if pair == SP {
		return s.SP
	}
	return bits.Concat(s.Reg(pair.low()), s.Reg(pair.high()))
}

// SetFullRPValue stores a 16-bit value into pair.
func (s *State) SetFullRPValue(pair RegisterPair, value uint16) {
	if pair == SP {
		s.SP = value
		return
	}
	low, high := bits.Split(value)
	s.SetReg(pair.low(), low)
	s.SetReg(pair.high(), high)
}

// MemoryAtHL returns the byte addressed by the HL pair -- the 8080's "M"
// pseudo-register.
func (s *State) MemoryAtHL() byte {
	return s.Memory.Read(s.FullRPValue(HL))
}

// SetMemoryAtHL stores value at the address addressed by HL.
func (s *State) SetMemoryAtHL(value byte) {
	s.Memory.Write(s.FullRPValue(HL), value)
}

// IncreaseRegister adds amount to the value of reg, storing the wrapped
// result back into reg, and reports the carry and auxiliary-carry that
// addition produced.
func (s *State) IncreaseRegister(reg Register, amount byte) (carry, auxCarry bool) {
	old := s.Reg(reg)
	sum := uint16(old) + uint16(amount)
	auxCarry = bits.AuxCarryAdd(old, amount, false)
	carry = sum > 0xFF
	s.SetReg(reg, byte(sum))
	return carry, auxCarry
}

// DecreaseRegister subtracts amount from the value of reg, storing the
// wrapped result back into reg, and reports the borrow and
// auxiliary-borrow that subtraction produced.
func (s *State) DecreaseRegister(reg Register, amount byte) (borrow, auxBorrow bool) {
	old := s.Reg(reg)
	borrow = old < amount
	auxBorrow = bits.AuxCarrySub(old, amount, false)
	s.SetReg(reg, old-amount)
	return borrow, auxBorrow
}

// setFlagsFromRegister updates Sign/Zero/Parity from the current value of
// reg (most commonly A).
func (s *State) setFlagsFromRegister(reg Register) {
	s.Flags.setFromResult(s.Reg(reg))
}
