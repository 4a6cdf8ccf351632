package main

import (
	"github.com/davecgh/go-spew/spew"

	"i8080/cpu"
)

// dumpState prints a raw, recursive dump of s's registers and flags, the
// way the teacher's debugger dumps the decoded Opcode at the cursor.
func dumpState(s *cpu.State) {
	spew.Dump(struct {
		PC, SP   uint16
		A, B, C  uint8
		D, E     uint8
		H, L     uint8
		Flags    cpu.Flags
		IME      bool
		Halted   bool
		Cycles   uint64
	}{
		PC: s.PC, SP: s.SP,
		A: s.Reg(cpu.A), B: s.Reg(cpu.B), C: s.Reg(cpu.C),
		D: s.Reg(cpu.D), E: s.Reg(cpu.E),
		H: s.Reg(cpu.H), L: s.Reg(cpu.L),
		Flags: s.Flags, IME: s.IME, Halted: s.Halted, Cycles: s.Cycles,
	})
}
