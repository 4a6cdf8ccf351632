package cpu

// Branch instructions: JMP/Jcond, CALL/Ccond, RET/Rcond, RST, PCHL.
//
// Condition evaluation rejects AuxCarry outright -- the 8080 has no branch
// condition tied to it, and conditionTrue would otherwise have to invent a
// meaning for it. The decode table never produces such a Condition (its
// 3-bit ccc field only ever spans the eight real conditions), so this path
// is unreachable in practice but documented all the same.
func (s *State) conditionTrue(cond Condition) bool {
	switch cond {
	case NZ:
		return !s.Flags.Zero
	case Z:
		return s.Flags.Zero
	case NC:
		return !s.Flags.Carry
	case C:
		return s.Flags.Carry
	case PO:
		return !s.Flags.Parity
	case PE:
		return s.Flags.Parity
	case P:
		return !s.Flags.Sign
	case M:
		return s.Flags.Sign
	default:
		panic(errUnsupportedConditionFlagPanic(cond))
	}
}

func (s *State) jmp(addr uint16) {
	s.PC = addr
}

// jcond returns whether the jump was taken, so the runner can charge the
// right cycle count.
func (s *State) jcond(cond Condition, addr uint16) bool {
	if !s.conditionTrue(cond) {
		return false
	}
	s.PC = addr
	return true
}

func (s *State) call(addr uint16) {
	s.push16(s.PC)
	s.PC = addr
}

func (s *State) ccond(cond Condition, addr uint16) bool {
	if !s.conditionTrue(cond) {
		return false
	}
	s.call(addr)
	return true
}

func (s *State) ret() {
	s.PC = s.pop16()
}

func (s *State) rcond(cond Condition) bool {
	if !s.conditionTrue(cond) {
		return false
	}
	s.ret()
	return true
}

// rst validates n against the 3-bit encoding every RST opcode carries (the
// decode table can only ever produce 0-7, so the panic path is unreachable
// via Decode, only via a hand-built Instruction).
func (s *State) rst(n uint8) {
	if n >= 8 {
		panic(errInvalidResetIndexPanic(n))
	}
	s.call(uint16(n) * 8)
}

func (s *State) pchl() {
	s.PC = s.FullRPValue(HL)
}
