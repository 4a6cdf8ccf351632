package cpu

import "i8080/bits"

// Stack instructions: PUSH/POP over BC/DE/HL, PUSH PSW/POP PSW, XTHL, SPHL,
// and the interrupt-enable latch instructions EI/DI.
//
// push16/pop16 implement the shared byte ordering every stack-touching
// instruction uses (CALL/RET/RST included, in instr_branch.go): the high
// byte is pushed first, landing at SP-1, with the low byte at SP-2, so a
// pop reads low-then-high off the bottom of the pushed pair.

func (s *State) push16(value uint16) {
	low, high := bits.Split(value)
	s.SP--
	s.Memory.Write(s.SP, high)
	s.SP--
	s.Memory.Write(s.SP, low)
}

func (s *State) pop16() uint16 {
	low := s.Memory.Read(s.SP)
	s.SP++
	high := s.Memory.Read(s.SP)
	s.SP++
	return bits.Concat(low, high)
}

func (s *State) push(src Location) {
	if src.Pair == SP {
		panic(errInvalidRegisterPairPanic(src.Pair))
	}
	s.push16(s.FullRPValue(src.Pair))
}

func (s *State) pop(dst Location) {
	if dst.Pair == SP {
		panic(errInvalidRegisterPairPanic(dst.Pair))
	}
	s.SetFullRPValue(dst.Pair, s.pop16())
}

func (s *State) pushPsw() {
	s.push16(bits.Concat(s.Flags.PSW(), s.Reg(A)))
}

func (s *State) popPsw() {
	low, high := bits.Split(s.pop16())
	s.Flags = FlagsFromPSW(low)
	s.SetReg(A, high)
}

func (s *State) xthl() {
	l := s.Memory.Read(s.SP)
	h := s.Memory.Read(s.SP + 1)
	s.Memory.Write(s.SP, s.Reg(L))
	s.Memory.Write(s.SP+1, s.Reg(H))
	s.SetReg(L, l)
	s.SetReg(H, h)
}

func (s *State) sphl() {
	s.SP = s.FullRPValue(HL)
}

func (s *State) ei() {
	s.IME = true
}

func (s *State) di() {
	s.IME = false
}
