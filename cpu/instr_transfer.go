package cpu

import "i8080/bits"

// Data-transfer instructions: MOV, MVI, LXI, LDA/STA, LHLD/SHLD, LDAX/STAX,
// XCHG. None of these touch the flags.

func (s *State) mov(dst, src Location) {
	value := s.readLocation(src)
	s.writeLocation(dst, value)
}

func (s *State) mvi(dst Location, data byte) {
	s.writeLocation(dst, data)
}

func (s *State) lxi(dst Location, low, high byte) {
	s.SetFullRPValue(dst.Pair, bits.Concat(low, high))
}

func (s *State) lda(low, high byte) {
	addr := bits.Concat(low, high)
	s.SetReg(A, s.Memory.Read(addr))
}

func (s *State) sta(low, high byte) {
	addr := bits.Concat(low, high)
	s.Memory.Write(addr, s.Reg(A))
}

func (s *State) lhld(low, high byte) {
	addr := bits.Concat(low, high)
	s.SetReg(L, s.Memory.Read(addr))
	s.SetReg(H, s.Memory.Read(addr+1))
}

func (s *State) shld(low, high byte) {
	addr := bits.Concat(low, high)
	s.Memory.Write(addr, s.Reg(L))
	s.Memory.Write(addr+1, s.Reg(H))
}

func (s *State) ldax(src Location) {
	if src.Pair != BC && src.Pair != DE {
		panic(errInvalidRegisterPairPanic(src.Pair))
	}
	s.SetReg(A, s.Memory.Read(s.FullRPValue(src.Pair)))
}

func (s *State) stax(dst Location) {
	if dst.Pair != BC && dst.Pair != DE {
		panic(errInvalidRegisterPairPanic(dst.Pair))
	}
	s.Memory.Write(s.FullRPValue(dst.Pair), s.Reg(A))
}

func (s *State) xchg() {
	h, l := s.Reg(H), s.Reg(L)
	d, e := s.Reg(D), s.Reg(E)
	s.SetReg(H, d)
	s.SetReg(L, e)
	s.SetReg(D, h)
	s.SetReg(E, l)
}

// readLocation and writeLocation implement the register-or-memory-at-HL
// operand pattern shared by MOV, MVI, and the entire ALU group.
func (s *State) readLocation(loc Location) byte {
	switch loc.Kind {
	case LocReg:
		return s.Reg(loc.Reg)
	case LocMem:
		return s.MemoryAtHL()
	default:
		panic("cpu: location is not readable as a byte")
	}
}

func (s *State) writeLocation(loc Location, value byte) {
	switch loc.Kind {
	case LocReg:
		s.SetReg(loc.Reg, value)
	case LocMem:
		s.SetMemoryAtHL(value)
	default:
		panic("cpu: location is not writable as a byte")
	}
}
