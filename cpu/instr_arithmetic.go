package cpu

import "i8080/bits"

// Arithmetic instructions: ADD/ADC/SUB/SBB over a register or memory, the
// ADI/ACI/SUI/SBI immediate forms, INR/DCR, INX/DCX/DAD, and DAA.
//
// add/adc/sub/sbb each take their operand as a byte and serve both forms of
// the instruction: the runner passes either the immediate byte (ADI/ACI/
// SUI/SBI) or the register/memory value read through readLocation.

func (s *State) add(data byte) {
	carry, auxCarry := s.IncreaseRegister(A, data)
	s.setFlagsFromRegister(A)
	s.Flags.Carry = carry
	s.Flags.AuxCarry = auxCarry
}

func (s *State) adc(data byte) {
	carryIn := byte(0)
	if s.Flags.Carry {
		carryIn = 1
	}
	mainCarry, mainAux := s.IncreaseRegister(A, data)
	carryFromCarry, auxFromCarry := s.IncreaseRegister(A, carryIn)
	s.setFlagsFromRegister(A)
	s.Flags.Carry = mainCarry || carryFromCarry
	s.Flags.AuxCarry = mainAux || auxFromCarry
}

func (s *State) sub(data byte) {
	borrow, auxBorrow := s.DecreaseRegister(A, data)
	s.setFlagsFromRegister(A)
	s.Flags.Carry = borrow
	s.Flags.AuxCarry = auxBorrow
}

// sbb subtracts data and the current carry flag from A.
//
// The auxiliary-carry result is the AND (not the OR) of the two borrows
// produced by subtracting data and subtracting the carry-in. This is not
// what a literal reading of the 8080 manual implies, but matches the
// behavior of real hardware and the reference implementation, found by the
// latter through trial and error against a known-good diagnostic ROM.
func (s *State) sbb(data byte) {
	carryIn := byte(0)
	if s.Flags.Carry {
		carryIn = 1
	}
	mainBorrow, mainAux := s.DecreaseRegister(A, data)
	borrowFromBorrow, auxFromBorrow := s.DecreaseRegister(A, carryIn)
	s.setFlagsFromRegister(A)
	s.Flags.Carry = mainBorrow || borrowFromBorrow
	s.Flags.AuxCarry = mainAux && auxFromBorrow
}

func (s *State) inr(dst Location) {
	if dst.Kind == LocMem {
		old := s.MemoryAtHL()
		result := old + 1
		s.SetMemoryAtHL(result)
		s.Flags.setFromResult(result)
		s.Flags.AuxCarry = bits.AuxCarryAdd(old, 1, false)
		return
	}
	_, auxCarry := s.IncreaseRegister(dst.Reg, 1)
	s.setFlagsFromRegister(dst.Reg)
	s.Flags.AuxCarry = auxCarry
}

func (s *State) dcr(dst Location) {
	if dst.Kind == LocMem {
		old := s.MemoryAtHL()
		result := old - 1
		s.SetMemoryAtHL(result)
		s.Flags.setFromResult(result)
		s.Flags.AuxCarry = bits.AuxCarrySub(old, 1, false)
		return
	}
	_, auxBorrow := s.DecreaseRegister(dst.Reg, 1)
	s.setFlagsFromRegister(dst.Reg)
	s.Flags.AuxCarry = auxBorrow
}

func (s *State) inx(dst Location) {
	s.SetFullRPValue(dst.Pair, s.FullRPValue(dst.Pair)+1)
}

func (s *State) dcx(dst Location) {
	s.SetFullRPValue(dst.Pair, s.FullRPValue(dst.Pair)-1)
}

func (s *State) dad(src Location) {
	hl := s.FullRPValue(HL)
	operand := s.FullRPValue(src.Pair)
	sum := uint32(hl) + uint32(operand)
	s.SetFullRPValue(HL, uint16(sum))
	s.Flags.Carry = sum > 0xFFFF
}

// daa adjusts A into packed BCD form after an addition, in three steps: fix
// the low nibble if it overflowed decimal or produced a half-carry, then
// fix the high nibble the same way -- even if fixing the low nibble was
// what pushed the high nibble out of range -- and finally set S/Z/P from
// the adjusted result. The carry flag, once set by either step, is never
// cleared again even if the corresponding nibble didn't independently need
// a carry.
func (s *State) daa() {
	result := s.Reg(A)
	carry := s.Flags.Carry
	auxCarry := false

	low := result & 0x0F
	if low > 9 || s.Flags.AuxCarry {
		auxCarry = auxCarry || bits.AuxCarryAdd(result, 6, false)
		sum := uint16(result) + 6
		carry = carry || sum > 0xFF
		result = byte(sum)
	}

	high := result >> 4
	if high > 9 || s.Flags.Carry || carry {
		auxCarry = auxCarry || bits.AuxCarryAdd(result, 0x60, false)
		result += 0x60
		carry = true
	}

	s.SetReg(A, result)
	s.Flags.setFromResult(result)
	s.Flags.Carry = carry
	s.Flags.AuxCarry = auxCarry
}
