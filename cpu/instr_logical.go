package cpu

// Logical instructions: ANA/ANI, ORA/ORI, XRA/XRI, CMP/CPI, the rotate
// group (RLC/RRC/RAL/RAR), and CMA/CMC/STC.

func (s *State) ana(data byte) {
	result := s.Reg(A) & data
	s.SetReg(A, result)
	s.Flags.setFromResult(result)
	s.Flags.Carry = false
	s.Flags.AuxCarry = false
}

func (s *State) xra(data byte) {
	result := s.Reg(A) ^ data
	s.SetReg(A, result)
	s.Flags.setFromResult(result)
	s.Flags.Carry = false
	s.Flags.AuxCarry = false
}

func (s *State) ora(data byte) {
	result := s.Reg(A) | data
	s.SetReg(A, result)
	s.Flags.setFromResult(result)
	s.Flags.Carry = false
	s.Flags.AuxCarry = false
}

// cmp compares A against data by computing A-data for flags only. Unlike
// original_source's cpi_instruction, the result is never written back into
// A -- CMP/CPI are pure comparisons, and a reference implementation that
// stores the subtraction result into the accumulator is simply wrong about
// real 8080 semantics.
func (s *State) cmp(data byte) {
	a := s.Reg(A)
	result := a - data
	borrow := a < data
	auxBorrow := auxBorrowNibble(a, data)
	s.Flags.setFromResult(result)
	s.Flags.Carry = borrow
	s.Flags.AuxCarry = auxBorrow
}

func auxBorrowNibble(a, data byte) bool {
	return a&0x0F < data&0x0F
}

func (s *State) rlc() {
	a := s.Reg(A)
	carryOut := a&0x80 != 0
	result := a<<1 | boolToBit(carryOut)
	s.SetReg(A, result)
	s.Flags.Carry = carryOut
}

func (s *State) rrc() {
	a := s.Reg(A)
	carryOut := a&0x01 != 0
	result := a>>1 | boolToBit(carryOut)<<7
	s.SetReg(A, result)
	s.Flags.Carry = carryOut
}

func (s *State) ral() {
	a := s.Reg(A)
	carryOut := a&0x80 != 0
	result := a<<1 | boolToBit(s.Flags.Carry)
	s.SetReg(A, result)
	s.Flags.Carry = carryOut
}

func (s *State) rar() {
	a := s.Reg(A)
	carryOut := a&0x01 != 0
	result := a>>1 | boolToBit(s.Flags.Carry)<<7
	s.SetReg(A, result)
	s.Flags.Carry = carryOut
}

func (s *State) cma() {
	s.SetReg(A, ^s.Reg(A))
}

func (s *State) cmc() {
	s.Flags.Carry = !s.Flags.Carry
}

func (s *State) stc() {
	s.Flags.Carry = true
}

func boolToBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
