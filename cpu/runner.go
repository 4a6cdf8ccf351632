package cpu

// Step fetches the instruction at PC, decodes it, advances PC past the
// opcode and any immediate bytes, executes it, and charges the cycle
// counter. A halted State's Step is a no-op beyond charging a single NOP's
// worth of cycles, matching real hardware idling in its halt state.
//
// Any invariant violation raised by the lower-level helpers (an
// unreachable-through-Decode condition, register pair, or reset index) is
// recovered here and returned as an error rather than propagated as a
// panic, so a host driving Step in a loop never needs its own recover.
func (s *State) Step() (err error) {
	defer recoverInvariant(&err)

	if s.Halted {
		s.Cycles += 4
		return nil
	}

	opcode := s.Memory.Read(s.PC)
	inst := Decode(opcode)
	s.PC++

	imm, err := s.fetchImmediate(inst.ImmLen)
	if err != nil {
		return err
	}
	s.PC += uint16(inst.ImmLen)

	taken := s.execute(inst, imm)

	if taken {
		s.Cycles += uint64(inst.TakenCycles)
	} else {
		s.Cycles += uint64(inst.Cycles)
	}
	return nil
}

// fetchImmediate reads n little-endian immediate bytes starting at s.PC,
// which Step has already moved past the opcode. n is always 0, 1, or 2 for
// any Instruction the decoder produces; a larger n returns
// ErrMissingImmediate.
func (s *State) fetchImmediate(n uint8) ([2]byte, error) {
	var imm [2]byte
	if int(n) > len(imm) {
		return imm, ErrMissingImmediate
	}
	for i := uint8(0); i < n; i++ {
		imm[i] = s.Memory.Read(s.PC + uint16(i))
	}
	return imm, nil
}

func (s *State) imm16(imm [2]byte) uint16 {
	return uint16(imm[1])<<8 | uint16(imm[0])
}

// execute dispatches inst to its executor and reports whether a
// conditional branch was taken (meaningless, and ignored by Step, for
// every non-branching Operation).
func (s *State) execute(inst Instruction, imm [2]byte) bool {
	switch inst.Op {
	case OpNop:
		// nothing
	case OpMov:
		s.mov(inst.Dst, inst.Src)
	case OpMvi:
		s.mvi(inst.Dst, imm[0])
	case OpLxi:
		s.lxi(inst.Dst, imm[0], imm[1])
	case OpLda:
		s.lda(imm[0], imm[1])
	case OpSta:
		s.sta(imm[0], imm[1])
	case OpLhld:
		s.lhld(imm[0], imm[1])
	case OpShld:
		s.shld(imm[0], imm[1])
	case OpLdax:
		s.ldax(inst.Src)
	case OpStax:
		s.stax(inst.Dst)
	case OpXchg:
		s.xchg()

	case OpAdd:
		s.add(s.readLocation(inst.Src))
	case OpAdi:
		s.add(imm[0])
	case OpAdc:
		s.adc(s.readLocation(inst.Src))
	case OpAci:
		s.adc(imm[0])
	case OpSub:
		s.sub(s.readLocation(inst.Src))
	case OpSui:
		s.sub(imm[0])
	case OpSbb:
		s.sbb(s.readLocation(inst.Src))
	case OpSbi:
		s.sbb(imm[0])
	case OpInr:
		s.inr(inst.Dst)
	case OpDcr:
		s.dcr(inst.Dst)
	case OpInx:
		s.inx(inst.Dst)
	case OpDcx:
		s.dcx(inst.Dst)
	case OpDad:
		s.dad(inst.Src)
	case OpDaa:
		s.daa()

	case OpAna:
		s.ana(s.readLocation(inst.Src))
	case OpAni:
		s.ana(imm[0])
	case OpXra:
		s.xra(s.readLocation(inst.Src))
	case OpXri:
		s.xra(imm[0])
	case OpOra:
		s.ora(s.readLocation(inst.Src))
	case OpOri:
		s.ora(imm[0])
	case OpCmp:
		s.cmp(s.readLocation(inst.Src))
	case OpCpi:
		s.cmp(imm[0])
	case OpRlc:
		s.rlc()
	case OpRrc:
		s.rrc()
	case OpRal:
		s.ral()
	case OpRar:
		s.rar()
	case OpCma:
		s.cma()
	case OpCmc:
		s.cmc()
	case OpStc:
		s.stc()

	case OpJmp:
		s.jmp(s.imm16(imm))
	case OpJcond:
		return s.jcond(inst.Cond, s.imm16(imm))
	case OpCall:
		s.call(s.imm16(imm))
	case OpCcond:
		return s.ccond(inst.Cond, s.imm16(imm))
	case OpRet:
		s.ret()
	case OpRcond:
		return s.rcond(inst.Cond)
	case OpRst:
		s.rst(inst.Dst.Restart)
	case OpPchl:
		s.pchl()

	case OpPush:
		s.push(inst.Src)
	case OpPushPsw:
		s.pushPsw()
	case OpPop:
		s.pop(inst.Dst)
	case OpPopPsw:
		s.popPsw()
	case OpXthl:
		s.xthl()
	case OpSphl:
		s.sphl()

	case OpIn:
		s.in(imm[0])
	case OpOut:
		s.out(imm[0])

	case OpEi:
		s.ei()
	case OpDi:
		s.di()

	case OpHlt:
		s.Halted = true
	}
	return true
}

// Interrupt injects a hardware interrupt carrying restart vector rst (0-7),
// as if an external device had pulsed the 8080's INT line. It is a no-op
// returning nil if IME is false, matching how EI/DI gate real interrupt
// delivery. A taken interrupt clears Halted (the most common reason a guest
// program waits in HLT) and disables IME, mirroring the real part's
// behavior of requiring the handler to re-enable interrupts itself with EI.
func (s *State) Interrupt(rst uint8) (err error) {
	defer recoverInvariant(&err)

	if !s.IME {
		return nil
	}
	s.IME = false
	s.Halted = false
	s.rst(rst)
	return nil
}
