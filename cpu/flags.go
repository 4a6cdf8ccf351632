package cpu

import "i8080/bits"

// Flags holds the five condition flags the 8080 exposes. Unlike the NES
// 6502's status register, the 8080 has no interrupt-disable or B flag here;
// those concerns live on State itself (IME, Halted).
type Flags struct {
	Sign     bool // bit 7 of the result
	Zero     bool // result == 0
	AuxCarry bool // carry out of bit 3 into bit 4
	Parity   bool // result has an even number of set bits
	Carry    bool // carry/borrow out of bit 7
}

// setFromResult updates Sign, Zero, and Parity from result. AuxCarry and
// Carry are never touched here: every instruction family that affects them
// sets them itself (the logical group clears or computes them), matching how the
// reference implementation separates "flags from result" from the
// carry/auxiliary-carry calculation specific to each instruction.
func (f *Flags) setFromResult(result byte) {
	f.Sign = result&0x80 != 0
	f.Zero = result == 0
	f.Parity = bits.Parity(result)
}

// PSW bit layout, from the 8080 Programmer's Manual (and the shape the
// reference implementation's stack code pushes/pops PUSH PSW/POP PSW with):
// bit 1 always reads as 1; bits 3 and 5 always read as 0.
const (
	pswCarryBit    = 0
	pswFixedOneBit = 1
	pswParityBit   = 2
	pswAuxCarryBit = 4
	pswZeroBit     = 6
	pswSignBit     = 7
)

// PSW packs the flags into the byte PUSH PSW writes to memory.
func (f Flags) PSW() byte {
	var b byte
	b = bits.SetBit(b, pswFixedOneBit, true)
	b = bits.SetBit(b, pswCarryBit, f.Carry)
	b = bits.SetBit(b, pswParityBit, f.Parity)
	b = bits.SetBit(b, pswAuxCarryBit, f.AuxCarry)
	b = bits.SetBit(b, pswZeroBit, f.Zero)
	b = bits.SetBit(b, pswSignBit, f.Sign)
	return b
}

// FlagsFromPSW unpacks the byte POP PSW reads from memory into Flags.
func FlagsFromPSW(b byte) Flags {
	return Flags{
		Carry:    bits.IsBitSet(b, pswCarryBit),
		Parity:   bits.IsBitSet(b, pswParityBit),
		AuxCarry: bits.IsBitSet(b, pswAuxCarryBit),
		Zero:     bits.IsBitSet(b, pswZeroBit),
		Sign:     bits.IsBitSet(b, pswSignBit),
	}
}
