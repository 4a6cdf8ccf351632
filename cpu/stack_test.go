package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopRoundTripLeavesStateUnchanged(t *testing.T) {
	s := freshState()
	s.SetReg(B, 0xAB)
	s.SetReg(C, 0xCD)
	s.SP = 0x8000
	before := *s

	s.push(pairLoc(BC))
	s.pop(pairLoc(BC))

	assert.Equal(t, before.Registers, s.Registers)
	assert.Equal(t, before.Flags, s.Flags)
	assert.Equal(t, before.SP, s.SP)
}

func TestPushRejectsSP(t *testing.T) {
	s := freshState()
	assert.Panics(t, func() { s.push(pairLoc(SP)) })
}

func TestPushPopPswRoundTrip(t *testing.T) {
	s := freshState()
	s.SetReg(A, 0x5A)
	s.Flags = Flags{Sign: true, Zero: false, AuxCarry: true, Parity: true, Carry: true}
	s.SP = 0x9000

	s.pushPsw()
	s.SetReg(A, 0)
	s.Flags = Flags{}
	s.popPsw()

	assert.Equal(t, byte(0x5A), s.Reg(A))
	assert.True(t, s.Flags.Sign)
	assert.True(t, s.Flags.AuxCarry)
	assert.True(t, s.Flags.Parity)
	assert.True(t, s.Flags.Carry)
	assert.False(t, s.Flags.Zero)
}

func TestXthlSwapsTopOfStackWithHL(t *testing.T) {
	s := freshState()
	s.SP = 0x2000
	s.Memory.Write(0x2000, 0x11)
	s.Memory.Write(0x2001, 0x22)
	s.SetReg(H, 0x33)
	s.SetReg(L, 0x44)

	s.xthl()
	assert.Equal(t, byte(0x11), s.Reg(L))
	assert.Equal(t, byte(0x22), s.Reg(H))
	assert.Equal(t, byte(0x44), s.Memory.Read(0x2000))
	assert.Equal(t, byte(0x33), s.Memory.Read(0x2001))
}

func TestSphlCopiesHLIntoSP(t *testing.T) {
	s := freshState()
	s.SetFullRPValue(HL, 0x5678)
	s.sphl()
	assert.Equal(t, uint16(0x5678), s.SP)
}

func TestEiDiToggleIME(t *testing.T) {
	s := freshState()
	s.ei()
	assert.True(t, s.IME)
	s.di()
	assert.False(t, s.IME)
}
