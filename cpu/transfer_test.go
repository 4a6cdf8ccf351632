package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovRegisterToRegister(t *testing.T) {
	s := freshState()
	s.SetReg(B, 0x42)
	s.mov(regLoc(C), regLoc(B))
	assert.Equal(t, byte(0x42), s.Reg(C))
}

func TestMovThroughMemory(t *testing.T) {
	s := freshState()
	s.SetFullRPValue(HL, 0x3000)
	s.SetReg(B, 0x7F)
	s.mov(memLoc(HL), regLoc(B))
	assert.Equal(t, byte(0x7F), s.Memory.Read(0x3000))
}

func TestLxiLoadsPairFromImmediate(t *testing.T) {
	s := freshState()
	s.lxi(pairLoc(HL), 0xCD, 0xAB)
	assert.Equal(t, uint16(0xABCD), s.FullRPValue(HL))
}

func TestLdaSta(t *testing.T) {
	s := freshState()
	s.SetReg(A, 0x99)
	s.sta(0x00, 0x40)
	s.SetReg(A, 0)
	s.lda(0x00, 0x40)
	assert.Equal(t, byte(0x99), s.Reg(A))
}

func TestLhldShld(t *testing.T) {
	s := freshState()
	s.SetReg(H, 0x11)
	s.SetReg(L, 0x22)
	s.shld(0x00, 0x50)
	s.SetReg(H, 0)
	s.SetReg(L, 0)
	s.lhld(0x00, 0x50)
	assert.Equal(t, byte(0x11), s.Reg(H))
	assert.Equal(t, byte(0x22), s.Reg(L))
}

func TestLdaxStaxRejectsHL(t *testing.T) {
	s := freshState()
	assert.Panics(t, func() { s.ldax(pairLoc(HL)) })
	assert.Panics(t, func() { s.stax(pairLoc(HL)) })
}

func TestXchgScenario(t *testing.T) {
	s := freshState()
	s.SetReg(D, 205)
	s.SetReg(E, 69)
	s.SetReg(H, 0)
	s.SetReg(L, 11)
	s.xchg()
	assert.Equal(t, byte(0), s.Reg(D))
	assert.Equal(t, byte(11), s.Reg(E))
	assert.Equal(t, byte(205), s.Reg(H))
	assert.Equal(t, byte(69), s.Reg(L))
}
