package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"i8080/ports"
)

func TestInReadsFromPort(t *testing.T) {
	sr := ports.NewShiftRegister()
	s := New(nil, sr)
	sr.WriteOut(sr.AmountPort, 0)
	sr.WriteOut(sr.DataPort, 0xFF)

	s.in(sr.ReadPort)
	assert.Equal(t, byte(0xFF), s.Reg(A))
}

func TestOutWritesToPort(t *testing.T) {
	sr := ports.NewShiftRegister()
	s := New(nil, sr)
	s.SetReg(A, 0x03)
	s.out(sr.AmountPort)

	s.SetReg(A, 0)
	s.in(sr.AmountPort) // Null ports would read 0; the shift register ignores reads of its amount port
	assert.Equal(t, byte(0), s.Reg(A))

	// Feed a data byte through OUT as well; the shift amount of 3 written
	// above must show up in what the read port returns.
	s.SetReg(A, 0xFF)
	s.out(sr.DataPort)
	s.in(sr.ReadPort)
	assert.Equal(t, byte(0xF8), s.Reg(A))
}
