package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullReadsZeroAndIgnoresWrites(t *testing.T) {
	var p Null
	assert.Equal(t, uint8(0), p.ReadIn(3))
	assert.NotPanics(t, func() { p.WriteOut(5, 0xFF) })
}

func TestShiftRegisterShiftsNewBytesIn(t *testing.T) {
	s := NewShiftRegister()
	s.WriteOut(s.DataPort, 0xFF)
	s.WriteOut(s.AmountPort, 0)
	assert.Equal(t, uint8(0xFF), s.ReadIn(s.ReadPort))
}

func TestShiftRegisterHonorsShiftAmount(t *testing.T) {
	s := NewShiftRegister()
	s.WriteOut(s.DataPort, 0xFF) // becomes the low byte once the next byte arrives
	s.WriteOut(s.DataPort, 0x00) // latest write, becomes the high byte
	s.WriteOut(s.AmountPort, 7)
	assert.Equal(t, uint8(0x7F), s.ReadIn(s.ReadPort))
}

func TestShiftRegisterIgnoresUnrelatedPorts(t *testing.T) {
	s := NewShiftRegister()
	assert.Equal(t, uint8(0), s.ReadIn(99))
	assert.NotPanics(t, func() { s.WriteOut(99, 1) })
}

func TestShiftRegisterReversed(t *testing.T) {
	s := NewShiftRegister()
	s.Reversed = true
	s.WriteOut(s.DataPort, 0x01)
	s.WriteOut(s.AmountPort, 0)
	assert.Equal(t, uint8(0x80), s.ReadIn(s.ReadPort))
}
