package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	m := New()
	m.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x1234))
}

func TestZeroedOnConstruction(t *testing.T) {
	m := New()
	assert.Equal(t, byte(0), m.Read(0xFFFF))
}

func TestLoad(t *testing.T) {
	m := New()
	m.Load([]byte{0x01, 0x02, 0x03}, 0x0100)
	assert.Equal(t, byte(0x01), m.Read(0x0100))
	assert.Equal(t, byte(0x02), m.Read(0x0101))
	assert.Equal(t, byte(0x03), m.Read(0x0102))
}

func TestLoadTruncatesAtEndOfAddressSpace(t *testing.T) {
	m := New()
	assert.NotPanics(t, func() {
		m.Load([]byte{1, 2, 3, 4}, 0xFFFE)
	})
	assert.Equal(t, byte(1), m.Read(0xFFFE))
	assert.Equal(t, byte(2), m.Read(0xFFFF))
}
