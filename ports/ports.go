// Package ports defines the 8080's IN/OUT port boundary: the set of
// peripherals a host program wires up to ports 0-255. The core (package cpu)
// only ever talks to the Ports interface; it never knows what is actually
// attached.
package ports

// Ports is the capability a host gives an 8080 State to reach the outside
// world through the IN and OUT instructions. Both methods are total over
// byte -- a Ports implementation that does not recognize a port number
// should return/ignore a sensible default rather than erroring, exactly as
// the reference implementation's trait does; an implementation that wants to
// reject an unknown port is free to panic with its own sentinel, but the
// interface itself carries no error return.
type Ports interface {
	ReadIn(port uint8) uint8
	WriteOut(port uint8, value uint8)
}

// Null is a Ports implementation that answers 0 to every read and discards
// every write. It is the safe default for tests and for programs that never
// execute IN/OUT.
type Null struct{}

// ReadIn always returns 0.
func (Null) ReadIn(port uint8) uint8 { return 0 }

// WriteOut discards value.
func (Null) WriteOut(port uint8, value uint8) {}
