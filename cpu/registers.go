package cpu

// A Register names one of the 8080's seven single-byte registers. The zero
// value is A; a Location's Reg field is only meaningful when its Kind is
// LocReg.
type Register uint8

const (
	A Register = iota
	B
	C
	D
	E
	H
	L
	numRegisters
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	default:
		return "?"
	}
}

// A RegisterPair names one of the four 16-bit register pairs the 8080
// exposes. SP has no backing single-byte registers of its own; it is the
// stack pointer stored directly on State.
type RegisterPair uint8

const (
	BC RegisterPair = iota
	DE
	HL
	SP
)

func (rp RegisterPair) String() string {
	switch rp {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	default:
		return "?"
	}
}

// high and low return the two registers backing rp. Only called for BC, DE,
// and HL; SP has no register backing and is rejected by the caller before
// this would ever be reached.
func (rp RegisterPair) high() Register {
	switch rp {
	case BC:
		return B
	case DE:
		return D
	case HL:
		return H
	default:
		panic(errInvalidRegisterPairPanic(rp))
	}
}

func (rp RegisterPair) low() Register {
	switch rp {
	case BC:
		return C
	case DE:
		return E
	case HL:
		return L
	default:
		panic(errInvalidRegisterPairPanic(rp))
	}
}

// regFromField maps a 3-bit 8080 register field (as used in MOV, the ALU
// group, INR, and DCR) to a Register. Field value 6 means "memory at HL",
// not a register, and is handled by the caller before this is reached.
func regFromField(field uint8) Register {
	switch field {
	case 0:
		return B
	case 1:
		return C
	case 2:
		return D
	case 3:
		return E
	case 4:
		return H
	case 5:
		return L
	case 7:
		return A
	default:
		panic("cpu: register field 6 (M) has no Register mapping")
	}
}
