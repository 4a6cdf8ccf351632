package cpu

import (
	"errors"
	"fmt"

	"i8080/bits"
)

// Sentinel errors returned by Step and the lower-level State methods it
// wraps. All are matched with errors.Is, mirroring the plain error values
// the teacher package returns from its own fetch method rather than a boxed
// exception hierarchy.
var (
	// ErrInvalidBitIndex surfaces a bit index outside [0,7] from package
	// bits. Nothing in this package ever calls bits functions with a
	// non-constant index, so this can only be triggered by a caller
	// reaching directly into package bits.
	ErrInvalidBitIndex = bits.ErrInvalidBitIndex

	// ErrInvalidResetIndex is raised by RST with an index >= 8. The shipped
	// decoder table can only ever produce 0-7 (a 3-bit opcode field), so
	// this fires only if a Location is constructed by hand with a bad
	// Restart value.
	ErrInvalidResetIndex = errors.New("cpu: invalid reset index")

	// ErrInvalidRegisterPair is raised by PUSH/POP when given SP, and by
	// LDAX/STAX when given any pair other than BC or DE. The decoder never
	// produces these combinations.
	ErrInvalidRegisterPair = errors.New("cpu: invalid register pair")

	// ErrUnsupportedConditionFlag is raised if a branch condition is
	// evaluated against the auxiliary carry flag, which the 8080 does not
	// expose as a branch condition. The decoder only ever builds the eight
	// real conditions, so this is unreachable through Step.
	ErrUnsupportedConditionFlag = errors.New("cpu: unsupported condition flag")

	// ErrMissingImmediate is raised by the runner if an instruction's
	// declared immediate-byte count cannot be satisfied. Reads past
	// 0xFFFF wrap (the address space is a flat 64 KiB modulo ring), so
	// this never actually fires against the shipped decoder table; it
	// exists as a guard against future decoder bugs.
	ErrMissingImmediate = errors.New("cpu: missing immediate byte")

	// ErrInvalidPort documents the category a Ports implementation may use
	// to reject an unrecognized port number. The core never raises it
	// itself: the Ports interface is error-free, matching spec and
	// original_source.
	ErrInvalidPort = errors.New("cpu: invalid port")
)

func errInvalidRegisterPairPanic(rp RegisterPair) error {
	return fmt.Errorf("%w: %v", ErrInvalidRegisterPair, rp)
}

func errInvalidResetIndexPanic(index uint8) error {
	return fmt.Errorf("%w: %d", ErrInvalidResetIndex, index)
}

func errUnsupportedConditionFlagPanic(cond Condition) error {
	return fmt.Errorf("%w: %v", ErrUnsupportedConditionFlag, cond)
}

// recoverInvariant converts one of the panics raised by the low-level
// register-pair/reset-index/condition helpers above into a returned error,
// so Step's contract (abort the step, return a stable error) holds even
// though the shipped decoder can never trigger the underlying panic.
func recoverInvariant(errOut *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		*errOut = err
		return
	}
	panic(r)
}
