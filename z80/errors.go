package z80

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned by Memory.SetRange when the supplied
// payload length doesn't match the declared count. Grounded on the
// sentinel-error convention in ezrec-ucapp/cpu/err.go.
var ErrSizeMismatch = errors.New("mismatched data size")

// UnimplementedOpcodeError reports that decoding reached a byte
// sequence with no handler. Carries the offending bytes so the
// message (and a recovering caller) can identify exactly what failed.
type UnimplementedOpcodeError struct {
	Bytes []byte
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode sequence: % X", e.Bytes)
}

// UnknownSymbolError reports a Get/Set call naming a register symbol
// the register file doesn't recognize — always an implementation
// bug in the caller.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown register symbol %q", e.Symbol)
}

// InvalidRegisterPairError reports an out-of-range register-pair
// index (the 2-bit qq/dd/ss fields of PUSH/POP and the 16-bit LD/INC/
// DEC/ADD families must resolve to 0..3).
type InvalidRegisterPairError struct {
	Index int
}

func (e *InvalidRegisterPairError) Error() string {
	return fmt.Sprintf("invalid register-pair index %d", e.Index)
}
