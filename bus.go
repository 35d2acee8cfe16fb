package aht20

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// AddressableReader reads from a 7-bit device address. A single call is a
// single atomic bus transaction filling the whole buffer; the adapter must
// not let another bus user interleave inside it.
type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

// AddressableWriter writes to a 7-bit device address. Release returns the bus
// engine to idle; drivers never call it, the bus stays owned by the caller.
type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the transport capability a sensor driver holds a shared,
// non-owning reference to. Exclusivity is guaranteed per transaction only;
// a driver must not assume it keeps the bus across a delay between calls.
type I2CBus interface {
	AddressableReader
	AddressableWriter
}
