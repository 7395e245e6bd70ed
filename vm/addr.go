package vm

import "fmt"

// Addr is an address that wraps on overflow/underflow instead of
// panicking. It spans the full native uint32 range: see DESIGN.md for
// why the original's 2^24 (16MB) wrap was not carried over — this repo's
// Mmu places the keyboard/IE/IF registers at fixed addresses near the
// top of the 32-bit space (0xFFFFFFBE-0xFFFFFFFF), which a 2^24 modulus
// would make unreachable from PC/SP arithmetic.
type Addr struct {
	value uint32
}

// NewDefaultAddr creates an Addr at value.
func NewDefaultAddr(value uint32) Addr {
	return Addr{value: value}
}

// Address returns the underlying uint32 address.
func (a Addr) Address() uint32 { return a.value }

// WrappingAdd adds value to this Addr, wrapping on overflow.
func (a Addr) WrappingAdd(value uint32) Addr {
	return Addr{value: a.value + value}
}

// WrappingSub subtracts value from this Addr, wrapping on underflow.
func (a Addr) WrappingSub(value uint32) Addr {
	return Addr{value: a.value - value}
}

// WrappingInc increments this Addr by one, wrapping on overflow.
func (a Addr) WrappingInc() Addr { return a.WrappingAdd(1) }

// WrappingDec decrements this Addr by one, wrapping on underflow.
func (a Addr) WrappingDec() Addr { return a.WrappingSub(1) }

func (a Addr) String() string {
	return fmt.Sprintf("%#08X", a.value)
}
