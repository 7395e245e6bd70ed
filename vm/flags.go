package vm

import "strings"

// Flag names one of the five boolean condition codes.
type Flag int

const (
	Zero Flag = iota
	Carry
	Overflow
	Parity
	Negative
)

// flagLetters gives the canonical to_string()/from_string() letters, in
// display order, matching the "zCoPn"-style format used throughout.
var flagLetters = [...]byte{'Z', 'C', 'O', 'P', 'N'}

// Flags holds the five condition codes.
type Flags struct {
	zero, carry, overflow, parity, negative bool
}

// Get returns the current value of a flag.
func (f *Flags) Get(flag Flag) bool {
	switch flag {
	case Zero:
		return f.zero
	case Carry:
		return f.carry
	case Overflow:
		return f.overflow
	case Parity:
		return f.parity
	case Negative:
		return f.negative
	default:
		return false
	}
}

// Set sets a flag to true.
func (f *Flags) Set(flag Flag) { f.Assign(flag, true) }

// Reset sets a flag to false.
func (f *Flags) Reset(flag Flag) { f.Assign(flag, false) }

// Toggle flips a flag.
func (f *Flags) Toggle(flag Flag) { f.Assign(flag, !f.Get(flag)) }

// Assign sets a flag to an explicit value.
func (f *Flags) Assign(flag Flag, val bool) {
	switch flag {
	case Zero:
		f.zero = val
	case Carry:
		f.carry = val
	case Overflow:
		f.overflow = val
	case Parity:
		f.parity = val
	case Negative:
		f.negative = val
	}
}

// SetAll sets every flag.
func (f *Flags) SetAll() { *f = Flags{true, true, true, true, true} }

// ResetAll clears every flag.
func (f *Flags) ResetAll() { *f = Flags{} }

// ChangeZero sets the Zero flag based on result == 0.
func ChangeZero[T Unsigned](f *Flags, result T) { f.Assign(Zero, result == 0) }

// ChangeParity sets the Parity flag based on even population count.
func ChangeParity[T Unsigned](f *Flags, result T) { f.Assign(Parity, PopCount(result)%2 == 0) }

// ChangeNegative sets the Negative flag based on the result's MSB.
func ChangeNegative[T Unsigned](f *Flags, result T) { f.Assign(Negative, Msb(result)) }

// String renders the canonical 5-character representation, uppercase when
// set and lowercase when clear, in Z,C,O,P,N order.
func (f Flags) String() string {
	vals := [...]bool{f.zero, f.carry, f.overflow, f.parity, f.negative}
	var b strings.Builder
	for i, v := range vals {
		c := flagLetters[i]
		if !v {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FlagsFromString parses the compact letter encoding; any letter present
// (case-insensitively) is treated as set, anything absent as clear.
func FlagsFromString(s string) Flags {
	var f Flags
	upper := strings.ToUpper(s)
	for i, letter := range flagLetters {
		if strings.ContainsRune(upper, rune(letter)) {
			f.Assign(Flag(i), true)
		}
	}
	return f
}
