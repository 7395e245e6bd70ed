package vm

import "fmt"

// Reg16 names one of the seven 16-bit registers.
type Reg16 uint8

const (
	A Reg16 = iota
	B
	C
	D
	E
	H
	L
)

func (r Reg16) String() string {
	return [...]string{"A", "B", "C", "D", "E", "H", "L"}[r]
}

// Reg32 names one of the three 32-bit pair views.
type Reg32 uint8

const (
	BC Reg32 = iota
	DE
	HL
)

func (r Reg32) String() string {
	return [...]string{"BC", "DE", "HL"}[r]
}

// pairOf returns the high and low 16-bit registers composing a Reg32, in
// little-endian-word order (the low word is the second-named register of
// the pair, matching the original's {C is low word of BC} convention).
func pairOf(p Reg32) (hi, lo Reg16) {
	switch p {
	case BC:
		return B, C
	case DE:
		return D, E
	case HL:
		return H, L
	default:
		panic(fmt.Sprintf("invalid register pair %d", p))
	}
}

// Reg8 names one of the fourteen 8-bit half-registers. Even-numbered
// constants are the high halves (suffix "1"), odd-numbered the low
// halves (suffix "0"), matching the nibble order A1=0, A0=1, B1=2, ...
type Reg8 uint8

const (
	A1 Reg8 = iota
	A0
	B1
	B0
	C1
	C0
	D1
	D0
	E1
	E0
	H1
	H0
	L1
	L0
)

func (r Reg8) String() string {
	return [...]string{
		"A1", "A0", "B1", "B0", "C1", "C0", "D1", "D0",
		"E1", "E0", "H1", "H0", "L1", "L0",
	}[r]
}

// halfOf returns the owning 16-bit register and whether r is the high half.
func halfOf(r Reg8) (owner Reg16, high bool) {
	return Reg16(r / 2), r%2 == 0
}

// Registers holds the seven 16-bit registers as fourteen raw bytes, with
// the 16-bit and 32-bit views composed on read. Only the bytes are ever
// stored; views are never cached, so the aliasing invariant in §4.1 always
// holds by construction.
type Registers struct {
	bytes [14]uint8
}

func regIndex(r Reg16) int { return int(r) * 2 }

// Reg16 reads the 16-bit value of a register.
func (r *Registers) Reg16(reg Reg16) uint16 {
	i := regIndex(reg)
	return CombineU8BE(r.bytes[i], r.bytes[i+1])
}

// SetReg16 writes the 16-bit value of a register.
func (r *Registers) SetReg16(reg Reg16, val uint16) {
	i := regIndex(reg)
	hi, lo := SplitWord(val)
	r.bytes[i] = hi
	r.bytes[i+1] = lo
}

// Reg8 reads the 8-bit value of a half-register.
func (r *Registers) Reg8(reg Reg8) uint8 {
	owner, high := halfOf(reg)
	i := regIndex(owner)
	if high {
		return r.bytes[i]
	}
	return r.bytes[i+1]
}

// SetReg8 writes the 8-bit value of a half-register.
func (r *Registers) SetReg8(reg Reg8, val uint8) {
	owner, high := halfOf(reg)
	i := regIndex(owner)
	if high {
		r.bytes[i] = val
	} else {
		r.bytes[i+1] = val
	}
}

// Reg32 reads the 32-bit value of a register pair.
func (r *Registers) Reg32(p Reg32) uint32 {
	hi, lo := pairOf(p)
	return CombineU16BE(r.Reg16(hi), r.Reg16(lo))
}

// SetReg32 writes the 32-bit value of a register pair.
func (r *Registers) SetReg32(p Reg32, val uint32) {
	hi, lo := pairOf(p)
	hiWord, loWord := SplitDword(val)
	r.SetReg16(hi, hiWord)
	r.SetReg16(lo, loWord)
}

// reg16Names, reg32Names and reg8Names mirror the String() methods above
// but in the reverse direction, so the assembler's lexer/parser can
// resolve a bare identifier to a register without duplicating the name
// tables in the asm package (spec.md §4.6 requires exactly this lookup
// when tokenizing an identifier).
var (
	reg16Names = map[string]Reg16{"A": A, "B": B, "C": C, "D": D, "E": E, "H": H, "L": L}
	reg32Names = map[string]Reg32{"BC": BC, "DE": DE, "HL": HL}
	reg8Names  = map[string]Reg8{
		"A1": A1, "A0": A0, "B1": B1, "B0": B0, "C1": C1, "C0": C0,
		"D1": D1, "D0": D0, "E1": E1, "E0": E0, "H1": H1, "H0": H0, "L1": L1, "L0": L0,
	}
)

// LookupReg16 resolves an identifier to a 16-bit register name, if any.
func LookupReg16(name string) (Reg16, bool) { r, ok := reg16Names[name]; return r, ok }

// LookupReg32 resolves an identifier to a 32-bit pair name, if any.
func LookupReg32(name string) (Reg32, bool) { r, ok := reg32Names[name]; return r, ok }

// LookupReg8 resolves an identifier to an 8-bit half-register name, if any.
func LookupReg8(name string) (Reg8, bool) { r, ok := reg8Names[name]; return r, ok }

func (r Registers) String() string {
	return fmt.Sprintf(
		"A:%#04X B:%#04X C:%#04X D:%#04X E:%#04X H:%#04X L:%#04X",
		r.Reg16(A), r.Reg16(B), r.Reg16(C), r.Reg16(D), r.Reg16(E), r.Reg16(H), r.Reg16(L),
	)
}
