// Package encoder maps (mnemonic, operand, operand) triples to the
// vm.Instruction the assembler's two-pass parser resolved them to, then
// to the exact opcode bytes the CPU will decode, per spec.md §4.3/§4.7.
package encoder

import "github.com/maxgmr/mfs16go/vm"

// Width names the four numeric-literal widths spec.md §4.6 defines via
// the :b/:w/:d/:q suffix.
type Width int

const (
	Byte Width = iota
	Word
	DWord
	QWord
)

func (w Width) String() string {
	return [...]string{"Byte", "Word", "DWord", "QWord"}[w]
}

// Bytes returns how many bytes w occupies in an encoded immediate tail.
func (w Width) Bytes() int {
	return [...]int{1, 2, 4, 8}[w]
}

// MaxValue returns the largest value representable in w.
func (w Width) MaxValue() uint64 {
	switch w {
	case Byte:
		return 0xFF
	case Word:
		return 0xFFFF
	case DWord:
		return 0xFFFFFFFF
	default:
		return 0xFFFFFFFFFFFFFFFF
	}
}

// OperandKind identifies the syntactic shape of one parsed operand, per
// spec.md §4.7's operand grammar.
type OperandKind int

const (
	KindReg16 OperandKind = iota
	KindReg32
	KindReg8
	KindSP
	KindPC
	KindImm           // a bare literal of some Width
	KindIndirectReg32 // [pair]
	KindIndirectImm32 // [dword-literal], absolute indirect
)

// Operand is one resolved instruction operand. Exactly the fields
// relevant to Kind are populated; the rest are zero.
type Operand struct {
	Kind     OperandKind
	Reg16    vm.Reg16
	Reg32    vm.Reg32
	Reg8     vm.Reg8
	ImmWidth Width
	ImmValue uint64
}

func RegOperand16(r vm.Reg16) Operand { return Operand{Kind: KindReg16, Reg16: r} }
func RegOperand32(r vm.Reg32) Operand { return Operand{Kind: KindReg32, Reg32: r} }
func RegOperand8(r vm.Reg8) Operand   { return Operand{Kind: KindReg8, Reg8: r} }
func SPOperand() Operand              { return Operand{Kind: KindSP} }
func PCOperand() Operand              { return Operand{Kind: KindPC} }
func ImmOperand(w Width, v uint64) Operand { return Operand{Kind: KindImm, ImmWidth: w, ImmValue: v} }
func IndirectReg32Operand(r vm.Reg32) Operand {
	return Operand{Kind: KindIndirectReg32, Reg32: r}
}
func IndirectImm32Operand(v uint64) Operand {
	return Operand{Kind: KindIndirectImm32, ImmWidth: DWord, ImmValue: v}
}
