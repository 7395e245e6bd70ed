package vm

import "fmt"

// Op names one instruction variant. Every Op has a fixed opcode (via
// IntoOpcode/FromOpcode, see opcode_table.go) and a fixed step count (see
// NumSteps).
type Op int

const (
	OpInvalid Op = iota
	Nop

	// Data move.
	LdRaRb
	LdBraBrb
	LdSpImm32
	LdImm32Sp
	LdSpBra
	LdBraSp
	LdVraVrb
	LdRaImm16
	LdBraImm32
	LdVraImm8
	LdBraImm16
	LdBraRb
	LdRaBrb
	LdrRaImm32
	LdiBraRb
	LddBraRb
	LdiRaBrb
	LddRaBrb
	LdiBraImm16
	LddBraImm16
	VldBraBrb
	VldiBraBrb
	VlddBraBrb

	// Arithmetic.
	AddRaRb
	AddBraBrb
	AddVraVrb
	AdcRaRb
	AdcBraBrb
	AdcVraVrb
	SubRaRb
	SubBraBrb
	SubVraVrb
	SbbRaRb
	SbbBraBrb
	SbbVraVrb
	AddRaImm16
	AdcRaImm16
	AddBraImm32
	AdcBraImm32
	AddVraImm8
	AdcVraImm8
	SubRaImm16
	SbbRaImm16
	SubBraImm32
	SbbBraImm32
	SubVraImm8
	SbbVraImm8
	AddRaBrb
	AdcRaBrb
	SubRaBrb
	SbbRaBrb

	// Unary arithmetic.
	TcpRa
	TcpBra
	TcpVra
	IncRa
	IncBra
	IncVra
	DecRa
	DecBra
	DecVra
	PssRa
	PssBra
	PssVra
	PssImm16
	PssImm32
	PssImm8

	// Logic.
	AndRaRb
	AndBraBrb
	AndVraVrb
	AndRaBrb
	OrRaRb
	OrBraBrb
	OrVraVrb
	OrRaBrb
	XorRaRb
	XorBraBrb
	XorVraVrb
	XorRaBrb
	AndRaImm16
	AndBraImm32
	AndVraImm8
	OrRaImm16
	OrBraImm32
	OrVraImm8
	XorRaImm16
	XorBraImm32
	XorVraImm8
	NotRa
	NotBra
	NotVra

	// Shifts/rotates.
	AsrRaB
	AsrBraB
	AsrVraB
	AslRaB
	AslBraB
	AslVraB
	LsrRaB
	LsrBraB
	LsrVraB
	RtrRaB
	RtrBraB
	RtrVraB
	RtlRaB
	RtlBraB
	RtlVraB
	RcrRaB
	RcrBraB
	RcrVraB
	RclRaB
	RclBraB
	RclVraB

	// Comparison/bit.
	CmpRaRb
	CmpBraBrb
	CmpVraVrb
	CmpRaImm16
	CmpBraImm32
	CmpVraImm8
	CmpImm16Ra
	CmpImm32Bra
	CmpImm8Vra
	CmpRaBrb
	CmpBraRb
	BitRaB
	BitBraB
	StbRaB
	StbBraB
	RsbRaB
	RsbBraB
	TgbRaB
	TgbBraB

	// Swap.
	SwpRa
	SwpBra

	// Flag ops.
	Szf
	Rzf
	Tzf
	Scf
	Rcf
	Tcf
	Sof
	Rof
	Tof
	Spf
	Rpf
	Tpf
	Snf
	Rnf
	Tnf
	Saf
	Raf

	// MUL/DIV/RAND.
	MuluRaRb
	MuluBraBrb
	MuluVraVrb
	MuluRaBrb
	MuluRaImm16
	MuluBraImm32
	MuluVraImm8
	MuliRaRb
	MuliBraBrb
	MuliVraVrb
	MuliRaBrb
	MuliRaImm16
	MuliBraImm32
	MuliVraImm8
	DivuRaRb
	DivuBraBrb
	DivuVraVrb
	DivuRaBrb
	DivuRaImm16
	DivuBraImm32
	DivuVraImm8
	DiviRaRb
	DiviBraBrb
	DiviVraVrb
	DiviRaBrb
	DiviRaImm16
	DiviBraImm32
	DiviVraImm8
	RandRa
	RandBra
	RandVra

	// Jumps.
	JpImm32
	JrImm32
	JpzImm32
	JnzImm32
	JpcImm32
	JncImm32
	JpoImm32
	JnoImm32
	JppImm32
	JnpImm32
	JpnImm32
	JnnImm32
	JpBra
	JrBra
	JpzBra
	JnzBra
	JpcBra
	JncBra
	JpoBra
	JnoBra
	JppBra
	JnpBra
	JpnBra
	JnnBra

	// Calls/returns.
	CallImm32
	ClzImm32
	CnzImm32
	ClcImm32
	CncImm32
	CloImm32
	CnoImm32
	ClpImm32
	CnpImm32
	ClnImm32
	CnnImm32
	CallBra
	ClzBra
	CnzBra
	ClcBra
	CncBra
	CloBra
	CnoBra
	ClpBra
	CnpBra
	ClnBra
	CnnBra
	Ret
	Rtz
	Rnz
	Rtc
	Rnc
	Rto
	Rno
	Rtp
	Rnp
	Rtn
	Rnn
	Reti

	// Stack.
	PushBra
	PopBra
	PeekBra
	PushImm32

	// Control.
	Halt
	Stop
	Ei
	Di
	Clv

	numOps
)

// Instruction is a decoded instruction together with its operand payload.
// Only the fields relevant to Op are meaningful; the rest are zero.
type Instruction struct {
	Op       Op
	Ra, Rb   Reg16
	Bra, Brb Reg32
	Vra, Vrb Reg8
	B        uint8 // embedded 4-bit immediate: shift count or bit index
	Flag     Flag
	Expected bool
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s(ra=%s rb=%s bra=%s brb=%s vra=%s vrb=%s b=%d)",
		opNames[i.Op], i.Ra, i.Rb, i.Bra, i.Brb, i.Vra, i.Vrb, i.B)
}

// CondFlags gives the (Flag, expected) pair for each of the ten
// conditional suffixes, in the canonical Z/C/O/P/N, true-then-false order
// used throughout the jump/call/return families.
var CondFlags = [10]struct {
	Flag     Flag
	Expected bool
}{
	{Zero, true}, {Zero, false},
	{Carry, true}, {Carry, false},
	{Overflow, true}, {Overflow, false},
	{Parity, true}, {Parity, false},
	{Negative, true}, {Negative, false},
}
