package encoder

import (
	"fmt"
	"strings"

	"github.com/maxgmr/mfs16go/vm"
)

// Encode resolves a mnemonic plus its already-parsed operands to a
// vm.Instruction and the little-endian immediate tail (0, 1, 2 or 4
// bytes) that follows its 2-byte opcode, per spec.md §4.3/§4.7. On no
// operand-combination match it reports the exact message spec.md §4.7
// requires: "'op1, op2' are invalid operand(s) for MNEMONIC".
func Encode(mnemonic string, ops []Operand) (vm.Instruction, []byte, error) {
	m := strings.ToUpper(mnemonic)

	switch m {
	case "NOP":
		return simple("Nop", ops, 0)
	case "HALT":
		return simple("Halt", ops, 0)
	case "STOP":
		return simple("Stop", ops, 0)
	case "EI":
		return simple("Ei", ops, 0)
	case "DI":
		return simple("Di", ops, 0)
	case "CLV":
		return simple("Clv", ops, 0)
	case "RET":
		return simple("Ret", ops, 0)
	case "RETI":
		return simple("Reti", ops, 0)

	case "LD":
		return encodeLd(m, ops)
	case "LDI":
		return encodeLdIncDec(m, "i", ops)
	case "LDD":
		return encodeLdIncDec(m, "d", ops)
	case "LDR":
		return encodeLdr(m, ops)
	case "VLD":
		return encodeVld(m, "", ops)
	case "VLDI":
		return encodeVld(m, "i", ops)
	case "VLDD":
		return encodeVld(m, "d", ops)

	case "ADD", "ADC", "SUB", "SBB", "AND", "OR", "XOR", "MULU", "MULI", "DIVU", "DIVI":
		return encodeAluLike(m, titleCase(m), ops)
	case "CMP":
		return encodeCmp(m, ops)

	case "TCP", "INC", "DEC", "NOT":
		return encodeUnary(m, titleCase(m), ops)
	case "PSS":
		return encodePss(m, ops)
	case "RAND":
		return encodeUnary(m, "Rand", ops)

	case "ASR", "ASL", "LSR", "RTR", "RTL", "RCR", "RCL":
		return encodeShift(m, titleCase(m), ops)

	case "BIT":
		return encodeBitTest(m, ops)
	case "STB", "RSB", "TGB":
		return encodeBitOp(m, titleCase(m), ops)
	case "SWP":
		return encodeSwp(m, ops)

	case "PUSH":
		return encodePush(m, ops)
	case "POP":
		return encodePop(m, ops)
	case "PEEK":
		return encodePeek(m, ops)

	case "JP":
		return encodeBranch(m, "Jp", ops)
	case "JR":
		return encodeBranch(m, "Jr", ops)
	case "CALL":
		return encodeBranch(m, "Call", ops)
	}

	if name, ok := flagOpNames[m]; ok {
		return simple(name, ops, 0)
	}
	if idx, ok := matchCond(m, "JP", "JN"); ok {
		return encodeCondBranch(m, "Jp", "Jn", idx, ops)
	}
	if idx, ok := matchCond(m, "CL", "CN"); ok {
		return encodeCondBranch(m, "Cl", "Cn", idx, ops)
	}
	if idx, ok := matchCond(m, "RT", "RN"); ok {
		return encodeCondRet(m, idx, ops)
	}

	return vm.Instruction{}, nil, fmt.Errorf("unknown mnemonic %q", mnemonic)
}

var flagOpNames = map[string]string{
	"SZF": "Szf", "RZF": "Rzf", "TZF": "Tzf",
	"SCF": "Scf", "RCF": "Rcf", "TCF": "Tcf",
	"SOF": "Sof", "ROF": "Rof", "TOF": "Tof",
	"SPF": "Spf", "RPF": "Rpf", "TPF": "Tpf",
	"SNF": "Snf", "RNF": "Rnf", "TNF": "Tnf",
	"SAF": "Saf", "RAF": "Raf",
}

// titleCase renders an all-caps mnemonic as Go's exported-identifier
// case ("ADD" -> "Add"), matching how opcode_table.go names each Op.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]) + strings.ToLower(s[1:])
}

// mk looks up name in the opcode table and fills in instr.Op. A miss
// means the caller built a name the table doesn't have for this operand
// combination — spec.md §7's "Encoder error: register nibble out of
// range (should be unreachable from the parser; indicates an internal
// bug)".
func mk(mnemonic, name string, instr vm.Instruction, tail []byte) (vm.Instruction, []byte, error) {
	op, ok := vm.OpByName(name)
	if !ok {
		return vm.Instruction{}, nil, fmt.Errorf("internal encoder error: no opcode for %s (mnemonic %s)", name, mnemonic)
	}
	instr.Op = op
	return instr, tail, nil
}

func invalidOperands(mnemonic string, ops []Operand) error {
	parts := make([]string, len(ops))
	for i, o := range ops {
		parts[i] = o.String()
	}
	return fmt.Errorf("'%s' are invalid operand(s) for %s", strings.Join(parts, ", "), mnemonic)
}

func simple(name string, ops []Operand, wantOperands int) (vm.Instruction, []byte, error) {
	if len(ops) != wantOperands {
		return vm.Instruction{}, nil, invalidOperands(name, ops)
	}
	return mk(name, name, vm.Instruction{}, nil)
}

// immTail renders v as a little-endian byte tail of w's width.
func immTail(w Width, v uint64) []byte {
	n := w.Bytes()
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func (o Operand) String() string {
	switch o.Kind {
	case KindReg16:
		return o.Reg16.String()
	case KindReg32:
		return o.Reg32.String()
	case KindReg8:
		return o.Reg8.String()
	case KindSP:
		return "SP"
	case KindPC:
		return "PC"
	case KindImm:
		return fmt.Sprintf("%d", o.ImmValue)
	case KindIndirectReg32:
		return "[" + o.Reg32.String() + "]"
	case KindIndirectImm32:
		return fmt.Sprintf("[%#X]", o.ImmValue)
	default:
		return "?"
	}
}

// --- data move family ---

func encodeLd(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	a, b := ops[0], ops[1]
	switch {
	case a.Kind == KindReg16 && b.Kind == KindReg16:
		return mk(m, "LdRaRb", vm.Instruction{Ra: a.Reg16, Rb: b.Reg16}, nil)
	case a.Kind == KindReg32 && b.Kind == KindReg32:
		return mk(m, "LdBraBrb", vm.Instruction{Bra: a.Reg32, Brb: b.Reg32}, nil)
	case a.Kind == KindSP && b.Kind == KindImm:
		return mk(m, "LdSpImm32", vm.Instruction{}, immTail(DWord, b.ImmValue))
	case a.Kind == KindIndirectImm32 && b.Kind == KindSP:
		return mk(m, "LdImm32Sp", vm.Instruction{}, immTail(DWord, a.ImmValue))
	case a.Kind == KindSP && b.Kind == KindReg32:
		return mk(m, "LdSpBra", vm.Instruction{Bra: b.Reg32}, nil)
	case a.Kind == KindReg32 && b.Kind == KindSP:
		return mk(m, "LdBraSp", vm.Instruction{Bra: a.Reg32}, nil)
	case a.Kind == KindReg8 && b.Kind == KindReg8:
		return mk(m, "LdVraVrb", vm.Instruction{Vra: a.Reg8, Vrb: b.Reg8}, nil)
	case a.Kind == KindReg16 && b.Kind == KindImm:
		return mk(m, "LdRaImm16", vm.Instruction{Ra: a.Reg16}, immTail(Word, b.ImmValue))
	case a.Kind == KindIndirectReg32 && b.Kind == KindImm && b.ImmWidth == DWord:
		return mk(m, "LdBraImm32", vm.Instruction{Bra: a.Reg32}, immTail(DWord, b.ImmValue))
	case a.Kind == KindIndirectReg32 && b.Kind == KindImm:
		return mk(m, "LdBraImm16", vm.Instruction{Bra: a.Reg32}, immTail(Word, b.ImmValue))
	case a.Kind == KindReg8 && b.Kind == KindImm:
		return mk(m, "LdVraImm8", vm.Instruction{Vra: a.Reg8}, immTail(Byte, b.ImmValue))
	case a.Kind == KindIndirectReg32 && b.Kind == KindReg16:
		return mk(m, "LdBraRb", vm.Instruction{Bra: a.Reg32, Rb: b.Reg16}, nil)
	case a.Kind == KindReg16 && b.Kind == KindIndirectReg32:
		return mk(m, "LdRaBrb", vm.Instruction{Ra: a.Reg16, Brb: b.Reg32}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodeLdIncDec(m, dir string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	a, b := ops[0], ops[1]
	switch {
	case a.Kind == KindIndirectReg32 && b.Kind == KindReg16:
		return mk(m, "Ld"+dir+"BraRb", vm.Instruction{Bra: a.Reg32, Rb: b.Reg16}, nil)
	case a.Kind == KindReg16 && b.Kind == KindIndirectReg32:
		return mk(m, "Ld"+dir+"RaBrb", vm.Instruction{Ra: a.Reg16, Brb: b.Reg32}, nil)
	case a.Kind == KindIndirectReg32 && b.Kind == KindImm:
		return mk(m, "Ld"+dir+"BraImm16", vm.Instruction{Bra: a.Reg32}, immTail(Word, b.ImmValue))
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodeLdr(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 || ops[0].Kind != KindReg16 || ops[1].Kind != KindImm {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	return mk(m, "LdrRaImm32", vm.Instruction{Ra: ops[0].Reg16}, immTail(DWord, ops[1].ImmValue))
}

func encodeVld(m, dir string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 || ops[0].Kind != KindIndirectReg32 || ops[1].Kind != KindIndirectReg32 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	return mk(m, "Vld"+dir+"BraBrb", vm.Instruction{Bra: ops[0].Reg32, Brb: ops[1].Reg32}, nil)
}

// --- ALU-shaped families: ADD/ADC/SUB/SBB/AND/OR/XOR/MULU/MULI/DIVU/DIVI
// share the same seven operand shapes. ---

func encodeAluLike(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if instr, tail, err := aluShape(m, family, ops); err == nil {
		return instr, tail, nil
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func aluShape(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	a, b := ops[0], ops[1]
	switch {
	case a.Kind == KindReg16 && b.Kind == KindReg16:
		return mk(m, family+"RaRb", vm.Instruction{Ra: a.Reg16, Rb: b.Reg16}, nil)
	case a.Kind == KindReg32 && b.Kind == KindReg32:
		return mk(m, family+"BraBrb", vm.Instruction{Bra: a.Reg32, Brb: b.Reg32}, nil)
	case a.Kind == KindReg8 && b.Kind == KindReg8:
		return mk(m, family+"VraVrb", vm.Instruction{Vra: a.Reg8, Vrb: b.Reg8}, nil)
	case a.Kind == KindReg16 && b.Kind == KindIndirectReg32:
		return mk(m, family+"RaBrb", vm.Instruction{Ra: a.Reg16, Brb: b.Reg32}, nil)
	case a.Kind == KindReg16 && b.Kind == KindImm:
		return mk(m, family+"RaImm16", vm.Instruction{Ra: a.Reg16}, immTail(Word, b.ImmValue))
	case a.Kind == KindReg32 && b.Kind == KindImm:
		return mk(m, family+"BraImm32", vm.Instruction{Bra: a.Reg32}, immTail(DWord, b.ImmValue))
	case a.Kind == KindReg8 && b.Kind == KindImm:
		return mk(m, family+"VraImm8", vm.Instruction{Vra: a.Reg8}, immTail(Byte, b.ImmValue))
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodeCmp(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	if instr, tail, err := aluShape(m, "Cmp", ops); err == nil {
		return instr, tail, nil
	}
	a, b := ops[0], ops[1]
	switch {
	case a.Kind == KindImm && b.Kind == KindReg16:
		return mk(m, "CmpImm16Ra", vm.Instruction{Ra: b.Reg16}, immTail(Word, a.ImmValue))
	case a.Kind == KindImm && b.Kind == KindReg32:
		return mk(m, "CmpImm32Bra", vm.Instruction{Bra: b.Reg32}, immTail(DWord, a.ImmValue))
	case a.Kind == KindImm && b.Kind == KindReg8:
		return mk(m, "CmpImm8Vra", vm.Instruction{Vra: b.Reg8}, immTail(Byte, a.ImmValue))
	case a.Kind == KindIndirectReg32 && b.Kind == KindReg16:
		return mk(m, "CmpBraRb", vm.Instruction{Bra: a.Reg32, Rb: b.Reg16}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

// --- unary families: TCP/INC/DEC/NOT/RAND share Ra/Bra/Vra. ---

func encodeUnary(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindReg16:
		return mk(m, family+"Ra", vm.Instruction{Ra: ops[0].Reg16}, nil)
	case KindReg32:
		return mk(m, family+"Bra", vm.Instruction{Bra: ops[0].Reg32}, nil)
	case KindReg8:
		return mk(m, family+"Vra", vm.Instruction{Vra: ops[0].Reg8}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodePss(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindReg16, KindReg32, KindReg8:
		return encodeUnary(m, "Pss", ops)
	case KindImm:
		switch ops[0].ImmWidth {
		case Word:
			return mk(m, "PssImm16", vm.Instruction{}, immTail(Word, ops[0].ImmValue))
		case DWord:
			return mk(m, "PssImm32", vm.Instruction{}, immTail(DWord, ops[0].ImmValue))
		default:
			return mk(m, "PssImm8", vm.Instruction{}, immTail(Byte, ops[0].ImmValue))
		}
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

// --- shifts/rotates: register plus an embedded 4-bit count. ---

func encodeShift(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 || ops[1].Kind != KindImm || ops[1].ImmValue > 15 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	b := uint8(ops[1].ImmValue)
	switch ops[0].Kind {
	case KindReg16:
		return mk(m, family+"RaB", vm.Instruction{Ra: ops[0].Reg16, B: b}, nil)
	case KindReg32:
		return mk(m, family+"BraB", vm.Instruction{Bra: ops[0].Reg32, B: b}, nil)
	case KindReg8:
		return mk(m, family+"VraB", vm.Instruction{Vra: ops[0].Reg8, B: b}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

// --- bit family: BIT/STB/RSB/TGB. The Bra form addresses memory, so it
// takes a bracketed pair operand, unlike the shift family's plain pair.

func encodeBitTest(m string, ops []Operand) (vm.Instruction, []byte, error) {
	return encodeBitOp(m, "Bit", ops)
}

func encodeBitOp(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 2 || ops[1].Kind != KindImm || ops[1].ImmValue > 15 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	b := uint8(ops[1].ImmValue)
	switch ops[0].Kind {
	case KindReg16:
		return mk(m, family+"RaB", vm.Instruction{Ra: ops[0].Reg16, B: b}, nil)
	case KindIndirectReg32:
		return mk(m, family+"BraB", vm.Instruction{Bra: ops[0].Reg32, B: b}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodeSwp(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindReg16:
		return mk(m, "SwpRa", vm.Instruction{Ra: ops[0].Reg16}, nil)
	case KindIndirectReg32:
		return mk(m, "SwpBra", vm.Instruction{Bra: ops[0].Reg32}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

// --- stack ---

func encodePush(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindReg32:
		return mk(m, "PushBra", vm.Instruction{Bra: ops[0].Reg32}, nil)
	case KindImm:
		return mk(m, "PushImm32", vm.Instruction{}, immTail(DWord, ops[0].ImmValue))
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodePop(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 || ops[0].Kind != KindReg32 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	return mk(m, "PopBra", vm.Instruction{Bra: ops[0].Reg32}, nil)
}

func encodePeek(m string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 || ops[0].Kind != KindReg32 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	return mk(m, "PeekBra", vm.Instruction{Bra: ops[0].Reg32}, nil)
}

// --- branches: unconditional JP/JR/CALL and conditional families ---

func encodeBranch(m, family string, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindImm:
		return mk(m, family+"Imm32", vm.Instruction{}, immTail(DWord, ops[0].ImmValue))
	case KindReg32:
		return mk(m, family+"Bra", vm.Instruction{Bra: ops[0].Reg32}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

// condLetters gives the flag-initial letter for each of the five
// condition flags, in the Z/C/O/P/N order vm.CondFlags uses.
var condLetters = [5]byte{'Z', 'C', 'O', 'P', 'N'}

// matchCond checks whether m is truePrefix or falsePrefix followed by
// one of the five condition letters, returning the matching index into
// vm.CondFlags (0..9, true-then-false per flag, e.g. "JPZ" -> 0, "JNZ" ->
// 1, "JPC" -> 2, ...).
func matchCond(m, truePrefix, falsePrefix string) (int, bool) {
	for i, letter := range condLetters {
		if m == truePrefix+string(letter) {
			return 2 * i, true
		}
		if m == falsePrefix+string(letter) {
			return 2*i + 1, true
		}
	}
	return 0, false
}

func encodeCondBranch(m, truePrefix, falsePrefix string, idx int, ops []Operand) (vm.Instruction, []byte, error) {
	letter := strings.ToLower(string(condLetters[idx/2]))
	var family string
	if idx%2 == 0 {
		family = titleCase(truePrefix) + letter
	} else {
		family = titleCase(falsePrefix) + letter
	}
	flag, expected := vm.CondFlags[idx].Flag, vm.CondFlags[idx].Expected
	if len(ops) != 1 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	switch ops[0].Kind {
	case KindImm:
		return mk(m, family+"Imm32", vm.Instruction{Flag: flag, Expected: expected}, immTail(DWord, ops[0].ImmValue))
	case KindReg32:
		return mk(m, family+"Bra", vm.Instruction{Bra: ops[0].Reg32, Flag: flag, Expected: expected}, nil)
	}
	return vm.Instruction{}, nil, invalidOperands(m, ops)
}

func encodeCondRet(m string, idx int, ops []Operand) (vm.Instruction, []byte, error) {
	if len(ops) != 0 {
		return vm.Instruction{}, nil, invalidOperands(m, ops)
	}
	letter := strings.ToLower(string(condLetters[idx/2]))
	var family string
	if idx%2 == 0 {
		family = "Rt" + letter
	} else {
		family = "Rn" + letter
	}
	flag, expected := vm.CondFlags[idx].Flag, vm.CondFlags[idx].Expected
	return mk(m, family, vm.Instruction{Flag: flag, Expected: expected}, nil)
}
