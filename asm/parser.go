package asm

import (
	"fmt"

	"github.com/maxgmr/mfs16go/encoder"
	"github.com/maxgmr/mfs16go/vm"
)

// reservedMnemonics is every keyword the instruction grammar recognises,
// per spec.md §4.3/§6. A variable may not be named after one of these
// (spec.md §7's "variable named after a reserved instruction mnemonic").
var reservedMnemonics = buildReservedMnemonics()

func buildReservedMnemonics() map[string]bool {
	m := map[string]bool{}
	base := []string{
		"NOP", "HALT", "STOP", "EI", "DI", "CLV", "RET", "RETI",
		"LD", "LDI", "LDD", "LDR", "VLD", "VLDI", "VLDD",
		"ADD", "ADC", "SUB", "SBB", "AND", "OR", "XOR", "CMP",
		"TCP", "INC", "DEC", "NOT", "PSS", "RAND",
		"ASR", "ASL", "LSR", "RTR", "RTL", "RCR", "RCL",
		"BIT", "STB", "RSB", "TGB", "SWP",
		"PUSH", "POP", "PEEK", "JP", "JR", "CALL",
		"SZF", "RZF", "TZF", "SCF", "RCF", "TCF", "SOF", "ROF", "TOF",
		"SPF", "RPF", "TPF", "SNF", "RNF", "TNF", "SAF", "RAF",
	}
	for _, s := range base {
		m[s] = true
	}
	for _, letter := range []string{"Z", "C", "O", "P", "N"} {
		m["JP"+letter] = true
		m["JN"+letter] = true
		m["CL"+letter] = true
		m["CN"+letter] = true
		m["RT"+letter] = true
		m["RN"+letter] = true
	}
	return m
}

type operandForm int

const (
	formReg16 operandForm = iota
	formReg32
	formReg8
	formSP
	formPC
	formLiteral
	formIdent
	formIndirectReg32
	formIndirectImm32
)

// rawOperand is an operand as the grammar parses it, before identifiers
// are resolved against the symbol table (which differs by pass).
type rawOperand struct {
	form  operandForm
	reg16 vm.Reg16
	reg32 vm.Reg32
	reg8  vm.Reg8
	lit   Token
	ident string
}

func (o rawOperand) String() string {
	switch o.form {
	case formReg16:
		return o.reg16.String()
	case formReg32:
		return o.reg32.String()
	case formReg8:
		return o.reg8.String()
	case formSP:
		return "SP"
	case formPC:
		return "PC"
	case formLiteral:
		return o.lit.Text
	case formIdent:
		return o.ident
	case formIndirectReg32:
		return "[" + o.reg32.String() + "]"
	case formIndirectImm32:
		return fmt.Sprintf("[%#x]", o.lit.NumValue)
	}
	return "?"
}

type stmtKind int

const (
	stmtEOF stmtKind = iota
	stmtLabelDecl
	stmtAbsLabel
	stmtVarAssign
	stmtByteArray
	stmtInstr
)

type stmt struct {
	kind         stmtKind
	pos          Position
	labelName    string
	declTokenIdx int
	absLit       Token
	varName      string
	varLit       Token
	bytes        []rawOperand
	mnemonic     string
	operands     []rawOperand
}

// Parser walks a token stream twice, per spec.md §4.7.
type Parser struct {
	tokens   []Token
	filename string
	src      string
	symbols  *SymbolTable
}

// NewParser builds a Parser over the tokens lexed from src.
func NewParser(tokens []Token, src, filename string) *Parser {
	return &Parser{tokens: tokens, filename: filename, src: src, symbols: NewSymbolTable()}
}

func (p *Parser) posOf(t Token) Position {
	return Position{Filename: p.filename, Line: t.Line, Col: t.Col}
}

func (p *Parser) errorAt(t Token, msg string) error {
	return newError(p.src, p.posOf(t), msg)
}

// Assemble lexes and parses src, returning the assembled byte stream.
func Assemble(src, filename string) ([]byte, error) {
	toks, err := NewLexer(src, filename).Lex()
	if err != nil {
		return nil, err
	}
	return NewParser(toks, src, filename).Run()
}

// Run executes both passes and returns the final byte stream.
func (p *Parser) Run() ([]byte, error) {
	stmts, err := p.parseAll()
	if err != nil {
		return nil, err
	}

	// Pre-scan every label name in the file so pass 1 can tell "forward
	// reference to a label declared later" apart from "undefined
	// identifier", per spec.md §4.7.
	allLabels := map[string]bool{}
	for _, s := range stmts {
		if s.kind == stmtLabelDecl {
			allLabels[s.labelName] = true
		}
	}

	if _, err := p.walk(stmts, 1, allLabels, nil); err != nil {
		return nil, err
	}

	p.rewriteResolvedLabels()

	// Re-parse: the rewrite mutated KindIdent tokens into KindNumber
	// tokens in place, so statement boundaries are unaffected but operand
	// literals must be re-read from the (now-authoritative) token stream.
	stmts, err = p.parseAll()
	if err != nil {
		return nil, err
	}

	var out []byte
	if _, err := p.walk(stmts, 2, allLabels, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Parser) parseAll() ([]stmt, error) {
	var stmts []stmt
	i := 0
	for {
		s, next, err := p.parseStatement(i)
		if err != nil {
			return nil, err
		}
		if s.kind == stmtEOF {
			return stmts, nil
		}
		stmts = append(stmts, s)
		i = next
	}
}

func (p *Parser) tok(i int) Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // trailing EOF
	}
	return p.tokens[i]
}

func (p *Parser) parseStatement(i int) (stmt, int, error) {
	t := p.tok(i)
	if t.Kind == KindEOF {
		return stmt{kind: stmtEOF}, i, nil
	}

	if (t.Kind == KindIdent || t.Kind == KindNumber) && p.tok(i+1).Kind == KindColon {
		if t.Kind == KindIdent {
			return stmt{kind: stmtLabelDecl, pos: p.posOf(t), labelName: t.Text, declTokenIdx: i}, i + 2, nil
		}
		return stmt{kind: stmtAbsLabel, pos: p.posOf(t), absLit: t}, i + 2, nil
	}

	if t.Kind == KindIdent && p.tok(i+1).Kind == KindEquals {
		lit := p.tok(i + 2)
		if lit.Kind != KindNumber && lit.Kind != KindIdent {
			return stmt{}, i, p.errorAt(lit, "expected a literal or variable name after '='")
		}
		semi := p.tok(i + 3)
		if semi.Kind != KindSemicolon {
			return stmt{}, i, p.errorAt(semi, "expected ';' after variable assignment")
		}
		return stmt{kind: stmtVarAssign, pos: p.posOf(t), varName: t.Text, varLit: lit}, i + 4, nil
	}

	if t.Kind == KindLBracket {
		j := i + 1
		var elems []rawOperand
		for {
			ct := p.tok(j)
			if ct.Kind == KindRBracket {
				j++
				break
			}
			if len(elems) > 0 {
				if ct.Kind != KindComma {
					return stmt{}, i, p.errorAt(ct, "expected ',' in byte array")
				}
				j++
				ct = p.tok(j)
			}
			switch ct.Kind {
			case KindNumber:
				elems = append(elems, rawOperand{form: formLiteral, lit: ct})
			case KindIdent:
				elems = append(elems, rawOperand{form: formIdent, ident: ct.Text})
			default:
				return stmt{}, i, p.errorAt(ct, "expected a byte literal in byte array")
			}
			j++
		}
		return stmt{kind: stmtByteArray, pos: p.posOf(t), bytes: elems}, j, nil
	}

	if t.Kind != KindIdent {
		return stmt{}, i, p.errorAt(t, "expected a label, variable assignment, byte array, or instruction")
	}

	j := i + 1
	var ops []rawOperand
	if p.tok(j).Kind != KindSemicolon {
		for {
			op, next, err := p.parseOperand(j)
			if err != nil {
				return stmt{}, i, err
			}
			ops = append(ops, op)
			j = next
			if p.tok(j).Kind == KindComma {
				j++
				continue
			}
			break
		}
	}
	semi := p.tok(j)
	if semi.Kind != KindSemicolon {
		return stmt{}, i, p.errorAt(semi, "expected ';' after instruction")
	}
	return stmt{kind: stmtInstr, pos: p.posOf(t), mnemonic: t.Text, operands: ops}, j + 1, nil
}

func (p *Parser) parseOperand(i int) (rawOperand, int, error) {
	t := p.tok(i)
	switch t.Kind {
	case KindReg16:
		return rawOperand{form: formReg16, reg16: t.Reg16}, i + 1, nil
	case KindReg32:
		return rawOperand{form: formReg32, reg32: t.Reg32}, i + 1, nil
	case KindReg8:
		return rawOperand{form: formReg8, reg8: t.Reg8}, i + 1, nil
	case KindSP:
		return rawOperand{form: formSP}, i + 1, nil
	case KindPC:
		return rawOperand{form: formPC}, i + 1, nil
	case KindNumber:
		return rawOperand{form: formLiteral, lit: t}, i + 1, nil
	case KindIdent:
		return rawOperand{form: formIdent, ident: t.Text}, i + 1, nil
	case KindLBracket:
		inner := p.tok(i + 1)
		switch inner.Kind {
		case KindReg32:
			if p.tok(i+2).Kind != KindRBracket {
				return rawOperand{}, i, p.errorAt(p.tok(i+2), "expected ']'")
			}
			return rawOperand{form: formIndirectReg32, reg32: inner.Reg32}, i + 3, nil
		case KindNumber:
			if p.tok(i+2).Kind != KindRBracket {
				return rawOperand{}, i, p.errorAt(p.tok(i+2), "expected ']'")
			}
			return rawOperand{form: formIndirectImm32, lit: inner}, i + 3, nil
		default:
			return rawOperand{}, i, p.errorAt(inner, "expected a register pair or literal address inside '['")
		}
	}
	return rawOperand{}, i, p.errorAt(t, "expected an operand")
}

// rewriteResolvedLabels rewrites every identifier token that resolves to
// a label (other than its own declaration site) into a DWord literal
// token carrying the resolved address, preserving its source span, per
// spec.md §3/§4.7.
func (p *Parser) rewriteResolvedLabels() {
	for idx, t := range p.tokens {
		if t.Kind != KindIdent || p.symbols.DeclTokens[idx] {
			continue
		}
		if addr, ok := p.symbols.ResolveLabel(t.Text); ok {
			p.tokens[idx].Kind = KindNumber
			p.tokens[idx].NumWidth = encoder.DWord
			p.tokens[idx].NumValue = uint64(addr)
		}
	}
}

// walk runs one full pass over stmts, tracking the byte offset exactly
// as the final emission would, declaring labels/variables along the
// way. When out is non-nil, encoded bytes are appended to it.
func (p *Parser) walk(stmts []stmt, pass int, allLabels map[string]bool, out *[]byte) (uint32, error) {
	var offset uint32
	for _, s := range stmts {
		n, b, err := p.stmtBytes(s, pass, offset, allLabels)
		if err != nil {
			return 0, err
		}
		offset += n
		if out != nil {
			*out = append(*out, b...)
		}
	}
	return offset, nil
}

func (p *Parser) stmtBytes(s stmt, pass int, offset uint32, allLabels map[string]bool) (uint32, []byte, error) {
	switch s.kind {
	case stmtLabelDecl:
		if pass == 1 {
			if !p.symbols.DeclareLabel(s.labelName, offset) {
				return 0, nil, newError(p.src, s.pos, fmt.Sprintf("label %q redeclared", s.labelName))
			}
			p.symbols.DeclTokens[s.declTokenIdx] = true
		}
		return 0, nil, nil

	case stmtAbsLabel:
		target := s.absLit.NumValue
		if target < uint64(offset) {
			return 0, nil, newError(p.src, s.pos, fmt.Sprintf("absolute label address %#x is below the current offset %#x", target, offset))
		}
		return uint32(target) - offset, make([]byte, uint32(target)-offset), nil

	case stmtVarAssign:
		if reservedMnemonics[upper(s.varName)] {
			return 0, nil, newError(p.src, s.pos, fmt.Sprintf("%q is a reserved mnemonic and cannot be used as a variable name", s.varName))
		}
		v := Variable{Width: s.varLit.NumWidth, Value: s.varLit.NumValue}
		if s.varLit.Kind == KindIdent {
			src, ok := p.symbols.ResolveVariable(s.varLit.Text)
			if !ok && pass != 1 {
				return 0, nil, newError(p.src, s.pos, fmt.Sprintf("unresolved variable %q", s.varLit.Text))
			}
			v = src
		}
		p.symbols.SetVariable(s.varName, v)
		return 0, nil, nil

	case stmtByteArray:
		b := make([]byte, len(s.bytes))
		for i, el := range s.bytes {
			v, err := p.resolveValue(el, pass == 1, allLabels, s.pos)
			if err != nil {
				return 0, nil, err
			}
			b[i] = byte(v)
		}
		return uint32(len(b)), b, nil

	case stmtInstr:
		ops := make([]encoder.Operand, len(s.operands))
		for i, ro := range s.operands {
			op, err := p.resolveOperand(ro, pass == 1, allLabels, s.pos)
			if err != nil {
				return 0, nil, err
			}
			ops[i] = op
		}
		instr, tail, err := encoder.Encode(s.mnemonic, ops)
		if err != nil {
			return 0, nil, newError(p.src, s.pos, err.Error())
		}
		opcode := vm.IntoOpcode(instr)
		out := append([]byte{byte(opcode), byte(opcode >> 8)}, tail...)
		return uint32(len(out)), out, nil
	}
	return 0, nil, nil
}

func (p *Parser) resolveValue(ro rawOperand, ignoreMissing bool, allLabels map[string]bool, pos Position) (uint64, error) {
	op, err := p.resolveOperand(ro, ignoreMissing, allLabels, pos)
	if err != nil {
		return 0, err
	}
	return op.ImmValue, nil
}

func (p *Parser) resolveOperand(ro rawOperand, ignoreMissing bool, allLabels map[string]bool, pos Position) (encoder.Operand, error) {
	switch ro.form {
	case formReg16:
		return encoder.RegOperand16(ro.reg16), nil
	case formReg32:
		return encoder.RegOperand32(ro.reg32), nil
	case formReg8:
		return encoder.RegOperand8(ro.reg8), nil
	case formSP:
		return encoder.SPOperand(), nil
	case formPC:
		return encoder.PCOperand(), nil
	case formLiteral:
		return encoder.ImmOperand(ro.lit.NumWidth, ro.lit.NumValue), nil
	case formIndirectReg32:
		return encoder.IndirectReg32Operand(ro.reg32), nil
	case formIndirectImm32:
		return encoder.IndirectImm32Operand(ro.lit.NumValue), nil
	case formIdent:
		if v, ok := p.symbols.ResolveVariable(ro.ident); ok {
			return encoder.ImmOperand(v.Width, v.Value), nil
		}
		if addr, ok := p.symbols.ResolveLabel(ro.ident); ok {
			return encoder.ImmOperand(encoder.DWord, uint64(addr)), nil
		}
		if ignoreMissing && allLabels[ro.ident] {
			return encoder.ImmOperand(encoder.DWord, 0), nil
		}
		return encoder.Operand{}, newError(p.src, pos, fmt.Sprintf("unresolved identifier %q", ro.ident))
	}
	return encoder.Operand{}, newError(p.src, pos, "internal error: unrecognised operand form")
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
