package asm

import (
	"fmt"

	"github.com/maxgmr/mfs16go/encoder"
	"github.com/maxgmr/mfs16go/vm"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	KindEOF Kind = iota
	KindNumber
	KindIdent
	KindReg16
	KindReg32
	KindReg8
	KindSP
	KindPC

	// Punctuation, one kind per reserved single character: 18
	// single-character kinds, including the five reserved-for-future-use
	// ones `#`, `&`, `\`, `(`, `)`.
	KindComma
	KindColon
	KindSemicolon
	KindEquals
	KindLBracket
	KindRBracket
	KindLParen
	KindRParen
	KindHash
	KindAmpersand
	KindBackslash
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindPipe
	KindCaret
)

var kindNames = map[Kind]string{
	KindEOF: "EOF", KindNumber: "NUMBER", KindIdent: "IDENT",
	KindReg16: "REG16", KindReg32: "REG32", KindReg8: "REG8",
	KindSP: "SP", KindPC: "PC",
	KindComma: ",", KindColon: ":", KindSemicolon: ";", KindEquals: "=",
	KindLBracket: "[", KindRBracket: "]", KindLParen: "(", KindRParen: ")",
	KindHash: "#", KindAmpersand: "&", KindBackslash: "\\",
	KindPlus: "+", KindMinus: "-", KindStar: "*", KindSlash: "/",
	KindPercent: "%", KindPipe: "|", KindCaret: "^",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// singleCharKinds maps every reserved punctuation rune to its Kind.
var singleCharKinds = map[rune]Kind{
	',': KindComma, ':': KindColon, ';': KindSemicolon, '=': KindEquals,
	'[': KindLBracket, ']': KindRBracket, '(': KindLParen, ')': KindRParen,
	'#': KindHash, '&': KindAmpersand, '\\': KindBackslash,
	'+': KindPlus, '-': KindMinus, '*': KindStar, '/': KindSlash,
	'%': KindPercent, '|': KindPipe, '^': KindCaret,
}

// Token is a (start, end, kind) triple plus the decoded literal payload,
// per spec.md §3's Token data model.
type Token struct {
	Kind       Kind
	Start, End int // byte offsets into the source
	Line, Col  int // 1-based line, 1-based UTF-8-codepoint column of Start

	Text string // raw source text (identifiers, punctuation)

	// Populated for KindNumber.
	NumWidth encoder.Width
	NumValue uint64

	// Populated for KindReg16/KindReg32/KindReg8.
	Reg16 vm.Reg16
	Reg32 vm.Reg32
	Reg8  vm.Reg8
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Col)
}
