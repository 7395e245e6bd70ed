package asm

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maxgmr/mfs16go/encoder"
	"github.com/maxgmr/mfs16go/vm"
)

// Lexer turns MFS-16 assembly source into a token stream, mirroring the
// teacher's parser.Lexer shape (one current rune, one-rune lookahead,
// running line/column) but with the MFS-16 numeric-literal and
// register-identifier rules of spec.md §4.6.
type Lexer struct {
	src      string
	filename string
	pos      int // byte offset of ch
	line, col int
	ch       rune
	chSize   int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src, filename string) *Lexer {
	l := &Lexer{src: src, filename: filename, line: 1, col: 0}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos += l.chSize
	if l.pos >= len(l.src) {
		l.ch, l.chSize = 0, 0
		return
	}
	l.ch, l.chSize = utf8.DecodeRuneInString(l.src[l.pos:])
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) peek() rune {
	if l.pos+l.chSize >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+l.chSize:])
	return r
}

func (l *Lexer) errorAt(pos Position, msg string) *Error { return newError(l.src, pos, msg) }

func (l *Lexer) curPos() Position { return Position{Filename: l.filename, Line: l.line, Col: l.col} }

// Lex tokenizes the entire source, returning every token up to and
// including a trailing KindEOF, or the first lexer error encountered.
func (l *Lexer) Lex() ([]Token, error) {
	var toks []Token
	for {
		l.skipWhitespaceAndComments()
		if l.ch == 0 {
			toks = append(toks, Token{Kind: KindEOF, Start: l.pos, End: l.pos, Line: l.line, Col: l.col + 1})
			return toks, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case unicode.IsSpace(l.ch):
			l.advance()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		case l.ch == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for !(l.ch == '*' && l.peek() == '/') && l.ch != 0 {
				l.advance()
			}
			if l.ch != 0 {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) next() (Token, error) {
	startPos := l.curPos()
	startOff := l.pos

	if k, ok := singleCharKinds[l.ch]; ok {
		text := string(l.ch)
		l.advance()
		return Token{Kind: k, Start: startOff, End: l.pos, Line: startPos.Line, Col: startPos.Col, Text: text}, nil
	}

	if unicode.IsDigit(l.ch) {
		return l.lexNumber(startPos, startOff)
	}

	if isIdentStart(l.ch) {
		return l.lexIdent(startPos, startOff)
	}

	return Token{}, l.errorAt(startPos, "unexpected character "+strconvQuoteRune(l.ch))
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentCont(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

func strconvQuoteRune(r rune) string {
	if r == 0 {
		return "EOF"
	}
	return "'" + string(r) + "'"
}

// lexIdent consumes [A-Za-z_][A-Za-z0-9_]* then tries to resolve it as a
// register/pair/half-register/SP/PC name before falling back to a plain
// identifier, matching spec.md §4.6.
func (l *Lexer) lexIdent(startPos Position, startOff int) (Token, error) {
	var b strings.Builder
	for isIdentCont(l.ch) {
		b.WriteRune(l.ch)
		l.advance()
	}
	text := b.String()
	upper := strings.ToUpper(text)
	tok := Token{Kind: KindIdent, Start: startOff, End: l.pos, Line: startPos.Line, Col: startPos.Col, Text: text}

	switch upper {
	case "SP":
		tok.Kind = KindSP
		return tok, nil
	case "PC":
		tok.Kind = KindPC
		return tok, nil
	}
	if r, ok := vm.LookupReg16(upper); ok {
		tok.Kind, tok.Reg16 = KindReg16, r
		return tok, nil
	}
	if r, ok := vm.LookupReg32(upper); ok {
		tok.Kind, tok.Reg32 = KindReg32, r
		return tok, nil
	}
	if r, ok := vm.LookupReg8(upper); ok {
		tok.Kind, tok.Reg8 = KindReg8, r
		return tok, nil
	}
	return tok, nil
}

// lexNumber consumes a numeric literal of the form
// [prefix] digits [type-suffix], prefix in {0x,0o,0b}, suffix in
// {:b,:w,:d,:q}, underscores inside the digit run stripped, default base
// 10 and default width Byte when the suffix is omitted.
func (l *Lexer) lexNumber(startPos Position, startOff int) (Token, error) {
	base := 10
	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		base = 16
		l.advance()
		l.advance()
	} else if l.ch == '0' && (l.peek() == 'o' || l.peek() == 'O') {
		base = 8
		l.advance()
		l.advance()
	} else if l.ch == '0' && (l.peek() == 'b' || l.peek() == 'B') {
		base = 2
		l.advance()
		l.advance()
	}

	var digits strings.Builder
	for isHexDigitOrUnderscore(l.ch) {
		if l.ch != '_' {
			digits.WriteRune(l.ch)
		}
		l.advance()
	}
	if digits.Len() == 0 {
		return Token{}, l.errorAt(startPos, "numeric literal has no digits")
	}

	width := encoder.Byte
	hasSuffix := false
	if l.ch == ':' {
		hasSuffix = true
		l.advance()
		switch l.ch {
		case 'b', 'B':
			width = encoder.Byte
		case 'w', 'W':
			width = encoder.Word
		case 'd', 'D':
			width = encoder.DWord
		case 'q', 'Q':
			width = encoder.QWord
		default:
			return Token{}, l.errorAt(startPos, "missing type suffix after ':' (expected b, w, d or q)")
		}
		l.advance()
	}
	_ = hasSuffix

	val, err := parseUintBase(digits.String(), base)
	if err != nil {
		return Token{}, l.errorAt(startPos, "invalid numeric literal: "+err.Error())
	}
	if val > width.MaxValue() {
		return Token{}, l.errorAt(startPos, "numeric literal "+digits.String()+" overflows declared width "+width.String())
	}

	return Token{
		Kind: KindNumber, Start: startOff, End: l.pos, Line: startPos.Line, Col: startPos.Col,
		Text: digits.String(), NumWidth: width, NumValue: val,
	}, nil
}

func isHexDigitOrUnderscore(r rune) bool {
	return r == '_' || unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func parseUintBase(digits string, base int) (uint64, error) {
	var val uint64
	for _, c := range digits {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		}
		if d >= uint64(base) {
			return 0, errInvalidDigit
		}
		val = val*uint64(base) + d
	}
	return val, nil
}

var errInvalidDigit = errors.New("digit out of range for numeric base")
