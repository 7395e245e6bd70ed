package asm

import (
	"testing"

	"github.com/maxgmr/mfs16go/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	toks, err := NewLexer(src, "test.asm").Lex()
	require.NoError(t, err)
	return toks
}

func TestLexNumericLiteralWidthSuffixes(t *testing.T) {
	toks := lexAll(t, "0x0A:b 10:w 0o17:d 0b101:q 42")
	require.Len(t, toks, 6)

	assert.Equal(t, encoder.Byte, toks[0].NumWidth)
	assert.Equal(t, uint64(0x0A), toks[0].NumValue)

	assert.Equal(t, encoder.Word, toks[1].NumWidth)
	assert.Equal(t, uint64(10), toks[1].NumValue)

	assert.Equal(t, encoder.DWord, toks[2].NumWidth)
	assert.Equal(t, uint64(0o17), toks[2].NumValue)

	assert.Equal(t, encoder.QWord, toks[3].NumWidth)
	assert.Equal(t, uint64(0b101), toks[3].NumValue)

	// No suffix defaults to Byte width, per spec.md §4.6.
	assert.Equal(t, encoder.Byte, toks[4].NumWidth)
	assert.Equal(t, uint64(42), toks[4].NumValue)

	assert.Equal(t, KindEOF, toks[5].Kind)
}

func TestLexNumericLiteralOverflowsDeclaredWidth(t *testing.T) {
	_, err := NewLexer("0xFFF:b", "test.asm").Lex()
	assert.Error(t, err)
}

func TestLexRegisterNamesCaseInsensitive(t *testing.T) {
	toks := lexAll(t, "bc BC sp pc a1")
	require.Len(t, toks, 6)
	assert.Equal(t, KindReg32, toks[0].Kind)
	assert.Equal(t, KindReg32, toks[1].Kind)
	assert.Equal(t, KindSP, toks[2].Kind)
	assert.Equal(t, KindPC, toks[3].Kind)
	assert.Equal(t, KindReg8, toks[4].Kind)
}

func TestLexIdentifierFallsBackWhenNotARegisterName(t *testing.T) {
	toks := lexAll(t, "loop_1")
	require.Len(t, toks, 2)
	assert.Equal(t, KindIdent, toks[0].Kind)
	assert.Equal(t, "loop_1", toks[0].Text)
}

func TestLexSkipsLineAndBlockComments(t *testing.T) {
	toks := lexAll(t, "halt; // a comment\n/* another\nspanning lines */ nop;")
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{KindIdent, KindSemicolon, KindIdent, KindSemicolon, KindEOF}, kinds)
}

func TestLexUnexpectedCharacterFails(t *testing.T) {
	_, err := NewLexer("@", "test.asm").Lex()
	assert.Error(t, err)
}
