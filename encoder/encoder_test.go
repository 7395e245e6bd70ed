package encoder

import (
	"testing"

	"github.com/maxgmr/mfs16go/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSimpleNoOperandInstructions(t *testing.T) {
	instr, tail, err := Encode("HALT", nil)
	require.NoError(t, err)
	assert.Equal(t, vm.Instruction{Op: vm.Halt}, instr)
	assert.Empty(t, tail)
}

func TestEncodeAluRegisterRegister(t *testing.T) {
	instr, tail, err := Encode("ADD", []Operand{RegOperand8(vm.A1), RegOperand8(vm.A0)})
	require.NoError(t, err)
	assert.Equal(t, vm.AddVraVrb, instr.Op)
	assert.Equal(t, vm.A1, instr.Vra)
	assert.Equal(t, vm.A0, instr.Vrb)
	assert.Empty(t, tail)
}

func TestEncodeAluRegisterImmediate16AppendsLittleEndianTail(t *testing.T) {
	instr, tail, err := Encode("ADD", []Operand{RegOperand16(vm.A), ImmOperand(Word, 0x0042)})
	require.NoError(t, err)
	assert.Equal(t, vm.AddRaImm16, instr.Op)
	assert.Equal(t, vm.A, instr.Ra)
	assert.Equal(t, []byte{0x42, 0x00}, tail)
}

func TestEncodeLoadIndirectPair(t *testing.T) {
	instr, tail, err := Encode("LD", []Operand{IndirectReg32Operand(vm.HL), ImmOperand(DWord, 0x12345678)})
	require.NoError(t, err)
	assert.Equal(t, vm.LdBraImm32, instr.Op)
	assert.Equal(t, vm.HL, instr.Bra)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, tail)
}

func TestEncodeRejectsInvalidOperandCombination(t *testing.T) {
	_, _, err := Encode("ADD", []Operand{SPOperand(), PCOperand()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operand")
	assert.Contains(t, err.Error(), "ADD")
}

func TestImmTailWidths(t *testing.T) {
	assert.Equal(t, []byte{0xAB}, immTail(Byte, 0xAB))
	assert.Equal(t, []byte{0x34, 0x12}, immTail(Word, 0x1234))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, immTail(DWord, 0x12345678))
}

func TestWidthMaxValueAndBytes(t *testing.T) {
	assert.Equal(t, 1, Byte.Bytes())
	assert.Equal(t, 2, Word.Bytes())
	assert.Equal(t, 4, DWord.Bytes())
	assert.Equal(t, 8, QWord.Bytes())

	assert.Equal(t, uint64(0xFF), Byte.MaxValue())
	assert.Equal(t, uint64(0xFFFF), Word.MaxValue())
	assert.Equal(t, uint64(0xFFFFFFFF), DWord.MaxValue())
}
