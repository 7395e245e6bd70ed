package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): increment loop with a label.
func TestAssembleIncrementLoopWithLabel(t *testing.T) {
	src := `ld A1,0x00:b;
loop:
  inc A1;
  jnz loop;
halt;
`
	got, err := Assemble(src, "scenario1.asm")
	require.NoError(t, err)

	want := []byte{
		0x20, 0x03, 0x00,
		0x50, 0x1D,
		0x03, 0x80,
		0x03, 0x00, 0x00, 0x00,
		0xFF, 0xFF,
	}
	assert.Equal(t, want, got)
}

// Scenario 2: variable declaration and reassignment.
func TestAssembleVariableReassignment(t *testing.T) {
	src := `my_num=0:w; my_num_2=2:w; PSS my_num; my_num=my_num_2; PSS my_num;`

	got, err := Assemble(src, "scenario2.asm")
	require.NoError(t, err)

	want := []byte{0xC0, 0x1D, 0x00, 0x00, 0xC0, 0x1D, 0x02, 0x00}
	assert.Equal(t, want, got)
}

// Scenario 5: forward jump to a label only resolved in pass 2.
func TestAssembleForwardJumpResolvedInPass2(t *testing.T) {
	src := `loop:
pss L0;
jpz is_zero;
dec L0;
jp loop;
is_zero:
halt;
`
	got, err := Assemble(src, "scenario5.asm")
	require.NoError(t, err)

	want := []byte{
		0xBD, 0x1D,
		0x02, 0x80, 0x10, 0x00, 0x00, 0x00,
		0x8D, 0x1D,
		0x00, 0x80, 0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF,
	}
	assert.Equal(t, want, got)
}

func TestAssembleUndefinedIdentifierFails(t *testing.T) {
	_, err := Assemble(`jp nowhere;`, "bad.asm")
	assert.Error(t, err)
}

func TestAssembleReservedMnemonicAsVariableNameFails(t *testing.T) {
	_, err := Assemble(`HALT=1:b;`, "bad.asm")
	assert.Error(t, err)
}

func TestAssembleByteArrayLiteral(t *testing.T) {
	got, err := Assemble(`[0x01, 0x02, 0x03]`, "bytes.asm")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got)
}
