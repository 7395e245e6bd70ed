package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every registered opcode must round-trip through Instruction and back,
// per spec.md §8's testable-property requirement.
func TestOpcodeRoundTrip(t *testing.T) {
	require.NotEmpty(t, decodeTable)

	for opcode, instr := range decodeTable {
		got, ok := FromOpcode(opcode)
		require.True(t, ok, "opcode %#04X failed to decode", opcode)
		assert.Equal(t, instr, got, "opcode %#04X decoded to a different instruction", opcode)
		assert.Equal(t, opcode, IntoOpcode(got), "instruction %+v re-encoded to a different opcode", got)
	}
}

func TestFromOpcodeRejectsUnassignedSlot(t *testing.T) {
	for opcode := uint16(0); opcode < 0xFFFF; opcode++ {
		if _, ok := decodeTable[opcode]; !ok {
			_, ok := FromOpcode(opcode)
			require.False(t, ok)
			return
		}
	}
}

func TestIntoOpcodePanicsOnUnregisteredInstruction(t *testing.T) {
	assert.Panics(t, func() {
		IntoOpcode(Instruction{Op: Op(-1)})
	})
}

func TestOpByNameRoundTrip(t *testing.T) {
	for op, name := range opNames {
		got, ok := OpByName(name)
		require.True(t, ok, "name %q not found", name)
		assert.Equal(t, op, got)
	}
}

func TestNumStepsRegisteredForEveryOp(t *testing.T) {
	for op := range opNames {
		assert.NotPanics(t, func() { NumSteps(op) })
	}
}
