package loader

import (
	"testing"

	"github.com/maxgmr/mfs16go/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytesInstallsROMAndResetsCPU(t *testing.T) {
	cpu := vm.NewCPU(1)
	mmu := vm.NewMmu(1024, 1024, 1024)

	program := []byte{0x34, 0x12, 0x01, 0x02, 0x03, 0x04}
	require.NoError(t, LoadBytes(cpu, mmu, program))

	for i, want := range program {
		assert.Equal(t, want, mmu.Rom.ReadByte(uint32(i)), "ROM[%d]", i)
	}

	assert.Equal(t, uint32(0), cpu.PC.Address())
	assert.Equal(t, uint32(0xFFFFFFFF), cpu.SP.Address())
	assert.Equal(t, vm.StateFetch, cpu.State)
}

func TestLoadImageSetsEntryPoint(t *testing.T) {
	cpu := vm.NewCPU(1)
	mmu := vm.NewMmu(1024, 1024, 1024)

	require.NoError(t, LoadImage(cpu, mmu, Image{Bytes: []byte{0x00, 0x00}, EntryPoint: 0x40}))
	assert.Equal(t, uint32(0x40), cpu.PC.Address())
}

func TestLoadImageRejectsOversizedProgram(t *testing.T) {
	cpu := vm.NewCPU(1)
	mmu := vm.NewMmu(4, 1024, 1024)

	err := LoadBytes(cpu, mmu, make([]byte, 5))
	assert.Error(t, err)
}

func TestROMNotWritableAfterLoad(t *testing.T) {
	cpu := vm.NewCPU(1)
	mmu := vm.NewMmu(1024, 1024, 1024)

	require.NoError(t, LoadBytes(cpu, mmu, []byte{0x00}))
	assert.False(t, mmu.Rom.Writable, "ROM should not be writable after LoadBytes returns")
}
