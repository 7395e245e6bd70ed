package debugger

import (
	"testing"

	"github.com/maxgmr/mfs16go/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDebugger() *Debugger {
	cpu := vm.NewCPU(1)
	mmu := vm.NewMmu(64*1024, 4096, 256)
	mmu.SetRomWritable(true)
	return NewDebugger(cpu, mmu)
}

func loadWords(d *Debugger, words ...uint16) {
	for i, w := range words {
		d.Mmu.WriteWord(uint32(i*2), w)
	}
}

func TestStepInstructionAdvancesExactlyOneInstruction(t *testing.T) {
	d := newTestDebugger()
	loadWords(d,
		vm.IntoOpcode(vm.Instruction{Op: vm.AddRaRb, Ra: vm.A, Rb: vm.B}),
		vm.IntoOpcode(vm.Instruction{Op: vm.Nop}),
	)

	d.StepInstruction()
	assert.Equal(t, uint32(2), d.CPU.PC.Address())

	d.StepInstruction()
	assert.Equal(t, uint32(4), d.CPU.PC.Address())
}

func TestStepInstructionIsNoOpWhenStopped(t *testing.T) {
	d := newTestDebugger()
	loadWords(d, vm.IntoOpcode(vm.Instruction{Op: vm.Stop}))

	d.StepInstruction()
	require.Equal(t, vm.StateStopped, d.CPU.State)

	pc := d.CPU.PC.Address()
	d.StepInstruction()
	assert.Equal(t, pc, d.CPU.PC.Address())
}

func TestResolveAddressPrefersSymbolOverLiteral(t *testing.T) {
	d := newTestDebugger()
	d.LoadSymbols(map[string]uint32{"loop": 0x42})

	addr, err := d.ResolveAddress("loop")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x42), addr)

	addr, err = d.ResolveAddress("0x100")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x100), addr)

	addr, err = d.ResolveAddress("16")
	require.NoError(t, err)
	assert.Equal(t, uint32(16), addr)

	_, err = d.ResolveAddress("not_a_symbol")
	assert.Error(t, err)
}

func TestShouldBreakOnlyTriggersForEnabledBreakpointAtPC(t *testing.T) {
	d := newTestDebugger()
	d.Breakpoints.Add(0, false)

	stop, reason := d.ShouldBreak()
	assert.True(t, stop)
	assert.Contains(t, reason, "breakpoint 1")

	d.Breakpoints.SetEnabled(1, false)
	stop, _ = d.ShouldBreak()
	assert.False(t, stop)
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	d := newTestDebugger()
	loadWords(d,
		vm.IntoOpcode(vm.Instruction{Op: vm.Nop}),
		vm.IntoOpcode(vm.Instruction{Op: vm.Nop}),
		vm.IntoOpcode(vm.Instruction{Op: vm.Halt}),
	)
	d.Breakpoints.Add(4, false)

	d.Run(0)
	assert.Equal(t, uint32(4), d.CPU.PC.Address())
	assert.False(t, d.Running)
}

func TestRunStopsAtHalt(t *testing.T) {
	d := newTestDebugger()
	loadWords(d, vm.IntoOpcode(vm.Instruction{Op: vm.Halt}))

	d.Run(0)
	assert.Equal(t, vm.StateHalted, d.CPU.State)
}

func TestExecuteCommandRepeatsLastCommandOnEmptyLine(t *testing.T) {
	d := newTestDebugger()
	loadWords(d,
		vm.IntoOpcode(vm.Instruction{Op: vm.Nop}),
		vm.IntoOpcode(vm.Instruction{Op: vm.Nop}),
	)

	require.NoError(t, d.ExecuteCommand("step"))
	assert.Equal(t, uint32(2), d.CPU.PC.Address())

	require.NoError(t, d.ExecuteCommand(""))
	assert.Equal(t, uint32(4), d.CPU.PC.Address())
}

func TestExecuteCommandUnknownCommandErrors(t *testing.T) {
	d := newTestDebugger()
	err := d.ExecuteCommand("frobnicate")
	assert.Error(t, err)
}

func TestBreakDeleteEnableDisableCommands(t *testing.T) {
	d := newTestDebugger()

	require.NoError(t, d.ExecuteCommand("break 0x10"))
	require.Len(t, d.Breakpoints.All(), 1)

	require.NoError(t, d.ExecuteCommand("disable 1"))
	assert.False(t, d.Breakpoints.At(0x10).Enabled)

	require.NoError(t, d.ExecuteCommand("enable 1"))
	assert.True(t, d.Breakpoints.At(0x10).Enabled)

	require.NoError(t, d.ExecuteCommand("delete 1"))
	assert.Empty(t, d.Breakpoints.All())
}

func TestPrintCommandReportsRegisterValue(t *testing.T) {
	d := newTestDebugger()
	d.CPU.Regs.SetReg16(vm.A, 0xBEEF)

	require.NoError(t, d.ExecuteCommand("print A"))
	assert.Contains(t, d.DrainOutput(), "0xBEEF")
}

func TestResetCommandSetsPCToZeroAndClearsHalt(t *testing.T) {
	d := newTestDebugger()
	loadWords(d, vm.IntoOpcode(vm.Instruction{Op: vm.Halt}))
	d.Run(0)
	require.Equal(t, vm.StateHalted, d.CPU.State)

	require.NoError(t, d.ExecuteCommand("reset"))
	assert.Equal(t, uint32(0), d.CPU.PC.Address())
	assert.Equal(t, vm.StateFetch, d.CPU.State)
}
