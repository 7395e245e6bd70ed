// Package loader installs an assembled MFS-16 program image into a fresh
// Mmu and positions a CPU at its entry point, the way the teacher's
// LoadProgramIntoVM installs a parsed program into an ARM vm.VM.
package loader

import (
	"fmt"

	"github.com/maxgmr/mfs16go/vm"
)

// Image is an assembled program ready for installation: the raw byte
// stream destined for ROM, plus the PC value execution should start at.
// The bytes are always copied to ROM offset 0; EntryPoint only sets the
// starting PC.
type Image struct {
	Bytes      []byte
	EntryPoint uint32
}

// LoadImage installs img into mmu's ROM and sets cpu's PC/SP for a fresh
// run, per SPEC_FULL.md's loader component. ROM is toggled writable only
// for the duration of the copy, mirroring the teacher's pattern of
// granting a memory segment exactly the permissions a load step needs and
// nothing more.
func LoadImage(cpu *vm.CPU, mmu *vm.Mmu, img Image) error {
	if len(img.Bytes) > mmu.Rom.Len() {
		return fmt.Errorf("program is %d bytes, ROM only holds %d", len(img.Bytes), mmu.Rom.Len())
	}

	mmu.SetRomWritable(true)
	mmu.Rom.LoadBytes(0, img.Bytes)
	mmu.SetRomWritable(false)

	cpu.PC = vm.NewDefaultAddr(img.EntryPoint)
	cpu.SP = vm.NewDefaultAddr(0xFFFFFFFF)
	cpu.Instr = vm.Instruction{Op: vm.Nop}
	cpu.StepNum = 0
	cpu.State = vm.StateFetch

	return nil
}

// LoadBytes is a convenience wrapper for the common case: a raw byte
// stream with no declared entry point, which always means "start at ROM
// offset 0" per spec.md's assembler output (no ORG-equivalent directive
// exists; absolute labels only pad forward within a single assembly).
func LoadBytes(cpu *vm.CPU, mmu *vm.Mmu, program []byte) error {
	return LoadImage(cpu, mmu, Image{Bytes: program, EntryPoint: 0})
}
