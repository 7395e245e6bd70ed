package vm

// Control family: Halt/Stop move the CPU into their absorbing states;
// Ei/Di toggle the interrupt-enable delay (see cpu.go's eiDelay field);
// Clv clears VRAM in place, a spec addition with no upstream equivalent
// (the original has no video memory to clear from an instruction).

func stepControl(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case Halt:
		c.State = StateHalted
	case Stop:
		c.State = StateStopped
	case Ei:
		c.eiDelay = 1
	case Di:
		c.InterruptsEnabled = false
		c.eiDelay = 0
	case Clv:
		for i := range mmu.Vram.bytes {
			mmu.Vram.bytes[i] = 0
		}
	}
}
