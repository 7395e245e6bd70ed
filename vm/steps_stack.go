package vm

// Stack family. Push/pop/peek operate on a register pair's 32-bit value
// as a single dword stack slot, one tick each (push_stack/pop_stack are
// themselves atomic 32-bit operations, see DESIGN.md); PushImm32 reads
// its operand from the instruction stream first.

func stepStack(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case PushBra:
		c.pushStack(mmu, c.breg(c.Instr.Bra))
	case PopBra:
		c.setBreg(c.Instr.Bra, c.popStack(mmu))
	case PeekBra:
		c.setBreg(c.Instr.Bra, mmu.ReadDword(c.SP.Address()))
	case PushImm32:
		switch c.StepNum {
		case 1, 2:
			c.readNextWord(mmu)
		case 3:
			c.pushStack(mmu, c.lastDword())
		}
	}
}
