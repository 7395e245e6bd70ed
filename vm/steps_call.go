package vm

// Call/return family. CallImm32 is a straight read-read-push-jump (4
// ticks). The conditional-immediate form would need a 5th tick
// (read,read,check,push,jump) to mirror the original tick-for-tick,
// which overflows the spec's 5-step cap; here the push and jump are
// folded into the final tick once the condition is known, keeping it at
// 4 ticks / 5 steps. See DESIGN.md.

func stepCall(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case CallImm32:
		callImm32(c, mmu)
	case CallBra:
		switch c.StepNum {
		case 1:
			c.pushStack(mmu, c.PC.Address())
		case 2:
			c.jump(c.breg(c.Instr.Bra))
		}

	case ClzImm32, CnzImm32, ClcImm32, CncImm32, CloImm32, CnoImm32,
		ClpImm32, CnpImm32, ClnImm32, CnnImm32:
		condCallImm32(c, mmu)

	case ClzBra, CnzBra, ClcBra, CncBra, CloBra, CnoBra,
		ClpBra, CnpBra, ClnBra, CnnBra:
		condCallBra(c, mmu)

	case Ret:
		c.PC = NewDefaultAddr(c.popStack(mmu))
	case Reti:
		c.PC = NewDefaultAddr(c.popStack(mmu))
		c.InterruptsEnabled = true
		c.eiDelay = 0
	case Rtz, Rnz, Rtc, Rnc, Rto, Rno, Rtp, Rnp, Rtn, Rnn:
		condRet(c, mmu)
	}
}

func callImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.pushStack(mmu, c.PC.Address())
	case 4:
		c.jump(c.lastDword())
	}
}

func condCallImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.checkConditional(c.Instr.Flag, c.Instr.Expected)
	case 4:
		if c.condSatisfied {
			c.pushStack(mmu, c.PC.Address())
			c.jump(c.lastDword())
		}
	}
}

func condCallBra(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.checkConditional(c.Instr.Flag, c.Instr.Expected)
	case 2:
		if c.condSatisfied {
			c.pushStack(mmu, c.PC.Address())
		}
	case 3:
		if c.condSatisfied {
			c.jump(c.breg(c.Instr.Bra))
		}
	}
}

// condRet's condition names (Rtz="return if zero", Rnz="return if not
// zero", ...) follow the same Z/C/O/P/N true-then-false order as the
// jump/call suffixes; CondFlags is indexed by that same order.
var retFlags = [10]struct {
	Flag     Flag
	Expected bool
}{
	{Zero, true}, {Zero, false},
	{Carry, true}, {Carry, false},
	{Overflow, true}, {Overflow, false},
	{Parity, true}, {Parity, false},
	{Negative, true}, {Negative, false},
}

func condRet(c *CPU, mmu *Mmu) {
	idx := retIndex(c.Instr.Op)
	switch c.StepNum {
	case 1:
		c.checkConditional(retFlags[idx].Flag, retFlags[idx].Expected)
	case 2:
		if c.condSatisfied {
			c.PC = NewDefaultAddr(c.popStack(mmu))
		}
	}
}

func retIndex(op Op) int {
	switch op {
	case Rtz:
		return 0
	case Rnz:
		return 1
	case Rtc:
		return 2
	case Rnc:
		return 3
	case Rto:
		return 4
	case Rno:
		return 5
	case Rtp:
		return 6
	case Rnp:
		return 7
	case Rtn:
		return 8
	default: // Rnn
		return 9
	}
}
