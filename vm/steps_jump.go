package vm

// Jump family. Unconditional immediate jumps read two words then jump;
// conditional immediate jumps add one tick to check the flag first.
// Bra forms use the register's value directly as the destination, no
// extra memory access, so they're one (unconditional) or two
// (conditional) ticks.

func stepJump(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case JpImm32:
		jumpImm32(c, mmu, false)
	case JrImm32:
		jumpImm32(c, mmu, true)
	case JpBra:
		c.jump(c.breg(c.Instr.Bra))
	case JrBra:
		c.relativeJump(c.breg(c.Instr.Bra))

	case JpzImm32, JnzImm32, JpcImm32, JncImm32, JpoImm32, JnoImm32,
		JppImm32, JnpImm32, JpnImm32, JnnImm32:
		condJumpImm32(c, mmu)

	case JpzBra, JnzBra, JpcBra, JncBra, JpoBra, JnoBra,
		JppBra, JnpBra, JpnBra, JnnBra:
		condJumpBra(c)
	}
}

func jumpImm32(c *CPU, mmu *Mmu, relative bool) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		if relative {
			c.relativeJump(c.lastDword())
		} else {
			c.jump(c.lastDword())
		}
	}
}

func condJumpImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.checkConditional(c.Instr.Flag, c.Instr.Expected)
	case 4:
		if c.condSatisfied {
			c.jump(c.lastDword())
		}
	}
}

func condJumpBra(c *CPU) {
	switch c.StepNum {
	case 1:
		c.checkConditional(c.Instr.Flag, c.Instr.Expected)
	case 2:
		if c.condSatisfied {
			c.jump(c.breg(c.Instr.Bra))
		}
	}
}
