package vm

// Data-move step functions. Bra/Brb name a memory pointer (the address
// held in that register pair) everywhere they appear alongside a
// differently-sized operand (LdBraRb, LdRaBrb, LdiBraRb, ...); when both
// operands are pairs of the same width (LdBraBrb) the pair is used by
// value, matching the spec's worked "LD HL,DE" example. See DESIGN.md
// for the "BregDeref" convention this follows throughout the file.

func stepLdRaRb(c *CPU, mmu *Mmu) { c.setReg(c.Instr.Ra, c.reg(c.Instr.Rb)) }

func stepLdBraBrb(c *CPU, mmu *Mmu) { c.setBreg(c.Instr.Bra, c.breg(c.Instr.Brb)) }

func stepLdVraVrb(c *CPU, mmu *Mmu) { c.setVreg(c.Instr.Vra, c.vreg(c.Instr.Vrb)) }

func stepLdSpBra(c *CPU, mmu *Mmu) { c.SP = NewDefaultAddr(c.breg(c.Instr.Bra)) }

func stepLdBraSp(c *CPU, mmu *Mmu) { c.setBreg(c.Instr.Bra, c.SP.Address()) }

func stepLdSpImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.SP = NewDefaultAddr(c.lastDword())
	}
}

func stepLdImm32Sp(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		mmu.WriteDword(c.lastDword(), c.SP.Address())
	}
}

func stepLdRaImm16(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		c.setReg(c.Instr.Ra, c.lastWord)
	}
}

func stepLdBraImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		mmu.WriteDword(c.breg(c.Instr.Bra), c.lastDword())
	}
}

func stepLdVraImm8(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readNextByte(mmu)
	case 2:
		c.setVreg(c.Instr.Vra, c.lastByte)
	}
}

func stepLdBraImm16(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.lastWord)
	}
}

func stepLdBraRb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.reg(c.Instr.Rb))
	}
}

func stepLdRaBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readWordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		c.setReg(c.Instr.Ra, c.lastWord)
	}
}

// stepLdrRaImm32 is the "load, via register-indexed pointer" form: read a
// 32-bit immediate, add HL to it, then load Ra from the word stored at
// the resulting address.
func stepLdrRaImm32(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.readWordAt(mmu, c.lastDword()+c.breg(HL))
	case 4:
		c.setReg(c.Instr.Ra, c.lastWord)
	}
}

func stepLdiBraRb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.reg(c.Instr.Rb))
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)+2)
	}
}

func stepLddBraRb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.reg(c.Instr.Rb))
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)-2)
	}
}

func stepLdiRaBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readWordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		c.setReg(c.Instr.Ra, c.lastWord)
		c.setBreg(c.Instr.Brb, c.breg(c.Instr.Brb)+2)
	}
}

func stepLddRaBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readWordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		c.setReg(c.Instr.Ra, c.lastWord)
		c.setBreg(c.Instr.Brb, c.breg(c.Instr.Brb)-2)
	}
}

func stepLdiBraImm16(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.lastWord)
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)+2)
	}
}

func stepLddBraImm16(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		mmu.WriteWord(c.breg(c.Instr.Bra), c.lastWord)
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)-2)
	}
}

// stepVldBraBrb and its inc/dec variants are this port's own additions: a
// dword memory-to-memory move between two pointer registers, absent
// upstream (see opcode_table.go).
func (c *CPU) readDwordAt(mmu *Mmu, addr uint32) {
	hi, lo := SplitDword(mmu.ReadDword(addr))
	c.prevWord, c.lastWord = lo, hi
}

func stepVldBraBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readDwordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		mmu.WriteDword(c.breg(c.Instr.Bra), c.lastDword())
	}
}

func stepVldiBraBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readDwordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		mmu.WriteDword(c.breg(c.Instr.Bra), c.lastDword())
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)+4)
		c.setBreg(c.Instr.Brb, c.breg(c.Instr.Brb)+4)
	}
}

func stepVlddBraBrb(c *CPU, mmu *Mmu) {
	switch c.StepNum {
	case 1:
		c.readDwordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		mmu.WriteDword(c.breg(c.Instr.Bra), c.lastDword())
		c.setBreg(c.Instr.Bra, c.breg(c.Instr.Bra)-4)
		c.setBreg(c.Instr.Brb, c.breg(c.Instr.Brb)-4)
	}
}
