package vm

// Generic engines for the binary arithmetic/logic family (Add, Adc, Sub,
// Sbb, And, Or, Xor, and the Cmp variants that run Sub but discard the
// result). One function per operand shape, parameterized by AluOp so
// the ~30 concrete Ops in this family share one body each; stepAlu below
// maps each Op to its shape+AluOp.

func aluRR(c *CPU, op AluOp, discard bool) {
	result := Alu(&c.Flags, op, c.reg(c.Instr.Ra), c.reg(c.Instr.Rb))
	if !discard {
		c.setReg(c.Instr.Ra, result)
	}
}

func aluBB(c *CPU, op AluOp, discard bool) {
	result := Alu(&c.Flags, op, c.breg(c.Instr.Bra), c.breg(c.Instr.Brb))
	if !discard {
		c.setBreg(c.Instr.Bra, result)
	}
}

func aluVV(c *CPU, op AluOp, discard bool) {
	result := Alu(&c.Flags, op, c.vreg(c.Instr.Vra), c.vreg(c.Instr.Vrb))
	if !discard {
		c.setVreg(c.Instr.Vra, result)
	}
}

// aluRImm16 runs a 2-tick (imm read, compute) op of the form Ra := Ra OP imm16.
func aluRImm16(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, op, c.reg(c.Instr.Ra), c.lastWord))
	}
}

// aluBImm32 runs a 3-tick (imm read x2, compute) op of the form Bra := Bra OP imm32.
func aluBImm32(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, op, c.breg(c.Instr.Bra), c.lastDword()))
	}
}

// aluVImm8 runs a 2-tick (imm read, compute) op of the form Vra := Vra OP imm8.
func aluVImm8(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextByte(mmu)
	case 2:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, op, c.vreg(c.Instr.Vra), c.lastByte))
	}
}

// aluRBrb runs a 2-tick (mem read, compute) op of the form Ra := Ra OP mem[Brb].
func aluRBrb(c *CPU, mmu *Mmu, op AluOp, discard bool) {
	switch c.StepNum {
	case 1:
		c.readWordAt(mmu, c.breg(c.Instr.Brb))
	case 2:
		result := Alu(&c.Flags, op, c.reg(c.Instr.Ra), c.lastWord)
		if !discard {
			c.setReg(c.Instr.Ra, result)
		}
	}
}

// aluBraRb runs a 2-tick (mem read, compute) comparison of mem[Bra]
// against Rb; only Cmp uses this shape, so the result is always discarded.
func aluBraRb(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readWordAt(mmu, c.breg(c.Instr.Bra))
	case 2:
		Alu(&c.Flags, op, c.lastWord, c.reg(c.Instr.Rb))
	}
}

// aluImm16R, aluImm32B, aluImm8V run the operand-reversed compare forms
// (imm OP reg, result discarded): CmpImm16Ra, CmpImm32Bra, CmpImm8Vra.
func aluImm16R(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		Alu(&c.Flags, op, c.lastWord, c.reg(c.Instr.Ra))
	}
}

func aluImm32B(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		Alu(&c.Flags, op, c.lastDword(), c.breg(c.Instr.Bra))
	}
}

func aluImm8V(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextByte(mmu)
	case 2:
		Alu(&c.Flags, op, uint8(c.lastByte), c.vreg(c.Instr.Vra))
	}
}

func stepAlu(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case AddRaRb:
		aluRR(c, OpAdd, false)
	case AddBraBrb:
		aluBB(c, OpAdd, false)
	case AddVraVrb:
		aluVV(c, OpAdd, false)
	case AdcRaRb:
		aluRR(c, OpAdc, false)
	case AdcBraBrb:
		aluBB(c, OpAdc, false)
	case AdcVraVrb:
		aluVV(c, OpAdc, false)
	case SubRaRb:
		aluRR(c, OpSub, false)
	case SubBraBrb:
		aluBB(c, OpSub, false)
	case SubVraVrb:
		aluVV(c, OpSub, false)
	case SbbRaRb:
		aluRR(c, OpSbb, false)
	case SbbBraBrb:
		aluBB(c, OpSbb, false)
	case SbbVraVrb:
		aluVV(c, OpSbb, false)
	case AddRaImm16:
		aluRImm16(c, mmu, OpAdd)
	case AdcRaImm16:
		aluRImm16(c, mmu, OpAdc)
	case AddBraImm32:
		aluBImm32(c, mmu, OpAdd)
	case AdcBraImm32:
		aluBImm32(c, mmu, OpAdc)
	case AddVraImm8:
		aluVImm8(c, mmu, OpAdd)
	case AdcVraImm8:
		aluVImm8(c, mmu, OpAdc)
	case SubRaImm16:
		aluRImm16(c, mmu, OpSub)
	case SbbRaImm16:
		aluRImm16(c, mmu, OpSbb)
	case SubBraImm32:
		aluBImm32(c, mmu, OpSub)
	case SbbBraImm32:
		aluBImm32(c, mmu, OpSbb)
	case SubVraImm8:
		aluVImm8(c, mmu, OpSub)
	case SbbVraImm8:
		aluVImm8(c, mmu, OpSbb)
	case AddRaBrb:
		aluRBrb(c, mmu, OpAdd, false)
	case AdcRaBrb:
		aluRBrb(c, mmu, OpAdc, false)
	case SubRaBrb:
		aluRBrb(c, mmu, OpSub, false)
	case SbbRaBrb:
		aluRBrb(c, mmu, OpSbb, false)

	case AndRaRb:
		aluRR(c, OpAnd, false)
	case AndBraBrb:
		aluBB(c, OpAnd, false)
	case AndVraVrb:
		aluVV(c, OpAnd, false)
	case AndRaBrb:
		aluRBrb(c, mmu, OpAnd, false)
	case OrRaRb:
		aluRR(c, OpOr, false)
	case OrBraBrb:
		aluBB(c, OpOr, false)
	case OrVraVrb:
		aluVV(c, OpOr, false)
	case OrRaBrb:
		aluRBrb(c, mmu, OpOr, false)
	case XorRaRb:
		aluRR(c, OpXor, false)
	case XorBraBrb:
		aluBB(c, OpXor, false)
	case XorVraVrb:
		aluVV(c, OpXor, false)
	case XorRaBrb:
		aluRBrb(c, mmu, OpXor, false)
	case AndRaImm16:
		aluRImm16(c, mmu, OpAnd)
	case AndBraImm32:
		aluBImm32(c, mmu, OpAnd)
	case AndVraImm8:
		aluVImm8(c, mmu, OpAnd)
	case OrRaImm16:
		aluRImm16(c, mmu, OpOr)
	case OrBraImm32:
		aluBImm32(c, mmu, OpOr)
	case OrVraImm8:
		aluVImm8(c, mmu, OpOr)
	case XorRaImm16:
		aluRImm16(c, mmu, OpXor)
	case XorBraImm32:
		aluBImm32(c, mmu, OpXor)
	case XorVraImm8:
		aluVImm8(c, mmu, OpXor)

	case CmpRaRb:
		aluRR(c, OpSub, true)
	case CmpBraBrb:
		aluBB(c, OpSub, true)
	case CmpVraVrb:
		aluVV(c, OpSub, true)
	case CmpRaImm16:
		aluRImm16Discard(c, mmu, OpSub)
	case CmpBraImm32:
		aluBImm32Discard(c, mmu, OpSub)
	case CmpVraImm8:
		aluVImm8Discard(c, mmu, OpSub)
	case CmpImm16Ra:
		aluImm16R(c, mmu, OpSub)
	case CmpImm32Bra:
		aluImm32B(c, mmu, OpSub)
	case CmpImm8Vra:
		aluImm8V(c, mmu, OpSub)
	case CmpRaBrb:
		aluRBrb(c, mmu, OpSub, true)
	case CmpBraRb:
		aluBraRb(c, mmu, OpSub)
	}
}

func aluRImm16Discard(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextWord(mmu)
	case 2:
		Alu(&c.Flags, op, c.reg(c.Instr.Ra), c.lastWord)
	}
}

func aluBImm32Discard(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1, 2:
		c.readNextWord(mmu)
	case 3:
		Alu(&c.Flags, op, c.breg(c.Instr.Bra), c.lastDword())
	}
}

func aluVImm8Discard(c *CPU, mmu *Mmu, op AluOp) {
	switch c.StepNum {
	case 1:
		c.readNextByte(mmu)
	case 2:
		Alu(&c.Flags, op, c.vreg(c.Instr.Vra), c.lastByte)
	}
}
