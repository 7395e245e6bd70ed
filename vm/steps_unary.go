package vm

// Unary arithmetic family: Tcp (two's complement negate), Inc, Dec, Pss
// (pass-through; updates flags as if from a no-op add/sub), and Not, each
// across the three register widths. The register forms are pure register
// ops, one tick; PssImm16/PssImm32/PssImm8 first read their immediate
// (one tick per word or byte) and then set the flags from it.

func unaryR(c *CPU, op AluOp) { c.setReg(c.Instr.Ra, Alu(&c.Flags, op, c.reg(c.Instr.Ra), 0)) }
func unaryB(c *CPU, op AluOp) { c.setBreg(c.Instr.Bra, Alu(&c.Flags, op, c.breg(c.Instr.Bra), 0)) }
func unaryV(c *CPU, op AluOp) { c.setVreg(c.Instr.Vra, Alu(&c.Flags, op, c.vreg(c.Instr.Vra), 0)) }

func stepUnary(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case TcpRa:
		unaryR(c, OpTcp)
	case TcpBra:
		unaryB(c, OpTcp)
	case TcpVra:
		unaryV(c, OpTcp)
	case IncRa:
		unaryR(c, OpInc)
	case IncBra:
		unaryB(c, OpInc)
	case IncVra:
		unaryV(c, OpInc)
	case DecRa:
		unaryR(c, OpDec)
	case DecBra:
		unaryB(c, OpDec)
	case DecVra:
		unaryV(c, OpDec)
	case PssRa:
		unaryR(c, OpPss)
	case PssBra:
		unaryB(c, OpPss)
	case PssVra:
		unaryV(c, OpPss)
	case NotRa:
		unaryR(c, OpNot)
	case NotBra:
		unaryB(c, OpNot)
	case NotVra:
		unaryV(c, OpNot)

	case PssImm16:
		switch c.StepNum {
		case 1:
			c.readNextWord(mmu)
		case 2:
			Alu(&c.Flags, OpPss, c.lastWord, uint16(0))
		}
	case PssImm32:
		switch c.StepNum {
		case 1, 2:
			c.readNextWord(mmu)
		case 3:
			Alu(&c.Flags, OpPss, c.lastDword(), uint32(0))
		}
	case PssImm8:
		switch c.StepNum {
		case 1:
			c.readNextByte(mmu)
		case 2:
			Alu(&c.Flags, OpPss, c.lastByte, uint8(0))
		}
	}
}
