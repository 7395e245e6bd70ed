package vm

// Shift/rotate family: the shift count is the embedded 4-bit immediate
// Instr.B, never a memory or stream read, so every variant is one tick
// regardless of width.

func stepShift(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case AsrRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpAsr, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case AsrBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpAsr, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case AsrVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpAsr, c.vreg(c.Instr.Vra), c.Instr.B))
	case AslRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpAsl, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case AslBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpAsl, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case AslVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpAsl, c.vreg(c.Instr.Vra), c.Instr.B))
	case LsrRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpLsr, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case LsrBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpLsr, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case LsrVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpLsr, c.vreg(c.Instr.Vra), c.Instr.B))
	case RtrRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpRtr, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case RtrBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpRtr, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case RtrVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpRtr, c.vreg(c.Instr.Vra), c.Instr.B))
	case RtlRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpRtl, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case RtlBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpRtl, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case RtlVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpRtl, c.vreg(c.Instr.Vra), c.Instr.B))
	case RcrRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpRcr, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case RcrBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpRcr, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case RcrVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpRcr, c.vreg(c.Instr.Vra), c.Instr.B))
	case RclRaB:
		c.setReg(c.Instr.Ra, Alu(&c.Flags, OpRcl, c.reg(c.Instr.Ra), uint16(c.Instr.B)))
	case RclBraB:
		c.setBreg(c.Instr.Bra, Alu(&c.Flags, OpRcl, c.breg(c.Instr.Bra), uint32(c.Instr.B)))
	case RclVraB:
		c.setVreg(c.Instr.Vra, Alu(&c.Flags, OpRcl, c.vreg(c.Instr.Vra), c.Instr.B))
	}
}
