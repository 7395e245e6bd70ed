package vm

// Flag-bit set/reset/toggle instructions: always one tick, never touch
// memory or any register.

func stepFlagOps(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case Szf:
		c.setFlag(Zero)
	case Rzf:
		c.resetFlag(Zero)
	case Tzf:
		c.Flags.Toggle(Zero)
	case Scf:
		c.setFlag(Carry)
	case Rcf:
		c.resetFlag(Carry)
	case Tcf:
		c.Flags.Toggle(Carry)
	case Sof:
		c.setFlag(Overflow)
	case Rof:
		c.resetFlag(Overflow)
	case Tof:
		c.Flags.Toggle(Overflow)
	case Spf:
		c.setFlag(Parity)
	case Rpf:
		c.resetFlag(Parity)
	case Tpf:
		c.Flags.Toggle(Parity)
	case Snf:
		c.setFlag(Negative)
	case Rnf:
		c.resetFlag(Negative)
	case Tnf:
		c.Flags.Toggle(Negative)
	case Saf:
		c.Flags.SetAll()
	case Raf:
		c.Flags.ResetAll()
	}
}
