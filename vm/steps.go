package vm

// step runs the current instruction's micro-step for cpu.StepNum (which
// has already been incremented by Cycle; step 1 is the first step after
// the opcode fetch). Each case mirrors one arm of the original's
// instruction_helpers.rs match-on-step_num, adapted to fit the spec's
// 2-5 step cap (see DESIGN.md for where a family's tick count was
// compressed to fit).
func step(c *CPU, mmu *Mmu) {
	switch c.Instr.Op {
	case Nop:
		return

	case LdRaRb:
		stepLdRaRb(c, mmu)
	case LdBraBrb:
		stepLdBraBrb(c, mmu)
	case LdSpImm32:
		stepLdSpImm32(c, mmu)
	case LdImm32Sp:
		stepLdImm32Sp(c, mmu)
	case LdSpBra:
		stepLdSpBra(c, mmu)
	case LdBraSp:
		stepLdBraSp(c, mmu)
	case LdVraVrb:
		stepLdVraVrb(c, mmu)
	case LdRaImm16:
		stepLdRaImm16(c, mmu)
	case LdBraImm32:
		stepLdBraImm32(c, mmu)
	case LdVraImm8:
		stepLdVraImm8(c, mmu)
	case LdBraImm16:
		stepLdBraImm16(c, mmu)
	case LdBraRb:
		stepLdBraRb(c, mmu)
	case LdRaBrb:
		stepLdRaBrb(c, mmu)
	case LdrRaImm32:
		stepLdrRaImm32(c, mmu)
	case LdiBraRb:
		stepLdiBraRb(c, mmu)
	case LddBraRb:
		stepLddBraRb(c, mmu)
	case LdiRaBrb:
		stepLdiRaBrb(c, mmu)
	case LddRaBrb:
		stepLddRaBrb(c, mmu)
	case LdiBraImm16:
		stepLdiBraImm16(c, mmu)
	case LddBraImm16:
		stepLddBraImm16(c, mmu)
	case VldBraBrb:
		stepVldBraBrb(c, mmu)
	case VldiBraBrb:
		stepVldiBraBrb(c, mmu)
	case VlddBraBrb:
		stepVlddBraBrb(c, mmu)

	case AddRaRb, AddBraBrb, AddVraVrb, AdcRaRb, AdcBraBrb, AdcVraVrb,
		SubRaRb, SubBraBrb, SubVraVrb, SbbRaRb, SbbBraBrb, SbbVraVrb,
		AddRaImm16, AdcRaImm16, AddBraImm32, AdcBraImm32, AddVraImm8, AdcVraImm8,
		SubRaImm16, SbbRaImm16, SubBraImm32, SbbBraImm32, SubVraImm8, SbbVraImm8,
		AddRaBrb, AdcRaBrb, SubRaBrb, SbbRaBrb,
		AndRaRb, AndBraBrb, AndVraVrb, AndRaBrb, OrRaRb, OrBraBrb, OrVraVrb, OrRaBrb,
		XorRaRb, XorBraBrb, XorVraVrb, XorRaBrb,
		AndRaImm16, AndBraImm32, AndVraImm8, OrRaImm16, OrBraImm32, OrVraImm8,
		XorRaImm16, XorBraImm32, XorVraImm8,
		CmpRaRb, CmpBraBrb, CmpVraVrb, CmpRaImm16, CmpBraImm32, CmpVraImm8,
		CmpImm16Ra, CmpImm32Bra, CmpImm8Vra, CmpRaBrb, CmpBraRb:
		stepAlu(c, mmu)

	case TcpRa, TcpBra, TcpVra, IncRa, IncBra, IncVra, DecRa, DecBra, DecVra,
		PssRa, PssBra, PssVra, PssImm16, PssImm32, PssImm8, NotRa, NotBra, NotVra:
		stepUnary(c, mmu)

	case AsrRaB, AsrBraB, AsrVraB, AslRaB, AslBraB, AslVraB,
		LsrRaB, LsrBraB, LsrVraB, RtrRaB, RtrBraB, RtrVraB,
		RtlRaB, RtlBraB, RtlVraB, RcrRaB, RcrBraB, RcrVraB, RclRaB, RclBraB, RclVraB:
		stepShift(c, mmu)

	case BitRaB, BitBraB, StbRaB, StbBraB, RsbRaB, RsbBraB, TgbRaB, TgbBraB, SwpRa, SwpBra:
		stepCmpBit(c, mmu)

	case Szf, Rzf, Tzf, Scf, Rcf, Tcf, Sof, Rof, Tof, Spf, Rpf, Tpf, Snf, Rnf, Tnf, Saf, Raf:
		stepFlagOps(c, mmu)

	case MuluRaRb, MuluBraBrb, MuluVraVrb, MuluRaBrb, MuluRaImm16, MuluBraImm32, MuluVraImm8,
		MuliRaRb, MuliBraBrb, MuliVraVrb, MuliRaBrb, MuliRaImm16, MuliBraImm32, MuliVraImm8,
		DivuRaRb, DivuBraBrb, DivuVraVrb, DivuRaBrb, DivuRaImm16, DivuBraImm32, DivuVraImm8,
		DiviRaRb, DiviBraBrb, DiviVraVrb, DiviRaBrb, DiviRaImm16, DiviBraImm32, DiviVraImm8,
		RandRa, RandBra, RandVra:
		stepMulDiv(c, mmu)

	case JpImm32, JrImm32, JpzImm32, JnzImm32, JpcImm32, JncImm32, JpoImm32, JnoImm32,
		JppImm32, JnpImm32, JpnImm32, JnnImm32,
		JpBra, JrBra, JpzBra, JnzBra, JpcBra, JncBra, JpoBra, JnoBra, JppBra, JnpBra, JpnBra, JnnBra:
		stepJump(c, mmu)

	case CallImm32, ClzImm32, CnzImm32, ClcImm32, CncImm32, CloImm32, CnoImm32,
		ClpImm32, CnpImm32, ClnImm32, CnnImm32,
		CallBra, ClzBra, CnzBra, ClcBra, CncBra, CloBra, CnoBra, ClpBra, CnpBra, ClnBra, CnnBra,
		Ret, Rtz, Rnz, Rtc, Rnc, Rto, Rno, Rtp, Rnp, Rtn, Rnn, Reti:
		stepCall(c, mmu)

	case PushBra, PopBra, PeekBra, PushImm32:
		stepStack(c, mmu)

	case Halt, Stop, Ei, Di, Clv:
		stepControl(c, mmu)
	}
}
