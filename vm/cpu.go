package vm

// The CPU state machine: FETCH reads the next opcode and resets the step
// counter; EXECUTE dispatches the current instruction's step function for
// (NumSteps-1) further ticks; HALTED and STOPPED are absorbing until an
// interrupt (HALTED only) or a reset occurs. See SPEC_FULL.md §4.3 and
// the original's cpu.rs (mfs16core) for the step_num bookkeeping this
// mirrors cycle-for-cycle.
type State int

const (
	StateFetch State = iota
	StateExecute
	StateHalted
	StateStopped
)

func (s State) String() string {
	return [...]string{"FETCH", "EXECUTE", "HALTED", "STOPPED"}[s]
}

// Interrupt vector addresses, fixed by priority. Not specified upstream
// (the original never implemented dispatch); chosen low in the address
// space, below any reasonable ROM, and documented in DESIGN.md.
var interruptVectors = map[Interrupt]uint32{
	Frame:    0x00000010,
	Keyboard: 0x00000020,
}

// CPU is the MFS-16 register file, flags, program counter, stack
// pointer, and the fetch/execute state machine that steps through the
// current instruction one cycle at a time.
type CPU struct {
	Regs  Registers
	Flags Flags
	PC    Addr
	SP    Addr

	Instr   Instruction
	StepNum int
	State   State

	InterruptsEnabled bool
	eiDelay           int // EI takes effect after the *following* instruction

	Rng *Rand

	// Scratch state carried between the micro-steps of a single
	// instruction; prevWord/lastWord hold the two most recently read
	// immediate/indirect words in the order they were read (prevWord
	// first), lastByte the most recent byte, condSatisfied the result
	// of the most recent conditional check.
	prevWord      uint16
	lastWord      uint16
	lastByte      uint8
	condSatisfied bool
}

// NewCPU creates a CPU at its reset state: PC at 0, SP at the top of the
// 32-bit address space (the original's literal default; callers that
// want the stack to live inside configured RAM should set SP
// explicitly after construction), all registers and flags zero/clear,
// interrupts disabled, halted/stopped clear.
func NewCPU(seed uint64) *CPU {
	c := &CPU{
		PC:    NewDefaultAddr(0),
		SP:    NewDefaultAddr(0xFFFFFFFF),
		Instr: Instruction{Op: Nop},
		State: StateFetch,
		Rng:   NewRand(seed),
	}
	c.StepNum = NumSteps(c.Instr.Op)
	return c
}

// Cycle performs exactly one clock tick: either decoding the next
// instruction (when the current one's steps are exhausted) or running
// the next micro-step of the instruction in progress. HALTED and
// STOPPED do not advance PC and only a pending interrupt can leave
// HALTED.
func (c *CPU) Cycle(mmu *Mmu) {
	if c.State == StateStopped {
		return
	}
	if c.State == StateHalted {
		if c.serviceInterrupt(mmu) {
			c.State = StateFetch
		}
		return
	}
	if c.StepNum >= NumSteps(c.Instr.Op)-1 {
		c.serviceInterrupt(mmu)
		c.StepNum = 0
		c.fetch(mmu)
	} else {
		c.StepNum++
		step(c, mmu)
	}
}

// fetch reads the next two-byte opcode at PC, advances PC past it, and
// decodes it. An opcode with no registered variant is a fatal decode
// error: the bitstream is irrecoverably corrupt (spec §7).
func (c *CPU) fetch(mmu *Mmu) {
	opcode := mmu.ReadWord(c.PC.Address())
	c.PC = c.PC.WrappingAdd(2)
	instr, ok := FromOpcode(opcode)
	if !ok {
		panic("vm: fatal decode error: no instruction for opcode " + addrHex(uint32(opcode)))
	}
	c.Instr = instr
	c.State = StateExecute
	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.InterruptsEnabled = true
		}
	}
}

// serviceInterrupt checks IF&IE and, if a bit is pending and interrupts
// are enabled, delivers it: disables further interrupts, clears the bit,
// pushes the current PC, and jumps to the fixed vector for that
// interrupt kind. Returns true if an interrupt was delivered.
func (c *CPU) serviceInterrupt(mmu *Mmu) bool {
	if !c.InterruptsEnabled {
		return false
	}
	kind, ok := mmu.PendingInterrupt()
	if !ok {
		return false
	}
	c.InterruptsEnabled = false
	c.eiDelay = 0
	mmu.ClearInterrupt(kind)
	c.pushStack(mmu, c.PC.Address())
	c.PC = NewDefaultAddr(interruptVectors[kind])
	return true
}

func addrHex(v uint32) string {
	const digits = "0123456789ABCDEF"
	buf := [6]byte{'0', 'x', '0', '0', '0', '0'}
	for i := 0; i < 4; i++ {
		buf[5-i] = digits[(v>>(4*uint(i)))&0xF]
	}
	return string(buf[:])
}

// reg/breg/vreg/flag wrappers mirroring the original's Cpu convenience
// methods, used throughout the step functions.
func (c *CPU) reg(r Reg16) uint16         { return c.Regs.Reg16(r) }
func (c *CPU) setReg(r Reg16, v uint16)   { c.Regs.SetReg16(r, v) }
func (c *CPU) breg(r Reg32) uint32        { return c.Regs.Reg32(r) }
func (c *CPU) setBreg(r Reg32, v uint32)  { c.Regs.SetReg32(r, v) }
func (c *CPU) vreg(r Reg8) uint8          { return c.Regs.Reg8(r) }
func (c *CPU) setVreg(r Reg8, v uint8)    { c.Regs.SetReg8(r, v) }
func (c *CPU) flag(f Flag) bool           { return c.Flags.Get(f) }
func (c *CPU) setFlag(f Flag)             { c.Flags.Set(f) }
func (c *CPU) resetFlag(f Flag)           { c.Flags.Reset(f) }
func (c *CPU) changeFlag(f Flag, v bool)  { c.Flags.Assign(f, v) }

// readNextWord reads the word at PC as part of an instruction's
// immediate tail, advances PC by 2, and records it as both the new
// lastWord and (shifting) prevWord, so two consecutive calls leave a
// 32-bit immediate available via lastDword.
func (c *CPU) readNextWord(mmu *Mmu) {
	c.prevWord = c.lastWord
	c.lastWord = mmu.ReadWord(c.PC.Address())
	c.PC = c.PC.WrappingAdd(2)
}

func (c *CPU) readNextByte(mmu *Mmu) {
	c.lastByte = mmu.ReadByte(c.PC.Address())
	c.PC = c.PC.WrappingAdd(1)
}

func (c *CPU) readWordAt(mmu *Mmu, addr uint32) {
	c.prevWord = c.lastWord
	c.lastWord = mmu.ReadWord(addr)
}

// lastDword combines the two most recently read words into the 32-bit
// immediate they encode, low word first (the order two readNextWord
// calls read them off the little-endian instruction stream).
func (c *CPU) lastDword() uint32 {
	return CombineU16BE(c.lastWord, c.prevWord)
}

// pushStack writes a 32-bit value at SP-4..SP and decrements SP by 4
// (full-descending stack, per spec §3).
func (c *CPU) pushStack(mmu *Mmu, val uint32) {
	c.SP = c.SP.WrappingSub(4)
	mmu.WriteDword(c.SP.Address(), val)
}

// popStack reads a 32-bit value at SP and increments SP by 4.
func (c *CPU) popStack(mmu *Mmu) uint32 {
	val := mmu.ReadDword(c.SP.Address())
	c.SP = c.SP.WrappingAdd(4)
	return val
}

func (c *CPU) jump(addr uint32) {
	c.PC = NewDefaultAddr(addr)
}

func (c *CPU) relativeJump(offset uint32) {
	c.PC = c.PC.WrappingAdd(offset)
}

func (c *CPU) checkConditional(flag Flag, expected bool) {
	c.condSatisfied = c.flag(flag) == expected
}
