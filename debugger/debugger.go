// Package debugger is a tcell/tview TUI and command dispatcher over a
// vm.CPU + vm.Mmu pair, shaped like the teacher's debugger package but
// driven by a cycle-stepped MFS-16 CPU instead of an ARM one: stepping
// means running a CPU to its next fetch boundary rather than decoding a
// fixed-width instruction, and disassembly comes from vm's opcode decode
// table (vm.FromOpcode) rather than an ARM decoder.
package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maxgmr/mfs16go/vm"
)

// Debugger holds everything a single debugging session needs: the
// machine under inspection, breakpoints, history, and an output buffer
// the CLI and TUI front ends both drain.
type Debugger struct {
	CPU *vm.CPU
	Mmu *vm.Mmu

	Breakpoints *BreakpointManager
	History     *CommandHistory

	Running bool
	Stepping bool

	Symbols map[string]uint32

	LastCommand string
	Output      strings.Builder
}

// NewDebugger wraps an already-constructed CPU/Mmu pair (the caller is
// expected to have loaded a program via the loader package first).
func NewDebugger(cpu *vm.CPU, mmu *vm.Mmu) *Debugger {
	return &Debugger{
		CPU:         cpu,
		Mmu:         mmu,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(),
		Symbols:     make(map[string]uint32),
	}
}

// LoadSymbols attaches a label table (from an asm.SymbolTable, flattened
// to name->address) for use by ResolveAddress and the disassembly pane.
func (d *Debugger) LoadSymbols(symbols map[string]uint32) { d.Symbols = symbols }

// ResolveAddress resolves a label name or a decimal/hex literal to an
// address.
func (d *Debugger) ResolveAddress(s string) (uint32, error) {
	if addr, ok := d.Symbols[s]; ok {
		return addr, nil
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return uint32(v), nil
}

// Printf appends formatted text to the output buffer.
func (d *Debugger) Printf(format string, args ...any) { fmt.Fprintf(&d.Output, format, args...) }

// Println appends a line to the output buffer.
func (d *Debugger) Println(args ...any) { fmt.Fprintln(&d.Output, args...) }

// DrainOutput returns and clears the output buffer.
func (d *Debugger) DrainOutput() string {
	s := d.Output.String()
	d.Output.Reset()
	return s
}

// atFetchBoundary reports whether cpu has exhausted the current
// instruction's steps — the real "ready to fetch" signal. CPU.State only
// tracks HALTED/STOPPED/EXECUTE; it is never reset to FETCH after the
// first instruction, so StepNum vs NumSteps is the only reliable way to
// tell "mid-instruction" from "between instructions" once running.
func atFetchBoundary(cpu *vm.CPU) bool {
	return cpu.StepNum >= vm.NumSteps(cpu.Instr.Op)-1
}

func absorbing(cpu *vm.CPU) bool {
	return cpu.State == vm.StateHalted || cpu.State == vm.StateStopped
}

// StepInstruction runs the CPU forward to the next fetch boundary: it
// finishes any micro-steps left on the in-flight instruction, then fetches
// and fully executes exactly one more. A no-op when STOPPED, and returns
// without completing a fetch when HALTED with no pending interrupt.
func (d *Debugger) StepInstruction() {
	for !absorbing(d.CPU) && !atFetchBoundary(d.CPU) {
		d.CPU.Cycle(d.Mmu)
	}
	if absorbing(d.CPU) {
		return
	}
	d.CPU.Cycle(d.Mmu) // fetch + decode
	for !absorbing(d.CPU) && !atFetchBoundary(d.CPU) {
		d.CPU.Cycle(d.Mmu)
	}
}

// ShouldBreak reports whether execution should pause at the CPU's current
// PC, and a human-readable reason.
func (d *Debugger) ShouldBreak() (bool, string) {
	pc := d.CPU.PC.Address()
	bp := d.Breakpoints.At(pc)
	if bp == nil || !bp.Enabled {
		return false, ""
	}
	hit := d.Breakpoints.ProcessHit(pc)
	return true, fmt.Sprintf("breakpoint %d at %s", hit.ID, d.CPU.PC)
}

// Run executes instructions until a breakpoint, HALT, STOP, or maxSteps
// (0 meaning unbounded) is reached.
func (d *Debugger) Run(maxSteps int) {
	d.Running = true
	defer func() { d.Running = false }()

	for steps := 0; maxSteps == 0 || steps < maxSteps; steps++ {
		if absorbing(d.CPU) {
			d.Println(strings.ToLower(d.CPU.State.String()))
			return
		}
		d.StepInstruction()
		if stop, reason := d.ShouldBreak(); stop {
			d.Println(reason)
			return
		}
	}
	d.Println("step limit reached")
}

// ExecuteCommand parses and dispatches a single debugger command line.
func (d *Debugger) ExecuteCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		line = d.LastCommand
	}
	if line != "" {
		d.History.Add(line)
		d.LastCommand = line
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	return d.dispatch(strings.ToLower(parts[0]), parts[1:])
}

func (d *Debugger) dispatch(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		d.Run(0)
		return nil
	case "continue", "c":
		d.Run(0)
		return nil
	case "step", "s":
		d.StepInstruction()
		d.Println(d.disassembleAt(d.CPU.PC.Address()))
		return nil
	case "break", "b":
		return d.cmdBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdSetEnabled(args, true)
	case "disable":
		return d.cmdSetEnabled(args, false)
	case "info", "i":
		return d.cmdInfo(args)
	case "print", "p":
		return d.cmdPrint(args)
	case "reset":
		d.CPU.PC = vm.NewDefaultAddr(0)
		d.CPU.State = vm.StateFetch
		d.Println("reset PC to 0")
		return nil
	case "help", "h", "?":
		d.Println(helpText)
		return nil
	}
	return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
}

func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <address>")
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.Add(addr, false)
	d.Printf("breakpoint %d at %#08X\n", bp.ID, addr)
	return nil
}

func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("all breakpoints deleted")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id %q", args[0])
	}
	return d.Breakpoints.Delete(id)
}

func (d *Debugger) cmdSetEnabled(args []string, enabled bool) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable|disable <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id %q", args[0])
	}
	return d.Breakpoints.SetEnabled(id, enabled)
}

func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info registers|breakpoints")
	}
	switch args[0] {
	case "registers", "reg":
		d.Println(d.registerSummary())
	case "breakpoints", "break":
		for _, bp := range d.Breakpoints.All() {
			state := "enabled"
			if !bp.Enabled {
				state = "disabled"
			}
			d.Printf("%d: %#08X (%s, hit %d times)\n", bp.ID, bp.Address, state, bp.HitCount)
		}
	default:
		return fmt.Errorf("unknown info subcommand %q", args[0])
	}
	return nil
}

func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <register>")
	}
	name := strings.ToUpper(args[0])
	if r, ok := vm.LookupReg16(name); ok {
		d.Printf("%s = 0x%04X\n", name, d.CPU.Regs.Reg16(r))
		return nil
	}
	if r, ok := vm.LookupReg32(name); ok {
		d.Printf("%s = 0x%08X\n", name, d.CPU.Regs.Reg32(r))
		return nil
	}
	if r, ok := vm.LookupReg8(name); ok {
		d.Printf("%s = 0x%02X\n", name, d.CPU.Regs.Reg8(r))
		return nil
	}
	switch name {
	case "PC":
		d.Printf("PC = %s\n", d.CPU.PC)
	case "SP":
		d.Printf("SP = %s\n", d.CPU.SP)
	default:
		return fmt.Errorf("unknown register %q", args[0])
	}
	return nil
}

func (d *Debugger) registerSummary() string {
	var b strings.Builder
	for _, r := range []vm.Reg16{vm.A, vm.B, vm.C, vm.D, vm.E, vm.H, vm.L} {
		fmt.Fprintf(&b, "%s=%#04X ", r, d.CPU.Regs.Reg16(r))
	}
	fmt.Fprintf(&b, "\nPC=%s SP=%s flags=%s state=%s\n", d.CPU.PC, d.CPU.SP, d.CPU.Flags, d.CPU.State)
	return b.String()
}

// disassembleAt decodes the opcode at addr (without side effects on the
// CPU) into a mnemonic-ish line for the disassembly pane, using the Op's
// registered Go identifier as its name since encoder doesn't keep the
// original's canonical lowercase mnemonic spelling.
func (d *Debugger) disassembleAt(addr uint32) string {
	opcode := d.Mmu.ReadWord(addr)
	instr, ok := vm.FromOpcode(opcode)
	if !ok {
		return fmt.Sprintf("%#08X: <invalid opcode %#04X>", addr, opcode)
	}
	return fmt.Sprintf("%#08X: %s %s", addr, instr.Op, operandSummary(instr))
}

func operandSummary(i vm.Instruction) string {
	name := i.Op.String()
	var parts []string
	if strings.Contains(name, "Bra") {
		parts = append(parts, i.Bra.String())
	} else if strings.Contains(name, "Ra") {
		parts = append(parts, i.Ra.String())
	}
	if strings.Contains(name, "Brb") {
		parts = append(parts, i.Brb.String())
	} else if strings.Contains(name, "Rb") {
		parts = append(parts, i.Rb.String())
	}
	if strings.Contains(name, "Vra") {
		parts = append(parts, i.Vra.String())
	}
	if strings.Contains(name, "Vrb") {
		parts = append(parts, i.Vrb.String())
	}
	return strings.Join(parts, ", ")
}

// disassembleRange produces count disassembled lines starting at addr,
// advancing by the actual opcode width the debugger display pane wants
// (2 bytes; immediate tails are not re-decoded here, matching a thin
// disassembly pane rather than a full decoder).
func (d *Debugger) disassembleRange(addr uint32, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, d.disassembleAt(addr+uint32(i*2)))
	}
	return lines
}

func sortedSymbolNames(symbols map[string]uint32) []string {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const helpText = `Commands:
  run, r              Run until a breakpoint, HALT, or STOP
  continue, c          Same as run
  step, s              Execute one instruction
  break ADDR, b ADDR   Set a breakpoint
  delete [ID], d [ID]  Delete a breakpoint (or all, with no ID)
  enable ID            Enable a breakpoint
  disable ID           Disable a breakpoint
  info registers       Show register/flag/PC/SP state
  info breakpoints     List breakpoints
  print REG, p REG     Print one register's value
  reset                Reset PC to 0
  help, h, ?           Show this text`
