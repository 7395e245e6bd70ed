// Command mfs16run loads a raw MFS-16 binary image into a fresh machine
// and runs it to completion, grounded in the teacher's main.go run-mode
// flags (-max-cycles, -entry, -verbose) but stripped of everything the
// teacher's flags drive that has no MFS-16 equivalent (API server mode,
// diagnostic trace toggles beyond -verbose).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maxgmr/mfs16go/config"
	"github.com/maxgmr/mfs16go/loader"
	"github.com/maxgmr/mfs16go/vm"
)

func main() {
	var (
		maxCycles = flag.Uint64("max-cycles", 0, "Maximum CPU cycles before forced stop (0 = unbounded)")
		entry     = flag.Uint("entry", 0, "Entry point address")
		seed      = flag.Uint64("seed", 1, "RNG seed for the RAND instruction")
		verbose   = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	binPath := flag.Arg(0)
	program, err := os.ReadFile(binPath) // #nosec G304 -- user-specified binary path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	cycleLimit := *maxCycles
	if cycleLimit == 0 {
		cycleLimit = cfg.Execution.MaxCycles
	}

	mmu := vm.NewMmu(cfg.Execution.RomSize, cfg.Execution.RamSize, cfg.Execution.VramSize)
	cpu := vm.NewCPU(*seed)

	if err := loader.LoadImage(cpu, mmu, loader.Image{Bytes: program, EntryPoint: uint32(*entry)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded %d bytes, entry point %s\n", len(program), cpu.PC)
	}

	var cycles uint64
	for cpu.State != vm.StateStopped {
		if cycleLimit != 0 && cycles >= cycleLimit {
			if *verbose {
				fmt.Printf("Stopped after reaching the %d cycle limit\n", cycleLimit)
			}
			break
		}
		cpu.Cycle(mmu)
		cycles++
	}

	if *verbose {
		fmt.Println()
		fmt.Println("Execution complete")
		fmt.Printf("Cycles: %d\n", cycles)
		fmt.Printf("PC: %s  SP: %s\n", cpu.PC, cpu.SP)
		fmt.Printf("Flags: %s\n", cpu.Flags)
		printRegisters(cpu)
	}
}

func printRegisters(cpu *vm.CPU) {
	for _, r := range []vm.Reg16{vm.A, vm.B, vm.C, vm.D, vm.E, vm.H, vm.L} {
		fmt.Printf("%s: %#04X  ", r, cpu.Regs.Reg16(r))
	}
	fmt.Println()
}

func printHelp() {
	fmt.Print(`mfs16run - MFS-16 emulator

Usage: mfs16run [options] <binary-file>

Options:
  -max-cycles N  Maximum CPU cycles before forced stop (0 = unbounded)
  -entry ADDR    Entry point address (default: 0)
  -seed N        RNG seed for the RAND instruction
  -verbose       Print final register/flag state

Examples:
  mfs16run hello.bin
  mfs16run -verbose -max-cycles 1000000 hello.bin
`)
}
