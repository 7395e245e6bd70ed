// Command mfs16asm assembles MFS-16 assembly source into a raw binary
// image, the way the original Rust workspace's standalone assembler
// binary does, grounded in the teacher's flag-based main.go shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxgmr/mfs16go/asm"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output binary path (default: input file with .bin extension)")
		verbose = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	srcPath := flag.Arg(0)
	src, err := os.ReadFile(srcPath) // #nosec G304 -- user-specified source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := *outPath
	if out == "" {
		ext := filepath.Ext(srcPath)
		out = strings.TrimSuffix(srcPath, ext) + ".bin"
	}

	if *verbose {
		fmt.Printf("Assembling %s -> %s\n", srcPath, out)
	}

	bytes, err := asm.Assemble(string(src), srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error:\n%v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, bytes, 0644); err != nil { // #nosec G306 -- emitted binary, not a secret
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Wrote %d bytes\n", len(bytes))
	}
}

func printHelp() {
	fmt.Print(`mfs16asm - MFS-16 assembler

Usage: mfs16asm [options] <source-file>

Options:
  -out FILE     Output binary path (default: input file with .bin extension)
  -verbose      Verbose output

Examples:
  mfs16asm hello.mfs
  mfs16asm -out hello.bin -verbose hello.mfs
`)
}
