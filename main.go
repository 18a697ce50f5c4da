// Package main provides the entry point for rvsim.
// rvsim is a functional RV32I/RV64I instruction-set emulator.
//
// For the full CLI, use: go run ./cmd/rvsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rvsim - RISC-V RV32I/RV64I emulator")
	fmt.Println("")
	fmt.Println("Usage: rvsim run [options] <program.elf>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  --xlen       Machine width: 32 or 64")
	fmt.Println("  --mem        Memory size in bytes")
	fmt.Println("  --max-steps  Step budget, 0 for no limit")
	fmt.Println("  --config     Path to TOML configuration file")
	fmt.Println("  --trace      Print each executed instruction")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvsim' instead.")
	}
}
