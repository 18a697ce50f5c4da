// Package main provides the rvsim command-line interface.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/rvsim/config"
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/loader"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvsim",
		Short: "rvsim — functional RV32I/RV64I emulator",
	}

	var configPath string
	var xlenFlag int
	var memSize int
	var maxSteps uint64
	var entryFlag string
	var trace bool

	runCmd := &cobra.Command{
		Use:   "run <program.elf>",
		Short: "Load a RISC-V ELF binary and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = config.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("xlen") {
				cfg.Machine.XLEN = xlenFlag
			}
			if cmd.Flags().Changed("mem") {
				cfg.Machine.MemorySize = memSize
			}
			if cmd.Flags().Changed("max-steps") {
				cfg.Execution.MaxSteps = maxSteps
			}
			if cmd.Flags().Changed("entry") {
				cfg.Execution.Entry = entryFlag
			}
			if cmd.Flags().Changed("trace") {
				cfg.Execution.Trace = trace
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			prog, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			if int(prog.Class) != cfg.Machine.XLEN {
				return fmt.Errorf("ELF is %d-bit but machine xlen is %d",
					prog.Class, cfg.Machine.XLEN)
			}

			if cfg.Machine.XLEN == 32 {
				return run(emu.NewRV32(cfg.Machine.MemorySize), prog, cfg)
			}
			return run(emu.NewRV64(cfg.Machine.MemorySize), prog, cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to TOML configuration file")
	runCmd.Flags().IntVar(&xlenFlag, "xlen", 64, "machine width: 32 or 64")
	runCmd.Flags().IntVar(&memSize, "mem", 16*1024*1024, "memory size in bytes")
	runCmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "step budget, 0 for no limit")
	runCmd.Flags().StringVar(&entryFlag, "entry", "", "entry point override (hex or decimal)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print each executed instruction")

	decodeCmd := &cobra.Command{
		Use:   "decode <word>...",
		Short: "Decode 32-bit instruction words and print their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				word, err := strconv.ParseUint(arg, 0, 32)
				if err != nil {
					return fmt.Errorf("invalid instruction word %q: %w", arg, err)
				}
				printDecoded(uint32(word))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run loads the program segments, resolves the entry point, and drives
// the emulator until it stops.
func run[T emu.Word](e *emu.Emulator[T], prog *loader.Program, cfg *config.Config) error {
	segments := make([]emu.Segment, 0, len(prog.Segments))
	for _, seg := range prog.Segments {
		segments = append(segments, emu.Segment{
			Addr:    seg.VirtAddr,
			Data:    seg.Data,
			MemSize: seg.MemSize,
		})
	}
	if err := e.Load(segments); err != nil {
		return err
	}

	entry := prog.EntryPoint
	if cfg.Execution.Entry != "" {
		parsed, err := strconv.ParseUint(cfg.Execution.Entry, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid entry point %q: %w", cfg.Execution.Entry, err)
		}
		entry = parsed
	}
	e.SetPC(T(entry))

	var result emu.StepResult
	if cfg.Execution.Trace {
		for n := uint64(0); cfg.Execution.MaxSteps == 0 || n < cfg.Execution.MaxSteps; n++ {
			pc := uint64(e.PC())
			word, err := e.Memory().Read32(pc)
			if err == nil {
				fmt.Printf("PC=0x%08X  0x%08X\n", pc, word)
			}
			result = e.Step()
			if result.Outcome != emu.OutcomeContinue {
				break
			}
		}
	} else {
		result = e.Run(cfg.Execution.MaxSteps)
	}

	fmt.Printf("stopped after %d instructions: %s\n", e.InstructionCount(), result.Outcome)
	if result.Err != nil {
		return result.Err
	}
	return nil
}

// printDecoded dispatches a word to its format by opcode and prints the
// decoded bit fields.
func printDecoded(word uint32) {
	switch op := insts.OpcodeOf(word); op {
	case insts.OpcodeLUI, insts.OpcodeAUIPC:
		u := insts.DecodeU(word)
		fmt.Printf("0x%08X  U  imm=0x%08X rd=x%d\n", word, u.Imm, u.Rd.Uint8())
	case insts.OpcodeJAL:
		j := insts.DecodeJ(word)
		fmt.Printf("0x%08X  J  imm=%d rd=x%d\n", word, j.Imm.SignExtend(), j.Rd.Uint8())
	case insts.OpcodeBranch:
		b := insts.DecodeB(word)
		fmt.Printf("0x%08X  B  imm=%d rs2=x%d rs1=x%d funct3=%d\n",
			word, b.Imm.SignExtend(), b.Rs2.Uint8(), b.Rs1.Uint8(), b.Funct3.Uint8())
	case insts.OpcodeStore:
		s := insts.DecodeS(word)
		fmt.Printf("0x%08X  S  imm=%d rs2=x%d rs1=x%d funct3=%d\n",
			word, s.Imm.SignExtend(), s.Rs2.Uint8(), s.Rs1.Uint8(), s.Funct3.Uint8())
	case insts.OpcodeOp, insts.OpcodeOp32:
		r := insts.DecodeR(word)
		fmt.Printf("0x%08X  R  funct7=0x%02X rs2=x%d rs1=x%d funct3=%d rd=x%d\n",
			word, r.Funct7.Uint8(), r.Rs2.Uint8(), r.Rs1.Uint8(), r.Funct3.Uint8(), r.Rd.Uint8())
	default:
		i := insts.DecodeI(word)
		fmt.Printf("0x%08X  I  imm=%d rs1=x%d funct3=%d rd=x%d\n",
			word, i.Imm.SignExtend(), i.Rs1.Uint8(), i.Funct3.Uint8(), i.Rd.Uint8())
	}
}
