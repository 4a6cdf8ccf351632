// Command i8080 runs, disassembles, or interactively debugs raw Intel 8080
// machine code images against the core in package cpu.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"i8080/cpu"
	"i8080/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 emulator core: run, disassemble, or step through 8080 machine code",
	}

	var offset uint16
	var maxSteps int

	runCmd := &cobra.Command{
		Use:   "run [program.bin]",
		Short: "Load a raw binary at an offset and run it under the CP/M BDOS self-test harness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}

			state := cpu.New(nil, &bdosPorts{})
			state.Memory.Load(program, offset)
			state.PC = offset

			if err := runHarness(state, maxSteps); err != nil {
				return err
			}
			fmt.Println()
			dumpState(state)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&offset, "offset", 0x0100, "load address")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 50_000_000, "abort after this many Step calls without a stop")

	disasmCmd := &cobra.Command{
		Use:   "disasm [program.bin]",
		Short: "Print the decoded mnemonic for every opcode in a raw binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}
			addr := offset
			for i := 0; i < len(program); {
				inst := cpu.Decode(program[i])
				fmt.Printf("%04x: %s", addr, inst.Op)
				if inst.HasCond {
					fmt.Printf(" %s", inst.Cond)
				}
				if inst.Dst.Kind != cpu.LocNone {
					fmt.Printf(" %s", inst.Dst)
				}
				if inst.Src.Kind != cpu.LocNone {
					fmt.Printf(" %s", inst.Src)
				}
				for n := uint8(0); n < inst.ImmLen && i+int(n)+1 < len(program); n++ {
					fmt.Printf(" %02x", program[i+int(n)+1])
				}
				fmt.Println()
				i += 1 + int(inst.ImmLen)
				addr += uint16(1 + int(inst.ImmLen))
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&offset, "offset", 0x0100, "first address printed")

	debugCmd := &cobra.Command{
		Use:   "debug [program.bin]",
		Short: "Load a raw binary and step through it with the interactive TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}
			state := cpu.New(nil, ports.Null{})
			return runDebugger(state, program, offset)
		},
	}
	debugCmd.Flags().Uint16Var(&offset, "offset", 0x0100, "load address")

	rootCmd.AddCommand(runCmd, disasmCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
