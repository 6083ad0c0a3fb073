package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/VictorRandomCode/r80/loader"
	"github.com/VictorRandomCode/r80/z80"
)

func newRunCmd() *cobra.Command {
	var ramSize int
	var origin uint16
	var cpmStub bool
	var maxInstructions int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load a raw binary image and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := z80.NewSystem(ramSize, origin, cpmStub)
			if err := loader.Load(sys, args[0], origin); err != nil {
				return err
			}

			count := 0
			for sys.Running {
				if maxInstructions > 0 && count >= maxInstructions {
					log.Printf("stopped after %d instructions (--max-instructions reached)", count)
					break
				}
				sys.ExecuteInstruction()
				count++
				if verbose {
					log.Printf("%s", sys.String())
				}
			}

			fmt.Printf("\n%d instructions executed\n%s\n", count, sys.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&ramSize, "ram", 0x10000, "RAM size in bytes")
	cmd.Flags().Uint16Var(&origin, "origin", 0x0100, "load address and initial PC")
	cmd.Flags().BoolVar(&cpmStub, "cpm", true, "install the minimal CP/M BDOS stub at 0x0005")
	cmd.Flags().IntVar(&maxInstructions, "max-instructions", 0, "stop after N instructions (0 = unbounded)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log register state after every instruction")

	return cmd
}
