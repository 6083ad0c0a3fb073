package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VictorRandomCode/r80/dump"
	"github.com/VictorRandomCode/r80/loader"
	"github.com/VictorRandomCode/r80/z80"
)

func newDumpCmd() *cobra.Command {
	var ramSize int
	var origin uint16
	var length int

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Load a raw binary image and print a hex/ASCII listing of memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := z80.NewSystem(ramSize, origin, false)
			if err := loader.Load(sys, args[0], origin); err != nil {
				return err
			}

			if length <= 0 {
				length = sys.Mem.Size() - int(origin)
			}
			data := sys.Mem.GetRange(origin, length)
			fmt.Print(dump.Format(data, origin))
			return nil
		},
	}

	cmd.Flags().IntVar(&ramSize, "ram", 0x10000, "RAM size in bytes")
	cmd.Flags().Uint16Var(&origin, "origin", 0x0100, "load address and dump start address")
	cmd.Flags().IntVar(&length, "length", 0, "bytes to dump (0 = rest of RAM from origin)")

	return cmd
}
