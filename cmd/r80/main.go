// Command r80 runs or inspects a raw binary image on the Z80 core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "r80",
		Short: "A Zilog Z80 instruction-set emulator",
	}

	rootCmd.AddCommand(newRunCmd(), newDumpCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
