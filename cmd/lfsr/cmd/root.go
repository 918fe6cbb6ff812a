package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lfsr",
	Short: "OpenTraceLFSR - maximal-length LFSR sequence tools",
	Long: `OpenTraceLFSR (lfsr) generates and analyzes pseudorandom sequences from
maximal-length linear feedback shift registers (3-16 bits wide).

Examples:
  lfsr generate --width 8 --seed 0xAB --count 16 --format hex
  lfsr info --width 8
  lfsr selftest
  lfsr poly parse "x^8 + x^7 + x^3 + x^2 + x"
  lfsr stats --width 16 --seed 0xACE1`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
