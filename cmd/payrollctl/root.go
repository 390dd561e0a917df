package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "Offline payroll reconciliation tools",
	Long: `payrollctl replays the payroll engine on exported schedule and
attendance snapshots, and mints access tokens for local testing.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newTokenCmd())
}
