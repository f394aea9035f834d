package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routesim",
	Short: "Deterministic routing protocol simulator",
	Long: `Routesim replays message delivery over an evolving network topology.
It computes per-node forwarding tables with either distance-vector or link-state
routing, re-delivering a fixed set of messages after every topology change.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
