package cmd

import "github.com/spf13/cobra"

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the configured stations and report their production",
	RunE:  runSimulation,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
