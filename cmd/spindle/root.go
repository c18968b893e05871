package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spindle",
	Short: "Spindle is a deterministic Turing machine interpreter",
	Long: `Spindle runs single-tape deterministic Turing machines defined as JSON or
YAML documents, with a small catalog of built-in example machines.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
