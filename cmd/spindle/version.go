package main

import (
	"fmt"

	"github.com/aretw0/spindle"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spindle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spindle version %s\n", spindle.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
