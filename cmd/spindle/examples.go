package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/spindle/pkg/registry"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the built-in example machines",
	Run: func(cmd *cobra.Command, args []string) {
		for _, entry := range registry.NewFromCatalog().List() {
			fmt.Printf("%-18s %s\n", entry.Name, entry.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
