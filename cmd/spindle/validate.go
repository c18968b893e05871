package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spindle/pkg/codec"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a machine document for consistency",
	Long: `Parses a JSON/YAML machine document and checks the construction
invariants: the initial state belongs to the state set, the accept and
reject sets are subsets of the states and do not overlap.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Machine is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	doc, err := codec.DecodeFile(path)
	if err != nil {
		return err
	}
	def, err := doc.Definition()
	if err != nil {
		return err
	}

	fmt.Printf("Fingerprint: %s\n", def.Fingerprint())
	return nil
}
