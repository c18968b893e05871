package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/spindle/internal/presentation/tui"
	"github.com/aretw0/spindle/pkg/codec"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Describe the machine document format",
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewRenderer()
		out, err := render(codec.FormatHelp)
		if err != nil {
			// Fall back to the raw markdown.
			out = codec.FormatHelp
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
