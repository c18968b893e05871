package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/spindle/internal/cli"
	"github.com/aretw0/spindle/internal/presentation/tui"
	"github.com/aretw0/spindle/pkg/registry"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine>",
	Short: "Run a machine on an input string",
	Long: `Runs a Turing machine on an input string and reports whether it accepts,
rejects or exhausts the step budget.

The machine argument is either the name of a built-in example (see
'spindle examples') or the path to a JSON/YAML machine document.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		jsonMode, _ := cmd.Flags().GetBool("json")
		interactive, _ := cmd.Flags().GetBool("interactive")
		debug, _ := cmd.Flags().GetBool("debug")

		if interactive && jsonMode {
			fmt.Println("Error: --interactive and --json cannot be used together.")
			os.Exit(1)
		}

		// No input on a terminal means the user wants the prompt loop.
		if !cmd.Flags().Changed("input") && !jsonMode && !interactive &&
			term.IsTerminal(int(os.Stdin.Fd())) {
			interactive = true
		}

		if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
		}

		err := cli.Execute(cli.RunOptions{
			Source:      args[0],
			Input:       input,
			MaxSteps:    maxSteps,
			JSON:        jsonMode,
			Interactive: interactive,
			Debug:       debug,
		}, registry.NewFromCatalog())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Input string written on the tape")
	runCmd.Flags().Int("max-steps", 0, "Step budget before the run is reported as undetermined (default 10000)")
	runCmd.Flags().Bool("json", false, "Print the outcome as JSON")
	runCmd.Flags().Bool("interactive", false, "Prompt for input strings in a loop")
	runCmd.Flags().Bool("debug", false, "Enable step-by-step debug logging")
}
