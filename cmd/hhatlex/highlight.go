package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ahkatlio/hhat-lang/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Render a source file with ANSI syntax highlighting",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().Bool("no-color", false, "Disable ANSI colors")
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	h := newHighlighter()
	return highlight.WriteANSI(cmd.OutOrStdout(), h.Tokens(string(src)), highlight.DefaultStyle())
}
