package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahkatlio/hhat-lang/lexer"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print registration metadata for host tools",
	Long:  "Print the name, aliases, file globs and MIME types under which host highlighting frameworks should register this tokenizer.",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	meta := lexer.Meta()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:       %s\n", meta.Name)
	fmt.Fprintf(out, "Aliases:    %s\n", strings.Join(meta.Aliases, ", "))
	fmt.Fprintf(out, "Filenames:  %s\n", strings.Join(meta.Filenames, ", "))
	fmt.Fprintf(out, "MIME types: %s\n", strings.Join(meta.MIMETypes, ", "))
	return nil
}
