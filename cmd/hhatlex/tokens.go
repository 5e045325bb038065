package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a source file and print the stream as JSON lines",
	Long:  "Tokenize a Heather source file and print one JSON object per token: kind, text and byte offsets.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	h := newHighlighter()
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, tok := range h.Tokens(string(src)) {
		row := tokenJSON{Kind: tok.Kind.String(), Text: tok.Text, Start: tok.Start, End: tok.End}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("writing token stream: %w", err)
		}
	}
	return nil
}
