package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahkatlio/hhat-lang/highlight"
)

var rootCmd = &cobra.Command{
	Use:   "hhatlex",
	Short: "Heather dialect tokenizer",
	Long:  "hhatlex tokenizes H-hat Heather dialect source files and renders syntax-highlighted output for terminals and host tooling.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("no-normalize", false, "Skip source cleanup (BOM, CRLF, NFC) before tokenizing")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the token-stream cache")

	_ = viper.BindPFlag("no_normalize", rootCmd.PersistentFlags().Lookup("no-normalize"))
	_ = viper.BindPFlag("no_cache", rootCmd.PersistentFlags().Lookup("no-cache"))
}

func initConfig() {
	viper.SetEnvPrefix("HHATLEX")
	viper.AutomaticEnv()
}

func newHighlighter() *highlight.Highlighter {
	var h *highlight.Highlighter
	if viper.GetBool("no_cache") {
		h = highlight.NewHighlighterNoCache()
	} else {
		h = highlight.NewHighlighter()
	}
	if viper.GetBool("no_normalize") {
		h.SetNormalizer(nil)
	}
	return h
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
