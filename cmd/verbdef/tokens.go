package main

import (
	"fmt"

	"github.com/martinemde/verbdef/verbdef"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token sequence of a verb definition",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	name, src, err := readSource(cmd, args, verbdef.Sample)
	if err != nil {
		return err
	}

	tokens := verbdef.Tokenize(src)
	log.Info("tokenized input", "source", name, "tokens", len(tokens))

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s\t%q\n", tok.Category, tok.Lexeme)
	}
	return nil
}
