package cmd

import (
	"fmt"
	"os"

	"github.com/oxlang/oxc/internal/errors"
	"github.com/oxlang/oxc/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <source-path>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  dumpTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func dumpTokens(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	toks, err := lexer.Tokenize(string(data))
	if err != nil {
		lerr := err.(*lexer.Error)
		ce := errors.New(lerr.Pos, string(data), lerr.Message)
		fmt.Fprintln(os.Stderr, ce.Format(!noColor))
		return err
	}
	for _, t := range toks {
		fmt.Println(t.String())
	}
	return nil
}
