package cmd

import (
	"fmt"
	"os"

	"github.com/oxlang/oxc/internal/driver"
	"github.com/oxlang/oxc/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <source-path>",
	Short: "Parse a source file and print its AST, without resolving imports",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	program, err := parser.Parse(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.FormatError(err))
		return err
	}
	fmt.Println(program.String())
	return nil
}
