package cmd

import (
	"fmt"
	"os"

	"github.com/oxlang/oxc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [source-path]",
	Short: "Interpret a source file directly",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSource,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "interpret inline source instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed program before running it")
}

func runSource(_ *cobra.Command, args []string) error {
	source, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	tracef("parsing and type-checking")
	result, err := driver.Load(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.FormatError(err))
		return err
	}

	if dumpAST {
		fmt.Println(result.Program.String())
	}

	if result.Checked.Errors.HasErrors() {
		fmt.Fprintln(os.Stderr, result.Checked.Errors.Format(!noColor))
		return fmt.Errorf("type checking failed")
	}

	tracef("running")
	if err := driver.Interpret(result, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		return err
	}
	return nil
}

// readSource returns the program text to run: the --eval string if
// given, otherwise the contents of args[0].
func readSource(eval string, args []string) (string, string, error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("provide a source file path or use -e/--eval")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
