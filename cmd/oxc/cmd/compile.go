package cmd

import (
	"fmt"
	"os"

	"github.com/oxlang/oxc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	outputCPath string
	ccOverride  string
	keepC       bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <source-path> [output-c-path]",
	Short: "Translate a source file to C and build it with an external compiler",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  compileSource,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&outputCPath, "output", "o", "", "output C file path (default: derived from the source path)")
	compileCmd.Flags().StringVar(&ccOverride, "cc", "", "C compiler to use (default: probe gcc, clang, cl)")
	compileCmd.Flags().BoolVar(&keepC, "keep-c", true, "keep the generated C file after building")
}

func compileSource(_ *cobra.Command, args []string) error {
	sourcePath := args[0]
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	result, err := driver.Load(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.FormatError(err))
		return err
	}
	if result.Checked.Errors.HasErrors() {
		fmt.Fprintln(os.Stderr, result.Checked.Errors.Format(!noColor))
		return fmt.Errorf("type checking failed")
	}

	cCode, err := driver.CompileToC(result)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		return err
	}

	cPath := outputCPath
	if len(args) == 2 {
		cPath = args[1]
	}
	if cPath == "" {
		cPath = driver.DefaultCOutputPath(sourcePath)
	}
	if err := os.WriteFile(cPath, []byte(cCode), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cPath, err)
	}
	if !keepC {
		defer os.Remove(cPath)
	}

	cc := ccOverride
	if cc == "" {
		found, ok := driver.ProbeCompiler()
		if !ok {
			fmt.Fprintln(os.Stderr, "error: no C compiler found (tried gcc, clang, cl)")
			return fmt.Errorf("no C compiler available")
		}
		cc = found
	}

	exePath := driver.DefaultExePath(cPath)
	tracef("invoking %s to build %s", cc, exePath)
	if err := driver.InvokeCompiler(cc, cPath, exePath); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		return err
	}
	return nil
}
