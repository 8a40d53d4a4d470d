// Package cmd implements the oxc command-line tool: an interpreter
// and C compiler for the oxc source language.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; it defaults to a development marker.
	Version = "0.1.0-dev"

	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     "oxc",
	Short:   "Interpreter and C compiler for the source language",
	Version: Version,
	Long: `oxc is a toolchain for a small, statically-typed, class-based
object-oriented language. It can either interpret a program directly
or translate it to C and hand the result to an external C compiler.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic tracing to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func tracef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
