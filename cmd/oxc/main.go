package main

import (
	"os"

	"github.com/oxlang/oxc/cmd/oxc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
