package main

import (
	"fmt"
	"os"

	"github.com/home-assistant-community/blueprint-ci/pkg/cli"
	"github.com/home-assistant-community/blueprint-ci/pkg/console"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
