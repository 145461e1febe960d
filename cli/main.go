package main

import (
	"fmt"
	"os"

	"github.com/earth-sandwich/sandwich-cli/internal/cli"
	"github.com/earth-sandwich/sandwich-cli/internal/cli/render"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
