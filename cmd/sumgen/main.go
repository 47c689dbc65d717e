// Package main provides the sumgen command.
package main

import (
	"fmt"
	"os"

	"github.com/example/sumgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
