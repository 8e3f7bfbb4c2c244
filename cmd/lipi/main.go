// Package main is the entry point for the lipi CLI.
package main

import (
	"os"

	"github.com/f3rmion/lipi/cmd/lipi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
