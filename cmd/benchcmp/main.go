// Package main is the entry point for the benchcmp CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/benchcmp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
