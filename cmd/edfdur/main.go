// Package main is the entry point for the edfdur CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/edfdur/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
