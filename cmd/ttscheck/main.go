// Package main is the entry point for the ttscheck CLI.
package main

import (
	"os"

	"github.com/tmiller/ttscheck/cmd/ttscheck/commands"
)

func main() {
	os.Exit(commands.Execute())
}
