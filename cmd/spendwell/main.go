package main

import (
	"os"

	"github.com/spendwell-dev/spendwell/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
