package main

import (
	"os"

	"github.com/moneynotes-dev/moneynotes/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
