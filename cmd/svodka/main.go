package main

import (
	"os"

	"github.com/svodka-dev/svodka/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
