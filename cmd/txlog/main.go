package main

import (
	"os"

	"github.com/txlog-dev/txlog/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
