package main

import (
	"os"

	"github.com/extremtechniker/dnsmigrate/cmd"
)

func main() {
	root := cmd.RootCommand()
	root.AddCommand(cmd.ExportCommand())
	root.AddCommand(cmd.ImportCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
