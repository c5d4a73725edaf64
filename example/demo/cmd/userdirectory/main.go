package main

import (
	"os"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/demo/cmd/userdirectory/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
