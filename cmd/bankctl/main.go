package main

import (
	"os"

	"bankagent/cmd/bankctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
