package main

import (
	"os"

	"turak/cmd/turak/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
