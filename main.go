package main

import (
	"os"

	"github.com/platanus-hack-25/lumera-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
