package main

import (
	"os"

	"github.com/msto63/devkit/cmd/devkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
