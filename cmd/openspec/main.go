package main

import (
	"os"

	"github.com/openspec-dev/openspec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
