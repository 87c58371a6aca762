package main

import (
	"os"

	"github.com/coregx/wildmatch/cmd/wildmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
