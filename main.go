package main

import (
	"os"

	"github.com/mentimath/mentimath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
