package main

import (
	"os"

	"github.com/scalarorg/evmgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
