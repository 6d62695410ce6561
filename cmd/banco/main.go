package main

import (
	"os"

	"github.com/banco-ledger/banco/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
