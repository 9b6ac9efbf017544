package main

import (
	"os"

	"github.com/morshedulmunna/faaaa-sound/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
