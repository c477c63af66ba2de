package main

import (
	"os"

	"github.com/zachAtSiftStack/tlmSim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
