package main

import (
	"os"

	"github.com/enerva/fuelcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
