package main

import (
	"os"

	"github.com/sevenacademy/leaflab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
