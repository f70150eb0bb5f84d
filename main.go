package main

import (
	"os"

	"github.com/omarselim0/shopmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
