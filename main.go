package main

import (
	"os"

	"github.com/truthcom/learnmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
