package main

import (
	"os"

	"github.com/quizcert/quizcert/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
