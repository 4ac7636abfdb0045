package main

import (
	"os"

	"github.com/jsvec/faceoff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
