package main

import (
	"os"

	"github.com/spelsmart/spelsmart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
