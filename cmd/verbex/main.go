package main

import (
	"os"

	"github.com/KromDaniel/verbex/cmd/verbex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
