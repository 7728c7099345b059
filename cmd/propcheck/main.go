package main

import (
	"os"

	"github.com/kalabhaftu/propcheck/cmd/propcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
